// Package export provides the runner that renders the latest cached document
// as markdown, styled terminal output, or HTML.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"

	"tableflip.dev/helpdeck/pkg/doc"
	"tableflip.dev/helpdeck/pkg/store"
)

// Export converts the latest cached document to markdown. Plain writes raw
// markdown, HTML converts it, and the default renders for the terminal.
type Export struct {
	Persistence store.Persistence
	Plain       bool
	HTML        bool
	Wrap        int
	Out         io.Writer
}

// Do executes the export.
func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("export: no persistence configured")
	}
	out := e.Out
	if out == nil {
		out = os.Stdout
	}

	rec, err := e.Persistence.Latest(ctx)
	if err != nil {
		return err
	}
	d, err := rec.Document()
	if err != nil {
		return err
	}
	md := doc.Markdown(d)

	switch {
	case e.Plain:
		_, err = io.WriteString(out, md)
		return err
	case e.HTML:
		var buf bytes.Buffer
		if err := goldmark.New().Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("export: render html: %w", err)
		}
		_, err = out.Write(buf.Bytes())
		return err
	default:
		wrap := e.Wrap
		if wrap <= 0 {
			wrap = 80
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return fmt.Errorf("export: term renderer: %w", err)
		}
		styled, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("export: render: %w", err)
		}
		_, err = io.WriteString(out, styled)
		return err
	}
}
