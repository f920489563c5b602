// Package get provides the runner that fetches and prints a help document.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/helpdeck/pkg/api"
	"tableflip.dev/helpdeck/pkg/checklist"
	"tableflip.dev/helpdeck/pkg/printers"
	"tableflip.dev/helpdeck/pkg/render"
	"tableflip.dev/helpdeck/pkg/store"
)

// Get fetches a help document for a language and level (or reuses the latest
// cached one) and pretty-prints its sections.
type Get struct {
	Client      *api.HelpClient
	Persistence store.Persistence
	Language    string
	Level       string
	Cached      bool
}

// Do executes the fetch-and-print operation.
func (g *Get) Do(ctx context.Context) error {
	rec, err := g.record(ctx)
	if err != nil {
		return err
	}

	d, err := rec.Document()
	if err != nil {
		return err
	}

	ctrl := checklist.NewController(nil, checklist.WithCollapsedStart())
	ctrl.SetDocument(d, rec.Classification)

	sections := ctrl.Sections()
	if len(sections) == 0 {
		fmt.Println("nothing to display")
		return nil
	}

	pp := printers.PrettyPrint{ShowProgress: true}
	pp.NewLine()
	for _, s := range sections {
		strategy := render.Classify(s.Value, s.HasTasks)
		view := render.Compose(strategy, s.Value, ctrl.CompletionState(s.Key))
		pp.Section(s, view)
	}
	return nil
}

func (g *Get) record(ctx context.Context) (*store.Record, error) {
	if g.Cached {
		if g.Persistence == nil {
			return nil, errors.New("get: no persistence configured")
		}
		return g.Persistence.Latest(ctx)
	}

	if g.Client == nil {
		return nil, errors.New("get: no help client configured")
	}
	resp, err := g.Client.RequestHelp(ctx, g.Language, g.Level)
	if err != nil {
		return nil, err
	}
	rec := &store.Record{
		Language:       g.Language,
		Level:          g.Level,
		Content:        resp.Content,
		Classification: resp.Classification,
	}
	if g.Persistence != nil {
		if err := g.Persistence.Put(rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
