package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/helpdeck/pkg/checklist"
	"tableflip.dev/helpdeck/pkg/profile"
	"tableflip.dev/helpdeck/pkg/render"
)

// PrettyPrint writes sections and profile tables to the terminal.
type PrettyPrint struct {
	ShowProgress bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Section prints one section header plus its composed rows.
func (pp *PrettyPrint) Section(s checklist.Section, view render.View) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(s.Title)
	if pp.ShowProgress && s.HasTasks {
		_, _ = c.Printf(" - %d of %d done", s.Done, s.Total)
	}
	fmt.Println("")

	pp.Rows(view)
	fmt.Println("")
}

// Rows prints the rows of a composed view: bullets for static lists,
// checkboxes for checklists, labeled lines for key/value content.
func (pp *PrettyPrint) Rows(view render.View) {
	if len(view.Rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	body := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	label := color.New(color.Bold)

	for _, row := range view.Rows {
		var prefix string
		switch {
		case row.Interactive && row.Checked:
			prefix = "✘ "
		case row.Interactive:
			prefix = "○ "
		case view.Strategy == render.BulletList:
			prefix = "• "
		}

		if row.Label != "" {
			_, _ = label.Printf("%s:\n", row.Label)
		}
		if row.Checked {
			_, _ = done.Printf("  %s%s\n", prefix, row.Text)
			continue
		}
		_, _ = body.Printf("  %s%s\n", prefix, row.Text)
	}
}

// Languages prints the profile's languages with flags and level dots.
func (pp *PrettyPrint) Languages(p *profile.Profile) {
	if len(p.Languages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no languages yet")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, l := range p.Languages {
		tbl.AddRow(profile.Flag(l.Language), l.Language, levelDots(l.Level))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func levelDots(l profile.Level) string {
	filled := l.Dots()
	var b strings.Builder
	for i := 1; i <= 3; i++ {
		if i <= filled {
			b.WriteString("●")
			continue
		}
		b.WriteString("○")
	}
	return b.String()
}
