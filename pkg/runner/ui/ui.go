// Package ui provides the runner that opens the interactive checklist.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/helpdeck/pkg/api"
	"tableflip.dev/helpdeck/pkg/checklist"
	"tableflip.dev/helpdeck/pkg/store"
	"tableflip.dev/helpdeck/pkg/tui"
)

// UI opens the accordion checklist over the latest cached document, with
// fetching and completion reporting wired in.
type UI struct {
	Client      *api.HelpClient
	Persistence store.Persistence
	Notifier    checklist.Notifier
	Language    string
	Level       string
}

// Do runs the bubbletea program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("ui: no persistence configured")
	}

	ctrl := checklist.NewController(u.Notifier)
	m := tui.New(tui.Deps{
		Controller: ctrl,
		Help:       u.Client,
		Store:      u.Persistence,
		Language:   u.Language,
		Level:      u.Level,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
