package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/helpdeck/pkg/checklist"
	"tableflip.dev/helpdeck/pkg/doc"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T, src string, class doc.Classification, n checklist.Notifier) Model {
	t.Helper()
	d, err := doc.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := New(Deps{Controller: checklist.NewController(n)})
	m.SetDocument(d, class)
	return m
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func TestViewShowsTitlesAndChecklist(t *testing.T) {
	m := newTestModel(t, `{"daily_tasks": ["Read a book", "Practice speaking"], "purpose": "help"}`,
		doc.Classification{"daily_tasks": true}, nil)

	out := m.View()
	if !strings.Contains(out, "Daily Tasks") || !strings.Contains(out, "Purpose") {
		t.Fatalf("missing section titles:\n%s", out)
	}
	// First section starts expanded, so its rows are visible and unchecked.
	if !strings.Contains(out, "○ Read a book") {
		t.Fatalf("expected unchecked row:\n%s", out)
	}
	if !strings.Contains(out, "[0/2]") {
		t.Fatalf("expected progress marker:\n%s", out)
	}
}

func TestToggleTaskUpdatesViewAndNotifies(t *testing.T) {
	var completed []string
	n := checklist.NotifierFunc(func(text string) { completed = append(completed, text) })
	m := newTestModel(t, `{"daily_tasks": ["Read a book", "Practice speaking"]}`,
		doc.Classification{"daily_tasks": true}, n)

	// Move from the header onto row 0 and toggle it.
	m = update(t, m, key("j"), key("x"))

	out := m.View()
	if !strings.Contains(out, "✘") {
		t.Fatalf("expected checked marker:\n%s", out)
	}
	if !strings.Contains(out, "[1/2]") {
		t.Fatalf("expected updated progress:\n%s", out)
	}
	if len(completed) != 1 || completed[0] != "Read a book" {
		t.Fatalf("unexpected notifications: %v", completed)
	}

	// Toggle back: silent.
	m = update(t, m, key("x"))
	if len(completed) != 1 {
		t.Fatalf("uncheck should not notify, got %v", completed)
	}
	_ = m
}

func TestAccordionInView(t *testing.T) {
	m := newTestModel(t, `{"a": "first", "b": "second"}`, nil, nil)

	// Section a is expanded by default; step over its single row onto b's
	// header and expand it.
	m = update(t, m, key("j"), key("j"), key("enter"))

	sections := m.sections
	if sections[0].Expanded || !sections[1].Expanded {
		t.Fatalf("expected only b expanded: %+v", sections)
	}

	// Toggling b again collapses everything.
	m = update(t, m, key("enter"))
	for _, s := range m.sections {
		if s.Expanded {
			t.Fatalf("expected all collapsed, %q open", s.Key)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, `{"daily_tasks": ["a", "b"], "purpose": "p"}`,
		doc.Classification{"daily_tasks": true}, nil)

	if m.secIdx != 0 || m.rowIdx != -1 {
		t.Fatalf("cursor should start on first header: %d/%d", m.secIdx, m.rowIdx)
	}

	m = update(t, m, key("j"), key("j"))
	if m.secIdx != 0 || m.rowIdx != 1 {
		t.Fatalf("expected cursor on row 1: %d/%d", m.secIdx, m.rowIdx)
	}

	m = update(t, m, key("j"))
	if m.secIdx != 1 || m.rowIdx != -1 {
		t.Fatalf("expected cursor on second header: %d/%d", m.secIdx, m.rowIdx)
	}

	m = update(t, m, key("k"))
	if m.secIdx != 0 || m.rowIdx != 1 {
		t.Fatalf("expected cursor back on last row: %d/%d", m.secIdx, m.rowIdx)
	}
}

func TestEmptyDocumentView(t *testing.T) {
	m := New(Deps{Controller: checklist.NewController(nil)})
	out := m.View()
	if !strings.Contains(out, "nothing to display") {
		t.Fatalf("expected empty state:\n%s", out)
	}
}
