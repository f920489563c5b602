// Package tui is the interactive checklist: an accordion of document sections
// where actionable rows toggle with a keypress and completions are reported
// through the checklist controller's notifier.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/helpdeck/pkg/api"
	"tableflip.dev/helpdeck/pkg/checklist"
	"tableflip.dev/helpdeck/pkg/doc"
	"tableflip.dev/helpdeck/pkg/emoji"
	"tableflip.dev/helpdeck/pkg/render"
	"tableflip.dev/helpdeck/pkg/store"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	tasksStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	checkedStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle    = lipgloss.NewStyle().Faint(true)
	emojiStyle     = lipgloss.NewStyle().Bold(true)
)

// Deps wires the model to its collaborators. Help and Store may be nil in
// tests; the controller is required.
type Deps struct {
	Controller *checklist.Controller
	Help       *api.HelpClient
	Store      store.Persistence
	Language   string
	Level      string
}

type fetchedMsg struct {
	rec *store.Record
	err error
}

type storeChangedMsg struct{}

// Model is the bubbletea model for the checklist UI.
type Model struct {
	deps Deps
	ctx  context.Context

	sections []checklist.Section
	secIdx   int
	rowIdx   int // -1 means the cursor is on the section header

	spinner  spinner.Model
	fetching bool
	status   string

	termWidth  int
	termHeight int

	watch <-chan store.Event
}

// New creates the model. The controller keeps all checklist state; the model
// only holds cursor position and plumbing.
func New(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		deps:    deps,
		ctx:     context.Background(),
		rowIdx:  -1,
		spinner: sp,
		status:  "j/k move, enter expand, x toggle task, f fetch, q quit",
	}
}

// Init loads the latest cached document and starts watching the cache.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.deps.Store != nil {
		cmds = append(cmds, m.loadLatest, m.startWatch)
	}
	return tea.Batch(cmds...)
}

func (m Model) loadLatest() tea.Msg {
	rec, err := m.deps.Store.Latest(m.ctx)
	return fetchedMsg{rec: rec, err: err}
}

func (m Model) startWatch() tea.Msg {
	ch, err := m.deps.Store.Watch(m.ctx)
	if err != nil {
		return nil
	}
	return watchReadyMsg{ch: ch}
}

type watchReadyMsg struct {
	ch <-chan store.Event
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m Model) fetch() tea.Msg {
	ctx, cancel := context.WithTimeout(m.ctx, time.Minute)
	defer cancel()

	resp, err := m.deps.Help.RequestHelp(ctx, m.deps.Language, m.deps.Level)
	if err != nil {
		return fetchedMsg{err: err}
	}
	rec := &store.Record{
		Language:       m.deps.Language,
		Level:          m.deps.Level,
		Content:        resp.Content,
		Classification: resp.Classification,
	}
	if m.deps.Store != nil {
		if err := m.deps.Store.Put(rec); err != nil {
			return fetchedMsg{err: err}
		}
	}
	return fetchedMsg{rec: rec}
}

// SetDocument loads a document straight into the controller, bypassing fetch
// and cache. Used by the runner when a document is already at hand.
func (m *Model) SetDocument(d *doc.Document, class doc.Classification) {
	m.deps.Controller.SetDocument(d, class)
	m.refresh()
}

func (m *Model) refresh() {
	m.sections = m.deps.Controller.Sections()
	if m.secIdx >= len(m.sections) {
		m.secIdx = 0
	}
	m.rowIdx = -1
	// Put the cursor on the section the controller expanded.
	for i, s := range m.sections {
		if s.Expanded {
			m.secIdx = i
			break
		}
	}
}

// Update handles key, fetch, and cache-change messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case watchReadyMsg:
		m.watch = msg.ch
		return m, m.waitForChange()

	case storeChangedMsg:
		return m, tea.Batch(m.loadLatest, m.waitForChange())

	case fetchedMsg:
		m.fetching = false
		if msg.err != nil {
			if msg.err == store.ErrNoDocuments {
				m.status = "no document yet - press f to fetch"
				return m, nil
			}
			m.status = fmt.Sprintf("error: %v", msg.err)
			return m, nil
		}
		d, err := msg.rec.Document()
		if err != nil {
			m.status = fmt.Sprintf("error: %v", err)
			return m, nil
		}
		m.deps.Controller.SetDocument(d, msg.rec.Classification)
		m.refresh()
		m.status = fmt.Sprintf("loaded %s (%s)", msg.rec.Language, msg.rec.Level)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "f":
		if m.deps.Help == nil || m.fetching {
			return m, nil
		}
		m.fetching = true
		m.status = "fetching..."
		return m, tea.Batch(m.fetch, m.spinner.Tick)

	case "j", "down":
		m.moveDown()
	case "k", "up":
		m.moveUp()

	case "enter":
		if len(m.sections) > 0 && m.rowIdx < 0 {
			m.deps.Controller.ToggleExpanded(m.sections[m.secIdx].Key)
			m.sections = m.deps.Controller.Sections()
			m.rowIdx = -1
		}

	case " ", "x":
		m.toggleUnderCursor()
	}
	return m, nil
}

func (m *Model) moveDown() {
	if len(m.sections) == 0 {
		return
	}
	rows := m.expandedRows()
	if m.sections[m.secIdx].Expanded && m.rowIdx+1 < len(rows) {
		m.rowIdx++
		return
	}
	if m.secIdx+1 < len(m.sections) {
		m.secIdx++
		m.rowIdx = -1
	}
}

func (m *Model) moveUp() {
	if len(m.sections) == 0 {
		return
	}
	if m.rowIdx >= 0 {
		m.rowIdx--
		return
	}
	if m.secIdx > 0 {
		m.secIdx--
		m.rowIdx = -1
		if m.sections[m.secIdx].Expanded {
			if rows := m.expandedRows(); len(rows) > 0 {
				m.rowIdx = len(rows) - 1
			}
		}
	}
}

func (m *Model) toggleUnderCursor() {
	if len(m.sections) == 0 {
		return
	}
	s := m.sections[m.secIdx]
	if m.rowIdx < 0 {
		m.deps.Controller.ToggleExpanded(s.Key)
		m.sections = m.deps.Controller.Sections()
		m.rowIdx = -1
		return
	}
	rows := m.expandedRows()
	if m.rowIdx >= len(rows) {
		return
	}
	row := rows[m.rowIdx]
	if !row.Interactive {
		return
	}
	m.deps.Controller.ToggleItem(s.Key, row.Identity, row.Text)
	m.sections = m.deps.Controller.Sections()
}

// expandedRows composes the rows for the section under the cursor, or nil
// when it is collapsed.
func (m *Model) expandedRows() []render.Row {
	if len(m.sections) == 0 {
		return nil
	}
	s := m.sections[m.secIdx]
	if !s.Expanded {
		return nil
	}
	strategy := render.Classify(s.Value, s.HasTasks)
	view := render.Compose(strategy, s.Value, m.deps.Controller.CompletionState(s.Key))
	return view.Rows
}

// View draws the accordion.
func (m Model) View() string {
	var b strings.Builder

	header := "helpdeck"
	if m.deps.Language != "" {
		header = fmt.Sprintf("helpdeck - %s (%s)", m.deps.Language, m.deps.Level)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.fetching {
		b.WriteString(m.spinner.View())
		b.WriteString(" fetching help document\n")
	}

	if len(m.sections) == 0 && !m.fetching {
		b.WriteString(statusStyle.Render("nothing to display"))
		b.WriteString("\n")
	}

	for i, s := range m.sections {
		b.WriteString(m.renderHeader(i, s))
		b.WriteString("\n")
		if !s.Expanded {
			continue
		}

		strategy := render.Classify(s.Value, s.HasTasks)
		view := render.Compose(strategy, s.Value, m.deps.Controller.CompletionState(s.Key))
		for ri, row := range view.Rows {
			b.WriteString(m.renderRow(i, ri, view, row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader(i int, s checklist.Section) string {
	arrow := "▶"
	if s.Expanded {
		arrow = "▼"
	}

	style := infoStyle
	if s.HasTasks {
		style = tasksStyle
	}
	if s.Completed {
		style = completedStyle
	}

	title := s.Title
	if s.HasTasks {
		if s.Completed {
			title = fmt.Sprintf("%s ✔", title)
		} else {
			title = fmt.Sprintf("%s [%d/%d]", title, s.Done, s.Total)
		}
	}

	line := fmt.Sprintf("%s %s", arrow, style.Render(title))
	if i == m.secIdx && m.rowIdx < 0 {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

func (m Model) renderRow(sec, ri int, view render.View, row render.Row) string {
	var prefix string
	switch {
	case row.Interactive && row.Checked:
		prefix = "✘ "
	case row.Interactive:
		prefix = "○ "
	case view.Strategy == render.BulletList:
		prefix = "• "
	}

	text := renderRuns(row.Runs, view.EmojiScale)
	if row.Label != "" {
		text = fmt.Sprintf("%s: %s", titleStyle.Render(row.Label), text)
	}
	if row.Checked {
		text = checkedStyle.Render(row.Text)
	}

	line := "    " + prefix + text
	if m.termWidth > 0 {
		line = wordwrap.String(line, m.termWidth)
	}
	if sec == m.secIdx && ri == m.rowIdx {
		return cursorStyle.Render("  > ") + prefix + text
	}
	return line
}

// renderRuns styles emoji runs distinctly when the view asks for a larger
// scale; terminals cannot resize glyphs, so emphasis stands in for size.
func renderRuns(runs []emoji.Run, scale float64) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Kind == emoji.Emoji && scale > 1 {
			b.WriteString(emojiStyle.Render(run.Value))
			continue
		}
		b.WriteString(run.Value)
	}
	return b.String()
}
