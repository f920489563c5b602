package checklist

import (
	"strings"

	"tableflip.dev/helpdeck/pkg/doc"
)

// Notifier is told about each first-time task completion. Implementations own
// delivery, retries, and failures; the controller fires and forgets.
type Notifier interface {
	TaskCompleted(text string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(text string)

// TaskCompleted calls f.
func (f NotifierFunc) TaskCompleted(text string) { f(text) }

// Section is the read-only view model for one visible document section.
type Section struct {
	Key       string
	Title     string
	Value     doc.Value
	HasTasks  bool
	Expanded  bool
	Completed bool
	Done      int
	Total     int
}

// Controller owns a document plus its checked and expansion state. At most
// one section is expanded at a time. State is single-threaded and must only
// be driven through the controller's methods.
type Controller struct {
	doc      *doc.Document
	class    doc.Classification
	tracker  *Tracker
	expanded string
	notifier Notifier

	expandFirst bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithCollapsedStart leaves every section collapsed after SetDocument instead
// of expanding the first visible one.
func WithCollapsedStart() Option {
	return func(c *Controller) { c.expandFirst = false }
}

// NewController creates a controller with no document. notifier may be nil,
// in which case completions are tracked but nobody is told.
func NewController(notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		tracker:     NewTracker(),
		notifier:    notifier,
		expandFirst: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDocument replaces the document and classification, drops all checked
// state, and resets expansion per policy. A nil document behaves as empty.
func (c *Controller) SetDocument(d *doc.Document, class doc.Classification) {
	c.doc = d
	c.class = class
	c.tracker.Reset()
	c.expanded = ""
	if c.expandFirst {
		if keys := d.VisibleKeys(); len(keys) > 0 {
			c.expanded = keys[0]
		}
	}
}

// ToggleExpanded applies the accordion rule: toggling the open section's key
// collapses it; toggling any other key makes that key the only open one.
func (c *Controller) ToggleExpanded(key string) {
	if c.expanded == key {
		c.expanded = ""
		return
	}
	c.expanded = key
}

// Expanded returns the open section's key, or "" when all are collapsed.
func (c *Controller) Expanded() string {
	return c.expanded
}

// ToggleItem flips one item's checked state. On a false-to-true transition
// the notifier is invoked exactly once with the item's literal display text;
// unchecking is silent. The notifier's outcome never feeds back into state.
func (c *Controller) ToggleItem(section, item, text string) {
	now, was := c.tracker.Toggle(section, item)
	if now && !was && c.notifier != nil {
		c.notifier.TaskCompleted(text)
	}
}

// Checked reports one item's current state.
func (c *Controller) Checked(section, item string) bool {
	return c.tracker.Checked(section, item)
}

// CompletionState returns the completion slice for a section, for render
// composition. Read-only for callers.
func (c *Controller) CompletionState(section string) map[string]bool {
	return c.tracker.Section(section)
}

// Sections returns ordered view models for every visible section. It never
// mutates state and is safe to call on every render. A missing document
// yields an empty list.
func (c *Controller) Sections() []Section {
	if c.doc == nil {
		return nil
	}
	var out []Section
	for _, e := range c.doc.Entries() {
		if strings.ToLower(e.Key) == doc.MetadataKey {
			continue
		}
		hasTasks := c.class.HasTasks(e.Key)
		s := Section{
			Key:      e.Key,
			Title:    doc.FormatTitle(e.Key),
			Value:    e.Value,
			HasTasks: hasTasks,
			Expanded: c.expanded == e.Key,
		}
		if hasTasks {
			s.Done, s.Total = c.tracker.Progress(e.Key, e.Value)
			s.Completed = c.tracker.Complete(e.Key, e.Value)
		}
		out = append(out, s)
	}
	return out
}
