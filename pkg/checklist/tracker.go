// Package checklist owns the completion and expansion state for one help
// document: which items are checked, which section is open, and when the
// outside world gets told about a finished task.
package checklist

import (
	"strconv"

	"tableflip.dev/helpdeck/pkg/doc"
)

// Tracker maps (sectionKey, itemIdentity) to a checked boolean. Absent
// entries are unchecked. Item identity is structural: the list or line index,
// or the nested-object key. Single-owner state, no locking.
type Tracker struct {
	state map[string]map[string]bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{state: map[string]map[string]bool{}}
}

// Toggle flips the item's boolean and returns the new and previous values.
// Two toggles on the same key cancel out.
func (t *Tracker) Toggle(section, item string) (now, was bool) {
	sec, ok := t.state[section]
	if !ok {
		sec = map[string]bool{}
		t.state[section] = sec
	}
	was = sec[item]
	now = !was
	sec[item] = now
	return now, was
}

// Checked reports the item's current state.
func (t *Tracker) Checked(section, item string) bool {
	return t.state[section][item]
}

// Section returns the completion slice for one section. The map is shared
// with the tracker and must be treated as read-only by callers.
func (t *Tracker) Section(section string) map[string]bool {
	return t.state[section]
}

// Progress counts checked items against the value's total. Sections with no
// checkable items report 0 of 0.
func (t *Tracker) Progress(section string, v doc.Value) (done, total int) {
	total = v.ItemCount()
	if total == 0 {
		return 0, 0
	}
	sec := t.state[section]
	for _, id := range identities(v) {
		if sec[id] {
			done++
		}
	}
	return done, total
}

// Complete reports whether every item of the value is checked. A value with
// no checkable items is never complete.
func (t *Tracker) Complete(section string, v doc.Value) bool {
	done, total := t.Progress(section, v)
	return total > 0 && done == total
}

// Reset drops all state, typically when a new document replaces the old one.
func (t *Tracker) Reset() {
	t.state = map[string]map[string]bool{}
}

func identities(v doc.Value) []string {
	switch v.Kind() {
	case doc.KindList:
		ids := make([]string, len(v.List()))
		for i := range v.List() {
			ids[i] = strconv.Itoa(i)
		}
		return ids
	case doc.KindText:
		ids := make([]string, len(v.Lines()))
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
		return ids
	case doc.KindNested:
		ids := make([]string, 0, len(v.Entries()))
		for _, e := range v.Entries() {
			ids = append(ids, e.Key)
		}
		return ids
	}
	return nil
}
