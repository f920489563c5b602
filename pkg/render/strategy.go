// Package render decides how a section's content is displayed and flattens it
// into rows a front-end can draw: static bullets and paragraphs for
// informational sections, toggleable checklist rows for actionable ones.
package render

import "tableflip.dev/helpdeck/pkg/doc"

// Strategy names a rendering mode for one section value.
type Strategy int

const (
	// BulletList renders list items as static bullets.
	BulletList Strategy = iota
	// Checklist renders list items as toggleable rows.
	Checklist
	// Paragraph renders a string as flowing text.
	Paragraph
	// ChecklistLines renders each non-blank line of a string as a toggleable row.
	ChecklistLines
	// KeyValueList renders nested entries as labeled static text.
	KeyValueList
	// ChecklistKeyValue renders nested entry values as toggleable rows.
	ChecklistKeyValue
	// ScalarText renders anything else as its string form.
	ScalarText
)

// Classify picks the strategy for a value. Total over every shape: unknown
// scalars fall back to stringified text, never an error.
func Classify(v doc.Value, hasTasks bool) Strategy {
	switch v.Kind() {
	case doc.KindList:
		if hasTasks {
			return Checklist
		}
		return BulletList
	case doc.KindText:
		if hasTasks {
			return ChecklistLines
		}
		return Paragraph
	case doc.KindNested:
		if hasTasks {
			return ChecklistKeyValue
		}
		return KeyValueList
	default:
		if hasTasks {
			return ChecklistLines
		}
		return ScalarText
	}
}

// Interactive reports whether the strategy produces toggleable rows.
func (s Strategy) Interactive() bool {
	switch s {
	case Checklist, ChecklistLines, ChecklistKeyValue:
		return true
	}
	return false
}
