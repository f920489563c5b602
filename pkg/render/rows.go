package render

import (
	"strconv"

	"tableflip.dev/helpdeck/pkg/doc"
	"tableflip.dev/helpdeck/pkg/emoji"
)

// DefaultEmojiScale is the factor applied to emoji runs relative to the base
// text size when no override is supplied.
const DefaultEmojiScale = 1.5

// Row is one displayable unit of a section. Identity addresses the row in
// completion state: the list or line index for lists and text, the object key
// for nested entries. For interactive rows the whole row is the toggle target
// and Text is the literal string reported on completion.
type Row struct {
	Identity    string
	Label       string // nested-object key, already title-formatted; "" otherwise
	Text        string
	Runs        []emoji.Run
	Checked     bool
	Interactive bool
}

// View is the render description for one section: its strategy, rows, and the
// emoji scale front-ends apply to emoji runs. Building a View never mutates
// completion state; toggles are surfaced through row identities only.
type View struct {
	Strategy   Strategy
	Rows       []Row
	EmojiScale float64
}

// Option adjusts view construction.
type Option func(*View)

// WithEmojiScale overrides the default emoji scale factor.
func WithEmojiScale(scale float64) Option {
	return func(v *View) {
		if scale > 0 {
			v.EmojiScale = scale
		}
	}
}

// Compose flattens a value into rows for the given strategy. checked holds
// the section's completion slice keyed by row identity; absent means
// unchecked. Row order follows the value's own order.
func Compose(strategy Strategy, value doc.Value, checked map[string]bool, opts ...Option) View {
	v := View{Strategy: strategy, EmojiScale: DefaultEmojiScale}
	for _, opt := range opts {
		opt(&v)
	}

	interactive := strategy.Interactive()

	switch strategy {
	case BulletList, Checklist:
		for i, item := range value.List() {
			v.Rows = append(v.Rows, newRow(strconv.Itoa(i), "", item.String(), checked, interactive))
		}
	case KeyValueList, ChecklistKeyValue:
		for _, e := range value.Entries() {
			v.Rows = append(v.Rows, newRow(e.Key, doc.FormatTitle(e.Key), e.Value.String(), checked, interactive))
		}
	case Paragraph, ScalarText:
		if text := value.String(); text != "" {
			v.Rows = append(v.Rows, newRow("0", "", text, nil, false))
		}
	case ChecklistLines:
		for i, line := range value.Lines() {
			v.Rows = append(v.Rows, newRow(strconv.Itoa(i), "", line, checked, interactive))
		}
	}

	return v
}

func newRow(identity, label, text string, checked map[string]bool, interactive bool) Row {
	return Row{
		Identity:    identity,
		Label:       label,
		Text:        text,
		Runs:        emoji.Segment(text),
		Checked:     interactive && checked[identity],
		Interactive: interactive,
	}
}
