// Package doc models the semi-structured help document: an ordered mapping of
// section keys to text, lists, or nested objects. Section order matters for
// display, so decoding walks the JSON token stream instead of using maps.
package doc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind discriminates the closed set of value shapes.
type Kind int

const (
	// KindText is a plain string section.
	KindText Kind = iota
	// KindList is an ordered list of values.
	KindList
	// KindNested is an ordered object of key/value entries.
	KindNested
	// KindScalar is anything else (number, bool, null), kept in string form.
	KindScalar
)

// Value is one section's content. The zero value is empty text.
type Value struct {
	kind    Kind
	text    string
	list    []Value
	entries []Entry
	scalar  string
}

// Entry is one key/value pair of a nested object, order preserved.
type Entry struct {
	Key   string
	Value Value
}

// TextValue wraps a plain string.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// ListValue wraps an ordered list.
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// NestedValue wraps ordered object entries.
func NestedValue(entries ...Entry) Value { return Value{kind: KindNested, entries: entries} }

// ScalarValue wraps a non-string scalar already coerced to its display form.
func ScalarValue(s string) Value { return Value{kind: KindScalar, scalar: s} }

// Kind reports the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string content for KindText, otherwise "".
func (v Value) Text() string { return v.text }

// List returns the items for KindList.
func (v Value) List() []Value { return v.list }

// Entries returns the ordered entries for KindNested.
func (v Value) Entries() []Entry { return v.entries }

// String coerces any value to display text. Lists and objects flatten to a
// newline-joined form; this is the shape-mismatch fallback, never an error.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindScalar:
		return v.scalar
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, "\n")
	case KindNested:
		parts := make([]string, 0, len(v.entries))
		for _, e := range v.entries {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Key, e.Value.String()))
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// Lines splits the coerced text into trimmed, non-blank lines.
func (v Value) Lines() []string {
	raw := strings.FieldsFunc(v.String(), func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// ItemCount is the number of checkable units in the value: list length,
// non-blank line count for text, key count for objects, zero for scalars.
func (v Value) ItemCount() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindText:
		return len(v.Lines())
	case KindNested:
		return len(v.entries)
	}
	return 0
}

// MetadataKey is never rendered; matching is case-insensitive.
const MetadataKey = "metadata"

// Document is an ordered mapping of section keys to values.
type Document struct {
	entries []Entry
}

// Len returns the number of top-level sections, reserved keys included.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns all top-level entries in document order.
func (d *Document) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Get returns the value for key and whether it exists. Keys are case-sensitive.
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// VisibleKeys returns section keys in document order with the reserved
// metadata key filtered out.
func (d *Document) VisibleKeys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		if strings.ToLower(e.Key) == MetadataKey {
			continue
		}
		keys = append(keys, e.Key)
	}
	return keys
}

// Classification maps section keys to whether the section holds actionable
// tasks. Absent keys are informational.
type Classification map[string]bool

// HasTasks reports whether key is flagged actionable.
func (c Classification) HasTasks(key string) bool {
	if c == nil {
		return false
	}
	return c[key]
}

// Decode reads an ordered document from r. A missing, null, or non-object
// body yields an empty document rather than an error; only malformed JSON
// inside an object body fails.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("doc: decode: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return &Document{}, nil
	}

	entries, err := decodeEntries(dec)
	if err != nil {
		return nil, err
	}
	return &Document{entries: entries}, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(b []byte) (*Document, error) {
	return Decode(bytes.NewReader(b))
}

func decodeEntries(dec *json.Decoder) ([]Entry, error) {
	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("doc: decode key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("doc: expected object key, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("doc: decode close: %w", err)
	}
	return entries, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("doc: decode value: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			entries, err := decodeEntries(dec)
			if err != nil {
				return Value{}, err
			}
			return NestedValue(entries...), nil
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("doc: decode close: %w", err)
			}
			return ListValue(items...), nil
		}
		return Value{}, fmt.Errorf("doc: unexpected delimiter %v", t)
	case string:
		return TextValue(t), nil
	case json.Number:
		return ScalarValue(t.String()), nil
	case bool:
		if t {
			return ScalarValue("true"), nil
		}
		return ScalarValue("false"), nil
	case nil:
		return ScalarValue("null"), nil
	}
	return ScalarValue(fmt.Sprint(tok)), nil
}
