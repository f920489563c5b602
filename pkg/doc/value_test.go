package doc

import (
	"strings"
	"testing"
)

const sampleJSON = `{
	"metadata": {"employer": "Example Company", "upload_date": "2026-08-31 10:00"},
	"daily_tasks": ["Read a book", "Practice speaking"],
	"contact_information": "Contact support at support@example.com",
	"details": {"sender": "Support Team", "recipient": "User"},
	"priority": 3
}`

func TestDecodePreservesOrder(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"metadata", "daily_tasks", "contact_information", "details", "priority"}
	got := d.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Fatalf("entry %d: expected key %q, got %q", i, key, got[i].Key)
		}
	}
}

func TestDecodeShapes(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if v, _ := d.Get("daily_tasks"); v.Kind() != KindList || len(v.List()) != 2 {
		t.Fatalf("daily_tasks: expected 2-item list, got kind %d len %d", v.Kind(), len(v.List()))
	}
	if v, _ := d.Get("contact_information"); v.Kind() != KindText {
		t.Fatalf("contact_information: expected text, got kind %d", v.Kind())
	}
	if v, _ := d.Get("details"); v.Kind() != KindNested || len(v.Entries()) != 2 {
		t.Fatalf("details: expected nested with 2 entries")
	}
	if v, _ := d.Get("priority"); v.Kind() != KindScalar || v.String() != "3" {
		t.Fatalf("priority: expected scalar 3, got %q", v.String())
	}
}

func TestDecodeTolerance(t *testing.T) {
	for _, in := range []string{"", "null", `"just a string"`, "[1,2,3]", "42"} {
		d, err := Decode(strings.NewReader(in))
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", in, err)
		}
		if d.Len() != 0 {
			t.Fatalf("input %q: expected empty document, got %d entries", in, d.Len())
		}
	}
}

func TestVisibleKeysExcludesMetadata(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"Metadata": {"a": "b"}, "daily_tasks": ["x"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	keys := d.VisibleKeys()
	if len(keys) != 1 || keys[0] != "daily_tasks" {
		t.Fatalf("expected only daily_tasks visible, got %v", keys)
	}
}

func TestItemCount(t *testing.T) {
	cases := []struct {
		v    Value
		want int
	}{
		{ListValue(TextValue("a"), TextValue("b"), TextValue("c")), 3},
		{TextValue("one\n\n  \ntwo\r\nthree"), 3},
		{NestedValue(Entry{Key: "a", Value: TextValue("x")}, Entry{Key: "b", Value: TextValue("y")}), 2},
		{ScalarValue("42"), 0},
		{TextValue(""), 0},
	}
	for i, c := range cases {
		if got := c.v.ItemCount(); got != c.want {
			t.Fatalf("case %d: expected %d, got %d", i, c.want, got)
		}
	}
}

func TestLinesTrimAndDropBlank(t *testing.T) {
	v := TextValue("  first \n\n second\r\n\t\nthird")
	lines := v.Lines()
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestStringCoercion(t *testing.T) {
	v := NestedValue(Entry{Key: "sender", Value: TextValue("Support Team")})
	if got := v.String(); got != "sender: Support Team" {
		t.Fatalf("unexpected coercion: %q", got)
	}
	if got := ListValue(ScalarValue("1"), ScalarValue("2")).String(); got != "1\n2" {
		t.Fatalf("unexpected list coercion: %q", got)
	}
}
