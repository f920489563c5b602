package checklist

import (
	"testing"

	"tableflip.dev/helpdeck/pkg/doc"
)

func TestToggleFlips(t *testing.T) {
	tr := NewTracker()

	now, was := tr.Toggle("s", "0")
	if !now || was {
		t.Fatalf("first toggle: got now=%v was=%v", now, was)
	}
	now, was = tr.Toggle("s", "0")
	if now || !was {
		t.Fatalf("second toggle: got now=%v was=%v", now, was)
	}
	if tr.Checked("s", "0") {
		t.Fatalf("double toggle should restore unchecked")
	}
}

func TestToggleIndependentKeys(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("a", "0")
	tr.Toggle("b", "0")
	tr.Toggle("a", "1")

	if !tr.Checked("a", "0") || !tr.Checked("a", "1") || !tr.Checked("b", "0") {
		t.Fatalf("keys should toggle independently")
	}
	if tr.Checked("a", "2") {
		t.Fatalf("absent key should read unchecked")
	}
}

func TestCompleteList(t *testing.T) {
	tr := NewTracker()
	v := doc.ListValue(doc.TextValue("a"), doc.TextValue("b"), doc.TextValue("c"))

	if tr.Complete("s", v) {
		t.Fatalf("empty state should not be complete")
	}
	tr.Toggle("s", "0")
	tr.Toggle("s", "1")
	if tr.Complete("s", v) {
		t.Fatalf("2 of 3 should not be complete")
	}
	tr.Toggle("s", "2")
	if !tr.Complete("s", v) {
		t.Fatalf("3 of 3 should be complete")
	}
	tr.Toggle("s", "1")
	if tr.Complete("s", v) {
		t.Fatalf("unchecking one item must revoke completion")
	}
}

func TestCompleteTextLines(t *testing.T) {
	tr := NewTracker()
	v := doc.TextValue("first\n\nsecond\n")

	tr.Toggle("s", "0")
	tr.Toggle("s", "1")
	if !tr.Complete("s", v) {
		t.Fatalf("both non-blank lines checked should complete")
	}
}

func TestCompleteNestedKeys(t *testing.T) {
	tr := NewTracker()
	v := doc.NestedValue(
		doc.Entry{Key: "warmup", Value: doc.TextValue("stretch")},
		doc.Entry{Key: "main", Value: doc.TextValue("run")},
	)

	tr.Toggle("s", "warmup")
	if tr.Complete("s", v) {
		t.Fatalf("one of two keys should not complete")
	}
	tr.Toggle("s", "main")
	if !tr.Complete("s", v) {
		t.Fatalf("all keys checked should complete")
	}
}

func TestScalarNeverComplete(t *testing.T) {
	tr := NewTracker()
	v := doc.ScalarValue("42")
	tr.Toggle("s", "0")
	if tr.Complete("s", v) {
		t.Fatalf("scalar sections are never completable")
	}
	if done, total := tr.Progress("s", v); done != 0 || total != 0 {
		t.Fatalf("scalar progress should be 0/0, got %d/%d", done, total)
	}
}

func TestResetDropsState(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("s", "0")
	tr.Reset()
	if tr.Checked("s", "0") {
		t.Fatalf("reset should drop checked state")
	}
}
