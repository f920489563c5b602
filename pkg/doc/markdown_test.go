package doc

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	d, err := Decode(strings.NewReader(`{
		"metadata": {"filename": "help.txt"},
		"daily_tasks": ["Task 1", "Task 2"],
		"purpose": "To help you",
		"details": {"sender": "Support Team"}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := Markdown(d)
	want := "## Daily Tasks\n\n- Task 1\n- Task 2\n\n" +
		"## Purpose\n\nTo help you\n\n" +
		"## Details\n\n## Sender\n\nSupport Team\n\n"
	if got != want {
		t.Fatalf("unexpected markdown:\n%q\nwant:\n%q", got, want)
	}
	if strings.Contains(got, "Metadata") {
		t.Fatalf("metadata leaked into markdown")
	}
}
