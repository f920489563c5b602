package doc

import "strings"

// Markdown renders the document as markdown: each section key becomes a
// heading, lists become bullet points, strings become paragraphs, nested
// objects recurse with their keys as headings. The reserved metadata key is
// skipped.
func Markdown(d *Document) string {
	var b strings.Builder
	for _, key := range d.VisibleKeys() {
		v, _ := d.Get(key)
		writeMarkdownSection(&b, key, v)
	}
	return b.String()
}

func writeMarkdownSection(b *strings.Builder, key string, v Value) {
	b.WriteString("## ")
	b.WriteString(FormatTitle(key))
	b.WriteString("\n\n")

	switch v.Kind() {
	case KindList:
		for _, item := range v.List() {
			b.WriteString("- ")
			b.WriteString(item.String())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	case KindNested:
		for _, e := range v.Entries() {
			writeMarkdownSection(b, e.Key, e.Value)
		}
	default:
		b.WriteString(v.String())
		b.WriteString("\n\n")
	}
}
