// Package emoji splits text into plain-text and emoji runs so renderers can
// style emoji at a different scale than the surrounding text.
package emoji

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Kind tags a run as plain text or emoji.
type Kind int

const (
	Text Kind = iota
	Emoji
)

// Run is one contiguous slice of the input. Concatenating the values of all
// runs in order reproduces the original string exactly.
type Run struct {
	Kind  Kind
	Value string
}

const (
	variationSelector16 = 0xFE0F
	zeroWidthJoiner     = 0x200D
)

// pictographic approximates the Extended_Pictographic property plus the
// emoji-presentation blocks. Regional indicators are included so flag pairs
// classify without needing the pairing itself.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x21AA, Stride: 1},
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23CF, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1},
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1},
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303D, Hi: 0x303D, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1},
		{Lo: 0x1F170, Hi: 0x1F251, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1},
		{Lo: 0x1F7E0, Hi: 0x1F7EB, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
	},
}

// Segment splits text into an ordered sequence of runs. Grapheme clusters are
// never split, so flags, skin tones, and ZWJ sequences stay one emoji run.
// Contiguous non-emoji text stays one run. Empty input yields no runs.
func Segment(text string) []Run {
	if text == "" {
		return nil
	}

	var runs []Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Kind: Text, Value: plain.String()})
			plain.Reset()
		}
	}

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if isEmojiCluster(gr.Runes()) {
			flush()
			runs = append(runs, Run{Kind: Emoji, Value: cluster})
			continue
		}
		plain.WriteString(cluster)
	}
	flush()

	return runs
}

// HasEmoji reports whether text contains at least one emoji run.
func HasEmoji(text string) bool {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if isEmojiCluster(gr.Runes()) {
			return true
		}
	}
	return false
}

func isEmojiCluster(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	if unicode.Is(pictographic, runes[0]) {
		return true
	}
	// Keycaps and text-default symbols rendered as emoji carry VS16; a ZWJ
	// only shows up inside emoji sequences.
	for _, r := range runes[1:] {
		if r == variationSelector16 || r == zeroWidthJoiner {
			return true
		}
	}
	return false
}
