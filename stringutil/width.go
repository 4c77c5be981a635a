package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the terminal display width of s (wcwidth-based,
// counted per grapheme cluster so combining sequences and emoji are not
// over-counted).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth shortens s to at most w display columns without breaking
// grapheme clusters. When truncation happens, suffix is appended in place
// of the removed tail if it fits inside w; a suffix wider than w is
// dropped rather than overflowing the budget.
func TruncateByWidth(s string, w int, suffix string) string {
	if w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	suffixW := runewidth.StringWidth(suffix)
	budget := w - suffixW
	if budget < 0 {
		suffix = ""
		budget = w
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		seg := g.Str()
		segW := runewidth.StringWidth(seg)
		if used+segW > budget {
			break
		}
		b.WriteString(seg)
		used += segW
	}
	return b.String() + suffix
}
