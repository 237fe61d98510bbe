package styles

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateString shortens plain text to maxWidth terminal cells, ending it
// with "..." when cut. Grapheme clusters are never split, so emoji and
// combining marks stay intact.
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 1 {
		return ""
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var b strings.Builder
	budget := maxWidth - 3
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		w := runewidth.StringWidth(cluster)
		if w > budget {
			break
		}
		budget -= w
		b.WriteString(cluster)
	}
	return b.String() + "..."
}
