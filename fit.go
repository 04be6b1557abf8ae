package autolink

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// FitText returns the text of link shortened to at most width terminal cells. A URL
// link drops its "scheme://" prefix first; whatever is still too wide is cut and ends
// with an ellipsis. A width <= 0 disables fitting.
func FitText(link Span, input string, width int) string {
	text := link.Text(input)
	if width <= 0 || ansi.PrintableRuneWidth(text) <= width {
		return text
	}
	if link.Kind() == KindURL {
		if idx := strings.Index(text, "://"); idx != -1 {
			text = text[idx+3:]
			if ansi.PrintableRuneWidth(text) <= width {
				return text
			}
		}
	}
	return truncateWithEllipsis(text, width)
}

func truncateWithEllipsis(text string, width int) string {
	if ansi.PrintableRuneWidth(text) <= width {
		return text
	}
	if width <= 0 {
		return ""
	}
	if width == 1 {
		return ellipsis
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
