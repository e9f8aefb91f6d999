package budget

import (
	"fmt"
	"strings"
)

// ProgressBar renders an ASCII usage bar for chars used against a
// character budget. Width is the bar's interior width in characters.
func ProgressBar(charsUsed, charBudget, width int) string {
	if charBudget <= 0 {
		return "[no budget]"
	}
	if width <= 0 {
		width = 28
	}

	ratio := float64(charsUsed) / float64(charBudget)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	fill := int(ratio * float64(width))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("#", fill),
		strings.Repeat("-", width-fill),
		int(ratio*100))
}
