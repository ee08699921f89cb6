package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func Pluralize(s string, count int64) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", s)
	}

	// batches, hashes
	if strings.HasSuffix(strings.ToLower(s), "h") {
		s += "e"
	}

	return fmt.Sprintf("%s %ss", humanize.Comma(count), s)
}

func PrintFormattedTitle(title string) {
	color.HiCyan(title)
	fmt.Println(strings.Repeat("=", len(title)))
}

// TruncateForDisplay shortens long names for table output.
func TruncateForDisplay(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}

func IsInArray(needle string, haystack []string) bool {
	for _, entry := range haystack {
		if entry == needle {
			return true
		}
	}

	return false
}
