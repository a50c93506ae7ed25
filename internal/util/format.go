package util

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var krwPrinter = message.NewPrinter(language.Korean)

// FormatPrice renders a KRW amount with digit grouping, e.g. 120000 -> "120,000원"
func FormatPrice(price int64) string {
	return krwPrinter.Sprintf("%d원", price)
}

// RoundTo1 rounds to one decimal place
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NormalizeClockTime accepts "HH:MM" or "HH:MM:SS" and returns "HH:MM"
func NormalizeClockTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
}
