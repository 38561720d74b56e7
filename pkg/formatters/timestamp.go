package formatters

import (
	"fmt"
	"math"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// secondsToTimestamp formate des secondes en "HH:MM:SS<sep>mmm".
// Conversion unique en millisecondes (arrondi au plus proche, égalité loin de zéro),
// puis décomposition entière : 0.9999 -> "00:00:01,000", 59.9999 -> "00:01:00,000".
func secondsToTimestamp(seconds float64, msSep byte) string {
	total := int64(math.Round(seconds * msPerSecond))
	h := total / msPerHour
	m := total % msPerHour / msPerMinute
	s := total % msPerMinute / msPerSecond
	ms := total % msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, s, msSep, ms)
}
