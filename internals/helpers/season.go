package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* ===============================
   Saison sportive

   A season is labeled "Y/Y+1" and runs from day 1 of the pivot month
   (August by default) through June 30 of the following year.
=================================*/

// SeasonLabel returns the season a date belongs to, given the pivot month.
func SeasonLabel(t time.Time, pivot time.Month) string {
	y := t.Year()
	if t.Month() >= pivot {
		return fmt.Sprintf("%d/%d", y, y+1)
	}
	return fmt.Sprintf("%d/%d", y-1, y)
}

// CurrentSeason is SeasonLabel for "now".
func CurrentSeason(now time.Time, pivot time.Month) string {
	return SeasonLabel(now, pivot)
}

// NormalizeSeasonLabel accepts the dash spelling ("2024-2025") the old
// spreadsheet exports used and canonicalizes it to "2024/2025".
func NormalizeSeasonLabel(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, "-") == 1 && !strings.Contains(s, "/") {
		s = strings.ReplaceAll(s, "-", "/")
	}
	return s
}

// SeasonBounds parses a "Y1/Y2" label (Y2 must be Y1+1) and returns the UTC
// interval [1 <pivot> Y1 00:00:00, 30 June Y2 23:59:59.999].
func SeasonBounds(label string, pivot time.Month) (time.Time, time.Time, error) {
	parts := strings.Split(NormalizeSeasonLabel(label), "/")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("saison invalide: %q (attendu \"YYYY/YYYY\")", label)
	}
	y1, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y2, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("saison invalide: %q (attendu \"YYYY/YYYY\")", label)
	}
	if y2 != y1+1 {
		return time.Time{}, time.Time{}, fmt.Errorf("saison invalide: %q (la seconde année doit suivre la première)", label)
	}
	start := time.Date(y1, pivot, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)
	return start, end, nil
}
