package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// installmentPattern matches "current/total" or "current-total" pairs.
// Date fragments such as "10/12" also match; the last pair in the text is used.
var installmentPattern = regexp.MustCompile(`(\d{1,2})([/-])(\d{1,2})`)

// projectionMarker is appended to descriptions of projected installments
const projectionMarker = "(Proj."

// Installment is the position of a row inside a multi-payment plan
type Installment struct {
	Current   int
	Total     int
	Separator string
}

// String renders the pair using its original separator
func (i Installment) String() string {
	return fmt.Sprintf("%d%s%d", i.Current, i.Separator, i.Total)
}

// Remaining returns how many installments come after the current one
func (i Installment) Remaining() int {
	if i.Total <= i.Current {
		return 0
	}
	return i.Total - i.Current
}

// ExtractInstallment finds the last installment pair in a description.
// A pair is accepted only when 1 <= current <= total.
func ExtractInstallment(description string) (Installment, bool) {
	matches := installmentPattern.FindAllStringSubmatch(description, -1)
	if len(matches) == 0 {
		return Installment{}, false
	}

	last := matches[len(matches)-1]
	current, err := strconv.Atoi(last[1])
	if err != nil {
		return Installment{}, false
	}
	total, err := strconv.Atoi(last[3])
	if err != nil {
		return Installment{}, false
	}

	if current < 1 || current > total {
		return Installment{}, false
	}

	return Installment{Current: current, Total: total, Separator: last[2]}, true
}

// ReplaceInstallment rewrites the last installment pair of a description to current/total
// and appends a projection marker if none is present yet.
func ReplaceInstallment(description string, current, total int) string {
	locs := installmentPattern.FindAllStringSubmatchIndex(description, -1)

	rewritten := description
	if len(locs) > 0 {
		loc := locs[len(locs)-1]
		separator := description[loc[4]:loc[5]]
		rewritten = description[:loc[0]] + fmt.Sprintf("%d%s%d", current, separator, total) + description[loc[1]:]
	}

	if !strings.Contains(rewritten, projectionMarker) {
		rewritten = fmt.Sprintf("%s %s %d/%d)", rewritten, projectionMarker, current, total)
	}
	return rewritten
}

// AddMonthsClamped moves a date forward by whole months, clamping the day to the
// last day of the target month (Jan 31 + 1 month = Feb 28 or 29).
func AddMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	hour, minute, sec := date.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, hour, minute, sec, date.Nanosecond(), date.Location())
	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), date.Location())
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, date.Nanosecond(), date.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
