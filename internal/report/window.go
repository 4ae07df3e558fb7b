// Package report implements the aggregation engine: pure functions
// turning a snapshot of income and expense records into time-bucketed
// summaries. Nothing in this package performs I/O or mutation.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/types"
)

// ErrWindowInvalid is returned for unparseable window selectors.
var ErrWindowInvalid = errors.New("the window must be \"month\", \"ytd\" or a month count such as \"6m\"")

// DefaultMonths is the month count of the default reporting window.
const DefaultMonths = 6

type windowKind int

const (
	windowCurrentMonthDaily windowKind = iota
	windowLastNMonths
	windowYearToDate
)

// Window selects the reporting time range and its bucket granularity:
// daily buckets for the current month, or monthly buckets for a
// trailing range of months.
type Window struct {
	kind   windowKind
	months int
}

// CurrentMonthDaily is the current calendar month in daily buckets.
func CurrentMonthDaily() Window {
	return Window{kind: windowCurrentMonthDaily}
}

// LastNMonths is the current and the n-1 preceding calendar months in
// monthly buckets.
func LastNMonths(n int) Window {
	return Window{kind: windowLastNMonths, months: n}
}

// YearToDate is January of the current year through the current month
// in monthly buckets.
func YearToDate() Window {
	return Window{kind: windowYearToDate}
}

// ParseWindow parses a window selector: "month", "ytd" or "<n>m". An
// empty selector is the default six month window.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(s) {
	case "":
		return LastNMonths(DefaultMonths), nil
	case "month":
		return CurrentMonthDaily(), nil
	case "ytd":
		return YearToDate(), nil
	}

	if n, ok := strings.CutSuffix(strings.ToLower(s), "m"); ok {
		months, err := strconv.Atoi(n)
		if err == nil && months >= 1 && months <= 120 {
			return LastNMonths(months), nil
		}
	}

	return Window{}, fmt.Errorf("%w, got %q", ErrWindowInvalid, s)
}

// String returns the selector form of the window.
func (w Window) String() string {
	switch w.kind {
	case windowCurrentMonthDaily:
		return "month"
	case windowYearToDate:
		return "ytd"
	default:
		return fmt.Sprintf("%dm", w.months)
	}
}

// Daily reports whether the window buckets by day instead of month.
func (w Window) Daily() bool {
	return w.kind == windowCurrentMonthDaily
}

// buckets returns the zero-filled bucket skeleton for the window at
// the given instant, oldest first.
func (w Window) buckets(now time.Time) []Bucket {
	switch w.kind {
	case windowCurrentMonthDaily:
		month := types.MonthOf(now)
		buckets := make([]Bucket, 0, month.Days())
		for day := 1; day <= month.Days(); day++ {
			date := types.NewDate(now.Year(), now.Month(), day)
			buckets = append(buckets, Bucket{
				Key:     date.String(),
				Label:   fmt.Sprintf("%02d", day),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}
		return buckets

	default:
		months := w.months
		if w.kind == windowYearToDate {
			months = int(now.Month())
		}

		buckets := make([]Bucket, 0, months)
		for i := months - 1; i >= 0; i-- {
			month := types.MonthOf(now).AddDate(0, -i)
			buckets = append(buckets, Bucket{
				Key:     month.String(),
				Label:   month.ShortName(),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}
		return buckets
	}
}

// key returns the bucket key a date belongs to under this window.
func (w Window) key(date types.Date) string {
	if w.Daily() {
		return date.String()
	}

	return date.Month().String()
}
