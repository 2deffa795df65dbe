// Package report contains read-only reporting use cases.
package report

import (
	"fmt"
	"strings"
	"time"

	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// DateLayout is the layout of the dateFrom and dateTo query values.
const DateLayout = "2006-01-02"

// Period names a rolling window ending now.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// periodAliases maps every accepted spelling to its period.
var periodAliases = map[string]Period{
	"week":      PeriodWeek,
	"semana":    PeriodWeek,
	"month":     PeriodMonth,
	"mes":       PeriodMonth,
	"mês":       PeriodMonth,
	"quarter":   PeriodQuarter,
	"trimestre": PeriodQuarter,
	"year":      PeriodYear,
	"ano":       PeriodYear,
}

// WindowQuery holds the raw window parameters of a report request.
type WindowQuery struct {
	DateFrom string
	DateTo   string
	Period   string
}

// Window is a half-open time interval [From, To). A nil bound is unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

// ParsePeriod normalizes a period name. Unknown names fall back to month.
func ParsePeriod(raw string) Period {
	if p, ok := periodAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p
	}
	return PeriodMonth
}

// Start returns the beginning of the period relative to now.
func (p Period) Start(now time.Time) time.Time {
	loc := now.Location()
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodQuarter:
		return time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
}

// ResolveWindow resolves explicit dates first, then the named period, else no window.
// dateTo covers its whole day.
func ResolveWindow(q WindowQuery, now time.Time) (Window, error) {
	dateFrom := strings.TrimSpace(q.DateFrom)
	dateTo := strings.TrimSpace(q.DateTo)

	if dateFrom != "" || dateTo != "" {
		var w Window
		if dateFrom != "" {
			from, err := parseDate(dateFrom)
			if err != nil {
				return Window{}, err
			}
			w.From = &from
		}
		if dateTo != "" {
			to, err := parseDate(dateTo)
			if err != nil {
				return Window{}, err
			}
			to = to.AddDate(0, 0, 1)
			w.To = &to
		}
		if w.From != nil && w.To != nil && !w.To.After(*w.From) {
			return Window{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateRange,
				"dateTo must not be before dateFrom",
				domainerror.ErrInvalidDateRange,
			)
		}
		return w, nil
	}

	if strings.TrimSpace(q.Period) != "" {
		start := ParsePeriod(q.Period).Start(now)
		return Window{From: &start}, nil
	}

	return Window{}, nil
}

// CacheKey identifies the query for the report cache.
func (q WindowQuery) CacheKey(report string) string {
	period := ""
	if strings.TrimSpace(q.Period) != "" {
		period = string(ParsePeriod(q.Period))
	}
	return fmt.Sprintf("%s:%s:%s:%s", report, strings.TrimSpace(q.DateFrom), strings.TrimSpace(q.DateTo), period)
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw),
			domainerror.ErrInvalidDateFormat,
		)
	}
	return t, nil
}
