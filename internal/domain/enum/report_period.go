package enum

import (
	"encoding/json"
	"time"
)

// ReportPeriod is the relative time window a sales report covers
type ReportPeriod int

const (
	ReportPeriodMonth   ReportPeriod = 0
	ReportPeriodWeek    ReportPeriod = 1
	ReportPeriodQuarter ReportPeriod = 2
	ReportPeriodYear    ReportPeriod = 3
	ReportPeriodAll     ReportPeriod = 4
)

func (p ReportPeriod) String() string {
	return [...]string{"month", "week", "quarter", "year", "all"}[p]
}

// ParseReportPeriod maps a query value to a period. Unknown values fall back to month.
func ParseReportPeriod(s string) ReportPeriod {
	switch s {
	case "week":
		return ReportPeriodWeek
	case "quarter":
		return ReportPeriodQuarter
	case "year":
		return ReportPeriodYear
	case "all":
		return ReportPeriodAll
	default:
		return ReportPeriodMonth
	}
}

// Start returns the beginning of the window ending at now. The second value is
// false for ReportPeriodAll, which has no lower bound.
func (p ReportPeriod) Start(now time.Time) (time.Time, bool) {
	switch p {
	case ReportPeriodWeek:
		return now.AddDate(0, 0, -7), true
	case ReportPeriodQuarter:
		return now.AddDate(0, -3, 0), true
	case ReportPeriodYear:
		return now.AddDate(-1, 0, 0), true
	case ReportPeriodAll:
		return time.Time{}, false
	default:
		return now.AddDate(0, -1, 0), true
	}
}

func (p ReportPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *ReportPeriod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = ParseReportPeriod(str)
	return nil
}
