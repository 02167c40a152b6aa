package attendance

import "time"

// StatusCounts tallies records per status.
type StatusCounts struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	HalfDay    int `json:"half_day"`
	EarlyLeave int `json:"early_leave"`
	LateCome   int `json:"late_come"`
}

func (c *StatusCounts) add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusHalfDay:
		c.HalfDay++
	case StatusEarlyLeave:
		c.EarlyLeave++
	case StatusLateCome:
		c.LateCome++
	}
}

func (c StatusCounts) total() int {
	return c.Present + c.Absent + c.HalfDay + c.EarlyLeave + c.LateCome
}

// SummarizeDay counts each status across all employees for a single
// calendar day.
func SummarizeDay(records []AttendanceRecord, date time.Time) StatusCounts {
	var counts StatusCounts
	for i := range records {
		if SameDay(records[i].Date, date) {
			counts.add(records[i].Status)
		}
	}
	return counts
}

// SummarizeRange counts statuses over [from, to] (inclusive, day
// granularity) and derives the attendance percentage as
// present / total records in range.
func SummarizeRange(records []AttendanceRecord, from, to time.Time) (StatusCounts, float64) {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)

	var counts StatusCounts
	for i := range records {
		day := truncateToDay(records[i].Date)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		counts.add(records[i].Status)
	}

	total := counts.total()
	if total == 0 {
		return counts, 0
	}
	return counts, float64(counts.Present) / float64(total) * 100
}
