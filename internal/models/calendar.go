package models

import "time"

type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// DaysUntil is always computed against the caller's clock, never stored.
func (h *Holiday) DaysUntil(now time.Time) int {
	return daysBetween(now, h.Date)
}

type Vacation struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (v *Vacation) DaysUntilStart(now time.Time) int {
	return daysBetween(now, v.Start)
}

func (v *Vacation) IsActive(now time.Time) bool {
	day := truncateToDay(now)
	return !day.Before(truncateToDay(v.Start)) && !day.After(truncateToDay(v.End))
}

type Event struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

func (e *Event) DaysUntil(now time.Time) int {
	return daysBetween(now, e.Date)
}

// CalendarFacts bundles everything date-driven for the day of the run.
type CalendarFacts struct {
	NextHoliday      *Holiday
	NextVacation     *Vacation
	NextEvent        *Event
	NameDays         []string
	HistoricalEvents []string
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
