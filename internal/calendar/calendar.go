package calendar

import (
	"fmt"
	"sort"
	"time"

	"morningbrief/internal/models"
)

// EasterSunday computes Easter Sunday for a year using the anonymous
// Gregorian (Meeus/Jones/Butcher) algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// PublicHolidays returns all Norwegian public holidays for a year, sorted by
// date. The movable ones are fixed offsets from Easter Sunday.
func PublicHolidays(year int) []models.Holiday {
	easter := EasterSunday(year)

	holidays := []models.Holiday{
		{Date: date(year, time.January, 1), Name: "Første nyttårsdag"},
		{Date: easter.AddDate(0, 0, -7), Name: "Palmesøndag"},
		{Date: easter.AddDate(0, 0, -3), Name: "Skjærtorsdag"},
		{Date: easter.AddDate(0, 0, -2), Name: "Langfredag"},
		{Date: easter, Name: "Første påskedag"},
		{Date: easter.AddDate(0, 0, 1), Name: "Andre påskedag"},
		{Date: date(year, time.May, 1), Name: "Arbeidernes dag"},
		{Date: date(year, time.May, 17), Name: "Grunnlovsdagen"},
		{Date: easter.AddDate(0, 0, 39), Name: "Kristi himmelfartsdag"},
		{Date: easter.AddDate(0, 0, 49), Name: "Første pinsedag"},
		{Date: easter.AddDate(0, 0, 50), Name: "Andre pinsedag"},
		{Date: date(year, time.December, 25), Name: "Første juledag"},
		{Date: date(year, time.December, 26), Name: "Andre juledag"},
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// NextHoliday finds the first public holiday on or after now, looking into
// next year when the rest of this year is empty.
func NextHoliday(now time.Time) *models.Holiday {
	today := date(now.Year(), now.Month(), now.Day())

	for _, year := range []int{now.Year(), now.Year() + 1} {
		for _, holiday := range PublicHolidays(year) {
			if !holiday.Date.Before(today) {
				h := holiday
				return &h
			}
		}
	}
	return nil
}

// Vacations lists the school vacation windows. The table is exported so the
// defaults can be replaced wholesale.
var Vacations = []models.Vacation{
	{Name: "Vinterferie", Start: date(2025, time.February, 17), End: date(2025, time.February, 21)},
	{Name: "Påskeferie", Start: date(2025, time.April, 14), End: date(2025, time.April, 21)},
	{Name: "Sommerferie", Start: date(2025, time.June, 20), End: date(2025, time.August, 15)},
	{Name: "Høstferie", Start: date(2025, time.October, 6), End: date(2025, time.October, 10)},
	{Name: "Juleferie", Start: date(2025, time.December, 22), End: date(2026, time.January, 2)},
	{Name: "Vinterferie", Start: date(2026, time.February, 16), End: date(2026, time.February, 20)},
	{Name: "Påskeferie", Start: date(2026, time.March, 30), End: date(2026, time.April, 6)},
	{Name: "Sommerferie", Start: date(2026, time.June, 19), End: date(2026, time.August, 14)},
	{Name: "Høstferie", Start: date(2026, time.October, 5), End: date(2026, time.October, 9)},
	{Name: "Juleferie", Start: date(2026, time.December, 21), End: date(2027, time.January, 1)},
}

// NextVacation returns the first vacation that has not ended yet, so an
// ongoing vacation counts as the next one.
func NextVacation(now time.Time) *models.Vacation {
	today := date(now.Year(), now.Month(), now.Day())

	for _, vacation := range Vacations {
		if !vacation.End.Before(today) {
			v := vacation
			return &v
		}
	}
	return nil
}

// Events are the one-off countdown targets. One date per event; collisions
// are data bugs, not features.
var Events = []models.Event{
	{Date: date(2025, time.May, 10), Name: "🎤 Eurovision 2025"},
	{Date: date(2025, time.June, 21), Name: "☀️ Sommeren starter!"},
	{Date: date(2025, time.July, 4), Name: "🚴 Tour de France starter"},
	{Date: date(2025, time.December, 24), Name: "🎄 Julaften"},
	{Date: date(2025, time.December, 31), Name: "🎆 Nyttårsaften"},
	{Date: date(2026, time.February, 6), Name: "🏅 Vinter-OL 2026"},
	{Date: date(2026, time.February, 8), Name: "🏈 Super Bowl LX"},
	{Date: date(2026, time.June, 11), Name: "⚽ VM 2026 starter!"},
}

func NextEvent(now time.Time) *models.Event {
	today := date(now.Year(), now.Month(), now.Day())

	for _, event := range Events {
		if !event.Date.Before(today) {
			e := event
			return &e
		}
	}
	return nil
}

// NameDaysFor returns today's Norwegian name-day names.
func NameDaysFor(now time.Time) []string {
	return nameDays[monthDayKey(now)]
}

// HistoricalEventsFor returns the on-this-day entries for the date.
func HistoricalEventsFor(now time.Time) []string {
	return historicalEvents[monthDayKey(now)]
}

// FactsFor assembles all calendar-derived facts for the given date.
func FactsFor(now time.Time) *models.CalendarFacts {
	return &models.CalendarFacts{
		NextHoliday:      NextHoliday(now),
		NextVacation:     NextVacation(now),
		NextEvent:        NextEvent(now),
		NameDays:         NameDaysFor(now),
		HistoricalEvents: HistoricalEventsFor(now),
	}
}

func monthDayKey(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
