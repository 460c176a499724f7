package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, day(2024, time.March, 31)},
		{2025, day(2025, time.April, 20)},
		{2026, day(2026, time.April, 5)},
		{2027, day(2027, time.March, 28)},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, EasterSunday(tc.year), "year %d", tc.year)
	}
}

func TestPublicHolidays_MovableDates2025(t *testing.T) {
	holidays := PublicHolidays(2025)
	byName := make(map[string]time.Time, len(holidays))
	for _, h := range holidays {
		byName[h.Name] = h.Date
	}

	assert.Equal(t, day(2025, time.April, 13), byName["Palmesøndag"])
	assert.Equal(t, day(2025, time.April, 17), byName["Skjærtorsdag"])
	assert.Equal(t, day(2025, time.April, 18), byName["Langfredag"])
	assert.Equal(t, day(2025, time.April, 21), byName["Andre påskedag"])
	assert.Equal(t, day(2025, time.May, 29), byName["Kristi himmelfartsdag"])
	assert.Equal(t, day(2025, time.June, 8), byName["Første pinsedag"])
	assert.Equal(t, day(2025, time.June, 9), byName["Andre pinsedag"])
}

func TestPublicHolidays_Sorted(t *testing.T) {
	holidays := PublicHolidays(2026)
	require.Len(t, holidays, 13)
	for i := 1; i < len(holidays); i++ {
		assert.True(t, holidays[i].Date.After(holidays[i-1].Date))
	}
}

func TestNextHoliday(t *testing.T) {
	// A holiday counts on its own day.
	h := NextHoliday(day(2025, time.May, 17))
	require.NotNil(t, h)
	assert.Equal(t, "Grunnlovsdagen", h.Name)

	// Between holidays it skips to the coming one.
	h = NextHoliday(day(2025, time.May, 18))
	require.NotNil(t, h)
	assert.Equal(t, "Kristi himmelfartsdag", h.Name)

	// After Christmas it rolls into next year.
	h = NextHoliday(day(2025, time.December, 27))
	require.NotNil(t, h)
	assert.Equal(t, "Første nyttårsdag", h.Name)
	assert.Equal(t, 2026, h.Date.Year())
}

func TestNextVacation(t *testing.T) {
	v := NextVacation(day(2025, time.June, 1))
	require.NotNil(t, v)
	assert.Equal(t, "Sommerferie", v.Name)

	// An ongoing vacation is still the next one.
	v = NextVacation(day(2025, time.July, 10))
	require.NotNil(t, v)
	assert.Equal(t, "Sommerferie", v.Name)
	assert.True(t, v.IsActive(day(2025, time.July, 10)))
}

func TestNextEvent(t *testing.T) {
	e := NextEvent(day(2025, time.December, 25))
	require.NotNil(t, e)
	assert.Equal(t, "🎆 Nyttårsaften", e.Name)

	e = NextEvent(day(2026, time.February, 7))
	require.NotNil(t, e)
	assert.Equal(t, "🏈 Super Bowl LX", e.Name)
}

func TestNameDaysFor_EveryDayCovered(t *testing.T) {
	// 2024 is a leap year, so this walks all 366 month-day keys.
	for d := day(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		names := NameDaysFor(d)
		assert.NotEmpty(t, names, "no name days for %s", d.Format("01-02"))
	}
}

func TestHistoricalEventsFor_EveryDayCovered(t *testing.T) {
	for d := day(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		events := HistoricalEventsFor(d)
		assert.NotEmpty(t, events, "no historical events for %s", d.Format("01-02"))
	}
}

func TestFactsFor(t *testing.T) {
	facts := FactsFor(day(2025, time.December, 20))

	require.NotNil(t, facts.NextHoliday)
	assert.Equal(t, "Første juledag", facts.NextHoliday.Name)
	require.NotNil(t, facts.NextVacation)
	assert.Equal(t, "Juleferie", facts.NextVacation.Name)
	require.NotNil(t, facts.NextEvent)
	assert.Equal(t, "🎄 Julaften", facts.NextEvent.Name)
	assert.NotEmpty(t, facts.NameDays)
	assert.NotEmpty(t, facts.HistoricalEvents)
}
