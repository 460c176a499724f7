package models

import "time"

// Snapshot is the merged result of one run's fetch phase. Every field is
// independently optional: nil means the fetch failed or the provider had
// nothing, and the renderer simply omits the matching section.
type Snapshot struct {
	Weather     *CurrentWeather
	Sun         *SunTimes
	News        *NewsDigest
	Finance     *FinanceData
	Crypto      []CryptoPrice
	Electricity *ElectricityPrices
	Calendar    *CalendarFacts
	Greeting    string
	FetchedAt   time.Time
}

// SectionCount reports how many data sections the fetch phase produced.
func (s *Snapshot) SectionCount() int {
	count := 0
	if s.Weather != nil {
		count++
	}
	if s.Sun != nil {
		count++
	}
	if s.News != nil {
		count++
	}
	if s.Finance != nil {
		count++
	}
	if len(s.Crypto) > 0 {
		count++
	}
	if s.Electricity != nil {
		count++
	}
	return count
}
