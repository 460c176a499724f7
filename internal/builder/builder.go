package builder

import (
	"fmt"
	"strings"
	"time"

	"morningbrief/internal/content"
	"morningbrief/internal/models"
)

const Version = "1.0.0"

const fallbackColor = 0x5814FF

// weekdayColors keys on time.Weekday, Sunday = 0.
var weekdayColors = map[time.Weekday]int{
	time.Monday:    0x3498DB,
	time.Tuesday:   0x2ECC71,
	time.Wednesday: 0x9B59B6,
	time.Thursday:  0xE67E22,
	time.Friday:    0xE74C3C,
	time.Saturday:  0xF39C12,
	time.Sunday:    0x1ABC9C,
}

var weekdayNames = [...]string{"Søndag", "Mandag", "Tirsdag", "Onsdag", "Torsdag", "Fredag", "Lørdag"}

var monthNames = [...]string{"januar", "februar", "mars", "april", "mai", "juni",
	"juli", "august", "september", "oktober", "november", "desember"}

// Builder renders a Snapshot into a Discord webhook message. Rendering is
// pure: given the same snapshot and picker state it produces the same
// message, and a nil section simply omits its field.
type Builder struct {
	city   string
	picker *content.Picker
}

func NewBuilder(city string, picker *content.Picker) *Builder {
	return &Builder{city: city, picker: picker}
}

func (b *Builder) Build(snapshot *models.Snapshot) *models.WebhookMessage {
	now := snapshot.FetchedAt

	embed := models.Embed{
		Title:       title(now),
		Description: snapshot.Greeting,
		Color:       colorFor(now.Weekday()),
		Timestamp:   models.FormatTimestamp(now),
		Footer: &models.EmbedFooter{
			Text: fmt.Sprintf("Morgenbrief v%s • %s", Version, b.city),
		},
	}

	b.addWeather(&embed, snapshot)
	b.addElectricity(&embed, snapshot.Electricity)
	b.addNews(&embed, snapshot.News)
	b.addStocks(&embed, snapshot.Finance)
	b.addCurrencies(&embed, snapshot.Finance)
	b.addCrypto(&embed, snapshot.Crypto)
	b.addCountdowns(&embed, snapshot.Calendar, now)
	b.addNameDays(&embed, snapshot.Calendar)
	b.addHistory(&embed, snapshot.Calendar)
	b.addEntertainment(&embed)
	b.addChallenge(&embed)

	message := &models.WebhookMessage{Embeds: []models.Embed{embed}}
	message.Clamp()
	return message
}

func title(now time.Time) string {
	_, week := now.ISOWeek()
	return fmt.Sprintf("☀️ God morgen! %s %d. %s %d (Uke %d)",
		weekdayNames[now.Weekday()], now.Day(), monthNames[now.Month()-1], now.Year(), week)
}

func colorFor(day time.Weekday) int {
	if color, ok := weekdayColors[day]; ok {
		return color
	}
	return fallbackColor
}

func (b *Builder) addWeather(embed *models.Embed, snapshot *models.Snapshot) {
	weather := snapshot.Weather
	sun := snapshot.Sun

	if weather == nil {
		if sun != nil {
			embed.AddField("🌅 Solen i dag",
				fmt.Sprintf("Opp: %s • Ned: %s • Dagslys: %s",
					sun.Sunrise, sun.Sunset, sun.DaylightFormatted()),
				false)
		}
		return
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("**%.1f°C** %s", weather.Temperature, weather.SymbolText))

	if feels := weather.FeelsLike(); feels != weather.Temperature {
		lines = append(lines, fmt.Sprintf("Føles som: %.1f°C", feels))
	}

	lines = append(lines, fmt.Sprintf("💨 Vind: %.1f m/s", weather.WindSpeed))
	if weather.Humidity != nil {
		lines = append(lines, fmt.Sprintf("💧 Luftfuktighet: %.0f%%", *weather.Humidity))
	}

	if sun != nil {
		lines = append(lines, fmt.Sprintf("🌅 %s • 🌇 %s (%s dagslys)",
			sun.Sunrise, sun.Sunset, sun.DaylightFormatted()))
	}

	lines = append(lines, weather.ClothingAdvice())

	embed.AddField("🌤️ Været i "+weather.City, strings.Join(lines, "\n"), false)
}

func (b *Builder) addElectricity(embed *models.Embed, prices *models.ElectricityPrices) {
	if prices == nil {
		return
	}

	var lines []string
	if prices.CurrentPrice != nil {
		lines = append(lines, fmt.Sprintf("%s Nå: **%.1f øre/kWh**", prices.PriceLevelEmoji(), *prices.CurrentPrice))
	} else {
		lines = append(lines, fmt.Sprintf("%s Nå: ikke tilgjengelig", prices.PriceLevelEmoji()))
	}
	lines = append(lines,
		fmt.Sprintf("Snitt i dag: %.1f øre/kWh", prices.AveragePrice),
		fmt.Sprintf("Billigst: kl %s (%.1f øre)", prices.CheapestHour, prices.CheapestPrice),
		fmt.Sprintf("Dyrest: kl %s (%.1f øre)", prices.MostExpensiveHour, prices.MostExpensivePrice))

	embed.AddField(fmt.Sprintf("⚡ Strømpris (%s)", prices.Zone), strings.Join(lines, "\n"), false)
}

func (b *Builder) addNews(embed *models.Embed, news *models.NewsDigest) {
	if news == nil {
		return
	}

	if len(news.Top) > 0 {
		var lines []string
		for i, item := range news.Top {
			if i == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("**%d.** [%s](%s)", i+1, item.Title, item.Link))
		}
		embed.AddField("📰 Dagens Nyheter", strings.Join(lines, "\n"), false)
	}

	addHeadlineList(embed, "⚽ Sport", news.Sport, 3)
	addHeadlineList(embed, "💻 Teknologi", news.Tech, 3)
}

func addHeadlineList(embed *models.Embed, name string, items []models.NewsItem, limit int) {
	if len(items) == 0 {
		return
	}

	var lines []string
	for i, item := range items {
		if i == limit {
			break
		}
		lines = append(lines, fmt.Sprintf("• [%s](%s)", item.Title, item.Link))
	}
	embed.AddField(name, strings.Join(lines, "\n"), false)
}

func (b *Builder) addStocks(embed *models.Embed, finance *models.FinanceData) {
	if finance == nil || len(finance.Stocks) == 0 {
		return
	}

	var lines []string
	for i := range finance.Stocks {
		if i == 5 {
			break
		}
		quote := &finance.Stocks[i]
		lines = append(lines, fmt.Sprintf("%s **%s**: %.2f (%s)",
			quote.TrendEmoji(), quote.Name, quote.Price, quote.ChangeFormatted()))
	}
	embed.AddField("📊 Børsen", strings.Join(lines, "\n"), false)
}

func (b *Builder) addCurrencies(embed *models.Embed, finance *models.FinanceData) {
	if finance == nil || len(finance.Currencies) == 0 {
		return
	}

	var lines []string
	for i := range finance.Currencies {
		rate := &finance.Currencies[i]
		lines = append(lines, fmt.Sprintf("%s %s: %.2f kr", rate.Emoji, rate.Pair(), rate.Rate))
	}
	embed.AddField("💱 Valutakurser", strings.Join(lines, "\n"), false)
}

func (b *Builder) addCrypto(embed *models.Embed, prices []models.CryptoPrice) {
	if len(prices) == 0 {
		return
	}

	var lines []string
	for i := range prices {
		if i == 4 {
			break
		}
		price := &prices[i]
		lines = append(lines, fmt.Sprintf("%s **%s**: %s kr %s %s",
			price.Emoji, price.Name, formatNOK(price.PriceNOK), price.TrendEmoji(), price.ChangeFormatted()))
	}
	embed.AddField("🪙 Krypto", strings.Join(lines, "\n"), false)
}

func (b *Builder) addCountdowns(embed *models.Embed, facts *models.CalendarFacts, now time.Time) {
	if facts == nil {
		return
	}

	var lines []string

	if h := facts.NextHoliday; h != nil {
		switch days := h.DaysUntil(now); {
		case days == 0:
			lines = append(lines, fmt.Sprintf("🎉 I DAG: %s!", h.Name))
		case days == 1:
			lines = append(lines, fmt.Sprintf("📅 I morgen: %s", h.Name))
		case days <= 14:
			lines = append(lines, fmt.Sprintf("📅 %s om %d dager", h.Name, days))
		}
	}

	if v := facts.NextVacation; v != nil {
		if v.IsActive(now) {
			lines = append(lines, fmt.Sprintf("🏖️ %s pågår!", v.Name))
		} else if days := v.DaysUntilStart(now); days <= 30 {
			lines = append(lines, fmt.Sprintf("🏖️ %s om %d dager", v.Name, days))
		}
	}

	if e := facts.NextEvent; e != nil {
		if days := e.DaysUntil(now); days <= 60 {
			lines = append(lines, fmt.Sprintf("🎯 %s om %d dager", e.Name, days))
		}
	}

	if len(lines) > 0 {
		embed.AddField("⏳ Nedtellinger", strings.Join(lines, "\n"), false)
	}
}

func (b *Builder) addNameDays(embed *models.Embed, facts *models.CalendarFacts) {
	if facts == nil || len(facts.NameDays) == 0 {
		return
	}
	embed.AddField("🎂 Dagens Navnedag", "**"+strings.Join(facts.NameDays, ", ")+"**", false)
}

func (b *Builder) addHistory(embed *models.Embed, facts *models.CalendarFacts) {
	if facts == nil || len(facts.HistoricalEvents) == 0 {
		return
	}
	if line := b.picker.PickOne(facts.HistoricalEvents); line != "" {
		embed.AddField("📖 På denne dag", "*"+line+"*", false)
	}
}

func (b *Builder) addEntertainment(embed *models.Embed) {
	pick := b.picker.Entertainment()
	if pick.Body == "" {
		return
	}
	embed.AddField(pick.Emoji+" "+pick.Title, pick.Body, false)
}

func (b *Builder) addChallenge(embed *models.Embed) {
	if challenge := b.picker.Challenge(); challenge != "" {
		embed.AddField("🎯 Dagens Utfordring", challenge, false)
	}
}

// formatNOK renders a kroner amount with a space between thousand groups,
// keeping two decimals for amounts under 10 kroner and none above.
func formatNOK(amount float64) string {
	if amount < 10 {
		return fmt.Sprintf("%.2f", amount)
	}

	value := fmt.Sprintf("%.0f", amount)
	if len(value) <= 3 {
		return value
	}

	var sb strings.Builder
	offset := len(value) % 3
	if offset > 0 {
		sb.WriteString(value[:offset])
	}
	for i := offset; i < len(value); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(value[i : i+3])
	}
	return sb.String()
}
