package content

import (
	"math/rand"

	"morningbrief/internal/config"
)

// Pick is one randomly selected entertainment entry.
type Pick struct {
	Emoji string
	Title string
	Body  string
}

// Picker selects entertainment content and daily challenges from the
// built-in pools, optionally extended by user-supplied entries.
type Picker struct {
	rng        *rand.Rand
	jokes      []string
	proverbs   []string
	quotes     []string
	funFacts   []string
	challenges []string
}

// NewPicker builds a picker. The rng is injected so callers (and tests) own
// the seed; overrides may be nil.
func NewPicker(rng *rand.Rand, overrides *config.ContentOverrides) *Picker {
	p := &Picker{
		rng:        rng,
		jokes:      jokes,
		proverbs:   proverbs,
		quotes:     quotes,
		funFacts:   funFacts,
		challenges: challenges,
	}

	if overrides != nil {
		p.jokes = append(append([]string{}, p.jokes...), overrides.Jokes...)
		p.proverbs = append(append([]string{}, p.proverbs...), overrides.Proverbs...)
		p.quotes = append(append([]string{}, p.quotes...), overrides.Quotes...)
		p.funFacts = append(append([]string{}, p.funFacts...), overrides.FunFacts...)
		p.challenges = append(append([]string{}, p.challenges...), overrides.Challenges...)
	}

	return p
}

// Entertainment picks one of the four pools uniformly, then one entry from
// that pool.
func (p *Picker) Entertainment() Pick {
	switch p.rng.Intn(4) {
	case 0:
		return Pick{Emoji: "😂", Title: "Dagens Vits", Body: p.pickFrom(p.jokes)}
	case 1:
		return Pick{Emoji: "📜", Title: "Norsk Ordtak", Body: p.pickFrom(p.proverbs)}
	case 2:
		return Pick{Emoji: "🤓", Title: "Visste du at...", Body: p.pickFrom(p.funFacts)}
	default:
		return Pick{Emoji: "💡", Title: "Dagens Motivasjon", Body: "*\"" + p.pickFrom(p.quotes) + "\"*"}
	}
}

// Challenge picks the daily challenge.
func (p *Picker) Challenge() string {
	return p.pickFrom(p.challenges)
}

// PickOne selects a random entry from an arbitrary list, used for the
// historical-event line.
func (p *Picker) PickOne(entries []string) string {
	return p.pickFrom(entries)
}

func (p *Picker) pickFrom(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[p.rng.Intn(len(pool))]
}
