package models

type NewsCategory string

const (
	CategoryTop     NewsCategory = "top"
	CategoryWorld   NewsCategory = "world"
	CategorySport   NewsCategory = "sport"
	CategoryCulture NewsCategory = "culture"
	CategoryTech    NewsCategory = "tech"
)

type NewsItem struct {
	Title    string       `json:"title"`
	Link     string       `json:"link"`
	Source   string       `json:"source"`
	Category NewsCategory `json:"category"`
}

// NewsDigest holds the capped per-category headline lists, provider order
// preserved.
type NewsDigest struct {
	Top     []NewsItem `json:"top"`
	World   []NewsItem `json:"world"`
	Sport   []NewsItem `json:"sport"`
	Culture []NewsItem `json:"culture"`
	Tech    []NewsItem `json:"tech"`
}
