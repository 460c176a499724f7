package models

import "time"

// Discord transport limits, enforced before send.
const (
	MaxFieldNameLen   = 256
	MaxFieldValueLen  = 1024
	MaxDescriptionLen = 4096
	MaxTitleLen       = 256
	MaxFooterLen      = 2048
	MaxFieldsPerEmbed = 25
	MaxEmbeds         = 10
)

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// AddField appends a field with name/value clamped to the transport caps.
// Fields beyond the per-embed limit are dropped from the tail.
func (e *Embed) AddField(name, value string, inline bool) {
	if len(e.Fields) >= MaxFieldsPerEmbed {
		return
	}
	e.Fields = append(e.Fields, EmbedField{
		Name:   Truncate(name, MaxFieldNameLen),
		Value:  Truncate(value, MaxFieldValueLen),
		Inline: inline,
	})
}

type WebhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Clamp enforces the embed-count and per-embed limits in place.
func (m *WebhookMessage) Clamp() {
	if len(m.Embeds) > MaxEmbeds {
		m.Embeds = m.Embeds[:MaxEmbeds]
	}
	for i := range m.Embeds {
		e := &m.Embeds[i]
		e.Title = Truncate(e.Title, MaxTitleLen)
		e.Description = Truncate(e.Description, MaxDescriptionLen)
		if e.Footer != nil {
			e.Footer.Text = Truncate(e.Footer.Text, MaxFooterLen)
		}
		if len(e.Fields) > MaxFieldsPerEmbed {
			e.Fields = e.Fields[:MaxFieldsPerEmbed]
		}
		for j := range e.Fields {
			e.Fields[j].Name = Truncate(e.Fields[j].Name, MaxFieldNameLen)
			e.Fields[j].Value = Truncate(e.Fields[j].Value, MaxFieldValueLen)
		}
	}
}

// Truncate shortens s to at most limit runes, appending an ellipsis marker
// instead of erroring on overlong bodies.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
