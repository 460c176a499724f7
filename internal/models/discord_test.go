package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestTruncate_MultibyteRunes(t *testing.T) {
	// Limits count runes, never bytes, so emoji are not split.
	s := strings.Repeat("⚡", 30)
	got := Truncate(s, 10)
	assert.Equal(t, strings.Repeat("⚡", 7)+"...", got)
}

func TestEmbed_AddField_Clamps(t *testing.T) {
	var e Embed
	e.AddField(strings.Repeat("n", 300), strings.Repeat("v", 2000), true)

	require.Len(t, e.Fields, 1)
	assert.Len(t, []rune(e.Fields[0].Name), MaxFieldNameLen)
	assert.Len(t, []rune(e.Fields[0].Value), MaxFieldValueLen)
	assert.True(t, strings.HasSuffix(e.Fields[0].Value, "..."))
	assert.True(t, e.Fields[0].Inline)
}

func TestEmbed_AddField_DropsBeyondLimit(t *testing.T) {
	var e Embed
	for i := 0; i < MaxFieldsPerEmbed+5; i++ {
		e.AddField("name", "value", false)
	}
	assert.Len(t, e.Fields, MaxFieldsPerEmbed)
}

func TestWebhookMessage_Clamp(t *testing.T) {
	message := &WebhookMessage{}
	for i := 0; i < MaxEmbeds+2; i++ {
		message.Embeds = append(message.Embeds, Embed{
			Title:       strings.Repeat("t", 400),
			Description: strings.Repeat("d", 5000),
			Footer:      &EmbedFooter{Text: strings.Repeat("f", 3000)},
		})
	}

	message.Clamp()

	require.Len(t, message.Embeds, MaxEmbeds)
	for _, embed := range message.Embeds {
		assert.Len(t, []rune(embed.Title), MaxTitleLen)
		assert.Len(t, []rune(embed.Description), MaxDescriptionLen)
		assert.Len(t, []rune(embed.Footer.Text), MaxFooterLen)
	}
}
