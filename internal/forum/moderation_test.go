package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "clean content passes through untouched",
			content: "I really enjoyed this thread, thanks for sharing!",
			want:    "I really enjoyed this thread, thanks for sharing!",
		},
		{
			name:    "blocked word replaces the whole comment",
			content: "well damn that was unexpected",
			want:    CensoredNotice,
		},
		{
			name:    "matching is case-insensitive",
			content: "DAMN, nice work",
			want:    CensoredNotice,
		},
		{
			name:    "substring match inside a longer word still trips",
			content: "I keep all my notes in a scrapbook",
			want:    CensoredNotice, // "scrapbook" contains "crap"
		},
		{
			name:    "original text is fully discarded, not redacted",
			content: "first half is fine but damn the second half",
			want:    CensoredNotice,
		},
		{
			name:    "empty content passes",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterContent(tt.content, DefaultBlockedWords))
		})
	}
}

func TestFilterContentCustomBlocklist(t *testing.T) {
	blocked := []string{"spoiler", " Banana "}

	assert.Equal(t, CensoredNotice, FilterContent("huge SPOILER ahead", blocked))
	assert.Equal(t, CensoredNotice, FilterContent("banana bread recipe", blocked))
	assert.Equal(t, "well damn", FilterContent("well damn", blocked))
}

func TestFilterContentIgnoresEmptyWords(t *testing.T) {
	assert.Equal(t, "anything", FilterContent("anything", []string{"", "  "}))
}
