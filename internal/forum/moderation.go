package forum

import (
	"os"
	"strings"
)

// CensoredNotice replaces the whole comment when any blocked word matches.
// The original text is discarded, not partially redacted.
const CensoredNotice = "This comment has been censored due to inappropriate language."

// DefaultBlockedWords is the built-in blocklist. Matching is by substring,
// so "scrap" trips on "crap" - that is the intended (blunt) policy.
var DefaultBlockedWords = []string{
	"bitch", "fuck", "shit", "asshole", "bastard", "dick", "damn",
	"whore", "slut", "prick", "cock", "twat", "wanker", "motherfucker",
	"crap", "bollocks", "arse", "jerk", "douche", "moron", "idiot",
}

// FilterContent scans content case-insensitively for any blocked word and
// returns the fixed notice on a hit, the untouched content otherwise.
func FilterContent(content string, blocked []string) string {
	lower := strings.ToLower(content)
	for _, word := range blocked {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if strings.Contains(lower, word) {
			return CensoredNotice
		}
	}
	return content
}

// blockedWordsFromEnv returns the list from FORUM_BLOCKED_WORDS
// (comma-separated) or the default list when unset.
func blockedWordsFromEnv() []string {
	raw := os.Getenv("FORUM_BLOCKED_WORDS")
	if raw == "" {
		return DefaultBlockedWords
	}
	var words []string
	for _, w := range strings.Split(raw, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return DefaultBlockedWords
	}
	return words
}
