package leitner

import "strings"

// NoHint is returned by Hint when a card has neither a hint nor a front.
const NoHint = "No hint available"

// Hint returns a hint for card. An explicit hint wins. Otherwise the front is
// masked to its first and last character ("Algorithm" → "A*******m"); fronts
// of two characters or fewer are returned unchanged.
func Hint(card Flashcard) string {
	if strings.TrimSpace(card.Hint) != "" {
		return card.Hint
	}
	if strings.TrimSpace(card.Front) == "" {
		return NoHint
	}

	front := []rune(card.Front)
	if len(front) <= 2 {
		return card.Front
	}

	var b strings.Builder
	b.Grow(len(card.Front))
	b.WriteRune(front[0])
	b.WriteString(strings.Repeat("*", len(front)-2))
	b.WriteRune(front[len(front)-1])
	return b.String()
}

