package leitner

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerDifficulty is the reviewer's self-reported outcome for a card.
type AnswerDifficulty int

const (
	Wrong AnswerDifficulty = iota + 1 // Answered incorrectly.
	Hard                              // Correct, with effort.
	Easy                              // Correct, effortlessly.
)

var (
	difficultyNames  = [...]string{Wrong: "Wrong", Hard: "Hard", Easy: "Easy"}
	difficultyByName = map[string]AnswerDifficulty{
		"Wrong": Wrong,
		"Hard":  Hard,
		"Easy":  Easy,
	}
)

var (
	_ fmt.Stringer             = AnswerDifficulty(0)
	_ json.Marshaler           = AnswerDifficulty(0)
	_ json.Unmarshaler         = (*AnswerDifficulty)(nil)
	_ encoding.TextMarshaler   = AnswerDifficulty(0)
	_ encoding.TextUnmarshaler = (*AnswerDifficulty)(nil)
)

// ParseDifficulty is the lenient parser for user input (CLI arguments, HTTP
// bodies): case and surrounding space are ignored, so "easy" and " EASY" both
// give Easy.
func ParseDifficulty(s string) (AnswerDifficulty, error) {
	s = strings.TrimSpace(s)
	for name, d := range difficultyByName {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// String returns the name of the difficulty ("Wrong", "Hard", "Easy").
// For invalid values it returns "AnswerDifficulty(n)".
func (d AnswerDifficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("AnswerDifficulty(%d)", int(d))
}

// IsValid reports whether d is one of Wrong, Hard, Easy.
func (d AnswerDifficulty) IsValid() bool {
	return d >= Wrong && d <= Easy
}

// IsCorrect reports whether d counts as a correct answer (Hard or Easy).
func (d AnswerDifficulty) IsCorrect() bool {
	return d == Hard || d == Easy
}

// MarshalText writes the canonical name. Only Wrong, Hard and Easy encode.
func (d AnswerDifficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

// UnmarshalText accepts only the canonical, case-sensitive names written by
// MarshalText, so stored logs round-trip exactly.
func (d *AnswerDifficulty) UnmarshalText(text []byte) error {
	v, ok := difficultyByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, text)
	}
	*d = v
	return nil
}

// MarshalJSON encodes the name as a JSON string, never the number.
func (d AnswerDifficulty) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON rejects numbers and unknown names with ErrInvalidDifficulty.
func (d *AnswerDifficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDifficulty, data)
	}
	return d.UnmarshalText([]byte(s))
}
