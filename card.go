package leitner

import (
	"slices"
	"strings"
)

// Flashcard is a single prompt/answer pair. Treat it as an immutable value.
type Flashcard struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint"`
	Tags  []string `json:"tags,omitempty"`
}

// CardKey identifies a flashcard inside buckets and card sets.
// Two cards with the same front and back are the same card.
type CardKey struct {
	Front string
	Back  string
}

// NewFlashcard creates a card with no hint and no tags.
func NewFlashcard(front, back string) Flashcard {
	return Flashcard{Front: front, Back: back}
}

// Key returns the identity key of the card.
func (c Flashcard) Key() CardKey {
	return CardKey{Front: c.Front, Back: c.Back}
}

// Equal reports whether c and o have the same identity and payload.
func (c Flashcard) Equal(o Flashcard) bool {
	return c.Front == o.Front && c.Back == o.Back && c.Hint == o.Hint && slices.Equal(c.Tags, o.Tags)
}

// clone returns a copy of the card that shares no memory with c.
func (c Flashcard) clone() Flashcard {
	out := c
	if c.Tags != nil {
		out.Tags = slices.Clone(c.Tags)
	}
	return out
}

// String returns the key as "front / back".
func (k CardKey) String() string {
	return k.Front + " / " + k.Back
}

func (k CardKey) compare(o CardKey) int {
	if c := strings.Compare(k.Front, o.Front); c != 0 {
		return c
	}
	return strings.Compare(k.Back, o.Back)
}

// CardSet is a set of flashcards keyed by identity.
type CardSet map[CardKey]Flashcard

// NewCardSet returns a set holding the given cards.
// Later cards replace earlier ones with the same key.
func NewCardSet(cards ...Flashcard) CardSet {
	s := make(CardSet, len(cards))
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

// Add inserts c, replacing any card with the same key.
func (s CardSet) Add(c Flashcard) {
	s[c.Key()] = c.clone()
}

// Remove deletes c and reports whether it was present.
func (s CardSet) Remove(c Flashcard) bool {
	k := c.Key()
	if _, ok := s[k]; !ok {
		return false
	}
	delete(s, k)
	return true
}

// Contains reports whether a card with c's key is in the set.
func (s CardSet) Contains(c Flashcard) bool {
	_, ok := s[c.Key()]
	return ok
}

// Len returns the number of cards in the set.
func (s CardSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set. A nil set clones to an empty one.
func (s CardSet) Clone() CardSet {
	out := make(CardSet, len(s))
	for k, c := range s {
		out[k] = c.clone()
	}
	return out
}

// Cards returns the cards sorted by front, then back.
func (s CardSet) Cards() []Flashcard {
	out := make([]Flashcard, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Flashcard) int {
		return a.Key().compare(b.Key())
	})
	return out
}
