package leitner

import (
	"encoding/json"
	"slices"
)

// BucketMap is the sparse bucket state: bucket number → cards in it.
// A card should appear in at most one bucket; callers maintain this.
type BucketMap map[int]CardSet

// BucketEntry is one (bucket, cards) pair of the wire form of a BucketMap.
type BucketEntry struct {
	Bucket int         `json:"bucket"`
	Cards  []Flashcard `json:"cards"`
}

// ToDenseArray converts the sparse map into a slice indexed by bucket number,
// of length max key + 1. Buckets missing from the map get their own empty
// set. An empty map yields an empty slice. Negative keys are skipped.
// The result shares no sets with buckets.
func ToDenseArray(buckets BucketMap) []CardSet {
	maxKey := -1
	for b := range buckets {
		maxKey = max(maxKey, b)
	}
	dense := make([]CardSet, maxKey+1)
	for i := range dense {
		if set, ok := buckets[i]; ok {
			dense[i] = set.Clone()
		} else {
			dense[i] = CardSet{}
		}
	}
	return dense
}

// OccupiedRange returns the smallest and largest index holding at least one
// card. ok is false when every set is empty.
func OccupiedRange(dense []CardSet) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, set := range dense {
		if set.Len() == 0 {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	if lo < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

// Clone returns a deep copy of the map.
func (m BucketMap) Clone() BucketMap {
	out := make(BucketMap, len(m))
	for b, set := range m {
		out[b] = set.Clone()
	}
	return out
}

// BucketOf returns the lowest bucket holding card.
func (m BucketMap) BucketOf(card Flashcard) (int, bool) {
	for _, b := range m.sortedKeys() {
		if m[b].Contains(card) {
			return b, true
		}
	}
	return 0, false
}

// Find returns the stored card with the given key and its bucket.
func (m BucketMap) Find(key CardKey) (Flashcard, int, bool) {
	for _, b := range m.sortedKeys() {
		if c, ok := m[b][key]; ok {
			return c, b, true
		}
	}
	return Flashcard{}, 0, false
}

// TotalCards returns the number of cards across all buckets.
func (m BucketMap) TotalCards() int {
	n := 0
	for _, set := range m {
		n += set.Len()
	}
	return n
}

// Entries returns the wire form of the map, ordered by bucket, with the cards
// of each bucket sorted.
func (m BucketMap) Entries() []BucketEntry {
	keys := m.sortedKeys()
	out := make([]BucketEntry, 0, len(keys))
	for _, b := range keys {
		out = append(out, BucketEntry{Bucket: b, Cards: m[b].Cards()})
	}
	return out
}

// FromEntries builds a map from its wire form. Entries with the same bucket
// are merged.
func FromEntries(entries []BucketEntry) BucketMap {
	m := make(BucketMap, len(entries))
	for _, e := range entries {
		set, ok := m[e.Bucket]
		if !ok {
			set = make(CardSet, len(e.Cards))
			m[e.Bucket] = set
		}
		for _, c := range e.Cards {
			set.Add(c)
		}
	}
	return m
}

// MarshalJSON implements json.Marshaler. A BucketMap serializes as an array
// of {bucket, cards} pairs.
func (m BucketMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *BucketMap) UnmarshalJSON(data []byte) error {
	var entries []BucketEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*m = FromEntries(entries)
	return nil
}

func (m BucketMap) sortedKeys() []int {
	keys := make([]int, 0, len(m))
	for b := range m {
		keys = append(keys, b)
	}
	slices.Sort(keys)
	return keys
}
