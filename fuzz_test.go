package leitner

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzUpdate(f *testing.F) {
	f.Add(0, 3, "front", "back")
	f.Add(4, 3, "Algorithm", "steps")
	f.Add(2, 1, "", "")
	f.Add(1, 2, "Hi", "x")
	f.Add(3, 7, "bad", "difficulty")

	f.Fuzz(func(t *testing.T, start, diff int, front, back string) {
		if start < 0 || start > 64 {
			t.Skip()
		}
		card := NewFlashcard(front, back)
		other := NewFlashcard(front+"~", back)
		in := BucketMap{start: NewCardSet(card)}
		if start == 0 {
			in[0].Add(other)
		} else {
			in[0] = NewCardSet(other)
		}
		before := in.TotalCards()

		out, err := Update(in, card, AnswerDifficulty(diff))
		if !AnswerDifficulty(diff).IsValid() {
			if err == nil {
				t.Fatalf("Update accepted difficulty %d", diff)
			}
			return
		}
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.TotalCards() != before {
			t.Fatalf("TotalCards %d → %d", before, out.TotalCards())
		}
		if in.TotalCards() != before || !in[start].Contains(card) {
			t.Fatal("input mutated")
		}
		b, ok := out.BucketOf(card)
		if !ok {
			t.Fatal("card lost")
		}
		if b > MaxBucket {
			t.Fatalf("card moved to bucket %d above %d", b, MaxBucket)
		}
	})
}

func FuzzHint(f *testing.F) {
	f.Add("Algorithm", "")
	f.Add("Hi", "")
	f.Add("", "")
	f.Add("日本語", "")
	f.Add("anything", "use DP")

	f.Fuzz(func(t *testing.T, front, hint string) {
		got := Hint(Flashcard{Front: front, Hint: hint})
		switch {
		case strings.TrimSpace(hint) != "":
			if got != hint {
				t.Fatalf("Hint = %q, want explicit hint %q", got, hint)
			}
		case strings.TrimSpace(front) == "":
			if got != NoHint {
				t.Fatalf("Hint = %q, want %q", got, NoHint)
			}
		case utf8.RuneCountInString(front) <= 2:
			if got != front {
				t.Fatalf("Hint = %q, want front %q", got, front)
			}
		default:
			if utf8.ValidString(front) && utf8.RuneCountInString(got) != utf8.RuneCountInString(front) {
				t.Fatalf("Hint %q has different length than %q", got, front)
			}
		}
	})
}

func FuzzToDenseArray(f *testing.F) {
	f.Add(0, 3, 7)
	f.Add(5, 5, 5)

	f.Fuzz(func(t *testing.T, a, b, c int) {
		keys := []int{a, b, c}
		m := BucketMap{}
		for i, k := range keys {
			if k < 0 || k > 1024 {
				t.Skip()
			}
			m[k] = NewCardSet(NewFlashcard(string(rune('A'+i)), "x"))
		}
		dense := ToDenseArray(m)
		if len(dense) != max(a, b, c)+1 {
			t.Fatalf("len = %d, want %d", len(dense), max(a, b, c)+1)
		}
		for k, set := range m {
			for key := range set {
				if _, ok := dense[k][key]; !ok {
					t.Fatalf("%v missing at index %d", key, k)
				}
			}
		}
	})
}
