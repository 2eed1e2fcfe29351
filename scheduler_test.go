package leitner

import (
	"errors"
	"testing"
)

func TestSelectDueExamples(t *testing.T) {
	dense := ToDenseArray(BucketMap{
		0: NewCardSet(cardA),
		1: NewCardSet(cardB),
		2: NewCardSet(cardC),
	})
	tests := []struct {
		day  int
		want []Flashcard
	}{
		{0, []Flashcard{cardA, cardB, cardC}},
		{1, []Flashcard{cardA}},
		{2, []Flashcard{cardA, cardB}},
		{3, []Flashcard{cardA}},
		{4, []Flashcard{cardA, cardB, cardC}},
		{6, []Flashcard{cardA, cardB}},
	}
	for _, tt := range tests {
		due, err := SelectDue(dense, tt.day)
		if err != nil {
			t.Fatalf("SelectDue(day=%d): %v", tt.day, err)
		}
		if due.Len() != len(tt.want) {
			t.Errorf("day %d: %d cards due, want %d", tt.day, due.Len(), len(tt.want))
		}
		for _, c := range tt.want {
			if !due.Contains(c) {
				t.Errorf("day %d: %v not due", tt.day, c.Key())
			}
		}
	}
}

func TestSelectDueBucketZeroAlwaysDue(t *testing.T) {
	dense := ToDenseArray(BucketMap{0: NewCardSet(cardA, cardB), 4: NewCardSet(cardC)})
	for day := 0; day < 40; day++ {
		due, err := SelectDue(dense, day)
		if err != nil {
			t.Fatal(err)
		}
		if !due.Contains(cardA) || !due.Contains(cardB) {
			t.Fatalf("day %d: bucket 0 cards missing", day)
		}
		if due.Contains(cardC) != (day%16 == 0) {
			t.Errorf("day %d: bucket 4 card due = %v", day, due.Contains(cardC))
		}
	}
}

func TestSelectDueDeduplicates(t *testing.T) {
	dense := []CardSet{NewCardSet(cardA), NewCardSet(cardA, cardB)}
	due, err := SelectDue(dense, 0)
	if err != nil {
		t.Fatal(err)
	}
	if due.Len() != 2 {
		t.Errorf("Len() = %d, want 2", due.Len())
	}
}

func TestSelectDueReadOnly(t *testing.T) {
	dense := []CardSet{NewCardSet(cardA)}
	due, _ := SelectDue(dense, 0)
	due.Add(cardB)
	if dense[0].Len() != 1 {
		t.Error("SelectDue result aliases the input")
	}
}

func TestSelectDueEmpty(t *testing.T) {
	due, err := SelectDue(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if due == nil || due.Len() != 0 {
		t.Errorf("SelectDue(nil) = %v, want empty set", due)
	}
}

func TestSelectDueNegativeDay(t *testing.T) {
	_, err := SelectDue([]CardSet{NewCardSet(cardA)}, -1)
	if !errors.Is(err, ErrInvalidDay) {
		t.Errorf("error = %v, want ErrInvalidDay", err)
	}
}

func TestDueCardsSorted(t *testing.T) {
	buckets := BucketMap{0: NewCardSet(cardC, cardA), 1: NewCardSet(cardB)}
	cards, err := DueCards(buckets, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []CardKey{cardA.Key(), cardB.Key(), cardC.Key()}
	if len(cards) != len(want) {
		t.Fatalf("len = %d, want %d", len(cards), len(want))
	}
	for i := range want {
		if cards[i].Key() != want[i] {
			t.Errorf("cards[%d] = %v, want %v", i, cards[i].Key(), want[i])
		}
	}
	if _, err := DueCards(buckets, -5); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("DueCards(-5) error = %v, want ErrInvalidDay", err)
	}
}
