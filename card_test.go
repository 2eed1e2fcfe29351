package leitner

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFlashcard(t *testing.T) {
	c := NewFlashcard("Algorithm", "A finite sequence of steps")
	if c.Front != "Algorithm" {
		t.Errorf("Front = %q, want %q", c.Front, "Algorithm")
	}
	if c.Back != "A finite sequence of steps" {
		t.Errorf("Back = %q", c.Back)
	}
	if c.Hint != "" {
		t.Errorf("Hint = %q, want empty", c.Hint)
	}
	if c.Tags != nil {
		t.Errorf("Tags = %v, want nil", c.Tags)
	}
}

func TestFlashcardKeyIgnoresPayload(t *testing.T) {
	a := Flashcard{Front: "f", Back: "b", Hint: "one", Tags: []string{"x"}}
	b := Flashcard{Front: "f", Back: "b", Hint: "two"}
	if a.Key() != b.Key() {
		t.Errorf("Key() differs for cards with same front/back: %v vs %v", a.Key(), b.Key())
	}
	if a.Equal(b) {
		t.Error("Equal() = true for cards with different hints")
	}
	c := Flashcard{Front: "f", Back: "other"}
	if a.Key() == c.Key() {
		t.Error("Key() equal for cards with different backs")
	}
}

func TestFlashcardClone(t *testing.T) {
	c := Flashcard{Front: "f", Back: "b", Tags: []string{"x", "y"}}
	cloned := c.clone()
	if !cloned.Equal(c) {
		t.Fatalf("clone = %+v, want %+v", cloned, c)
	}
	cloned.Tags[0] = "changed"
	if c.Tags[0] != "x" {
		t.Error("clone Tags not independent")
	}
}

func TestCardKeyString(t *testing.T) {
	k := CardKey{Front: "Q", Back: "A"}
	if got := k.String(); got != "Q / A" {
		t.Errorf("String() = %q, want %q", got, "Q / A")
	}
}

func TestCardSetOperations(t *testing.T) {
	a := NewFlashcard("a", "1")
	b := NewFlashcard("b", "2")
	s := NewCardSet(a)

	if !s.Contains(a) {
		t.Error("set should contain a")
	}
	if s.Contains(b) {
		t.Error("set should not contain b")
	}
	s.Add(b)
	s.Add(Flashcard{Front: "b", Back: "2", Hint: "h"})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s[b.Key()].Hint; got != "h" {
		t.Errorf("re-added card Hint = %q, want %q", got, "h")
	}
	if !s.Remove(a) {
		t.Error("Remove(a) = false, want true")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestCardSetCloneIndependent(t *testing.T) {
	s := NewCardSet(NewFlashcard("a", "1"))
	c := s.Clone()
	c.Add(NewFlashcard("b", "2"))
	if s.Len() != 1 {
		t.Errorf("original Len() = %d after mutating clone, want 1", s.Len())
	}

	var nilSet CardSet
	if got := nilSet.Clone(); got == nil || got.Len() != 0 {
		t.Errorf("nil.Clone() = %v, want empty non-nil set", got)
	}
}

func TestCardSetCardsSorted(t *testing.T) {
	s := NewCardSet(
		NewFlashcard("b", "1"),
		NewFlashcard("a", "2"),
		NewFlashcard("a", "1"),
	)
	got := s.Cards()
	want := []CardKey{{"a", "1"}, {"a", "2"}, {"b", "1"}}
	if len(got) != len(want) {
		t.Fatalf("len(Cards()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Key() != want[i] {
			t.Errorf("Cards()[%d] = %v, want %v", i, got[i].Key(), want[i])
		}
	}
}

func TestFlashcardJSON(t *testing.T) {
	c := Flashcard{Front: "f", Back: "b", Hint: "h", Tags: []string{"t"}}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, substr := range []string{`"front":"f"`, `"back":"b"`, `"hint":"h"`, `"tags":["t"]`} {
		if !strings.Contains(s, substr) {
			t.Errorf("JSON should contain %s, got %s", substr, s)
		}
	}

	data, err = json.Marshal(NewFlashcard("f", "b"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "tags") {
		t.Errorf("nil tags should be omitted, got %s", data)
	}
}
