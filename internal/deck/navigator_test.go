package deck

import (
	"errors"
	"math/rand"
	"testing"
)

func testDeck(t *testing.T) *Deck[string] {
	t.Helper()
	d, err := New([]Category[string]{
		{Label: "Juros", Items: []string{"a", "b", "c"}},
		{Label: "Renda Fixa", Items: []string{"x", "y"}},
		{Label: "Unico", Items: []string{"solo"}},
	})
	if err != nil {
		t.Fatalf("new deck: %v", err)
	}
	return d
}

func TestNewRejectsEmptyInput(t *testing.T) {
	if _, err := New[string](nil); !errors.Is(err, ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got %v", err)
	}
	_, err := New([]Category[string]{
		{Label: "ok", Items: []string{"a"}},
		{Label: "vazio"},
	})
	if !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestNewCopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	d, err := New([]Category[string]{{Label: "c", Items: items}})
	if err != nil {
		t.Fatalf("new deck: %v", err)
	}
	items[0] = "changed"
	if got := d.Category(0).Items[0]; got != "a" {
		t.Fatalf("deck shares caller slice: %q", got)
	}
	if d.TotalItems() != 2 {
		t.Fatalf("expected 2 items, got %d", d.TotalItems())
	}
}

func TestCategoryReturnsCopy(t *testing.T) {
	d, err := New([]Category[string]{{Label: "c", Items: []string{"a", "b"}}})
	if err != nil {
		t.Fatalf("new deck: %v", err)
	}
	d.Category(0).Items[0] = "changed"
	if got := d.Category(0).Items[0]; got != "a" {
		t.Fatalf("deck exposes its items: %q", got)
	}
	nav := NewNavigator(d, Flashcards)
	nav.Category().Items[0] = "changed"
	if got := nav.Current(); got != "a" {
		t.Fatalf("navigator exposes its items: %q", got)
	}
}

func TestInitialState(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	if n.CategoryIndex() != 0 || n.ItemIndex() != 0 || n.Aux() {
		t.Fatalf("unexpected initial state: cat=%d item=%d aux=%v", n.CategoryIndex(), n.ItemIndex(), n.Aux())
	}
	pos, total := n.Position()
	if pos != 1 || total != 3 {
		t.Fatalf("expected 1 of 3, got %d of %d", pos, total)
	}
	if n.Current() != "a" {
		t.Fatalf("expected first item, got %q", n.Current())
	}
}

func TestPreviousAtStartIsNoop(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	n.ToggleAux()
	if n.Previous() {
		t.Fatalf("expected Previous to report no move")
	}
	if n.ItemIndex() != 0 || !n.Aux() {
		t.Fatalf("state changed on clamped Previous: item=%d aux=%v", n.ItemIndex(), n.Aux())
	}
}

func TestNextClampsAtEnd(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	_, total := n.Position()
	for i := 0; i < total-1; i++ {
		if !n.Next() {
			t.Fatalf("expected move %d to succeed", i)
		}
	}
	if !n.AtEnd() || n.Current() != "c" {
		t.Fatalf("expected last item, got %q", n.Current())
	}
	n.ToggleAux()
	if n.Next() {
		t.Fatalf("expected Next at end to be a no-op")
	}
	if n.ItemIndex() != total-1 || !n.Aux() {
		t.Fatalf("state changed on clamped Next")
	}
	if n.Progress() != 1 {
		t.Fatalf("expected progress 1, got %v", n.Progress())
	}
}

func TestMoveResetsAux(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	n.ToggleAux()
	n.Next()
	if n.Aux() {
		t.Fatalf("expected aux reset after Next")
	}
	n.ToggleAux()
	n.Previous()
	if n.Aux() {
		t.Fatalf("expected aux reset after Previous")
	}
}

func TestToggleAuxFlipsOncePerCall(t *testing.T) {
	n := NewNavigator(testDeck(t), Quiz)
	for i := 1; i <= 4; i++ {
		n.ToggleAux()
		if n.Aux() != (i%2 == 1) {
			t.Fatalf("after %d toggles aux=%v", i, n.Aux())
		}
		if n.ItemIndex() != 0 {
			t.Fatalf("toggle moved the item")
		}
	}
}

func TestQuizAnswersSurviveNavigation(t *testing.T) {
	n := NewNavigator(testDeck(t), Quiz)
	if err := n.SetAnswer("x"); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	n.Next()
	if n.Answer() != "" {
		t.Fatalf("expected empty answer for unvisited item, got %q", n.Answer())
	}
	n.Previous()
	if n.Answer() != "x" {
		t.Fatalf("expected stored answer, got %q", n.Answer())
	}
	if err := n.SetAnswer("y"); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	if n.AnswerAt(0) != "y" {
		t.Fatalf("expected overwrite, got %q", n.AnswerAt(0))
	}
	if n.Answered() != 1 {
		t.Fatalf("expected 1 answered item, got %d", n.Answered())
	}
}

func TestSetAnswerDoesNotTouchAuxOrIndex(t *testing.T) {
	n := NewNavigator(testDeck(t), Quiz)
	n.Next()
	n.ToggleAux()
	if err := n.SetAnswer("resposta"); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	if !n.Aux() || n.ItemIndex() != 1 {
		t.Fatalf("SetAnswer changed state: aux=%v item=%d", n.Aux(), n.ItemIndex())
	}
}

func TestFlashcardsRejectAnswers(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	if err := n.SetAnswer("x"); !errors.Is(err, ErrAnswersDisabled) {
		t.Fatalf("expected ErrAnswersDisabled, got %v", err)
	}
	if n.Answer() != "" {
		t.Fatalf("expected no answer")
	}
}

func TestSelectCategoryResets(t *testing.T) {
	n := NewNavigator(testDeck(t), Quiz)
	n.Next()
	n.Next()
	_ = n.SetAnswer("kept?")
	n.ToggleAux()
	if err := n.SelectCategory(1); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if n.CategoryIndex() != 1 || n.ItemIndex() != 0 || n.Aux() {
		t.Fatalf("unexpected state after select: cat=%d item=%d aux=%v", n.CategoryIndex(), n.ItemIndex(), n.Aux())
	}
	if n.Answered() != 0 || n.AnswerAt(2) != "" {
		t.Fatalf("expected answers cleared")
	}
	if n.Category().Label != "Renda Fixa" {
		t.Fatalf("unexpected category %q", n.Category().Label)
	}

	if err := n.SelectCategory(1); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if n.ItemIndex() != 0 {
		t.Fatalf("reselecting the same category must reset the item")
	}
}

func TestSelectCategoryOutOfRange(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	n.Next()
	for _, idx := range []int{-1, 3, 99} {
		if err := n.SelectCategory(idx); !errors.Is(err, ErrCategoryOutOfRange) {
			t.Fatalf("expected ErrCategoryOutOfRange for %d, got %v", idx, err)
		}
	}
	if n.CategoryIndex() != 0 || n.ItemIndex() != 1 {
		t.Fatalf("failed select changed state")
	}
}

func TestSingleItemCategory(t *testing.T) {
	n := NewNavigator(testDeck(t), Flashcards)
	if err := n.SelectCategory(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !n.AtStart() || !n.AtEnd() {
		t.Fatalf("single item category should be both start and end")
	}
	if n.Next() || n.Previous() {
		t.Fatalf("no movement expected")
	}
	if n.Progress() != 1 {
		t.Fatalf("expected progress 1, got %v", n.Progress())
	}
}

func TestShufflePreservesCategories(t *testing.T) {
	d := testDeck(t)
	shuffled := Shuffle(d, rand.New(rand.NewSource(7)))
	if shuffled.Len() != d.Len() {
		t.Fatalf("category count changed")
	}
	for i := 0; i < d.Len(); i++ {
		orig := d.Category(i)
		got := shuffled.Category(i)
		if got.Label != orig.Label || len(got.Items) != len(orig.Items) {
			t.Fatalf("category %d changed shape", i)
		}
		seen := map[string]int{}
		for _, it := range orig.Items {
			seen[it]++
		}
		for _, it := range got.Items {
			seen[it]--
		}
		for item, count := range seen {
			if count != 0 {
				t.Fatalf("item %q count mismatch after shuffle", item)
			}
		}
	}
	again := Shuffle(d, rand.New(rand.NewSource(7)))
	for i := 0; i < d.Len(); i++ {
		for j, it := range again.Category(i).Items {
			if shuffled.Category(i).Items[j] != it {
				t.Fatalf("same seed produced different order")
			}
		}
	}
}
