package deck

import "fmt"

// Flavor selects which per-item extras a Navigator tracks.
type Flavor int

const (
	// Flashcards uses the aux flag as "back face shown".
	Flashcards Flavor = iota
	// Quiz uses the aux flag as "expected answer shown" and records free-text answers.
	Quiz
)

func (f Flavor) String() string {
	switch f {
	case Flashcards:
		return "flashcards"
	case Quiz:
		return "quiz"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Navigator holds the browsing state for one view of a Deck.
// It is not safe for concurrent use.
type Navigator[T any] struct {
	deck     *Deck[T]
	flavor   Flavor
	category int
	item     int
	aux      bool
	answers  map[int]string
}

// NewNavigator starts at the first item of the first category with the aux flag cleared.
func NewNavigator[T any](d *Deck[T], flavor Flavor) *Navigator[T] {
	n := &Navigator[T]{deck: d, flavor: flavor}
	if flavor == Quiz {
		n.answers = map[int]string{}
	}
	return n
}

// Deck returns the deck being navigated.
func (n *Navigator[T]) Deck() *Deck[T] {
	return n.deck
}

// Flavor returns the navigator flavor.
func (n *Navigator[T]) Flavor() Flavor {
	return n.flavor
}

// SelectCategory jumps to the first item of category i, hides the aux state
// and, for quizzes, discards every stored answer. An out-of-range index leaves
// the state untouched and returns ErrCategoryOutOfRange.
func (n *Navigator[T]) SelectCategory(i int) error {
	if i < 0 || i >= n.deck.Len() {
		return fmt.Errorf("%w: %d (have %d)", ErrCategoryOutOfRange, i, n.deck.Len())
	}
	n.category = i
	n.item = 0
	n.aux = false
	if n.flavor == Quiz {
		n.answers = map[int]string{}
	}
	return nil
}

// Next advances one item. At the last item it does nothing and returns false.
func (n *Navigator[T]) Next() bool {
	if n.item >= n.itemCount()-1 {
		return false
	}
	n.item++
	n.aux = false
	return true
}

// Previous goes back one item. At the first item it does nothing and returns false.
func (n *Navigator[T]) Previous() bool {
	if n.item <= 0 {
		return false
	}
	n.item--
	n.aux = false
	return true
}

// ToggleAux flips the aux flag of the current item.
func (n *Navigator[T]) ToggleAux() {
	n.aux = !n.aux
}

// SetAnswer replaces the free-text answer stored for the current item.
func (n *Navigator[T]) SetAnswer(text string) error {
	if n.flavor != Quiz {
		return ErrAnswersDisabled
	}
	n.answers[n.item] = text
	return nil
}

// Answer returns the stored answer for the current item, or "".
func (n *Navigator[T]) Answer() string {
	return n.AnswerAt(n.item)
}

// AnswerAt returns the stored answer for item i of the current category, or "".
func (n *Navigator[T]) AnswerAt(i int) string {
	return n.answers[i]
}

// Answered returns how many items of the current category have a non-empty answer.
func (n *Navigator[T]) Answered() int {
	count := 0
	for _, a := range n.answers {
		if a != "" {
			count++
		}
	}
	return count
}

// CategoryIndex returns the selected category index.
func (n *Navigator[T]) CategoryIndex() int {
	return n.category
}

// ItemIndex returns the zero-based index of the current item.
func (n *Navigator[T]) ItemIndex() int {
	return n.item
}

// Aux reports whether the aux flag is set.
func (n *Navigator[T]) Aux() bool {
	return n.aux
}

// Category returns the selected category.
func (n *Navigator[T]) Category() Category[T] {
	return n.deck.Category(n.category)
}

// Current returns the item at the current position.
func (n *Navigator[T]) Current() T {
	return n.deck.categories[n.category].Items[n.item]
}

// Position returns the 1-based item number and the category size.
func (n *Navigator[T]) Position() (int, int) {
	return n.item + 1, n.itemCount()
}

// Progress returns the completion ratio in (0, 1].
func (n *Navigator[T]) Progress() float64 {
	return float64(n.item+1) / float64(n.itemCount())
}

// AtStart reports whether Previous would be a no-op.
func (n *Navigator[T]) AtStart() bool {
	return n.item == 0
}

// AtEnd reports whether Next would be a no-op.
func (n *Navigator[T]) AtEnd() bool {
	return n.item == n.itemCount()-1
}

func (n *Navigator[T]) itemCount() int {
	return len(n.deck.categories[n.category].Items)
}
