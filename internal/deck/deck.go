// Package deck tracks the browsing position inside two-level decks of study items.
//
// A Deck is an ordered list of categories, each holding an ordered, non-empty
// list of items. A Navigator walks one Deck: it selects a category, moves
// between adjacent items with clamping at both ends, and carries an auxiliary
// flag (card flipped / answer revealed) that resets whenever the item changes.
// The quiz flavor additionally stores free-text answers per item index.
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Deck construction and navigation errors.
var (
	ErrNoCategories       = errors.New("deck: no categories")
	ErrEmptyCategory      = errors.New("deck: category has no items")
	ErrCategoryOutOfRange = errors.New("deck: category index out of range")
	ErrAnswersDisabled    = errors.New("deck: free-text answers are only tracked by quiz decks")
)

// Category is a labeled, ordered group of items.
type Category[T any] struct {
	Label string
	Items []T
}

// Deck is an immutable ordered collection of non-empty categories.
type Deck[T any] struct {
	categories []Category[T]
}

// New validates and copies categories into a Deck.
func New[T any](categories []Category[T]) (*Deck[T], error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	copied := make([]Category[T], len(categories))
	for i, c := range categories {
		if len(c.Items) == 0 {
			label := strings.TrimSpace(c.Label)
			if label == "" {
				label = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, label)
		}
		copied[i] = Category[T]{
			Label: c.Label,
			Items: append([]T(nil), c.Items...),
		}
	}
	return &Deck[T]{categories: copied}, nil
}

// Len returns the number of categories.
func (d *Deck[T]) Len() int {
	return len(d.categories)
}

// Category returns a copy of the category at index i. It panics if i is out
// of range.
func (d *Deck[T]) Category(i int) Category[T] {
	c := d.categories[i]
	return Category[T]{Label: c.Label, Items: append([]T(nil), c.Items...)}
}

// Labels returns the category labels in order.
func (d *Deck[T]) Labels() []string {
	labels := make([]string, len(d.categories))
	for i, c := range d.categories {
		labels[i] = c.Label
	}
	return labels
}

// TotalItems returns the number of items across all categories.
func (d *Deck[T]) TotalItems() int {
	total := 0
	for _, c := range d.categories {
		total += len(c.Items)
	}
	return total
}

// Shuffle returns a new deck with items permuted inside each category.
// Category order and sizes are preserved.
func Shuffle[T any](d *Deck[T], rnd *rand.Rand) *Deck[T] {
	out := &Deck[T]{categories: make([]Category[T], len(d.categories))}
	for i, c := range d.categories {
		items := append([]T(nil), c.Items...)
		rnd.Shuffle(len(items), func(a, b int) {
			items[a], items[b] = items[b], items[a]
		})
		out.categories[i] = Category[T]{Label: c.Label, Items: items}
	}
	return out
}
