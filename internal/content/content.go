// Package content defines the study material shown by the guide.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/olitef/internal/deck"
)

// ErrInvalidPack is wrapped by every validation failure.
var ErrInvalidPack = errors.New("content: invalid pack")

// Pack is a complete set of study material.
type Pack struct {
	Title      string              `toml:"title"`
	Topics     []Topic             `toml:"topics"`
	Flashcards []FlashcardCategory `toml:"flashcards"`
	Quiz       []QuizTier          `toml:"quiz"`
	Selic      Selic               `toml:"selic"`
}

// Topic is a section of guide prose with optional expandable details.
type Topic struct {
	Title   string   `toml:"title"`
	Body    string   `toml:"body"`
	Details []Detail `toml:"details"`
}

// Detail is a titled note attached to a topic.
type Detail struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// FlashcardCategory groups flashcards under a label.
type FlashcardCategory struct {
	Category string      `toml:"category"`
	Cards    []Flashcard `toml:"cards"`
}

// Flashcard has a question on the front and the answer on the back.
type Flashcard struct {
	Front string `toml:"front"`
	Back  string `toml:"back"`
}

// QuizTier groups quiz questions by difficulty.
type QuizTier struct {
	Difficulty string     `toml:"difficulty"`
	Questions  []Question `toml:"questions"`
}

// Question is an open question with the expected answer.
type Question struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

// Selic holds the rate/inflation explainer.
type Selic struct {
	Intro string `toml:"intro"`
	Raise string `toml:"raise"`
	Lower string `toml:"lower"`
}

// Validate checks that the pack can back both decks.
func (p Pack) Validate() error {
	var problems []string
	if len(p.Flashcards) == 0 {
		problems = append(problems, "no flashcard categories")
	}
	for i, c := range p.Flashcards {
		name := label(c.Category, "flashcards", i)
		if len(c.Cards) == 0 {
			problems = append(problems, fmt.Sprintf("%s: no cards", name))
		}
		for j, card := range c.Cards {
			if blank(card.Front) || blank(card.Back) {
				problems = append(problems, fmt.Sprintf("%s: card %d needs front and back", name, j+1))
			}
		}
	}
	if len(p.Quiz) == 0 {
		problems = append(problems, "no quiz tiers")
	}
	for i, tier := range p.Quiz {
		name := label(tier.Difficulty, "quiz", i)
		if len(tier.Questions) == 0 {
			problems = append(problems, fmt.Sprintf("%s: no questions", name))
		}
		for j, q := range tier.Questions {
			if blank(q.Question) || blank(q.Answer) {
				problems = append(problems, fmt.Sprintf("%s: question %d needs question and answer", name, j+1))
			}
		}
	}
	for i, topic := range p.Topics {
		if blank(topic.Title) {
			problems = append(problems, fmt.Sprintf("topic %d: missing title", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPack, strings.Join(problems, "; "))
	}
	return nil
}

// FlashcardDeck builds the flashcard deck from the pack.
func (p Pack) FlashcardDeck() (*deck.Deck[Flashcard], error) {
	cats := make([]deck.Category[Flashcard], 0, len(p.Flashcards))
	for _, c := range p.Flashcards {
		cats = append(cats, deck.Category[Flashcard]{Label: c.Category, Items: c.Cards})
	}
	return deck.New(cats)
}

// QuizDeck builds the quiz deck from the pack.
func (p Pack) QuizDeck() (*deck.Deck[Question], error) {
	cats := make([]deck.Category[Question], 0, len(p.Quiz))
	for _, tier := range p.Quiz {
		cats = append(cats, deck.Category[Question]{Label: tier.Difficulty, Items: tier.Questions})
	}
	return deck.New(cats)
}

func label(name, kind string, idx int) string {
	if blank(name) {
		return fmt.Sprintf("%s #%d", kind, idx+1)
	}
	return fmt.Sprintf("%s %q", kind, name)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
