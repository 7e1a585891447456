// Package vocab holds the word lists animal names are drawn from.
package vocab

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a vocabulary has no animals.
	ErrEmpty = errors.New("vocabulary has no animals")

	// ErrDuplicate is returned when a word appears twice in the same list.
	ErrDuplicate = errors.New("duplicate word")

	// ErrInvalidWord is returned for words that are not lowercase ASCII letters.
	ErrInvalidWord = errors.New("invalid word")
)

// Vocabulary supplies adjectives and animals to a generator.
// Implementations must not mutate the returned slices after handing them out.
type Vocabulary interface {
	Adjectives() []string
	Animals() []string
}

// Default is the compiled-in vocabulary.
var Default Vocabulary = static{adjectives: adjectives, animals: animals}

type static struct {
	adjectives []string
	animals    []string
}

func (s static) Adjectives() []string { return s.adjectives }
func (s static) Animals() []string    { return s.animals }

// New returns a vocabulary backed by copies of the given lists.
// An empty adjective list is allowed; an empty animal list is not.
func New(adjectives, animals []string) (Vocabulary, error) {
	v := static{
		adjectives: append([]string(nil), adjectives...),
		animals:    append([]string(nil), animals...),
	}
	if err := Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks that v has at least one animal and that every word in
// both lists is unique and made of lowercase ASCII letters.
func Validate(v Vocabulary) error {
	if len(v.Animals()) == 0 {
		return ErrEmpty
	}
	if err := checkList("adjectives", v.Adjectives()); err != nil {
		return err
	}
	return checkList("animals", v.Animals())
}

func checkList(name string, words []string) error {
	seen := make(map[string]bool, len(words))
	for i, w := range words {
		if !isWord(w) {
			return fmt.Errorf("%s[%d] %q: %w", name, i, w, ErrInvalidWord)
		}
		if seen[w] {
			return fmt.Errorf("%s[%d] %q: %w", name, i, w, ErrDuplicate)
		}
		seen[w] = true
	}
	return nil
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
