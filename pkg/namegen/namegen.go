// Package namegen generates friendly animal names.
// Format: zero or more adjectives followed by an animal, cased and joined
// according to a Species (e.g. "poor-ballsy-elegant-camel", "HappyLazyFox").
package namegen

import (
	"iter"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/friendlyzoo/zoo/pkg/vocab"
)

// Zoo generates animal names. It holds only configuration, so one Zoo can
// be shared between goroutines as long as nobody reconfigures it and the
// Rand in use is safe for concurrent use.
type Zoo struct {
	species    Species
	adjectives int
	vocab      vocab.Vocabulary
	logger     hclog.Logger
}

// New creates a zoo producing names with the given species and number of
// adjectives. Nothing is validated here: a negative count behaves like zero
// and a count above the vocabulary size yields every available adjective.
func New(species Species, adjectives int) *Zoo {
	return &Zoo{
		species:    species,
		adjectives: adjectives,
		vocab:      vocab.Default,
		logger:     hclog.NewNullLogger(),
	}
}

// Default returns a zoo using snake case and one adjective.
func Default() *Zoo {
	return New(Snake, 1)
}

// Species returns the species names are generated with.
func (z *Zoo) Species() Species { return z.species }

// Adjectives returns the number of adjectives preceding the animal.
func (z *Zoo) Adjectives() int { return z.adjectives }

// SetSpecies changes the species used for generating names.
func (z *Zoo) SetSpecies(species Species) {
	z.species = species
}

// SetAdjectives changes the number of adjectives preceding the animal.
func (z *Zoo) SetAdjectives(n int) {
	z.adjectives = n
}

// SetVocabulary replaces the word lists. A nil vocabulary restores vocab.Default.
func (z *Zoo) SetVocabulary(v vocab.Vocabulary) {
	if v == nil {
		v = vocab.Default
	}
	z.vocab = v
}

// SetLogger sets the logger used for generation diagnostics
func (z *Zoo) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	z.logger = logger
}

// WithSpecies returns a copy of z using species.
func (z *Zoo) WithSpecies(species Species) *Zoo {
	c := *z
	c.SetSpecies(species)
	return &c
}

// WithAdjectives returns a copy of z using n adjectives.
func (z *Zoo) WithAdjectives(n int) *Zoo {
	c := *z
	c.SetAdjectives(n)
	return &c
}

// WithVocabulary returns a copy of z drawing words from v.
func (z *Zoo) WithVocabulary(v vocab.Vocabulary) *Zoo {
	c := *z
	c.SetVocabulary(v)
	return &c
}

// Generate creates a name using DefaultRand.
func (z *Zoo) Generate() string {
	return z.GenerateWithRand(DefaultRand())
}

// Next generates another name. A zoo never runs out of names.
func (z *Zoo) Next() string {
	return z.Generate()
}

// GenerateWithRand creates a name drawing words from r. With a seeded Rand
// the output is repeatable.
//
// Adjectives are distinct within one name. Asking for more adjectives than
// the vocabulary holds is not an error: every adjective is used once.
// GenerateWithRand panics if the vocabulary has no animals.
func (z *Zoo) GenerateWithRand(r Rand) string {
	adjectives, animals := z.vocab.Adjectives(), z.vocab.Animals()
	if len(animals) == 0 {
		panic("namegen: vocabulary has no animals")
	}

	want := max(z.adjectives, 0)
	if want > len(adjectives) {
		z.logger.Debug("adjective count exceeds vocabulary, using all adjectives",
			"requested", want, "available", len(adjectives))
	}

	delim, hasDelim := z.species.Delimiter()

	var b strings.Builder
	picked := r.ChooseMultiple(len(adjectives), want)
	for i, idx := range picked {
		b.WriteString(z.species.RenderWord(adjectives[idx], i))
		if hasDelim {
			b.WriteRune(delim)
		}
	}

	animal := animals[r.Choose(len(animals))]
	b.WriteString(z.species.RenderWord(animal, len(picked)))

	name := b.String()
	z.logger.Trace("generated name", "species", z.species, "name", name)
	return name
}

// GenerateN creates n names using DefaultRand.
func (z *Zoo) GenerateN(n int) []string {
	return z.GenerateNWithRand(DefaultRand(), n)
}

// GenerateNWithRand creates n names drawing words from r.
func (z *Zoo) GenerateNWithRand(r Rand, n int) []string {
	names := make([]string, 0, max(n, 0))
	for range n {
		names = append(names, z.GenerateWithRand(r))
	}
	return names
}

// All returns an infinite sequence of names using DefaultRand.
func (z *Zoo) All() iter.Seq[string] {
	return z.AllWithRand(DefaultRand())
}

// AllWithRand returns an infinite sequence of names drawing words from r.
// The sequence only ends when the consumer stops ranging over it.
func (z *Zoo) AllWithRand(r Rand) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(z.GenerateWithRand(r)) {
				return
			}
		}
	}
}
