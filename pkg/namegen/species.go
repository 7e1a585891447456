package namegen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

var (
	// ErrUnknownSpecies is returned by ParseSpecies for unrecognized tokens.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrInvalidDelimiter is returned when a delimiter is not exactly one character.
	ErrInvalidDelimiter = errors.New("delimiter must be exactly one character")
)

type speciesKind uint8

const (
	kindSnake speciesKind = iota
	kindScreamingSnake
	kindCamel
	kindDromedary
	kindKebab
	kindScreamingKebab
	kindCustom
)

var speciesTokens = map[speciesKind]string{
	kindSnake:          "snake",
	kindScreamingSnake: "screaming_snake",
	kindCamel:          "camel",
	kindDromedary:      "dromedary",
	kindKebab:          "kebab",
	kindScreamingKebab: "screaming_kebab",
}

// Species selects how the words of a name are cased and joined.
// The zero value is Snake. Species values are comparable.
type Species struct {
	kind  speciesKind
	delim rune
}

var (
	// Snake produces snake_case_animal.
	Snake = Species{kind: kindSnake}
	// ScreamingSnake produces SCREAMING_SNAKE_ANIMAL.
	ScreamingSnake = Species{kind: kindScreamingSnake}
	// Camel produces CamelCaseAnimal.
	Camel = Species{kind: kindCamel}
	// Dromedary produces dromedaryCaseAnimal.
	Dromedary = Species{kind: kindDromedary}
	// Kebab produces kebab-case-animal.
	Kebab = Species{kind: kindKebab}
	// ScreamingKebab produces SCREAMING-KEBAB-ANIMAL.
	ScreamingKebab = Species{kind: kindScreamingKebab}
)

// CustomDelimiter returns a lowercase species joined by r.
func CustomDelimiter(r rune) Species {
	return Species{kind: kindCustom, delim: r}
}

// AllSpecies returns the named species in declaration order.
func AllSpecies() []Species {
	return []Species{Snake, ScreamingSnake, Camel, Dromedary, Kebab, ScreamingKebab}
}

// Delimiter returns the separator placed between words, if the species has one.
func (s Species) Delimiter() (rune, bool) {
	switch s.kind {
	case kindSnake, kindScreamingSnake:
		return '_', true
	case kindKebab, kindScreamingKebab:
		return '-', true
	case kindCustom:
		return s.delim, true
	default:
		return 0, false
	}
}

// RenderWord applies the species casing to word. position is the index of
// word among all words of the name, the animal included.
func (s Species) RenderWord(word string, position int) string {
	switch s.kind {
	case kindScreamingSnake, kindScreamingKebab:
		return strings.ToUpper(word)
	case kindCamel:
		return Capitalize(word)
	case kindDromedary:
		if position == 0 {
			return word
		}
		return Capitalize(word)
	default:
		return word
	}
}

// Capitalize upper-cases the first character of word and leaves the rest as is.
func Capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func (s Species) String() string {
	if s.kind == kindCustom {
		return fmt.Sprintf("custom(%c)", s.delim)
	}
	return speciesTokens[s.kind]
}

// ParseSpecies parses a species token such as "snake" or "screaming-kebab".
// Matching ignores case and word separators, so "ScreamingKebab" works too.
// The "custom(c)" form produced by String is also accepted.
func ParseSpecies(token string) (Species, error) {
	token = strings.TrimSpace(token)
	if inner, ok := strings.CutPrefix(token, "custom("); ok && strings.HasSuffix(inner, ")") {
		return ParseDelimiter(strings.TrimSuffix(inner, ")"))
	}

	normalized := strcase.ToSnake(token)
	for kind, name := range speciesTokens {
		if name == normalized {
			return Species{kind: kind}, nil
		}
	}
	return Species{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownSpecies, token, speciesList())
}

// ParseDelimiter returns the custom species for a one-character delimiter.
func ParseDelimiter(s string) (Species, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return Species{}, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return CustomDelimiter(r), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Species) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Species) UnmarshalText(text []byte) error {
	parsed, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func speciesList() string {
	names := make([]string, 0, len(speciesTokens))
	for _, s := range AllSpecies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
