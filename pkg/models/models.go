package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGenre is returned when a genre name is not one of the fixed set
var ErrUnknownGenre = errors.New("unknown genre")

// Genre is the closed set of genres a book can be recorded under
type Genre int

const (
	GenreFiction Genre = iota
	GenreNonFiction
	GenreMystery
	GenreScienceFiction
	GenreFantasy
	GenreBiography
)

// GenreCount is the number of genres
const GenreCount = 6

// DefaultGenre is the genre a fresh draft starts with
const DefaultGenre = GenreFiction

// String returns the display name of the genre
func (g Genre) String() string {
	switch g {
	case GenreFiction:
		return "Fiction"
	case GenreNonFiction:
		return "Non-Fiction"
	case GenreMystery:
		return "Mystery"
	case GenreScienceFiction:
		return "Science Fiction"
	case GenreFantasy:
		return "Fantasy"
	case GenreBiography:
		return "Biography"
	default:
		return "Unknown"
	}
}

// Valid reports whether g is a member of the genre set
func (g Genre) Valid() bool {
	return g >= GenreFiction && g < GenreCount
}

// Next returns the following genre, wrapping to the first
func (g Genre) Next() Genre {
	return Genre((int(g) + 1) % GenreCount)
}

// Prev returns the preceding genre, wrapping to the last
func (g Genre) Prev() Genre {
	return Genre((int(g) + GenreCount - 1) % GenreCount)
}

// Genres returns every genre in display order
func Genres() []Genre {
	genres := make([]Genre, GenreCount)
	for i := range genres {
		genres[i] = Genre(i)
	}
	return genres
}

// ParseGenre resolves a display name (case-insensitive) to a Genre
func ParseGenre(name string) (Genre, error) {
	name = strings.TrimSpace(name)
	for _, g := range Genres() {
		if strings.EqualFold(g.String(), name) {
			return g, nil
		}
	}
	return DefaultGenre, fmt.Errorf("%w: %q", ErrUnknownGenre, name)
}

// MarshalText implements encoding.TextMarshaler
func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGenre, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *Genre) UnmarshalText(text []byte) error {
	parsed, err := ParseGenre(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Book is one completed book. Values are never edited after being recorded.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Genre  Genre  `json:"genre" yaml:"genre"`
	Pages  int    `json:"pages" yaml:"pages"`
}
