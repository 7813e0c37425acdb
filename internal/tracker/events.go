package tracker

import (
	"fmt"

	"github.com/justyntemme/booktracker-t/pkg/models"
)

// Field names a draft field
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldGenre
	FieldPages
)

// String returns the field name
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldGenre:
		return "genre"
	case FieldPages:
		return "pages"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Event is a user input that transitions the tracker state.
// The set is closed: only the types in this package implement it.
type Event interface {
	apply(State) State
}

// OpenForm shows the add-book form
type OpenForm struct{}

// CancelForm hides the add-book form and leaves the draft as it was
type CancelForm struct{}

// UpdateDraftField replaces one draft field with text from an input.
// Pages text is coerced with ParsePages; genre text must name a genre.
type UpdateDraftField struct {
	Field Field
	Value string
}

// SelectGenre sets the draft genre from the selector
type SelectGenre struct {
	Genre models.Genre
}

// CommitBook moves the draft into the book list when it is complete
type CommitBook struct{}

func (OpenForm) apply(s State) State {
	s.FormVisible = true
	return s
}

func (CancelForm) apply(s State) State {
	s.FormVisible = false
	return s
}

func (e UpdateDraftField) apply(s State) State {
	switch e.Field {
	case FieldTitle:
		s.Draft.Title = e.Value
	case FieldAuthor:
		s.Draft.Author = e.Value
	case FieldGenre:
		g, err := models.ParseGenre(e.Value)
		if err != nil {
			return s
		}
		s.Draft.Genre = g
	case FieldPages:
		s.Draft.Pages = ParsePages(e.Value)
		s.Draft.PagesText = e.Value
	}
	return s
}

func (e SelectGenre) apply(s State) State {
	if !e.Genre.Valid() {
		return s
	}
	s.Draft.Genre = e.Genre
	return s
}

func (CommitBook) apply(s State) State {
	if !s.Draft.Committable() {
		return s
	}

	newTotal := s.TotalPagesRead + s.Draft.Pages

	books := make([]models.Book, 0, len(s.Books)+1)
	books = append(books, s.Draft.Book())
	books = append(books, s.Books...)

	s.Books = books
	s.AveragePagesPerBook = float64(newTotal) / float64(len(books))
	s.TotalPagesRead = newTotal
	s.Draft = DefaultDraft()
	s.FormVisible = false
	return s
}

// Reduce returns the state that follows s after e. s is not modified.
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}
