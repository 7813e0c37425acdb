// Package tracker holds the reading tracker state and the transitions that
// change it. All state lives in one State value and every change goes
// through Reduce, so a transition is observed either entirely or not at all.
package tracker

import "github.com/justyntemme/booktracker-t/pkg/models"

// Draft is the in-progress book being edited in the add-book form.
// Unlike models.Book it may hold empty text or a non-positive page count.
type Draft struct {
	Title  string
	Author string
	Genre  models.Genre
	Pages  int

	// PagesText is the pages input exactly as typed. Pages is parsed from it.
	PagesText string
}

// DefaultDraft returns the blank draft the form starts from
func DefaultDraft() Draft {
	return Draft{Genre: models.DefaultGenre}
}

// Committable reports whether the draft may be moved into the book list
func (d Draft) Committable() bool {
	return d.Title != "" && d.Author != "" && d.Genre.Valid() && d.Pages > 0
}

// Book snapshots the draft as a book record
func (d Draft) Book() models.Book {
	return models.Book{
		Title:  d.Title,
		Author: d.Author,
		Genre:  d.Genre,
		Pages:  d.Pages,
	}
}

// State is everything the tracker owns
type State struct {
	// Books is newest first
	Books               []models.Book
	TotalPagesRead      int
	AveragePagesPerBook float64
	Draft               Draft
	FormVisible         bool
}

// NewState returns the empty starting state
func NewState() State {
	return State{Draft: DefaultDraft()}
}

// LastBook returns the most recently added book, if any
func (s State) LastBook() (models.Book, bool) {
	if len(s.Books) == 0 {
		return models.Book{}, false
	}
	return s.Books[0], true
}

// Stats holds the aggregates derived from a book list
type Stats struct {
	TotalPages   int
	AveragePages float64
}

// ComputeStats derives the aggregates from scratch. The average of an empty
// list is 0.
func ComputeStats(books []models.Book) Stats {
	var st Stats
	for _, b := range books {
		st.TotalPages += b.Pages
	}
	if len(books) > 0 {
		st.AveragePages = float64(st.TotalPages) / float64(len(books))
	}
	return st
}
