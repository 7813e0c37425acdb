package tracker

import (
	"github.com/justyntemme/booktracker-t/internal/logger"
)

// Store owns the current tracker state and applies events to it one at a
// time. It is not safe for concurrent use; the UI event loop serialises
// every Dispatch.
type Store struct {
	state State
	log   *logger.Logger
}

// NewStore creates a store holding the empty state
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		state: NewState(),
		log:   log.WithFields(map[string]interface{}{"component": "tracker"}),
	}
}

// State returns the current state
func (s *Store) State() State {
	return s.state
}

// Dispatch applies e and returns the resulting state
func (s *Store) Dispatch(e Event) State {
	prev := s.state
	next := Reduce(prev, e)
	s.state = next

	switch e.(type) {
	case OpenForm:
		if !prev.FormVisible {
			s.log.Debug("Add book form opened")
		}
	case CancelForm:
		if prev.FormVisible {
			s.log.Debug("Add book form cancelled")
		}
	case CommitBook:
		if len(next.Books) > len(prev.Books) {
			s.log.Info("Book recorded", map[string]interface{}{
				"title":         next.Books[0].Title,
				"author":        next.Books[0].Author,
				"genre":         next.Books[0].Genre.String(),
				"pages":         next.Books[0].Pages,
				"books":         len(next.Books),
				"total_pages":   next.TotalPagesRead,
				"average_pages": next.AveragePagesPerBook,
			})
		}
	}

	return next
}
