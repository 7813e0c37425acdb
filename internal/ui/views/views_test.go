package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justyntemme/booktracker-t/internal/tracker"
	"github.com/justyntemme/booktracker-t/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "0", FormatTotal(0))
	assert.Equal(t, "412", FormatTotal(412))
	assert.Equal(t, "12,345", FormatTotal(12345))

	assert.Equal(t, "0.00", FormatAverage(0))
	assert.Equal(t, "412.00", FormatAverage(412))
	assert.Equal(t, "333.33", FormatAverage(1000.0/3.0))
}

func TestHomeViewOpensForm(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("a")},
		{Type: tea.KeyRunes, Runes: []rune("n")},
		{Type: tea.KeyEnter},
	} {
		store := tracker.NewStore(nil)
		v := NewHomeView(store, 5)

		v.Update(k)
		assert.True(t, store.State().FormVisible, "key %s", k.String())
	}
}

func TestHomeViewHidesReadingLogWhenDisabled(t *testing.T) {
	store := tracker.NewStore(nil)
	for _, title := range []string{"One", "Two", "Three"} {
		store.Dispatch(tracker.UpdateDraftField{Field: tracker.FieldTitle, Value: title})
		store.Dispatch(tracker.UpdateDraftField{Field: tracker.FieldAuthor, Value: "Someone"})
		store.Dispatch(tracker.SelectGenre{Genre: models.GenreFantasy})
		store.Dispatch(tracker.UpdateDraftField{Field: tracker.FieldPages, Value: "10"})
		store.Dispatch(tracker.CommitBook{})
	}

	v := NewHomeView(store, 0)
	out := v.View()
	assert.NotContains(t, out, "Reading Log")
	assert.Contains(t, out, "Three")
	assert.Contains(t, out, "10.00")
}

func TestBookFormLoadsDraft(t *testing.T) {
	store := tracker.NewStore(nil)
	store.Dispatch(tracker.OpenForm{})
	store.Dispatch(tracker.UpdateDraftField{Field: tracker.FieldPages, Value: "-5"})

	form := NewBookFormView(store)
	form.Load()

	out := form.View()
	assert.Contains(t, out, "-5")
	assert.Contains(t, out, "Fiction")
	assert.Contains(t, out, "Add Book")
	assert.Contains(t, out, "Cancel")

	// Negative pages stay in the draft but never commit
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, store.State().FormVisible)
	assert.Empty(t, store.State().Books)
}

func TestPagesText(t *testing.T) {
	tests := []struct {
		name  string
		draft tracker.Draft
		want  string
	}{
		{"blank", tracker.DefaultDraft(), ""},
		{"typed number", tracker.Draft{Pages: 412, PagesText: "412"}, "412"},
		{"no digits", tracker.Draft{Pages: 0, PagesText: "abc"}, "abc"},
		{"trailing text", tracker.Draft{Pages: 12, PagesText: "12abc"}, "12abc"},
		{"count without text", tracker.Draft{Pages: 300}, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagesText(tt.draft))
		})
	}
}

func TestViewTypeString(t *testing.T) {
	assert.Equal(t, "Home", ViewHome.String())
	assert.Equal(t, "Add New Book", ViewAddBook.String())
	assert.Equal(t, "Unknown", ViewType(7).String())
}

func TestErrorCommands(t *testing.T) {
	msg := SendError(assert.AnError)()
	assert.Equal(t, ErrorMsg{Err: assert.AnError}, msg)
}
