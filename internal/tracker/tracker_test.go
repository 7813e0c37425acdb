package tracker

import (
	"strconv"
	"testing"

	"github.com/justyntemme/booktracker-t/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill applies field updates for a complete draft
func fill(s State, title, author string, genre models.Genre, pages string) State {
	s = Reduce(s, UpdateDraftField{Field: FieldTitle, Value: title})
	s = Reduce(s, UpdateDraftField{Field: FieldAuthor, Value: author})
	s = Reduce(s, SelectGenre{Genre: genre})
	s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: pages})
	return s
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Empty(t, s.Books)
	assert.Zero(t, s.TotalPagesRead)
	assert.Zero(t, s.AveragePagesPerBook)
	assert.False(t, s.FormVisible)
	assert.Equal(t, Draft{Title: "", Author: "", Genre: models.GenreFiction, Pages: 0}, s.Draft)

	_, ok := s.LastBook()
	assert.False(t, ok)
}

func TestOpenFormIsIdempotent(t *testing.T) {
	s := Reduce(NewState(), OpenForm{})
	assert.True(t, s.FormVisible)

	again := Reduce(s, OpenForm{})
	assert.Equal(t, s, again)
}

func TestUpdateDraftFieldTouchesOnlyThatField(t *testing.T) {
	s := Reduce(NewState(), OpenForm{})

	s = Reduce(s, UpdateDraftField{Field: FieldTitle, Value: "Dune"})
	assert.Equal(t, Draft{Title: "Dune", Genre: models.GenreFiction}, s.Draft)

	s = Reduce(s, UpdateDraftField{Field: FieldAuthor, Value: "Herbert"})
	assert.Equal(t, Draft{Title: "Dune", Author: "Herbert", Genre: models.GenreFiction}, s.Draft)

	s = Reduce(s, UpdateDraftField{Field: FieldGenre, Value: "Science Fiction"})
	assert.Equal(t, models.GenreScienceFiction, s.Draft.Genre)

	s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: "412"})
	assert.Equal(t, Draft{Title: "Dune", Author: "Herbert", Genre: models.GenreScienceFiction, Pages: 412, PagesText: "412"}, s.Draft)

	assert.Empty(t, s.Books)
	assert.Zero(t, s.TotalPagesRead)
	assert.True(t, s.FormVisible)
}

func TestUpdateDraftFieldRejectsUnknownGenre(t *testing.T) {
	s := Reduce(NewState(), SelectGenre{Genre: models.GenreMystery})

	s = Reduce(s, UpdateDraftField{Field: FieldGenre, Value: "Poetry"})
	assert.Equal(t, models.GenreMystery, s.Draft.Genre)

	s = Reduce(s, SelectGenre{Genre: models.Genre(17)})
	assert.Equal(t, models.GenreMystery, s.Draft.Genre)
}

func TestParsePagesCoercion(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{"abc", 0},
		{"", 0},
		{"   7", 7},
		{"12.5", 12},
		{"300 pages", 300},
		{"+15", 15},
		{"-7", -7},
		{"-", 0},
		{"p42", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePages(tt.input))
		})
	}
}

func TestPagesFieldStoresParsedValue(t *testing.T) {
	s := Reduce(NewState(), UpdateDraftField{Field: FieldPages, Value: "abc"})
	assert.Equal(t, 0, s.Draft.Pages)
	assert.Equal(t, "abc", s.Draft.PagesText)

	s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: "42"})
	assert.Equal(t, 42, s.Draft.Pages)

	s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: "-3"})
	assert.Equal(t, -3, s.Draft.Pages)
}

func TestCommitScenario(t *testing.T) {
	s := Reduce(NewState(), OpenForm{})
	s = Reduce(s, UpdateDraftField{Field: FieldTitle, Value: "Dune"})
	s = Reduce(s, UpdateDraftField{Field: FieldAuthor, Value: "Herbert"})
	s = Reduce(s, UpdateDraftField{Field: FieldGenre, Value: "Science Fiction"})
	s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: "412"})
	s = Reduce(s, CommitBook{})

	require.Len(t, s.Books, 1)
	assert.Equal(t, models.Book{Title: "Dune", Author: "Herbert", Genre: models.GenreScienceFiction, Pages: 412}, s.Books[0])
	assert.Equal(t, 412, s.TotalPagesRead)
	assert.InDelta(t, 412.0, s.AveragePagesPerBook, 1e-9)
	assert.False(t, s.FormVisible)
	assert.Equal(t, DefaultDraft(), s.Draft)

	// Zero pages is rejected and the form stays open.
	s = Reduce(s, OpenForm{})
	s = fill(s, "Emma", "Austen", models.GenreFiction, "0")
	rejected := Reduce(s, CommitBook{})

	assert.Equal(t, s, rejected)
	assert.Len(t, rejected.Books, 1)
	assert.Equal(t, 412, rejected.TotalPagesRead)
	assert.InDelta(t, 412.0, rejected.AveragePagesPerBook, 1e-9)
	assert.True(t, rejected.FormVisible)
}

func TestCommitRejections(t *testing.T) {
	base := Reduce(NewState(), OpenForm{})
	base = fill(base, "Dune", "Herbert", models.GenreScienceFiction, "412")
	base = Reduce(base, CommitBook{})
	base = Reduce(base, OpenForm{})

	tests := []struct {
		name   string
		title  string
		author string
		pages  string
	}{
		{"empty title", "", "Austen", "300"},
		{"empty author", "Emma", "", "300"},
		{"zero pages", "Emma", "Austen", "0"},
		{"negative pages", "Emma", "Austen", "-20"},
		{"unparseable pages", "Emma", "Austen", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fill(base, tt.title, tt.author, models.GenreFiction, tt.pages)
			after := Reduce(s, CommitBook{})

			assert.Equal(t, s, after)
			assert.Equal(t, base.Books, after.Books)
			assert.Equal(t, base.TotalPagesRead, after.TotalPagesRead)
			assert.Equal(t, base.AveragePagesPerBook, after.AveragePagesPerBook)
			assert.True(t, after.FormVisible)
		})
	}
}

func TestCommitOrderNewestFirst(t *testing.T) {
	s := fill(NewState(), "First", "A", models.GenreMystery, "100")
	s = Reduce(s, CommitBook{})
	s = fill(s, "Second", "B", models.GenreFantasy, "200")
	s = Reduce(s, CommitBook{})

	require.Len(t, s.Books, 2)
	assert.Equal(t, "Second", s.Books[0].Title)
	assert.Equal(t, "First", s.Books[1].Title)

	last, ok := s.LastBook()
	require.True(t, ok)
	assert.Equal(t, "Second", last.Title)
}

func TestAggregatesMatchBookList(t *testing.T) {
	pages := []int{412, 180, 1, 999, 333, 250, 76}

	s := NewState()
	sum := 0
	for i, p := range pages {
		s = Reduce(s, OpenForm{})
		s = Reduce(s, UpdateDraftField{Field: FieldTitle, Value: "Book"})
		s = Reduce(s, UpdateDraftField{Field: FieldAuthor, Value: "Author"})
		s = Reduce(s, SelectGenre{Genre: models.Genre(i % models.GenreCount)})
		s = Reduce(s, UpdateDraftField{Field: FieldPages, Value: strconv.Itoa(p)})
		s = Reduce(s, CommitBook{})
		sum += p

		require.Len(t, s.Books, i+1)
		assert.Equal(t, sum, s.TotalPagesRead)
		assert.InDelta(t, float64(sum)/float64(i+1), s.AveragePagesPerBook, 1e-9)

		st := ComputeStats(s.Books)
		assert.Equal(t, st.TotalPages, s.TotalPagesRead)
		assert.InDelta(t, st.AveragePages, s.AveragePagesPerBook, 1e-9)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestCancelKeepsDraft(t *testing.T) {
	s := Reduce(NewState(), OpenForm{})
	s = fill(s, "Half typed", "", models.GenreBiography, "12")

	s = Reduce(s, CancelForm{})
	assert.False(t, s.FormVisible)
	assert.Empty(t, s.Books)

	s = Reduce(s, OpenForm{})
	assert.True(t, s.FormVisible)
	assert.Equal(t, Draft{Title: "Half typed", Genre: models.GenreBiography, Pages: 12, PagesText: "12"}, s.Draft)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := fill(NewState(), "Dune", "Herbert", models.GenreScienceFiction, "412")
	s = Reduce(s, CommitBook{})

	before := append([]models.Book(nil), s.Books...)
	next := fill(s, "Emma", "Austen", models.GenreFiction, "300")
	next = Reduce(next, CommitBook{})

	assert.Equal(t, before, s.Books)
	assert.Len(t, next.Books, 2)
	assert.Equal(t, 412, s.TotalPagesRead)
}

func TestReduceNilEvent(t *testing.T) {
	s := Reduce(NewState(), OpenForm{})
	assert.Equal(t, s, Reduce(s, nil))
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "title", FieldTitle.String())
	assert.Equal(t, "pages", FieldPages.String())
	assert.Equal(t, "field(9)", Field(9).String())
}
