package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreNames(t *testing.T) {
	want := []string{"Fiction", "Non-Fiction", "Mystery", "Science Fiction", "Fantasy", "Biography"}

	genres := Genres()
	require.Len(t, genres, len(want))
	for i, g := range genres {
		assert.Equal(t, want[i], g.String())
		assert.True(t, g.Valid())
	}

	assert.False(t, Genre(GenreCount).Valid())
	assert.False(t, Genre(-1).Valid())
	assert.Equal(t, "Unknown", Genre(42).String())
}

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Genre
		wantErr bool
	}{
		{"exact", "Science Fiction", GenreScienceFiction, false},
		{"lower case", "non-fiction", GenreNonFiction, false},
		{"padded", "  Mystery ", GenreMystery, false},
		{"unknown", "Poetry", DefaultGenre, true},
		{"empty", "", DefaultGenre, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenre(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownGenre)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenreCycle(t *testing.T) {
	assert.Equal(t, GenreNonFiction, GenreFiction.Next())
	assert.Equal(t, GenreFiction, GenreBiography.Next())
	assert.Equal(t, GenreBiography, GenreFiction.Prev())
	assert.Equal(t, GenreFantasy, GenreBiography.Prev())

	g := DefaultGenre
	for i := 0; i < GenreCount; i++ {
		g = g.Next()
	}
	assert.Equal(t, DefaultGenre, g)
}

func TestGenreText(t *testing.T) {
	text, err := GenreFantasy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", string(text))

	var g Genre
	require.NoError(t, g.UnmarshalText([]byte("biography")))
	assert.Equal(t, GenreBiography, g)

	assert.Error(t, g.UnmarshalText([]byte("Cookbook")))
	_, err = Genre(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownGenre)
}
