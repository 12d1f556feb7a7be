package bible

import (
	"testing"

	"faithcompanion/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceParser_Parse(t *testing.T) {
	parser := NewReferenceParser(DefaultBookTable())

	tests := []struct {
		name      string
		reference string
		want      *entity.VerseRange
	}{
		{
			name:      "full book name single verse",
			reference: "John 3:16",
			want:      &entity.VerseRange{BookID: "jhn", Chapter: 3, StartVerse: 16, EndVerse: 16},
		},
		{
			name:      "abbreviated book with range",
			reference: "jhn 3:16-17",
			want:      &entity.VerseRange{BookID: "jhn", Chapter: 3, StartVerse: 16, EndVerse: 17},
		},
		{
			name:      "uppercase book name",
			reference: "ROMANS 8:1-4",
			want:      &entity.VerseRange{BookID: "rom", Chapter: 8, StartVerse: 1, EndVerse: 4},
		},
		{
			name:      "surrounding whitespace",
			reference: "  Genesis 1:1  ",
			want:      &entity.VerseRange{BookID: "gen", Chapter: 1, StartVerse: 1, EndVerse: 1},
		},
		{
			name:      "no space between book and chapter",
			reference: "mat5:3",
			want:      &entity.VerseRange{BookID: "mat", Chapter: 5, StartVerse: 3, EndVerse: 3},
		},
		{
			name:      "trailing garbage is ignored",
			reference: "John 3:16 and some commentary",
			want:      &entity.VerseRange{BookID: "jhn", Chapter: 3, StartVerse: 16, EndVerse: 16},
		},
		{
			name:      "inverted range is not reordered",
			reference: "John 3:17-16",
			want:      &entity.VerseRange{BookID: "jhn", Chapter: 3, StartVerse: 17, EndVerse: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.reference)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferenceParser_ParseRejects(t *testing.T) {
	parser := NewReferenceParser(DefaultBookTable())

	tests := []struct {
		name      string
		reference string
	}{
		{name: "unknown book", reference: "UnknownBook 3:16"},
		{name: "free text", reference: "invalid reference"},
		{name: "empty string", reference: ""},
		{name: "missing verse", reference: "John 3"},
		{name: "missing chapter", reference: "John :16"},
		{name: "chapter before book", reference: "3:16 John"},
		{name: "signed chapter", reference: "John +3:16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.reference)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestReferenceParser_IsValid(t *testing.T) {
	parser := NewReferenceParser(DefaultBookTable())

	// IsValid is defined purely in terms of Parse.
	references := []string{
		"John 3:16",
		"jhn 3:16-17",
		"UnknownBook 3:16",
		"invalid reference",
		"",
	}

	for _, reference := range references {
		_, ok := parser.Parse(reference)
		assert.Equal(t, ok, parser.IsValid(reference), "reference: %q", reference)
	}
}

func TestDefaultBookTable_CanonicalCodes(t *testing.T) {
	table := DefaultBookTable()

	// Full names and codes resolve to the same canonical code.
	tests := []struct {
		token string
		want  string
	}{
		{token: "genesis", want: "gen"},
		{token: "gen", want: "gen"},
		{token: "psalm", want: "psa"},
		{token: "psalms", want: "psa"},
		{token: "john", want: "jhn"},
		{token: "jhn", want: "jhn"},
		{token: "revelation", want: "rev"},
	}

	for _, tt := range tests {
		code, ok := table.Lookup(tt.token)
		require.True(t, ok, "token %q missing from table", tt.token)
		assert.Equal(t, tt.want, code)
	}

	// Unknown tokens stay unknown.
	_, ok := table.Lookup("shakespeare")
	assert.False(t, ok)
}
