package impl

import (
	"context"
	"testing"

	"faithcompanion/config"
	"faithcompanion/internal/domain/entity"
	domainerrors "faithcompanion/internal/domain/errors"
	"faithcompanion/internal/infra/bible"
	"faithcompanion/internal/infra/persistence/memory"
	"faithcompanion/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBibleService(t *testing.T) usecase.BibleUsecase {
	t.Helper()

	repo := memory.NewVerseRepository(bible.DefaultBooks(), bible.DefaultTranslations())
	seed := []*entity.BibleVerse{
		{TranslationID: "esv", BookID: "jhn", Chapter: 3, Verse: 16, Text: "For God so loved the world..."},
		{TranslationID: "esv", BookID: "jhn", Chapter: 3, Verse: 17, Text: "For God did not send his Son..."},
		{TranslationID: "esv", BookID: "psa", Chapter: 23, Verse: 1, Text: "The LORD is my shepherd..."},
		{TranslationID: "kjv", BookID: "jhn", Chapter: 3, Verse: 16, Text: "For God so loved the world, that..."},
	}
	for _, verse := range seed {
		require.NoError(t, repo.AddVerse(context.Background(), verse))
	}

	cfg := &config.Config{Bible: &config.BibleConfig{DefaultTranslation: "esv"}}

	return NewBibleService(
		bible.NewReferenceParser(bible.DefaultBookTable()),
		repo,
		cfg,
		testLogger(),
	)
}

func TestBibleService_ParseReference(t *testing.T) {
	t.Parallel()

	svc := newTestBibleService(t)

	rng, ok := svc.ParseReference("John 3:16-17")
	require.True(t, ok)
	assert.Equal(t, "jhn", rng.BookID)
	assert.Equal(t, 3, rng.Chapter)
	assert.Equal(t, 16, rng.StartVerse)
	assert.Equal(t, 17, rng.EndVerse)

	assert.True(t, svc.IsValidReference("Psalms 23:1"))
	assert.False(t, svc.IsValidReference("NotABook 1:1"))
}

func TestBibleService_GetVerse(t *testing.T) {
	t.Parallel()

	svc := newTestBibleService(t)

	t.Run("resolves text in the default translation", func(t *testing.T) {
		t.Parallel()

		verse, err := svc.GetVerse(context.Background(), "", "John 3:16")
		require.NoError(t, err)
		assert.Equal(t, "esv", verse.TranslationID)
		assert.Equal(t, "For God so loved the world...", verse.Text)
	})

	t.Run("respects an explicit translation", func(t *testing.T) {
		t.Parallel()

		verse, err := svc.GetVerse(context.Background(), "kjv", "John 3:16")
		require.NoError(t, err)
		assert.Equal(t, "kjv", verse.TranslationID)
	})

	t.Run("a range resolves its first verse", func(t *testing.T) {
		t.Parallel()

		verse, err := svc.GetVerse(context.Background(), "esv", "John 3:16-17")
		require.NoError(t, err)
		assert.Equal(t, 16, verse.Verse)
	})

	t.Run("invalid citation", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetVerse(context.Background(), "esv", "NotABook 1:1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	})

	t.Run("missing text", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetVerse(context.Background(), "esv", "Genesis 1:1")
		assert.ErrorIs(t, err, domainerrors.ErrVerseNotFound)
	})
}

func TestBibleService_GetPassage(t *testing.T) {
	t.Parallel()

	svc := newTestBibleService(t)

	t.Run("collects every verse in the range", func(t *testing.T) {
		t.Parallel()

		passage, err := svc.GetPassage(context.Background(), "esv", "John 3:16-17")
		require.NoError(t, err)
		require.Len(t, passage.Verses, 2)
		assert.Equal(t, 16, passage.Verses[0].Verse)
		assert.Equal(t, 17, passage.Verses[1].Verse)
		assert.Equal(t, "esv", passage.Translation.ID)
		assert.Equal(t, "jhn 3:16-17", passage.Range.String())
	})

	t.Run("single verse range", func(t *testing.T) {
		t.Parallel()

		passage, err := svc.GetPassage(context.Background(), "", "Psalms 23:1")
		require.NoError(t, err)
		require.Len(t, passage.Verses, 1)
	})

	t.Run("unknown translation", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetPassage(context.Background(), "nlt", "John 3:16")
		assert.ErrorIs(t, err, domainerrors.ErrTranslationNotFound)
	})

	t.Run("inverted range yields no verses", func(t *testing.T) {
		t.Parallel()

		passage, err := svc.GetPassage(context.Background(), "esv", "John 3:17-16")
		require.NoError(t, err)
		assert.Empty(t, passage.Verses)
	})
}

func TestBibleService_Catalog(t *testing.T) {
	t.Parallel()

	svc := newTestBibleService(t)

	book, err := svc.GetBook(context.Background(), "jhn")
	require.NoError(t, err)
	assert.Equal(t, "John", book.Name)

	_, err = svc.GetBook(context.Background(), "xyz")
	assert.Error(t, err)

	books, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, books)
	assert.Equal(t, "gen", books[0].ID)

	translations, err := svc.ListTranslations(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, translations)
}
