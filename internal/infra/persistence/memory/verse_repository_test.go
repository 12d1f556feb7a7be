package memory

import (
	"context"
	"testing"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"
	"faithcompanion/internal/infra/bible"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededVerseRepo(t *testing.T) repository.VerseRepository {
	t.Helper()

	repo := NewVerseRepository(bible.DefaultBooks(), bible.DefaultTranslations())
	for verse := 1; verse <= 5; verse++ {
		require.NoError(t, repo.AddVerse(context.Background(), &entity.BibleVerse{
			TranslationID: "esv",
			BookID:        "gen",
			Chapter:       1,
			Verse:         verse,
			Text:          "In the beginning...",
		}))
	}

	return repo
}

func TestVerseRepository_FindVerse(t *testing.T) {
	t.Parallel()

	repo := newSeededVerseRepo(t)

	verse, err := repo.FindVerse(context.Background(), "esv", "gen", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, verse.Verse)

	_, err = repo.FindVerse(context.Background(), "esv", "gen", 2, 1)
	assert.ErrorIs(t, err, repository.ErrVerseNotFound)

	_, err = repo.FindVerse(context.Background(), "nlt", "gen", 1, 1)
	assert.ErrorIs(t, err, repository.ErrTranslationNotFound)
}

func TestVerseRepository_FindRange(t *testing.T) {
	t.Parallel()

	repo := newSeededVerseRepo(t)

	t.Run("returns verses in order", func(t *testing.T) {
		t.Parallel()

		verses, err := repo.FindRange(context.Background(), "esv", &entity.VerseRange{
			BookID: "gen", Chapter: 1, StartVerse: 2, EndVerse: 4,
		})
		require.NoError(t, err)
		require.Len(t, verses, 3)
		assert.Equal(t, 2, verses[0].Verse)
		assert.Equal(t, 4, verses[2].Verse)
	})

	t.Run("skips gaps in the corpus", func(t *testing.T) {
		t.Parallel()

		verses, err := repo.FindRange(context.Background(), "esv", &entity.VerseRange{
			BookID: "gen", Chapter: 1, StartVerse: 4, EndVerse: 9,
		})
		require.NoError(t, err)
		assert.Len(t, verses, 2)
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		t.Parallel()

		verses, err := repo.FindRange(context.Background(), "esv", &entity.VerseRange{
			BookID: "gen", Chapter: 1, StartVerse: 4, EndVerse: 2,
		})
		require.NoError(t, err)
		assert.Empty(t, verses)
	})
}

func TestVerseRepository_AddVerse(t *testing.T) {
	t.Parallel()

	repo := NewVerseRepository(bible.DefaultBooks(), bible.DefaultTranslations())

	err := repo.AddVerse(context.Background(), &entity.BibleVerse{
		TranslationID: "nlt", BookID: "gen", Chapter: 1, Verse: 1,
	})
	assert.ErrorIs(t, err, repository.ErrTranslationNotFound)

	err = repo.AddVerse(context.Background(), &entity.BibleVerse{
		TranslationID: "esv", BookID: "xyz", Chapter: 1, Verse: 1,
	})
	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}

func TestVerseRepository_Catalog(t *testing.T) {
	t.Parallel()

	repo := newSeededVerseRepo(t)

	book, err := repo.FindBook(context.Background(), "psa")
	require.NoError(t, err)
	assert.Equal(t, "Psalms", book.Name)

	books, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, books)
	// Canonical order, Genesis first.
	assert.Equal(t, "gen", books[0].ID)
	for i := 1; i < len(books); i++ {
		assert.Greater(t, books[i].Order, books[i-1].Order)
	}

	translation, err := repo.FindTranslation(context.Background(), "kjv")
	require.NoError(t, err)
	assert.Equal(t, "KJV", translation.Abbreviation)

	translations, err := repo.ListTranslations(context.Background())
	require.NoError(t, err)
	assert.Len(t, translations, 3)
}
