package memory

import (
	"context"
	"sort"
	"sync"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"
)

// verseKey addresses one verse of text within one translation.
type verseKey struct {
	translationID string
	bookID        string
	chapter       int
	verse         int
}

// verseRepository implements the repository.VerseRepository interface over
// mutex-guarded maps. The corpus is static data loaded at startup; writes
// only happen while seeding.
type verseRepository struct {
	mu           sync.RWMutex
	verses       map[verseKey]entity.BibleVerse
	books        map[string]entity.BibleBook
	translations map[string]entity.BibleTranslation
}

// NewVerseRepository is the constructor for verseRepository. It starts
// with book and translation metadata; verse text is loaded through
// AddVerse.
func NewVerseRepository(books []entity.BibleBook, translations []entity.BibleTranslation) repository.VerseRepository {
	repo := &verseRepository{
		verses:       make(map[verseKey]entity.BibleVerse),
		books:        make(map[string]entity.BibleBook, len(books)),
		translations: make(map[string]entity.BibleTranslation, len(translations)),
	}
	for _, book := range books {
		repo.books[book.ID] = book
	}
	for _, translation := range translations {
		repo.translations[translation.ID] = translation
	}

	return repo
}

// FindVerse retrieves a single verse of text.
func (repo *verseRepository) FindVerse(_ context.Context, translationID, bookID string, chapter, verse int) (*entity.BibleVerse, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if _, ok := repo.translations[translationID]; !ok {
		return nil, repository.ErrTranslationNotFound
	}

	found, ok := repo.verses[verseKey{translationID, bookID, chapter, verse}]
	if !ok {
		return nil, repository.ErrVerseNotFound
	}

	return &found, nil
}

// FindRange retrieves every stored verse within the range, in verse order.
// An inverted range yields no verses. Gaps in the corpus are skipped.
func (repo *verseRepository) FindRange(_ context.Context, translationID string, rng *entity.VerseRange) ([]*entity.BibleVerse, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if _, ok := repo.translations[translationID]; !ok {
		return nil, repository.ErrTranslationNotFound
	}

	var verses []*entity.BibleVerse
	for verse := rng.StartVerse; verse <= rng.EndVerse; verse++ {
		if found, ok := repo.verses[verseKey{translationID, rng.BookID, rng.Chapter, verse}]; ok {
			copied := found
			verses = append(verses, &copied)
		}
	}

	return verses, nil
}

// AddVerse loads one verse of text into the store.
func (repo *verseRepository) AddVerse(_ context.Context, verse *entity.BibleVerse) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.translations[verse.TranslationID]; !ok {
		return repository.ErrTranslationNotFound
	}
	if _, ok := repo.books[verse.BookID]; !ok {
		return repository.ErrBookNotFound
	}

	repo.verses[verseKey{verse.TranslationID, verse.BookID, verse.Chapter, verse.Verse}] = *verse

	return nil
}

// FindBook retrieves book metadata by canonical code.
func (repo *verseRepository) FindBook(_ context.Context, bookID string) (*entity.BibleBook, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	book, ok := repo.books[bookID]
	if !ok {
		return nil, repository.ErrBookNotFound
	}

	return &book, nil
}

// ListBooks retrieves all known books in canonical order.
func (repo *verseRepository) ListBooks(_ context.Context) ([]*entity.BibleBook, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	books := make([]*entity.BibleBook, 0, len(repo.books))
	for _, book := range repo.books {
		copied := book
		books = append(books, &copied)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Order < books[j].Order })

	return books, nil
}

// FindTranslation retrieves translation metadata by ID.
func (repo *verseRepository) FindTranslation(_ context.Context, translationID string) (*entity.BibleTranslation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	translation, ok := repo.translations[translationID]
	if !ok {
		return nil, repository.ErrTranslationNotFound
	}

	return &translation, nil
}

// ListTranslations retrieves all loaded translations.
func (repo *verseRepository) ListTranslations(_ context.Context) ([]*entity.BibleTranslation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	translations := make([]*entity.BibleTranslation, 0, len(repo.translations))
	for _, translation := range repo.translations {
		copied := translation
		translations = append(translations, &copied)
	}
	sort.Slice(translations, func(i, j int) bool { return translations[i].ID < translations[j].ID })

	return translations, nil
}
