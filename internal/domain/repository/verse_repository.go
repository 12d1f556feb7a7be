// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/errors"
)

// Domain-specific errors for scripture text persistence.
var (
	// ErrVerseNotFound is returned when a verse has no stored text.
	ErrVerseNotFound = errors.New("verse not found")
	// ErrBookNotFound is returned when a book code is unknown to the store.
	ErrBookNotFound = errors.New("book not found")
	// ErrTranslationNotFound is returned when a translation is not loaded.
	ErrTranslationNotFound = errors.New("translation not found")
)

// VerseRepository defines read access to the scripture text corpus,
// keyed by translation, book, chapter and verse. The corpus itself is
// static external data loaded at startup.
type VerseRepository interface {
	// FindVerse retrieves a single verse of text.
	FindVerse(ctx context.Context, translationID, bookID string, chapter, verse int) (*entity.BibleVerse, error)

	// FindRange retrieves every stored verse within the range, in verse order.
	// Verses missing from the corpus are skipped, not errors.
	FindRange(ctx context.Context, translationID string, rng *entity.VerseRange) ([]*entity.BibleVerse, error)

	// AddVerse loads one verse of text into the store.
	AddVerse(ctx context.Context, verse *entity.BibleVerse) error

	// FindBook retrieves book metadata by canonical code.
	FindBook(ctx context.Context, bookID string) (*entity.BibleBook, error)

	// ListBooks retrieves all known books in canonical order.
	ListBooks(ctx context.Context) ([]*entity.BibleBook, error)

	// FindTranslation retrieves translation metadata by ID.
	FindTranslation(ctx context.Context, translationID string) (*entity.BibleTranslation, error)

	// ListTranslations retrieves all loaded translations.
	ListTranslations(ctx context.Context) ([]*entity.BibleTranslation, error)
}
