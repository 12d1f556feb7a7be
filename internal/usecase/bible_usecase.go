package usecase

import (
	"context"

	"faithcompanion/internal/domain/entity"
)

// PassageOutput returns a resolved scripture passage.
type PassageOutput struct {
	Range       *entity.VerseRange
	Translation *entity.BibleTranslation
	Verses      []*entity.BibleVerse
}

// BibleUsecase defines the interface for scripture lookup operations.
type BibleUsecase interface {
	// ParseReference converts a free-text citation into a verse range.
	// Unparseable input returns (nil, false), never an error.
	ParseReference(reference string) (*entity.VerseRange, bool)

	// IsValidReference reports whether ParseReference would succeed.
	IsValidReference(reference string) bool

	// GetVerse resolves a single verse of text from a citation.
	// A citation spanning multiple verses resolves its first verse.
	GetVerse(ctx context.Context, translationID, reference string) (*entity.BibleVerse, error)

	// GetPassage resolves every available verse in a cited range.
	// An inverted range resolves to an empty passage.
	GetPassage(ctx context.Context, translationID, reference string) (*PassageOutput, error)

	// GetBook retrieves book metadata by canonical code.
	GetBook(ctx context.Context, bookID string) (*entity.BibleBook, error)

	// ListBooks retrieves all known books in canonical order.
	ListBooks(ctx context.Context) ([]*entity.BibleBook, error)

	// ListTranslations retrieves all loaded translations.
	ListTranslations(ctx context.Context) ([]*entity.BibleTranslation, error)
}
