package impl

import (
	"context"
	"log/slog"

	"faithcompanion/config"
	"faithcompanion/internal/domain/entity"
	domainerrors "faithcompanion/internal/domain/errors"
	"faithcompanion/internal/domain/repository"
	"faithcompanion/internal/domain/service"
	"faithcompanion/internal/usecase"

	"github.com/pkg/errors"
)

// bibleService implements the BibleUsecase interface.
type bibleService struct {
	parser             service.ReferenceParser
	verseRepo          repository.VerseRepository
	defaultTranslation string
	logger             *slog.Logger
}

// NewBibleService is the constructor for bibleService.
func NewBibleService(
	parser service.ReferenceParser,
	verseRepo repository.VerseRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BibleUsecase {
	defaultTranslation := ""
	if cfg != nil && cfg.Bible != nil {
		defaultTranslation = cfg.Bible.DefaultTranslation
	}

	return &bibleService{
		parser:             parser,
		verseRepo:          verseRepo,
		defaultTranslation: defaultTranslation,
		logger:             logger,
	}
}

// ParseReference converts a free-text citation into a verse range.
func (srv *bibleService) ParseReference(reference string) (*entity.VerseRange, bool) {
	return srv.parser.Parse(reference)
}

// IsValidReference reports whether ParseReference would succeed.
func (srv *bibleService) IsValidReference(reference string) bool {
	return srv.parser.IsValid(reference)
}

// GetVerse resolves a single verse of text from a citation. A citation
// spanning multiple verses resolves its first verse.
func (srv *bibleService) GetVerse(ctx context.Context, translationID, reference string) (*entity.BibleVerse, error) {
	rng, ok := srv.parser.Parse(reference)
	if !ok {
		return nil, domainerrors.ErrInvalidReference
	}

	verse, err := srv.verseRepo.FindVerse(ctx, srv.translation(translationID), rng.BookID, rng.Chapter, rng.StartVerse)
	if err != nil {
		return nil, srv.mapVerseError(err)
	}

	return verse, nil
}

// GetPassage resolves every available verse in a cited range.
func (srv *bibleService) GetPassage(ctx context.Context, translationID, reference string) (*usecase.PassageOutput, error) {
	rng, ok := srv.parser.Parse(reference)
	if !ok {
		return nil, domainerrors.ErrInvalidReference
	}

	resolved := srv.translation(translationID)
	translation, err := srv.verseRepo.FindTranslation(ctx, resolved)
	if err != nil {
		return nil, srv.mapVerseError(err)
	}

	verses, err := srv.verseRepo.FindRange(ctx, resolved, rng)
	if err != nil {
		return nil, srv.mapVerseError(err)
	}

	srv.logger.Debug("Passage resolved",
		slog.String("reference", rng.String()),
		slog.Int("verses", len(verses)))

	return &usecase.PassageOutput{
		Range:       rng,
		Translation: translation,
		Verses:      verses,
	}, nil
}

// GetBook retrieves book metadata by canonical code.
func (srv *bibleService) GetBook(ctx context.Context, bookID string) (*entity.BibleBook, error) {
	book, err := srv.verseRepo.FindBook(ctx, bookID)
	if err != nil {
		return nil, srv.mapVerseError(err)
	}

	return book, nil
}

// ListBooks retrieves all known books in canonical order.
func (srv *bibleService) ListBooks(ctx context.Context) ([]*entity.BibleBook, error) {
	books, err := srv.verseRepo.ListBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// ListTranslations retrieves all loaded translations.
func (srv *bibleService) ListTranslations(ctx context.Context) ([]*entity.BibleTranslation, error) {
	translations, err := srv.verseRepo.ListTranslations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list translations")
	}

	return translations, nil
}

// translation picks the configured default when the caller passes no
// translation ID.
func (srv *bibleService) translation(translationID string) string {
	if translationID == "" {
		return srv.defaultTranslation
	}

	return translationID
}

// mapVerseError translates repository sentinels into domain errors.
func (srv *bibleService) mapVerseError(err error) error {
	switch {
	case errors.Is(err, repository.ErrVerseNotFound):
		return domainerrors.ErrVerseNotFound
	case errors.Is(err, repository.ErrTranslationNotFound):
		return domainerrors.ErrTranslationNotFound
	case errors.Is(err, repository.ErrBookNotFound):
		return domainerrors.ErrVerseNotFound.WrapMessage("unknown book")
	default:
		return errors.Wrap(err, "scripture lookup failed")
	}
}
