package bible

import (
	"regexp"
	"strconv"
	"strings"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/service"
)

// referencePattern matches "<book> <chapter>:<verse>" with an optional
// "-<verse>" range end, anchored at the start of the trimmed input.
// Trailing text after a match is ignored, not rejected.
var referencePattern = regexp.MustCompile(`^([a-zA-Z]+)\s*(\d+):(\d+)(?:-(\d+))?`)

// referenceParser is a concrete implementation of the ReferenceParser
// interface. The book vocabulary is injected at construction; the parser
// itself carries no other state and is safe for concurrent use.
type referenceParser struct {
	books BookTable
}

// NewReferenceParser is the constructor for referenceParser.
// It returns the implementation as a service.ReferenceParser interface.
func NewReferenceParser(books BookTable) service.ReferenceParser {
	return &referenceParser{books: books}
}

// Parse converts a free-text citation such as "John 3:16-17" into a
// VerseRange. Grammar mismatch, unknown book, and numeric failure all
// yield (nil, false).
func (p *referenceParser) Parse(reference string) (*entity.VerseRange, bool) {
	match := referencePattern.FindStringSubmatch(strings.TrimSpace(reference))
	if match == nil {
		return nil, false
	}

	bookID, ok := p.books.Lookup(strings.ToLower(match[1]))
	if !ok {
		return nil, false
	}

	chapter, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, false
	}
	startVerse, err := strconv.Atoi(match[3])
	if err != nil {
		return nil, false
	}
	endVerse := startVerse
	if match[4] != "" {
		if endVerse, err = strconv.Atoi(match[4]); err != nil {
			return nil, false
		}
	}

	return &entity.VerseRange{
		BookID:     bookID,
		Chapter:    chapter,
		StartVerse: startVerse,
		EndVerse:   endVerse,
	}, true
}

// IsValid reports whether Parse would succeed for the reference.
func (p *referenceParser) IsValid(reference string) bool {
	_, ok := p.Parse(reference)

	return ok
}
