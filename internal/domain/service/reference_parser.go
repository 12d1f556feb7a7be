package service

import "faithcompanion/internal/domain/entity"

// ReferenceParser defines the interface for turning free-text scripture
// citations into structured verse ranges.
type ReferenceParser interface {
	// Parse converts a reference such as "John 3:16-17" into a VerseRange.
	// It returns (nil, false) for any input it cannot parse; it never
	// fails with an error.
	Parse(reference string) (*entity.VerseRange, bool)

	// IsValid reports whether Parse would succeed for the reference.
	IsValid(reference string) bool
}
