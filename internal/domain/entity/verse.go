// Package entity contains the core business objects of the project.
package entity

import "fmt"

// Testament identifies which testament a book belongs to.
type Testament string

const (
	// TestamentOld marks Old Testament books.
	TestamentOld Testament = "old"
	// TestamentNew marks New Testament books.
	TestamentNew Testament = "new"
)

// String returns the string representation of the Testament.
func (t Testament) String() string {
	return string(t)
}

// IsValid checks if the Testament is a valid value.
func (t Testament) IsValid() bool {
	return t == TestamentOld || t == TestamentNew
}

// BibleTranslation describes a single translation of the Bible text.
type BibleTranslation struct {
	ID           string // Canonical lowercase identifier, e.g. "esv".
	Name         string // Full translation name, e.g. "English Standard Version".
	Abbreviation string // Display abbreviation, e.g. "ESV".
	Language     string // BCP 47 language tag, e.g. "en".
	Year         int    // Year of publication. Zero when unknown.
}

// BibleBook describes a single book of the Bible.
type BibleBook struct {
	ID           string    // Canonical lowercase 3-letter code, e.g. "jhn".
	Name         string    // Full book name, e.g. "John".
	Abbreviation string    // Display abbreviation, e.g. "Jhn".
	Testament    Testament // Which testament the book belongs to.
	Order        int       // Canonical ordering, 1-based.
	ChapterCount int       // Number of chapters in the book.
}

// BibleVerse is a single verse of scripture text in one translation.
type BibleVerse struct {
	TranslationID string // The translation this text belongs to.
	BookID        string // Canonical book code.
	Chapter       int    // Chapter number, 1-based.
	Verse         int    // Verse number, 1-based.
	Text          string // The verse text itself.
}

// Reference renders the verse's human-readable citation, e.g. "jhn 3:16".
func (v BibleVerse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.BookID, v.Chapter, v.Verse)
}

// VerseRange identifies a contiguous run of verses within one chapter.
// It is a pure value: two ranges with equal fields are interchangeable.
// The parser does not enforce StartVerse <= EndVerse; callers resolving
// text treat an inverted range as empty.
type VerseRange struct {
	BookID     string // Canonical lowercase 3-letter book code.
	Chapter    int    // Chapter number, 1-based.
	StartVerse int    // First verse of the range.
	EndVerse   int    // Last verse of the range. Equals StartVerse for a single verse.
}

// String renders the range as a citation, e.g. "jhn 3:16" or "jhn 3:16-17".
func (r VerseRange) String() string {
	if r.StartVerse == r.EndVerse {
		return fmt.Sprintf("%s %d:%d", r.BookID, r.Chapter, r.StartVerse)
	}

	return fmt.Sprintf("%s %d:%d-%d", r.BookID, r.Chapter, r.StartVerse, r.EndVerse)
}
