package bible

import "faithcompanion/internal/domain/entity"

// DefaultTranslations returns the translation metadata the service ships with.
// Which translations actually carry text depends on the corpus loaded at startup.
func DefaultTranslations() []entity.BibleTranslation {
	return []entity.BibleTranslation{
		{ID: "esv", Name: "English Standard Version", Abbreviation: "ESV", Language: "en", Year: 2001},
		{ID: "niv", Name: "New International Version", Abbreviation: "NIV", Language: "en", Year: 1978},
		{ID: "kjv", Name: "King James Version", Abbreviation: "KJV", Language: "en", Year: 1611},
	}
}

// DefaultBooks returns metadata for every book in the default vocabulary.
// Order values are the books' positions in the full canon, so sorting by
// Order keeps canonical sequence even though numbered books (whose names
// the alphabetic reference grammar cannot produce) are absent.
func DefaultBooks() []entity.BibleBook {
	return []entity.BibleBook{
		{ID: "gen", Name: "Genesis", Abbreviation: "Gen", Testament: entity.TestamentOld, Order: 1, ChapterCount: 50},
		{ID: "exo", Name: "Exodus", Abbreviation: "Exo", Testament: entity.TestamentOld, Order: 2, ChapterCount: 40},
		{ID: "lev", Name: "Leviticus", Abbreviation: "Lev", Testament: entity.TestamentOld, Order: 3, ChapterCount: 27},
		{ID: "num", Name: "Numbers", Abbreviation: "Num", Testament: entity.TestamentOld, Order: 4, ChapterCount: 36},
		{ID: "deu", Name: "Deuteronomy", Abbreviation: "Deu", Testament: entity.TestamentOld, Order: 5, ChapterCount: 34},
		{ID: "jos", Name: "Joshua", Abbreviation: "Jos", Testament: entity.TestamentOld, Order: 6, ChapterCount: 24},
		{ID: "jdg", Name: "Judges", Abbreviation: "Jdg", Testament: entity.TestamentOld, Order: 7, ChapterCount: 21},
		{ID: "rut", Name: "Ruth", Abbreviation: "Rut", Testament: entity.TestamentOld, Order: 8, ChapterCount: 4},
		{ID: "ezr", Name: "Ezra", Abbreviation: "Ezr", Testament: entity.TestamentOld, Order: 15, ChapterCount: 10},
		{ID: "neh", Name: "Nehemiah", Abbreviation: "Neh", Testament: entity.TestamentOld, Order: 16, ChapterCount: 13},
		{ID: "est", Name: "Esther", Abbreviation: "Est", Testament: entity.TestamentOld, Order: 17, ChapterCount: 10},
		{ID: "job", Name: "Job", Abbreviation: "Job", Testament: entity.TestamentOld, Order: 18, ChapterCount: 42},
		{ID: "psa", Name: "Psalms", Abbreviation: "Psa", Testament: entity.TestamentOld, Order: 19, ChapterCount: 150},
		{ID: "pro", Name: "Proverbs", Abbreviation: "Pro", Testament: entity.TestamentOld, Order: 20, ChapterCount: 31},
		{ID: "ecc", Name: "Ecclesiastes", Abbreviation: "Ecc", Testament: entity.TestamentOld, Order: 21, ChapterCount: 12},
		{ID: "isa", Name: "Isaiah", Abbreviation: "Isa", Testament: entity.TestamentOld, Order: 23, ChapterCount: 66},
		{ID: "jer", Name: "Jeremiah", Abbreviation: "Jer", Testament: entity.TestamentOld, Order: 24, ChapterCount: 52},
		{ID: "lam", Name: "Lamentations", Abbreviation: "Lam", Testament: entity.TestamentOld, Order: 25, ChapterCount: 5},
		{ID: "ezk", Name: "Ezekiel", Abbreviation: "Ezk", Testament: entity.TestamentOld, Order: 26, ChapterCount: 48},
		{ID: "dan", Name: "Daniel", Abbreviation: "Dan", Testament: entity.TestamentOld, Order: 27, ChapterCount: 12},
		{ID: "hos", Name: "Hosea", Abbreviation: "Hos", Testament: entity.TestamentOld, Order: 28, ChapterCount: 14},
		{ID: "jol", Name: "Joel", Abbreviation: "Jol", Testament: entity.TestamentOld, Order: 29, ChapterCount: 3},
		{ID: "amo", Name: "Amos", Abbreviation: "Amo", Testament: entity.TestamentOld, Order: 30, ChapterCount: 9},
		{ID: "oba", Name: "Obadiah", Abbreviation: "Oba", Testament: entity.TestamentOld, Order: 31, ChapterCount: 1},
		{ID: "jon", Name: "Jonah", Abbreviation: "Jon", Testament: entity.TestamentOld, Order: 32, ChapterCount: 4},
		{ID: "mic", Name: "Micah", Abbreviation: "Mic", Testament: entity.TestamentOld, Order: 33, ChapterCount: 7},
		{ID: "nam", Name: "Nahum", Abbreviation: "Nam", Testament: entity.TestamentOld, Order: 34, ChapterCount: 3},
		{ID: "hab", Name: "Habakkuk", Abbreviation: "Hab", Testament: entity.TestamentOld, Order: 35, ChapterCount: 3},
		{ID: "zep", Name: "Zephaniah", Abbreviation: "Zep", Testament: entity.TestamentOld, Order: 36, ChapterCount: 3},
		{ID: "hag", Name: "Haggai", Abbreviation: "Hag", Testament: entity.TestamentOld, Order: 37, ChapterCount: 2},
		{ID: "zec", Name: "Zechariah", Abbreviation: "Zec", Testament: entity.TestamentOld, Order: 38, ChapterCount: 14},
		{ID: "mal", Name: "Malachi", Abbreviation: "Mal", Testament: entity.TestamentOld, Order: 39, ChapterCount: 4},
		{ID: "mat", Name: "Matthew", Abbreviation: "Mat", Testament: entity.TestamentNew, Order: 40, ChapterCount: 28},
		{ID: "mrk", Name: "Mark", Abbreviation: "Mrk", Testament: entity.TestamentNew, Order: 41, ChapterCount: 16},
		{ID: "luk", Name: "Luke", Abbreviation: "Luk", Testament: entity.TestamentNew, Order: 42, ChapterCount: 24},
		{ID: "jhn", Name: "John", Abbreviation: "Jhn", Testament: entity.TestamentNew, Order: 43, ChapterCount: 21},
		{ID: "act", Name: "Acts", Abbreviation: "Act", Testament: entity.TestamentNew, Order: 44, ChapterCount: 28},
		{ID: "rom", Name: "Romans", Abbreviation: "Rom", Testament: entity.TestamentNew, Order: 45, ChapterCount: 16},
		{ID: "gal", Name: "Galatians", Abbreviation: "Gal", Testament: entity.TestamentNew, Order: 48, ChapterCount: 6},
		{ID: "eph", Name: "Ephesians", Abbreviation: "Eph", Testament: entity.TestamentNew, Order: 49, ChapterCount: 6},
		{ID: "php", Name: "Philippians", Abbreviation: "Php", Testament: entity.TestamentNew, Order: 50, ChapterCount: 4},
		{ID: "col", Name: "Colossians", Abbreviation: "Col", Testament: entity.TestamentNew, Order: 51, ChapterCount: 4},
		{ID: "tit", Name: "Titus", Abbreviation: "Tit", Testament: entity.TestamentNew, Order: 56, ChapterCount: 3},
		{ID: "phm", Name: "Philemon", Abbreviation: "Phm", Testament: entity.TestamentNew, Order: 57, ChapterCount: 1},
		{ID: "heb", Name: "Hebrews", Abbreviation: "Heb", Testament: entity.TestamentNew, Order: 58, ChapterCount: 13},
		{ID: "jas", Name: "James", Abbreviation: "Jas", Testament: entity.TestamentNew, Order: 59, ChapterCount: 5},
		{ID: "jud", Name: "Jude", Abbreviation: "Jud", Testament: entity.TestamentNew, Order: 65, ChapterCount: 1},
		{ID: "rev", Name: "Revelation", Abbreviation: "Rev", Testament: entity.TestamentNew, Order: 66, ChapterCount: 22},
	}
}
