// Package bible provides the scripture reference parser and the book
// vocabulary it resolves against.
package bible

// BookTable maps lowercase book names and recognized abbreviations to
// canonical 3-letter book codes. The table is closed, static data: the
// grammar never changes when entries are added.
type BookTable map[string]string

// Lookup resolves a normalized (lowercase, trimmed) token to a canonical
// book code.
func (t BookTable) Lookup(token string) (string, bool) {
	code, ok := t[token]

	return code, ok
}

// DefaultBookTable returns the built-in vocabulary: every canonical book
// whose name the reference grammar can produce, keyed by full name and
// by its 3-letter code.
func DefaultBookTable() BookTable {
	return BookTable{
		// Old Testament
		"gen": "gen", "genesis": "gen",
		"exo": "exo", "exodus": "exo",
		"lev": "lev", "leviticus": "lev",
		"num": "num", "numbers": "num",
		"deu": "deu", "deuteronomy": "deu",
		"jos": "jos", "joshua": "jos",
		"jdg": "jdg", "judges": "jdg",
		"rut": "rut", "ruth": "rut",
		"ezr": "ezr", "ezra": "ezr",
		"neh": "neh", "nehemiah": "neh",
		"est": "est", "esther": "est",
		"job": "job",
		"psa": "psa", "psalm": "psa", "psalms": "psa",
		"pro": "pro", "proverbs": "pro",
		"ecc": "ecc", "ecclesiastes": "ecc",
		"isa": "isa", "isaiah": "isa",
		"jer": "jer", "jeremiah": "jer",
		"lam": "lam", "lamentations": "lam",
		"ezk": "ezk", "ezekiel": "ezk",
		"dan": "dan", "daniel": "dan",
		"hos": "hos", "hosea": "hos",
		"jol": "jol", "joel": "jol",
		"amo": "amo", "amos": "amo",
		"oba": "oba", "obadiah": "oba",
		"jon": "jon", "jonah": "jon",
		"mic": "mic", "micah": "mic",
		"nam": "nam", "nahum": "nam",
		"hab": "hab", "habakkuk": "hab",
		"zep": "zep", "zephaniah": "zep",
		"hag": "hag", "haggai": "hag",
		"zec": "zec", "zechariah": "zec",
		"mal": "mal", "malachi": "mal",

		// New Testament
		"mat": "mat", "matthew": "mat",
		"mrk": "mrk", "mark": "mrk",
		"luk": "luk", "luke": "luk",
		"jhn": "jhn", "john": "jhn",
		"act": "act", "acts": "act",
		"rom": "rom", "romans": "rom",
		"gal": "gal", "galatians": "gal",
		"eph": "eph", "ephesians": "eph",
		"php": "php", "philippians": "php",
		"col": "col", "colossians": "col",
		"tit": "tit", "titus": "tit",
		"phm": "phm", "philemon": "phm",
		"heb": "heb", "hebrews": "heb",
		"jas": "jas", "james": "jas",
		"jud": "jud", "jude": "jud",
		"rev": "rev", "revelation": "rev",
	}
}
