package fixture

// SampleBooks returns a handful of books whose ids and names are not in
// canonical order, so listing must sort on book_reference_id.
func SampleBooks() []Book {
	return []Book{
		{ID: 1, Name: "John", Order: 43},
		{ID: 2, Name: "Genesis", Order: 1},
		{ID: 3, Name: "Psalms", Order: 19},
		{ID: 4, Name: "Exodus", Order: 2},
		{ID: 5, Name: "1 John", Order: 62},
	}
}

// SampleVerses returns verses for the sample books. Rows are deliberately
// not in chapter/verse order.
func SampleVerses() []Verse {
	return []Verse{
		{BookID: 1, Chapter: 1, Verse: 2, Text: "The same was in the beginning with God."},
		{BookID: 1, Chapter: 1, Verse: 1, Text: "In the beginning was the Word, and the Word was with God, and the Word was God."},
		{BookID: 1, Chapter: 1, Verse: 3, Text: "All things were made by him; and without him was not any thing made that was made."},
		{BookID: 1, Chapter: 1, Verse: 5, Text: "And the light shineth in darkness; and the darkness comprehended it not."},
		{BookID: 1, Chapter: 1, Verse: 4, Text: "In him was life; and the life was the light of men."},
		{BookID: 1, Chapter: 3, Verse: 16, Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
		{BookID: 1, Chapter: 2, Verse: 1, Text: "And the third day there was a marriage in Cana of Galilee; and the mother of Jesus was there:"},
		{BookID: 1, Chapter: 2, Verse: 5, Text: "His mother saith unto the servants, Whatsoever he saith unto you, do it."},
		{BookID: 1, Chapter: 4, Verse: 24, Text: "God is a Spirit: and they that worship him must worship him in spirit and in truth."},
		{BookID: 2, Chapter: 1, Verse: 1, Text: "In the beginning God created the heaven and the earth."},
		{BookID: 2, Chapter: 1, Verse: 2, Text: "And the earth was without form, and void; and darkness was upon the face of the deep."},
		{BookID: 2, Chapter: 1, Verse: 3, Text: "And God said, Let there be light: and there was light."},
		{BookID: 3, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd; I shall not want."},
		{BookID: 4, Chapter: 20, Verse: 3, Text: "Thou shalt have no other gods before me."},
		{BookID: 5, Chapter: 4, Verse: 8, Text: "He that loveth not knoweth not God; for God is love."},
	}
}

// BuildSample writes the sample store for version under dataDir and returns its path.
func BuildSample(dataDir, version string) (string, error) {
	return BuildVersion(dataDir, version, SampleBooks(), SampleVerses())
}
