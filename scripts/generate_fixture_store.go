//go:build ignore

// Generates a large synthetic bible store for manual checks:
//
//	go run scripts/generate_fixture_store.go -books 66 -chapters 50 -verses 40 -output bibles/BIG.sqlite
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/lectio/lectio-go/internal/fixture"
)

var words = []string{
	"and", "the", "LORD", "said", "unto", "him", "in", "that", "day",
	"light", "earth", "heaven", "spirit", "word", "was", "with", "God",
}

func main() {
	var (
		books    = flag.Int("books", 66, "Number of books")
		chapters = flag.Int("chapters", 50, "Chapters per book")
		verses   = flag.Int("verses", 40, "Verses per chapter")
		output   = flag.String("output", "BIG.sqlite", "Output store path")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	start := time.Now()

	bookRows := make([]fixture.Book, *books)
	for i := range bookRows {
		bookRows[i] = fixture.Book{ID: int64(i + 1), Name: fmt.Sprintf("Book %d", i+1), Order: i + 1}
	}

	verseRows := make([]fixture.Verse, 0, (*books)*(*chapters)*(*verses))
	for _, b := range bookRows {
		for c := 1; c <= *chapters; c++ {
			for v := 1; v <= *verses; v++ {
				verseRows = append(verseRows, fixture.Verse{BookID: b.ID, Chapter: c, Verse: v, Text: sentence(rng)})
			}
		}
	}

	if err := fixture.Build(*output, bookRows, verseRows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d books, %d verses to %s in %v\n", len(bookRows), len(verseRows), *output, time.Since(start).Round(time.Millisecond))
}

func sentence(rng *rand.Rand) string {
	n := 6 + rng.Intn(12)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(parts, " ") + "."
}
