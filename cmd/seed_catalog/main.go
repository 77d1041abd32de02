// Command seed_catalog populates a catalog database with sample
// authors, genres, books, and copies.
// Usage: go run cmd/seed_catalog/main.go [-db path/to/catalog.db]
package main

import (
	"flag"
	"log"
	"time"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/authors"
	"github.com/openshelf/catalog/internal/database/books"
	"github.com/openshelf/catalog/internal/database/genres"
	"github.com/openshelf/catalog/internal/database/instances"
	"github.com/openshelf/catalog/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	log.Printf("Seeding catalog database at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	authorRepo := authors.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	instanceRepo := instances.NewRepository(db.DB)

	genresByName := seedGenres(genreRepo)
	authorList := seedAuthors(authorRepo)
	bookList := seedBooks(bookRepo, authorList, genresByName)
	seedInstances(instanceRepo, bookList)

	log.Println("Catalog database seeded successfully!")
}

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedGenres(repo *genres.Repository) map[string]entities.Genre {
	names := []string{"Fantasy", "Science Fiction", "French Poetry"}

	out := make(map[string]entities.Genre, len(names))
	for _, name := range names {
		genre := entities.Genre{Name: name}
		if err := repo.Create(&genre); err != nil {
			log.Printf("Failed to create genre %s: %v", name, err)
			continue
		}
		out[name] = genre
	}
	return out
}

func seedAuthors(repo *authors.Repository) []entities.Author {
	seed := []entities.Author{
		{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: date(1973, 6, 6)},
		{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: date(1932, 11, 8)},
		{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: date(1920, 1, 2), DateOfDeath: date(1992, 4, 6)},
		{FirstName: "Bob", FamilyName: "Billings"},
		{FirstName: "Jim", FamilyName: "Jones", DateOfBirth: date(1971, 12, 16)},
	}

	out := make([]entities.Author, 0, len(seed))
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			log.Printf("Failed to create author %s: %v", seed[i].FamilyName, err)
			continue
		}
		out = append(out, seed[i])
	}
	return out
}

func seedBooks(repo *books.Repository, authorList []entities.Author, genresByName map[string]entities.Genre) []entities.Book {
	if len(authorList) < 5 {
		log.Fatal("Not enough authors to seed books")
	}

	pick := func(names ...string) []entities.Genre {
		out := make([]entities.Genre, 0, len(names))
		for _, n := range names {
			if g, ok := genresByName[n]; ok {
				out = append(out, g)
			}
		}
		return out
	}

	seed := []entities.Book{
		{
			Title:    "The Name of the Wind (The Kingkiller Chronicle, #1)",
			Summary:  "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life. I was expelled from the University at a younger age than most people are allowed in. I tread paths by moonlight that others fear to speak of during day. I have talked to Gods, loved women, and written songs that make the minstrels weep.",
			ISBN:     "9781473211896",
			AuthorID: authorList[0].ID,
			Genres:   pick("Fantasy"),
		},
		{
			Title:    "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
			Summary:  "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
			ISBN:     "9788401352836",
			AuthorID: authorList[0].ID,
			Genres:   pick("Fantasy"),
		},
		{
			Title:    "The Slow Regard of Silent Things (Kingkiller Chronicle)",
			Summary:  "Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms. A young woman lives there, tucked among the sprawling tunnels of the Underthing, snug in the heart of this forgotten place.",
			ISBN:     "9780756411336",
			AuthorID: authorList[0].ID,
			Genres:   pick("Fantasy"),
		},
		{
			Title:    "Apes and Angels",
			Summary:  "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
			ISBN:     "9780765379528",
			AuthorID: authorList[1].ID,
			Genres:   pick("Science Fiction"),
		},
		{
			Title:    "Death Wave",
			Summary:  "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system. They discovered the ruins of an ancient alien civilization. But one alien AI survived, and it revealed to Jordan Kell that an explosion in the black hole at the heart of the Milky Way galaxy has created a wave of deadly radiation, expanding out from the core toward Earth. Unless the human race acts to save itself, all life on Earth will be wiped out.",
			ISBN:     "9780765379504",
			AuthorID: authorList[1].ID,
			Genres:   pick("Science Fiction"),
		},
		{
			Title:    "Test Book 1",
			Summary:  "Summary of test book 1",
			ISBN:     "ISBN111111",
			AuthorID: authorList[4].ID,
			Genres:   pick("Fantasy", "Science Fiction"),
		},
		{
			Title:    "Test Book 2",
			Summary:  "Summary of test book 2",
			ISBN:     "ISBN222222",
			AuthorID: authorList[4].ID,
		},
	}

	out := make([]entities.Book, 0, len(seed))
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			log.Printf("Failed to create book %s: %v", seed[i].Title, err)
			continue
		}
		log.Printf("Saved: %s", seed[i].Title)
		out = append(out, seed[i])
	}
	return out
}

func seedInstances(repo *instances.Repository, bookList []entities.Book) {
	if len(bookList) < 4 {
		log.Fatal("Not enough books to seed instances")
	}

	seed := []entities.BookInstance{
		{BookID: bookList[0].ID, Imprint: "London Gollancz, 2014.", Status: entities.StatusAvailable},
		{BookID: bookList[1].ID, Imprint: "Gollancz, 2011.", Status: entities.StatusLoaned, DueBack: time.Now().AddDate(0, 0, 14)},
		{BookID: bookList[2].ID, Imprint: "Gollancz, 2015.", Status: entities.StatusMaintenance},
		{BookID: bookList[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusAvailable},
		{BookID: bookList[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusAvailable},
		{BookID: bookList[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusReserved},
	}

	for i := range seed {
		if seed[i].DueBack.IsZero() {
			seed[i].DueBack = time.Now()
		}
		if err := repo.Create(&seed[i]); err != nil {
			log.Printf("Failed to create instance of book %d: %v", seed[i].BookID, err)
		}
	}
	log.Printf("Created %d book instances", len(seed))
}
