package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"librarycatalog/internal/config"
	"librarycatalog/internal/library"
	"librarycatalog/internal/store"
)

type seedAuthor struct {
	name      string
	birthYear int
	books     []seedBook
}

type seedBook struct {
	title string
	isbn  string
	pages int
	genre string
}

var sampleAuthors = []seedAuthor{
	{"Ursula K. Le Guin", 1929, []seedBook{
		{"A Wizard of Earthsea", "978-0-547-77374-2", 183, "Fantasy"},
		{"The Left Hand of Darkness", "978-0-441-47812-5", 304, "Science Fiction"},
	}},
	{"Chinua Achebe", 1930, []seedBook{
		{"Things Fall Apart", "978-0-385-47454-2", 209, "Literary Fiction"},
	}},
	{"Jorge Luis Borges", 1899, []seedBook{
		{"Ficciones", "978-0-8021-3030-5", 174, "Short Stories"},
		{"Labyrinths", "978-0-8112-1699-0", 251, "Short Stories"},
	}},
	{"Octavia E. Butler", 1947, []seedBook{
		{"Kindred", "978-0-8070-8369-7", 264, "Science Fiction"},
	}},
}

var sampleMembers = []library.MemberInput{
	{Name: "Ada Lovelace", Email: "ada@example.com", MembershipID: "MEM-001"},
	{Name: "Alan Turing", Email: "alan@example.com", MembershipID: "MEM-002", Phone: strPtr("020-7946-0000")},
	{Name: "Grace Hopper", Email: "grace@example.com", MembershipID: "MEM-003"},
}

func strPtr(s string) *string { return &s }

func main() {
	force := flag.Bool("force", false, "Seed even when the catalog already has authors")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	catalog, closeStore, err := store.Open(ctx, store.Options{
		Driver:      cfg.StorageDriver,
		CatalogFile: cfg.CatalogFile,
		DatabaseDSN: cfg.DatabaseDSN,
	})
	if err != nil {
		logger.Error("cannot open catalog storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	svc := library.NewService(catalog, library.WithLogger(logger))
	counts, err := seed(ctx, svc, *force)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		closeStore()
		os.Exit(1)
	}
	logger.Info("seed complete", "authors", counts.authors, "books", counts.books, "members", counts.members)
}

type seedCounts struct {
	authors, books, members int
}

// seed is a no-op on a catalog that already has authors unless force is set.
func seed(ctx context.Context, svc *library.Service, force bool) (seedCounts, error) {
	var counts seedCounts

	existing, err := svc.ListAuthors(ctx)
	if err != nil {
		return counts, err
	}
	if len(existing) > 0 && !force {
		return counts, nil
	}

	for _, a := range sampleAuthors {
		birthYear := a.birthYear
		author, err := svc.CreateAuthor(ctx, library.AuthorInput{Name: a.name, BirthYear: &birthYear})
		if err != nil {
			return counts, fmt.Errorf("author %q: %w", a.name, err)
		}
		counts.authors++

		for _, b := range a.books {
			genre := b.genre
			_, err := svc.CreateBook(ctx, library.BookInput{
				Title:    b.title,
				AuthorID: author.ID,
				ISBN:     b.isbn,
				Pages:    b.pages,
				Genre:    &genre,
			})
			if err != nil {
				return counts, fmt.Errorf("book %q: %w", b.title, err)
			}
			counts.books++
		}
	}

	for _, m := range sampleMembers {
		if _, err := svc.CreateMember(ctx, m); err != nil {
			return counts, fmt.Errorf("member %q: %w", m.Name, err)
		}
		counts.members++
	}
	return counts, nil
}
