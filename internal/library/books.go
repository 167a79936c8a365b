package library

import (
	"context"
	"errors"
	"strings"

	"librarycatalog/internal/entity"
	"librarycatalog/internal/validation"
)

// BookInput holds the fields accepted when creating a book.
type BookInput struct {
	Title    string
	AuthorID string
	ISBN     string
	Pages    int
	Genre    *string
}

// CreateBook adds an available book and appends it to its author's list in
// the same write. An unknown author is reported as a validation error.
func (s *Service) CreateBook(ctx context.Context, in BookInput) (entity.Book, error) {
	book := entity.NewBook(s.newID(), in.Title, in.AuthorID, in.ISBN, in.Pages, in.Genre, s.now())

	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		errs := entity.ValidateBook(book)
		author, ok := doc.Authors[book.AuthorID]
		if !ok && book.AuthorID != "" {
			errs = append(errs, validation.FieldError{Field: "author_id", Message: "author not found"})
		}
		if len(errs) > 0 {
			return newValidationError(errs...)
		}

		doc.Books[book.ID] = book
		author.AddBook(book.ID)
		author.UpdatedAt = book.CreatedAt
		doc.Authors[author.ID] = author
		return nil
	})
	if err != nil {
		return entity.Book{}, s.fail(ctx, "create book", err)
	}

	s.logger.DebugContext(ctx, "book created", "book_id", book.ID, "author_id", book.AuthorID)
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (entity.Book, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return entity.Book{}, s.fail(ctx, "get book", err)
	}
	book, ok := doc.Books[id]
	if !ok {
		return entity.Book{}, ErrBookNotFound
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]entity.Book, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list books", err)
	}
	return entity.Sorted(doc.Books), nil
}

// SearchBooks returns books whose title, author name or genre contains query,
// ignoring case. Each book appears at most once.
func (s *Service) SearchBooks(ctx context.Context, query string) ([]entity.Book, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, newValidationError(validation.FieldError{Field: "q", Message: "q is required"})
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "search books", err)
	}

	results := []entity.Book{}
	for _, book := range entity.Sorted(doc.Books) {
		if matches(doc, book, needle) {
			results = append(results, book)
		}
	}
	return results, nil
}

func matches(doc *entity.Catalog, book entity.Book, needle string) bool {
	if strings.Contains(strings.ToLower(book.Title), needle) {
		return true
	}
	if author, ok := doc.Authors[book.AuthorID]; ok && strings.Contains(strings.ToLower(author.Name), needle) {
		return true
	}
	return book.Genre != nil && strings.Contains(strings.ToLower(*book.Genre), needle)
}

// UpdateBook applies the provided fields and re-validates the book.
func (s *Service) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	var updated entity.Book
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		book, ok := doc.Books[id]
		if !ok {
			return ErrBookNotFound
		}
		var err error
		updated, err = patch.Apply(book, s.now())
		if errors.Is(err, entity.ErrStatusLocked) {
			return ErrStatusLocked
		}
		if err != nil {
			return err
		}
		if errs := entity.ValidateBook(updated); len(errs) > 0 {
			return newValidationError(errs...)
		}
		doc.Books[id] = updated
		return nil
	})
	if err != nil {
		return entity.Book{}, s.fail(ctx, "update book", err)
	}

	s.logger.DebugContext(ctx, "book updated", "book_id", id)
	return updated, nil
}
