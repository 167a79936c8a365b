package library

import (
	"context"

	"librarycatalog/internal/entity"
)

// AuthorInput holds the fields accepted when creating an author.
type AuthorInput struct {
	Name      string
	Biography *string
	BirthYear *int
}

func (s *Service) CreateAuthor(ctx context.Context, in AuthorInput) (entity.Author, error) {
	author := entity.NewAuthor(s.newID(), in.Name, in.Biography, in.BirthYear, s.now())
	if errs := entity.ValidateAuthor(author); len(errs) > 0 {
		return entity.Author{}, newValidationError(errs...)
	}

	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		doc.Authors[author.ID] = author
		return nil
	})
	if err != nil {
		return entity.Author{}, s.fail(ctx, "create author", err)
	}

	s.logger.DebugContext(ctx, "author created", "author_id", author.ID)
	return author, nil
}

func (s *Service) GetAuthor(ctx context.Context, id string) (entity.Author, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return entity.Author{}, s.fail(ctx, "get author", err)
	}
	author, ok := doc.Authors[id]
	if !ok {
		return entity.Author{}, ErrAuthorNotFound
	}
	return author, nil
}

// ListAuthors returns every author, oldest first.
func (s *Service) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list authors", err)
	}
	return entity.Sorted(doc.Authors), nil
}

// UpdateAuthor applies the provided fields and re-validates the author.
func (s *Service) UpdateAuthor(ctx context.Context, id string, patch entity.AuthorPatch) (entity.Author, error) {
	var updated entity.Author
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		author, ok := doc.Authors[id]
		if !ok {
			return ErrAuthorNotFound
		}
		updated = patch.Apply(author, s.now())
		if errs := entity.ValidateAuthor(updated); len(errs) > 0 {
			return newValidationError(errs...)
		}
		doc.Authors[id] = updated
		return nil
	})
	if err != nil {
		return entity.Author{}, s.fail(ctx, "update author", err)
	}

	s.logger.DebugContext(ctx, "author updated", "author_id", id)
	return updated, nil
}

// DeleteAuthor removes an author that no book references.
func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		if _, ok := doc.Authors[id]; !ok {
			return ErrAuthorNotFound
		}
		if len(doc.BooksByAuthor(id)) > 0 {
			return ErrAuthorHasBooks
		}
		delete(doc.Authors, id)
		return nil
	})
	if err != nil {
		return s.fail(ctx, "delete author", err)
	}

	s.logger.DebugContext(ctx, "author deleted", "author_id", id)
	return nil
}
