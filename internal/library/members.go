package library

import (
	"context"

	"librarycatalog/internal/entity"
)

type MemberInput struct {
	Name         string
	Email        string
	MembershipID string
	Phone        *string
}

func (s *Service) CreateMember(ctx context.Context, in MemberInput) (entity.Member, error) {
	member := entity.NewMember(s.newID(), in.Name, in.Email, in.MembershipID, in.Phone, s.now())
	if errs := entity.ValidateMember(member); len(errs) > 0 {
		return entity.Member{}, newValidationError(errs...)
	}

	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		doc.Members[member.ID] = member
		return nil
	})
	if err != nil {
		return entity.Member{}, s.fail(ctx, "create member", err)
	}

	s.logger.DebugContext(ctx, "member created", "member_id", member.ID)
	return member, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (entity.Member, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return entity.Member{}, s.fail(ctx, "get member", err)
	}
	member, ok := doc.Members[id]
	if !ok {
		return entity.Member{}, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]entity.Member, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list members", err)
	}
	return entity.Sorted(doc.Members), nil
}

func (s *Service) UpdateMember(ctx context.Context, id string, patch entity.MemberPatch) (entity.Member, error) {
	var updated entity.Member
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		member, ok := doc.Members[id]
		if !ok {
			return ErrMemberNotFound
		}
		updated = patch.Apply(member, s.now())
		if errs := entity.ValidateMember(updated); len(errs) > 0 {
			return newValidationError(errs...)
		}
		doc.Members[id] = updated
		return nil
	})
	if err != nil {
		return entity.Member{}, s.fail(ctx, "update member", err)
	}

	s.logger.DebugContext(ctx, "member updated", "member_id", id)
	return updated, nil
}

// DeleteMember removes a member who holds no books.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		member, ok := doc.Members[id]
		if !ok {
			return ErrMemberNotFound
		}
		if len(member.BorrowedBooks) > 0 || holdsAnyBook(doc, id) {
			return ErrMemberHasBooks
		}
		delete(doc.Members, id)
		return nil
	})
	if err != nil {
		return s.fail(ctx, "delete member", err)
	}

	s.logger.DebugContext(ctx, "member deleted", "member_id", id)
	return nil
}

func holdsAnyBook(doc *entity.Catalog, memberID string) bool {
	for _, b := range doc.Books {
		if b.BorrowedByMember(memberID) {
			return true
		}
	}
	return false
}

// MemberBorrowedBooks resolves the member's borrowed list to books, in list
// order. Ids that no longer resolve are skipped.
func (s *Service) MemberBorrowedBooks(ctx context.Context, id string) ([]entity.Book, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "member borrowed books", err)
	}
	member, ok := doc.Members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}

	books := make([]entity.Book, 0, len(member.BorrowedBooks))
	for _, bookID := range member.BorrowedBooks {
		if b, ok := doc.Books[bookID]; ok {
			books = append(books, b)
		}
	}
	return books, nil
}
