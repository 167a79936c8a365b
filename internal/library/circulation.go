package library

import (
	"context"

	"librarycatalog/internal/entity"
)

// BorrowBook lends an available book to a member. The book and the member
// are written back in the same document write.
func (s *Service) BorrowBook(ctx context.Context, bookID, memberID string) (entity.Book, error) {
	var lent entity.Book
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		book, member, err := lookupLoan(doc, bookID, memberID)
		if err != nil {
			return err
		}
		if !book.IsAvailable() {
			return ErrBookUnavailable
		}
		if s.borrowLimit > 0 && len(member.BorrowedBooks) >= s.borrowLimit {
			return ErrBorrowLimit
		}

		now := s.now()
		if err := book.Borrow(memberID, now); err != nil {
			return ErrBookUnavailable
		}
		member.AddBorrowed(bookID, now)

		doc.Books[bookID] = book
		doc.Members[memberID] = member
		lent = book
		return nil
	})
	if err != nil {
		return entity.Book{}, s.fail(ctx, "borrow book", err)
	}

	s.logger.InfoContext(ctx, "book borrowed", "book_id", bookID, "member_id", memberID)
	return lent, nil
}

// ReturnBook takes a book back from the member who borrowed it. A member list
// that is missing the book is repaired rather than rejected.
func (s *Service) ReturnBook(ctx context.Context, bookID, memberID string) (entity.Book, error) {
	var returned entity.Book
	err := s.store.Update(ctx, func(doc *entity.Catalog) error {
		book, member, err := lookupLoan(doc, bookID, memberID)
		if err != nil {
			return err
		}
		if !book.BorrowedByMember(memberID) {
			return ErrNotBorrower
		}

		now := s.now()
		if err := book.Return(now); err != nil {
			return ErrNotBorrower
		}
		if !member.RemoveBorrowed(bookID, now) {
			s.logger.WarnContext(ctx, "returned book was missing from member list",
				"book_id", bookID, "member_id", memberID)
		}

		doc.Books[bookID] = book
		doc.Members[memberID] = member
		returned = book
		return nil
	})
	if err != nil {
		return entity.Book{}, s.fail(ctx, "return book", err)
	}

	s.logger.InfoContext(ctx, "book returned", "book_id", bookID, "member_id", memberID)
	return returned, nil
}

func lookupLoan(doc *entity.Catalog, bookID, memberID string) (entity.Book, entity.Member, error) {
	book, ok := doc.Books[bookID]
	if !ok {
		return entity.Book{}, entity.Member{}, ErrBookNotFound
	}
	member, ok := doc.Members[memberID]
	if !ok {
		return entity.Book{}, entity.Member{}, ErrMemberNotFound
	}
	return book, member, nil
}
