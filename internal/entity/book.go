package entity

import (
	"strings"
	"time"

	"librarycatalog/internal/validation"
)

// BookStatus is the circulation state of a book.
type BookStatus string

const (
	StatusAvailable   BookStatus = "available"
	StatusBorrowed    BookStatus = "borrowed"
	StatusReserved    BookStatus = "reserved"
	StatusMaintenance BookStatus = "maintenance"
)

// Book is a catalog title owned by exactly one author. BorrowedBy and
// BorrowedAt are set if and only if Status is StatusBorrowed.
type Book struct {
	ID         string     `json:"id"`
	Title      string     `json:"title" validate:"notblank,max=200"`
	AuthorID   string     `json:"author_id" validate:"required"`
	ISBN       string     `json:"isbn" validate:"required,min=10,max=17"`
	Pages      int        `json:"pages" validate:"gte=0"`
	Genre      *string    `json:"genre" validate:"omitempty,max=50"`
	Status     BookStatus `json:"status" validate:"oneof=available borrowed reserved maintenance"`
	BorrowedBy *string    `json:"borrowed_by"`
	BorrowedAt *Timestamp `json:"borrowed_date"`
	CreatedAt  Timestamp  `json:"created_at"`
	UpdatedAt  Timestamp  `json:"updated_at"`
}

// NewBook builds an available book. It does not validate.
func NewBook(id, title, authorID, isbn string, pages int, genre *string, now time.Time) Book {
	return Book{
		ID:        id,
		Title:     strings.TrimSpace(title),
		AuthorID:  authorID,
		ISBN:      strings.TrimSpace(isbn),
		Pages:     pages,
		Genre:     optionalText(genre),
		Status:    StatusAvailable,
		CreatedAt: At(now),
		UpdatedAt: At(now),
	}
}

func (b Book) Key() string { return b.ID }
func (b Book) Label() string { return b.Title }
func (b Book) Created() time.Time { return b.CreatedAt.Time }

func (b Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}

// BorrowedByMember reports whether the book is on loan to memberID.
func (b Book) BorrowedByMember(memberID string) bool {
	return b.Status == StatusBorrowed && b.BorrowedBy != nil && *b.BorrowedBy == memberID
}

// Borrow puts the book on loan to memberID.
func (b *Book) Borrow(memberID string, now time.Time) error {
	if !b.IsAvailable() {
		return ErrNotAvailable
	}
	at := At(now)
	b.Status = StatusBorrowed
	b.BorrowedBy = &memberID
	b.BorrowedAt = &at
	b.UpdatedAt = At(now)
	return nil
}

// Return makes a borrowed book available again.
func (b *Book) Return(now time.Time) error {
	if b.Status != StatusBorrowed {
		return ErrNotBorrowed
	}
	b.Status = StatusAvailable
	b.BorrowedBy = nil
	b.BorrowedAt = nil
	b.UpdatedAt = At(now)
	return nil
}

// ValidateBook checks the field rules of a single book, including the
// borrower-iff-borrowed invariant.
func ValidateBook(b Book) []validation.FieldError {
	errs := validation.Struct(b)
	onLoan := b.Status == StatusBorrowed
	if onLoan != (b.BorrowedBy != nil) || onLoan != (b.BorrowedAt != nil) {
		errs = append(errs, validation.FieldError{
			Field:   "borrowed_by",
			Message: "borrowed_by and borrowed_date must be set only while the book is borrowed",
		})
	}
	return errs
}

// BookPatch carries the fields of a partial book update. An empty genre
// clears it.
type BookPatch struct {
	Title  *string     `json:"title"`
	ISBN   *string     `json:"isbn"`
	Pages  *int        `json:"pages"`
	Genre  *string     `json:"genre"`
	Status *BookStatus `json:"status"`
}

// Apply returns a copy of b with the patch applied. Status changes that touch
// StatusBorrowed fail with ErrStatusLocked.
func (p BookPatch) Apply(b Book, now time.Time) (Book, error) {
	if p.Status != nil && *p.Status != b.Status {
		if *p.Status == StatusBorrowed || b.Status == StatusBorrowed {
			return Book{}, ErrStatusLocked
		}
		b.Status = *p.Status
	}
	if p.Title != nil {
		b.Title = strings.TrimSpace(*p.Title)
	}
	if p.ISBN != nil {
		b.ISBN = strings.TrimSpace(*p.ISBN)
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Genre != nil {
		b.Genre = optionalText(p.Genre)
	}
	b.UpdatedAt = At(now)
	return b, nil
}
