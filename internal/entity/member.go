package entity

import (
	"slices"
	"strings"
	"time"

	"librarycatalog/internal/validation"
)

// Member is a library patron and the books currently on loan to them.
type Member struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"notblank,max=100"`
	Email         string    `json:"email" validate:"required,simple_email"`
	MembershipID  string    `json:"membership_id" validate:"notblank,min=3"`
	Phone         *string   `json:"phone" validate:"omitempty,min=7,max=15"`
	BorrowedBooks []string  `json:"borrowed_books"`
	CreatedAt     Timestamp `json:"created_at"`
	UpdatedAt     Timestamp `json:"updated_at"`
}

// NewMember builds a normalised member. The membership id is fixed at
// registration; MemberPatch cannot change it.
func NewMember(id, name, email, membershipID string, phone *string, now time.Time) Member {
	return Member{
		ID:            id,
		Name:          strings.TrimSpace(name),
		Email:         strings.TrimSpace(email),
		MembershipID:  strings.TrimSpace(membershipID),
		Phone:         optionalText(phone),
		BorrowedBooks: []string{},
		CreatedAt:     At(now),
		UpdatedAt:     At(now),
	}
}

func (m Member) Key() string { return m.ID }
func (m Member) Label() string { return m.Name }
func (m Member) Created() time.Time { return m.CreatedAt.Time }

// HasBorrowed reports whether bookID is on the member's list.
func (m Member) HasBorrowed(bookID string) bool {
	return slices.Contains(m.BorrowedBooks, bookID)
}

func (m *Member) AddBorrowed(bookID string, now time.Time) {
	m.BorrowedBooks = appendUnique(m.BorrowedBooks, bookID)
	m.UpdatedAt = At(now)
}

// RemoveBorrowed drops bookID and reports whether it was listed.
func (m *Member) RemoveBorrowed(bookID string, now time.Time) bool {
	var removed bool
	m.BorrowedBooks, removed = without(m.BorrowedBooks, bookID)
	m.UpdatedAt = At(now)
	return removed
}

func ValidateMember(m Member) []validation.FieldError {
	return validation.Struct(m)
}

// MemberPatch carries the fields of a partial member update. An empty phone
// clears it.
type MemberPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (p MemberPatch) Apply(m Member, now time.Time) Member {
	if p.Name != nil {
		m.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		m.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		m.Phone = optionalText(p.Phone)
	}
	m.UpdatedAt = At(now)
	return m
}
