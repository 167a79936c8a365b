package entity

import (
	"strings"
	"time"

	"librarycatalog/internal/validation"
)

// Author is a writer owning an ordered list of book ids.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"notblank,max=100"`
	Biography *string   `json:"biography" validate:"omitempty,max=1000"`
	BirthYear *int      `json:"birth_year" validate:"omitempty,gte=1800,lte=2024"`
	Books     []string  `json:"books"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// NewAuthor builds a normalised author. It does not validate.
func NewAuthor(id, name string, biography *string, birthYear *int, now time.Time) Author {
	return Author{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Biography: optionalText(biography),
		BirthYear: birthYear,
		Books:     []string{},
		CreatedAt: At(now),
		UpdatedAt: At(now),
	}
}

func (a Author) Key() string { return a.ID }
func (a Author) Label() string { return a.Name }
func (a Author) Created() time.Time { return a.CreatedAt.Time }

// AddBook appends bookID unless the author already lists it.
func (a *Author) AddBook(bookID string) {
	a.Books = appendUnique(a.Books, bookID)
}

// RemoveBook drops bookID from the author's list.
func (a *Author) RemoveBook(bookID string) {
	a.Books, _ = without(a.Books, bookID)
}

// ValidateAuthor checks the field rules of a single author.
func ValidateAuthor(a Author) []validation.FieldError {
	return validation.Struct(a)
}

// AuthorPatch carries the fields of a partial author update. Nil fields are
// left untouched; an empty biography clears it.
type AuthorPatch struct {
	Name      *string `json:"name"`
	Biography *string `json:"biography"`
	BirthYear *int    `json:"birth_year"`
}

// Apply returns a copy of a with the patch applied.
func (p AuthorPatch) Apply(a Author, now time.Time) Author {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Biography != nil {
		a.Biography = optionalText(p.Biography)
	}
	if p.BirthYear != nil {
		year := *p.BirthYear
		a.BirthYear = &year
	}
	a.UpdatedAt = At(now)
	return a
}
