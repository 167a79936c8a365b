package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func TestNewAuthor_Normalises(t *testing.T) {
	a := NewAuthor("a1", "  Le Guin  ", strPtr("   "), intPtr(1929), t0)

	assert.Equal(t, "Le Guin", a.Name)
	assert.Nil(t, a.Biography)
	assert.Equal(t, []string{}, a.Books)
	assert.Equal(t, t0, a.CreatedAt.Time)
	assert.Empty(t, ValidateAuthor(a))
}

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		field  string
	}{
		{"empty name", NewAuthor("a1", "", nil, nil, t0), "name"},
		{"blank name", NewAuthor("a1", "   ", nil, nil, t0), "name"},
		{"birth year too early", NewAuthor("a1", "X", nil, intPtr(1799), t0), "birth_year"},
		{"birth year too late", NewAuthor("a1", "X", nil, intPtr(2025), t0), "birth_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAuthor(tt.author)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestAuthor_AddBookNoDuplicates(t *testing.T) {
	a := NewAuthor("a1", "X", nil, nil, t0)
	a.AddBook("b1")
	a.AddBook("b2")
	a.AddBook("b1")

	assert.Equal(t, []string{"b1", "b2"}, a.Books)

	a.RemoveBook("b1")
	assert.Equal(t, []string{"b2"}, a.Books)
}

func TestAuthorPatch_Apply(t *testing.T) {
	a := NewAuthor("a1", "Old", strPtr("bio"), intPtr(1900), t0)

	patched := AuthorPatch{Name: strPtr(" New "), Biography: strPtr("")}.Apply(a, t1)

	assert.Equal(t, "New", patched.Name)
	assert.Nil(t, patched.Biography)
	assert.Equal(t, 1900, *patched.BirthYear)
	assert.Equal(t, t1, patched.UpdatedAt.Time)
	assert.Equal(t, "Old", a.Name, "original must be untouched")
}

func TestBook_BorrowAndReturn(t *testing.T) {
	b := NewBook("b1", "Earthsea", "a1", "9780547773742", 264, nil, t0)
	require.Empty(t, ValidateBook(b))

	require.NoError(t, b.Borrow("m1", t1))
	assert.Equal(t, StatusBorrowed, b.Status)
	assert.Equal(t, "m1", *b.BorrowedBy)
	assert.Equal(t, t1, b.BorrowedAt.Time)
	assert.True(t, b.BorrowedByMember("m1"))
	assert.False(t, b.BorrowedByMember("m2"))
	assert.Empty(t, ValidateBook(b))

	assert.ErrorIs(t, b.Borrow("m2", t1), ErrNotAvailable)

	require.NoError(t, b.Return(t1))
	assert.Equal(t, StatusAvailable, b.Status)
	assert.Nil(t, b.BorrowedBy)
	assert.Nil(t, b.BorrowedAt)
	assert.ErrorIs(t, b.Return(t1), ErrNotBorrowed)
}

func TestBook_BorrowRequiresAvailable(t *testing.T) {
	b := NewBook("b1", "Earthsea", "a1", "9780547773742", 264, nil, t0)
	b.Status = StatusMaintenance

	assert.ErrorIs(t, b.Borrow("m1", t1), ErrNotAvailable)
	assert.Nil(t, b.BorrowedBy)
}

func TestValidateBook(t *testing.T) {
	valid := NewBook("b1", "Earthsea", "a1", "9780547773742", 264, strPtr("Fantasy"), t0)

	tests := []struct {
		name   string
		mutate func(b *Book)
		field  string
	}{
		{"short isbn", func(b *Book) { b.ISBN = "123456789" }, "isbn"},
		{"negative pages", func(b *Book) { b.Pages = -1 }, "pages"},
		{"blank title", func(b *Book) { b.Title = " " }, "title"},
		{"unknown status", func(b *Book) { b.Status = "lost" }, "status"},
		{"borrower without loan", func(b *Book) { b.BorrowedBy = strPtr("m1") }, "borrowed_by"},
		{"loan without borrower", func(b *Book) { b.Status = StatusBorrowed }, "borrowed_by"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			errs := ValidateBook(b)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestBookPatch_Apply(t *testing.T) {
	b := NewBook("b1", "Earthsea", "a1", "9780547773742", 264, strPtr("Fantasy"), t0)

	t.Run("fields", func(t *testing.T) {
		got, err := BookPatch{Pages: intPtr(300), Genre: strPtr("")}.Apply(b, t1)
		require.NoError(t, err)
		assert.Equal(t, 300, got.Pages)
		assert.Nil(t, got.Genre)
		assert.Equal(t, "Earthsea", got.Title)
	})

	t.Run("status to maintenance", func(t *testing.T) {
		s := StatusMaintenance
		got, err := BookPatch{Status: &s}.Apply(b, t1)
		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, got.Status)
	})

	t.Run("status to borrowed is locked", func(t *testing.T) {
		s := StatusBorrowed
		_, err := BookPatch{Status: &s}.Apply(b, t1)
		assert.ErrorIs(t, err, ErrStatusLocked)
	})

	t.Run("borrowed book status is locked", func(t *testing.T) {
		onLoan := b
		require.NoError(t, onLoan.Borrow("m1", t1))
		s := StatusAvailable
		_, err := BookPatch{Status: &s}.Apply(onLoan, t1)
		assert.ErrorIs(t, err, ErrStatusLocked)
	})
}

func TestMember_BorrowedList(t *testing.T) {
	m := NewMember("m1", " Ged ", " ged@roke.example ", " ROKE-1 ", strPtr(""), t0)
	assert.Equal(t, "Ged", m.Name)
	assert.Equal(t, "ged@roke.example", m.Email)
	assert.Nil(t, m.Phone)
	assert.Empty(t, ValidateMember(m))

	m.AddBorrowed("b1", t1)
	m.AddBorrowed("b1", t1)
	assert.Equal(t, []string{"b1"}, m.BorrowedBooks)
	assert.True(t, m.HasBorrowed("b1"))

	assert.True(t, m.RemoveBorrowed("b1", t1))
	assert.False(t, m.RemoveBorrowed("b1", t1))
	assert.Empty(t, m.BorrowedBooks)
}

func TestValidateMember_Email(t *testing.T) {
	m := NewMember("m1", "Ged", "not-an-email", "ROKE-1", nil, t0)
	errs := ValidateMember(m)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestSorted_ByCreationThenID(t *testing.T) {
	authors := map[string]Author{
		"c": NewAuthor("c", "C", nil, nil, t0),
		"a": NewAuthor("a", "A", nil, nil, t1),
		"b": NewAuthor("b", "B", nil, nil, t0),
	}

	var ids []string
	for _, a := range Sorted(authors) {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestCatalog_Normalize(t *testing.T) {
	c := &Catalog{
		Authors: map[string]Author{"a1": {ID: "a1", Name: "X"}},
	}
	c.Normalize()

	assert.NotNil(t, c.Books)
	assert.NotNil(t, c.Members)
	assert.Equal(t, []string{}, c.Authors["a1"].Books)
}

func TestValidateMember_MembershipID(t *testing.T) {
	for _, id := range []string{"", "  ", "R1"} {
		m := NewMember("m1", "Ged", "ged@roke.example", id, nil, t0)
		errs := ValidateMember(m)
		require.Len(t, errs, 1, "membership id %q", id)
		assert.Equal(t, "membership_id", errs[0].Field)
	}
}
