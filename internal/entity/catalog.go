package entity

// Catalog is the whole persisted document: every author, book and member
// keyed by id. It is always read and written as one unit.
type Catalog struct {
	Authors map[string]Author `json:"authors"`
	Books   map[string]Book   `json:"books"`
	Members map[string]Member `json:"members"`
}

// NewCatalog returns an empty document.
func NewCatalog() *Catalog {
	return &Catalog{
		Authors: map[string]Author{},
		Books:   map[string]Book{},
		Members: map[string]Member{},
	}
}

// Normalize replaces missing collections and id lists with empty ones so a
// document decoded from older or hand-edited files is safe to mutate.
func (c *Catalog) Normalize() {
	if c.Authors == nil {
		c.Authors = map[string]Author{}
	}
	if c.Books == nil {
		c.Books = map[string]Book{}
	}
	if c.Members == nil {
		c.Members = map[string]Member{}
	}
	for id, a := range c.Authors {
		if a.Books == nil {
			a.Books = []string{}
			c.Authors[id] = a
		}
	}
	for id, m := range c.Members {
		if m.BorrowedBooks == nil {
			m.BorrowedBooks = []string{}
			c.Members[id] = m
		}
	}
}

// BooksByAuthor returns the ids of books whose author_id is authorID.
func (c *Catalog) BooksByAuthor(authorID string) []string {
	var ids []string
	for id, b := range c.Books {
		if b.AuthorID == authorID {
			ids = append(ids, id)
		}
	}
	return ids
}
