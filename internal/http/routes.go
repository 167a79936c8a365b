package http

import (
	"log/slog"
	"net/http"

	"librarycatalog/internal/library"
)

const apiPrefix = "/api/v1"

// RegisterRoutes mounts every catalog endpoint on mux.
func RegisterRoutes(mux *http.ServeMux, svc *library.Service, logger *slog.Logger) {
	authors := NewAuthorHandler(svc, logger)
	books := NewBookHandler(svc, logger)
	members := NewMemberHandler(svc, logger)
	meta := NewMetaHandler(svc, logger)

	mux.HandleFunc("GET /{$}", meta.Root)
	mux.HandleFunc("GET /health", meta.Health)
	mux.HandleFunc("GET /readyz", meta.Ready)

	mux.HandleFunc("POST "+apiPrefix+"/authors", authors.Create)
	mux.HandleFunc("GET "+apiPrefix+"/authors", authors.List)
	mux.HandleFunc("GET "+apiPrefix+"/authors/{id}", authors.Get)
	mux.HandleFunc("PUT "+apiPrefix+"/authors/{id}", authors.Update)
	mux.HandleFunc("DELETE "+apiPrefix+"/authors/{id}", authors.Delete)

	mux.HandleFunc("POST "+apiPrefix+"/books", books.Create)
	mux.HandleFunc("GET "+apiPrefix+"/books", books.List)
	mux.HandleFunc("GET "+apiPrefix+"/books/search", books.Search)
	mux.HandleFunc("GET "+apiPrefix+"/books/{id}", books.Get)
	mux.HandleFunc("PUT "+apiPrefix+"/books/{id}", books.Update)
	mux.HandleFunc("POST "+apiPrefix+"/books/{id}/borrow", books.Borrow)
	mux.HandleFunc("POST "+apiPrefix+"/books/{id}/return", books.Return)

	mux.HandleFunc("POST "+apiPrefix+"/members", members.Create)
	mux.HandleFunc("GET "+apiPrefix+"/members", members.List)
	mux.HandleFunc("GET "+apiPrefix+"/members/{id}", members.Get)
	mux.HandleFunc("PUT "+apiPrefix+"/members/{id}", members.Update)
	mux.HandleFunc("DELETE "+apiPrefix+"/members/{id}", members.Delete)
	mux.HandleFunc("GET "+apiPrefix+"/members/{id}/borrowed-books", members.BorrowedBooks)
}
