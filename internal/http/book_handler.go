package http

import (
	"log/slog"
	"net/http"
	"strings"

	"librarycatalog/internal/entity"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
)

type BookHandler struct {
	svc    *library.Service
	logger *slog.Logger
}

func NewBookHandler(svc *library.Service, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, logger: logger}
}

type createBookRequest struct {
	Title    string  `json:"title"`
	AuthorID string  `json:"author_id"`
	ISBN     string  `json:"isbn"`
	Pages    int     `json:"pages"`
	Genre    *string `json:"genre"`
}

type loanRequest struct {
	MemberID string `json:"member_id"`
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body createBookRequest true "Book data"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if !decodeBody(w, r, &req) {
		return
	}

	book, err := h.svc.CreateBook(r.Context(), library.BookInput{
		Title:    req.Title,
		AuthorID: strings.TrimSpace(req.AuthorID),
		ISBN:     req.ISBN,
		Pages:    req.Pages,
		Genre:    req.Genre,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, book)
}

// @Summary List books
// @Tags books
// @Produce json
// @Param limit query int false "Page size, at most 100"
// @Param cursor query string false "next_cursor from the previous page"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writePage(w, r, books)
}

// @Summary Search books
// @Description Case-insensitive match on title, author name or genre
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	books, err := h.svc.SearchBooks(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]interface{}{
		"total": len(books),
		"query": strings.TrimSpace(query),
	})
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, book, nil)
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body entity.BookPatch true "Fields to change"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.BookPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, book, nil)
}

// @Summary Borrow book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param loan body loanRequest true "Borrowing member"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books/{id}/borrow [post]
func (h *BookHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.readLoan(w, r)
	if !ok {
		return
	}

	book, err := h.svc.BorrowBook(r.Context(), r.PathValue("id"), memberID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, book, map[string]interface{}{"message": "Book borrowed successfully"})
}

// @Summary Return book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param loan body loanRequest true "Returning member"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books/{id}/return [post]
func (h *BookHandler) Return(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.readLoan(w, r)
	if !ok {
		return
	}

	book, err := h.svc.ReturnBook(r.Context(), r.PathValue("id"), memberID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, book, map[string]interface{}{"message": "Book returned successfully"})
}

func (h *BookHandler) readLoan(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req loanRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	memberID := strings.TrimSpace(req.MemberID)
	if memberID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "member_id", Message: "member_id is required"},
		})
		return "", false
	}
	return memberID, true
}
