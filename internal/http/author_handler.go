package http

import (
	"log/slog"
	"net/http"

	"librarycatalog/internal/entity"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
)

type AuthorHandler struct {
	svc    *library.Service
	logger *slog.Logger
}

func NewAuthorHandler(svc *library.Service, logger *slog.Logger) *AuthorHandler {
	return &AuthorHandler{svc: svc, logger: logger}
}

type createAuthorRequest struct {
	Name      string  `json:"name"`
	Biography *string `json:"biography"`
	BirthYear *int    `json:"birth_year"`
}

// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body createAuthorRequest true "Author data"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	author, err := h.svc.CreateAuthor(r.Context(), library.AuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, author)
}

// @Summary List authors
// @Tags authors
// @Produce json
// @Param limit query int false "Page size, at most 100"
// @Param cursor query string false "next_cursor from the previous page"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.ListAuthors(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writePage(w, r, authors)
}

// @Summary Get author
// @Tags authors
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /authors/{id} [get]
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	author, err := h.svc.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, author, nil)
}

// @Summary Update author
// @Description Only the fields present in the body are changed
// @Tags authors
// @Accept json
// @Produce json
// @Param id path string true "Author ID"
// @Param author body entity.AuthorPatch true "Fields to change"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /authors/{id} [put]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.AuthorPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	author, err := h.svc.UpdateAuthor(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, author, nil)
}

// @Summary Delete author
// @Description Fails with 409 while the author still has books
// @Tags authors
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAuthor(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]string{"message": "Author deleted successfully"}, nil)
}
