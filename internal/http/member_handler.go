package http

import (
	"log/slog"
	"net/http"

	"librarycatalog/internal/entity"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
)

type MemberHandler struct {
	svc    *library.Service
	logger *slog.Logger
}

func NewMemberHandler(svc *library.Service, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, logger: logger}
}

type createMemberRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	MembershipID string  `json:"membership_id"`
	Phone        *string `json:"phone"`
}

// @Summary Register member
// @Tags members
// @Accept json
// @Produce json
// @Param member body createMemberRequest true "Member data"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /members [post]
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.svc.CreateMember(r.Context(), library.MemberInput{
		Name:         req.Name,
		Email:        req.Email,
		MembershipID: req.MembershipID,
		Phone:        req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, member)
}

// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Page size, at most 100"
// @Param cursor query string false "next_cursor from the previous page"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writePage(w, r, members)
}

// @Summary Get member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /members/{id} [get]
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.svc.GetMember(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, member, nil)
}

// @Summary Update member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body entity.MemberPatch true "Fields to change"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /members/{id} [put]
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.MemberPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	member, err := h.svc.UpdateMember(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, member, nil)
}

// @Summary Delete member
// @Description Fails with 409 while the member still holds books
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMember(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]string{"message": "Member deleted successfully"}, nil)
}

// @Summary List books borrowed by a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /members/{id}/borrowed-books [get]
func (h *MemberHandler) BorrowedBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.MemberBorrowedBooks(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]interface{}{"total": len(books)})
}
