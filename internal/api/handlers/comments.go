package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type CommentRequest struct {
	Body string `json:"body"`
}

// Create handles POST /blogs/{postID}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeInvalidBody(w, "id")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	body, err := domain.CommentBounds.New("body", req.Body)
	if err != nil {
		writeError(w, "comments.Create", err)
		return
	}

	comment, err := h.commentService.Create(r.Context(), userID, postID, body)
	if err != nil {
		writeError(w, "comments.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse(comment))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	commentID, ok := parseIDParam(r, "commentID")
	if !ok {
		writeInvalidBody(w, "id")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	body, err := domain.CommentBounds.New("body", req.Body)
	if err != nil {
		writeError(w, "comments.Update", err)
		return
	}

	comment, err := h.commentService.Update(r.Context(), userID, commentID, body)
	if err != nil {
		writeError(w, "comments.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, UpdatedResponse{UpdatedAt: comment.UpdatedAt})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	commentID, ok := parseIDParam(r, "commentID")
	if !ok {
		writeInvalidBody(w, "id")
		return
	}

	if err := h.commentService.Delete(r.Context(), userID, commentID); err != nil {
		writeError(w, "comments.Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
