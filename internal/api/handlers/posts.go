package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type NewPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type UpdatePostRequest struct {
	Body string `json:"body"`
}

type NewPostResponse struct {
	ID        string    `json:"id"`
	TitleNorm string    `json:"title_norm"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostListItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TitleNorm   string    `json:"title_norm"`
	PartialBody string    `json:"partial_body"`
	User        MinUser   `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    MinUser   `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	TitleNorm string            `json:"title_norm"`
	Body      string            `json:"body"`
	User      MinUser           `json:"user"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// parseIDParam extracts and parses a ULID path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := domain.ParseID(chi.URLParam(r, name))
	return id, err == nil
}

func commentResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        domain.FormatID(c.ID),
		PostID:    domain.FormatID(c.PostID),
		Body:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		resp.Author = minUser(c.Author)
	}
	return resp
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	var req NewPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	fieldErrors := map[string]string{}
	title, err := domain.TitleBounds.New("title", req.Title)
	if err != nil {
		fieldErrors["title"] = err.Error()
	}
	body, err := domain.PostBodyBounds.New("body", req.Body)
	if err != nil {
		fieldErrors["body"] = err.Error()
	}
	if len(fieldErrors) > 0 {
		writeFieldErrors(w, fieldErrors)
		return
	}

	post, version, err := h.postService.Create(r.Context(), userID, title, body)
	if err != nil {
		writeError(w, "posts.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, NewPostResponse{
		ID:        domain.FormatID(post.ID),
		TitleNorm: post.TitleNorm,
		CreatedAt: post.CreatedAt,
		UpdatedAt: version.CreatedAt,
	})
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.postService.List(r.Context())
	if err != nil {
		writeError(w, "posts.List", err)
		return
	}

	resp := make([]PostListItemResponse, 0, len(items))
	for _, item := range items {
		entry := PostListItemResponse{
			ID:          domain.FormatID(item.Post.ID),
			Title:       item.Post.Title,
			TitleNorm:   item.Post.TitleNorm,
			PartialBody: item.PartialBody,
			CreatedAt:   item.Post.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
		if item.Post.Owner != nil {
			entry.User = minUser(item.Post.Owner)
		}
		resp = append(resp, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetOne resolves a post with its current version and comments. The route
// keeps the original frontend's query-parameter shape.
func (h *PostHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	postID, err := domain.ParseID(r.URL.Query().Get("id"))
	if err != nil {
		writeInvalidBody(w, "id")
		return
	}

	detail, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		writeError(w, "posts.GetOne", err)
		return
	}

	comments := make([]CommentResponse, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, commentResponse(c))
	}

	resp := PostResponse{
		ID:        domain.FormatID(detail.Post.ID),
		Title:     detail.Post.Title,
		TitleNorm: detail.Post.TitleNorm,
		Body:      detail.Current.Text,
		Comments:  comments,
		CreatedAt: detail.Post.CreatedAt,
		UpdatedAt: detail.Current.CreatedAt,
	}
	if detail.Post.Owner != nil {
		resp.User = minUser(detail.Post.Owner)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	body, err := domain.PostBodyBounds.New("body", req.Body)
	if err != nil {
		writeError(w, "posts.Update", err)
		return
	}

	version, err := h.postService.Update(r.Context(), userID, postID, body)
	if err != nil {
		writeError(w, "posts.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, UpdatedResponse{UpdatedAt: version.CreatedAt})
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		writeError(w, "posts.Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
