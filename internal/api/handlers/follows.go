package handlers

import (
	"net/http"

	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/service"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

type FollowListResponse struct {
	Users []MinUser `json:"users"`
}

func (h *FollowHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	followeeID, ok := parseIDParam(r, "userID")
	if !ok {
		writeInvalidBody(w, "id")
		return
	}

	if err := h.followService.Add(r.Context(), userID, followeeID); err != nil {
		writeError(w, "follows.Add", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	followeeID, ok := parseIDParam(r, "userID")
	if !ok {
		writeInvalidBody(w, "id")
		return
	}

	if err := h.followService.Remove(r.Context(), userID, followeeID); err != nil {
		writeError(w, "follows.Remove", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	following, err := h.followService.List(r.Context(), userID)
	if err != nil {
		writeError(w, "follows.List", err)
		return
	}

	users := make([]MinUser, 0, len(following))
	for _, u := range following {
		users = append(users, minUser(u))
	}

	writeJSON(w, http.StatusOK, FollowListResponse{Users: users})
}
