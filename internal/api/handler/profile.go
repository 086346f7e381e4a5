package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warnaku/warnaku/internal/api/middleware"
	"github.com/warnaku/warnaku/internal/api/response"
	"github.com/warnaku/warnaku/internal/api/validation"
	"github.com/warnaku/warnaku/internal/profile"
)

type createProfileRequest struct {
	Name string `json:"name"`
}

type updateProfileRequest struct {
	Name              string `json:"name"`
	UpdateLastUsed    bool   `json:"updateLastUsed"`
	Achievement       string `json:"achievement"`
	MinigameCompleted bool   `json:"minigameCompleted"`
}

// ProfileHandler handles the save-slot CRUD endpoints, always scoped to the
// authenticated caller.
type ProfileHandler struct {
	repo profile.Repository
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(repo profile.Repository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

// List handles GET /api/profiles: the caller's profiles, most recently used
// first.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	profiles, err := h.repo.ListByUser(r.Context(), callerID)
	if err != nil {
		slog.Error("failed to list profiles", "error", err, "userId", callerID)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch profiles")
		return
	}

	response.JSON(w, http.StatusOK, profiles)
}

// Create handles POST /api/profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	name, err := validation.ProfileName(req.Name)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p := &profile.Profile{
		UserID: callerID,
		Name:   name,
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		if errors.Is(err, profile.ErrDuplicateProfileName) {
			response.Error(w, http.StatusConflict, "Profile name already exists")
			return
		}
		slog.Error("failed to create profile", "error", err, "userId", callerID)
		response.Error(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// Update handles PUT /api/profiles/{id}: rename, touch last-used, unlock an
// achievement, or record a minigame clear. Ownership is enforced by scoping
// the lookup to caller-id plus record-id, so a foreign profile reads as 404.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	p, err := h.repo.Get(r.Context(), callerID, id)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		slog.Error("failed to get profile", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		p.Name = name
	}

	if req.UpdateLastUsed {
		p.LastUsed = time.Now().UTC()
	}

	if req.Achievement != "" {
		color, err := profile.ParseColor(req.Achievement)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Unknown achievement color")
			return
		}
		// One-way: unlocking an already-unlocked color is a no-op.
		p.Achievements.Unlock(color)
	}

	if req.MinigameCompleted {
		p.MinigamesCleared++
	}

	if err := h.repo.Update(r.Context(), p); err != nil {
		if errors.Is(err, profile.ErrDuplicateProfileName) {
			response.Error(w, http.StatusConflict, "Profile name already exists")
			return
		}
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		slog.Error("failed to update profile", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/profiles/{id}.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.repo.Delete(r.Context(), callerID, id); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		slog.Error("failed to delete profile", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	response.Message(w, "Profile deleted successfully")
}
