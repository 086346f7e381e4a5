package handler

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warnaku/warnaku/internal/api/middleware"
	"github.com/warnaku/warnaku/internal/api/response"
	"github.com/warnaku/warnaku/internal/user"
)

type adminUserResponse struct {
	ID           string `json:"id"`
	GoogleID     string `json:"googleId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	IsAdmin      bool   `json:"isAdmin"`
	CreatedAt    string `json:"createdAt"`
	ProfileCount int    `json:"profileCount"`
}

type statsResponse struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalProfiles          int     `json:"totalProfiles"`
	AdminUsers             int     `json:"adminUsers"`
	RecentUsers            int     `json:"recentUsers"`
	AverageProfilesPerUser float64 `json:"averageProfilesPerUser"`
}

type toggleAdminResponse struct {
	Message string `json:"message"`
	User    struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"isAdmin"`
	} `json:"user"`
}

// AdminHandler handles the privileged user-management endpoints.
type AdminHandler struct {
	users user.Repository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users user.Repository) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers handles GET /api/admin/users: every user, newest first, with
// their profile count.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	items := make([]adminUserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, adminUserResponse{
			ID:           u.ID.String(),
			GoogleID:     u.GoogleID,
			Email:        u.Email,
			Name:         u.Name,
			Picture:      u.Picture,
			IsAdmin:      u.IsAdmin,
			CreatedAt:    u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			ProfileCount: u.ProfileCount,
		})
	}

	response.JSON(w, http.StatusOK, items)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.users.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	var avg float64
	if stats.TotalUsers > 0 {
		avg = math.Round(float64(stats.TotalProfiles)/float64(stats.TotalUsers)*100) / 100
	}

	response.JSON(w, http.StatusOK, statsResponse{
		TotalUsers:             stats.TotalUsers,
		TotalProfiles:          stats.TotalProfiles,
		AdminUsers:             stats.AdminUsers,
		RecentUsers:            stats.RecentUsers,
		AverageProfilesPerUser: avg,
	})
}

// ToggleAdmin handles PUT /api/admin/users/{id}/toggle-admin. An admin may
// not demote themselves; promotion of others and demotion of others both
// just flip the flag.
func (h *AdminHandler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to get user", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	callerID, _ := middleware.CallerID(r.Context())
	if u.ID == callerID && u.IsAdmin {
		response.Error(w, http.StatusBadRequest, "Cannot remove admin status from yourself")
		return
	}

	newFlag := !u.IsAdmin
	if err := h.users.SetAdmin(r.Context(), id, newFlag); err != nil {
		slog.Error("failed to toggle admin flag", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	var resp toggleAdminResponse
	if newFlag {
		resp.Message = "User promoted to admin"
	} else {
		resp.Message = "User removed from admin"
	}
	resp.User.ID = u.ID.String()
	resp.User.Name = u.Name
	resp.User.Email = u.Email
	resp.User.IsAdmin = newFlag

	response.JSON(w, http.StatusOK, resp)
}

// DeleteUser handles DELETE /api/admin/users/{id}: removes the user's
// profiles and then the user. Self-deletion is blocked.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to get user", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	callerID, _ := middleware.CallerID(r.Context())
	if u.ID == callerID {
		response.Error(w, http.StatusBadRequest, "Cannot delete yourself")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to delete user", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	response.Message(w, "User and their profiles deleted successfully")
}
