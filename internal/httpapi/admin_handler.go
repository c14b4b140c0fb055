package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"velora-be/internal/auth"
	"velora-be/internal/logger"
	"velora-be/internal/order"

	"go.uber.org/zap"
)

type AdminHandler struct {
	archive           order.Repository // nil when no database is configured
	jwtSecret         string
	adminEmail        string
	adminPasswordHash string
}

func NewAdminHandler(archive order.Repository, jwtSecret, adminEmail, adminPasswordHash string) *AdminHandler {
	return &AdminHandler{
		archive:           archive,
		jwtSecret:         jwtSecret,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Email != h.adminEmail || !auth.CheckPasswordHash(req.Password, h.adminPasswordHash) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "email or password is wrong")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, req.Email)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to issue admin token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "token_failed", "could not issue session token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		respondError(w, http.StatusServiceUnavailable, "archive_disabled", "order archive is not configured")
		return
	}

	limit := queryInt32(r, "limit", 50)
	offset := queryInt32(r, "offset", 0)

	orders, err := h.archive.ListOrders(r.Context(), limit, offset)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list archived orders", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "archive_failed", "could not read order archive")
		return
	}
	if orders == nil {
		orders = []*order.ArchivedOrder{}
	}

	respondJSON(w, http.StatusOK, orders)
}

func queryInt32(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}
