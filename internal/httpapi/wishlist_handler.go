package httpapi

import (
	"encoding/json"
	"net/http"

	"velora-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

type WishlistHandler struct {
	store *wishlist.Store
}

func NewWishlistHandler(store *wishlist.Store) *WishlistHandler {
	return &WishlistHandler{store: store}
}

type WishlistView struct {
	Items []wishlist.Item `json:"items"`
	Count int             `json:"count"`
}

func (h *WishlistHandler) view() WishlistView {
	items := h.store.Items()
	if items == nil {
		items = []wishlist.Item{}
	}
	return WishlistView{Items: items, Count: h.store.Count()}
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.view())
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req wishlist.Item
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.store.Add(req)
	respondJSON(w, http.StatusCreated, h.view())
}

func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	respondJSON(w, http.StatusOK, map[string]bool{
		"in_wishlist": h.store.Contains(productID),
	})
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.Remove(chi.URLParam(r, "productID"))
	respondJSON(w, http.StatusOK, h.view())
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	respondJSON(w, http.StatusOK, h.view())
}
