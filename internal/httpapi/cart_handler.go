package httpapi

import (
	"encoding/json"
	"net/http"

	"velora-be/internal/cart"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// CartView is the derived read model: line items plus the recomputed
// totals.
type CartView struct {
	Items              []cart.LineItem `json:"items"`
	TotalItems         int             `json:"total_items"`
	TotalPrice         float64         `json:"total_price"`
	OriginalTotalPrice float64         `json:"original_total_price"`
	TotalDiscount      float64         `json:"total_discount"`
}

func (h *CartHandler) view() CartView {
	items := h.store.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartView{
		Items:              items,
		TotalItems:         h.store.TotalItems(),
		TotalPrice:         h.store.TotalPrice(),
		OriginalTotalPrice: h.store.OriginalTotalPrice(),
		TotalDiscount:      h.store.TotalDiscount(),
	}
}

type AddItemDTO struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Discount      int     `json:"discount"`
	Image         string  `json:"image"`
	Quantity      int     `json:"quantity"`
}

type UpdateQuantityDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}

	h.store.AddToCart(cart.LineItem{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Size:          req.Size,
		Color:         req.Color,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
	}, req.Quantity)

	respondJSON(w, http.StatusCreated, h.view())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.store.UpdateQuantity(req.ProductID, req.Size, req.Color, req.Quantity)
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	size := r.URL.Query().Get("size")
	color := r.URL.Query().Get("color")

	h.store.RemoveFromCart(productID, size, color)
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	respondJSON(w, http.StatusOK, h.view())
}
