package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sinmabazaar/backend/internal/auth"
	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/i18n"
	"github.com/sinmabazaar/backend/internal/repository"
	"github.com/sinmabazaar/backend/internal/service"
	"github.com/sinmabazaar/backend/internal/session"
)

// Handler handles HTTP requests for the storefront and the admin panel.
type Handler struct {
	catalog   *service.CatalogService
	cart      *service.CartService
	orders    *service.OrderService
	dashboard *service.DashboardService
	gate      *auth.Gate
	sessions  session.Store
}

func NewHandler(
	catalog *service.CatalogService,
	cart *service.CartService,
	orders *service.OrderService,
	dashboard *service.DashboardService,
	gate *auth.Gate,
	sessions session.Store,
) *Handler {
	return &Handler{
		catalog:   catalog,
		cart:      cart,
		orders:    orders,
		dashboard: dashboard,
		gate:      gate,
		sessions:  sessions,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Storefront
	mux.HandleFunc("GET /api/products", h.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /api/categories", h.handleListCategories)
	mux.HandleFunc("GET /api/states", h.handleListStates)
	mux.HandleFunc("GET /api/cart", h.handleGetCart)
	mux.HandleFunc("POST /api/cart", h.handleAddToCart)
	mux.HandleFunc("PATCH /api/cart", h.handleAdjustQuantity)
	mux.HandleFunc("DELETE /api/cart", h.handleRemoveLine)
	mux.HandleFunc("GET /api/wishlist", h.handleGetWishlist)
	mux.HandleFunc("POST /api/wishlist/toggle", h.handleToggleWishlist)
	mux.HandleFunc("GET /api/language", h.handleGetLanguage)
	mux.HandleFunc("PUT /api/language", h.handleSetLanguage)
	mux.HandleFunc("POST /api/checkout", h.handleCheckout)
	mux.HandleFunc("GET /api/orders", h.handleTrackOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.handleGetOrder)

	// Admin
	mux.HandleFunc("POST /api/admin/login", h.handleAdminLogin)
	mux.HandleFunc("POST /api/admin/logout", h.handleAdminLogout)
	mux.HandleFunc("GET /api/admin/dashboard", h.requireAdmin(h.handleDashboard))
	mux.HandleFunc("POST /api/admin/products", h.requireAdmin(h.handleCreateProduct))
	mux.HandleFunc("PUT /api/admin/products/{id}", h.requireAdmin(h.handleUpdateProduct))
	mux.HandleFunc("DELETE /api/admin/products/{id}", h.requireAdmin(h.handleDeleteProduct))
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", h.requireAdmin(h.handleUpdateOrderStatus))
}

// requireAdmin rejects requests whose session is not authenticated,
// including sessions whose 24h window has lapsed.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := h.gate.Check(r.Context(), sessionID(r))
		if err != nil {
			slog.Error("Admin check failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "admin authentication required")
			return
		}
		next(w, r)
	}
}

// lang resolves the session's display language, defaulting to English.
func (h *Handler) lang(r *http.Request) i18n.Language {
	raw, ok, err := h.sessions.Get(r.Context(), sessionID(r), session.KeyLanguage)
	if err != nil || !ok {
		return i18n.English
	}
	return i18n.Parse(raw)
}

// --- Storefront ---

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		slog.Error("Failed to list products", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if products == nil {
		products = []entity.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, i18n.T(h.lang(r), i18n.MsgProductNotFound))
		return
	}
	if err != nil {
		slog.Error("Failed to get product", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	type category struct {
		Name string `json:"name"`
		entity.CategoryDisplay
	}
	out := make([]category, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		out = append(out, category{Name: c, CategoryDisplay: entity.DisplayForCategory(c)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.ShippingStates)
}

type cartResponse struct {
	Items []entity.CartLine `json:"items"`
	Total float64           `json:"total"`
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	lines, total, err := h.cart.GetCart(r.Context(), sessionID(r))
	if err != nil {
		slog.Error("Failed to get cart", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.writeCart(w, lines, total)
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req service.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.cart.AddLine(r.Context(), sessionID(r), req)
	if h.handleCartError(w, r, err, "Failed to add to cart") {
		return
	}
	h.writeCart(w, lines, entity.CartTotal(lines))
}

type adjustQuantityRequest struct {
	Key   entity.LineKey `json:"key"`
	Delta int            `json:"delta"`
}

func (h *Handler) handleAdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req adjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.cart.AdjustQuantity(r.Context(), sessionID(r), req.Key, req.Delta)
	if h.handleCartError(w, r, err, "Failed to adjust cart quantity") {
		return
	}
	h.writeCart(w, lines, entity.CartTotal(lines))
}

func (h *Handler) handleRemoveLine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := entity.LineKey{
		ProductID: q.Get("productId"),
		Size:      q.Get("size"),
		Color:     q.Get("color"),
	}

	lines, err := h.cart.RemoveLine(r.Context(), sessionID(r), key)
	if h.handleCartError(w, r, err, "Failed to remove cart line") {
		return
	}
	h.writeCart(w, lines, entity.CartTotal(lines))
}

// handleCartError maps cart/checkout errors onto responses; returns
// true when a response was written.
func (h *Handler) handleCartError(w http.ResponseWriter, r *http.Request, err error, logMsg string) bool {
	if err == nil {
		return false
	}
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, i18n.T(h.lang(r), ve.MsgID))
		return true
	}
	slog.Error(logMsg, "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
	return true
}

func (h *Handler) writeCart(w http.ResponseWriter, lines []entity.CartLine, total float64) {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: lines, Total: total})
}

func (h *Handler) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	products, err := h.cart.GetWishlistProducts(r.Context(), sessionID(r))
	if err != nil {
		slog.Error("Failed to get wishlist", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if products == nil {
		products = []entity.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.cart.ToggleWishlist(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		slog.Error("Failed to toggle wishlist", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"wishlisted": member})
}

func (h *Handler) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"language": string(h.lang(r))})
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language != string(i18n.English) && req.Language != string(i18n.Arabic) {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}

	if err := h.sessions.Set(r.Context(), sessionID(r), session.KeyLanguage, req.Language); err != nil {
		slog.Error("Failed to store language", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": req.Language})
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orders.Checkout(r.Context(), sessionID(r), req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, i18n.T(h.lang(r), ve.MsgID))
			return
		}
		slog.Error("Checkout failed", "err", err)
		writeError(w, http.StatusInternalServerError, i18n.T(h.lang(r), i18n.MsgOrderCreateFailed))
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) handleTrackOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.TrackOrders(r.Context())
	if err != nil {
		slog.Error("Failed to load orders", "err", err)
		writeError(w, http.StatusInternalServerError, i18n.T(h.lang(r), i18n.MsgOrdersLoadFailed))
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		slog.Error("Failed to get order", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// --- Admin ---

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.gate.Login(r.Context(), sessionID(r), req.Password)
	if err != nil {
		slog.Error("Admin login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": true})
}

func (h *Handler) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.Logout(r.Context(), sessionID(r)); err != nil {
		slog.Error("Admin logout failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": false})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.Report(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, i18n.T(h.lang(r), i18n.MsgDashboardLoadFailed))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var detail entity.ProductDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.catalog.CreateProduct(r.Context(), &detail); err != nil {
		slog.Error("Failed to create product", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var detail entity.ProductDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	detail.ID = r.PathValue("id")

	err := h.catalog.UpdateProduct(r.Context(), &detail)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, i18n.T(h.lang(r), i18n.MsgProductNotFound))
		return
	}
	if err != nil {
		slog.Error("Failed to update product", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeleteProduct(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, i18n.T(h.lang(r), i18n.MsgProductNotFound))
		return
	}
	if err != nil {
		slog.Error("Failed to delete product", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.orders.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		slog.Error("Failed to update order status", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": r.PathValue("id"), "status": req.Status})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
