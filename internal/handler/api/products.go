package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/handler"
	"github.com/hazelbrook/saffron/internal/service"
)

// ProductHandler handles catalog, category and review routes.
type ProductHandler struct {
	products service.ProductService
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := handler.QueryInt(r, "limit", 50)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	offset, err := handler.QueryInt(r, "offset", 0)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	products, err := h.products.ListProducts(r.Context(), int32(limit), int32(offset), activeOnly)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"products": resp})
}

// Get handles GET /api/v1/products/{id}
// The path value may be a UUID or a slug.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	var product *domain.Product
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		product, err = h.products.GetProduct(r.Context(), id)
	} else {
		product, err = h.products.GetProductBySlug(r.Context(), raw)
	}
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toProductResponse(*product))
}

type createProductRequest struct {
	CategoryID     string `json:"category_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OriginCountry  string `json:"origin_country"`
	HeatLevel      int32  `json:"heat_level"`
	RetailPrice    string `json:"retail_price"`
	WholesalePrice string `json:"wholesale_price"`
	BoxQuantity    int32  `json:"box_quantity"`
	Stock          int32  `json:"stock"`
	Active         bool   `json:"active"`
	ImageURL       string `json:"image_url"`
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	params := service.CreateProductParams{
		Name:          req.Name,
		Description:   req.Description,
		OriginCountry: req.OriginCountry,
		HeatLevel:     domain.HeatLevel(req.HeatLevel),
		BoxQuantity:   req.BoxQuantity,
		Stock:         req.Stock,
		Active:        req.Active,
		ImageURL:      req.ImageURL,
	}
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "category_id is not a valid UUID"))
			return
		}
		params.CategoryID = id
	}
	var err error
	if params.RetailPrice, err = parsePrice("retail_price", req.RetailPrice); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if params.WholesalePrice, err = parsePrice("wholesale_price", req.WholesalePrice); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toProductResponse(*product))
}

type updateProductRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	OriginCountry  *string `json:"origin_country"`
	HeatLevel      *int32  `json:"heat_level"`
	RetailPrice    *string `json:"retail_price"`
	WholesalePrice *string `json:"wholesale_price"`
	BoxQuantity    *int32  `json:"box_quantity"`
	Active         *bool   `json:"active"`
	ImageURL       *string `json:"image_url"`
}

// Update handles PATCH /api/v1/products/{id}
// Absent fields are left unchanged.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateProductRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	update := domain.ProductUpdate{
		Name:          req.Name,
		Description:   req.Description,
		OriginCountry: req.OriginCountry,
		BoxQuantity:   req.BoxQuantity,
		Active:        req.Active,
		ImageURL:      req.ImageURL,
	}
	if req.HeatLevel != nil {
		level := domain.HeatLevel(*req.HeatLevel)
		update.HeatLevel = &level
	}
	if req.RetailPrice != nil {
		price, err := parsePrice("retail_price", *req.RetailPrice)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		update.RetailPrice = &price
	}
	if req.WholesalePrice != nil {
		price, err := parsePrice("wholesale_price", *req.WholesalePrice)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		update.WholesalePrice = &price
	}

	product, err := h.products.UpdateProduct(r.Context(), id, update)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toProductResponse(*product))
}

type addStockRequest struct {
	Units int32 `json:"units"`
}

// AddStock handles POST /api/v1/products/{id}/stock
func (h *ProductHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req addStockRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.products.AddStock(r.Context(), id, req.Units); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, toProductResponse(*product))
}

// LowStock handles GET /api/v1/products/low-stock
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListLowStock(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"products": resp})
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory handles POST /api/v1/categories
func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	category, err := h.products.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toCategoryResponse(*category))
}

// ListCategories handles GET /api/v1/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.ListCategories(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"categories": resp})
}

// ListByCategory handles GET /api/v1/categories/{id}/products
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	products, err := h.products.ListProductsByCategory(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"products": resp})
}

type createReviewRequest struct {
	AccountID string `json:"account_id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
}

// CreateReview handles POST /api/v1/products/{id}/reviews
func (h *ProductHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req createReviewRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "account_id is not a valid UUID"))
		return
	}

	review, err := h.products.AddReview(r.Context(), service.AddReviewParams{
		ProductID: productID,
		AccountID: accountID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toReviewResponse(*review))
}

// ListReviews handles GET /api/v1/products/{id}/reviews
func (h *ProductHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	reviews, err := h.products.ListReviews(r.Context(), productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]reviewResponse, len(reviews))
	for i, rev := range reviews {
		resp[i] = toReviewResponse(rev)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"reviews": resp})
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.Errorf(domain.EINVALID, "", "%s is not a valid UUID", name)
	}
	return id, nil
}

// parsePrice parses a decimal money string from a request body.
func parsePrice(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.Errorf(domain.EINVALID, "", "%s is not a valid decimal amount", field)
	}
	return price, nil
}
