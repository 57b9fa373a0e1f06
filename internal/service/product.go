package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/repository"
	"github.com/hazelbrook/saffron/internal/telemetry"
)

// ProductService provides business logic for the catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int32, activeOnly bool) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, update domain.ProductUpdate) (*domain.Product, error)

	// AddStock increases inventory after receiving new units.
	AddStock(ctx context.Context, id uuid.UUID, units int32) error

	// ListLowStock returns products below the low stock threshold,
	// out-of-stock products included.
	ListLowStock(ctx context.Context) ([]domain.Product, error)

	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// AddReview records a customer rating, one per (product, account), and
	// folds it into the product's running average.
	AddReview(ctx context.Context, params AddReviewParams) (*domain.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]domain.Review, error)
}

// CreateProductParams carries the fields for a new catalog entry.
type CreateProductParams struct {
	CategoryID     uuid.UUID
	Name           string
	Description    string
	OriginCountry  string
	HeatLevel      domain.HeatLevel
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	BoxQuantity    int32
	Stock          int32
	Active         bool
	ImageURL       string
}

// AddReviewParams carries a customer rating submission.
type AddReviewParams struct {
	ProductID uuid.UUID
	AccountID uuid.UUID
	Rating    int32
	Comment   string
}

type productService struct {
	store   repository.Store
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

// NewProductService creates a new ProductService instance.
func NewProductService(store repository.Store, metrics *telemetry.BusinessMetrics, logger *slog.Logger) ProductService {
	return &productService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (*domain.Product, error) {
	const op = "product.create"

	if params.Name == "" {
		return nil, domain.Errorf(domain.EINVALID, op, "Product name is required")
	}
	if params.RetailPrice.IsNegative() || params.WholesalePrice.IsNegative() {
		return nil, domain.Errorf(domain.EINVALID, op, "Prices must not be negative")
	}
	if params.BoxQuantity <= 0 {
		return nil, domain.Errorf(domain.EINVALID, op, "Box quantity must be greater than 0")
	}
	if params.Stock < 0 {
		return nil, domain.Errorf(domain.EINVALID, op, "Stock must not be negative")
	}

	retailNum, err := decimalToNumeric(params.RetailPrice)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
	}
	wholesaleNum, err := decimalToNumeric(params.WholesalePrice)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
	}

	row, err := s.store.CreateProduct(ctx, repository.CreateProductParams{
		CategoryID:     pgUUID(params.CategoryID),
		Name:           params.Name,
		Slug:           slugify(params.Name),
		Description:    pgText(params.Description),
		OriginCountry:  pgText(params.OriginCountry),
		HeatLevel:      int32(params.HeatLevel),
		RetailPrice:    retailNum,
		WholesalePrice: wholesaleNum,
		BoxQuantity:    params.BoxQuantity,
		Stock:          params.Stock,
		Active:         params.Active,
		ImageUrl:       pgText(params.ImageURL),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Errorf(domain.ECONFLICT, op, "A product named %q already exists", params.Name)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to save product")
	}

	product := toDomainProduct(row)
	s.logger.Info("product created", "product_id", product.ID, "slug", product.Slug)
	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	const op = "product.get"

	row, err := s.store.GetProduct(ctx, pgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
	}
	product := toDomainProduct(row)
	return &product, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const op = "product.get_by_slug"

	row, err := s.store.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
	}
	product := toDomainProduct(row)
	return &product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int32, activeOnly bool) ([]domain.Product, error) {
	const op = "product.list"

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.store.ListProducts(ctx, repository.ListProductsParams{
		Limit:      limit,
		Offset:     offset,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list products")
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = toDomainProduct(row)
	}
	return products, nil
}

func (s *productService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	const op = "product.list_by_category"

	rows, err := s.store.ListProductsByCategory(ctx, pgUUID(categoryID))
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list products")
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = toDomainProduct(row)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, update domain.ProductUpdate) (*domain.Product, error) {
	const op = "product.update"

	params := repository.UpdateProductParams{
		ID:            pgUUID(id),
		Name:          pgTextPtr(update.Name),
		Description:   pgTextPtr(update.Description),
		OriginCountry: pgTextPtr(update.OriginCountry),
		ImageUrl:      pgTextPtr(update.ImageURL),
	}
	if update.HeatLevel != nil {
		params.HeatLevel = pgtype.Int4{Int32: int32(*update.HeatLevel), Valid: true}
	}
	if update.BoxQuantity != nil {
		if *update.BoxQuantity <= 0 {
			return nil, domain.Errorf(domain.EINVALID, op, "Box quantity must be greater than 0")
		}
		params.BoxQuantity = pgtype.Int4{Int32: *update.BoxQuantity, Valid: true}
	}
	if update.Active != nil {
		params.Active = pgtype.Bool{Bool: *update.Active, Valid: true}
	}
	if update.RetailPrice != nil {
		num, err := decimalToNumeric(*update.RetailPrice)
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		params.RetailPrice = num
	}
	if update.WholesalePrice != nil {
		num, err := decimalToNumeric(*update.WholesalePrice)
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		params.WholesalePrice = num
	}

	row, err := s.store.UpdateProduct(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to update product")
	}

	product := toDomainProduct(row)
	return &product, nil
}

func (s *productService) AddStock(ctx context.Context, id uuid.UUID, units int32) error {
	const op = "product.add_stock"

	if units <= 0 {
		return domain.Errorf(domain.EINVALID, op, "Units must be greater than 0")
	}

	// Existence check first so a bad ID is a 404, not a silent no-op.
	if _, err := s.store.GetProduct(ctx, pgUUID(id)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProductNotFound
		}
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
	}

	err := s.store.IncrementProductStock(ctx, repository.IncrementProductStockParams{
		ID:       pgUUID(id),
		Quantity: units,
	})
	if err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to update stock")
	}
	return nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	const op = "product.list_low_stock"

	rows, err := s.store.ListLowStockProducts(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list low stock products")
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = toDomainProduct(row)
	}
	return products, nil
}

func (s *productService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	const op = "category.create"

	if name == "" {
		return nil, domain.Errorf(domain.EINVALID, op, "Category name is required")
	}

	row, err := s.store.CreateCategory(ctx, repository.CreateCategoryParams{
		Name:        name,
		Slug:        slugify(name),
		Description: pgText(description),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Errorf(domain.ECONFLICT, op, "A category named %q already exists", name)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to save category")
	}

	category := toDomainCategory(row)
	return &category, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "category.list"

	rows, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list categories")
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = toDomainCategory(row)
	}
	return categories, nil
}

func (s *productService) AddReview(ctx context.Context, params AddReviewParams) (*domain.Review, error) {
	const op = "review.create"

	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var review *domain.Review

	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		// Lock the product row so concurrent reviews serialize the rollup.
		product, err := q.GetProductForUpdate(ctx, pgUUID(params.ProductID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrProductNotFound
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
		}

		_, err = q.GetReviewByProductAndAccount(ctx, repository.GetReviewByProductAndAccountParams{
			ProductID: product.ID,
			AccountID: pgUUID(params.AccountID),
		})
		if err == nil {
			return ErrDuplicateReview
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to check for existing review")
		}

		row, err := q.CreateReview(ctx, repository.CreateReviewParams{
			ProductID: product.ID,
			AccountID: pgUUID(params.AccountID),
			Rating:    params.Rating,
			Comment:   pgText(params.Comment),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateReview
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to save review")
		}

		average, count := domain.RollupRating(numericToDecimal(product.RatingAverage), product.ReviewCount, params.Rating)
		averageNum, err := decimalToNumeric(average)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		err = q.UpdateProductRating(ctx, repository.UpdateProductRatingParams{
			ID:            product.ID,
			RatingAverage: averageNum,
			ReviewCount:   count,
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to update product rating")
		}

		r := toDomainReview(row)
		review = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReviewsCreated.Inc()
	}

	return review, nil
}

func (s *productService) ListReviews(ctx context.Context, productID uuid.UUID) ([]domain.Review, error) {
	const op = "review.list"

	rows, err := s.store.ListProductReviews(ctx, pgUUID(productID))
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list reviews")
	}

	reviews := make([]domain.Review, len(rows))
	for i, row := range rows {
		reviews[i] = toDomainReview(row)
	}
	return reviews, nil
}

// slugify lowercases a name and collapses non-alphanumeric runs to hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
