package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hazelbrook/saffron/internal/repository"
)

// mockStore implements repository.Store for testing. Each method delegates to
// an optional Func field; unset lookups return pgx.ErrNoRows and unset writes
// fail loudly. ExecTx runs the callback against the mock itself.
type mockStore struct {
	CountAccountsCreatedBetweenFunc        func(ctx context.Context, arg repository.CountAccountsCreatedBetweenParams) (int64, error)
	CountUnreadNotificationsFunc           func(ctx context.Context, accountID pgtype.UUID) (int64, error)
	CreateAccountFunc                      func(ctx context.Context, arg repository.CreateAccountParams) (repository.Account, error)
	CreateCategoryFunc                     func(ctx context.Context, arg repository.CreateCategoryParams) (repository.Category, error)
	CreateDistributorApplicationFunc       func(ctx context.Context, arg repository.CreateDistributorApplicationParams) (repository.DistributorApplication, error)
	CreateNotificationFunc                 func(ctx context.Context, arg repository.CreateNotificationParams) (repository.Notification, error)
	CreateOrderFunc                        func(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error)
	CreateOrderItemFunc                    func(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error)
	CreatePaymentFunc                      func(ctx context.Context, arg repository.CreatePaymentParams) (repository.Payment, error)
	CreateProductFunc                      func(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error)
	CreateProfileFunc                      func(ctx context.Context, arg repository.CreateProfileParams) (repository.Profile, error)
	CreateReviewFunc                       func(ctx context.Context, arg repository.CreateReviewParams) (repository.Review, error)
	CreateShippingMethodFunc               func(ctx context.Context, arg repository.CreateShippingMethodParams) (repository.ShippingMethod, error)
	DecrementProductStockFunc              func(ctx context.Context, arg repository.DecrementProductStockParams) (int64, error)
	GetAccountByEmailFunc                  func(ctx context.Context, email string) (repository.Account, error)
	GetAccountByIDFunc                     func(ctx context.Context, id pgtype.UUID) (repository.Account, error)
	GetDailySalesFunc                      func(ctx context.Context, date pgtype.Date) (repository.DailySale, error)
	GetDistributorApplicationFunc          func(ctx context.Context, id pgtype.UUID) (repository.DistributorApplication, error)
	GetOrderFunc                           func(ctx context.Context, id pgtype.UUID) (repository.Order, error)
	GetOrderByNumberFunc                   func(ctx context.Context, orderNumber string) (repository.Order, error)
	GetOrderItemsFunc                      func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error)
	GetOrderPaymentsFunc                   func(ctx context.Context, orderID pgtype.UUID) ([]repository.Payment, error)
	GetPaymentFunc                         func(ctx context.Context, id pgtype.UUID) (repository.Payment, error)
	GetProductFunc                         func(ctx context.Context, id pgtype.UUID) (repository.Product, error)
	GetProductBySlugFunc                   func(ctx context.Context, slug string) (repository.Product, error)
	GetProductForUpdateFunc                func(ctx context.Context, id pgtype.UUID) (repository.Product, error)
	GetProfileByAccountIDFunc              func(ctx context.Context, accountID pgtype.UUID) (repository.Profile, error)
	GetReviewByProductAndAccountFunc       func(ctx context.Context, arg repository.GetReviewByProductAndAccountParams) (repository.Review, error)
	GetShippingMethodFunc                  func(ctx context.Context, id pgtype.UUID) (repository.ShippingMethod, error)
	IncrementProductStockFunc              func(ctx context.Context, arg repository.IncrementProductStockParams) error
	ListCategoriesFunc                     func(ctx context.Context) ([]repository.Category, error)
	ListDailySalesBetweenFunc              func(ctx context.Context, arg repository.ListDailySalesBetweenParams) ([]repository.DailySale, error)
	ListLowStockProductsFunc               func(ctx context.Context, threshold int32) ([]repository.Product, error)
	ListNotificationsFunc                  func(ctx context.Context, accountID pgtype.UUID) ([]repository.Notification, error)
	ListOpenInventoryAlertsFunc            func(ctx context.Context) ([]repository.InventoryAlert, error)
	ListOrdersFunc                         func(ctx context.Context, arg repository.ListOrdersParams) ([]repository.Order, error)
	ListOrdersBetweenFunc                  func(ctx context.Context, arg repository.ListOrdersBetweenParams) ([]repository.Order, error)
	ListOrdersByAccountFunc                func(ctx context.Context, accountID pgtype.UUID) ([]repository.Order, error)
	ListPendingDistributorApplicationsFunc func(ctx context.Context) ([]repository.DistributorApplication, error)
	ListProductReviewsFunc                 func(ctx context.Context, productID pgtype.UUID) ([]repository.Review, error)
	ListProductsFunc                       func(ctx context.Context, arg repository.ListProductsParams) ([]repository.Product, error)
	ListProductsByCategoryFunc             func(ctx context.Context, categoryID pgtype.UUID) ([]repository.Product, error)
	ListShippingMethodsFunc                func(ctx context.Context) ([]repository.ShippingMethod, error)
	MarkAllNotificationsReadFunc           func(ctx context.Context, accountID pgtype.UUID) error
	MarkNotificationReadFunc               func(ctx context.Context, arg repository.MarkNotificationReadParams) (int64, error)
	ResolveInventoryAlertsFunc             func(ctx context.Context, productID pgtype.UUID) error
	SetProfileKindFunc                     func(ctx context.Context, arg repository.SetProfileKindParams) error
	UpdateDistributorApplicationStatusFunc func(ctx context.Context, arg repository.UpdateDistributorApplicationStatusParams) (repository.DistributorApplication, error)
	UpdateOrderPaymentStatusFunc           func(ctx context.Context, arg repository.UpdateOrderPaymentStatusParams) error
	UpdateOrderStatusFunc                  func(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error)
	UpdatePaymentStatusFunc                func(ctx context.Context, arg repository.UpdatePaymentStatusParams) (repository.Payment, error)
	UpdateProductFunc                      func(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error)
	UpdateProductRatingFunc                func(ctx context.Context, arg repository.UpdateProductRatingParams) error
	UpdateProfileFunc                      func(ctx context.Context, arg repository.UpdateProfileParams) (repository.Profile, error)
	UpsertDailySalesFunc                   func(ctx context.Context, arg repository.UpsertDailySalesParams) (repository.DailySale, error)
	UpsertInventoryAlertFunc               func(ctx context.Context, arg repository.UpsertInventoryAlertParams) (repository.InventoryAlert, error)
}

var _ repository.Store = (*mockStore)(nil)

func (m *mockStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	return fn(m)
}

func (m *mockStore) CountAccountsCreatedBetween(ctx context.Context, arg repository.CountAccountsCreatedBetweenParams) (int64, error) {
	if m.CountAccountsCreatedBetweenFunc != nil {
		return m.CountAccountsCreatedBetweenFunc(ctx, arg)
	}
	return 0, nil
}

func (m *mockStore) CountUnreadNotifications(ctx context.Context, accountID pgtype.UUID) (int64, error) {
	if m.CountUnreadNotificationsFunc != nil {
		return m.CountUnreadNotificationsFunc(ctx, accountID)
	}
	return 0, nil
}

func (m *mockStore) CreateAccount(ctx context.Context, arg repository.CreateAccountParams) (repository.Account, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, arg)
	}
	return repository.Account{}, errors.New("not implemented")
}

func (m *mockStore) CreateCategory(ctx context.Context, arg repository.CreateCategoryParams) (repository.Category, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, arg)
	}
	return repository.Category{}, errors.New("not implemented")
}

func (m *mockStore) CreateDistributorApplication(ctx context.Context, arg repository.CreateDistributorApplicationParams) (repository.DistributorApplication, error) {
	if m.CreateDistributorApplicationFunc != nil {
		return m.CreateDistributorApplicationFunc(ctx, arg)
	}
	return repository.DistributorApplication{}, errors.New("not implemented")
}

func (m *mockStore) CreateNotification(ctx context.Context, arg repository.CreateNotificationParams) (repository.Notification, error) {
	if m.CreateNotificationFunc != nil {
		return m.CreateNotificationFunc(ctx, arg)
	}
	return repository.Notification{AccountID: arg.AccountID, Kind: arg.Kind, Title: arg.Title, Body: arg.Body}, nil
}

func (m *mockStore) CreateOrder(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, arg)
	}
	return repository.Order{}, errors.New("not implemented")
}

func (m *mockStore) CreateOrderItem(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error) {
	if m.CreateOrderItemFunc != nil {
		return m.CreateOrderItemFunc(ctx, arg)
	}
	return repository.OrderItem{
		OrderID:     arg.OrderID,
		ProductID:   arg.ProductID,
		ProductName: arg.ProductName,
		Quantity:    arg.Quantity,
		UnitPrice:   arg.UnitPrice,
		Wholesale:   arg.Wholesale,
		BoxQuantity: arg.BoxQuantity,
		Total:       arg.Total,
	}, nil
}

func (m *mockStore) CreatePayment(ctx context.Context, arg repository.CreatePaymentParams) (repository.Payment, error) {
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, arg)
	}
	return repository.Payment{}, errors.New("not implemented")
}

func (m *mockStore) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, arg)
	}
	return repository.Product{}, errors.New("not implemented")
}

func (m *mockStore) CreateProfile(ctx context.Context, arg repository.CreateProfileParams) (repository.Profile, error) {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(ctx, arg)
	}
	return repository.Profile{}, errors.New("not implemented")
}

func (m *mockStore) CreateReview(ctx context.Context, arg repository.CreateReviewParams) (repository.Review, error) {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(ctx, arg)
	}
	return repository.Review{}, errors.New("not implemented")
}

func (m *mockStore) CreateShippingMethod(ctx context.Context, arg repository.CreateShippingMethodParams) (repository.ShippingMethod, error) {
	if m.CreateShippingMethodFunc != nil {
		return m.CreateShippingMethodFunc(ctx, arg)
	}
	return repository.ShippingMethod{}, errors.New("not implemented")
}

func (m *mockStore) DecrementProductStock(ctx context.Context, arg repository.DecrementProductStockParams) (int64, error) {
	if m.DecrementProductStockFunc != nil {
		return m.DecrementProductStockFunc(ctx, arg)
	}
	return 1, nil
}

func (m *mockStore) GetAccountByEmail(ctx context.Context, email string) (repository.Account, error) {
	if m.GetAccountByEmailFunc != nil {
		return m.GetAccountByEmailFunc(ctx, email)
	}
	return repository.Account{}, pgx.ErrNoRows
}

func (m *mockStore) GetAccountByID(ctx context.Context, id pgtype.UUID) (repository.Account, error) {
	if m.GetAccountByIDFunc != nil {
		return m.GetAccountByIDFunc(ctx, id)
	}
	return repository.Account{}, pgx.ErrNoRows
}

func (m *mockStore) GetDailySales(ctx context.Context, date pgtype.Date) (repository.DailySale, error) {
	if m.GetDailySalesFunc != nil {
		return m.GetDailySalesFunc(ctx, date)
	}
	return repository.DailySale{}, pgx.ErrNoRows
}

func (m *mockStore) GetDistributorApplication(ctx context.Context, id pgtype.UUID) (repository.DistributorApplication, error) {
	if m.GetDistributorApplicationFunc != nil {
		return m.GetDistributorApplicationFunc(ctx, id)
	}
	return repository.DistributorApplication{}, pgx.ErrNoRows
}

func (m *mockStore) GetOrder(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return repository.Order{}, pgx.ErrNoRows
}

func (m *mockStore) GetOrderByNumber(ctx context.Context, orderNumber string) (repository.Order, error) {
	if m.GetOrderByNumberFunc != nil {
		return m.GetOrderByNumberFunc(ctx, orderNumber)
	}
	return repository.Order{}, pgx.ErrNoRows
}

func (m *mockStore) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
	if m.GetOrderItemsFunc != nil {
		return m.GetOrderItemsFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockStore) GetOrderPayments(ctx context.Context, orderID pgtype.UUID) ([]repository.Payment, error) {
	if m.GetOrderPaymentsFunc != nil {
		return m.GetOrderPaymentsFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockStore) GetPayment(ctx context.Context, id pgtype.UUID) (repository.Payment, error) {
	if m.GetPaymentFunc != nil {
		return m.GetPaymentFunc(ctx, id)
	}
	return repository.Payment{}, pgx.ErrNoRows
}

func (m *mockStore) GetProduct(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockStore) GetProductBySlug(ctx context.Context, slug string) (repository.Product, error) {
	if m.GetProductBySlugFunc != nil {
		return m.GetProductBySlugFunc(ctx, slug)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockStore) GetProductForUpdate(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	if m.GetProductForUpdateFunc != nil {
		return m.GetProductForUpdateFunc(ctx, id)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockStore) GetProfileByAccountID(ctx context.Context, accountID pgtype.UUID) (repository.Profile, error) {
	if m.GetProfileByAccountIDFunc != nil {
		return m.GetProfileByAccountIDFunc(ctx, accountID)
	}
	return repository.Profile{}, pgx.ErrNoRows
}

func (m *mockStore) GetReviewByProductAndAccount(ctx context.Context, arg repository.GetReviewByProductAndAccountParams) (repository.Review, error) {
	if m.GetReviewByProductAndAccountFunc != nil {
		return m.GetReviewByProductAndAccountFunc(ctx, arg)
	}
	return repository.Review{}, pgx.ErrNoRows
}

func (m *mockStore) GetShippingMethod(ctx context.Context, id pgtype.UUID) (repository.ShippingMethod, error) {
	if m.GetShippingMethodFunc != nil {
		return m.GetShippingMethodFunc(ctx, id)
	}
	return repository.ShippingMethod{}, pgx.ErrNoRows
}

func (m *mockStore) IncrementProductStock(ctx context.Context, arg repository.IncrementProductStockParams) error {
	if m.IncrementProductStockFunc != nil {
		return m.IncrementProductStockFunc(ctx, arg)
	}
	return nil
}

func (m *mockStore) ListCategories(ctx context.Context) ([]repository.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ListDailySalesBetween(ctx context.Context, arg repository.ListDailySalesBetweenParams) ([]repository.DailySale, error) {
	if m.ListDailySalesBetweenFunc != nil {
		return m.ListDailySalesBetweenFunc(ctx, arg)
	}
	return nil, nil
}

func (m *mockStore) ListLowStockProducts(ctx context.Context, threshold int32) ([]repository.Product, error) {
	if m.ListLowStockProductsFunc != nil {
		return m.ListLowStockProductsFunc(ctx, threshold)
	}
	return nil, nil
}

func (m *mockStore) ListNotifications(ctx context.Context, accountID pgtype.UUID) ([]repository.Notification, error) {
	if m.ListNotificationsFunc != nil {
		return m.ListNotificationsFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockStore) ListOpenInventoryAlerts(ctx context.Context) ([]repository.InventoryAlert, error) {
	if m.ListOpenInventoryAlertsFunc != nil {
		return m.ListOpenInventoryAlertsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ListOrders(ctx context.Context, arg repository.ListOrdersParams) ([]repository.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, arg)
	}
	return nil, nil
}

func (m *mockStore) ListOrdersBetween(ctx context.Context, arg repository.ListOrdersBetweenParams) ([]repository.Order, error) {
	if m.ListOrdersBetweenFunc != nil {
		return m.ListOrdersBetweenFunc(ctx, arg)
	}
	return nil, nil
}

func (m *mockStore) ListOrdersByAccount(ctx context.Context, accountID pgtype.UUID) ([]repository.Order, error) {
	if m.ListOrdersByAccountFunc != nil {
		return m.ListOrdersByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockStore) ListPendingDistributorApplications(ctx context.Context) ([]repository.DistributorApplication, error) {
	if m.ListPendingDistributorApplicationsFunc != nil {
		return m.ListPendingDistributorApplicationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ListProductReviews(ctx context.Context, productID pgtype.UUID) ([]repository.Review, error) {
	if m.ListProductReviewsFunc != nil {
		return m.ListProductReviewsFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockStore) ListProducts(ctx context.Context, arg repository.ListProductsParams) ([]repository.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, arg)
	}
	return nil, nil
}

func (m *mockStore) ListProductsByCategory(ctx context.Context, categoryID pgtype.UUID) ([]repository.Product, error) {
	if m.ListProductsByCategoryFunc != nil {
		return m.ListProductsByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockStore) ListShippingMethods(ctx context.Context) ([]repository.ShippingMethod, error) {
	if m.ListShippingMethodsFunc != nil {
		return m.ListShippingMethodsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) MarkAllNotificationsRead(ctx context.Context, accountID pgtype.UUID) error {
	if m.MarkAllNotificationsReadFunc != nil {
		return m.MarkAllNotificationsReadFunc(ctx, accountID)
	}
	return nil
}

func (m *mockStore) MarkNotificationRead(ctx context.Context, arg repository.MarkNotificationReadParams) (int64, error) {
	if m.MarkNotificationReadFunc != nil {
		return m.MarkNotificationReadFunc(ctx, arg)
	}
	return 1, nil
}

func (m *mockStore) ResolveInventoryAlerts(ctx context.Context, productID pgtype.UUID) error {
	if m.ResolveInventoryAlertsFunc != nil {
		return m.ResolveInventoryAlertsFunc(ctx, productID)
	}
	return nil
}

func (m *mockStore) SetProfileKind(ctx context.Context, arg repository.SetProfileKindParams) error {
	if m.SetProfileKindFunc != nil {
		return m.SetProfileKindFunc(ctx, arg)
	}
	return nil
}

func (m *mockStore) UpdateDistributorApplicationStatus(ctx context.Context, arg repository.UpdateDistributorApplicationStatusParams) (repository.DistributorApplication, error) {
	if m.UpdateDistributorApplicationStatusFunc != nil {
		return m.UpdateDistributorApplicationStatusFunc(ctx, arg)
	}
	return repository.DistributorApplication{}, errors.New("not implemented")
}

func (m *mockStore) UpdateOrderPaymentStatus(ctx context.Context, arg repository.UpdateOrderPaymentStatusParams) error {
	if m.UpdateOrderPaymentStatusFunc != nil {
		return m.UpdateOrderPaymentStatusFunc(ctx, arg)
	}
	return nil
}

func (m *mockStore) UpdateOrderStatus(ctx context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error) {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, arg)
	}
	return repository.Order{}, errors.New("not implemented")
}

func (m *mockStore) UpdatePaymentStatus(ctx context.Context, arg repository.UpdatePaymentStatusParams) (repository.Payment, error) {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, arg)
	}
	return repository.Payment{}, errors.New("not implemented")
}

func (m *mockStore) UpdateProduct(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, arg)
	}
	return repository.Product{}, errors.New("not implemented")
}

func (m *mockStore) UpdateProductRating(ctx context.Context, arg repository.UpdateProductRatingParams) error {
	if m.UpdateProductRatingFunc != nil {
		return m.UpdateProductRatingFunc(ctx, arg)
	}
	return nil
}

func (m *mockStore) UpdateProfile(ctx context.Context, arg repository.UpdateProfileParams) (repository.Profile, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, arg)
	}
	return repository.Profile{}, errors.New("not implemented")
}

func (m *mockStore) UpsertDailySales(ctx context.Context, arg repository.UpsertDailySalesParams) (repository.DailySale, error) {
	if m.UpsertDailySalesFunc != nil {
		return m.UpsertDailySalesFunc(ctx, arg)
	}
	return repository.DailySale{}, errors.New("not implemented")
}

func (m *mockStore) UpsertInventoryAlert(ctx context.Context, arg repository.UpsertInventoryAlertParams) (repository.InventoryAlert, error) {
	if m.UpsertInventoryAlertFunc != nil {
		return m.UpsertInventoryAlertFunc(ctx, arg)
	}
	return repository.InventoryAlert{}, errors.New("not implemented")
}
