package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/hazelbrook/saffron/internal/domain"
)

// Response shapes for the JSON API. Money fields are serialized as decimal
// strings to avoid float rounding on the wire.

type productResponse struct {
	ID             string `json:"id"`
	CategoryID     string `json:"category_id,omitempty"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description,omitempty"`
	OriginCountry  string `json:"origin_country,omitempty"`
	HeatLevel      int32  `json:"heat_level"`
	RetailPrice    string `json:"retail_price"`
	WholesalePrice string `json:"wholesale_price"`
	BoxQuantity    int32  `json:"box_quantity"`
	Stock          int32  `json:"stock"`
	StockStatus    string `json:"stock_status"`
	Active         bool   `json:"active"`
	ImageURL       string `json:"image_url,omitempty"`
	RatingAverage  string `json:"rating_average"`
	ReviewCount    int32  `json:"review_count"`
	CreatedAt      string `json:"created_at"`
}

func toProductResponse(p domain.Product) productResponse {
	resp := productResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		OriginCountry:  p.OriginCountry,
		HeatLevel:      int32(p.HeatLevel),
		RetailPrice:    p.RetailPrice.StringFixed(2),
		WholesalePrice: p.WholesalePrice.StringFixed(2),
		BoxQuantity:    p.BoxQuantity,
		Stock:          p.Stock,
		StockStatus:    string(p.StockStatus()),
		Active:         p.Active,
		ImageURL:       p.ImageURL,
		RatingAverage:  p.RatingAverage.StringFixed(2),
		ReviewCount:    p.ReviewCount,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.CategoryID != uuid.Nil {
		resp.CategoryID = p.CategoryID.String()
	}
	return resp
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

type reviewResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	AccountID string `json:"account_id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toReviewResponse(rev domain.Review) reviewResponse {
	return reviewResponse{
		ID:        rev.ID.String(),
		ProductID: rev.ProductID.String(),
		AccountID: rev.AccountID.String(),
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt.Format(time.RFC3339),
	}
}

type orderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int32  `json:"quantity"`
	BoxQuantity int32  `json:"box_quantity,omitempty"`
	Wholesale   bool   `json:"wholesale"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type paymentResponse struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	Amount         string `json:"amount"`
	Method         string `json:"method"`
	TransactionRef string `json:"transaction_ref,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

func toPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		ID:             p.ID.String(),
		OrderID:        p.OrderID.String(),
		Amount:         p.Amount.StringFixed(2),
		Method:         p.Method,
		TransactionRef: p.TransactionRef,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

type orderResponse struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"order_number"`
	AccountID     string `json:"account_id"`
	Kind          string `json:"kind"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	Subtotal     string `json:"subtotal"`
	TaxAmount    string `json:"tax_amount"`
	ShippingCost string `json:"shipping_cost"`
	Total        string `json:"total"`

	ShippingName       string `json:"shipping_name,omitempty"`
	ShippingAddress    string `json:"shipping_address,omitempty"`
	ShippingCity       string `json:"shipping_city,omitempty"`
	ShippingRegion     string `json:"shipping_region,omitempty"`
	ShippingPostalCode string `json:"shipping_postal_code,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`

	AdminNotes string `json:"admin_notes,omitempty"`

	CreatedAt   string  `json:"created_at"`
	ShippedAt   *string `json:"shipped_at,omitempty"`
	DeliveredAt *string `json:"delivered_at,omitempty"`

	Items    []orderItemResponse `json:"items,omitempty"`
	Payments []paymentResponse   `json:"payments,omitempty"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		AccountID:     o.AccountID.String(),
		Kind:          string(o.Kind),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),

		Subtotal:     o.Subtotal.StringFixed(2),
		TaxAmount:    o.TaxAmount.StringFixed(2),
		ShippingCost: o.ShippingCost.StringFixed(2),
		Total:        o.Total.StringFixed(2),

		ShippingName:       o.ShippingName,
		ShippingAddress:    o.ShippingAddress,
		ShippingCity:       o.ShippingCity,
		ShippingRegion:     o.ShippingRegion,
		ShippingPostalCode: o.ShippingPostalCode,
		ShippingCountry:    o.ShippingCountry,

		AdminNotes: o.AdminNotes,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if o.ShippedAt != nil {
		s := o.ShippedAt.Format(time.RFC3339)
		resp.ShippedAt = &s
	}
	if o.DeliveredAt != nil {
		s := o.DeliveredAt.Format(time.RFC3339)
		resp.DeliveredAt = &s
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			BoxQuantity: item.BoxQuantity,
			Wholesale:   item.Wholesale,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}
	for _, p := range o.Payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}
	return resp
}

type accountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

type profileResponse struct {
	ID                 string `json:"id"`
	AccountID          string `json:"account_id"`
	Kind               string `json:"kind"`
	Phone              string `json:"phone,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	ShippingAddress    string `json:"shipping_address,omitempty"`
	ShippingCity       string `json:"shipping_city,omitempty"`
	ShippingRegion     string `json:"shipping_region,omitempty"`
	ShippingPostalCode string `json:"shipping_postal_code,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:                 p.ID.String(),
		AccountID:          p.AccountID.String(),
		Kind:               string(p.Kind),
		Phone:              p.Phone,
		CompanyName:        p.CompanyName,
		ShippingAddress:    p.ShippingAddress,
		ShippingCity:       p.ShippingCity,
		ShippingRegion:     p.ShippingRegion,
		ShippingPostalCode: p.ShippingPostalCode,
		ShippingCountry:    p.ShippingCountry,
	}
}

type applicationResponse struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	CompanyName string  `json:"company_name"`
	TaxID       string  `json:"tax_id,omitempty"`
	Message     string  `json:"message,omitempty"`
	Status      string  `json:"status"`
	ReviewNote  string  `json:"review_note,omitempty"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func toApplicationResponse(a *domain.DistributorApplication) applicationResponse {
	resp := applicationResponse{
		ID:          a.ID.String(),
		AccountID:   a.AccountID.String(),
		CompanyName: a.CompanyName,
		TaxID:       a.TaxID,
		Message:     a.Message,
		Status:      string(a.Status),
		ReviewNote:  a.ReviewNote,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if a.ReviewedAt != nil {
		s := a.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}

type notificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

type statisticsResponse struct {
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      string         `json:"total_revenue"`
	AverageOrderValue string         `json:"average_order_value"`
	StatusCounts      map[string]int `json:"status_counts"`
	RetailOrders      int            `json:"retail_orders"`
	RetailRevenue     string         `json:"retail_revenue"`
	WholesaleOrders   int            `json:"wholesale_orders"`
	WholesaleRevenue  string         `json:"wholesale_revenue"`
}

func toStatisticsResponse(s domain.OrderStatistics) statisticsResponse {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[string(status)] = n
	}
	return statisticsResponse{
		TotalOrders:       s.TotalOrders,
		TotalRevenue:      s.TotalRevenue.StringFixed(2),
		AverageOrderValue: s.AverageOrderValue.StringFixed(2),
		StatusCounts:      counts,
		RetailOrders:      s.RetailOrders,
		RetailRevenue:     s.RetailRevenue.StringFixed(2),
		WholesaleOrders:   s.WholesaleOrders,
		WholesaleRevenue:  s.WholesaleRevenue.StringFixed(2),
	}
}

type dailySalesResponse struct {
	Date         string `json:"date"`
	OrdersCount  int32  `json:"orders_count"`
	Revenue      string `json:"revenue"`
	UnitsSold    int32  `json:"units_sold"`
	NewCustomers int32  `json:"new_customers"`
}

func toDailySalesResponse(d domain.DailySales) dailySalesResponse {
	return dailySalesResponse{
		Date:         d.Date.Format("2006-01-02"),
		OrdersCount:  d.OrdersCount,
		Revenue:      d.Revenue.StringFixed(2),
		UnitsSold:    d.UnitsSold,
		NewCustomers: d.NewCustomers,
	}
}

type alertResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
	Stock     int32  `json:"stock"`
	Resolved  bool   `json:"resolved"`
	CreatedAt string `json:"created_at"`
}

func toAlertResponse(a domain.InventoryAlert) alertResponse {
	return alertResponse{
		ID:        a.ID.String(),
		ProductID: a.ProductID.String(),
		Status:    string(a.Status),
		Stock:     a.Stock,
		Resolved:  a.Resolved,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
