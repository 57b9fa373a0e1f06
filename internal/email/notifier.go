package email

import (
	"context"
	"fmt"
	"strings"
)

// OrderStatusEmail holds the data for an order status update message.
type OrderStatusEmail struct {
	Email       string
	Name        string
	OrderNumber string
	Status      string
	Total       string
}

// WelcomeEmail holds the data for a new account welcome message.
type WelcomeEmail struct {
	Email string
	Name  string
}

// Notifier composes and sends transactional email.
type Notifier struct {
	sender      Sender
	fromAddress string
	fromName    string
}

// NewNotifier creates a new email notifier.
func NewNotifier(sender Sender, fromAddress, fromName string) *Notifier {
	return &Notifier{
		sender:      sender,
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// SendOrderStatus sends an order status update email.
func (n *Notifier) SendOrderStatus(ctx context.Context, data OrderStatusEmail) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", data.Name)
	fmt.Fprintf(&b, "Your order %s is now %s.\n", data.OrderNumber, data.Status)
	if data.Total != "" {
		fmt.Fprintf(&b, "Order total: $%s\n", data.Total)
	}
	b.WriteString("\nThanks for shopping with us.\n")

	msg := &Email{
		To:       []string{data.Email},
		From:     fmt.Sprintf("%s <%s>", n.fromName, n.fromAddress),
		Subject:  fmt.Sprintf("Order %s: %s", data.OrderNumber, data.Status),
		TextBody: b.String(),
	}

	if _, err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send order status email: %w", err)
	}
	return nil
}

// SendWelcome sends a welcome email to a newly registered account.
func (n *Notifier) SendWelcome(ctx context.Context, data WelcomeEmail) error {
	body := fmt.Sprintf("Hi %s,\n\nWelcome to %s. Your account is ready.\n", data.Name, n.fromName)

	msg := &Email{
		To:       []string{data.Email},
		From:     fmt.Sprintf("%s <%s>", n.fromName, n.fromAddress),
		Subject:  fmt.Sprintf("Welcome to %s", n.fromName),
		TextBody: body,
	}

	if _, err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
