package utils

import (
	"fmt"
	"os"

	"foodie-express-api/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendOrderConfirmation emails the customer after an order is placed. When no
// SENDGRID_API_KEY is configured the send is skipped silently so local setups
// work without an account.
func SendOrderConfirmation(user *models.User, order *models.Order) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := mail.NewEmail("FoodieExpress", getEnv("EMAIL_SENDER", "orders@foodie-express.local"))
	to := mail.NewEmail(user.Name, user.Email)
	subject := "Order Confirmation"

	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order (ID: %s)!\n\nTotal Amount: $%.2f\nPayment Method: %s\n\nWe'll let you know when it's on the way.",
		user.Name, order.ID, order.TotalAmount, order.PaymentMethod,
	)
	htmlBody := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order (ID: %s)!<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong><br><br>We'll let you know when it's on the way.",
		user.Name, order.ID, order.TotalAmount, order.PaymentMethod,
	)

	message := mail.NewSingleEmail(from, subject, to, body, htmlBody)
	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
