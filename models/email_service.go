package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail, orderID string, items []OrderItem, total decimal.Decimal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - ShopHub", shortOrderID(orderID)))

	var itemRows strings.Builder
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemRows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 12px; border-bottom: 1px solid #e2e8f0;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e2e8f0; text-align: center;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #e2e8f0; text-align: right;">$%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e2e8f0; text-align: right;">$%s</td>
			</tr>`,
			item.Title, item.Quantity, item.Price.StringFixed(2), lineTotal.StringFixed(2)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333333; max-width: 600px; margin: 0 auto; }
        .header { background-color: #f8fafc; padding: 30px 20px; text-align: center; border-bottom: 2px solid #e2e8f0; }
        .logo { font-size: 28px; font-weight: 600; color: #1f2937; }
        .content { padding: 30px 20px; }
        .order-number { background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin-bottom: 25px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th { background-color: #f9fafb; text-align: left; padding: 15px 12px; font-weight: 600; color: #374151; border-bottom: 2px solid #e5e7eb; }
        .total-row td { padding: 15px 12px; font-size: 18px; font-weight: 600; background-color: #f9fafb; border-top: 2px solid #e5e7eb; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">ShopHub</div>
        <p>Thank you for your order!</p>
    </div>
    <div class="content">
        <div class="order-number">
            <h2>Order #%s</h2>
        </div>
        <table>
            <tr><th>Item</th><th style="text-align: center;">Qty</th><th style="text-align: right;">Price</th><th style="text-align: right;">Subtotal</th></tr>
            %s
            <tr class="total-row"><td colspan="3">Total</td><td style="text-align: right;">$%s</td></tr>
        </table>
        <p>Your order has been received and is being processed. You can follow its status from your order history.</p>
    </div>
    <div class="footer">
        <p>This is an automated email. Please do not reply.</p>
        <p>&copy; 2026 ShopHub. All rights reserved.</p>
    </div>
</body>
</html>
	`, shortOrderID(orderID), itemRows.String(), total.StringFixed(2))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func shortOrderID(orderID string) string {
	if i := strings.Index(orderID, "-"); i > 0 {
		return orderID[:i]
	}
	return orderID
}
