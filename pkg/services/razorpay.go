package services

import (
	"fmt"
	"math"

	"github.com/razorpay/razorpay-go"

	"cafehub/pkg/config"
)

var razorpayClient *razorpay.Client

// InitRazorpay initializes the Razorpay client used for invoice payment
// links. Missing credentials disable the integration with a warning.
func InitRazorpay() error {
	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret

	if keyID == "" || keySecret == "" {
		fmt.Println("⚠️ Razorpay credentials not set, payment links disabled")
		return nil
	}

	razorpayClient = razorpay.NewClient(keyID, keySecret)
	return nil
}

// RazorpayEnabled reports whether payment links can be created.
func RazorpayEnabled() bool {
	return razorpayClient != nil
}

// CreateInvoicePaymentLink creates a shareable Razorpay payment link for
// an invoice and returns its short URL.
func CreateInvoicePaymentLink(invoiceNumber string, amount float64, customerName string) (string, error) {
	if razorpayClient == nil {
		return "", fmt.Errorf("razorpay client not initialized")
	}

	// Razorpay amounts are in paise
	amountInPaise := math.Round(amount * 100)

	data := map[string]interface{}{
		"amount":      amountInPaise,
		"currency":    "INR",
		"description": fmt.Sprintf("Invoice %s", invoiceNumber),
		"notes": map[string]interface{}{
			"invoice_number": invoiceNumber,
		},
	}
	if customerName != "" {
		data["customer"] = map[string]interface{}{"name": customerName}
	}

	body, err := razorpayClient.PaymentLink.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create payment link: %v", err)
	}

	shortURL, ok := body["short_url"].(string)
	if !ok || shortURL == "" {
		return "", fmt.Errorf("payment link response missing short_url")
	}
	return shortURL, nil
}
