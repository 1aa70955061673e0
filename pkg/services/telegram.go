package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cafehub/pkg/models"
)

// ErrTelegramNotConfigured is returned when a cafe has no bot credentials.
var ErrTelegramNotConfigured = errors.New("telegram credentials not configured for this cafe")

// TelegramService posts order alerts to a cafe's Telegram chat through
// the Bot API. Credentials are per cafe; the service itself only holds
// the API endpoint and HTTP client.
type TelegramService struct {
	BaseURL string
	Client  *http.Client
}

// NewTelegramService creates a sender against the given API base URL
// (normally https://api.telegram.org).
func NewTelegramService(baseURL string) *TelegramService {
	return &TelegramService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOrderMessage formats and delivers a new-order summary to the
// cafe's configured chat.
func (s *TelegramService) SendOrderMessage(ctx context.Context, cafe models.Cafe, order models.Order, items []models.OrderItem) error {
	if !cafe.TelegramConfigured() {
		return ErrTelegramNotConfigured
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*New order #%d*\n", order.ID)
	if order.TableNumber > 0 {
		fmt.Fprintf(&sb, "Table %d\n", order.TableNumber)
	} else {
		sb.WriteString("Counter order\n")
	}
	if order.CustomerName != nil && *order.CustomerName != "" {
		fmt.Fprintf(&sb, "Customer: %s\n", *order.CustomerName)
	}
	for _, it := range items {
		name := it.MenuItem.Name
		if name == "" {
			name = fmt.Sprintf("item %d", it.MenuItemID)
		}
		fmt.Fprintf(&sb, "%d x %s\n", it.Quantity, name)
	}
	fmt.Fprintf(&sb, "*Total:* ₹%.2f", order.TotalAmount)

	return s.SendMessage(ctx, *cafe.TelegramBotToken, *cafe.TelegramChatID, sb.String())
}

// SendMessage posts a Markdown message to a chat via the Bot API.
func (s *TelegramService) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.BaseURL, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram API returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
