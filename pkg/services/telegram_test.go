package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafehub/pkg/models"
)

func configuredCafe(token, chat string) models.Cafe {
	return models.Cafe{ID: 1, Name: "Test Cafe", TelegramBotToken: &token, TelegramChatID: &chat}
}

func TestSendOrderMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	svc := NewTelegramService(srv.URL)
	name := "Nora"
	order := models.Order{ID: 12, TableNumber: 4, TotalAmount: 11.50, CustomerName: &name}
	items := []models.OrderItem{
		{MenuItemID: 1, Quantity: 2, MenuItem: models.MenuItem{Name: "Latte"}},
		{MenuItemID: 2, Quantity: 1, MenuItem: models.MenuItem{Name: "Cheesecake"}},
	}

	err := svc.SendOrderMessage(context.Background(), configuredCafe("bot-abc", "555"), order, items)
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if gotPath != "/botbot-abc/sendMessage" {
		t.Errorf("path = %s, want /botbot-abc/sendMessage", gotPath)
	}
	if gotBody["chat_id"] != "555" {
		t.Errorf("chat_id = %s, want 555", gotBody["chat_id"])
	}
	if gotBody["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %s, want Markdown", gotBody["parse_mode"])
	}
	text := gotBody["text"]
	for _, want := range []string{"*New order #12*", "Table 4", "2 x Latte", "1 x Cheesecake", "*Total:*"} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q:\n%s", want, text)
		}
	}
}

func TestSendOrderMessageUnconfigured(t *testing.T) {
	svc := NewTelegramService("http://unused")
	err := svc.SendOrderMessage(context.Background(), models.Cafe{ID: 1}, models.Order{ID: 1}, nil)
	if !errors.Is(err, ErrTelegramNotConfigured) {
		t.Fatalf("expected ErrTelegramNotConfigured, got %v", err)
	}
}

func TestSendMessageUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"bad token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewTelegramService(srv.URL)
	err := svc.SendMessage(context.Background(), "bad", "1", "hi")
	if err == nil {
		t.Fatal("expected an error from the upstream 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}
