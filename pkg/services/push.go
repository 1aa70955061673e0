package services

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"cafehub/pkg/models"
)

// PushService delivers new-order notifications to registered staff
// devices over Firebase Cloud Messaging. A disabled service (missing
// credentials) is valid and turns every send into a logged no-op.
type PushService struct {
	client *messaging.Client
	db     *gorm.DB
}

// NewPushService builds the FCM client from the given credentials file.
// An empty path returns a disabled service rather than an error.
func NewPushService(ctx context.Context, db *gorm.DB, credentialsFile string) (*PushService, error) {
	if credentialsFile == "" {
		return &PushService{db: db}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %v", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %v", err)
	}
	return &PushService{client: client, db: db}, nil
}

// Enabled reports whether FCM credentials were configured.
func (s *PushService) Enabled() bool {
	return s != nil && s.client != nil
}

// NotifyNewOrder pushes a new-order alert to every active device
// registered for the cafe. Notifications share the "new-order" tag so a
// device showing several coalesces them.
func (s *PushService) NotifyNewOrder(ctx context.Context, cafeID uint, order models.Order) error {
	if !s.Enabled() {
		log.Println("⚠️ FCM not configured, skipping push notification")
		return nil
	}

	var tokens []string
	err := s.db.WithContext(ctx).
		Model(&models.StaffDeviceToken{}).
		Where("cafe_id = ? AND is_active = ?", cafeID, true).
		Pluck("device_token", &tokens).Error
	if err != nil {
		return fmt.Errorf("failed to load device tokens: %v", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	body := fmt.Sprintf("Table %d placed an order for ₹%.2f", order.TableNumber, order.TotalAmount)
	if order.TableNumber == 0 {
		body = fmt.Sprintf("Counter order for ₹%.2f", order.TotalAmount)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: "New Order",
			Body:  body,
		},
		Data: map[string]string{
			"tag":     "new-order",
			"orderId": fmt.Sprintf("%d", order.ID),
		},
	}

	resp, err := s.client.SendMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push notifications: %v", err)
	}

	// deactivate tokens FCM reports as gone
	for i, r := range resp.Responses {
		if r.Success || r.Error == nil {
			continue
		}
		if messaging.IsRegistrationTokenNotRegistered(r.Error) {
			s.db.WithContext(ctx).
				Model(&models.StaffDeviceToken{}).
				Where("device_token = ?", tokens[i]).
				Update("is_active", false)
		}
	}

	return nil
}

// RegisterDevice stores or reactivates a staff device token.
func (s *PushService) RegisterDevice(ctx context.Context, cafeID, userID uint, token, platform string) error {
	if token == "" {
		return fmt.Errorf("device token is required")
	}
	if platform == "" {
		platform = "web"
	}

	var existing models.StaffDeviceToken
	err := s.db.WithContext(ctx).Where("device_token = ?", token).First(&existing).Error
	if err == nil {
		return s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"cafe_id":   cafeID,
			"user_id":   userID,
			"platform":  platform,
			"is_active": true,
		}).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return s.db.WithContext(ctx).Create(&models.StaffDeviceToken{
		CafeID:      cafeID,
		UserID:      userID,
		DeviceToken: token,
		Platform:    platform,
		IsActive:    true,
	}).Error
}
