package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// Feed returns the demo notification feed, newest first. Timestamps are
// relative to now so the feed always looks fresh.
func Feed() []domain.Notification {
	now := time.Now()

	return []domain.Notification{
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationOrder,
			Title:   "Order Delivered!",
			Message: "Your Chicken Biryani order #SB1234 has been delivered successfully. Enjoy your meal!",
			Time:    now.Add(-2 * time.Minute),
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationDelivery,
			Title:   "Out for Delivery",
			Message: "Your Mutton Biryani is on the way! Estimated delivery: 15 minutes. Track your order.",
			Time:    now.Add(-12 * time.Minute),
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationPromotion,
			Title:   "Weekend Special Offer!",
			Message: "Get 30% OFF on all Biryani orders above $25. Use code: WEEKEND30. Valid till Sunday!",
			Time:    now.Add(-1 * time.Hour),
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationOrder,
			Title:   "Order Confirmed",
			Message: "Your order for Veg Biryani has been confirmed. Estimated preparation time: 25 minutes.",
			Time:    now.Add(-2 * time.Hour),
			Read:    true,
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationPayment,
			Title:   "Payment Successful",
			Message: "Payment of $28.47 for order #SB1233 has been processed successfully via Credit Card.",
			Time:    now.Add(-2 * time.Hour),
			Read:    true,
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationPromotion,
			Title:   "Welcome Bonus!",
			Message: "Welcome to Southern Spices! Get 20% OFF on your first order. Use code: WELCOME20",
			Time:    now.Add(-24 * time.Hour),
			Read:    true,
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationReview,
			Title:   "Rate Your Experience",
			Message: "How was your recent Prawn Biryani order? Your feedback helps us improve our service.",
			Time:    now.Add(-48 * time.Hour),
			Read:    true,
		},
		{
			ID:      uuid.New(),
			Kind:    domain.NotificationGeneral,
			Title:   "New Menu Items!",
			Message: "Discover our new Hyderabadi Dum Biryani and Kolkata Biryani. Limited time special pricing!",
			Time:    now.Add(-72 * time.Hour),
			Read:    true,
		},
	}
}
