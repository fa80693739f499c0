package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationOrder     NotificationKind = "order"
	NotificationPromotion NotificationKind = "promotion"
	NotificationDelivery  NotificationKind = "delivery"
	NotificationPayment   NotificationKind = "payment"
	NotificationGeneral   NotificationKind = "general"
	NotificationReview    NotificationKind = "review"
)

type Notification struct {
	ID      uuid.UUID
	Kind    NotificationKind
	Title   string
	Message string
	Time    time.Time
	Read    bool
}
