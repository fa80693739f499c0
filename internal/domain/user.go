package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	MemberSince   time.Time `json:"memberSince"`
	TotalOrders   int       `json:"totalOrders"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
}
