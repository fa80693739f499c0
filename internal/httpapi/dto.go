package httpapi

import (
	"time"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/store"
)

type menuItemDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Category     string   `json:"category"`
	Price        string   `json:"price"`
	PriceDisplay string   `json:"priceDisplay"`
	Rating       float64  `json:"rating"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Image        string   `json:"image"`
}

func toMenuItemDTO(item domain.MenuItem) menuItemDTO {
	return menuItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Type:         item.Type,
		Category:     item.Category,
		Price:        item.Price.Amount.StringFixed(2),
		PriceDisplay: item.Price.Display(),
		Rating:       item.Rating,
		Description:  item.Description,
		Ingredients:  item.Ingredients,
		Image:        item.Image,
	}
}

func toMenuItemDTOs(items []domain.MenuItem) []menuItemDTO {
	dtos := make([]menuItemDTO, len(items))
	for i, item := range items {
		dtos[i] = toMenuItemDTO(item)
	}
	return dtos
}

type cartLineDTO struct {
	Item      menuItemDTO `json:"item"`
	Quantity  int         `json:"quantity"`
	LineTotal string      `json:"lineTotal"`
}

type cartDTO struct {
	Items        []cartLineDTO `json:"items"`
	TotalItems   int           `json:"totalItems"`
	TotalAmount  string        `json:"totalAmount"`
	TotalDisplay string        `json:"totalDisplay"`
}

func toCartDTO(state domain.CartState) cartDTO {
	lines := make([]cartLineDTO, len(state.Lines))
	for i, line := range state.Lines {
		lines[i] = cartLineDTO{
			Item:      toMenuItemDTO(line.Item),
			Quantity:  line.Quantity,
			LineTotal: line.Item.Price.Mul(int64(line.Quantity)).Display(),
		}
	}

	return cartDTO{
		Items:        lines,
		TotalItems:   state.TotalItems,
		TotalAmount:  state.TotalAmount.StringFixed(2),
		TotalDisplay: "$" + state.TotalAmount.StringFixed(2),
	}
}

type sessionDTO struct {
	Status string       `json:"status"`
	User   *domain.User `json:"user,omitempty"`
}

func toSessionDTO(session store.Session) sessionDTO {
	return sessionDTO{
		Status: session.Status.String(),
		User:   session.User,
	}
}

type notificationDTO struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
}

func toNotificationDTOs(items []domain.Notification) []notificationDTO {
	dtos := make([]notificationDTO, len(items))
	for i, n := range items {
		dtos[i] = notificationDTO{
			ID:      n.ID.String(),
			Kind:    string(n.Kind),
			Title:   n.Title,
			Message: n.Message,
			Time:    n.Time,
			Read:    n.Read,
		}
	}
	return dtos
}
