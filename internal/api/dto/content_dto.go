package dto

import (
	"time"

	"github.com/parokitomang/content-service/internal/domain"
)

// CreateSliderRequest payload for new sliders. Active defaults to true
// when omitted.
type CreateSliderRequest struct {
	ImageBase64 string  `json:"image_base64"`
	Link        *string `json:"link"`
	Order       int     `json:"order"`
	Active      *bool   `json:"active"`
}

// CreateMenuRequest payload for new menu entries.
type CreateMenuRequest struct {
	Title  string  `json:"title"`
	Icon   string  `json:"icon"`
	Route  *string `json:"route"`
	Link   *string `json:"link"`
	Order  int     `json:"order"`
	Active *bool   `json:"active"`
}

// SliderResponse is the wire shape of a slider item.
type SliderResponse struct {
	ID          string    `json:"id"`
	ImageBase64 string    `json:"image_base64"`
	Link        *string   `json:"link"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuResponse is the wire shape of a menu item.
type MenuResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Route     *string   `json:"route"`
	Link      *string   `json:"link"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSliderResponse maps a domain slider to its wire shape.
func NewSliderResponse(item domain.SliderItem) SliderResponse {
	return SliderResponse{
		ID:          item.ID,
		ImageBase64: item.ImageBase64,
		Link:        item.Link,
		Order:       item.Order,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
	}
}

// NewSliderResponses maps a slice of domain sliders.
func NewSliderResponses(items []domain.SliderItem) []SliderResponse {
	out := make([]SliderResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewSliderResponse(item))
	}
	return out
}

// NewMenuResponse maps a domain menu item to its wire shape.
func NewMenuResponse(item domain.MenuItem) MenuResponse {
	return MenuResponse{
		ID:        item.ID,
		Title:     item.Title,
		Icon:      item.Icon,
		Route:     item.Route,
		Link:      item.Link,
		Order:     item.Order,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
	}
}

// NewMenuResponses maps a slice of domain menu items.
func NewMenuResponses(items []domain.MenuItem) []MenuResponse {
	out := make([]MenuResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewMenuResponse(item))
	}
	return out
}
