package events

import (
	"time"

	"github.com/parokitomang/content-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSliderCreated EventType = "slider_created"
	EventMenuCreated   EventType = "menu_created"
)

// Actor records who triggered an event.
type Actor struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ContentID string      `json:"content_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SliderCreatedPayload payload.
type SliderCreatedPayload struct {
	Link   *string `json:"link,omitempty"`
	Order  int     `json:"order"`
	Active bool    `json:"active"`
}

// MenuCreatedPayload payload.
type MenuCreatedPayload struct {
	Title  string  `json:"title"`
	Route  *string `json:"route,omitempty"`
	Link   *string `json:"link,omitempty"`
	Order  int     `json:"order"`
	Active bool    `json:"active"`
}
