package domain

import "time"

// SliderItem is a homepage carousel entry. Images are stored inline as
// base64 rather than in object storage.
type SliderItem struct {
	ID          string
	ImageBase64 string
	Link        *string
	Order       int
	Active      bool
	CreatedAt   time.Time
}

// MenuItem is a navigation entry. Route points inside the app, Link to
// an external URL; either may be unset.
type MenuItem struct {
	ID        string
	Title     string
	Icon      string
	Route     *string
	Link      *string
	Order     int
	Active    bool
	CreatedAt time.Time
}
