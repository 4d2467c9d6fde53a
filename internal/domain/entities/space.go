package entities

import (
	"time"
)

// Space represents a physical location in the directory
type Space struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Type         string     `json:"type" db:"type"`
	Category     string     `json:"category" db:"category"`
	Address      string     `json:"address" db:"address"`
	Description  string     `json:"description" db:"description"`
	ContactEmail string     `json:"contactEmail" db:"contact_email"`
	Website      string     `json:"website" db:"website"`
	Phone        string     `json:"phone" db:"phone"`
	Latitude     *float64   `json:"latitude" db:"latitude"`
	Longitude    *float64   `json:"longitude" db:"longitude"`
	Indoor       bool       `json:"indoor" db:"indoor"`
	Outdoor      bool       `json:"outdoor" db:"outdoor"`
	Wifi         bool       `json:"wifi" db:"wifi"`
	Parking      bool       `json:"parking" db:"parking"`
	CreatedBy    *int64     `json:"created_by" db:"created_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`

	// Loaded relations, not columns.
	Features []*AccessibilityFeature `json:"features,omitempty" db:"-"`
	Reviews  []*Review               `json:"reviews,omitempty" db:"-"`

	// CreatorName carries the resolved creator's display name when the
	// creator reference still exists. Nil for orphaned spaces. The json
	// tag matters: cached entries round-trip through JSON.
	CreatorName *string `json:"creator_name,omitempty" db:"-"`
}

// Coordinates returns the [latitude, longitude] pair when both values
// are stored, an empty slice otherwise. An explicit 0,0 is a valid
// coordinate; only null suppresses the pair.
func (s *Space) Coordinates() []float64 {
	if s.Latitude == nil || s.Longitude == nil {
		return []float64{}
	}
	return []float64{*s.Latitude, *s.Longitude}
}

// SpaceView is the external projection of a Space with derived fields.
type SpaceView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Category    string        `json:"category"`
	Address     string        `json:"address"`
	Description string        `json:"description"`
	Website     string        `json:"website"`
	Phone       string        `json:"phone"`
	Rating      *float64      `json:"rating"`
	ReviewCount int           `json:"reviewCount"`
	Features    []string      `json:"features"`
	Indoor      bool          `json:"indoor"`
	Outdoor     bool          `json:"outdoor"`
	Wifi        bool          `json:"wifi"`
	Parking     bool          `json:"parking"`
	Coordinates []float64     `json:"coordinates"`
	OwnerID     *int64        `json:"ownerId"`
	CreatedBy   *string       `json:"createdBy"`
	Reviews     []*ReviewView `json:"reviews,omitempty"`
}

// CategoryView summarizes a category for the category listing.
type CategoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}
