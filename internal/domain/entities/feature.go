package entities

// AccessibilityFeature is a tag describing an accessibility attribute
// of a space, such as step-free access or braille signage.
type AccessibilityFeature struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"`
}
