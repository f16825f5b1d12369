// File: models/catalog.go
package models

// ServiceTier is one engagement option within a tiered package.
type ServiceTier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ServicePackage is one entry in the static service catalog. Price is in whole
// dollars; Duration is display text, not a parsed quantity.
type ServicePackage struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       int           `json:"price"`
	Duration    string        `json:"duration"`
	Tiers       []ServiceTier `json:"tiers,omitempty"`
}

// HasTiers reports whether selecting this package leads to tier selection.
func (p ServicePackage) HasTiers() bool {
	return len(p.Tiers) > 0
}
