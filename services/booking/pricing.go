package booking

import (
	"fmt"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
)

// ApplyTier derives a new package from a base package and one of its tiers.
// The base is never mutated: title gets the tier name suffixed, price and
// duration come from the tier, and the description falls back to the base's
// when the tier supplies none.
func ApplyTier(pkg models.ServicePackage, tier models.ServiceTier) models.ServicePackage {
	derived := pkg
	derived.Title = fmt.Sprintf("%s - %s", pkg.Title, tier.Name)
	derived.Price = tier.Price
	derived.Duration = tier.Period
	if tier.Description != "" {
		derived.Description = tier.Description
	}
	return derived
}
