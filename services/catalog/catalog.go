// File: services/catalog/catalog.go
package catalog

import (
	"fmt"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
)

// packages is the static service catalog. Defined once, immutable at runtime;
// callers always receive copies.
var packages = []models.ServicePackage{
	{
		ID:          "yearly-retainer",
		Title:       "The Sovereign Retainer",
		Description: "Ultimate dominion. A yearly contract guaranteeing 24/7 priority access to our architecture team. Immediate crisis intervention, continuous infrastructure evolution, and dedicated shadow CTO services on demand.",
		Price:       150000,
		Duration:    "12 Months / 24-7 Access",
	},
	{
		ID:          "web-elite",
		Title:       "Bespoke Web Experience",
		Description: "A digital flagship. Custom React/Next.js architecture, WebGL animations, and pixel-perfect responsive design that commands authority.",
		Price:       8500,
		Duration:    "4-6 Weeks",
	},
	{
		ID:          "mobile-app",
		Title:       "Native Mobile Sanctum",
		Description: "Extend your dominion to the palm of the hand. High-performance native iOS (Swift) and Android (Kotlin) development with offline-first architecture.",
		Price:       35000,
		Duration:    "12-16 Weeks",
	},
	{
		ID:          "full-stack",
		Title:       "Platform Architecture",
		Description: "The foundation of your empire. Scalable back-end (Node/Python), database design, and high-performance API development.",
		Price:       18000,
		Duration:    "8-10 Weeks",
		Tiers: []models.ServiceTier{
			{
				ID:          "fs-project",
				Name:        "Foundation (Project)",
				Price:       18000,
				Period:      "One-time",
				Features:    []string{"Full Stack MVP Build", "Scalable DB Architecture", "API Development", "30 Days Support"},
				Description: "Perfect for launching a new product.",
			},
			{
				ID:          "fs-monthly",
				Name:        "Evolution (Retainer)",
				Price:       5000,
				Period:      "/ Month",
				Features:    []string{"Continuous Feature Dev", "Server Maintenance", "Priority Bug Fixes", "Weekly Code Reviews"},
				Description: "For growing platforms needing constant iteration.",
			},
			{
				ID:          "fs-yearly",
				Name:        "Empire (Yearly)",
				Price:       50000,
				Period:      "/ Year",
				Features:    []string{"Dedicated Lead Developer", "Unlimited Revisions", "24/7 Uptime Monitoring", "Shadow CTO Access"},
				Description: "Maximum priority and dedicated resources.",
			},
		},
	},
	{
		ID:          "marketing-auto",
		Title:       "Growth Autopilot",
		Description: "Marketing infrastructure that runs while you sleep. Custom CRMs, pixel tracking, and automated funnel sequences.",
		Price:       9500,
		Duration:    "3-4 Weeks",
		Tiers: []models.ServiceTier{
			{
				ID:          "ma-project",
				Name:        "Launchpad (Project)",
				Price:       9500,
				Period:      "One-time",
				Features:    []string{"Funnel Architecture", "CRM Integration", "Pixel/Analytics Setup", "3 Email Sequences"},
				Description: "Get your system live and running.",
			},
			{
				ID:          "ma-monthly",
				Name:        "Cruise Control (Retainer)",
				Price:       3500,
				Period:      "/ Month",
				Features:    []string{"Campaign Optimization", "A/B Testing", "Audience Refinement", "Weekly Reporting"},
				Description: "Ongoing management and optimization.",
			},
			{
				ID:          "ma-yearly",
				Name:        "Dominance (Yearly)",
				Price:       35000,
				Period:      "/ Year",
				Features:    []string{"Full-Service Agency Mode", "Content Strategy", "Influencer Outreach", "Quarterly Summits"},
				Description: "Complete hands-off growth management.",
			},
		},
	},
	{
		ID:          "data-suite",
		Title:       "Executive Intelligence Suite",
		Description: "See the unseen. Custom-built analytical dashboards consolidating all data streams into a single \"God View\" for executive decision making.",
		Price:       6000,
		Duration:    "3 Weeks",
	},
	{
		ID:          "reputation-arch",
		Title:       "Reputation Architecture",
		Description: "Control the narrative. Advanced SEO suppression of negatives, wiki-style authority building, and elite press release distribution networks.",
		Price:       4500,
		Duration:    "Monthly Retainer",
	},
	{
		ID:          "social-arch",
		Title:       "Social Ecosystem Setup",
		Description: "Complete channel architecture. Bot integration for auto-replies, bio optimization, and cross-platform content pipeline setup.",
		Price:       2800,
		Duration:    "1 Week",
	},
	{
		ID:          "infra-sec",
		Title:       "Fortress Infrastructure",
		Description: "Enterprise-grade security suite. Cloudflare configuration, Advanced SSL/TLS termination, DDoS protection, and header hardening.",
		Price:       1500,
		Duration:    "3 Days",
	},
}

// List returns the full catalog.
func List() []models.ServicePackage {
	out := make([]models.ServicePackage, len(packages))
	copy(out, packages)
	return out
}

// GetByID returns the catalog entry with the given id.
func GetByID(id string) (*models.ServicePackage, error) {
	for _, p := range packages {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, fmt.Errorf("service %q not found in catalog", id)
}

// FindTier returns the tier with the given id within a package.
func FindTier(pkg models.ServicePackage, tierID string) (*models.ServiceTier, error) {
	for _, t := range pkg.Tiers {
		if t.ID == tierID {
			tier := t
			return &tier, nil
		}
	}
	return nil, fmt.Errorf("tier %q not found in service %q", tierID, pkg.ID)
}
