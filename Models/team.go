package Models

// TeamTask is a single line item on a member's workload card.
type TeamTask struct {
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

// TeamMember is a static roster entry shown on the dashboard and fed to the
// assistant briefing. The roster is fixed configuration, not ledger data.
type TeamMember struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Icon     string     `json:"icon"`
	Color    string     `json:"color"`
	Size     string     `json:"size"`
	Tasks    []TeamTask `json:"tasks"`
}

var TeamData = []TeamMember{
	{
		ID:       "deepak",
		Name:     "Deepak",
		Category: "Production & AI",
		Icon:     "fa-microchip",
		Color:    "blue",
		Size:     "large",
		Tasks: []TeamTask{
			{Label: "Commercial Ads (3 YouTube)"},
			{Label: "UGC Models (6 Reels)"},
			{Label: "UGC Clothing (6 Reels)"},
			{Label: "Blending Images", Count: 10},
			{Label: "Cloth Set", Count: 10},
			{Label: "Envato Videos", Count: 4},
			{Label: "AI Agents (Email, Support, Lead Calling, WhatsApp)"},
			{Label: "Email Templates", Count: 5},
			{Label: "Product Listing (Party wear fixes)"},
			{Label: "Promo Creation (Quora/Discord/Reddit)"},
			{Label: "Final Banners", Count: 3},
			{Label: "Meta Ad Content"},
			{Label: "Packaging & Paper Bag Design"},
		},
	},
	{
		ID:       "rekha",
		Name:     "Rekha",
		Category: "Operations & Logistics",
		Icon:     "fa-box-open",
		Color:    "purple",
		Size:     "large",
		Tasks: []TeamTask{
			{Label: "3D Printing Hand"},
			{Label: "Hampers"},
			{Label: "Selfie Point Stand"},
			{Label: "Product Packaging"},
			{Label: "Certification"},
			{Label: "Tshirt, Tote Bag, Scarf, Saree"},
			{Label: "Banners"},
			{Label: "Venue Management"},
			{Label: "Event Planner"},
			{Label: "Billboard Booking"},
			{Label: "Casual Credentials"},
			{Label: "Anchor & Media Management"},
		},
	},
	{
		ID:       "karishma",
		Name:     "Karishma",
		Category: "Public Relations",
		Icon:     "fa-bullhorn",
		Color:    "rose",
		Size:     "medium",
		Tasks: []TeamTask{
			{Label: "Celebrities Coordination"},
			{Label: "College Students Outreach"},
			{Label: "Media Relations"},
			{Label: "Sponsorships"},
			{Label: "Venue Coordination"},
			{Label: "Event Planner"},
			{Label: "Standup Comedian coordination"},
		},
	},
	{
		ID:       "jayesh",
		Name:     "Jayesh",
		Category: "Backend & Integration",
		Icon:     "fa-database",
		Color:    "emerald",
		Size:     "medium",
		Tasks: []TeamTask{
			{Label: "Email Template Integration"},
			{Label: "Admin Cancellation Templates"},
			{Label: "Forgot Number Template"},
			{Label: "Coupon Code Logic"},
		},
	},
	{
		ID:       "sameer",
		Name:     "Sameer",
		Category: "Legal Compliance",
		Icon:     "fa-scale-balanced",
		Color:    "amber",
		Size:     "small",
		Tasks: []TeamTask{
			{Label: "Humanize: Terms & Conditions"},
			{Label: "Humanize: FAQs"},
			{Label: "Humanize: Refund/Exchange Policy"},
			{Label: "Humanize: Shipping Policy"},
			{Label: "Humanize: Privacy Policy"},
		},
	},
	{
		ID:       "qa-team",
		Name:     "Purva & Ayush",
		Category: "Product Catalog",
		Icon:     "fa-check-double",
		Color:    "cyan",
		Size:     "small",
		Tasks: []TeamTask{
			{Label: "New Product Images"},
			{Label: "Listing Recheck (Product Images)"},
		},
	},
	{
		ID:       "mukesh",
		Name:     "Mukesh",
		Category: "Web Dev",
		Icon:     "fa-code",
		Color:    "indigo",
		Size:     "small",
		Tasks: []TeamTask{
			{Label: "Website Membership Module"},
		},
	},
}
