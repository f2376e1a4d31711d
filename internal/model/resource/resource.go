package resource

// Kind selects the action button rendered for a helpline.
type Kind string

const (
	KindPrimary   Kind = "primary"
	KindSecondary Kind = "secondary"
	KindEmergency Kind = "emergency"
)

// Helpline is a phone or text contact shown on the emergency panel.
type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Kind        Kind   `json:"type"`
}

// Website is an external wellness resource.
type Website struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SeedHelplines provides the default emergency contacts.
func SeedHelplines() []Helpline {
	return []Helpline{
		{
			Name:        "National Crisis Helpline",
			Number:      "14416",
			Description: "24/7 mental health crisis support",
			Kind:        KindPrimary,
		},
		{
			Name:        "Crisis Text Line",
			Number:      "Text HOME to 741741",
			Description: "Free crisis counseling via text",
			Kind:        KindSecondary,
		},
		{
			Name:        "Emergency Services",
			Number:      "911",
			Description: "For immediate emergency situations",
			Kind:        KindEmergency,
		},
	}
}

// SeedWebsites provides the default online resources.
func SeedWebsites() []Website {
	return []Website{
		{Name: "MentalHealth.gov", URL: "https://www.mentalhealth.gov", Description: "Official government mental health resources"},
		{Name: "NIMH", URL: "https://www.nimh.nih.gov", Description: "National Institute of Mental Health"},
		{Name: "Psychology Today", URL: "https://www.psychologytoday.com", Description: "Find therapists and mental health resources"},
	}
}
