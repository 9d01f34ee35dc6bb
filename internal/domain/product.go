package domain

// Spec is a single technical specification row, e.g. "Moisture Content: 8-10%"
type Spec struct {
	Label string
	Value string
}

// Product is an immutable catalog entry
type Product struct {
	ID               string
	Name             string
	Category         string
	ShortDescription string
	Description      string
	Image            string
	Images           []string
	Features         []string
	Applications     []string
	Specifications   []Spec
}

// Company holds the static company profile shown on pages and in emails
type Company struct {
	Name         string
	Brand        string
	Tagline      string
	Slogan       string
	About        []string
	Phone        string
	SupportEmail string
	WhatsApp     string
	SalesEmail   string
}

// WhatsAppURL returns the wa.me link for the company WhatsApp number
func (c Company) WhatsAppURL() string {
	digits := make([]rune, 0, len(c.WhatsApp))
	for _, r := range c.WhatsApp {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	return "https://wa.me/" + string(digits)
}
