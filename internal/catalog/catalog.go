// Package catalog loads the static product catalog compiled into the binary.
//
// The catalog is plain data: editing data/catalog.yaml changes what every
// client shows without touching rendering code.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"destiny-global-backend/internal/domain"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var ErrProductNotFound = errors.New("product not found")

// Catalog is an ordered, read-only set of products plus the company profile
type Catalog struct {
	company  domain.Company
	products []domain.Product
	byID     map[string]int
}

type rawCatalog struct {
	Company  rawCompany   `yaml:"company"`
	Products []rawProduct `yaml:"products"`
}

type rawCompany struct {
	Name         string   `yaml:"name"`
	Brand        string   `yaml:"brand"`
	Tagline      string   `yaml:"tagline"`
	Slogan       string   `yaml:"slogan"`
	About        []string `yaml:"about"`
	Phone        string   `yaml:"phone"`
	SupportEmail string   `yaml:"support_email"`
	WhatsApp     string   `yaml:"whatsapp"`
	SalesEmail   string   `yaml:"sales_email"`
}

type rawProduct struct {
	ID               string    `yaml:"id"`
	Name             string    `yaml:"name"`
	Category         string    `yaml:"category"`
	ShortDescription string    `yaml:"short_description"`
	Description      string    `yaml:"description"`
	Image            string    `yaml:"image"`
	Images           []string  `yaml:"images"`
	Features         []string  `yaml:"features"`
	Applications     []string  `yaml:"applications"`
	Specifications   yaml.Node `yaml:"specifications"`
}

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which tests catch at build time.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		company: domain.Company(raw.Company),
		byID:    make(map[string]int, len(raw.Products)),
	}
	if c.company.Brand == "" {
		c.company.Brand = c.company.Name
	}

	for i, rp := range raw.Products {
		p, err := rp.toProduct()
		if err != nil {
			return nil, fmt.Errorf("product #%d: %w", i+1, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product #%d: duplicate id %q", i+1, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

func (rp rawProduct) toProduct() (domain.Product, error) {
	id := strings.TrimSpace(rp.ID)
	if id == "" {
		return domain.Product{}, errors.New("id is required")
	}
	if strings.TrimSpace(rp.Name) == "" {
		return domain.Product{}, fmt.Errorf("%s: name is required", id)
	}
	if len(rp.Images) == 0 {
		return domain.Product{}, fmt.Errorf("%s: at least one image is required", id)
	}

	specs, err := decodeSpecs(&rp.Specifications)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", id, err)
	}

	image := rp.Image
	if image == "" {
		image = rp.Images[0]
	}

	return domain.Product{
		ID:               id,
		Name:             rp.Name,
		Category:         rp.Category,
		ShortDescription: rp.ShortDescription,
		Description:      rp.Description,
		Image:            image,
		Images:           rp.Images,
		Features:         rp.Features,
		Applications:     rp.Applications,
		Specifications:   specs,
	}, nil
}

// decodeSpecs keeps the mapping in document order
func decodeSpecs(node *yaml.Node) ([]domain.Spec, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("specifications must be a mapping (line %d)", node.Line)
	}

	specs := make([]domain.Spec, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("specification %q must be a scalar (line %d)", key.Value, val.Line)
		}
		specs = append(specs, domain.Spec{Label: key.Value, Value: val.Value})
	}
	return specs, nil
}

// Company returns the company profile
func (c *Catalog) Company() domain.Company {
	return c.company
}

// Products returns the products in catalog order
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with the given id
func (c *Catalog) Get(id string) (*domain.Product, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	p := c.products[i]
	return &p, nil
}

// Search ranks products whose id, name or category fuzzily match query.
// The best match comes first; ties keep catalog order.
func (c *Catalog) Search(query string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Products()
	}

	best := make(map[int]int)
	for i, p := range c.products {
		targets := []string{p.ID, p.Name, p.Category}
		for _, rank := range fuzzy.RankFindNormalizedFold(query, targets) {
			if d, ok := best[i]; !ok || rank.Distance < d {
				best[i] = rank.Distance
			}
		}
	}

	idx := make([]int, 0, len(best))
	for i := range best {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if best[idx[a]] != best[idx[b]] {
			return best[idx[a]] < best[idx[b]]
		}
		return idx[a] < idx[b]
	})

	out := make([]domain.Product, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.products[i])
	}
	return out
}
