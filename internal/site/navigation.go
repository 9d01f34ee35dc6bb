// Package site is the headless model of the catalog front-end: page
// navigation, the product gallery and the two enquiry forms. Front-ends
// render its state and feed user actions back in.
package site

import (
	"errors"
	"fmt"

	"destiny-global-backend/internal/domain"
)

// Page is one of the five screens of the site
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageProducts
	PageProductDetail
	PageContact
)

var pageNames = [...]string{
	PageHome:          "home",
	PageAbout:         "about",
	PageProducts:      "products",
	PageProductDetail: "product-detail",
	PageContact:       "contact",
}

var (
	ErrNoProductSelected = errors.New("no product selected")
	ErrUnknownPage       = errors.New("unknown page")
)

func (p Page) Valid() bool {
	return p >= PageHome && p <= PageContact
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// ParsePage maps a page name back to its Page
func ParsePage(name string) (Page, error) {
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// MenuItem is a header/footer navigation entry
type MenuItem struct {
	Page   Page
	Label  string
	Active bool
}

// Main is the header and footer menu. Product detail is reached by picking a
// product, never from the menu.
var Main = []MenuItem{
	{Page: PageHome, Label: "Home"},
	{Page: PageAbout, Label: "About Us"},
	{Page: PageProducts, Label: "Products"},
	{Page: PageContact, Label: "Contact Us"},
}

// Menu renders the menu with the current page marked active
func Menu(current Page) []MenuItem {
	items := make([]MenuItem, 0, len(Main))
	for _, it := range Main {
		it.Active = it.Page == current
		items = append(items, it)
	}
	return items
}

// Navigator holds the current page and the selected product. The product
// detail page is only reachable while a product is selected.
type Navigator struct {
	page     Page
	selected *domain.Product
}

func NewNavigator() *Navigator {
	return &Navigator{page: PageHome}
}

func (n *Navigator) Current() Page {
	return n.page
}

// Selected returns the selected product, which survives navigation to other
// pages until another product is chosen
func (n *Navigator) Selected() *domain.Product {
	return n.selected
}

// GoTo switches page. Setting the current page again changes nothing.
func (n *Navigator) GoTo(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPage, int(p))
	}
	if p == PageProductDetail && n.selected == nil {
		return ErrNoProductSelected
	}
	n.page = p
	return nil
}

func (n *Navigator) Home()     { n.page = PageHome }
func (n *Navigator) About()    { n.page = PageAbout }
func (n *Navigator) Products() { n.page = PageProducts }
func (n *Navigator) Contact()  { n.page = PageContact }

// ShowProduct selects p and opens its detail page
func (n *Navigator) ShowProduct(p *domain.Product) error {
	if p == nil {
		return ErrNoProductSelected
	}
	n.selected = p
	n.page = PageProductDetail
	return nil
}
