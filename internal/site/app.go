package site

import (
	"context"
	"sync"
	"time"

	"destiny-global-backend/internal/catalog"
	"destiny-global-backend/internal/domain"
)

// Options tunes the timers of an App. Zero values pick the defaults and
// negative ones disable the timer.
type Options struct {
	AutoAdvance         time.Duration
	ConfirmationTimeout time.Duration
	OnGalleryChange     func(GalleryState)
	OnFormChange        func(FormKind, FormState)
}

// App wires navigation, the gallery and both forms over one catalog.
// Leaving the product detail page closes the lightbox.
type App struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	nav *Navigator

	gallery     *Gallery
	contactForm *Form
	productForm *Form
}

func NewApp(cat *catalog.Catalog, client Submitter, opts Options) *App {
	if opts.AutoAdvance == 0 {
		opts.AutoAdvance = DefaultAutoAdvance
	}
	if opts.ConfirmationTimeout == 0 {
		opts.ConfirmationTimeout = DefaultConfirmationTimeout
	}
	formHook := func(kind FormKind) func(FormState) {
		if opts.OnFormChange == nil {
			return nil
		}
		return func(s FormState) { opts.OnFormChange(kind, s) }
	}

	return &App{
		catalog:     cat,
		nav:         NewNavigator(),
		gallery:     NewGallery(opts.AutoAdvance, opts.OnGalleryChange),
		contactForm: NewForm(ContactForm, client, opts.ConfirmationTimeout, formHook(ContactForm)),
		productForm: NewForm(ProductForm, client, opts.ConfirmationTimeout, formHook(ProductForm)),
	}
}

func (a *App) Catalog() *catalog.Catalog { return a.catalog }
func (a *App) Gallery() *Gallery         { return a.gallery }
func (a *App) ContactForm() *Form        { return a.contactForm }
func (a *App) ProductForm() *Form        { return a.productForm }

func (a *App) Page() Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nav.Current()
}

func (a *App) Selected() *domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nav.Selected()
}

// Navigate switches to p. Navigating to the current page is a no-op.
func (a *App) Navigate(p Page) error {
	a.mu.Lock()
	prev := a.nav.Current()
	if err := a.nav.GoTo(p); err != nil {
		a.mu.Unlock()
		return err
	}
	a.mu.Unlock()

	if prev == PageProductDetail && p != PageProductDetail {
		a.gallery.Close()
	}
	return nil
}

// ShowProduct selects the product with the given id and opens its page
func (a *App) ShowProduct(id string) (*domain.Product, error) {
	p, err := a.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	sameProduct := a.nav.Selected() != nil && a.nav.Selected().ID == p.ID
	if sameProduct {
		p = a.nav.Selected()
	}
	_ = a.nav.ShowProduct(p)
	a.mu.Unlock()

	if !sameProduct {
		a.gallery.SetProduct(p)
	}
	return p, nil
}

// OpenGallery opens the lightbox of the selected product at image i
func (a *App) OpenGallery(i int) error {
	if a.Page() != PageProductDetail {
		return ErrNoProductSelected
	}
	return a.gallery.OpenAt(i)
}

// SubmitContact submits the general contact form. The selected product, if
// any, is attached as the product of interest.
func (a *App) SubmitContact(ctx context.Context) error {
	return a.contactForm.Submit(ctx, a.Selected())
}

// SubmitProductEnquiry submits the enquiry form of the product detail page
func (a *App) SubmitProductEnquiry(ctx context.Context) error {
	a.mu.Lock()
	page, selected := a.nav.Current(), a.nav.Selected()
	a.mu.Unlock()

	if page != PageProductDetail || selected == nil {
		return ErrNoProductSelected
	}
	return a.productForm.Submit(ctx, selected)
}

// Close stops every timer the app owns
func (a *App) Close() {
	a.gallery.Close()
	a.contactForm.Close()
	a.productForm.Close()
}
