package site

import (
	"testing"

	"destiny-global-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorStartsHome(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, PageHome, n.Current())
	assert.Nil(t, n.Selected())
}

func TestProductDetailRequiresSelection(t *testing.T) {
	n := NewNavigator()
	assert.ErrorIs(t, n.GoTo(PageProductDetail), ErrNoProductSelected)
	assert.Equal(t, PageHome, n.Current())
	assert.ErrorIs(t, n.ShowProduct(nil), ErrNoProductSelected)

	p := &domain.Product{ID: "compost", Name: "Cow Dung Compost", Images: []string{"/a.png"}}
	require.NoError(t, n.ShowProduct(p))
	assert.Equal(t, PageProductDetail, n.Current())

	// selection survives leaving the page
	n.Contact()
	assert.Equal(t, p, n.Selected())
	require.NoError(t, n.GoTo(PageProductDetail))
}

func TestNavigationIsIdempotent(t *testing.T) {
	for _, page := range []Page{PageHome, PageAbout, PageProducts, PageContact} {
		n := NewNavigator()
		p := &domain.Product{ID: "x", Name: "X", Images: []string{"/x.png"}}
		require.NoError(t, n.ShowProduct(p))

		for i := 0; i < 3; i++ {
			require.NoError(t, n.GoTo(page))
			assert.Equal(t, page, n.Current())
			assert.Equal(t, p, n.Selected())
		}
	}
}

func TestEveryMenuPageReachableFromEveryPage(t *testing.T) {
	p := &domain.Product{ID: "x", Name: "X", Images: []string{"/x.png"}}
	all := []Page{PageHome, PageAbout, PageProducts, PageProductDetail, PageContact}

	for _, from := range all {
		for _, to := range all {
			n := NewNavigator()
			require.NoError(t, n.ShowProduct(p))
			require.NoError(t, n.GoTo(from))
			require.NoError(t, n.GoTo(to), "%s -> %s", from, to)
			assert.Equal(t, to, n.Current())
		}
	}
}

func TestGoToRejectsUnknownPage(t *testing.T) {
	assert.ErrorIs(t, NewNavigator().GoTo(Page(42)), ErrUnknownPage)
}

func TestParsePage(t *testing.T) {
	for _, p := range []Page{PageHome, PageAbout, PageProducts, PageProductDetail, PageContact} {
		got, err := ParsePage(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePage("checkout")
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Equal(t, "page(9)", Page(9).String())
}

func TestMenu(t *testing.T) {
	items := Menu(PageProducts)
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, it.Page == PageProducts, it.Active, it.Label)
	}
	// the shared definition is never mutated
	for _, it := range Main {
		assert.False(t, it.Active)
	}

	for _, it := range Menu(PageProductDetail) {
		assert.False(t, it.Active)
	}
}
