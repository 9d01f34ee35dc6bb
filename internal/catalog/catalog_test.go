package catalog

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 3, c.Len())
	ids := []string{}
	for _, p := range c.Products() {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Images, p.ID)
		assert.Equal(t, p.Images[0], p.Image, p.ID)
	}
	assert.Equal(t, []string{"pellets", "compost", "powder"}, ids)

	company := c.Company()
	assert.Equal(t, "Destiny Global", company.Brand)
	assert.Equal(t, "support@destinyglobalimportexport.com", company.SupportEmail)
	assert.Equal(t, "https://wa.me/918200391265", company.WhatsAppURL())
	assert.Len(t, company.About, 2)
}

func TestGetKeepsSpecificationOrder(t *testing.T) {
	p, err := Default().Get("compost")
	require.NoError(t, err)

	assert.Equal(t, "Cow Dung Compost", p.Name)
	assert.Len(t, p.Images, 4)
	require.Len(t, p.Specifications, 7)
	assert.Equal(t, "Organic Matter", p.Specifications[0].Label)
	assert.Equal(t, "40-45%", p.Specifications[0].Value)
	assert.Equal(t, "C:N Ratio", p.Specifications[6].Label)
	assert.Equal(t, "15:1 to 20:1", p.Specifications[6].Value)
}

func TestGetUnknownProduct(t *testing.T) {
	_, err := Default().Get("slurry")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductsReturnsCopy(t *testing.T) {
	c := Default()
	list := c.Products()
	list[0].Name = "changed"

	p, err := c.Get("pellets")
	require.NoError(t, err)
	assert.Equal(t, "Organic Cow Dung Pellets", p.Name)
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, c.Search(" "), 3)
	})

	t.Run("matches by name", func(t *testing.T) {
		res := c.Search("pellet")
		require.NotEmpty(t, res)
		assert.Equal(t, "pellets", res[0].ID)
	})

	t.Run("matches by category", func(t *testing.T) {
		res := c.Search("renewable")
		require.Len(t, res, 1)
		assert.Equal(t, "pellets", res[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("zzzz"))
	})
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	cases := map[string]string{
		"duplicate id": `
products:
  - {id: a, name: A, images: [/a.png]}
  - {id: a, name: B, images: [/b.png]}`,
		"missing images": `
products:
  - {id: a, name: A}`,
		"missing id": `
products:
  - {name: A, images: [/a.png]}`,
		"specifications not a mapping": `
products:
  - id: a
    name: A
    images: [/a.png]
    specifications: [x, y]`,
		"not yaml": `products: [`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseDefaultsPrimaryImage(t *testing.T) {
	c, err := Parse([]byte(`
company: {name: Acme}
products:
  - {id: a, name: A, images: [/a1.png, /a2.png]}`))
	require.NoError(t, err)

	p, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "/a1.png", p.Image)
	assert.Equal(t, "Acme", c.Company().Brand)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestVerifyAssets(t *testing.T) {
	c, err := Parse([]byte(`
products:
  - {id: a, name: A, images: [/a1.png, /a2.png]}
  - {id: b, name: B, image: /b.png, images: [/missing.png]}`))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"a1.png": {Data: encodePNG(t, 4, 3)},
		"a2.png": {Data: []byte("not an image")},
		"b.png":  {Data: encodePNG(t, 2, 2)},
	}

	problems := VerifyAssets(fsys, c)
	require.Len(t, problems, 2)
	assert.Equal(t, "a", problems[0].ProductID)
	assert.Equal(t, "/a2.png", problems[0].Image)
	assert.Equal(t, "b", problems[1].ProductID)
	assert.Equal(t, "/missing.png", problems[1].Image)
}

func TestThumbnail(t *testing.T) {
	out, err := Thumbnail(bytes.NewReader(encodePNG(t, 40, 20)), 10, 80)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 5, cfg.Height)

	_, err = Thumbnail(bytes.NewReader([]byte("nope")), 10, 80)
	assert.Error(t, err)
}

func TestScaledSize(t *testing.T) {
	w, h := scaledSize(100, 50, 200)
	assert.Equal(t, []int{100, 50}, []int{w, h})

	w, h = scaledSize(50, 100, 20)
	assert.Equal(t, []int{10, 20}, []int{w, h})

	w, h = scaledSize(1000, 1, 10)
	assert.Equal(t, []int{10, 1}, []int{w, h})
}
