package catalog

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// AssetProblem describes an image reference that does not resolve to a
// displayable image
type AssetProblem struct {
	ProductID string
	Image     string
	Err       error
}

func (p AssetProblem) String() string {
	return fmt.Sprintf("%s: %s: %v", p.ProductID, p.Image, p.Err)
}

// AssetPath maps a catalog image reference ("/Pellet1.png") to a path in an fs.FS
func AssetPath(ref string) string {
	return path.Clean(strings.TrimPrefix(ref, "/"))
}

// VerifyAssets decodes the header of every image referenced by the catalog.
// An empty result means every product can be displayed.
func VerifyAssets(fsys fs.FS, c *Catalog) []AssetProblem {
	var problems []AssetProblem
	checked := make(map[string]error)

	for _, p := range c.products {
		refs := append([]string{p.Image}, p.Images...)
		seen := make(map[string]bool, len(refs))
		for _, ref := range refs {
			if seen[ref] {
				continue
			}
			seen[ref] = true

			err, ok := checked[ref]
			if !ok {
				err = decodeConfig(fsys, AssetPath(ref))
				checked[ref] = err
			}
			if err != nil {
				problems = append(problems, AssetProblem{ProductID: p.ID, Image: ref, Err: err})
			}
		}
	}

	return problems
}

func decodeConfig(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("not a decodable image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("image has no pixels")
	}
	return nil
}

// Thumbnail scales an image down so its longest side is at most maxDimension
// and encodes it as JPEG. Smaller images keep their size.
func Thumbnail(r io.Reader, maxDimension int, quality int) ([]byte, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), maxDimension)

	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// scaledSize keeps the aspect ratio while bounding the longest side
func scaledSize(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}
	if width >= height {
		h := height * maxDimension / width
		return maxDimension, max(h, 1)
	}
	w := width * maxDimension / height
	return max(w, 1), maxDimension
}
