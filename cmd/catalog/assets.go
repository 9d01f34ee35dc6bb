package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"destiny-global-backend/internal/catalog"
	"destiny-global-backend/pkg/logger"

	"github.com/spf13/cobra"
)

func newAssetsCmd(c *cli) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Check and prepare the product images",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if dir == "" {
				dir = c.cfg.AssetsDir
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "directory the image paths are relative to (default $ASSETS_DIR)")

	cmd.AddCommand(newVerifyCmd(c, &dir), newThumbsCmd(c, &dir))
	return cmd
}

func newVerifyCmd(c *cli, dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every product image exists and decodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := catalog.VerifyAssets(os.DirFS(*dir), c.catalog)
			for _, p := range problems {
				failure.Fprintln(c.out, p.String())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d of the catalog's images are unusable", len(problems))
			}
			success.Fprintf(c.out, "All images of %d products are valid\n", c.catalog.Len())
			return nil
		},
	}
}

func newThumbsCmd(c *cli, dir *string) *cobra.Command {
	var (
		out     string
		size    int
		quality int
	)

	cmd := &cobra.Command{
		Use:   "thumbs",
		Short: "Write JPEG thumbnails of every product image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = filepath.Join(*dir, "thumbs")
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}

			written := 0
			seen := make(map[string]bool)
			for _, p := range c.catalog.Products() {
				for _, ref := range p.Images {
					if seen[ref] {
						continue
					}
					seen[ref] = true

					target, err := writeThumbnail(*dir, out, ref, size, quality)
					if err != nil {
						return err
					}
					logger.Log.Debug("Thumbnail written", "product", p.ID, "image", ref, "path", target)
					written++
				}
			}
			success.Fprintf(c.out, "Wrote %d thumbnails to %s\n", written, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (default <dir>/thumbs)")
	cmd.Flags().IntVar(&size, "size", 320, "longest side of a thumbnail in pixels")
	cmd.Flags().IntVar(&quality, "quality", 80, "JPEG quality, 1-100")
	return cmd
}

func writeThumbnail(dir, out, ref string, size, quality int) (string, error) {
	rel := catalog.AssetPath(ref)
	src, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", ref, err)
	}
	defer src.Close()

	data, err := catalog.Thumbnail(src, size, quality)
	if err != nil {
		return "", fmt.Errorf("failed to thumbnail %s: %w", ref, err)
	}

	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel)) + ".jpg"
	target := filepath.Join(out, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}
