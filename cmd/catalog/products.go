package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"destiny-global-backend/internal/site"

	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range c.catalog.Products() {
				printSummary(c.out, p)
			}
			return nil
		},
	}
}

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find products by name, category or id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := c.catalog.Search(strings.Join(args, " "))
			if len(matches) == 0 {
				muted.Fprintln(c.out, "No matching products")
				return nil
			}
			for _, p := range matches {
				printSummary(c.out, p)
			}
			return nil
		},
	}
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.catalog.Get(args[0])
			if err != nil {
				return err
			}
			printProduct(c.out, *p)
			return nil
		},
	}
}

func newGalleryCmd(c *cli) *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "gallery <id>",
		Short: "Page through a product's images",
		Long:  "Opens the lightbox of a product. Enter n (next), p (previous), a number to jump to that image, or q to close.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.newApp()
			defer app.Close()

			if _, err := app.ShowProduct(args[0]); err != nil {
				return err
			}
			return runGallery(cmd.Context(), app, c.in, c.out, start)
		},
	}
	cmd.Flags().IntVar(&start, "start", 1, "image to open first, 1-based")
	return cmd
}

var lineKeys = map[string]site.Key{
	"n": site.KeyRight,
	"p": site.KeyLeft,
	"q": site.KeyEscape,
}

// runGallery opens the lightbox at the 1-based image start and feeds it line
// commands until it closes or input ends. Lines are read synchronously so
// nothing is consumed after the lightbox closes.
func runGallery(ctx context.Context, app *site.App, in *bufio.Reader, out io.Writer, start int) error {
	if err := app.OpenGallery(start - 1); err != nil {
		return err
	}
	g := app.Gallery()
	defer g.Close()

	for g.IsOpen() && ctx.Err() == nil {
		line, readErr := in.ReadString('\n')
		line = strings.TrimSpace(line)

		if key, found := lineKeys[strings.ToLower(line)]; found {
			g.HandleKey(key)
		} else if n, err := strconv.Atoi(line); err == nil {
			if err := app.OpenGallery(n - 1); err != nil {
				return err
			}
		} else if line != "" {
			muted.Fprintf(out, "unknown command %q\n", line)
		}

		if readErr != nil {
			return nil
		}
	}
	return nil
}
