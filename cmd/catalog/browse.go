package main

import (
	"errors"
	"strings"

	"destiny-global-backend/internal/site"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	choiceGallery = "gallery"
	choiceEnquire = "enquire"
	choiceQuit    = "quit"
	pagePrefix    = "page:"
	productPrefix = "product:"
)

func newBrowseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Walk through the site page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.newApp()
			defer app.Close()

			ctx := cmd.Context()
			for {
				printPage(c.out, app)

				var choice string
				err := huh.NewForm(huh.NewGroup(
					huh.NewSelect[string]().
						Title("Where to?").
						Options(c.choices(app)...).
						Value(&choice),
				)).
					WithAccessible(c.accessible).
					WithInput(c.in).
					WithOutput(c.out).
					RunWithContext(ctx)
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				if err != nil {
					return err
				}

				switch {
				case choice == choiceQuit:
					return nil
				case choice == choiceGallery:
					if err := runGallery(ctx, app, c.in, c.out, 1); err != nil {
						return err
					}
				case choice == choiceEnquire:
					err := c.enquire(ctx, app)
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					// Validation and delivery failures are already shown
					if err != nil && !errors.Is(err, site.ErrFormInvalid) && !errors.Is(err, site.ErrSubmitFailed) {
						return err
					}
				case strings.HasPrefix(choice, productPrefix):
					if _, err := app.ShowProduct(strings.TrimPrefix(choice, productPrefix)); err != nil {
						return err
					}
				case strings.HasPrefix(choice, pagePrefix):
					page, err := site.ParsePage(strings.TrimPrefix(choice, pagePrefix))
					if err != nil {
						return err
					}
					if err := app.Navigate(page); err != nil {
						return err
					}
				}
			}
		},
	}
}

// choices lists what can be reached from the current page
func (c *cli) choices(app *site.App) []huh.Option[string] {
	page := app.Page()
	var opts []huh.Option[string]

	switch page {
	case site.PageHome, site.PageProducts:
		for _, p := range app.Catalog().Products() {
			opts = append(opts, huh.NewOption("View "+p.Name, productPrefix+p.ID))
		}
	case site.PageProductDetail:
		opts = append(opts,
			huh.NewOption("Open image gallery", choiceGallery),
			huh.NewOption("Enquire about this product", choiceEnquire),
		)
	case site.PageContact:
		opts = append(opts, huh.NewOption("Send an enquiry", choiceEnquire))
	}

	for _, it := range site.Menu(page) {
		if !it.Active {
			opts = append(opts, huh.NewOption(it.Label, pagePrefix+it.Page.String()))
		}
	}
	if p := app.Selected(); p != nil && page != site.PageProductDetail {
		opts = append(opts, huh.NewOption("Back to "+p.Name, pagePrefix+site.PageProductDetail.String()))
	}
	return append(opts, huh.NewOption("Quit", choiceQuit))
}
