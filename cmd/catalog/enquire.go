package main

import (
	"context"
	"errors"

	"destiny-global-backend/internal/site"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newEnquireCmd(c *cli) *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "enquire",
		Short: "Send an enquiry to the sales team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.newApp()
			defer app.Close()

			if productID == "" {
				if err := app.Navigate(site.PageContact); err != nil {
					return err
				}
			} else {
				p, err := app.ShowProduct(productID)
				if err != nil {
					return err
				}
				heading.Fprintln(c.out, "Enquire about "+p.Name)
			}

			err := c.enquire(cmd.Context(), app)
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&productID, "product", "", "product id to enquire about")
	return cmd
}

// enquire fills the form that belongs to the current page and submits it.
// The outcome is printed by the app's form hook.
func (c *cli) enquire(ctx context.Context, app *site.App) error {
	if app.Page() == site.PageProductDetail {
		if err := c.fill(ctx, app.ProductForm(), false); err != nil {
			return err
		}
		return app.SubmitProductEnquiry(ctx)
	}

	if err := c.fill(ctx, app.ContactForm(), app.Selected() == nil); err != nil {
		return err
	}
	return app.SubmitContact(ctx)
}

// fill prompts for every field of form. The product field is only asked
// for when askProduct is set; otherwise the selected product fills it.
func (c *cli) fill(ctx context.Context, form *site.Form, askProduct bool) error {
	fields := form.Fields()
	values := make([]string, len(fields))
	inputs := make([]huh.Field, 0, len(fields))

	for i, f := range fields {
		if f.Name == "product" && !askProduct {
			continue
		}
		values[i] = form.Value(f.Name)

		title := f.Label
		if f.Required {
			title += " *"
		}
		if f.Multiline {
			inputs = append(inputs, huh.NewText().Title(title).Value(&values[i]))
		} else {
			inputs = append(inputs, huh.NewInput().Title(title).Value(&values[i]))
		}
	}

	err := huh.NewForm(huh.NewGroup(inputs...)).
		WithAccessible(c.accessible).
		WithInput(c.in).
		WithOutput(c.out).
		RunWithContext(ctx)
	if err != nil {
		return err
	}

	for i, f := range fields {
		form.Set(f.Name, values[i])
	}
	return nil
}
