package main

import (
	"fmt"
	"io"
	"strings"

	"destiny-global-backend/internal/domain"
	"destiny-global-backend/internal/site"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgGreen, color.Bold)
	accent  = color.New(color.FgCyan)
	muted   = color.New(color.Faint)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func printMenu(w io.Writer, current site.Page) {
	labels := make([]string, 0, len(site.Main))
	for _, it := range site.Menu(current) {
		if it.Active {
			labels = append(labels, accent.Sprintf("[%s]", it.Label))
		} else {
			labels = append(labels, it.Label)
		}
	}
	fmt.Fprintln(w, strings.Join(labels, "  "))
	fmt.Fprintln(w)
}

func printPage(w io.Writer, app *site.App) {
	company := app.Catalog().Company()
	page := app.Page()
	printMenu(w, page)

	switch page {
	case site.PageHome:
		heading.Fprintln(w, company.Name)
		fmt.Fprintln(w, company.Tagline)
		muted.Fprintln(w, company.Slogan)
		fmt.Fprintln(w)
		heading.Fprintln(w, "Our Products")
		for _, p := range app.Catalog().Products() {
			printSummary(w, p)
		}
	case site.PageAbout:
		heading.Fprintln(w, "About "+company.Name)
		for _, para := range company.About {
			fmt.Fprintln(w, para)
			fmt.Fprintln(w)
		}
	case site.PageProducts:
		heading.Fprintln(w, "Products")
		for _, p := range app.Catalog().Products() {
			printSummary(w, p)
		}
	case site.PageProductDetail:
		if p := app.Selected(); p != nil {
			printProduct(w, *p)
		}
	case site.PageContact:
		printContact(w, company)
	}
	printFooter(w, company)
}

func printSummary(w io.Writer, p domain.Product) {
	fmt.Fprintf(w, "  %s  %s\n", accent.Sprintf("%-10s", p.ID), p.Name)
	muted.Fprintf(w, "              %s - %s\n", p.Category, p.ShortDescription)
}

func printProduct(w io.Writer, p domain.Product) {
	heading.Fprintln(w, p.Name)
	muted.Fprintln(w, p.Category)
	fmt.Fprintln(w, p.Description)

	if len(p.Features) > 0 {
		fmt.Fprintln(w)
		accent.Fprintln(w, "Key Features")
		for _, f := range p.Features {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	if len(p.Applications) > 0 {
		fmt.Fprintln(w)
		accent.Fprintln(w, "Applications")
		for _, a := range p.Applications {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	if len(p.Specifications) > 0 {
		fmt.Fprintln(w)
		accent.Fprintln(w, "Specifications")
		for _, s := range p.Specifications {
			fmt.Fprintf(w, "  %-20s %s\n", s.Label+":", s.Value)
		}
	}

	fmt.Fprintln(w)
	muted.Fprintf(w, "%d images: %s\n", len(p.Images), strings.Join(p.Images, ", "))
}

func printContact(w io.Writer, c domain.Company) {
	heading.Fprintln(w, "Contact Us")
	fmt.Fprintf(w, "  Phone:     %s\n", c.Phone)
	fmt.Fprintf(w, "  Email:     %s\n", c.SupportEmail)
	if c.SalesEmail != "" {
		fmt.Fprintf(w, "  Sales:     %s\n", c.SalesEmail)
	}
	if c.WhatsApp != "" {
		fmt.Fprintf(w, "  WhatsApp:  %s\n", c.WhatsAppURL())
	}
}

func printFooter(w io.Writer, c domain.Company) {
	fmt.Fprintln(w)
	muted.Fprintf(w, "%s | %s | %s\n", c.Brand, c.Phone, c.SupportEmail)
}

func printGallery(w io.Writer, s site.GalleryState) {
	fmt.Fprintf(w, "%s  %s\n", accent.Sprint(s.Caption), muted.Sprint(s.Image))
}

func printFormState(w io.Writer, s site.FormState) {
	switch {
	case s.Loading:
		muted.Fprintln(w, "Sending...")
	case s.Error != "":
		failure.Fprintln(w, s.Error)
	case s.Submitted:
		success.Fprintln(w, site.MsgSubmitSuccess)
	}
}
