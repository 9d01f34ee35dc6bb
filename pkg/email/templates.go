package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"destiny-global-backend/internal/domain"

	"github.com/microcosm-cc/bluemonday"
)

// EnquiryEmailData holds the data shared by both enquiry emails
type EnquiryEmailData struct {
	Reference string
	Name      string
	Email     string
	Phone     string
	Company   string
	Country   string
	Product   string
	Message   template.HTML
	Business  domain.Company
	Year      int
}

var textPolicy = bluemonday.StrictPolicy()

// NewEnquiryEmailData copies the enquiry into template data. Free text is
// stripped of markup and keeps its line breaks.
func NewEnquiryEmailData(e *domain.Enquiry, reference string, business domain.Company, year int) EnquiryEmailData {
	return EnquiryEmailData{
		Reference: reference,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Company:   e.Company,
		Country:   e.Country,
		Product:   e.Product,
		Message:   sanitizeMultiline(e.Message),
		Business:  business,
		Year:      year,
	}
}

func sanitizeMultiline(s string) template.HTML {
	clean := textPolicy.Sanitize(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br>"))
}

// SellerSubject is the subject line of the business notification
func SellerSubject(data EnquiryEmailData) string {
	return fmt.Sprintf("New Enquiry from %s - %s", data.Name, data.Business.Brand)
}

// CustomerSubject is the subject line of the acknowledgment
func CustomerSubject(data EnquiryEmailData) string {
	return fmt.Sprintf("Thank You for Your Enquiry - %s", data.Business.Name)
}

// RenderSellerNotification renders the email sent to the support address
func RenderSellerNotification(data EnquiryEmailData) (string, error) {
	return render(sellerTemplate, data)
}

// RenderCustomerAcknowledgment renders the email sent back to the submitter
func RenderCustomerAcknowledgment(data EnquiryEmailData) (string, error) {
	return render(customerTemplate, data)
}

func render(tmpl *template.Template, data EnquiryEmailData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

const baseStyles = `
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #f97316 0%, #ea580c 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 2px solid #e5e7eb; text-align: center; color: #6b7280; font-size: 14px; }`

var sellerTemplate = template.Must(template.New("seller").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Product Enquiry</title>
    <style>` + baseStyles + `
        .field { margin-bottom: 20px; padding: 15px; background: white; border-radius: 5px; }
        .label { font-weight: bold; color: #f97316; margin-bottom: 5px; }
        .value { color: #374151; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Product Enquiry</h1>
            <p>{{.Business.Name}}</p>
        </div>
        <div class="content">
            <h2>Customer Details</h2>
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            {{- if .Company}}
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Company}}</div>
            </div>
            {{- end}}
            {{- if .Country}}
            <div class="field">
                <div class="label">Country:</div>
                <div class="value">{{.Country}}</div>
            </div>
            {{- end}}
            {{- if .Product}}
            <div class="field">
                <div class="label">Product Interest:</div>
                <div class="value">{{.Product}}</div>
            </div>
            {{- end}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="value">{{.Message}}</div>
            </div>
            <div class="footer">
                <p>This enquiry was submitted through the {{.Business.Name}} website</p>
                <p>Please respond to the customer at: {{.Email}}</p>
                <p>Reference: {{.Reference}}</p>
            </div>
        </div>
    </div>
</body>
</html>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank You for Your Enquiry</title>
    <style>` + baseStyles + `
        .message { background: white; padding: 20px; border-radius: 5px; margin: 20px 0; }
        .contact-info { background: white; padding: 20px; border-radius: 5px; margin-top: 20px; }
        .contact-item { margin: 10px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank You for Your Enquiry!</h1>
            <p>{{.Business.Name}}</p>
        </div>
        <div class="content">
            <div class="message">
                <h2>Dear {{.Name}},</h2>
                <p>Thank you for your interest in our products. We have received your enquiry and our team will get back to you within 24 hours.</p>
                <p>We specialize in premium organic products including cow dung compost and pellets, serving customers across 12+ countries with a commitment to sustainability and quality.</p>
                <p>Your reference number is <strong>{{.Reference}}</strong>.</p>
            </div>
            <div class="contact-info">
                <h3>Contact Information</h3>
                <div class="contact-item"><strong>Phone:</strong> {{.Business.Phone}}</div>
                <div class="contact-item"><strong>Email:</strong> {{.Business.SupportEmail}}</div>
                <div class="contact-item"><strong>WhatsApp:</strong> {{.Business.WhatsApp}}</div>
                {{- if .Business.SalesEmail}}
                <div class="contact-item"><strong>Sales:</strong> {{.Business.SalesEmail}}</div>
                {{- end}}
            </div>
            <div class="footer">
                <p>{{.Business.Slogan}}</p>
                <p>&copy; {{.Year}} {{.Business.Name}}. All rights reserved.</p>
            </div>
        </div>
    </div>
</body>
</html>`))
