package domain

import "context"

// Enquiry represents a product or contact form submission
type Enquiry struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,enquiry_email"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company,omitempty"`
	Country string `json:"country,omitempty"`
	Product string `json:"product,omitempty"`
	Message string `json:"message" validate:"required"`
}

// EnquiryReceipt is returned once both notification emails were dispatched
type EnquiryReceipt struct {
	Reference string
}

// EnquiryResponse is the JSON body returned by POST /api/enquiry
type EnquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// EnquiryUsecase defines the interface for enquiry relay operations
type EnquiryUsecase interface {
	// SubmitEnquiry validates the enquiry and sends the seller notification
	// followed by the customer acknowledgment
	SubmitEnquiry(ctx context.Context, req *Enquiry) (*EnquiryReceipt, error)
}
