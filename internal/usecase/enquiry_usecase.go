package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"destiny-global-backend/internal/domain"
	"destiny-global-backend/pkg/apperror"
	"destiny-global-backend/pkg/email"
	"destiny-global-backend/pkg/logger"
	"destiny-global-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MsgMissingFields  = "Please fill all required fields (name, email, phone, message)"
	MsgInvalidEmail   = "Please provide a valid email address"
	MsgEnquiryFailed  = "Failed to process enquiry. Please try again later."
	MsgEnquirySuccess = "Enquiry submitted successfully! We will contact you soon."
)

// EnquiryConfig carries the fixed addresses used by the relay
type EnquiryConfig struct {
	FromEmail      string
	SupportEmailTo string
	Business       domain.Company
}

type enquiryUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
	cfg      EnquiryConfig
	now      func() time.Time
	newRef   func() string
}

// NewEnquiryUsecase creates a new enquiry usecase
func NewEnquiryUsecase(mailer domain.Mailer, validate *validator.Validate, cfg EnquiryConfig) domain.EnquiryUsecase {
	return &enquiryUsecase{
		mailer:   mailer,
		validate: validate,
		cfg:      cfg,
		now:      time.Now,
		newRef:   uuid.NewString,
	}
}

// SubmitEnquiry validates the enquiry, renders both emails and sends them in
// order: business notification first, customer acknowledgment second.
// Both sends must succeed; nothing is retried.
func (uc *enquiryUsecase) SubmitEnquiry(ctx context.Context, req *domain.Enquiry) (*domain.EnquiryReceipt, error) {
	if err := validation.ValidateEnquiry(uc.validate, req); err != nil {
		switch {
		case errors.Is(err, validation.ErrMissingRequired):
			return nil, apperror.BadRequest(MsgMissingFields)
		case errors.Is(err, validation.ErrInvalidEmail):
			return nil, apperror.BadRequest(MsgInvalidEmail)
		default:
			return nil, apperror.Internal(MsgEnquiryFailed, err)
		}
	}

	ref := uc.newRef()
	log := logger.Log.With("reference", ref)
	log.Info("Received enquiry", "name", req.Name, "email", req.Email, "product", req.Product)

	data := email.NewEnquiryEmailData(req, ref, uc.cfg.Business, uc.now().Year())

	sellerHTML, err := email.RenderSellerNotification(data)
	if err != nil {
		return nil, apperror.Internal(MsgEnquiryFailed, err)
	}
	customerHTML, err := email.RenderCustomerAcknowledgment(data)
	if err != nil {
		return nil, apperror.Internal(MsgEnquiryFailed, err)
	}

	seller := domain.Mail{
		From:    uc.cfg.FromEmail,
		To:      uc.cfg.SupportEmailTo,
		ReplyTo: req.Email,
		Subject: email.SellerSubject(data),
		HTML:    sellerHTML,
	}
	customer := domain.Mail{
		From:    uc.cfg.FromEmail,
		To:      req.Email,
		ReplyTo: uc.cfg.Business.SupportEmail,
		Subject: email.CustomerSubject(data),
		HTML:    customerHTML,
	}

	if err := uc.mailer.Send(ctx, seller); err != nil {
		log.Error("Seller email failed", "error", err)
		return nil, apperror.Internal(MsgEnquiryFailed, fmt.Errorf("seller notification: %w", err))
	}
	log.Info("Seller email sent")

	if err := uc.mailer.Send(ctx, customer); err != nil {
		// The business already has the enquiry; the request still fails.
		log.Warn("Customer acknowledgment failed after seller notification was sent", "error", err)
		return nil, apperror.Internal(MsgEnquiryFailed, fmt.Errorf("customer acknowledgment: %w", err))
	}
	log.Info("Customer email sent")

	return &domain.EnquiryReceipt{Reference: ref}, nil
}
