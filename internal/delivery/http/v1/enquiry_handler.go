package v1

import (
	"net/http"

	"destiny-global-backend/internal/delivery/http/response"
	"destiny-global-backend/internal/domain"
	"destiny-global-backend/internal/usecase"
	"destiny-global-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	enquiryUC domain.EnquiryUsecase
}

// NewEnquiryHandler registers the enquiry routes (public, no auth required)
func NewEnquiryHandler(api *gin.RouterGroup, enquiryUC domain.EnquiryUsecase) {
	handler := &EnquiryHandler{
		enquiryUC: enquiryUC,
	}

	api.POST("/enquiry", handler.SubmitEnquiry)
}

// SubmitEnquiry godoc
// @Summary      Submit Enquiry
// @Description  Relay a product or contact enquiry to the sales team and acknowledge it to the customer.
// @Tags         enquiry
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.Enquiry  true  "Enquiry Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /enquiry [post]
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req domain.Enquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		// Wrong field types and empty bodies read as missing fields
		c.Error(apperror.BadRequest(usecase.MsgMissingFields))
		return
	}

	if _, err := h.enquiryUC.SubmitEnquiry(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, usecase.MsgEnquirySuccess, nil)
}
