package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/service"
	"github.com/noah-isme/school-backoffice-api/pkg/response"
)

// SMSHandler exposes credit consumption and result notifications.
type SMSHandler struct {
	sms *service.SMSService
}

// NewSMSHandler constructs handler.
func NewSMSHandler(sms *service.SMSService) *SMSHandler {
	return &SMSHandler{sms: sms}
}

// Use godoc
// @Summary Consume SMS credits
// @Tags SMS
// @Accept json
// @Produce json
// @Param id path string true "Balance ID"
// @Param payload body models.SMSUsage true "Credits to use"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sms-balances/{id}/use [post]
func (h *SMSHandler) Use(c *gin.Context) {
	var usage models.SMSUsage
	if err := decodeBody(c, &usage); err != nil {
		response.Error(c, err)
		return
	}
	balance, err := h.sms.Use(c.Request.Context(), c.Param("id"), usage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, balance, "sms credits used")
}

// SendResult godoc
// @Summary Queue a result notification SMS
// @Tags SMS
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param payload body models.SendSMSRequest false "Recipient and message overrides"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/{id}/send-sms [post]
func (h *SMSHandler) SendResult(c *gin.Context) {
	var req models.SendSMSRequest
	if c.Request.ContentLength != 0 {
		if err := decodeBody(c, &req); err != nil {
			response.Error(c, err)
			return
		}
	}
	entry, err := h.sms.SendResult(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, entry, "sms queued", nil)
}
