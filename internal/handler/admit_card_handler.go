package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/service"
	"github.com/noah-isme/school-backoffice-api/pkg/response"
)

// AdmitCardHandler serves printable admit cards.
type AdmitCardHandler struct {
	cards *service.AdmitCardService
}

// NewAdmitCardHandler constructs handler.
func NewAdmitCardHandler(cards *service.AdmitCardService) *AdmitCardHandler {
	return &AdmitCardHandler{cards: cards}
}

// PDF godoc
// @Summary Download an admit card as PDF
// @Tags AdmitCards
// @Produce application/pdf
// @Param id path string true "Admit card ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /admit-cards/{id}/pdf [get]
func (h *AdmitCardHandler) PDF(c *gin.Context) {
	body, name, err := h.cards.PDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, name))
	c.Data(http.StatusOK, "application/pdf", body)
}
