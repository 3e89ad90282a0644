package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/service"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/response"
)

// NoticeHandler manages notice attachments and signed downloads.
type NoticeHandler struct {
	attachments *service.NoticeAttachmentService
	basePath    string
	maxBytes    int64
}

// NewNoticeHandler constructs handler. basePath prefixes generated download links.
func NewNoticeHandler(attachments *service.NoticeAttachmentService, basePath string, maxBytes int64) *NoticeHandler {
	return &NoticeHandler{attachments: attachments, basePath: basePath, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Attach a file to a notice
// @Tags Notices
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Notice ID"
// @Param file formData file true "Attachment"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notices/{id}/attachment [post]
func (h *NoticeHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		// multipart framing needs headroom beyond the file itself
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)
	}
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file exceeds upload limit"))
			return
		}
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unable to read upload"))
		return
	}
	defer file.Close()

	notice, err := h.attachments.Attach(c.Request.Context(), c.Param("id"), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notice, "attachment uploaded")
}

// Link godoc
// @Summary Signed download link for a notice attachment
// @Tags Notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notices/{id}/attachment [get]
func (h *NoticeHandler) Link(c *gin.Context) {
	link, err := h.attachments.Link(c.Request.Context(), c.Param("id"), h.basePath)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, link, "")
}

// Download godoc
// @Summary Download a file through a signed token
// @Tags Files
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 403 {object} response.Envelope
// @Router /files/{token} [get]
func (h *NoticeHandler) Download(c *gin.Context) {
	file, attachment, err := h.attachments.Open(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%s`, strconv.Quote(attachment.FileName)))
	c.DataFromReader(http.StatusOK, attachment.Size, attachment.ContentType, file, nil)
}
