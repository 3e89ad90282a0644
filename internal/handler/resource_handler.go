package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	"github.com/noah-isme/school-backoffice-api/internal/service"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
	"github.com/noah-isme/school-backoffice-api/pkg/response"
)

// ResourceHandler exposes the CRUD routes of one resource engine.
type ResourceHandler[T any, P service.RecordPtr[T]] struct {
	engine *service.Engine[T, P]
	csv    *export.CSVExporter
	label  string
}

// NewResourceHandler constructs handler.
func NewResourceHandler[T any, P service.RecordPtr[T]](engine *service.Engine[T, P], csv *export.CSVExporter) *ResourceHandler[T, P] {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &ResourceHandler[T, P]{engine: engine, csv: csv, label: engine.Schema().Label}
}

// Register mounts the resource under its path. guard runs before every mutating route.
func (h *ResourceHandler[T, P]) Register(api *gin.RouterGroup, guard ...gin.HandlerFunc) *gin.RouterGroup {
	schema := h.engine.Schema()
	group := api.Group("/" + schema.Path)
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guard...), handler)
	}

	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/:id", h.Get)
	group.POST("", write(h.Create)...)
	group.PUT("/:id", write(h.Update)...)
	group.DELETE("/:id", write(h.Delete)...)
	if schema.Bulk {
		group.POST("/bulk", write(h.BulkCreate)...)
	}
	if schema.Status {
		group.PATCH("/:id/toggle-status", write(h.ToggleStatus)...)
		for _, alias := range schema.ToggleAliases {
			group.PATCH("/:id/"+alias, write(h.ToggleStatus)...)
		}
	}
	if sg := schema.Singleton; sg != nil && sg.Route != "" {
		group.PATCH("/:id/"+sg.Route, write(h.SetDefault)...)
	}
	return group
}

// List godoc
// @Summary List records of a resource
// @Tags Resources
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param isActive query bool false "Filter by status"
// @Param includeInactive query bool false "Include inactive records"
// @Success 200 {object} response.Envelope
// @Router /{resource} [get]
func (h *ResourceHandler[T, P]) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.engine.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, fmt.Sprintf("%s list retrieved", h.label), pagination)
}

// Export godoc
// @Summary Export records of a resource as CSV
// @Tags Resources
// @Produce text/csv
// @Success 200 {file} file
// @Router /{resource}/export [get]
func (h *ResourceHandler[T, P]) Export(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.engine.Dataset(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	body, err := h.csv.Render(data)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export"))
		return
	}
	name := fmt.Sprintf("%s-%s.csv", h.engine.Schema().Path, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// Get godoc
// @Summary Get a record by id
// @Tags Resources
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{resource}/{id} [get]
func (h *ResourceHandler[T, P]) Get(c *gin.Context) {
	item, err := h.engine.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item, "")
}

// Create godoc
// @Summary Create a record
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body object true "Record payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /{resource} [post]
func (h *ResourceHandler[T, P]) Create(c *gin.Context) {
	payload, err := bindDocument(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.engine.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item, h.label+" created")
}

// BulkCreate godoc
// @Summary Create many records at once
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body []object true "Record payloads"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /{resource}/bulk [post]
func (h *ResourceHandler[T, P]) BulkCreate(c *gin.Context) {
	payloads, err := bindDocuments(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.engine.BulkCreate(c.Request.Context(), payloads)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, items, fmt.Sprintf("%d %s records created", len(items), h.label))
}

// Update godoc
// @Summary Update a record
// @Tags Resources
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body object true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T, P]) Update(c *gin.Context) {
	payload, err := bindDocument(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.engine.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item, h.label+" updated")
}

// Delete godoc
// @Summary Delete a record
// @Tags Resources
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T, P]) Delete(c *gin.Context) {
	if err := h.engine.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, h.label+" deleted")
}

// ToggleStatus godoc
// @Summary Flip a record's active flag
// @Tags Resources
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id}/toggle-status [patch]
func (h *ResourceHandler[T, P]) ToggleStatus(c *gin.Context) {
	active, err := h.engine.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	state := "deactivated"
	if active {
		state = "activated"
	}
	response.OK(c, models.ToggleResult{IsActive: active}, h.label+" "+state)
}

// SetDefault godoc
// @Summary Make a record the current or default one
// @Tags Resources
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id}/set-default [patch]
func (h *ResourceHandler[T, P]) SetDefault(c *gin.Context) {
	item, err := h.engine.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item, h.label+" updated")
}

// listParams reads paging, status and the declared filters from the query string.
func listParams(c *gin.Context) (service.ListParams, error) {
	params := service.ListParams{Filters: make(map[string]string)}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params.Filters[key] = values[0]
		}
	}

	var err error
	if params.Page, err = queryInt(c, "page"); err != nil {
		return params, err
	}
	if params.Limit, err = queryInt(c, "limit"); err != nil {
		return params, err
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("includeInactive"))) {
	case "", "false", "0":
	case "true", "1":
		params.IncludeInactive = true
	default:
		return params, appErrors.Clone(appErrors.ErrValidation, "includeInactive must be true or false")
	}
	return params, nil
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, appErrors.Clone(appErrors.ErrValidation, key+" must be a positive integer")
	}
	return n, nil
}

// bindDocument decodes a JSON object body. Numbers stay json.Number so lenient decoding sees the original text.
func bindDocument(c *gin.Context) (repository.Document, error) {
	var payload repository.Document
	if err := decodeBody(c, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "request body must be a JSON object")
	}
	return payload, nil
}

func bindDocuments(c *gin.Context) ([]repository.Document, error) {
	var payloads []repository.Document
	if err := decodeBody(c, &payloads); err != nil {
		return nil, err
	}
	for i, p := range payloads {
		if p == nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("item %d: must be a JSON object", i))
		}
	}
	return payloads, nil
}

func decodeBody(c *gin.Context, v any) error {
	if c.Request.Body == nil {
		return appErrors.Clone(appErrors.ErrValidation, "request body is required")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
	}
	if dec.More() {
		return appErrors.Clone(appErrors.ErrValidation, "invalid payload")
	}
	return nil
}
