package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/middleware"
	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/service"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
	"github.com/noah-isme/school-backoffice-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-backoffice-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-backoffice-api/pkg/middleware/requestid"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	APIPrefix      string
	EnableDocs     bool
	EnableMetrics  bool
	AllowedOrigins []string
	Auth           middleware.AuthConfig
	UploadMaxBytes int64
}

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Resources   *service.Resources
	Holidays    *service.HolidayService
	SMS         *service.SMSService
	AdmitCards  *service.AdmitCardService
	Attachments *service.NoticeAttachmentService
	Metrics     *service.MetricsService
	Tokens      middleware.TokenValidator
	Audit       middleware.AuditRecorder
	Limiter     middleware.Limiter
	Store       Pinger
	Logger      *zap.Logger
}

// NewRouter builds the gin engine. Reads are public; every mutating route runs the auth, role and rate-limit guard.
func NewRouter(cfg RouterConfig, deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	if cfg.EnableMetrics && deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	system := NewMetricsHandler(deps.Metrics, deps.Store)
	r.GET("/health", system.Health)
	r.GET("/ready", system.Ready)
	if cfg.EnableMetrics && deps.Metrics != nil {
		r.GET("/metrics", system.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(prefix)
	api.Use(middleware.Audit(deps.Audit))

	guard := []gin.HandlerFunc{
		middleware.JWT(deps.Tokens, cfg.Auth),
		middleware.RequireRoles(cfg.Auth.Enabled, models.RoleAdmin, models.RoleStaff),
	}
	if deps.Limiter != nil {
		guard = append(guard, middleware.RateLimit(deps.Limiter, log))
	}
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guard...), h)
	}

	res := deps.Resources
	csv := export.NewCSVExporter()

	NewResourceHandler(res.Sessions, csv).Register(api, guard...)
	NewResourceHandler(res.Classes, csv).Register(api, guard...)
	NewResourceHandler(res.Batches, csv).Register(api, guard...)
	NewResourceHandler(res.Sections, csv).Register(api, guard...)
	NewResourceHandler(res.Subjects, csv).Register(api, guard...)
	NewResourceHandler(res.Shifts, csv).Register(api, guard...)
	NewResourceHandler(res.Exams, csv).Register(api, guard...)
	NewResourceHandler(res.Grades, csv).Register(api, guard...)
	NewResourceHandler(res.Students, csv).Register(api, guard...)
	NewResourceHandler(res.BankAccounts, csv).Register(api, guard...)
	NewResourceHandler(res.FeeTypes, csv).Register(api, guard...)
	NewResourceHandler(res.DiscountTypes, csv).Register(api, guard...)
	NewResourceHandler(res.Discounts, csv).Register(api, guard...)
	NewResourceHandler(res.FeeCollections, csv).Register(api, guard...)
	NewResourceHandler(res.SMSTemplates, csv).Register(api, guard...)

	holidays := NewResourceHandler(res.Holidays, csv).Register(api, guard...)
	if deps.Holidays != nil {
		NewHolidayHandler(deps.Holidays).Register(holidays)
	}

	balances := NewResourceHandler(res.SMSBalances, csv).Register(api, guard...)
	results := NewResourceHandler(res.Results, csv).Register(api, guard...)
	if deps.SMS != nil {
		sms := NewSMSHandler(deps.SMS)
		balances.POST("/:id/use", write(sms.Use)...)
		results.POST("/:id/send-sms", write(sms.SendResult)...)
	}

	cards := NewResourceHandler(res.AdmitCards, csv).Register(api, guard...)
	if deps.AdmitCards != nil {
		cards.GET("/:id/pdf", NewAdmitCardHandler(deps.AdmitCards).PDF)
	}

	notices := NewResourceHandler(res.Notices, csv).Register(api, guard...)
	if deps.Attachments != nil {
		attachments := NewNoticeHandler(deps.Attachments, prefix, cfg.UploadMaxBytes)
		notices.POST("/:id/attachment", write(attachments.Upload)...)
		notices.GET("/:id/attachment", attachments.Link)
		api.GET("/files/:token", attachments.Download)
	}

	return r
}
