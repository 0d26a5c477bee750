package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/config"
	sessiondomain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/handlers"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/infra/draftstore"
	infraRepo "github.com/MediLinkServices01/telehealth-scheduler/internal/infra/repository"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/infra/transport"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/middleware"
	ucBooking "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/booking"
	ucConsultation "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/consultation"
	ucDirectory "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/directory"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewTelehealthGormRepository(db)
	drafts := draftstore.NewRedisStore(rdb)
	registry := sessiondomain.NewRegistry()
	mediaTransport := transport.NewLoggingTransport(log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — DIRECTORY
	// ======================================================
	searchUC := ucDirectory.NewSearchPractitioners(repo)

	// ======================================================
	// USE CASES — BOOKING WIZARD
	// ======================================================
	startBookingUC := ucBooking.NewStartBooking(repo, drafts, cfg.ClinicTimezone)
	updateDraftUC := ucBooking.NewUpdateDraft(drafts, cfg.ClinicTimezone)
	advanceUC := ucBooking.NewAdvance(drafts)
	retreatUC := ucBooking.NewRetreat(drafts)
	confirmUC := ucBooking.NewConfirm(repo, repo, drafts, auditDispatcher, cfg.ClinicTimezone)
	listAppointmentsUC := ucBooking.NewListPatientAppointments(repo)

	// ======================================================
	// USE CASES — CONSULTATION
	// ======================================================
	activateUC := ucConsultation.NewActivateSession(repo, registry, mediaTransport, auditDispatcher)
	startSessionUC := ucConsultation.NewStartSession(registry, auditDispatcher)
	endSessionUC := ucConsultation.NewEndSession(registry, auditDispatcher)
	toggleDeviceUC := ucConsultation.NewToggleDevice(registry)
	sendMessageUC := ucConsultation.NewSendMessage(registry, repo)
	summaryUC := ucConsultation.NewSummary(registry, repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	practitionerHandler := handlers.NewPractitionerHandler(searchUC)

	bookingHandler := handlers.NewBookingHandler(
		startBookingUC,
		updateDraftUC,
		advanceUC,
		retreatUC,
		confirmUC,
		listAppointmentsUC,
	)

	consultationHandler := handlers.NewConsultationHandler(
		activateUC,
		startSessionUC,
		endSessionUC,
		toggleDeviceUC,
		sendMessageUC,
		summaryUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC DIRECTORY
		// ------------------------------
		api.GET("/practitioners", practitionerHandler.Search)
		api.GET("/practitioners/categories", practitionerHandler.Categories)
		api.GET("/booking/slots", bookingHandler.ListSlots)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/appointments", bookingHandler.ListMine)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// BOOKING WIZARD
			// ------------------------------
			secured.POST("/booking", bookingHandler.Start)
			secured.GET("/booking/:id", bookingHandler.Get)
			secured.PATCH("/booking/:id", bookingHandler.Update)
			secured.POST("/booking/:id/advance", bookingHandler.Advance)
			secured.POST("/booking/:id/retreat", bookingHandler.Retreat)
			secured.POST("/booking/:id/confirm", bookingHandler.Confirm)

			// ------------------------------
			// CONSULTATIONS
			// ------------------------------
			secured.POST("/consultations", consultationHandler.Activate)
			secured.POST("/consultations/:id/start", consultationHandler.Start)
			secured.POST("/consultations/:id/end", consultationHandler.End)
			secured.POST("/consultations/:id/devices", consultationHandler.ToggleDevice)
			secured.POST("/consultations/:id/messages", consultationHandler.SendMessage)
			secured.GET("/consultations/:id/messages", consultationHandler.ListMessages)
			secured.GET("/consultations/:id/summary", consultationHandler.Summary)
		}
	}
}
