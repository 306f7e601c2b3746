package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/cache"
	apptDomain "github.com/podoclinic/booking/internal/domain/appointment"
	catalogDomain "github.com/podoclinic/booking/internal/domain/catalog"
	settingsDomain "github.com/podoclinic/booking/internal/domain/settings"
	"github.com/podoclinic/booking/internal/handlers"
	"github.com/podoclinic/booking/internal/middleware"
	ucAdmin "github.com/podoclinic/booking/internal/usecase/admin"
	ucAppointment "github.com/podoclinic/booking/internal/usecase/appointment"
	ucCatalog "github.com/podoclinic/booking/internal/usecase/catalog"
	ucSettings "github.com/podoclinic/booking/internal/usecase/settings"
)

// Deps carries everything the HTTP layer is built from. Cache, Audit and
// Notifier may be nil.
type Deps struct {
	Log         zerolog.Logger
	Location    *time.Location
	CORSOrigins []string

	Appointments apptDomain.Repository
	Catalog      catalogDomain.Repository
	Settings     settingsDomain.Repository

	Cache       cache.Cache
	Audit       *audit.Dispatcher
	AuditReader handlers.AuditReader
	Notifier    ucAppointment.Notifier
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	if d.Location == nil {
		d.Location = time.UTC
	}
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Appointments,
		d.Audit,
		d.Notifier,
		d.Location,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		d.Appointments,
		d.Audit,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		d.Appointments,
		d.Audit,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments)
	getAppointmentUC := ucAppointment.NewGetAppointment(d.Appointments)
	slotsUC := ucAppointment.NewListAvailableSlots(d.Appointments, d.Location)

	// ======================================================
	// 🧠 USE CASES — CATALOG
	// ======================================================
	listServicesUC := ucCatalog.NewListServices(d.Catalog, d.Cache)
	saveServiceUC := ucCatalog.NewSaveService(d.Catalog, d.Cache, d.Audit)
	deleteServiceUC := ucCatalog.NewDeleteService(d.Catalog, d.Cache, d.Audit)

	listCategoriesUC := ucCatalog.NewListCategories(d.Catalog, d.Cache)
	saveCategoryUC := ucCatalog.NewSaveCategory(d.Catalog, d.Cache, d.Audit)
	deleteCategoryUC := ucCatalog.NewDeleteCategory(d.Catalog, d.Cache, d.Audit)

	// ======================================================
	// 🧠 USE CASES — ADMIN / SETTINGS
	// ======================================================
	summaryUC := ucAdmin.NewGetSummary(d.Appointments, d.Catalog, d.Location)
	healthUC := ucAdmin.NewGetHealth(d.Appointments, d.Catalog)
	settingsUC := ucSettings.NewSettings(d.Settings, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		slotsUC,
		d.Location,
	)

	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		saveServiceUC,
		deleteServiceUC,
	)

	categoryHandler := handlers.NewCategoryHandler(
		listCategoriesUC,
		saveCategoryUC,
		deleteCategoryUC,
	)

	adminHandler := handlers.NewAdminHandler(
		summaryUC,
		healthUC,
		d.AuditReader,
		d.Location,
	)

	settingsHandler := handlers.NewSettingsHandler(settingsUC)

	// ======================================================
	// ❤️ LIVENESS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ======================================================
	// 📅 APPOINTMENTS
	// ======================================================
	api.GET("/appointments", appointmentHandler.List)
	api.POST("/appointments", appointmentHandler.Create)
	api.GET("/appointments/:id", appointmentHandler.Get)
	api.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
	api.DELETE("/appointments/:id", appointmentHandler.Delete)
	api.GET("/available-slots", appointmentHandler.AvailableSlots)

	// ======================================================
	// 🦶 CATALOG
	// ======================================================
	api.GET("/services", serviceHandler.List)
	api.POST("/services", serviceHandler.Create)
	api.PUT("/services/:id", serviceHandler.Update)
	api.DELETE("/services/:id", serviceHandler.Delete)

	api.GET("/service-categories", categoryHandler.List)
	api.POST("/service-categories", categoryHandler.Create)
	api.PUT("/service-categories/:id", categoryHandler.Update)
	api.DELETE("/service-categories/:id", categoryHandler.Delete)

	// ======================================================
	// 🛠️ ADMIN
	// ======================================================
	admin := api.Group("/admin")
	{
		admin.GET("/summary", adminHandler.Summary)
		admin.GET("/health", adminHandler.Health)
		if d.AuditReader != nil {
			admin.GET("/audit-logs", adminHandler.AuditLogs)
		}
	}

	// ======================================================
	// ⚙️ SETTINGS
	// ======================================================
	settings := api.Group("/settings")
	{
		settings.GET("", settingsHandler.List)
		settings.POST("", settingsHandler.Upsert)
		settings.POST("/bulk", settingsHandler.Bulk)
		settings.GET("/:key", settingsHandler.Get)
		settings.DELETE("/:key", settingsHandler.Delete)
	}
}
