package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GmNoman/dentned-api/internal/audit"
	"github.com/GmNoman/dentned-api/internal/config"
	"github.com/GmNoman/dentned-api/internal/handlers"
	infraRepo "github.com/GmNoman/dentned-api/internal/infra/repository"
	"github.com/GmNoman/dentned-api/internal/middleware"
	ucBooking "github.com/GmNoman/dentned-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clinicRepo := infraRepo.NewClinicGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(clinicRepo, auditDispatcher)
	comprehensiveUC := ucBooking.NewBookComprehensive(clinicRepo, auditDispatcher)
	slotsUC := ucBooking.NewGetAvailableSlots(clinicRepo)
	availabilityUC := ucBooking.NewGetAvailability(clinicRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(cfg.ServerPort)
	patientHandler := handlers.NewPatientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		clinicRepo,
		cfg.ClinicTimezone,
		bookUC,
		comprehensiveUC,
		slotsUC,
		availabilityUC,
	)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Test)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/patients", patientHandler.List)

		api.GET("/doctors", catalogHandler.ListDoctors)
		api.GET("/doctors/search", catalogHandler.SearchDoctors)
		api.GET("/rooms", catalogHandler.ListRooms)
		api.GET("/treatments", catalogHandler.ListTreatments)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/available", appointmentHandler.AvailableSlots)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.GET("/appointments/:id", appointmentHandler.Get)

		api.POST("/appointments/book", appointmentHandler.Book)
		api.POST("/appointments/comprehensive", appointmentHandler.BookComprehensive)
	}
}
