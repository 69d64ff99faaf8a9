package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/GmNoman/dentned-api/internal/domain/booking"
	"github.com/GmNoman/dentned-api/internal/dto"
	"github.com/GmNoman/dentned-api/internal/httperr"
	"github.com/GmNoman/dentned-api/internal/httpresp"
	"github.com/GmNoman/dentned-api/internal/timezone"
	ucBooking "github.com/GmNoman/dentned-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo domain.Repository
	tz   string

	bookUC          *ucBooking.BookAppointment
	comprehensiveUC *ucBooking.BookComprehensive
	slotsUC         *ucBooking.GetAvailableSlots
	availabilityUC  *ucBooking.GetAvailability
}

func NewAppointmentHandler(
	repo domain.Repository,
	tz string,
	bookUC *ucBooking.BookAppointment,
	comprehensiveUC *ucBooking.BookComprehensive,
	slotsUC *ucBooking.GetAvailableSlots,
	availabilityUC *ucBooking.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:            repo,
		tz:              tz,
		bookUC:          bookUC,
		comprehensiveUC: comprehensiveUC,
		slotsUC:         slotsUC,
		availabilityUC:  availabilityUC,
	}
}

func (h *AppointmentHandler) location() *time.Location {
	return timezone.Location(h.tz)
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientFirstName string `json:"patientFirstName" binding:"required"`
	PatientLastName  string `json:"patientLastName" binding:"required"`
	AppointmentDate  string `json:"appointmentDate" binding:"required"`
	AppointmentTime  string `json:"appointmentTime" binding:"required"`
	Procedure        string `json:"procedure"`
	Notes            string `json:"notes"`
}

type ComprehensiveBookingRequest struct {
	PatientFirstName string `json:"patientFirstName" binding:"required"`
	PatientLastName  string `json:"patientLastName" binding:"required"`
	BirthDate        string `json:"birthDate"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	InsuranceProvider     string `json:"insuranceProvider"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber"`

	PreferredDoctorID *uint `json:"preferredDoctorId"`

	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Procedure       string `json:"procedure"`
	Notes           string `json:"notes"`
}

func recordToDTO(rec domain.AppointmentRecord) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		AppointmentID: rec.ID,
		PatientID:     rec.PatientID,
		PatientName:   rec.PatientFirstName + " " + rec.PatientLastName,
		DoctorID:      rec.DoctorID,
		RoomID:        rec.RoomID,
		StartTime:     rec.StartTime,
		EndTime:       rec.EndTime,
		Procedure:     rec.Title,
		Notes:         rec.Notes,
	}
}

// ======================================================
// BOOK (SIMPLE)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"patientFirstName, patientLastName, appointmentDate and appointmentTime are required.")
		return
	}

	date, err := parseClinicDate(req.AppointmentDate, h.location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "appointmentDate is not a valid date.")
		return
	}

	result, err := h.bookUC.Execute(
		c.Request.Context(),
		ucBooking.BookAppointmentInput{
			PatientFirstName: req.PatientFirstName,
			PatientLastName:  req.PatientLastName,
			AppointmentDate:  date,
			AppointmentTime:  req.AppointmentTime,
			Procedure:        req.Procedure,
			Notes:            req.Notes,
		},
	)
	if err != nil {
		httperr.Internal(c, "booking_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"success":       true,
		"message":       "Appointment booked successfully",
		"appointmentId": result.AppointmentID,
		"patientId":     result.PatientID,
		"doctorId":      result.DoctorID,
		"roomId":        result.RoomID,
	})
}

// ======================================================
// BOOK (COMPREHENSIVE)
// ======================================================

func (h *AppointmentHandler) BookComprehensive(c *gin.Context) {
	var req ComprehensiveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"patientFirstName and patientLastName are required.")
		return
	}

	// Everything but the name is optional; a missing date books the
	// next day, a missing time falls back to the 10:00 default.
	var date time.Time
	if req.AppointmentDate != "" {
		parsed, err := parseClinicDate(req.AppointmentDate, h.location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "appointmentDate is not a valid date.")
			return
		}
		date = parsed
	} else {
		date = timezone.NowIn(h.tz).AddDate(0, 0, 1)
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := parseClinicDate(req.BirthDate, h.location())
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "birthDate is not a valid date.")
			return
		}
		birthDate = &parsed
	}

	result, err := h.comprehensiveUC.Execute(
		c.Request.Context(),
		ucBooking.BookComprehensiveInput{
			FirstName:             req.PatientFirstName,
			LastName:              req.PatientLastName,
			BirthDate:             birthDate,
			Phone:                 req.Phone,
			Email:                 req.Email,
			InsuranceProvider:     req.InsuranceProvider,
			InsurancePolicyNumber: req.InsurancePolicyNumber,
			PreferredDoctorID:     req.PreferredDoctorID,
			AppointmentDate:       date,
			AppointmentTime:       req.AppointmentTime,
			Procedure:             req.Procedure,
			Notes:                 req.Notes,
		},
	)
	if err != nil {
		httperr.Internal(c, "booking_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"success":          true,
		"appointmentId":    result.AppointmentID,
		"patientId":        result.PatientID,
		"doctorId":         result.DoctorID,
		"roomId":           result.RoomID,
		"confirmationCode": result.ConfirmationCode,
		"nextSteps":        result.NextSteps,
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	records, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", err.Error())
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, recordToDTO(rec))
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	rec, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", err.Error())
		return
	}
	if rec == nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, recordToDTO(*rec))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required.")
		return
	}

	date, err := parseClinicDate(dateStr, h.location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date is not a valid date.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"date":           date.Format("2006-01-02"),
		"availableSlots": slots,
	})
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required.")
		return
	}

	date, err := parseClinicDate(dateStr, h.location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date is not a valid date.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:      date,
			StartTime: c.Query("startTime"),
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"success":        true,
		"availableSlots": slots,
		"totalSlots":     len(slots),
	})
}
