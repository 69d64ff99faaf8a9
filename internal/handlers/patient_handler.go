package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GmNoman/dentned-api/internal/httperr"
	"github.com/GmNoman/dentned-api/internal/httpresp"
	"github.com/GmNoman/dentned-api/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.Order("id ASC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", err.Error())
		return
	}

	httpresp.List(c, patients)
}
