package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GmNoman/dentned-api/internal/httperr"
	"github.com/GmNoman/dentned-api/internal/httpresp"
	"github.com/GmNoman/dentned-api/internal/models"
)

// CatalogHandler serves the read-only reference tables: doctors, rooms
// and treatments.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ======================================================
// DOCTORS
// ======================================================

func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", err.Error())
		return
	}

	httpresp.List(c, doctors)
}

func (h *CatalogHandler) SearchDoctors(c *gin.Context) {
	name := strings.TrimSpace(strings.ToLower(c.Query("name")))
	specialty := strings.TrimSpace(strings.ToLower(c.Query("specialty")))

	q := h.db.Model(&models.Doctor{})

	if name != "" {
		like := "%" + name + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}

	if specialty != "" {
		q = q.Where("LOWER(specialty) LIKE ?", "%"+specialty+"%")
	}

	var doctors []models.Doctor
	if err := q.Order("id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_search_doctors", err.Error())
		return
	}

	httpresp.List(c, doctors)
}

// ======================================================
// ROOMS
// ======================================================

func (h *CatalogHandler) ListRooms(c *gin.Context) {
	var rooms []models.Room
	if err := h.db.Order("id ASC").Find(&rooms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rooms", err.Error())
		return
	}

	httpresp.List(c, rooms)
}

// ======================================================
// TREATMENTS
// ======================================================

func (h *CatalogHandler) ListTreatments(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.Order("id ASC").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", err.Error())
		return
	}

	httpresp.List(c, treatments)
}
