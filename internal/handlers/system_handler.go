package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GmNoman/dentned-api/internal/httpresp"
)

type SystemHandler struct {
	port string
}

func NewSystemHandler(port string) *SystemHandler {
	return &SystemHandler{port: port}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Dental API is running! Use these endpoints:\n\n"+
		"/api/patients - Get all patients\n"+
		"/api/treatments - Get all treatments\n"+
		"/api/doctors - Get all doctors\n"+
		"/api/rooms - Get all rooms\n"+
		"/api/appointments - Get all appointments\n"+
		"/api/appointments/book - Book new appointment\n"+
		"/api/appointments/comprehensive - Book with full patient details")
}

func (h *SystemHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"message":   "Dental API is running successfully",
	})
}

func (h *SystemHandler) Test(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"message":     "API test successful",
		"environment": gin.Mode(),
		"port":        h.port,
	})
}
