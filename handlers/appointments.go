package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "medassist/database/repository/appointment"
	"medassist/models"
	"medassist/utils"
)

// AppointmentRepo is wired at startup before routes are registered.
var AppointmentRepo appointmentRepo.Repository

// ListAppointments returns the non-cancelled appointments for a patient phone.
func ListAppointments(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter is required"})
		return
	}

	appts, err := AppointmentRepo.FindActiveByPhone(c.Request.Context(), phone)
	if err != nil {
		utils.GetLogger().Error("appointment listing failed",
			zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}

// CancelAppointment transitions an appointment to cancelled.
func CancelAppointment(c *gin.Context) {
	id := c.Param("id")

	appt, err := AppointmentRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("appointment lookup failed",
			zap.String("appointmentID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up appointment"})
		return
	}
	if appt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if appt.Status == models.StatusCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "appointment is already cancelled"})
		return
	}

	if err := AppointmentRepo.UpdateStatus(c.Request.Context(), id, models.StatusCancelled); err != nil {
		utils.GetLogger().Error("appointment cancellation failed",
			zap.String("appointmentID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointmentId": id, "status": models.StatusCancelled})
}
