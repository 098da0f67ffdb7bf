package handlers

import (
	"errors"
	"net/http"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(service doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: service}
}

// ListDoctorsHandler handles GET /doctor.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctorHandler handles POST /doctor.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	created, err := h.Service.AddDoctor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidDoctor) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
			return
		}
		if errors.Is(err, doctorRepo.ErrDuplicateDoctor) {
			utils.JSONError(c, http.StatusConflict, "Doctor already exists", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDoctorHandler handles DELETE /doctor/:email.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.Service.RemoveDoctor(c.Request.Context(), email); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": email})
}
