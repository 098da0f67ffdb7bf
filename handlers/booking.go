package handlers

import (
	"errors"
	"net/http"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

type bookingRequest struct {
	Treatment   string  `json:"treatment" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Slot        string  `json:"slot" binding:"required"`
	Patient     string  `json:"patient" binding:"required"`
	PatientName string  `json:"patientName"`
	Price       float64 `json:"price"`
}

// CreateBookingHandler handles POST /booking. A duplicate is reported with success=false.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), models.Booking{
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Price:       req.Price,
	})
	if errors.Is(err, booking.ErrAdmissionConflict) {
		utils.JSONError(c, http.StatusConflict, "Booking conflict, please retry", err.Error())
		return
	}
	if err != nil {
		logger.Error("Booking admission failed", zap.String("patient", req.Patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result.Existing, "reason": result.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result.Stored})
}

// ListPatientBookingsHandler handles GET /booking?patient=. Patients may only read their own bookings.
func (h *BookingHandler) ListPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" || patient != middleware.RequesterEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}

	bookings, err := h.Service.ListPatientBookings(c.Request.Context(), patient)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /booking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, "Failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RecordPaymentHandler handles PATCH /booking/:id.
func (h *BookingHandler) RecordPaymentHandler(c *gin.Context) {
	var record models.PaymentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment record", err.Error())
		return
	}

	b, err := h.Service.RecordPayment(c.Request.Context(), c.Param("id"), record)
	if err != nil {
		h.writeBookingError(c, "Failed to record payment", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidBookingID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id", err.Error())
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	default:
		getLogger(c).Error(message, zap.String("bookingID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
