// File: doctorsportal/handlers/bundle.go
package handlers

import (
	"doctorsportal/middleware"
)

// HandlerBundle groups all endpoint handlers and the collaborators the route gates need.
type HandlerBundle struct {
	Tokens middleware.TokenVerifier
	Roles  middleware.RoleChecker

	Health  *HealthHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	User    *UserHandler
	Doctor  *DoctorHandler
}
