package booking

import "errors"

// ErrInvalidBookingID is returned when a booking id is not a valid ObjectID hex string.
var ErrInvalidBookingID = errors.New("invalid booking id")

// ErrAdmissionConflict is returned when an insert hit the unique key but the conflicting booking
// could not be read back.
var ErrAdmissionConflict = errors.New("booking admission conflict")
