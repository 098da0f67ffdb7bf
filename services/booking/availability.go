package booking

import "doctorsportal/models"

// ResolveDate returns raw, or fallback when raw is empty. Dates are opaque labels and are not normalized.
func ResolveDate(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// ComputeAvailability narrows each service's slots to those not taken by a booking for the same treatment.
// The bookings must already be restricted to a single date. Service order and slot order are preserved,
// and neither input is modified.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.Service {
	taken := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookings {
		slots, ok := taken[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	view := make([]models.Service, 0, len(services))
	for _, svc := range services {
		booked := taken[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, isBooked := booked[slot]; !isBooked {
				open = append(open, slot)
			}
		}
		svc.Slots = open
		view = append(view, svc)
	}
	return view
}
