package main

import "doctorsportal/models"

// clinicSlots are the half-hour appointment windows offered for every treatment.
var clinicSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

var treatments = []string{
	"Teeth Orthodontics",
	"Cosmetic Dentistry",
	"Teeth Cleaning",
	"Cavity Protection",
	"Pediatric Dental",
	"Oral Surgery",
}

// defaultCatalog returns a fresh copy of the treatments offered by the clinic.
func defaultCatalog() []models.Service {
	catalog := make([]models.Service, 0, len(treatments))
	for _, name := range treatments {
		catalog = append(catalog, models.Service{
			Name:  name,
			Slots: append([]string(nil), clinicSlots...),
		})
	}
	return catalog
}
