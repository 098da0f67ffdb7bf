package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// asRequester simulates JWTAuthMiddleware having verified email.
func asRequester(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, email)
		c.Next()
	}
}

func TestCreateBookingHandler(t *testing.T) {
	stored := &models.Booking{Treatment: "Teeth Orthodontics", Date: "May 14, 2022", Slot: "08.00 AM - 08.30 AM", Patient: "a@x.com"}
	svc := &fakeBookingService{result: booking.AdmissionResult{Accepted: true, Stored: stored}}
	h := NewBookingHandler(svc)
	r := gin.New()
	r.POST("/booking", h.CreateBookingHandler)

	body := `{"treatment":"Teeth Orthodontics","date":"May 14, 2022","slot":"08.00 AM - 08.30 AM","patient":"a@x.com","patientName":"Ann"}`
	w := serve(r, http.MethodPost, "/booking", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Booking.Patient != "a@x.com" {
		t.Errorf("response = %+v", resp)
	}
	if len(svc.candidates) != 1 || svc.candidates[0].PatientName != "Ann" || svc.candidates[0].Paid {
		t.Errorf("candidate = %+v", svc.candidates)
	}
}

func TestCreateBookingHandlerDuplicate(t *testing.T) {
	existing := &models.Booking{Treatment: "T", Date: "D", Slot: "S1", Patient: "a@x.com"}
	svc := &fakeBookingService{result: booking.AdmissionResult{Reason: booking.ReasonDuplicate, Existing: existing}}
	r := gin.New()
	r.POST("/booking", NewBookingHandler(svc).CreateBookingHandler)

	w := serve(r, http.MethodPost, "/booking", `{"treatment":"T","date":"D","slot":"S2","patient":"a@x.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != false || resp["reason"] != booking.ReasonDuplicate {
		t.Errorf("response = %v", resp)
	}
	if b, ok := resp["booking"].(map[string]interface{}); !ok || b["slot"] != "S1" {
		t.Errorf("existing booking not returned: %v", resp["booking"])
	}
}

func TestCreateBookingHandlerErrors(t *testing.T) {
	svc := &fakeBookingService{err: errors.New("mongo down")}
	r := gin.New()
	r.POST("/booking", NewBookingHandler(svc).CreateBookingHandler)

	if w := serve(r, http.MethodPost, "/booking", `{"treatment":"T"}`); w.Code != http.StatusBadRequest {
		t.Errorf("incomplete body status = %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/booking", `{"treatment":"T","date":"D","slot":"S","patient":"p"}`); w.Code != http.StatusInternalServerError {
		t.Errorf("store fault status = %d", w.Code)
	}
}

func TestCreateBookingHandlerUnresolvedConflict(t *testing.T) {
	svc := &fakeBookingService{err: fmt.Errorf("%w: winner gone", booking.ErrAdmissionConflict)}
	r := gin.New()
	r.POST("/booking", NewBookingHandler(svc).CreateBookingHandler)

	w := serve(r, http.MethodPost, "/booking", `{"treatment":"T","date":"D","slot":"S","patient":"p"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if strings.Contains(w.Body.String(), `"booking":null`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAvailabilityHandlerPassesDate(t *testing.T) {
	svc := &fakeBookingService{available: []models.Service{{Name: "T", Slots: []string{}}}}
	r := gin.New()
	r.GET("/available", NewBookingHandler(svc).AvailabilityHandler)

	w := serve(r, http.MethodGet, "/available?date=May%2020,%202022", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastDate != "May 20, 2022" {
		t.Errorf("date = %q", svc.lastDate)
	}
	if !strings.Contains(w.Body.String(), `"slots":[]`) {
		t.Errorf("empty slot list not serialized: %s", w.Body.String())
	}
}

func TestGetBookingHandler(t *testing.T) {
	id := "62a1b2c3d4e5f60718293a4b"
	svc := &fakeBookingService{bookings: map[string]models.Booking{id: {Patient: "a@x.com"}}}
	r := gin.New()
	r.GET("/booking/:id", NewBookingHandler(svc).GetBookingHandler)

	tests := []struct {
		path string
		want int
	}{
		{"/booking/" + id, http.StatusOK},
		{"/booking/not-an-id", http.StatusBadRequest},
		{"/booking/62a1b2c3d4e5f60718293a4c", http.StatusNotFound},
	}
	for _, tc := range tests {
		if w := serve(r, http.MethodGet, tc.path, ""); w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.path, w.Code, tc.want)
		}
	}
}

func TestRecordPaymentHandler(t *testing.T) {
	id := "62a1b2c3d4e5f60718293a4b"
	svc := &fakeBookingService{bookings: map[string]models.Booking{id: {Patient: "a@x.com"}}}
	r := gin.New()
	r.PATCH("/booking/:id", NewBookingHandler(svc).RecordPaymentHandler)

	if w := serve(r, http.MethodPatch, "/booking/"+id, `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing transaction id status = %d", w.Code)
	}
	w := serve(r, http.MethodPatch, "/booking/"+id, `{"transactionId":"pi_123","amount":50}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if b := svc.bookings[id]; !b.Paid || b.TransactionID != "pi_123" {
		t.Errorf("booking not marked paid: %+v", b)
	}
}

func TestListPatientBookingsHandlerChecksIdentity(t *testing.T) {
	svc := &fakeBookingService{bookings: map[string]models.Booking{
		"1": {Patient: "a@x.com", Treatment: "T"},
		"2": {Patient: "b@x.com", Treatment: "T"},
	}}
	r := gin.New()
	r.GET("/booking", asRequester("a@x.com"), NewBookingHandler(svc).ListPatientBookingsHandler)

	w := serve(r, http.MethodGet, "/booking?patient=a@x.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []models.Booking
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0].Patient != "a@x.com" {
		t.Errorf("bookings = %+v", list)
	}

	w = serve(r, http.MethodGet, "/booking?patient=b@x.com", "")
	if w.Code != http.StatusForbidden || !strings.Contains(w.Body.String(), "Forbidden Access") {
		t.Errorf("foreign patient got %d %s", w.Code, w.Body.String())
	}
}

func TestCreatePaymentIntentHandler(t *testing.T) {
	payments := &fakePayments{}
	r := gin.New()
	r.POST("/create-payment-intent", NewPaymentHandler(payments).CreatePaymentIntentHandler)

	w := serve(r, http.MethodPost, "/create-payment-intent", `{"price":45.5}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"clientSecret":"pi_secret"`) {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
	if payments.lastPrice != 45.5 {
		t.Errorf("price = %v", payments.lastPrice)
	}

	if w := serve(r, http.MethodPost, "/create-payment-intent", `{"price":0}`); w.Code != http.StatusBadRequest {
		t.Errorf("zero price status = %d", w.Code)
	}

	payments.err = errors.New("stripe unavailable")
	if w := serve(r, http.MethodPost, "/create-payment-intent", `{"price":10}`); w.Code != http.StatusBadGateway {
		t.Errorf("gateway failure status = %d", w.Code)
	}
}

func TestUserHandlers(t *testing.T) {
	svc := &fakeUserService{users: map[string]models.User{}, admins: map[string]bool{}}
	h := NewUserHandler(svc)
	r := gin.New()
	r.PUT("/user/:email", h.UpsertUserHandler)
	r.GET("/admin/:email", h.CheckAdminHandler)
	r.PUT("/user/admin/:email", h.MakeAdminHandler)

	w := serve(r, http.MethodPut, "/user/a@x.com", `{"name":"Ann"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"accessToken":"token-a@x.com"`) {
		t.Fatalf("upsert got %d %s", w.Code, w.Body.String())
	}
	if w := serve(r, http.MethodPut, "/user/b@x.com", ""); w.Code != http.StatusOK {
		t.Errorf("upsert without body status = %d", w.Code)
	}
	if w := serve(r, http.MethodPut, "/user/%20", ""); w.Code != http.StatusBadRequest {
		t.Errorf("blank email status = %d body=%s", w.Code, w.Body.String())
	}

	if w := serve(r, http.MethodGet, "/admin/a@x.com", ""); !strings.Contains(w.Body.String(), `"admin":false`) {
		t.Errorf("admin check = %s", w.Body.String())
	}
	if w := serve(r, http.MethodPut, "/user/admin/a@x.com", ""); w.Code != http.StatusOK {
		t.Errorf("make admin status = %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/admin/a@x.com", ""); !strings.Contains(w.Body.String(), `"admin":true`) {
		t.Errorf("admin check after promotion = %s", w.Body.String())
	}
	if w := serve(r, http.MethodPut, "/user/admin/ghost@x.com", ""); w.Code != http.StatusNotFound {
		t.Errorf("promote unknown status = %d", w.Code)
	}
}

func TestDoctorHandlers(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorService{})
	r := gin.New()
	r.GET("/doctor", h.ListDoctorsHandler)
	r.POST("/doctor", h.AddDoctorHandler)
	r.DELETE("/doctor/:email", h.DeleteDoctorHandler)

	body := `{"name":"Dr. Rahim","email":"rahim@clinic.com","specialty":"Oral Surgery"}`
	if w := serve(r, http.MethodPost, "/doctor", body); w.Code != http.StatusCreated {
		t.Fatalf("add status = %d %s", w.Code, w.Body.String())
	}
	if w := serve(r, http.MethodPost, "/doctor", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate add status = %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/doctor", `{"name":"x","email":"not-an-email"}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid email status = %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/doctor", `{"name":"  ","email":"d@x.com"}`); w.Code != http.StatusBadRequest {
		t.Errorf("blank name status = %d body=%s", w.Code, w.Body.String())
	}
	if w := serve(r, http.MethodGet, "/doctor", ""); !strings.Contains(w.Body.String(), "rahim@clinic.com") {
		t.Errorf("list = %s", w.Body.String())
	}
	if w := serve(r, http.MethodDelete, "/doctor/rahim@clinic.com", ""); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	if w := serve(r, http.MethodDelete, "/doctor/rahim@clinic.com", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}
