package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"doctorsportal/models"
)

func candidate() models.Booking {
	return models.Booking{
		Treatment:   "Cleaning",
		Date:        "2024-01-01",
		Patient:     "a@x.com",
		PatientName: "Ann",
		Slot:        "9:00",
	}
}

func TestAdmitAcceptsNewBooking(t *testing.T) {
	store := &memoryBookings{}
	c := candidate()
	c.Paid = true
	c.TransactionID = "forged"

	res, err := Admit(context.Background(), c, store, AdmissionPolicy{})
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if !res.Accepted || res.Stored == nil || res.Existing != nil {
		t.Fatalf("Admit = %+v, want accepted with stored booking", res)
	}
	if res.Stored.ID.IsZero() {
		t.Fatal("stored booking has no id")
	}
	if res.Stored.Paid || res.Stored.TransactionID != "" {
		t.Fatalf("stored booking should be unpaid, got %+v", res.Stored)
	}
	if n := store.count(c.Key()); n != 1 {
		t.Fatalf("store holds %d bookings for key, want 1", n)
	}

	found, _ := store.FindByKey(context.Background(), c.Key())
	want := c
	want.ID = res.Stored.ID
	want.Paid = false
	want.TransactionID = ""
	if *found != want {
		t.Fatalf("stored = %+v, want %+v", *found, want)
	}
}

func TestAdmitTwiceRejectsSecond(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()

	first, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil || !first.Accepted {
		t.Fatalf("first Admit = %+v, %v", first, err)
	}
	second, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil {
		t.Fatalf("second Admit: %v", err)
	}
	if second.Accepted || second.Reason != ReasonDuplicate {
		t.Fatalf("second Admit = %+v, want duplicate rejection", second)
	}
	if second.Existing == nil || *second.Existing != *first.Stored {
		t.Fatalf("existing = %+v, want %+v", second.Existing, first.Stored)
	}
}

func TestAdmitKeyIgnoresSlot(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()

	booked := candidate()
	booked.Slot = "10:00"
	if _, err := Admit(ctx, booked, store, AdmissionPolicy{}); err != nil {
		t.Fatalf("seed Admit: %v", err)
	}

	res, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if res.Accepted {
		t.Fatal("candidate with same triple and different slot was accepted")
	}
	if res.Existing.Slot != "10:00" {
		t.Fatalf("existing slot = %q, want 10:00", res.Existing.Slot)
	}
}

func TestAdmitAllowsUnknownTreatment(t *testing.T) {
	c := candidate()
	c.Treatment = "Not In Catalog"
	res, err := Admit(context.Background(), c, &memoryBookings{}, AdmissionPolicy{})
	if err != nil || !res.Accepted {
		t.Fatalf("Admit = %+v, %v; want accepted", res, err)
	}
}

func TestAdmitDefaultPolicyIgnoresTakenSlot(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()

	other := candidate()
	other.Patient = "b@x.com"
	if _, err := Admit(ctx, other, store, AdmissionPolicy{}); err != nil {
		t.Fatal(err)
	}

	res, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil || !res.Accepted {
		t.Fatalf("Admit = %+v, %v; want accepted", res, err)
	}
}

func TestAdmitStrictPolicyRejectsTakenSlot(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()
	strict := AdmissionPolicy{StrictSlots: true}

	other := candidate()
	other.Patient = "b@x.com"
	if _, err := Admit(ctx, other, store, strict); err != nil {
		t.Fatal(err)
	}

	res, err := Admit(ctx, candidate(), store, strict)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if res.Accepted || res.Reason != ReasonSlotTaken {
		t.Fatalf("Admit = %+v, want slot_taken rejection", res)
	}
	if res.Existing == nil || res.Existing.Patient != "b@x.com" {
		t.Fatalf("existing = %+v", res.Existing)
	}

	free := candidate()
	free.Slot = "11:00"
	res, err = Admit(ctx, free, store, strict)
	if err != nil || !res.Accepted {
		t.Fatalf("Admit free slot = %+v, %v", res, err)
	}
}

func TestAdmitSurfacesStoreFaults(t *testing.T) {
	store := &memoryBookings{failWith: errStoreDown}

	res, err := Admit(context.Background(), candidate(), store, AdmissionPolicy{})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("Admit error = %v, want store fault", err)
	}
	if res.Accepted || res.Existing != nil || res.Reason != "" {
		t.Fatalf("fault must not look like a rejection: %+v", res)
	}
}

func TestAdmitLostRaceReportsDuplicate(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()

	first, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil || !first.Accepted {
		t.Fatalf("first Admit = %+v, %v", first, err)
	}

	// The pre-check misses, so the unique key has to catch the duplicate.
	store.staleLookups = 1
	second, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if err != nil {
		t.Fatalf("second Admit: %v", err)
	}
	if second.Accepted || second.Reason != ReasonDuplicate {
		t.Fatalf("second Admit = %+v, want duplicate", second)
	}
	if second.Existing == nil || second.Existing.ID != first.Stored.ID {
		t.Fatalf("existing = %+v, want first booking", second.Existing)
	}
	if n := store.count(candidate().Key()); n != 1 {
		t.Fatalf("store holds %d bookings for key, want 1", n)
	}
}

func TestAdmitConflictWithoutReadableWinnerIsError(t *testing.T) {
	store := &memoryBookings{}
	ctx := context.Background()

	if _, err := Admit(ctx, candidate(), store, AdmissionPolicy{}); err != nil {
		t.Fatalf("first Admit: %v", err)
	}

	// Both the pre-check and the re-read after the conflict miss.
	store.staleLookups = 2
	res, err := Admit(ctx, candidate(), store, AdmissionPolicy{})
	if !errors.Is(err, ErrAdmissionConflict) {
		t.Fatalf("err = %v, want ErrAdmissionConflict", err)
	}
	if res.Accepted || res.Existing != nil {
		t.Fatalf("result = %+v, want zero value", res)
	}
}

func TestAdmitConcurrentSubmissions(t *testing.T) {
	store := &memoryBookings{}
	const submissions = 32

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Admit(context.Background(), candidate(), store, AdmissionPolicy{})
			if err != nil {
				t.Errorf("Admit: %v", err)
				return
			}
			if res.Accepted {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Fatalf("accepted %d submissions, want exactly 1", accepted)
	}
	if n := store.count(candidate().Key()); n != 1 {
		t.Fatalf("store holds %d bookings for key, want 1", n)
	}
}
