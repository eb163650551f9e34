package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	if err := CanConfirm(StatusPending); err != nil {
		t.Fatalf("pending should be confirmable: %v", err)
	}
	if err := CanConfirm(StatusConfirmed); err == nil {
		t.Fatal("confirmed should not be confirmable again")
	}

	if err := CanComplete(StatusConfirmed); err != nil {
		t.Fatalf("confirmed should be completable: %v", err)
	}
	if err := CanComplete(StatusPending); err == nil {
		t.Fatal("pending should not be completable without confirmation")
	}

	// qualquer não-terminal pode cancelar
	if err := CanCancel(StatusPending); err != nil {
		t.Fatalf("pending should be cancellable: %v", err)
	}
	if err := CanCancel(StatusConfirmed); err != nil {
		t.Fatalf("confirmed should be cancellable: %v", err)
	}
	if err := CanCancel(StatusCompleted); err == nil {
		t.Fatal("completed should not be cancellable")
	}
	if err := CanCancel(StatusCancelled); err == nil {
		t.Fatal("cancelled should not be cancellable again")
	}
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", ap.Status)
	}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatal("CompletedAt not set")
	}

	// linha cancelada preserva histórico
	ap2 := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Cancel(ap2, now); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if ap2.Status != string(StatusCancelled) || ap2.CancelledAt == nil {
		t.Fatal("cancel did not record status and timestamp")
	}
}
