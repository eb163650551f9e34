package cache

import (
	"context"
	"testing"
	"time"
)

// Sem Redis o cache vira miss/no-op; a API continua funcionando.
func TestAvailabilityNilClient(t *testing.T) {
	a := NewAvailability(nil, time.Minute)
	ctx := context.Background()

	if _, ok := a.GetSlots(ctx, 1, 2, "2026-03-09"); ok {
		t.Fatal("nil client must always miss")
	}

	// não pode entrar em pânico
	a.SetSlots(ctx, 1, 2, "2026-03-09", []string{"09:00"})
	a.InvalidateDay(ctx, 1, "2026-03-09")
}
