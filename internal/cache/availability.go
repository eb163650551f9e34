package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Availability guarda respostas de disponibilidade por
// barbeiro/data/serviço. A invalidação é por versão: cada mutação de
// agenda incrementa a versão do dia do barbeiro, e as chaves antigas
// simplesmente expiram.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewAvailability aceita rdb nil: todas as operações viram no-op/miss.
func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func (a *Availability) GetSlots(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
) ([]string, bool) {

	if a.rdb == nil {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, a.slotsKey(ctx, barberID, serviceID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (a *Availability) SetSlots(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
	slots []string,
) {

	if a.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := a.rdb.Set(ctx, a.slotsKey(ctx, barberID, serviceID, date), raw, a.ttl).Err(); err != nil {
		zap.L().Debug("availability cache set failed", zap.Error(err))
	}
}

// InvalidateDay descarta tudo que foi cacheado para o barbeiro na
// data (qualquer serviço). Chamado em toda mutação de agendamento.
func (a *Availability) InvalidateDay(ctx context.Context, barberID uint, date string) {
	if a.rdb == nil {
		return
	}

	if err := a.rdb.Incr(ctx, a.versionKey(barberID, date)).Err(); err != nil {
		zap.L().Debug("availability cache invalidation failed", zap.Error(err))
	}
}

func (a *Availability) slotsKey(ctx context.Context, barberID, serviceID uint, date string) string {
	ver, err := a.rdb.Get(ctx, a.versionKey(barberID, date)).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("availability:%d:%s:%d:v%d", barberID, date, serviceID, ver)
}

func (a *Availability) versionKey(barberID uint, date string) string {
	return fmt.Sprintf("availability:ver:%d:%s", barberID, date)
}
