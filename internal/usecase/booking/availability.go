package booking

import (
	"context"
	"time"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/timezone"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "disponivel"
	SlotPast      SlotStatus = "passado"
	SlotBlocked   SlotStatus = "bloqueado"
)

type Slot struct {
	Horario string     `json:"horario"`
	Status  SlotStatus `json:"status"`
}

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timezone.Now,
	}
}

// WithClock troca a fonte de "agora"; usado em teste.
func (uc *GetAvailability) WithClock(now func() time.Time) *GetAvailability {
	uc.now = now
	return uc
}

// Execute projeta a grade do catálogo sobre um dia. "Passado" é função pura
// do instante atual e vence qualquer estado de bloqueio, recalculado a cada
// chamada. Sem barbeiro informado, apenas o passado é marcado; o filtro
// por barbeiro fica adiado até a escolha de um.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	data string,
	nomeBarbeiro string,
) ([]Slot, error) {

	day, err := time.ParseInLocation("2006-01-02", data, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("data_invalida")
	}

	blocked := make(map[string]bool)
	if nomeBarbeiro != "" {
		slots, err := uc.repo.ListBlockedSlotsByBarberAndDate(ctx, nomeBarbeiro, data)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			blocked[s.Horario] = true
		}
	}

	now := uc.now()
	times := catalog.SlotTimes()
	out := make([]Slot, 0, len(times))

	for _, hm := range times {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			continue
		}

		instant := time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			timezone.Location(),
		)

		status := SlotAvailable
		switch {
		case instant.Before(now):
			status = SlotPast
		case blocked[hm]:
			status = SlotBlocked
		}

		out = append(out, Slot{Horario: hm, Status: status})
	}

	return out, nil
}
