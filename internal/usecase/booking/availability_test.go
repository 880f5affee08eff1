package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/models"
	"github.com/barbearia-sousa/agenda-api/internal/timezone"
)

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04", value, timezone.Location())
	require.NoError(t, err)
	return func() time.Time { return now }
}

func slotsByHorario(slots []Slot) map[string]SlotStatus {
	out := make(map[string]SlotStatus, len(slots))
	for _, s := range slots {
		out[s.Horario] = s.Status
	}
	return out
}

func TestAvailabilityMarksPastSlots(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo).WithClock(fixedClock(t, "2025-11-25 12:00"))

	slots, err := uc.Execute(context.Background(), "2025-11-25", "")
	require.NoError(t, err)
	require.Len(t, slots, 17)

	byHorario := slotsByHorario(slots)
	assert.Equal(t, SlotPast, byHorario["08:00"])
	assert.Equal(t, SlotPast, byHorario["11:30"])
	assert.Equal(t, SlotAvailable, byHorario["13:00"])
	assert.Equal(t, SlotAvailable, byHorario["17:00"])
}

func TestAvailabilityFutureDayAllAvailable(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo).WithClock(fixedClock(t, "2025-11-25 12:00"))

	slots, err := uc.Execute(context.Background(), "2025-11-26", "")
	require.NoError(t, err)

	for _, s := range slots {
		assert.Equal(t, SlotAvailable, s.Status, "horario %s", s.Horario)
	}
}

func TestAvailabilityPastDayAllPast(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo).WithClock(fixedClock(t, "2025-11-25 12:00"))

	slots, err := uc.Execute(context.Background(), "2025-11-24", "")
	require.NoError(t, err)

	for _, s := range slots {
		assert.Equal(t, SlotPast, s.Status, "horario %s", s.Horario)
	}
}

func TestAvailabilityBlockedOnlyWithBarber(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.CreateBlockedSlot(context.Background(), &models.BlockedSlot{
		NomeBarbeiro: "Pedro Henrique Rodrigues",
		Data:         "2025-11-26",
		Horario:      "14:00",
		Motivo:       domain.MotivoAgendamento,
	}))

	uc := NewGetAvailability(repo).WithClock(fixedClock(t, "2025-11-25 12:00"))

	// Com o barbeiro informado, o slot reservado aparece bloqueado.
	slots, err := uc.Execute(context.Background(), "2025-11-26", "Pedro Henrique Rodrigues")
	require.NoError(t, err)
	assert.Equal(t, SlotBlocked, slotsByHorario(slots)["14:00"])

	// Sem barbeiro, o filtro fica adiado e o slot segue disponível.
	slots, err = uc.Execute(context.Background(), "2025-11-26", "")
	require.NoError(t, err)
	assert.Equal(t, SlotAvailable, slotsByHorario(slots)["14:00"])

	// O bloqueio de um barbeiro não afeta a grade de outro.
	slots, err = uc.Execute(context.Background(), "2025-11-26", "Samuel Torres")
	require.NoError(t, err)
	assert.Equal(t, SlotAvailable, slotsByHorario(slots)["14:00"])
}

func TestAvailabilityPastWinsOverBlocked(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.CreateBlockedSlot(context.Background(), &models.BlockedSlot{
		NomeBarbeiro: "Pedro Henrique Rodrigues",
		Data:         "2025-11-25",
		Horario:      "09:00",
		Motivo:       domain.MotivoAgendamento,
	}))

	uc := NewGetAvailability(repo).WithClock(fixedClock(t, "2025-11-25 12:00"))

	slots, err := uc.Execute(context.Background(), "2025-11-25", "Pedro Henrique Rodrigues")
	require.NoError(t, err)
	assert.Equal(t, SlotPast, slotsByHorario(slots)["09:00"])
}

func TestAvailabilityInvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), "25/11/2025", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "data_invalida"))
}
