package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTimesGrid(t *testing.T) {
	times := SlotTimes()

	require.Len(t, times, 17)
	assert.Equal(t, "08:00", times[0])
	assert.Equal(t, "17:00", times[len(times)-1])

	// Ordem estritamente crescente (comparação lexicográfica vale para HH:MM).
	for i := 1; i < len(times); i++ {
		assert.Less(t, times[i-1], times[i])
	}
}

func TestSlotTimesLunchGap(t *testing.T) {
	assert.True(t, IsSlotTime("11:30"))
	assert.True(t, IsSlotTime("13:00"))

	// Pausa de almoço: nada entre 11:30 e 13:00.
	assert.False(t, IsSlotTime("12:00"))
	assert.False(t, IsSlotTime("12:30"))
}

func TestIsSlotTime(t *testing.T) {
	tests := []struct {
		horario string
		want    bool
	}{
		{"08:00", true},
		{"14:30", true},
		{"17:00", true},
		{"07:30", false},
		{"17:30", false},
		{"08:15", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.horario, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlotTime(tt.horario))
		})
	}
}

func TestFindBarber(t *testing.T) {
	b, ok := FindBarberByID("pedro")
	require.True(t, ok)
	assert.Equal(t, "Pedro Henrique Rodrigues", b.Nome)

	b, ok = FindBarberByNome("Samuel Torres")
	require.True(t, ok)
	assert.Equal(t, "samuel", b.ID)

	_, ok = FindBarberByNome("Barbeiro Inexistente")
	assert.False(t, ok)
}

func TestFindService(t *testing.T) {
	s, ok := FindServiceByID("corte_barba")
	require.True(t, ok)
	assert.Equal(t, "Corte + Barba", s.Nome)
	assert.Equal(t, 3500, s.PrecoCentavos)
	assert.Equal(t, 45, s.DuracaoMin)

	_, ok = FindServiceByNome("Pintura")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	barbers := Barbers()
	barbers[0].Nome = "alterado"

	fresh := Barbers()
	assert.NotEqual(t, "alterado", fresh[0].Nome)

	times := SlotTimes()
	times[0] = "00:00"
	assert.Equal(t, "08:00", SlotTimes()[0])
}
