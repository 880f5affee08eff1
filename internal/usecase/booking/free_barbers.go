package booking

import (
	"context"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

type FreeBarbersAt struct {
	repo domain.Repository
}

func NewFreeBarbersAt(repo domain.Repository) *FreeBarbersAt {
	return &FreeBarbersAt{repo: repo}
}

// Execute devolve os barbeiros do catálogo sem bloqueio em (data, horário).
// Usa todos os bloqueios do dia e filtra pelo horário exato. É a consulta
// que estreita o seletor de barbeiros depois que o cliente escolhe um
// horário sem ter escolhido barbeiro.
func (uc *FreeBarbersAt) Execute(
	ctx context.Context,
	data string,
	horario string,
) ([]catalog.Barber, error) {

	if !validators.IsDate(data) || !validators.IsTime(horario) {
		return nil, httperr.ErrBusiness("parametros_invalidos")
	}

	slots, err := uc.repo.ListBlockedSlotsByDate(ctx, data)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool)
	for _, s := range slots {
		if s.Horario == horario {
			occupied[s.NomeBarbeiro] = true
		}
	}

	free := make([]catalog.Barber, 0)
	for _, b := range catalog.Barbers() {
		if !occupied[b.Nome] {
			free = append(free, b)
		}
	}

	return free, nil
}
