package booking

import (
	"context"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento em definitivo. Diferente do cancelamento, a
// exclusão não mexe no horário bloqueado: é a operação administrativa crua.
func (uc *DeleteAppointment) Execute(ctx context.Context, id string) error {
	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &ap.UsuarioID,
		Action:    "appointment_deleted",
		Entity:    "agendamento",
		EntityID:  &ap.ID,
	})

	return nil
}
