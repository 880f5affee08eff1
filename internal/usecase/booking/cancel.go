package booking

import (
	"context"
	"log"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca o agendamento como cancelado e libera o horário do
// barbeiro. A escrita do status é incondicional: cancelar um agendamento já
// cancelado é um no-op que ainda responde sucesso. A liberação do bloqueio
// é best-effort: ausência ou falha não impedem o cancelamento.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	ap.Status = string(domain.StatusCancelled)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if _, err := uc.repo.DeleteBlockedSlotByTuple(
		ctx,
		ap.NomeBarbeiro,
		ap.Data,
		ap.Horario,
	); err != nil {
		log.Println("failed to release blocked slot:", err)
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &ap.UsuarioID,
		Action:    "appointment_cancelled",
		Entity:    "agendamento",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
