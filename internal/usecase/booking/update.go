package booking

import (
	"context"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

// Patch parcial: só os campos não-nil são aplicados.
type UpdateAppointmentInput struct {
	NomeBarbeiro *string
	NomeServico  *string
	Data         *string
	Horario      *string
	Observacoes  *string
	Status       *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if in.Status != nil {
		if err := domain.ValidateStatus(*in.Status); err != nil {
			return nil, err
		}
		ap.Status = *in.Status
	}

	if in.NomeBarbeiro != nil {
		ap.NomeBarbeiro = *in.NomeBarbeiro
	}
	if in.NomeServico != nil {
		ap.NomeServico = *in.NomeServico
	}
	if in.Data != nil {
		ap.Data = *in.Data
	}
	if in.Horario != nil {
		ap.Horario = *in.Horario
	}
	if in.Observacoes != nil {
		ap.Observacoes = *in.Observacoes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &ap.UsuarioID,
		Action:    "appointment_updated",
		Entity:    "agendamento",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
