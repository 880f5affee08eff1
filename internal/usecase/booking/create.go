package booking

import (
	"context"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UsuarioID    string
	NomeBarbeiro string
	NomeServico  string

	Data    string // YYYY-MM-DD
	Horario string // HH:MM

	Observacoes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cria o agendamento e reserva o horário do barbeiro em uma única
// transação: ou ambos os registros existem ao final, ou nenhum. A reserva
// falha com horario_ocupado se o slot já estiver bloqueado, pela checagem
// dentro da transação ou, sob corrida, pelo índice único do armazenamento.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetUserByID(ctx, in.UsuarioID); err != nil {
		return nil, httperr.ErrBusiness("usuario_nao_encontrado")
	}

	var created *models.Appointment

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		existing, err := tx.FindBlockedSlot(ctx, in.NomeBarbeiro, in.Data, in.Horario)
		if err != nil {
			return err
		}
		if existing != nil {
			return httperr.ErrBusiness("horario_ocupado")
		}

		ap := &models.Appointment{
			UsuarioID:    in.UsuarioID,
			NomeBarbeiro: in.NomeBarbeiro,
			NomeServico:  in.NomeServico,
			Data:         in.Data,
			Horario:      in.Horario,
			Status:       string(domain.InitialStatus()),
			Observacoes:  in.Observacoes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		if err := tx.CreateBlockedSlot(ctx, &models.BlockedSlot{
			NomeBarbeiro: in.NomeBarbeiro,
			Data:         in.Data,
			Horario:      in.Horario,
			Motivo:       domain.MotivoAgendamento,
		}); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("horario_ocupado")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Action:    "appointment_created",
		Entity:    "agendamento",
		EntityID:  &created.ID,
	})

	return created, nil
}
