package booking

import (
	"context"

	"github.com/barbearia-sousa/agenda-api/internal/models"
)

type Repository interface {
	// -------- Usuário --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Agendamentos --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		usuarioID string,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Horários bloqueados --------
	ListBlockedSlots(
		ctx context.Context,
	) ([]models.BlockedSlot, error)

	ListBlockedSlotsByDate(
		ctx context.Context,
		data string,
	) ([]models.BlockedSlot, error)

	ListBlockedSlotsByBarberAndDate(
		ctx context.Context,
		nomeBarbeiro string,
		data string,
	) ([]models.BlockedSlot, error)

	GetBlockedSlotByID(
		ctx context.Context,
		id string,
	) (*models.BlockedSlot, error)

	FindBlockedSlot(
		ctx context.Context,
		nomeBarbeiro string,
		data string,
		horario string,
	) (*models.BlockedSlot, error)

	// GetOrCreateBlockedSlot reserva o slot de forma idempotente: se já
	// existe registro para (barbeiro, data, horário), devolve o existente
	// com created=false, sem erro e sem duplicar.
	GetOrCreateBlockedSlot(
		ctx context.Context,
		nomeBarbeiro string,
		data string,
		horario string,
		motivo string,
	) (slot *models.BlockedSlot, created bool, err error)

	CreateBlockedSlot(
		ctx context.Context,
		slot *models.BlockedSlot,
	) error

	// DeleteBlockedSlotByTuple remove o bloqueio do slot; ausência não é
	// erro (found=false); o cancelamento precisa tolerar.
	DeleteBlockedSlotByTuple(
		ctx context.Context,
		nomeBarbeiro string,
		data string,
		horario string,
	) (found bool, err error)

	DeleteBlockedSlotByID(
		ctx context.Context,
		id string,
	) error

	// -------- Transação --------
	WithTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
