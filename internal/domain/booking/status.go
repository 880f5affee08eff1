package booking

import "github.com/barbearia-sousa/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
	StatusFuture    Status = "futuro"
)

// MotivoAgendamento é o motivo gravado no horário bloqueado criado junto
// com um agendamento; o cancelamento procura o bloqueio por
// (barbeiro, data, horário), não por este valor.
const MotivoAgendamento = "Agendamento"

// InitialStatus é o status forçado em toda criação, ignorando o que o
// chamador enviar.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusFuture:
		return true
	}
	return false
}

// ValidateStatus é usado no patch de agendamento, o único caminho em que o
// status vem do chamador.
func ValidateStatus(s string) error {
	if !IsValidStatus(s) {
		return httperr.ErrBusiness("status_invalido")
	}
	return nil
}
