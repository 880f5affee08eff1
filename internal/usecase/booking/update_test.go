package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia-sousa/agenda-api/internal/httperr"
)

func ptr(s string) *string { return &s }

func TestUpdateAppointmentPartialPatch(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser("Cliente Teste")
	dispatcher := newTestDispatcher(t)

	createUC := NewCreateAppointment(repo, dispatcher)
	updateUC := NewUpdateAppointment(repo, dispatcher)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		UsuarioID:    user.ID,
		NomeBarbeiro: "Luciano Sousa Barbosa",
		NomeServico:  "Corte Masculino",
		Data:         "2025-11-25",
		Horario:      "10:00",
		Observacoes:  "sem máquina",
	})
	require.NoError(t, err)

	updated, err := updateUC.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Status:      ptr("confirmado"),
		Observacoes: ptr("pode usar máquina"),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmado", updated.Status)
	assert.Equal(t, "pode usar máquina", updated.Observacoes)

	// Campos não enviados ficam como estavam.
	assert.Equal(t, "Luciano Sousa Barbosa", updated.NomeBarbeiro)
	assert.Equal(t, "2025-11-25", updated.Data)
	assert.Equal(t, "10:00", updated.Horario)
}

func TestUpdateAppointmentInvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser("Cliente Teste")
	dispatcher := newTestDispatcher(t)

	createUC := NewCreateAppointment(repo, dispatcher)
	updateUC := NewUpdateAppointment(repo, dispatcher)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		UsuarioID:    user.ID,
		NomeBarbeiro: "Samuel Torres",
		NomeServico:  "Barba",
		Data:         "2025-11-25",
		Horario:      "16:00",
	})
	require.NoError(t, err)

	_, err = updateUC.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Status: ptr("agendado"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "status_invalido"))

	// Status original preservado.
	got, err := repo.GetAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pendente", got.Status)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	updateUC := NewUpdateAppointment(repo, newTestDispatcher(t))

	_, err := updateUC.Execute(context.Background(), "nao-existe", UpdateAppointmentInput{
		Status: ptr("confirmado"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_encontrado"))
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser("Cliente Teste")
	dispatcher := newTestDispatcher(t)

	createUC := NewCreateAppointment(repo, dispatcher)
	deleteUC := NewDeleteAppointment(repo, dispatcher)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		UsuarioID:    user.ID,
		NomeBarbeiro: "João Vitor Santana",
		NomeServico:  "Sobrancelha",
		Data:         "2025-11-27",
		Horario:      "08:30",
	})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(context.Background(), ap.ID))

	_, err = repo.GetAppointmentByID(context.Background(), ap.ID)
	require.Error(t, err)

	// Exclusão administrativa não libera o horário; isso é papel do cancelamento.
	slot, err := repo.FindBlockedSlot(context.Background(), "João Vitor Santana", "2025-11-27", "08:30")
	require.NoError(t, err)
	assert.NotNil(t, slot)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	deleteUC := NewDeleteAppointment(repo, newTestDispatcher(t))

	err := deleteUC.Execute(context.Background(), "nao-existe")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_encontrado"))
}
