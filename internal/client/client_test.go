package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cliente@teste.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"usuario": map[string]string{"id": "u-1", "nomeCompleto": "Cliente Teste"},
			"token":   "token-abc",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.False(t, c.IsAuthenticated())

	out, err := c.Login(context.Background(), "cliente@teste.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, "u-1", out.Usuario.ID)
	assert.True(t, c.IsAuthenticated())
}

func TestCriarAgendamentoSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/agendamentos", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var in CriarAgendamentoInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "14:00", in.Horario)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":           "ap-1",
			"nomeBarbeiro": in.NomeBarbeiro,
			"status":       "pendente",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token-abc")

	ap, err := c.CriarAgendamento(context.Background(), CriarAgendamentoInput{
		NomeBarbeiro: "Pedro Henrique Rodrigues",
		NomeServico:  "Corte Masculino",
		Data:         "2030-01-15",
		Horario:      "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "pendente", ap.Status)
}

func TestConflictResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error_code": "horario_ocupado",
			"mensagem":   "Horário já reservado para este barbeiro.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token-abc")

	_, err := c.CriarAgendamento(context.Background(), CriarAgendamentoInput{
		NomeBarbeiro: "Pedro Henrique Rodrigues",
		NomeServico:  "Corte Masculino",
		Data:         "2030-01-15",
		Horario:      "14:00",
	})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "horario_ocupado", apiErr.Code)
	assert.Equal(t, "Horário já reservado para este barbeiro.", apiErr.Error())
}

func TestDisponibilidade(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/disponibilidade", r.URL.Path)
		assert.Equal(t, "2030-01-15", r.URL.Query().Get("data"))
		assert.Equal(t, "Samuel Torres", r.URL.Query().Get("nomeBarbeiro"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": "2030-01-15",
			"horarios": []map[string]string{
				{"horario": "08:00", "status": "disponivel"},
				{"horario": "14:00", "status": "bloqueado"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	slots, err := c.Disponibilidade(context.Background(), "2030-01-15", "Samuel Torres")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "bloqueado", slots[1].Status)
}
