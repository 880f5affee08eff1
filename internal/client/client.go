// Package client é o cliente tipado da API JSON, usado pelo fluxo de
// agendamento do lado do cliente.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken define o bearer token usado nas rotas autenticadas.
func (c *Client) SetToken(token string) {
	c.token = token
}

// IsAuthenticated informa se há uma sessão (token) presente.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// APIError carrega o status HTTP e a mensagem devolvida pelo servidor.
type APIError struct {
	StatusCode int
	Code       string `json:"error_code"`
	Mensagem   string `json:"mensagem"`
}

func (e *APIError) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	return fmt.Sprintf("erro na requisição (%d)", e.StatusCode)
}

// IsConflict indica que outro cliente reservou o slot primeiro; o fluxo
// trata como falha recuperável e devolve o usuário à escolha de horário.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, authenticated bool) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if authenticated && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --------- Auth ---------

type LoginResponse struct {
	Usuario models.User `json:"usuario"`
	Token   string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email": email,
		"senha": senha,
	}, &out, false)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// --------- Agendamentos ---------

type CriarAgendamentoInput struct {
	NomeBarbeiro string `json:"nomeBarbeiro"`
	NomeServico  string `json:"nomeServico"`
	Data         string `json:"data"`
	Horario      string `json:"horario"`
	Observacoes  string `json:"observacoes,omitempty"`
}

func (c *Client) CriarAgendamento(ctx context.Context, in CriarAgendamentoInput) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/agendamentos", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelarAgendamento(ctx context.Context, id string) (*models.Appointment, error) {
	var out models.Appointment
	path := "/api/agendamentos/" + url.PathEscape(id) + "/cancelar"
	if err := c.do(ctx, http.MethodPatch, path, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MeusAgendamentos(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/agendamentos/meus-agendamentos", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// --------- Horários bloqueados ---------

func (c *Client) ListarHorariosBloqueadosPorData(ctx context.Context, data string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	path := "/api/horarios-bloqueados/data/" + url.PathEscape(data)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListarHorariosBloqueadosPorBarbeiroEData(ctx context.Context, nomeBarbeiro, data string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	q := url.Values{}
	q.Set("nomeBarbeiro", nomeBarbeiro)
	q.Set("data", data)
	path := "/api/horarios-bloqueados/buscar?" + q.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// --------- Disponibilidade ---------

type TimeSlot struct {
	Horario string `json:"horario"`
	Status  string `json:"status"`
}

type disponibilidadeResponse struct {
	Data     string     `json:"data"`
	Horarios []TimeSlot `json:"horarios"`
}

func (c *Client) Disponibilidade(ctx context.Context, data, nomeBarbeiro string) ([]TimeSlot, error) {
	q := url.Values{}
	q.Set("data", data)
	if nomeBarbeiro != "" {
		q.Set("nomeBarbeiro", nomeBarbeiro)
	}

	var out disponibilidadeResponse
	if err := c.do(ctx, http.MethodGet, "/api/disponibilidade?"+q.Encode(), nil, &out, false); err != nil {
		return nil, err
	}
	return out.Horarios, nil
}

type barbeirosLivresResponse struct {
	Data      string           `json:"data"`
	Horario   string           `json:"horario"`
	Barbeiros []catalog.Barber `json:"barbeiros"`
}

func (c *Client) BarbeirosLivres(ctx context.Context, data, horario string) ([]catalog.Barber, error) {
	q := url.Values{}
	q.Set("data", data)
	q.Set("horario", horario)

	var out barbeirosLivresResponse
	if err := c.do(ctx, http.MethodGet, "/api/disponibilidade/barbeiros?"+q.Encode(), nil, &out, false); err != nil {
		return nil, err
	}
	return out.Barbeiros, nil
}
