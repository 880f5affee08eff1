package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/httpresp"
	"github.com/barbearia-sousa/agenda-api/internal/middleware"
	usecase "github.com/barbearia-sousa/agenda-api/internal/usecase/booking"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	createUC *usecase.CreateAppointment
	updateUC *usecase.UpdateAppointment
	cancelUC *usecase.CancelAppointment
	deleteUC *usecase.DeleteAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *usecase.CreateAppointment,
	updateUC *usecase.UpdateAppointment,
	cancelUC *usecase.CancelAppointment,
	deleteUC *usecase.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CriarAgendamentoRequest struct {
	NomeBarbeiro string `json:"nomeBarbeiro" binding:"required"`
	NomeServico  string `json:"nomeServico" binding:"required"`
	Data         string `json:"data" binding:"required"`    // YYYY-MM-DD
	Horario      string `json:"horario" binding:"required"` // HH:MM
	Observacoes  string `json:"observacoes"`
}

type AtualizarAgendamentoRequest struct {
	NomeBarbeiro *string `json:"nomeBarbeiro"`
	NomeServico  *string `json:"nomeServico"`
	Data         *string `json:"data"`
	Horario      *string `json:"horario"`
	Observacoes  *string `json:"observacoes"`
	Status       *string `json:"status"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) ListarTodos(c *gin.Context) {
	aps, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) MeusAgendamentos(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	aps, err := h.repo.ListAppointmentsByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) BuscarPorID(c *gin.Context) {
	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		return
	}
	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Criar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CriarAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsDate(req.Data) {
		httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
		return
	}
	if !validators.IsTime(req.Horario) {
		httperr.BadRequest(c, "horario_invalido", "Horário inválido (use HH:MM).")
		return
	}
	if !catalog.IsSlotTime(req.Horario) {
		httperr.BadRequest(c, "horario_invalido", "Horário fora da grade de atendimento.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UsuarioID:    userID,
		NomeBarbeiro: req.NomeBarbeiro,
		NomeServico:  req.NomeServico,
		Data:         req.Data,
		Horario:      req.Horario,
		Observacoes:  req.Observacoes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "usuario_nao_encontrado"):
			httperr.BadRequest(c, "usuario_nao_encontrado", "Usuário não encontrado.")
		case httperr.IsBusiness(err, "horario_ocupado"):
			httperr.Conflict(c, "horario_ocupado", "Horário já reservado para este barbeiro.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Atualizar(c *gin.Context) {
	var req AtualizarAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Data != nil && !validators.IsDate(*req.Data) {
		httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
		return
	}
	if req.Horario != nil && !validators.IsTime(*req.Horario) {
		httperr.BadRequest(c, "horario_invalido", "Horário inválido (use HH:MM).")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), usecase.UpdateAppointmentInput{
		NomeBarbeiro: req.NomeBarbeiro,
		NomeServico:  req.NomeServico,
		Data:         req.Data,
		Horario:      req.Horario,
		Observacoes:  req.Observacoes,
		Status:       req.Status,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "agendamento_nao_encontrado"):
			httperr.BadRequest(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "status_invalido"):
			httperr.BadRequest(c, "status_invalido", "Status inválido.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancelar(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "agendamento_nao_encontrado") {
			httperr.BadRequest(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Deletar(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		if httperr.IsBusiness(err, "agendamento_nao_encontrado") {
			httperr.BadRequest(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao deletar agendamento.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Agendamento deletado com sucesso")
}
