package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/barbearia-sousa/agenda-api/internal/domain/booking"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/httpresp"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

type BlockedSlotHandler struct {
	repo domain.Repository
}

func NewBlockedSlotHandler(repo domain.Repository) *BlockedSlotHandler {
	return &BlockedSlotHandler{repo: repo}
}

type CriarHorarioBloqueadoRequest struct {
	NomeBarbeiro string `json:"nomeBarbeiro" binding:"required"`
	Data         string `json:"data" binding:"required"`    // YYYY-MM-DD
	Horario      string `json:"horario" binding:"required"` // HH:MM
	Motivo       string `json:"motivo"`
}

func (h *BlockedSlotHandler) ListarTodos(c *gin.Context) {
	slots, err := h.repo.ListBlockedSlots(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar horários bloqueados.")
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *BlockedSlotHandler) ListarPorData(c *gin.Context) {
	data := c.Param("data")
	if !validators.IsDate(data) {
		httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
		return
	}

	slots, err := h.repo.ListBlockedSlotsByDate(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar horários bloqueados.")
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *BlockedSlotHandler) BuscarPorBarbeiroEData(c *gin.Context) {
	nomeBarbeiro := c.Query("nomeBarbeiro")
	data := c.Query("data")

	if nomeBarbeiro == "" || data == "" {
		httperr.BadRequest(c, "missing_params", "Nome do barbeiro e data são obrigatórios.")
		return
	}
	if !validators.IsDate(data) {
		httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
		return
	}

	slots, err := h.repo.ListBlockedSlotsByBarberAndDate(c.Request.Context(), nomeBarbeiro, data)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar horários bloqueados.")
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *BlockedSlotHandler) BuscarPorID(c *gin.Context) {
	slot, err := h.repo.GetBlockedSlotByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "horario_bloqueado_nao_encontrado", "Horário bloqueado não encontrado.")
		return
	}
	c.JSON(http.StatusOK, slot)
}

// Criar é idempotente: repetir o mesmo (barbeiro, data, horário) devolve o
// registro existente, sem erro e sem duplicar.
func (h *BlockedSlotHandler) Criar(c *gin.Context) {
	var req CriarHorarioBloqueadoRequest
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

	slot, _, err := h.repo.GetOrCreateBlockedSlot(
		c.Request.Context(),
		req.NomeBarbeiro,
		req.Data,
		req.Horario,
		req.Motivo,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_blocked_slot", "Erro ao criar horário bloqueado.")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *BlockedSlotHandler) Deletar(c *gin.Context) {
	ctx := c.Request.Context()

	slot, err := h.repo.GetBlockedSlotByID(ctx, c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "horario_bloqueado_nao_encontrado", "Horário bloqueado não encontrado.")
		return
	}

	if err := h.repo.DeleteBlockedSlotByID(ctx, slot.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_slot", "Erro ao deletar horário bloqueado.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Horário bloqueado deletado com sucesso")
}
