package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	usecase "github.com/barbearia-sousa/agenda-api/internal/usecase/booking"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

type AvailabilityHandler struct {
	availabilityUC *usecase.GetAvailability
	freeBarbersUC  *usecase.FreeBarbersAt
}

func NewAvailabilityHandler(
	availabilityUC *usecase.GetAvailability,
	freeBarbersUC *usecase.FreeBarbersAt,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: availabilityUC,
		freeBarbersUC:  freeBarbersUC,
	}
}

// Disponibilidade responde a grade do dia com cada slot marcado como
// disponivel, passado ou bloqueado (este último só com barbeiro informado).
func (h *AvailabilityHandler) Disponibilidade(c *gin.Context) {
	data := c.Query("data")
	nomeBarbeiro := c.Query("nomeBarbeiro")

	if !validators.IsDate(data) {
		httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), data, nomeBarbeiro)
	if err != nil {
		if httperr.IsBusiness(err, "data_invalida") {
			httperr.BadRequest(c, "data_invalida", "Data inválida (use YYYY-MM-DD).")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     data,
		"horarios": slots,
	})
}

func (h *AvailabilityHandler) BarbeirosLivres(c *gin.Context) {
	data := c.Query("data")
	horario := c.Query("horario")

	if data == "" || horario == "" {
		httperr.BadRequest(c, "missing_params", "Data e horário são obrigatórios.")
		return
	}

	barbeiros, err := h.freeBarbersUC.Execute(c.Request.Context(), data, horario)
	if err != nil {
		if httperr.IsBusiness(err, "parametros_invalidos") {
			httperr.BadRequest(c, "parametros_invalidos", "Data ou horário inválidos.")
			return
		}
		httperr.Internal(c, "free_barbers_failed", "Erro ao buscar barbeiros disponíveis.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      data,
		"horario":   horario,
		"barbeiros": barbeiros,
	})
}
