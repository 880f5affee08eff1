package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sousa/agenda-api/internal/catalog"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
)

// CatalogHandler expõe a configuração estática: barbeiros, serviços e a
// grade de horários.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListarBarbeiros(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Barbers())
}

func (h *CatalogHandler) BuscarBarbeiro(c *gin.Context) {
	b, ok := catalog.FindBarberByID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "barbeiro_nao_encontrado", "Barbeiro não encontrado.")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *CatalogHandler) ListarServicos(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services())
}

func (h *CatalogHandler) BuscarServico(c *gin.Context) {
	s, ok := catalog.FindServiceByID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) ListarHorarios(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.SlotTimes())
}
