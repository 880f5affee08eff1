package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/httpresp"
	"github.com/barbearia-sousa/agenda-api/internal/middleware"
	"github.com/barbearia-sousa/agenda-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type AtualizarPerfilRequest struct {
	NomeCompleto *string `json:"nomeCompleto"`
	Telefone     *string `json:"telefone"`
	Senha        *string `json:"senha"`
	Observacoes  *string `json:"observacoes"`
}

func (h *UserHandler) Perfil(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "usuario_nao_encontrado", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AtualizarPerfil(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req AtualizarPerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "usuario_nao_encontrado", "Usuário não encontrado.")
		return
	}

	if req.NomeCompleto != nil && *req.NomeCompleto != "" {
		user.NomeCompleto = *req.NomeCompleto
	}
	if req.Telefone != nil && *req.Telefone != "" {
		user.Telefone = *req.Telefone
	}
	if req.Observacoes != nil {
		user.Observacoes = *req.Observacoes
	}
	if req.Senha != nil && *req.Senha != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
			return
		}
		user.SenhaHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeletarPerfil apaga a conta; a chave estrangeira com ON DELETE CASCADE
// leva junto os agendamentos do usuário.
func (h *UserHandler) DeletarPerfil(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "usuario_nao_encontrado", "Usuário não encontrado.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao deletar usuário.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Usuário deletado com sucesso")
}
