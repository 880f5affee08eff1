package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbearia-sousa/agenda-api/internal/config"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/middleware"
	"github.com/barbearia-sousa/agenda-api/internal/models"
	"github.com/barbearia-sousa/agenda-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type CadastroRequest struct {
	NomeCompleto   string `json:"nomeCompleto" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Telefone       string `json:"telefone" binding:"required"`
	Senha          string `json:"senha" binding:"required,min=6"`
	DataNascimento string `json:"dataNascimento" binding:"required"`
	Observacoes    string `json:"observacoes"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Cadastro(c *gin.Context) {
	var req CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsDate(req.DataNascimento) {
		httperr.BadRequest(c, "data_invalida", "Data de nascimento inválida (use YYYY-MM-DD).")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_ja_cadastrado", "Email já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		NomeCompleto:   req.NomeCompleto,
		Email:          email,
		Telefone:       req.Telefone,
		SenhaHash:      string(hashed),
		DataNascimento: req.DataNascimento,
		Observacoes:    req.Observacoes,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"usuario": user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": user,
		"token":   token,
	})
}

// VerificarToken responde 200 com o usuário do token; a validação em si é
// feita pelo AuthMiddleware na rota.
func (h *AuthHandler) VerificarToken(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Token inválido.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"valido": true, "usuario": user})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
