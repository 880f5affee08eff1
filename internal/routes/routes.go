package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	"github.com/barbearia-sousa/agenda-api/internal/config"
	"github.com/barbearia-sousa/agenda-api/internal/handlers"
	infraRepo "github.com/barbearia-sousa/agenda-api/internal/infra/repository"
	"github.com/barbearia-sousa/agenda-api/internal/middleware"
	ucBooking "github.com/barbearia-sousa/agenda-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	updateUC := ucBooking.NewUpdateAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	deleteUC := ucBooking.NewDeleteAppointment(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	freeBarbersUC := ucBooking.NewFreeBarbersAt(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	catalogHandler := handlers.NewCatalogHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		bookingRepo,
		createUC,
		updateUC,
		cancelUC,
		deleteUC,
	)

	blockedSlotHandler := handlers.NewBlockedSlotHandler(bookingRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, freeBarbersUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	authRequired := middleware.AuthMiddleware(cfg)

	// ======================================================
	// AUTH
	// ======================================================
	auth := r.Group("/auth")
	{
		auth.POST("/cadastro", authHandler.Cadastro)
		auth.POST("/login", authHandler.Login)
		auth.GET("/verificar-token", authRequired, authHandler.VerificarToken)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CATÁLOGO (público)
		// ------------------------------
		api.GET("/barbeiros", catalogHandler.ListarBarbeiros)
		api.GET("/barbeiros/:id", catalogHandler.BuscarBarbeiro)
		api.GET("/servicos", catalogHandler.ListarServicos)
		api.GET("/servicos/:id", catalogHandler.BuscarServico)
		api.GET("/horarios", catalogHandler.ListarHorarios)

		// ------------------------------
		// DISPONIBILIDADE (público)
		// ------------------------------
		api.GET("/disponibilidade", availabilityHandler.Disponibilidade)
		api.GET("/disponibilidade/barbeiros", availabilityHandler.BarbeirosLivres)

		// ------------------------------
		// HORÁRIOS BLOQUEADOS (público, com rate limit)
		// ------------------------------
		blocked := api.Group("/horarios-bloqueados")
		blocked.Use(middleware.RateLimit(10, 30))
		{
			blocked.GET("", blockedSlotHandler.ListarTodos)
			blocked.GET("/data/:data", blockedSlotHandler.ListarPorData)
			blocked.GET("/buscar", blockedSlotHandler.BuscarPorBarbeiroEData)
			blocked.GET("/:id", blockedSlotHandler.BuscarPorID)
			blocked.POST("", blockedSlotHandler.Criar)
			blocked.DELETE("/:id", blockedSlotHandler.Deletar)
		}

		// ------------------------------
		// PERFIL (autenticado)
		// ------------------------------
		usuarios := api.Group("/usuarios")
		usuarios.Use(authRequired)
		{
			usuarios.GET("/perfil", userHandler.Perfil)
			usuarios.PUT("/perfil", userHandler.AtualizarPerfil)
			usuarios.DELETE("/perfil", userHandler.DeletarPerfil)
		}

		// ------------------------------
		// AGENDAMENTOS (autenticado)
		// ------------------------------
		agendamentos := api.Group("/agendamentos")
		agendamentos.Use(authRequired)
		{
			agendamentos.GET("", appointmentHandler.ListarTodos)
			agendamentos.GET("/meus-agendamentos", appointmentHandler.MeusAgendamentos)
			agendamentos.GET("/:id", appointmentHandler.BuscarPorID)
			agendamentos.POST("", appointmentHandler.Criar)
			agendamentos.PUT("/:id", appointmentHandler.Atualizar)
			agendamentos.PATCH("/:id/cancelar", appointmentHandler.Cancelar)
			agendamentos.DELETE("/:id", appointmentHandler.Deletar)
		}

		// ------------------------------
		// AUDITORIA (autenticado)
		// ------------------------------
		api.GET("/auditoria", authRequired, auditLogsHandler.List)
	}
}
