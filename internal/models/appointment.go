package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UsuarioID string `gorm:"type:uuid;not null;index" json:"usuarioId"`
	Usuario   *User  `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE;" json:"-"`

	// Barbeiro e serviço são configuração estática (catalog), não entidades
	// gerenciadas: gravados pelo nome, sem chave estrangeira.
	NomeBarbeiro string `gorm:"size:100;not null" json:"nomeBarbeiro"`
	NomeServico  string `gorm:"size:100;not null" json:"nomeServico"`

	Data    string `gorm:"size:10;not null" json:"data"`   // YYYY-MM-DD
	Horario string `gorm:"size:5;not null" json:"horario"` // HH:MM

	Status      string `gorm:"size:20;not null;default:'pendente'" json:"status"`
	Observacoes string `gorm:"size:255" json:"observacoes"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (Appointment) TableName() string { return "agendamentos" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
