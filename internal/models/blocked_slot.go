package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedSlot é o índice de disponibilidade: um barbeiro está livre em
// (data, horario) sse não existe registro aqui. O índice único é a garantia
// de exclusividade sob concorrência.
type BlockedSlot struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	NomeBarbeiro string `gorm:"size:100;not null;uniqueIndex:ux_horarios_bloqueados_slot" json:"nomeBarbeiro"`
	Data         string `gorm:"size:10;not null;uniqueIndex:ux_horarios_bloqueados_slot" json:"data"`
	Horario      string `gorm:"size:5;not null;uniqueIndex:ux_horarios_bloqueados_slot" json:"horario"`

	Motivo string `gorm:"size:100" json:"motivo"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (BlockedSlot) TableName() string { return "horarios_bloqueados" }

func (b *BlockedSlot) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
