package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	NomeCompleto   string `gorm:"size:100;not null" json:"nomeCompleto"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone       string `gorm:"size:20;not null" json:"telefone"`
	SenhaHash      string `gorm:"size:255;not null" json:"-"`
	DataNascimento string `gorm:"size:10;not null" json:"dataNascimento"`
	Observacoes    string `gorm:"size:255" json:"observacoes"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
