package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cliente struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Nome      string    `json:"nome" gorm:"size:200;not null;index"`
	Contato   string    `json:"contato" gorm:"size:100"`
	Email     string    `json:"email" gorm:"size:254"`
	Endereco  string    `json:"endereco" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string {
	return "clientes"
}

func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
