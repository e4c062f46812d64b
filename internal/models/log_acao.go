package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogAcao is an append-only audit record. No update or delete operation is
// exposed anywhere for it; enforcement lives at the route/repository layer.
type LogAcao struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID *string   `json:"usuario" gorm:"type:uuid;index:idx_logs_usuario_created"`
	Acao      string    `json:"acao" gorm:"size:100;not null;index"`
	AlvoTipo  string    `json:"alvo_tipo" gorm:"size:100;index:idx_logs_alvo"`
	AlvoID    *string   `json:"alvo_id" gorm:"type:uuid;index:idx_logs_alvo,priority:2"`
	Detalhes  JSONMap   `json:"detalhes" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_logs_usuario_created,priority:2"`
}

func (LogAcao) TableName() string {
	return "logs_acao"
}

func (l *LogAcao) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
