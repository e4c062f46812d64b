package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Atividade is a kanban work item, optionally linked to an order, an order
// item or a part. Links are cleared when the referent is deleted; deleting
// an activity never cascades the other way.
type Atividade struct {
	ID            string             `json:"id" gorm:"type:uuid;primaryKey"`
	Titulo        string             `json:"titulo" gorm:"size:200;not null"`
	Descricao     string             `json:"descricao" gorm:"type:text"`
	ResponsavelID *string            `json:"responsavel" gorm:"type:uuid;index:idx_atividades_resp_status"`
	OrdemID       *string            `json:"ordem" gorm:"type:uuid;index:idx_atividades_ordem_status"`
	Ordem         *OrdemProducao     `json:"-" gorm:"foreignKey:OrdemID;constraint:OnDelete:SET NULL"`
	OrdemItemID   *string            `json:"ordem_item" gorm:"type:uuid"`
	OrdemItem     *OrdemProducaoItem `json:"-" gorm:"foreignKey:OrdemItemID;constraint:OnDelete:SET NULL"`
	PecaID        *string            `json:"peca" gorm:"type:uuid"`
	Peca          *Peca              `json:"-" gorm:"foreignKey:PecaID;constraint:OnDelete:SET NULL"`
	Status        string             `json:"status" gorm:"size:30;default:'na_fila';index"`
	Prioridade    int                `json:"prioridade" gorm:"default:0;index"`
	DataInicio    *time.Time         `json:"data_inicio"`
	DataFim       *time.Time         `json:"data_fim"`
	Posicao       *int               `json:"posicao"`
	Metadata      JSONMap            `json:"metadata" gorm:"type:jsonb"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (Atividade) TableName() string {
	return "atividades"
}

func (a *Atividade) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = string(AtividadeNaFila)
	}
	return nil
}

type StatusAtividade string

const (
	AtividadeNaFila      StatusAtividade = "na_fila"
	AtividadeEmAndamento StatusAtividade = "em_andamento"
	AtividadeConcluido   StatusAtividade = "concluido"
	AtividadeCancelado   StatusAtividade = "cancelado"
)

// PrioridadeMedia is the default priority for auto-created activities.
const PrioridadeMedia = 1

func ValidStatusAtividade(s string) bool {
	switch StatusAtividade(s) {
	case AtividadeNaFila, AtividadeEmAndamento, AtividadeConcluido, AtividadeCancelado:
		return true
	}
	return false
}

type Comentario struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	AtividadeID string     `json:"atividade" gorm:"type:uuid;not null;index:idx_comentarios_atividade"`
	Atividade   *Atividade `json:"-" gorm:"foreignKey:AtividadeID;constraint:OnDelete:CASCADE"`
	AutorID     *string    `json:"autor" gorm:"type:uuid"`
	Texto       string     `json:"texto" gorm:"type:text;not null"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Comentario) TableName() string {
	return "comentarios"
}

func (c *Comentario) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
