package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Peca struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey"`
	OrdemProducaoID string         `json:"ordem_producao" gorm:"type:uuid;not null;index"`
	OrdemProducao   *OrdemProducao `json:"-" gorm:"foreignKey:OrdemProducaoID;constraint:OnDelete:CASCADE"`
	ClienteID       string         `json:"cliente" gorm:"type:uuid;not null;index:idx_pecas_cliente_status"`
	Cliente         *Cliente       `json:"-" gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
	Codigo          string         `json:"codigo" gorm:"size:100;unique;not null"`
	Descricao       string         `json:"descricao" gorm:"type:text"`
	Pedido          string         `json:"pedido" gorm:"size:100"`
	Quantidade      int            `json:"quantidade" gorm:"not null"`
	DataEntrega     *Date          `json:"data_entrega" gorm:"type:date;index"`
	Status          string         `json:"status" gorm:"size:30;default:'em_fila';index:idx_pecas_cliente_status,priority:2"`
	Metadata        JSONMap        `json:"metadata" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Peca) TableName() string {
	return "pecas"
}

func (p *Peca) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = string(PecaEmFila)
	}
	return nil
}

type StatusPeca string

const (
	PecaEmFila      StatusPeca = "em_fila"
	PecaEmAndamento StatusPeca = "em_andamento"
	PecaPausada     StatusPeca = "pausada"
	PecaConcluida   StatusPeca = "concluida"
	PecaCancelada   StatusPeca = "cancelada"
)

func StatusPecaChoices() []StatusChoice {
	return []StatusChoice{
		{string(PecaEmFila), "Em Fila"},
		{string(PecaEmAndamento), "Em Andamento"},
		{string(PecaPausada), "Pausada"},
		{string(PecaConcluida), "Concluída"},
		{string(PecaCancelada), "Cancelada"},
	}
}

func ValidStatusPeca(s string) bool {
	for _, c := range StatusPecaChoices() {
		if c.Value == s {
			return true
		}
	}
	return false
}
