package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdemProducaoItem struct {
	ID                   string         `json:"id" gorm:"type:uuid;primaryKey"`
	OrdemID              string         `json:"ordem" gorm:"type:uuid;not null;index:idx_itens_ordem_status"`
	Ordem                *OrdemProducao `json:"-" gorm:"foreignKey:OrdemID;constraint:OnDelete:CASCADE"`
	PecaID               string         `json:"peca" gorm:"type:uuid;not null;index"`
	Peca                 *Peca          `json:"-" gorm:"foreignKey:PecaID;constraint:OnDelete:RESTRICT"`
	Quantidade           int            `json:"quantidade" gorm:"not null"`
	QuantidadeProduzida  int            `json:"quantidade_produzida" gorm:"default:0"`
	Status               string         `json:"status" gorm:"size:30;default:'pendente';index:idx_itens_ordem_status,priority:2"`
	Lote                 string         `json:"lote" gorm:"size:100"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (OrdemProducaoItem) TableName() string {
	return "itens_ordem_producao"
}

func (i *OrdemProducaoItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Status == "" {
		i.Status = string(ItemPendente)
	}
	return nil
}

// PercentualConcluido returns the completion percentage of the item,
// 0 when the requested quantity is 0.
func (i *OrdemProducaoItem) PercentualConcluido() float64 {
	if i.Quantidade > 0 {
		return float64(i.QuantidadeProduzida) / float64(i.Quantidade) * 100
	}
	return 0
}

type StatusItem string

const (
	ItemPendente   StatusItem = "pendente"
	ItemEmProducao StatusItem = "em_producao"
	ItemPausado    StatusItem = "pausado"
	ItemConcluido  StatusItem = "concluido"
	ItemCancelado  StatusItem = "cancelado"
)

func ValidStatusItem(s string) bool {
	switch StatusItem(s) {
	case ItemPendente, ItemEmProducao, ItemPausado, ItemConcluido, ItemCancelado:
		return true
	}
	return false
}
