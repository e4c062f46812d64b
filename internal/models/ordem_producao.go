package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdemProducao struct {
	ID                 string     `json:"id" gorm:"type:uuid;primaryKey"`
	Codigo             string     `json:"codigo" gorm:"size:50;unique;not null"` // nota fiscal
	ClienteID          string     `json:"cliente" gorm:"type:uuid;not null;index"`
	Cliente            *Cliente   `json:"-" gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
	CriadoPorID        *string    `json:"criado_por" gorm:"type:uuid"`
	ResponsavelID      *string    `json:"responsavel" gorm:"type:uuid"`
	DataInicioPrevista *Date      `json:"data_inicio_prevista" gorm:"type:date"`
	DataFimPrevista    *Date      `json:"data_fim_prevista" gorm:"type:date;index:idx_ops_fim_status"`
	Status             string     `json:"status" gorm:"size:30;default:'aberta';index:idx_ops_fim_status"`
	Observacoes        string     `json:"observacoes" gorm:"type:text"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (OrdemProducao) TableName() string {
	return "ordens_producao"
}

func (o *OrdemProducao) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = string(OPAberta)
	}
	return nil
}

type StatusOrdemProducao string

const (
	OPAberta      StatusOrdemProducao = "aberta"
	OPEmAndamento StatusOrdemProducao = "em_andamento"
	OPPausada     StatusOrdemProducao = "pausada"
	OPConcluida   StatusOrdemProducao = "concluida"
	OPCancelada   StatusOrdemProducao = "cancelada"
)

// StatusOrdemProducaoChoices lists every status in display order, with its
// human label. Indicator responses must include all of them, zeros kept.
func StatusOrdemProducaoChoices() []StatusChoice {
	return []StatusChoice{
		{string(OPAberta), "Aberta"},
		{string(OPEmAndamento), "Em Andamento"},
		{string(OPPausada), "Pausada"},
		{string(OPConcluida), "Concluída"},
		{string(OPCancelada), "Cancelada"},
	}
}

type StatusChoice struct {
	Value string
	Label string
}

func ValidStatusOrdemProducao(s string) bool {
	for _, c := range StatusOrdemProducaoChoices() {
		if c.Value == s {
			return true
		}
	}
	return false
}
