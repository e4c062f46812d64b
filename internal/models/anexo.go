package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoAlvo enumerates the entity kinds an attachment can point at. The
// pair (alvo_tipo, alvo_id) replaces an open-ended polymorphic reference:
// the set of attachable kinds is closed and checked on create.
type TipoAlvo string

const (
	AlvoCliente       TipoAlvo = "cliente"
	AlvoPeca          TipoAlvo = "peca"
	AlvoOrdemProducao TipoAlvo = "ordem_producao"
	AlvoOrdemItem     TipoAlvo = "ordem_item"
	AlvoAtividade     TipoAlvo = "atividade"
)

func ValidTipoAlvo(s string) bool {
	switch TipoAlvo(s) {
	case AlvoCliente, AlvoPeca, AlvoOrdemProducao, AlvoOrdemItem, AlvoAtividade:
		return true
	}
	return false
}

type Anexo struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	AlvoTipo     string    `json:"alvo_tipo" gorm:"size:30;not null;index:idx_anexos_alvo"`
	AlvoID       string    `json:"alvo_id" gorm:"type:uuid;not null;index:idx_anexos_alvo,priority:2"`
	ArquivoPath  string    `json:"arquivo_path" gorm:"size:512;not null"`
	NomeOriginal string    `json:"nome_original" gorm:"size:255"`
	MimeType     string    `json:"mime_type" gorm:"size:100"`
	Tamanho      int64     `json:"tamanho"`
	Metadata     JSONMap   `json:"metadata" gorm:"type:jsonb"`
	CriadoPorID  *string   `json:"criado_por" gorm:"type:uuid;index"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Anexo) TableName() string {
	return "anexos"
}

func (a *Anexo) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
