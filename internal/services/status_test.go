package services

import (
	"testing"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"github.com/stretchr/testify/assert"
)

func pecasComStatus(statuses ...models.StatusPeca) []models.Peca {
	pecas := make([]models.Peca, len(statuses))
	for i, s := range statuses {
		pecas[i] = models.Peca{Status: string(s)}
	}
	return pecas
}

func TestDeriveStatusOrdem(t *testing.T) {
	tests := []struct {
		name       string
		atual      models.StatusOrdemProducao
		pecas      []models.Peca
		wantStatus models.StatusOrdemProducao
		wantMudou  bool
	}{
		{
			name:       "todas concluidas",
			atual:      models.OPEmAndamento,
			pecas:      pecasComStatus(models.PecaConcluida, models.PecaConcluida),
			wantStatus: models.OPConcluida,
			wantMudou:  true,
		},
		{
			name:       "uma em andamento",
			atual:      models.OPAberta,
			pecas:      pecasComStatus(models.PecaEmFila, models.PecaEmAndamento),
			wantStatus: models.OPEmAndamento,
			wantMudou:  true,
		},
		{
			name:       "em andamento tem precedencia sobre concluidas parciais",
			atual:      models.OPAberta,
			pecas:      pecasComStatus(models.PecaConcluida, models.PecaConcluida, models.PecaEmAndamento),
			wantStatus: models.OPEmAndamento,
			wantMudou:  true,
		},
		{
			name:       "sem pecas nao altera",
			atual:      models.OPConcluida,
			pecas:      nil,
			wantStatus: models.OPConcluida,
			wantMudou:  false,
		},
		{
			name:       "todas em fila mantem status atual",
			atual:      models.OPAberta,
			pecas:      pecasComStatus(models.PecaEmFila, models.PecaEmFila),
			wantStatus: models.OPAberta,
			wantMudou:  false,
		},
		{
			name:       "pausadas e canceladas nao regridem",
			atual:      models.OPConcluida,
			pecas:      pecasComStatus(models.PecaPausada, models.PecaCancelada),
			wantStatus: models.OPConcluida,
			wantMudou:  false,
		},
		{
			name:       "status ja derivado nao muda",
			atual:      models.OPConcluida,
			pecas:      pecasComStatus(models.PecaConcluida),
			wantStatus: models.OPConcluida,
			wantMudou:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mudou := DeriveStatusOrdem(tt.atual, tt.pecas)
			assert.Equal(t, tt.wantStatus, got)
			assert.Equal(t, tt.wantMudou, mudou)
		})
	}
}
