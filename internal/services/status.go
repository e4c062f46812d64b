package services

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"gorm.io/gorm"
)

// DeriveStatusOrdem computes an order's status from its current parts and
// reports whether it differs from the current one.
//
// Rules, in tie-break order:
//  1. every part concluida        -> concluida
//  2. at least one em_andamento   -> em_andamento
//  3. otherwise                   -> keep the current status
//
// With no parts the rule declines to act. The rule never regresses an
// order: deleting the last completed part leaves the order concluida.
func DeriveStatusOrdem(atual models.StatusOrdemProducao, pecas []models.Peca) (models.StatusOrdemProducao, bool) {
	if len(pecas) == 0 {
		return atual, false
	}

	todasConcluidas := true
	algumaEmAndamento := false
	for _, p := range pecas {
		if p.Status != string(models.PecaConcluida) {
			todasConcluidas = false
		}
		if p.Status == string(models.PecaEmAndamento) {
			algumaEmAndamento = true
		}
	}

	novo := atual
	switch {
	case todasConcluidas:
		novo = models.OPConcluida
	case algumaEmAndamento:
		novo = models.OPEmAndamento
	}
	return novo, novo != atual
}

// PropagarStatusOrdem re-derives and conditionally persists an order's
// status from the latest committed set of its parts. It must run inside
// the same transaction as the part mutation that triggered it; any error
// aborts that mutation. Re-running with unchanged parts writes nothing.
func PropagarStatusOrdem(tx *gorm.DB, ordemID string) error {
	if ordemID == "" {
		return nil
	}

	ordemRepo := repository.NewOrdemProducaoRepository(tx)
	pecaRepo := repository.NewPecaRepository(tx)

	ordem, err := ordemRepo.GetByID(ordemID)
	if err != nil {
		return err
	}

	pecas, err := pecaRepo.GetByOrdemID(ordemID)
	if err != nil {
		return err
	}

	novo, mudou := DeriveStatusOrdem(models.StatusOrdemProducao(ordem.Status), pecas)
	if !mudou {
		return nil
	}
	return ordemRepo.UpdateStatus(ordemID, novo)
}
