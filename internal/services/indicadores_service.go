package services

import (
	"fmt"
	"math"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/redis"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
)

// Date fields accepted by the summary endpoint. created_at and updated_at
// are timestamps; the prevista fields are plain calendar dates.
var dateFieldsPermitidos = []string{"created_at", "updated_at", "data_inicio_prevista", "data_fim_prevista"}

type SummaryParams struct {
	Start     string
	End       string
	DateField string
}

type Periodo struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	DateField string `json:"date_field"`
}

type DetalheStatus struct {
	Status     string  `json:"status"`
	Rotulo     string  `json:"rotulo"`
	Quantidade int     `json:"quantidade"`
	Percentual float64 `json:"percentual"`
}

type OrdensResumo struct {
	Total                  int             `json:"total"`
	PorStatus              map[string]int  `json:"por_status"`
	DetalhesPorStatus      []DetalheStatus `json:"detalhes_por_status"`
	TempoMedioProducaoDias float64         `json:"tempo_medio_producao_dias"`
}

type Agrupado struct {
	EmFila      int `json:"emFila"`
	EmAndamento int `json:"emAndamento"`
	Concluidas  int `json:"concluidas"`
}

type PecasResumo struct {
	Total     int            `json:"total"`
	PorStatus map[string]int `json:"por_status"`
}

type Summary struct {
	Periodo        Periodo      `json:"periodo"`
	OrdensProducao OrdensResumo `json:"ordens_producao"`
	Agrupado       Agrupado     `json:"agrupado"`
	Pecas          PecasResumo  `json:"pecas"`
}

type IndicadoresService interface {
	GetSummary(params SummaryParams) (*Summary, error)
}

type indicadoresService struct {
	ordemRepo repository.OrdemProducaoRepository
	pecaRepo  repository.PecaRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	loc       *time.Location
}

// NewIndicadoresService builds the read-side aggregator. cache may be nil,
// in which case every call recomputes.
func NewIndicadoresService(
	ordemRepo repository.OrdemProducaoRepository,
	pecaRepo repository.PecaRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	loc *time.Location,
) IndicadoresService {
	if loc == nil {
		loc = time.Local
	}
	return &indicadoresService{
		ordemRepo: ordemRepo,
		pecaRepo:  pecaRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		loc:       loc,
	}
}

// GetSummary buckets production orders by status over a date window and
// reports counts, percentages, the simplified kanban grouping, average
// completion time and the part-status breakdown. Read-only and idempotent.
func (s *indicadoresService) GetSummary(params SummaryParams) (*Summary, error) {
	dateField := params.DateField
	if dateField == "" {
		dateField = "created_at"
	}
	if !dateFieldPermitido(dateField) {
		return nil, NewValidationError(fmt.Sprintf(
			"date_field inválido: %q. Use: created_at, updated_at, data_inicio_prevista ou data_fim_prevista", dateField))
	}

	start, end, err := s.resolverPeriodo(params.Start, params.End)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("indicadores:summary:%s:%s:%s",
		dateField, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if s.cache != nil {
		var cached Summary
		if err := s.cache.GetJSON(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	// Inclusive window. Timestamp fields are widened to whole days in the
	// configured time zone; plain date columns sit at midnight and fall
	// inside the same bounds.
	startDT := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc)
	endDT := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)

	ordens, err := s.ordemRepo.GetByPeriod(dateField, startDT, endDT)
	if err != nil {
		return nil, err
	}

	porStatus := make(map[string]int, 5)
	for _, c := range models.StatusOrdemProducaoChoices() {
		porStatus[c.Value] = 0
	}
	for _, o := range ordens {
		porStatus[o.Status]++
	}
	total := len(ordens)

	detalhes := make([]DetalheStatus, 0, len(porStatus))
	for _, c := range models.StatusOrdemProducaoChoices() {
		quantidade := porStatus[c.Value]
		percentual := 0.0
		if total > 0 {
			percentual = round2(float64(quantidade) / float64(total) * 100)
		}
		detalhes = append(detalhes, DetalheStatus{
			Status:     c.Value,
			Rotulo:     c.Label,
			Quantidade: quantidade,
			Percentual: percentual,
		})
	}

	summary := &Summary{
		Periodo: Periodo{
			Start:     start.Format("2006-01-02"),
			End:       end.Format("2006-01-02"),
			DateField: dateField,
		},
		OrdensProducao: OrdensResumo{
			Total:                  total,
			PorStatus:              porStatus,
			DetalhesPorStatus:      detalhes,
			TempoMedioProducaoDias: tempoMedioDias(ordens),
		},
		Agrupado: Agrupado{
			EmFila:      porStatus[string(models.OPAberta)],
			EmAndamento: porStatus[string(models.OPEmAndamento)] + porStatus[string(models.OPPausada)],
			Concluidas:  porStatus[string(models.OPConcluida)],
		},
	}

	ordemIDs := make([]string, len(ordens))
	for i, o := range ordens {
		ordemIDs[i] = o.ID
	}
	pecas, err := s.pecaRepo.GetByOrdemIDs(ordemIDs)
	if err != nil {
		return nil, err
	}
	pecasPorStatus := make(map[string]int, 5)
	for _, c := range models.StatusPecaChoices() {
		pecasPorStatus[c.Value] = 0
	}
	for _, p := range pecas {
		pecasPorStatus[p.Status]++
	}
	summary.Pecas = PecasResumo{Total: len(pecas), PorStatus: pecasPorStatus}

	if s.cache != nil {
		// Cache failures never fail the request.
		_ = s.cache.SetJSON(cacheKey, summary, s.cacheTTL)
	}
	return summary, nil
}

func (s *indicadoresService) resolverPeriodo(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = time.ParseInLocation("2006-01-02", endStr, s.loc)
		if err != nil {
			return start, end, NewValidationError(
				fmt.Sprintf("formato de data inválido. Use YYYY-MM-DD. Detalhes: %v", err))
		}
	} else {
		now := time.Now().In(s.loc)
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	}

	if startStr != "" {
		start, err = time.ParseInLocation("2006-01-02", startStr, s.loc)
		if err != nil {
			return start, end, NewValidationError(
				fmt.Sprintf("formato de data inválido. Use YYYY-MM-DD. Detalhes: %v", err))
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	if start.After(end) {
		return start, end, NewValidationError("start deve ser anterior ou igual a end")
	}
	return start, end, nil
}

// tempoMedioDias averages updated_at - created_at over completed orders,
// in days. 0 when there are none.
func tempoMedioDias(ordens []models.OrdemProducao) float64 {
	var soma time.Duration
	var n int
	for _, o := range ordens {
		if o.Status == string(models.OPConcluida) {
			soma += o.UpdatedAt.Sub(o.CreatedAt)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	dias := soma.Seconds() / float64(n) / (60 * 60 * 24)
	return round2(dias)
}

func dateFieldPermitido(field string) bool {
	for _, f := range dateFieldsPermitidos {
		if f == field {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
