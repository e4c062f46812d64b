package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type IndicadoresHandler struct {
	indicadoresService services.IndicadoresService
}

func NewIndicadoresHandler(indicadoresService services.IndicadoresService) *IndicadoresHandler {
	return &IndicadoresHandler{indicadoresService: indicadoresService}
}

// GetSummary handles GET /api/indicadores/summary/ with the query params
// start, end (YYYY-MM-DD) and date_field.
func (h *IndicadoresHandler) GetSummary(c *gin.Context) {
	summary, err := h.indicadoresService.GetSummary(services.SummaryParams{
		Start:     c.Query("start"),
		End:       c.Query("end"),
		DateField: c.Query("date_field"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
