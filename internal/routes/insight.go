package routes

import (
	"net/http"

	"finsight/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GenerateInsights(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.InsightService.Generate(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InsightGenerateResponse{
		Insights:  result.Insights,
		Source:    result.Source,
		Discarded: result.Discarded,
		Warning:   result.Warning,
	})
}
