package rest

import (
	"errors"
	"net/http"
	"strconv"

	"currency-transactions/internal/generator"
	"currency-transactions/internal/logger"
	"currency-transactions/internal/models"
	"currency-transactions/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultLimit = 100
	maxLimit     = 500

	defaultSampleClients = 5
	defaultSampleAmounts = 5
	maxSampleRows        = 100
)

type Handlers struct {
	reportService services.ReportService
	generator     *generator.SourceGenerator
}

// Создает новые обработчики REST API
func NewHandlers(reportService services.ReportService) *Handlers {
	return &Handlers{
		reportService: reportService,
		generator:     generator.NewSourceGenerator(),
	}
}

// TriggerRun запускает конвейер и возвращает итог запуска
func (h *Handlers) TriggerRun(c *gin.Context) {
	run, err := h.reportService.TriggerRun(c.Request.Context())
	if errors.Is(err, models.ErrRunInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": "Another run is in progress"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "run": run})
		return
	}

	c.JSON(http.StatusCreated, run)
}

// GetRuns возвращает последние запуски
func (h *Handlers) GetRuns(c *gin.Context) {
	runs, err := h.reportService.ListRuns(c.Request.Context(), parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun возвращает запуск по run_id
func (h *Handlers) GetRun(c *gin.Context) {
	runID := c.Param("run_id")

	run, err := h.reportService.GetRun(c.Request.Context(), runID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get run"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetRunEvents возвращает журнал событий запуска
func (h *Handlers) GetRunEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": logger.Global().GetRunEvents(c.Param("run_id"))})
}

// GetTransactions возвращает транзакции категории; без tier - обе категории
func (h *Handlers) GetTransactions(c *gin.Context) {
	limit := parseLimit(c)

	if tierStr := c.Query("tier"); tierStr != "" {
		tier, err := models.ParseTier(tierStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		transactions, err := h.reportService.ListTransactions(c.Request.Context(), tier, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tier": tier, "transactions": transactions})
		return
	}

	result := gin.H{}
	for _, tier := range []models.Tier{models.TierUsual, models.TierBig} {
		transactions, err := h.reportService.ListTransactions(c.Request.Context(), tier, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
			return
		}
		result[string(tier)] = transactions
	}
	c.JSON(http.StatusOK, result)
}

// ClearAllTransactions очищает все транзакции
func (h *Handlers) ClearAllTransactions(c *gin.Context) {
	if err := h.reportService.ClearAllTransactions(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All transactions cleared successfully",
	})
}

// GenerateSample генерирует пример исходных данных
func (h *Handlers) GenerateSample(c *gin.Context) {
	clients := parseBounded(c.Query("clients"), defaultSampleClients, maxSampleRows)
	amounts := parseBounded(c.Query("amounts"), defaultSampleAmounts, maxSampleRows)

	records := h.generator.GenerateRecordSet(clients, amounts)

	c.JSON(http.StatusOK, gin.H{
		"clients":  records.Identities,
		"currency": records.Currencies,
		"volume":   records.Amounts,
	})
}

func parseLimit(c *gin.Context) int {
	return parseBounded(c.Query("limit"), defaultLimit, maxLimit)
}

func parseBounded(value string, defaultValue, max int) int {
	if value == "" {
		return defaultValue
	}
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 && parsed <= max {
		return parsed
	}
	return defaultValue
}
