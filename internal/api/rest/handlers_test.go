package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"currency-transactions/internal/logger"
	"currency-transactions/internal/models"
	servicemocks "currency-transactions/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(handlers *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	RegisterRoutes(router, handlers)
	return router
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlers_TriggerRun_Success(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	run := &models.RunSummary{
		RunID:     "run_1",
		State:     models.StateDone,
		Status:    models.RunStatusSucceeded,
		Persisted: 3,
	}
	mockService.On("TriggerRun", mock.Anything).Return(run, nil)

	w := serve(router, "POST", "/api/v1/runs")

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "run_1", result.RunID)
	assert.Equal(t, models.StateDone, result.State)
	assert.Equal(t, 3, result.Persisted)

	mockService.AssertExpectations(t)
}

func TestHandlers_TriggerRun_InProgress(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("TriggerRun", mock.Anything).Return(nil, models.ErrRunInProgress)

	w := serve(router, "POST", "/api/v1/runs")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlers_TriggerRun_Aborted(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	run := &models.RunSummary{RunID: "run_1", State: models.StateAborted, Status: models.RunStatusFailed}
	mockService.On("TriggerRun", mock.Anything).Return(run, models.ErrExternalService)

	w := serve(router, "POST", "/api/v1/runs")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result struct {
		Error string             `json:"error"`
		Run   *models.RunSummary `json:"run"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.Error, "external service")
	require.NotNil(t, result.Run)
	assert.Equal(t, models.StateAborted, result.Run.State)
}

func TestHandlers_GetRuns(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	runs := []*models.RunSummary{{RunID: "run_2"}, {RunID: "run_1"}}
	mockService.On("ListRuns", mock.Anything, 100).Return(runs, nil).Once()
	mockService.On("ListRuns", mock.Anything, 2).Return(runs, nil).Once()

	w := serve(router, "GET", "/api/v1/runs")
	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result["runs"], 2)

	w = serve(router, "GET", "/api/v1/runs?limit=2")
	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestHandlers_GetRuns_InvalidLimitFallsBack(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ListRuns", mock.Anything, 100).Return([]*models.RunSummary{}, nil).Times(3)

	for _, limit := range []string{"abc", "0", "1000"} {
		w := serve(router, "GET", "/api/v1/runs?limit="+limit)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	mockService.AssertExpectations(t)
}

func TestHandlers_GetRuns_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ListRuns", mock.Anything, 100).Return(nil, errors.New("database error"))

	w := serve(router, "GET", "/api/v1/runs")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_GetRun_Success(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	run := &models.RunSummary{
		RunID: "run_1",
		State: models.StateDone,
		Stats: map[string]int64{"usual": 2},
	}
	mockService.On("GetRun", mock.Anything, "run_1").Return(run, nil)

	w := serve(router, "GET", "/api/v1/runs/run_1")

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "run_1", result.RunID)
	assert.Equal(t, int64(2), result.Stats["usual"])
}

func TestHandlers_GetRun_NotFound(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("GetRun", mock.Anything, "missing").Return(nil, nil)

	w := serve(router, "GET", "/api/v1/runs/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Run not found", result["error"])
}

func TestHandlers_GetRun_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("GetRun", mock.Anything, "run_1").Return(nil, errors.New("database error"))

	w := serve(router, "GET", "/api/v1/runs/run_1")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_GetRunEvents(t *testing.T) {
	router := setupTestRouter(NewHandlers(new(servicemocks.MockReportService)))

	logger.LogEvent(logger.EventRunStarted, "run_events_test", "pipeline", nil)

	w := serve(router, "GET", "/api/v1/runs/run_events_test/events")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result["events"], 1)
	assert.Equal(t, "run_events_test", result["events"][0]["run_id"])
}

func TestHandlers_GetTransactions_ByTier(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	stored := []*models.StoredTransaction{
		{
			Transaction: models.Transaction{
				ID:       1,
				Name:     "Konstantinov P.S.",
				Currency: "USD",
				Volume:   decimal.RequireFromString("1500.5"),
				Tier:     models.TierBig,
			},
			RunID: "run_1",
		},
	}
	mockService.On("ListTransactions", mock.Anything, models.TierBig, 10).Return(stored, nil)

	w := serve(router, "GET", "/api/v1/transactions?tier=big&limit=10")

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Tier         models.Tier                 `json:"tier"`
		Transactions []*models.StoredTransaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.TierBig, result.Tier)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Konstantinov P.S.", result.Transactions[0].Name)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(result.Transactions[0].Volume))
}

func TestHandlers_GetTransactions_BothTiers(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ListTransactions", mock.Anything, models.TierUsual, 100).Return([]*models.StoredTransaction{}, nil)
	mockService.On("ListTransactions", mock.Anything, models.TierBig, 100).Return([]*models.StoredTransaction{}, nil)

	w := serve(router, "GET", "/api/v1/transactions")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result, "usual")
	assert.Contains(t, result, "big")
	mockService.AssertExpectations(t)
}

func TestHandlers_GetTransactions_UnknownTier(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	w := serve(router, "GET", "/api/v1/transactions?tier=huge")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlers_GetTransactions_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ListTransactions", mock.Anything, models.TierUsual, 100).Return(nil, errors.New("database error"))

	w := serve(router, "GET", "/api/v1/transactions?tier=usual")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(router, "GET", "/api/v1/transactions")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_ClearAllTransactions_Success(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ClearAllTransactions", mock.Anything).Return(nil)

	w := serve(router, "DELETE", "/api/v1/transactions")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "All transactions cleared successfully", result["message"])
}

func TestHandlers_ClearAllTransactions_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockReportService)
	router := setupTestRouter(NewHandlers(mockService))

	mockService.On("ClearAllTransactions", mock.Anything).Return(errors.New("database error"))

	w := serve(router, "DELETE", "/api/v1/transactions")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_GenerateSample(t *testing.T) {
	router := setupTestRouter(NewHandlers(new(servicemocks.MockReportService)))

	w := serve(router, "GET", "/api/v1/sample?clients=3&amounts=2")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result["clients"], 3)
	assert.Len(t, result["volume"], 2)
	assert.NotEmpty(t, result["currency"])
}

func TestHandlers_GenerateSample_Concurrent(t *testing.T) {
	router := setupTestRouter(NewHandlers(new(servicemocks.MockReportService)))

	const workers = 8
	codes := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			w := serve(router, "GET", "/api/v1/sample?clients=50&amounts=50")
			codes[index] = w.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestCommonEndpoints(t *testing.T) {
	router := setupTestRouter(NewHandlers(new(servicemocks.MockReportService)))

	w := serve(router, "GET", "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(router, "GET", "/api/v1/events?limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "events")

	w = serve(router, "GET", "/api/v1/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_events")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := setupTestRouter(NewHandlers(new(servicemocks.MockReportService)))

	req := httptest.NewRequest("OPTIONS", "/api/v1/runs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
