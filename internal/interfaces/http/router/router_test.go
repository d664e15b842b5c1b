package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"

	ledgerapp "github.com/finboard/backend/internal/application/ledger"
	"github.com/finboard/backend/internal/application/report"
	"github.com/finboard/backend/internal/infrastructure/config"
	"github.com/finboard/backend/internal/infrastructure/persistence"
	"github.com/finboard/backend/internal/interfaces/http/handler"
	"github.com/finboard/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRouter(engine, zap.New(core))

	group := NewDomainGroup("test", "/api/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	entries := logs.FilterMessage("Routes registered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["group"])
	assert.Equal(t, "/api/test", fields["prefix"])
	assert.Equal(t, int64(1), fields["routes"])
}

func TestDomainGroup(t *testing.T) {
	g := NewDomainGroup("ledger", "/api")
	assert.Equal(t, "ledger", g.Name())
	assert.Equal(t, "/api", g.Prefix())

	engine := gin.New()
	g.PUT("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
	g.DELETE("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	g.RegisterRoutes(engine.Group(""))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/items/12", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/items/12", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// api drives the real engine over an in-memory sqlite store
type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()

	db, err := persistence.NewDatabaseWithLogger(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   ":memory:",
	}, gormlogger.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate())

	incomes := persistence.NewGormIncomeRepository(db.DB)
	spends := persistence.NewGormSpendRepository(db.DB)
	users := persistence.NewGormUserRepository(db.DB)

	engine, err := New(Config{
		CORS:        middleware.DefaultCORSConfig(),
		Security:    middleware.DefaultSecurityConfig(),
		MaxBodySize: 1 << 20,
	}, Handlers{
		Transactions: handler.NewTransactionHandler(ledgerapp.NewTransactionService(incomes, spends, nil)),
		Reports:      handler.NewReportHandler(report.NewReportService(incomes, spends, users)),
		Accounts: handler.NewAccountHandler(ledgerapp.NewAccountService(
			persistence.NewGormAccountRepository(db.DB),
			persistence.NewGormCategoryRepository(db.DB),
			users,
		)),
		System: handler.NewSystemHandler(db, "test"),
	})
	require.NoError(t, err)

	return &api{t: t, engine: engine}
}

func (a *api) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *api) decode(w *httptest.ResponseRecorder, v any) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestAPI_DashboardBalance(t *testing.T) {
	a := newAPI(t)
	day := today()

	w := a.do(http.MethodPost, "/api/income", fmt.Sprintf(
		`{"category":"Salary","date":%q,"value":100,"description":"May","people":"ACME","userId":1}`, day))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/spends", fmt.Sprintf(
		`{"category":"Food","date":%q,"value":"40","statusSpend":"paid","userId":"1"}`, day))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/dashboard?userId=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	var dash report.DashboardResponse
	a.decode(w, &dash)
	assert.Equal(t, 100.0, dash.TotalIncome)
	assert.Equal(t, 40.0, dash.TotalSpends)
	assert.Equal(t, 60.0, dash.Balance)
	assert.Equal(t, 100.0, dash.DailyIncome)
	assert.Equal(t, 40.0, dash.DailySpends)
	assert.Equal(t, []report.DailyPointResponse{{Date: day, Income: 100, Spend: 40}}, dash.DailyData)
	require.Len(t, dash.Spends, 1)
	assert.Equal(t, "Food", dash.Spends[0].Category)
	assert.Equal(t, "paid", dash.Spends[0].StatusSpend)
}

func TestAPI_InvalidValuePersistsNothing(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/income",
		`{"category":"Salary","date":"2024-05-10","value":"abc","userId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	a.decode(w, &errResp)
	assert.NotEmpty(t, errResp.Message)
	assert.Equal(t, "VALIDATION_ERROR", errResp.Code)

	w = a.do(http.MethodPost, "/api/income",
		`{"category":"Salary","date":"2024-05-10","value":-3,"userId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_VALUE")

	for _, value := range []string{`"1e400"`, `"123456789012345678901234"`, `0.00001`} {
		w = a.do(http.MethodPost, "/api/income",
			`{"category":"Salary","date":"2024-05-10","value":`+value+`,"userId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, value)
		assert.Contains(t, w.Body.String(), "INVALID_VALUE", value)
	}

	w = a.do(http.MethodPost, "/api/spends",
		`{"category":"Food","date":"2024-05-10","value":"1e400","userId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/accounts",
		`{"name":"Main","type":"bank","balance":"1e400","userId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/income/summary?userId=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary report.IncomeSummaryResponse
	a.decode(w, &summary)
	assert.Zero(t, summary.TotalIncome)
	assert.Empty(t, summary.Spends)
	assert.Contains(t, w.Body.String(), `"bar":[]`)
}

func TestAPI_LookupIsScopedToUser(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/income",
		`{"category":"Salary","date":"2024-05-10","value":10,"userId":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created ledgerapp.IncomeResponse
	a.decode(w, &created)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/get/income/%d?userId=2", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/get/income/%d?userId=9", created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message"`)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/get/income/%d", created.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_UpdateAndDelete(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/spends",
		`{"category":"Food","date":"2024-05-10","value":5,"statusSpend":"pending","userId":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var spend ledgerapp.SpendResponse
	a.decode(w, &spend)

	w = a.do(http.MethodPut, fmt.Sprintf("/api/spends/edit/%d", spend.ID),
		`{"category":"Rent","date":"2024-05-11","value":700,"statusSpend":"paid","userId":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	a.decode(w, &spend)
	assert.Equal(t, "Rent", spend.Category)
	assert.Equal(t, 700.0, spend.Value)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/get/spend/%d?userId=3", spend.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	a.decode(w, &spend)
	assert.Equal(t, "paid", spend.StatusSpend)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/get/spend/%d?userId=4", spend.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPut, fmt.Sprintf("/api/spends/edit/%d", spend.ID),
		`{"category":"Rent","date":"2024-05-11","value":700,"userId":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/spends/delete/%d?userId=4", spend.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/spends/delete/%d", spend.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Spend deleted successfully"}`, w.Body.String())

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/spends/delete/%d", spend.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, "/api/incomes/delete/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPost, "/api/income",
		`{"category":"Salary","date":"2024-05-10","value":10,"userId":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var income ledgerapp.IncomeResponse
	a.decode(w, &income)

	w = a.do(http.MethodPut, fmt.Sprintf("/api/incomes/edit/%d", income.ID),
		`{"category":"Bonus","date":"2024-05-12","value":"12.5","userId":"3"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	a.decode(w, &income)
	assert.Equal(t, "Bonus", income.Category)
	assert.Equal(t, 12.5, income.Value)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/incomes/delete/%d?userId=3", income.ID), "")
	assert.JSONEq(t, `{"message":"Income deleted successfully"}`, w.Body.String())
}

func TestAPI_RecentTransactions(t *testing.T) {
	a := newAPI(t)
	for d := 1; d <= 6; d++ {
		w := a.do(http.MethodPost, "/api/income",
			fmt.Sprintf(`{"category":"Salary","date":"2024-05-%02d","value":%d,"userId":1}`, d, d))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := a.do(http.MethodGet, "/transactions?userId=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp report.RecentTransactionsResponse
	a.decode(w, &resp)
	assert.Len(t, resp.Incomes, 5)
	assert.Empty(t, resp.Spends)
	require.Len(t, resp.Transactions, 5)
	assert.Equal(t, 6.0, resp.Transactions[0].Value)
	assert.Equal(t, "income", resp.Transactions[0].Type)
}

func TestAPI_ReferenceData(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/users", `{"name":"Ana"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var user ledgerapp.UserResponse
	a.decode(w, &user)

	w = a.do(http.MethodPost, "/api/accounts",
		fmt.Sprintf(`{"name":"Wallet","type":"cash","balance":"12.50","userId":%d}`, user.ID))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/categories",
		fmt.Sprintf(`{"name":"Food","subcategories":"Groceries","userId":%d}`, user.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category ledgerapp.CategoryResponse
	a.decode(w, &category)
	assert.NotZero(t, category.SubcategoryID)

	w = a.do(http.MethodGet, fmt.Sprintf("/dashboard?userId=%d", user.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var dash report.DashboardResponse
	a.decode(w, &dash)
	assert.Equal(t, "Ana", dash.NameUser)
}

func TestAPI_HealthAndFallbacks(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	w = a.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = a.do(http.MethodOptions, "/api/income", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = a.do(http.MethodGet, "/dashboard?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
