package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"balanco/internal/handlers"
	"balanco/internal/history"
	"balanco/internal/logger"
	"balanco/internal/metrics"
	"balanco/internal/middleware"
	"balanco/internal/services"
	"balanco/internal/storage"
	"balanco/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  *storage.Store
	Engine *metrics.Engine
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&storage.CollectionRow{}, &history.WealthSnapshot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Store and services
	store := storage.New(db)
	transactionService := services.NewTransactionService(store)
	incomeService := services.NewIncomeService(store)
	investmentService := services.NewInvestmentService(store)
	realEstateService := services.NewRealEstateService(store)
	retirementService := services.NewRetirementService(store)
	loanService := services.NewLoanService(store)
	billService := services.NewBillService(store)
	historyService := history.NewService(db)

	engine := metrics.NewEngine(store)
	t.Cleanup(engine.Close)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateService)
	retirementHandler := handlers.NewRetirementHandler(retirementService)
	loanHandler := handlers.NewLoanHandler(loanService)
	billHandler := handlers.NewBillHandler(billService)
	dashboardHandler := handlers.NewDashboardHandler(engine, historyService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	income := v1.Group("/income")
	income.POST("", incomeHandler.CreateIncomeSource)
	income.GET("", incomeHandler.GetIncomeSources)
	income.PUT("/:id", incomeHandler.UpdateIncomeSource)
	income.DELETE("/:id", incomeHandler.DeleteIncomeSource)

	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	realEstate := v1.Group("/real-estate")
	realEstate.POST("", realEstateHandler.CreateProperty)
	realEstate.GET("", realEstateHandler.GetProperties)
	realEstate.PUT("/:id", realEstateHandler.UpdateProperty)
	realEstate.DELETE("/:id", realEstateHandler.DeleteProperty)

	retirement := v1.Group("/retirement")
	retirement.POST("", retirementHandler.CreatePlan)
	retirement.GET("", retirementHandler.GetPlans)
	retirement.PUT("/:id", retirementHandler.UpdatePlan)
	retirement.DELETE("/:id", retirementHandler.DeletePlan)

	loans := v1.Group("/loans")
	loans.POST("", loanHandler.CreateLoan)
	loans.GET("", loanHandler.GetLoans)
	loans.PUT("/:id", loanHandler.UpdateLoan)
	loans.DELETE("/:id", loanHandler.DeleteLoan)

	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/metrics", dashboardHandler.GetMetrics)
	dashboard.GET("/history", dashboardHandler.GetHistory)
	dashboard.POST("/history", dashboardHandler.RecordSnapshot)

	return &testApp{DB: db, Store: store, Engine: engine, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// currentMetrics fetches the dashboard metrics snapshot.
func (app *testApp) currentMetrics(t *testing.T) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/dashboard/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics request failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
