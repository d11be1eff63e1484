package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"balanco/internal/config"
	"balanco/internal/database"
	"balanco/internal/handlers"
	"balanco/internal/history"
	"balanco/internal/logger"
	"balanco/internal/metrics"
	"balanco/internal/middleware"
	"balanco/internal/services"
	"balanco/internal/storage"
	"balanco/internal/validator"

	_ "balanco/internal/docs" // Import swagger docs
)

// @title           Balanco API
// @version         1.0
// @description     Balanco is a personal finance dashboard backend: transactions, income, investments, real estate, retirement plans, loans, and bills, aggregated into live net worth and cash flow metrics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Record store and per-collection services
	store := storage.New(dbManager.DB())
	transactionService := services.NewTransactionService(store)
	incomeService := services.NewIncomeService(store)
	investmentService := services.NewInvestmentService(store)
	realEstateService := services.NewRealEstateService(store)
	retirementService := services.NewRetirementService(store)
	loanService := services.NewLoanService(store)
	billService := services.NewBillService(store)
	historyService := history.NewService(dbManager.DB())

	// Aggregation engine: full reload and recompute on every store write
	engine := metrics.NewEngine(store)

	cronJob, err := history.StartScheduler(appConfig.SnapshotSchedule, engine, historyService)
	if err != nil {
		engine.Close()
		return fmt.Errorf("failed to start snapshot scheduler: %w", err)
	}

	// Custom enum validators for Gin binding
	validator.Register()

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateService)
	retirementHandler := handlers.NewRetirementHandler(retirementService)
	loanHandler := handlers.NewLoanHandler(loanService)
	billHandler := handlers.NewBillHandler(billService)
	dashboardHandler := handlers.NewDashboardHandler(engine, historyService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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

	server := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		log.Infof("Starting Balanco backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case <-ctx.Done():
			return nil
		}

		log.Info("Shutting down server...")
		cronJob.Stop()
		engine.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
