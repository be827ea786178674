package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Raj-Aarav/FinWise/config"
	"github.com/Raj-Aarav/FinWise/handlers"
	"github.com/Raj-Aarav/FinWise/llm"
	"github.com/Raj-Aarav/FinWise/logger"
	"github.com/Raj-Aarav/FinWise/middleware"
	"github.com/Raj-Aarav/FinWise/mongodb"
	"github.com/Raj-Aarav/FinWise/sse"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Init(cfg.Development(), cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			logger.Get().Warn("failed to initialize Sentry", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	store, err := mongodb.Connect(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Get().Fatal("failed to connect to document store", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()
		store.Close(closeCtx)
	}()

	var completer llm.Completer = llm.Static{}
	if cfg.OpenAIAPIKey != "" {
		completer = llm.NewClient(llm.ClientConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.RequestTimeout,
		})
		logger.Get().Info("using OpenAI completions", zap.String("model", cfg.OpenAIModel))
	} else {
		logger.Get().Info("no completion API key configured, using static advisor")
	}

	h := handlers.New(store, completer, sse.NewBroker(), cfg)

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CORS, middleware.RequestID)

	api := router.Group("/api")
	api.GET("/health", h.Health)
	// Token arrives as a query parameter here, verified by the handler.
	api.GET("/events", h.Events)

	authed := api.Group("", middleware.AuthRequired(cfg.JWTSecret, cfg.JWTIssuer))
	{
		authed.POST("/goals", h.CreateGoal)
		authed.GET("/goals", h.ListGoals)
		authed.GET("/goals/stats", h.GoalStats)
		authed.PATCH("/goals/:id", h.ContributeToGoal)
		authed.DELETE("/goals/:id", h.DeleteGoal)

		authed.POST("/budgets", h.CreateBudget)
		authed.GET("/budgets", h.ListBudgets)
		authed.GET("/budgets/summary", h.BudgetSummary)

		authed.POST("/transactions", h.CreateTransaction)
		authed.GET("/transactions", h.ListTransactions)
		authed.DELETE("/transactions/:id", h.DeleteTransaction)

		authed.POST("/chat", h.Chat)
		authed.GET("/chat/history", h.ChatHistory)

		authed.POST("/ai-tips", h.GenerateTip)
		authed.GET("/ai-tips", h.ListTips)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Get().Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Get().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Get().Fatal("server exited with error", zap.Error(err))
	}
}
