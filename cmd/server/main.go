package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/config"
	"github.com/mamadbah2/fittrack/internal/repository"
	"github.com/mamadbah2/fittrack/internal/repository/mongodb"
	"github.com/mamadbah2/fittrack/internal/repository/sheets"
	"github.com/mamadbah2/fittrack/internal/repository/sqlite"
	"github.com/mamadbah2/fittrack/internal/scheduler"
	"github.com/mamadbah2/fittrack/internal/server/handlers"
	"github.com/mamadbah2/fittrack/internal/server/router"
	diagnosticssvc "github.com/mamadbah2/fittrack/internal/service/diagnostics"
	diarysvc "github.com/mamadbah2/fittrack/internal/service/diary"
	exportsvc "github.com/mamadbah2/fittrack/internal/service/export"
	searchsvc "github.com/mamadbah2/fittrack/internal/service/search"
	"github.com/mamadbah2/fittrack/pkg/clients/exercisedb"
	"github.com/mamadbah2/fittrack/pkg/clients/nutritionix"
	"github.com/mamadbah2/fittrack/pkg/logger"
)

const storeConnectTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.IsDevelopment()))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := openStore(cfg.Database, logger.Named(baseLogger, "repo"))
	if store != nil {
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close diary store", zap.Error(err))
			}
		}()
	}

	var foodClient nutritionix.Client
	if cfg.Nutritionix.Enabled() {
		foodClient = nutritionix.NewClient(cfg.Nutritionix)
		baseLogger.Info("nutritionix client enabled")
	} else {
		baseLogger.Warn("nutritionix credentials missing, food search serves sample data")
	}

	var exerciseClient exercisedb.Client
	if cfg.ExerciseDB.Enabled() {
		exerciseClient = exercisedb.NewClient(cfg.ExerciseDB)
		baseLogger.Info("exercisedb client enabled")
	} else {
		baseLogger.Warn("rapidapi key missing, exercise search serves sample data")
	}

	foodSvc := searchsvc.NewFoodService(foodClient, logger.Named(baseLogger, "svc.food"))
	exerciseSvc := searchsvc.NewExerciseService(exerciseClient, logger.Named(baseLogger, "svc.exercise"))
	diarySvc := diarysvc.NewService(store, logger.Named(baseLogger, "svc.diary"))
	diagnosticsSvc := diagnosticssvc.NewService(store, cfg.Database.URL != "", logger.Named(baseLogger, "svc.diagnostics"))

	engine := router.New(router.Handlers{
		System: handlers.NewSystemHandler(diagnosticsSvc),
		Search: handlers.NewSearchHandler(foodSvc, exerciseSvc, logger.Named(baseLogger, "handlers.search")),
		Diary:  handlers.NewDiaryHandler(diarySvc, logger.Named(baseLogger, "handlers.diary")),
	}, logger.Named(baseLogger, "router"))

	if sched := newExportScheduler(cfg, store, diarySvc, baseLogger); sched != nil {
		if err := sched.Start(); err != nil {
			baseLogger.Error("summary export disabled", zap.Error(err))
		} else {
			defer sched.Stop()
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openStore returns nil when no store is configured or it cannot be reached;
// the diary routes then answer 503 and diagnostics report the store as not initialized.
func openStore(cfg config.DatabaseConfig, log *zap.Logger) repository.DiaryRepository {
	if !cfg.Configured() {
		log.Warn("no diary store configured", zap.String("driver", cfg.Driver))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverSQLite:
		repo, err := sqlite.NewSQLiteRepository(ctx, cfg.SQLitePath)
		if err != nil {
			log.Error("failed to open sqlite store", zap.Error(err))
			return nil
		}
		log.Info("sqlite store opened", zap.String("path", cfg.SQLitePath))
		return repo
	default:
		repo, err := mongodb.NewMongoDBRepository(ctx, cfg.URL, cfg.Name)
		if err != nil {
			log.Error("failed to connect to mongodb", zap.Error(err))
			return nil
		}
		log.Info("mongodb store connected", zap.String("database", cfg.Name))
		return repo
	}
}

func newExportScheduler(cfg *config.Config, store repository.DiaryRepository, summaries exportsvc.SummaryProvider, log *zap.Logger) *scheduler.Scheduler {
	if !cfg.Sheets.Enabled() {
		log.Info("google sheets not configured, summary export disabled")
		return nil
	}
	if store == nil {
		log.Warn("summary export needs a diary store, export disabled")
		return nil
	}

	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(log, "repo.sheets"))
	if err != nil {
		log.Error("failed to init sheets repository", zap.Error(err))
		return nil
	}

	// Validate already checked the location.
	location, _ := time.LoadLocation(cfg.Export.Timezone)

	exporter := exportsvc.NewService(sheetsRepo, summaries, location, logger.Named(log, "svc.export"))
	return scheduler.NewScheduler(cfg.Export.CronSchedule, location, exporter, logger.Named(log, "scheduler"))
}
