package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codebench-2025.net/internal/adapter/crypto"
	"gitlab.com/codebench-2025.net/internal/adapter/postgres/runrepository"
	"gitlab.com/codebench-2025.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codebench-2025.net/internal/adapter/redis/translationcache"
	"gitlab.com/codebench-2025.net/internal/benchengine"
	"gitlab.com/codebench-2025.net/internal/config"
	auth2 "gitlab.com/codebench-2025.net/internal/core/services/auth"
	"gitlab.com/codebench-2025.net/internal/core/services/execute"
	"gitlab.com/codebench-2025.net/internal/core/services/runs"
	"gitlab.com/codebench-2025.net/internal/core/services/translate"
	logger2 "gitlab.com/codebench-2025.net/internal/global/logger"
	http2 "gitlab.com/codebench-2025.net/internal/http"
	"gitlab.com/codebench-2025.net/internal/sandbox"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting codebench service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	runRepo := runrepository.NewRunRepository(db, logger)
	userPort := userrepository.New(db, logger)
	translationCache := translationcache.NewCache(redisClient, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// CORE
	workspace, err := sandbox.NewWorkspace(sysCfg.ExecutorCfg.WorkDir, logger)
	if err != nil {
		panic(err)
	}
	runner := sandbox.NewRunner(logger)
	pythonExecutor := execute.NewInterpreterExecutor(sysCfg.ExecutorCfg, workspace, runner, logger)
	cExecutor := execute.NewCompilerExecutor(sysCfg.ExecutorCfg, workspace, runner, logger)
	comparator := execute.NewComparisonService(pythonExecutor, cExecutor, logger)

	// SERVICES
	runSvc := runs.NewRunService(runRepo, logger)
	translatorSvc := translate.NewTranslatorService(sysCfg.TranslatorCfg, translationCache, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(pythonExecutor, cExecutor, comparator, runSvc, translatorSvc, ggAuth, localAuth)

	// SERVER
	httServer := http2.NewServer(8082, "codebench", *serviceProvider, sysCfg.JwtConfig.Secret, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	engineCtx, engineCancel := context.WithCancel(ctxBg)
	httServer.Start(ctxBg)

	engine := benchengine.NewBenchEngine(sysCfg.BenchEngineCfg, runRepo, comparator, logger)
	if !sysCfg.DebugMode {
		engine.Start(engineCtx)
	}

	<-quit
	logger.Info("Shutting down server...")

	engineCancel()
	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
