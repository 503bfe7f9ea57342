package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	formApp "minegate/internal/application/form"
	reviewApp "minegate/internal/application/review"
	supportApp "minegate/internal/application/support"
	"minegate/internal/infrastructure/cache"
	"minegate/internal/infrastructure/config"
	"minegate/internal/infrastructure/database"
	"minegate/internal/infrastructure/persistence/migrations"
	"minegate/internal/infrastructure/repository"
	"minegate/internal/infrastructure/roster"
	"minegate/internal/infrastructure/telegram"
	"minegate/internal/infrastructure/whitelist"
	botInterface "minegate/internal/interfaces/bot"
	"minegate/internal/shared/db"
	"minegate/internal/shared/logger"
)

var skipMigrations bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot",
		Long:  `Start the whitelist-application and support bot with long polling.`,
		RunE:  run,
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Skip automatic database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting bot",
		"admins", len(cfg.Telegram.AdminIDs),
		"database", cfg.Database.Driver,
	)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	if !skipMigrations {
		if err := migrations.MigrateAll(database.Get()); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
		log.Infow("database migrations applied")
	}

	// The polling offset survives restarts in redis; without redis the bot
	// still runs, it just re-reads the backlog after a restart.
	var offsetStore telegram.OffsetStore
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warnw("redis unavailable, polling offset will not persist", "error", err)
		} else {
			offsetStore = cache.NewPollingOffsetStore(redisClient)
		}
		cancel()
		defer redisClient.Close()
	}

	gormDB := database.Get()
	userRepo := repository.NewUserRepository(gormDB)
	appRepo := repository.NewApplicationRepository(gormDB)
	mediaRepo := repository.NewApplicationMediaRepository(gormDB)
	draftRepo := repository.NewFormDraftRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	messageRepo := repository.NewTicketMessageRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	botService := telegram.NewBotService(cfg.Telegram)
	rosterWriter := roster.NewFileWriter(cfg.Roster)
	whitelistRunner := whitelist.NewConsoleRunner(cfg.Whitelist, log)
	notifier := botInterface.NewNotifier(botService, cfg.Telegram.AdminIDs, log)

	formService := formApp.NewService(userRepo, draftRepo, appRepo, mediaRepo, txManager, rosterWriter, notifier, log)
	reviewService := reviewApp.NewService(appRepo, mediaRepo, draftRepo, userRepo, txManager, whitelistRunner, notifier, log)
	supportService := supportApp.NewService(ticketRepo, messageRepo, userRepo, notifier, cfg.Telegram.AdminIDs, log)

	router := botInterface.NewRouter(
		formService,
		reviewService,
		supportService,
		botInterface.NewSessionStore(),
		botService,
		cfg.Telegram.IsAdmin,
		log,
	)

	if err := botService.DeleteWebhook(); err != nil {
		log.Warnw("failed to delete webhook", "error", err)
	}
	if err := botService.SetMyCommands([]telegram.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "menu", Description: "Открыть меню"},
	}); err != nil {
		log.Warnw("failed to set bot commands", "error", err)
	}

	poller := telegram.NewPollingService(botService, router, log, offsetStore, cfg.Telegram.PollTimeout)
	if err := poller.Start(context.Background()); err != nil {
		log.Fatalw("failed to start polling", "error", err)
	}
	log.Infow("bot started, polling for updates")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down bot...")
	poller.Stop()
	log.Infow("bot exited gracefully")
	return nil
}
