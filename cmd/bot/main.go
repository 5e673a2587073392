package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-thread-bot/internal/api/http"
	"github.com/spec-kit/support-thread-bot/internal/api/http/handlers"
	"github.com/spec-kit/support-thread-bot/internal/config"
	"github.com/spec-kit/support-thread-bot/internal/events"
	"github.com/spec-kit/support-thread-bot/internal/observability"
	"github.com/spec-kit/support-thread-bot/internal/persistence"
	"github.com/spec-kit/support-thread-bot/internal/platform/discord"
	"github.com/spec-kit/support-thread-bot/internal/service"
	"github.com/spec-kit/support-thread-bot/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	bus := events.NewInMemoryDispatcher()
	worker.StartObserver(bus, logger, metrics)

	var (
		redis  *persistence.Redis
		locker persistence.TicketLocker
	)
	if cfg.Redis.Addr != "" {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		locker = persistence.NewRedisTicketLocker(redis.Client, cfg.Ticket.LockTTL())
	} else {
		locker = persistence.NewMemoryTicketLocker()
	}

	session, err := discordgo.New("Bot " + cfg.Bot.Token)
	if err != nil {
		logger.Fatal("failed to create session", zap.Error(err))
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	client := discord.NewClient(session)
	guard := service.NewDuplicateGuard(client, logger)
	pruner := service.NewChannelPruner(client, logger, cfg.Ticket.CleanupFetchLimit)
	tickets := service.NewTicketService(cfg.Ticket, service.TicketDependencies{
		Client:     client,
		Guard:      guard,
		Pruner:     pruner,
		Locker:     locker,
		Dispatcher: bus,
		Logger:     logger,
	})
	prompt := service.NewPromptService(client, logger, cfg.Ticket.SupportChannelID)

	dispatcher := discord.NewDispatcher(tickets, prompt, logger, metrics)
	dispatcher.Register(session)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Info("gateway ready", zap.String("user", r.User.String()))
	})

	if err := session.Open(); err != nil {
		logger.Fatal("failed to open gateway session", zap.Error(err))
	}
	defer session.Close() //nolint:errcheck

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger)

	var redisPinger handlers.Pinger
	if redis != nil {
		redisPinger = redis
	}
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, client, redisPinger),
		Metrics: handlers.NewMetricsHandler(metrics),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
