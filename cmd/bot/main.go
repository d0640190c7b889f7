package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/common/uuid"
	"github.com/KirkDiggler/tonebot/internal/config"
	"github.com/KirkDiggler/tonebot/internal/handlers/discord"
	"github.com/KirkDiggler/tonebot/internal/repositories/stats"
	"github.com/KirkDiggler/tonebot/internal/services/monitor"
	"github.com/KirkDiggler/tonebot/internal/services/session"
	"github.com/KirkDiggler/tonebot/internal/services/shutdown"
	"github.com/KirkDiggler/tonebot/internal/voice"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,

		// honour ctx deadlines such as the shutdown step timeout
		ContextTimeoutEnabled: true,
	})
	defer redisClient.Close()

	// NewRedis pings the server before returning
	statsRepo, err := stats.NewRedis(&stats.Config{
		RedisClient: redisClient,
		KeyPrefix:   cfg.StatsKey,
	})
	if err != nil {
		log.Fatalf("Failed to create stats repository: %v", err)
	}

	// One gateway session serves commands and voice
	dg, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	var joinLimiter *rate.Limiter
	if cfg.JoinRatePerSecond > 0 {
		joinLimiter = rate.NewLimiter(rate.Limit(cfg.JoinRatePerSecond), 1)
	}

	backend, err := voice.NewDiscordBackend(&voice.DiscordConfig{
		Dial:        voice.SessionDialer(dg),
		JoinLimiter: joinLimiter,
	})
	if err != nil {
		log.Fatalf("Failed to create voice backend: %v", err)
	}

	source, err := audio.NewSource(&audio.Config{
		Kind:            audio.Kind(cfg.AudioSource),
		URL:             cfg.ToneURL,
		FFmpegPath:      cfg.FFmpegPath,
		SilenceDuration: cfg.AutoDisconnect,
	})
	if err != nil {
		log.Fatalf("Failed to create audio source: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	sessionSvc, err := session.New(&session.Config{
		Backend:             backend,
		DefaultSource:       source,
		AutoDisconnectAfter: cfg.AutoDisconnect,
		Clock:               systemClock,
		UUIDGenerator:       uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:        dg,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		WipeCommands:   cfg.WipeCommands,
		MOTD:           cfg.MOTD,
		SessionService: sessionSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	coordinator, err := shutdown.New(&shutdown.Config{
		Sessions: sessionSvc,
		Shard:    bot,
		Stats:    statsRepo,
		Timeout:  cfg.ShutdownTimeout,
		Clock:    systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create shutdown coordinator: %v", err)
	}

	mon, err := monitor.New(&monitor.Config{
		Sessions:   sessionSvc,
		Stats:      statsRepo,
		Shutdowner: coordinator,
		Interval:   cfg.MonitorInterval,
		Clock:      systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create monitor: %v", err)
	}

	if err := bot.Start(); err != nil {
		_ = bot.Close()
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal; the monitor runs the shutdown cascade on the way out
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mon.Run(ctx); err != nil {
		log.Printf("Shutdown finished with errors: %v", err)
	}

	log.Println("Bot has been shut down")
}
