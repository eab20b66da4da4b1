package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/config"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/content"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services"
)

// errNoActorStore stops commands that read actors saved by an earlier run
var errNoActorStore = errors.New("this command reads stored actors and requires REDIS_URL")

// app is the wired process shared by every subcommand
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	provider *services.Provider
	closers  []func() error
}

func newApp(ctx context.Context) (*app, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}
	providerConfig := &services.ProviderConfig{
		Logger:      logger,
		OwnerFormat: cfg.Generation.OwnerFormat,
	}

	if cfg.Content.Dir != "" {
		store, loadErr := content.LoadDir(cfg.Content.Dir)
		if loadErr != nil {
			return nil, fmt.Errorf("loading decks from %s: %w", cfg.Content.Dir, loadErr)
		}
		providerConfig.Content = store
	}

	if cfg.Generation.Seed != 0 {
		providerConfig.Roller = dice.NewSeededRoller(cfg.Generation.Seed)
	} else {
		seed := dice.NewSeed()
		logger.Debug("rolling with fresh seed", "seed", seed)
		providerConfig.Roller = dice.NewSeededRoller(seed)
	}

	repo, err := a.connectRedis(ctx)
	if err != nil {
		return nil, err
	}
	providerConfig.ActorRepository = repo

	notifier, err := a.notifier()
	if err != nil {
		a.Close()
		return nil, err
	}
	providerConfig.Notifier = notifier

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.provider = provider
	return a, nil
}

// connectRedis returns nil when REDIS_URL is unset so the provider falls back to memory
func (a *app) connectRedis(ctx context.Context) (actors.Repository, error) {
	if a.cfg.Redis.URL == "" {
		log.Println("No REDIS_URL found, actors are kept in memory for this run")
		return nil, nil
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	a.closers = append(a.closers, client.Close)
	return actors.NewRedis(client), nil
}

func (a *app) notifier() (notify.Notifier, error) {
	logNotifier := notify.NewLogNotifier(a.logger)
	if !a.cfg.Discord.Enabled() {
		return logNotifier, nil
	}

	session, err := discordgo.New("Bot " + a.cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	discord, err := notify.NewDiscordNotifier(&notify.DiscordConfig{
		Session:   session,
		ChannelID: a.cfg.Discord.ChannelID,
	})
	if err != nil {
		return nil, err
	}
	return notify.Multi(logNotifier, discord), nil
}

// Close releases connections opened by newApp
func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}
	a.closers = nil
}

// withApp wires the app for one command run
func withApp(run func(ctx context.Context, a *app) error) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return run(ctx, a)
}

// withActorStore is withApp for commands that need actors from earlier runs
func withActorStore(run func(ctx context.Context, a *app) error) error {
	return withApp(func(ctx context.Context, a *app) error {
		if a.cfg.Redis.URL == "" {
			return errNoActorStore
		}
		return run(ctx, a)
	})
}
