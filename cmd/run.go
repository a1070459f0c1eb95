package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"obsidion/api"
	"obsidion/bot"
	"obsidion/config"
	"obsidion/database"
	"obsidion/events"
	"obsidion/fun"
	"obsidion/i18n"
	"obsidion/infrastructure"
	"obsidion/mojang"
	"obsidion/repository"
	"obsidion/service"
)

const shutdownTimeout = 10 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context())
	},
}

// Run initializes and starts the application. It returns once ctx is
// cancelled and everything has shut down.
func Run(ctx context.Context) error {
	cfg := config.Get()
	log.WithFields(log.Fields{
		"version":     Version,
		"environment": cfg.Environment,
	}).Info("Starting obsidion")

	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	services := bot.Services{
		Guild:    service.NewGuildService(uowFactory),
		Autopost: service.NewAutopostService(uowFactory),
		Account:  service.NewAccountService(uowFactory, mojang.NewClient(cfg.MojangAPIURL)),
		Rcon:     service.NewRconService(uowFactory),
	}

	catalog, err := i18n.LoadCatalog(nil)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	log.WithField("locales", catalog.Locales()).Info("Loaded message catalogs")

	var resources fs.FS
	if cfg.ResourceDir != "" {
		resources = os.DirFS(cfg.ResourceDir)
	}
	pools, err := fun.LoadPools(resources)
	if err != nil {
		return fmt.Errorf("failed to load response pools: %w", err)
	}

	discordBot, err := bot.New(bot.Config{
		Token:         cfg.DiscordToken,
		OwnerID:       cfg.OwnerID,
		DefaultPrefix: cfg.DefaultPrefix,
		DefaultLocale: cfg.DefaultLocale,
		WizardTimeout: cfg.WizardTimeout,
		CommandRate:   cfg.CommandRate,
	}, services, pools, catalog, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	if err := discordBot.Open(); err != nil {
		return err
	}
	defer func() {
		if err := discordBot.Close(); err != nil {
			log.WithError(err).Error("Error closing Discord session")
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.NATSServers != "" {
		natsClient, err := startMessaging(gctx, cfg.NATSServers, eventBus, services.Autopost, discordBot.News())
		if err != nil {
			return err
		}
		defer natsClient.Close()
	} else {
		log.Info("NATS_SERVERS not set, news delivery and event forwarding disabled")
	}

	if cfg.StatusAddr != "" {
		server := api.NewServer(cfg.StatusAddr, Version, db, discordBot, services.Guild)
		g.Go(server.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")
		return nil
	})

	return g.Wait()
}

// startMessaging connects to NATS, forwards domain events and starts the
// news consumer
func startMessaging(ctx context.Context, servers string, bus *events.Bus, subscribers infrastructure.SubscriberLister, poster infrastructure.NewsPoster) (*infrastructure.NATSClient, error) {
	client := infrastructure.NewNATSClient(servers)
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if err := client.EnsureEventStream(); err != nil {
		client.Close()
		return nil, err
	}
	infrastructure.NewEventForwarder(client).Register(bus)

	if err := infrastructure.NewNewsConsumer(client, subscribers, poster).Start(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to start news consumer: %w", err)
	}
	return client, nil
}
