package bot

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"obsidion/bot/common"
	"obsidion/bot/features/account"
	"obsidion/bot/features/autopost"
	"obsidion/bot/features/fun"
	"obsidion/bot/features/help"
	"obsidion/bot/features/rcon"
	"obsidion/bot/features/serverlink"
	"obsidion/bot/features/settings"
	"obsidion/bot/router"
	"obsidion/events"
	core "obsidion/fun"
	"obsidion/i18n"
	"obsidion/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token         string
	OwnerID       int64
	DefaultPrefix string
	DefaultLocale string
	WizardTimeout time.Duration
	CommandRate   float64
}

// Services are the business services the commands call into
type Services struct {
	Guild    service.GuildService
	Autopost service.AutopostService
	Account  service.AccountService
	Rcon     service.RconService
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	router   *router.Router
	settings *SettingsCache
	news     *NewsPoster

	// ctx is cancelled on Close so pending wizards stop waiting
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the session and the command router. Call Open to connect.
func New(config Config, services Services, pools *core.Pools, catalog *i18n.Catalog, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	registry, err := BuildRegistry(
		fun.NewFeature(pools, core.Random, config.OwnerID),
		settings.NewFeature(services.Guild, config.DefaultPrefix, config.DefaultLocale),
		account.NewFeature(services.Account),
		serverlink.NewFeature(services.Guild),
		autopost.NewFeature(services.Autopost),
		rcon.NewFeature(services.Rcon),
	)
	if err != nil {
		return nil, err
	}

	cache := NewSettingsCache(services.Guild)
	cache.Subscribe(eventBus)

	ctx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		config:   config,
		session:  dg,
		settings: cache,
		news:     NewNewsPoster(common.ChannelSender{Session: dg}, catalog, config.DefaultLocale),
		ctx:      ctx,
		cancel:   cancel,
		router: router.New(router.Config{
			DefaultPrefix: config.DefaultPrefix,
			DefaultLocale: config.DefaultLocale,
			WizardTimeout: config.WizardTimeout,
			CommandRate:   config.CommandRate,
		}, registry, catalog, cache),
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleInteractionCreate)

	return bot, nil
}

// Open connects to the gateway and registers the slash commands
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return fmt.Errorf("error registering commands: %w", err)
	}

	log.WithField("commands", len(b.router.Registry().Commands())).Info("Bot connected")
	return nil
}

func (b *Bot) Close() error {
	b.cancel()
	return b.session.Close()
}

// News returns the poster used for autopost delivery
func (b *Bot) News() *NewsPoster {
	return b.news
}

// GuildCount returns how many guilds the session currently sees
func (b *Bot) GuildCount() int {
	b.session.State.RLock()
	defer b.session.State.RUnlock()
	return len(b.session.State.Guilds)
}

// BuildRegistry collects the commands of every feature and the help
// command describing them
func BuildRegistry(features ...interface{ Commands() []*router.Command }) (*router.Registry, error) {
	registry := router.NewRegistry()
	for _, f := range features {
		if err := registry.Register(f.Commands()...); err != nil {
			return nil, fmt.Errorf("failed to register commands: %w", err)
		}
	}
	if err := registry.Register(help.NewFeature(registry).Commands()...); err != nil {
		return nil, fmt.Errorf("failed to register help: %w", err)
	}
	return registry, nil
}
