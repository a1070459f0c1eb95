package service

import (
	"context"
	"fmt"
	"maps"

	"obsidion/events"
	"obsidion/models"
)

// autopostService implements the AutopostService interface
type autopostService struct {
	uowFactory UnitOfWorkFactory
}

// NewAutopostService creates a new autopost service
func NewAutopostService(uowFactory UnitOfWorkFactory) AutopostService {
	return &autopostService{
		uowFactory: uowFactory,
	}
}

func (s *autopostService) GetChannels(ctx context.Context, guildID int64) (models.NewsChannels, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guild, err := uow.GuildRepository().Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}
	if guild == nil || guild.News == nil {
		return models.NewsChannels{}, nil
	}
	return guild.News, nil
}

func (s *autopostService) SaveChannels(ctx context.Context, guildID int64, channels models.NewsChannels) error {
	news := make(models.NewsChannels, len(channels))
	for category, id := range channels {
		if _, err := models.ParseNewsCategory(string(category)); err != nil {
			return err
		}
		if id != 0 {
			news[category] = id
		}
	}

	return s.update(ctx, guildID, func(current models.NewsChannels) models.NewsChannels {
		return news
	})
}

func (s *autopostService) SetChannel(ctx context.Context, guildID int64, category models.NewsCategory, channelID int64) error {
	if _, err := models.ParseNewsCategory(string(category)); err != nil {
		return err
	}

	return s.update(ctx, guildID, func(current models.NewsChannels) models.NewsChannels {
		news := maps.Clone(current)
		if news == nil {
			news = models.NewsChannels{}
		}
		if channelID == 0 {
			delete(news, category)
		} else {
			news[category] = channelID
		}
		return news
	})
}

func (s *autopostService) Subscribers(ctx context.Context, category models.NewsCategory) ([]Subscription, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guilds, err := uow.GuildRepository().ListByNewsCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s subscribers: %w", category, err)
	}

	subs := make([]Subscription, 0, len(guilds))
	for _, g := range guilds {
		channelID, ok := g.News.Channel(category)
		if !ok {
			continue
		}
		subs = append(subs, Subscription{
			GuildID:   g.ID,
			ChannelID: channelID,
			Locale:    g.Locale,
			Regional:  g.Regional,
		})
	}
	return subs, nil
}

func (s *autopostService) update(ctx context.Context, guildID int64, change func(models.NewsChannels) models.NewsChannels) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guild, err := uow.GuildRepository().GetOrCreate(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild: %w", err)
	}

	guild.News = change(guild.News)

	if err := uow.GuildRepository().Update(ctx, guild); err != nil {
		return fmt.Errorf("failed to update news channels: %w", err)
	}

	uow.EventBus().Publish(events.GuildSettingsChangedEvent{
		GuildID: guildID,
		Field:   "news",
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
