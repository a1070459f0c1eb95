package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"obsidion/models"
	"obsidion/service"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentPosts bounds the parallel channel posts of one news item
const maxConcurrentPosts = 8

// SubscriberLister finds the channels that receive a news category
type SubscriberLister interface {
	Subscribers(ctx context.Context, category models.NewsCategory) ([]service.Subscription, error)
}

// NewsPoster delivers a news item to one subscribed channel
type NewsPoster interface {
	PostNews(ctx context.Context, sub service.Subscription, item *models.NewsItem) error
}

// NewsConsumer delivers published news items to every subscribed channel
type NewsConsumer struct {
	client      *NATSClient
	subscribers SubscriberLister
	poster      NewsPoster
}

// NewNewsConsumer creates a consumer. client may be nil when only
// HandleMessage is used.
func NewNewsConsumer(client *NATSClient, subscribers SubscriberLister, poster NewsPoster) *NewsConsumer {
	return &NewsConsumer{
		client:      client,
		subscribers: subscribers,
		poster:      poster,
	}
}

// Start makes sure the news stream exists and subscribes to every category
func (c *NewsConsumer) Start(ctx context.Context) error {
	if err := c.client.EnsureNewsStream(); err != nil {
		return err
	}
	for _, subject := range NewsSubjects() {
		if err := c.client.Subscribe(ctx, subject, c.HandleMessage); err != nil {
			return err
		}
	}
	return nil
}

// HandleMessage decodes one news item and posts it. Malformed items are
// dropped. Only a failed subscriber lookup is retried, since a retry after
// partial delivery would post duplicates.
func (c *NewsConsumer) HandleMessage(ctx context.Context, data []byte) error {
	var item models.NewsItem
	if err := json.Unmarshal(data, &item); err != nil {
		log.WithError(err).Warn("Dropping malformed news item")
		return nil
	}
	if err := item.Validate(); err != nil {
		log.WithError(err).Warn("Dropping invalid news item")
		return nil
	}

	subs, err := c.subscribers.Subscribers(ctx, item.Category)
	if err != nil {
		return fmt.Errorf("failed to find subscribers: %w", err)
	}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPosts)
	for _, sub := range subs {
		g.Go(func() error {
			if err := c.poster.PostNews(gctx, sub, &item); err != nil {
				failed.Add(1)
				log.WithFields(log.Fields{
					"guildID":   sub.GuildID,
					"channelID": sub.ChannelID,
					"category":  item.Category,
					"error":     err,
				}).Warn("Failed to post news item")
			}
			return nil
		})
	}
	_ = g.Wait()

	log.WithFields(log.Fields{
		"category":    item.Category,
		"title":       item.Title,
		"subscribers": len(subs),
		"failed":      failed.Load(),
	}).Info("Delivered news item")
	return nil
}
