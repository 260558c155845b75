package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPublisher publica os eventos num canal pub/sub (o notificador de
// WhatsApp assina esse canal).
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(ctx context.Context, url, channel string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// LogPublisher escreve os eventos no log quando não há broker.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.Uint("clinica_id", ev.ClinicID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.Time("occurred_at", ev.OccurredAt),
	}
	if ev.EntityID != nil {
		fields = append(fields, zap.Uint("entity_id", *ev.EntityID))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	p.log.Info("event", fields...)
	return nil
}
