package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/skillshare-lk/user-service/internal/models"
)

const (
	TopicUserRegistered    = "user.registered"
	TopicUserStatusChanged = "user.status_changed"
)

type UserRegisteredEvent struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

type UserStatusChangedEvent struct {
	UserID     string    `json:"user_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits user lifecycle events. Publishing is best-effort: failures
// are logged, never surfaced to the request that triggered them.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, user *models.User)
	PublishUserStatusChanged(ctx context.Context, user *models.User, oldStatus models.UserStatus, changedBy string)
	Close() error
}

type publisher struct {
	pub    message.Publisher
	logger *slog.Logger
}

// NewPublisher connects to Kafka when brokers are configured and falls back
// to an in-process channel otherwise, so the service runs without a broker in
// development.
func NewPublisher(brokers []string, logger *slog.Logger) (Publisher, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	var pub message.Publisher
	if len(brokers) > 0 {
		kafkaPub, err := kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		}, wmLogger)
		if err != nil {
			return nil, err
		}
		pub = kafkaPub
	} else {
		pub = gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
	}

	return &publisher{pub: pub, logger: logger}, nil
}

func (p *publisher) PublishUserRegistered(ctx context.Context, user *models.User) {
	p.publish(TopicUserRegistered, UserRegisteredEvent{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *publisher) PublishUserStatusChanged(ctx context.Context, user *models.User, oldStatus models.UserStatus, changedBy string) {
	p.publish(TopicUserStatusChanged, UserStatusChangedEvent{
		UserID:     user.ID,
		OldStatus:  string(oldStatus),
		NewStatus:  string(user.Status),
		ChangedBy:  changedBy,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *publisher) publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal event", "topic", topic, "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := p.pub.Publish(topic, msg); err != nil {
		p.logger.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

func (p *publisher) Close() error {
	return p.pub.Close()
}
