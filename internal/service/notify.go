package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/ttacon/libphonenumber"

	"github.com/warelane/shipment-service/internal/domain/model"
)

// ReleaseNotification is the event published when boxes are handed back to a
// client. The notification channel (SMS, email) is an external consumer's
// concern; the core only emits the event.
type ReleaseNotification struct {
	CompanyID      string    `json:"company_id"`
	ShipmentRef    string    `json:"shipment_ref"`
	ClientName     string    `json:"client_name"`
	ClientPhone    string    `json:"client_phone,omitempty"`
	ClientEmail    string    `json:"client_email,omitempty"`
	ReleasedCount  int       `json:"released_count"`
	RemainingCount int       `json:"remaining_count"`
	ReleasedAt     time.Time `json:"released_at"`
}

// ReleaseInvoiceRequest asks the external invoicing service to raise an
// invoice for a completed release.
type ReleaseInvoiceRequest struct {
	CompanyID   string                `json:"company_id"`
	ShipmentRef string                `json:"shipment_ref"`
	ClientName  string                `json:"client_name"`
	Charges     model.ChargeBreakdown `json:"charges"`
	RequestedAt time.Time             `json:"requested_at"`
}

// Notifier emits release notifications, at most once, failures ignored.
// This interface can be mocked for testing.
type Notifier interface {
	NotifyRelease(ctx context.Context, event ReleaseNotification)
}

// InvoiceDispatcher hands computed charges to the external invoicing service.
// This interface can be mocked for testing.
type InvoiceDispatcher interface {
	DispatchReleaseInvoice(ctx context.Context, req ReleaseInvoiceRequest)
}

// RedisEventSink publishes release notifications and invoice requests onto
// Redis channels consumed by the surrounding services. Publishing is
// fire-and-forget: a sink failure is logged and never propagated, so a dead
// broker cannot roll back a committed release.
type RedisEventSink struct {
	client         *redis.Client
	notifyChannel  string
	invoiceChannel string
	defaultRegion  string
	publishTimeout time.Duration
}

// RedisEventSinkConfig configures the event sink channels.
type RedisEventSinkConfig struct {
	NotifyChannel  string
	InvoiceChannel string
	// DefaultRegion is the ISO country code used to normalize national
	// phone numbers before publishing, e.g. "PT".
	DefaultRegion  string
	PublishTimeout time.Duration
}

// DefaultRedisEventSinkConfig returns the default sink configuration.
func DefaultRedisEventSinkConfig() RedisEventSinkConfig {
	return RedisEventSinkConfig{
		NotifyChannel:  "shipment.release.notifications",
		InvoiceChannel: "shipment.release.invoices",
		DefaultRegion:  "PT",
		PublishTimeout: 2 * time.Second,
	}
}

// NewRedisEventSink creates a sink publishing on the given Redis client.
func NewRedisEventSink(client *redis.Client, cfg RedisEventSinkConfig) *RedisEventSink {
	return &RedisEventSink{
		client:         client,
		notifyChannel:  cfg.NotifyChannel,
		invoiceChannel: cfg.InvoiceChannel,
		defaultRegion:  cfg.DefaultRegion,
		publishTimeout: cfg.PublishTimeout,
	}
}

// NotifyRelease publishes the release event. The client phone is normalized
// to E.164 so downstream SMS consumers do not each reparse it; an
// unparseable number is passed through as entered.
func (s *RedisEventSink) NotifyRelease(ctx context.Context, event ReleaseNotification) {
	if event.ClientPhone != "" {
		event.ClientPhone = s.normalizePhone(event.ClientPhone)
	}
	s.publish(ctx, s.notifyChannel, event)
}

// DispatchReleaseInvoice publishes the invoice request for the invoicing
// service to pick up. Its retry and consistency semantics are its own.
func (s *RedisEventSink) DispatchReleaseInvoice(ctx context.Context, req ReleaseInvoiceRequest) {
	s.publish(ctx, s.invoiceChannel, req)
}

func (s *RedisEventSink) publish(ctx context.Context, channel string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("Failed to encode event payload")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.client.Publish(ctx, channel, data).Err(); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("Failed to publish event")
	}
}

func (s *RedisEventSink) normalizePhone(raw string) string {
	parsed, err := libphonenumber.Parse(raw, s.defaultRegion)
	if err != nil {
		return raw
	}
	return libphonenumber.Format(parsed, libphonenumber.E164)
}
