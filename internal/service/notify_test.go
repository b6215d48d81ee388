//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRedisEventSinkConfig(t *testing.T) {
	cfg := DefaultRedisEventSinkConfig()

	assert.Equal(t, "shipment.release.notifications", cfg.NotifyChannel)
	assert.Equal(t, "shipment.release.invoices", cfg.InvoiceChannel)
	assert.Equal(t, "PT", cfg.DefaultRegion)
	assert.Positive(t, cfg.PublishTimeout)
}

func TestRedisEventSink_NormalizePhone(t *testing.T) {
	sink := NewRedisEventSink(nil, DefaultRedisEventSinkConfig())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "national number gets the default region prefix",
			raw:  "912 345 678",
			want: "+351912345678",
		},
		{
			name: "e164 number is unchanged",
			raw:  "+351912345678",
			want: "+351912345678",
		},
		{
			name: "foreign e164 number keeps its country code",
			raw:  "+14155552671",
			want: "+14155552671",
		},
		{
			name: "unparseable input passes through",
			raw:  "ask the front desk",
			want: "ask the front desk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sink.normalizePhone(tt.raw))
		})
	}
}
