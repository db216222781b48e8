package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCarrierStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   DeliveryStatus
		wantOK bool
	}{
		{"Pickup Scheduled", DeliveryPacked, true},
		{"Shipment in transit", DeliveryShipped, true},
		{"Out for delivery", DeliveryOutForDelivery, true},
		{"Package delivered to customer", DeliveryDelivered, true},
		{"RTO Initiated", DeliveryCancelled, true},
		{"Delivery failed, will retry", DeliveryCancelled, true},
		{"Undelivered - address not found", DeliveryCancelled, true},
		{"Order cancelled by seller", DeliveryCancelled, true},
		{"", "", false},
		{"Random status text", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		got, ok := TranslateCarrierStatus(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.raw)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
	}
}

func TestTranslateCarrierStatusCaseInsensitive(t *testing.T) {
	got, ok := TranslateCarrierStatus("IN TRANSIT")
	assert.True(t, ok)
	assert.Equal(t, DeliveryShipped, got)

	got, ok = TranslateCarrierStatus("pIcKuP done")
	assert.True(t, ok)
	assert.Equal(t, DeliveryPacked, got)
}

// A carrier string carrying several keywords resolves by rule order:
// "in transit" wins over "out for delivery".
func TestTranslateCarrierStatusPrecedence(t *testing.T) {
	got, ok := TranslateCarrierStatus("Shipment in transit, out for delivery soon")
	assert.True(t, ok)
	assert.Equal(t, DeliveryShipped, got)
}
