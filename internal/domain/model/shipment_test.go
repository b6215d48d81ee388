//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxTally(t *testing.T) {
	tally := BoxTally{Pending: 2, InStorage: 3, Released: 1}

	assert.Equal(t, 6, tally.Total())
	assert.Equal(t, 5, tally.Remaining())
	assert.Equal(t, 0, BoxTally{}.Total())
}

func TestDeriveShipmentStatus(t *testing.T) {
	tests := []struct {
		name  string
		tally BoxTally
		want  ShipmentStatus
	}{
		{
			name:  "no boxes at all",
			tally: BoxTally{},
			want:  ShipmentStatusPending,
		},
		{
			name:  "all boxes pending",
			tally: BoxTally{Pending: 4},
			want:  ShipmentStatusPending,
		},
		{
			name:  "some placed, some pending",
			tally: BoxTally{Pending: 1, InStorage: 3},
			want:  ShipmentStatusPending,
		},
		{
			name:  "every box stored",
			tally: BoxTally{InStorage: 4},
			want:  ShipmentStatusInStorage,
		},
		{
			name:  "some released, some stored",
			tally: BoxTally{InStorage: 2, Released: 2},
			want:  ShipmentStatusPartial,
		},
		{
			name:  "released with a box still pending",
			tally: BoxTally{Pending: 1, Released: 3},
			want:  ShipmentStatusPartial,
		},
		{
			name:  "every box released",
			tally: BoxTally{Released: 4},
			want:  ShipmentStatusReleased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveShipmentStatus(tt.tally))
		})
	}
}
