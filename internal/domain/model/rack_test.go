//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRack_Available(t *testing.T) {
	tests := []struct {
		name string
		rack Rack
		want int
	}{
		{
			name: "empty rack",
			rack: Rack{CapacityTotal: 40},
			want: 40,
		},
		{
			name: "partially used",
			rack: Rack{CapacityTotal: 40, CapacityUsed: 12},
			want: 28,
		},
		{
			name: "full rack",
			rack: Rack{CapacityTotal: 40, CapacityUsed: 40},
			want: 0,
		},
		{
			name: "used beyond total clamps to zero",
			rack: Rack{CapacityTotal: 40, CapacityUsed: 41},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rack.Available())
		})
	}
}
