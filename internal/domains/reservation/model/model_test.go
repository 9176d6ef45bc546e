package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
)

func TestTimeSlots(t *testing.T) {
	assert.Len(t, model.TimeSlots, 27)
	assert.Equal(t, "09:00 AM", model.TimeSlots[0])
	assert.Equal(t, "10:00 PM", model.TimeSlots[len(model.TimeSlots)-1])
}

func TestIsValidTimeSlot(t *testing.T) {
	tests := []struct {
		name string
		slot string
		want bool
	}{
		{
			name: "evening slot",
			slot: "07:00 PM",
			want: true,
		},
		{
			name: "lunch half-hour slot",
			slot: "12:30 PM",
			want: true,
		},
		{
			name: "off-grid minute",
			slot: "03:17 AM",
			want: false,
		},
		{
			name: "past closing",
			slot: "10:30 PM",
			want: false,
		},
		{
			name: "empty",
			slot: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsValidTimeSlot(tt.slot))
		})
	}
}
