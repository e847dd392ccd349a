package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"booking keyword", "I want to book a table", Booking},
		{"booking beats menu", "book a table for pizza", Booking},
		{"booking beats search", "find a restaurant and reserve", Booking},
		{"search", "Restaurants in Ahmedabad", Search},
		{"search near", "anything near me?", Search},
		{"menu food", "Italian food", Menu},
		{"menu recommend", "what do you recommend", Menu},
		{"case folded", "SHOW ME THE MENU", Menu},
		{"substring match", "any bookings left", Booking},
		{"general", "hello there", General},
		{"empty", "", General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestRequiresCatalog(t *testing.T) {
	assert.True(t, RequiresCatalog(Booking))
	assert.True(t, RequiresCatalog(Search))
	assert.True(t, RequiresCatalog(Menu))
	assert.False(t, RequiresCatalog(General))
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		message string
		want    Action
		ok      bool
	}{
		{"book_12", Action{ActionBook, 12}, true},
		{" menu_3 ", Action{ActionMenu, 3}, true},
		{"directions_7", Action{ActionDirections, 7}, true},
		{"book_", Action{}, false},
		{"book_abc", Action{}, false},
		{"book_0", Action{}, false},
		{"order_5", Action{}, false},
		{"book a table", Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := ParseAction(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
