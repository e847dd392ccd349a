package slots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func user(text string) Turn { return Turn{Role: RoleUser, Text: text} }
func bot(text string) Turn  { return Turn{Role: RoleBot, Text: text} }

func TestExtract_BookingSentence(t *testing.T) {
	s := Extract([]Turn{user("Book a table for 4 tonight in New York")})

	assert.Equal(t, Location{Status: LocationValid, City: ServedCity}, s.Location)
	assert.Equal(t, ServiceReservation, s.ServiceType)
	assert.Equal(t, "tonight", s.Time)
	assert.Equal(t, 4, s.PartySize)
	assert.Empty(t, s.Cuisine)
}

func TestExtract_Location(t *testing.T) {
	tests := []struct {
		text   string
		status LocationStatus
		city   string
	}{
		{"Restaurants in Ahmedabad", LocationInvalid, "ahmedabad"},
		{"anything in MUMBAI?", LocationInvalid, "mumbai"},
		{"somewhere in brooklyn", LocationValid, ServedCity},
		{"NYC please", LocationValid, ServedCity},
		{"any good spots", LocationUnknown, ""},
		{"indian food", LocationUnknown, ""},
		{"new york, not delhi", LocationValid, ServedCity},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := Extract([]Turn{user(tt.text)})
			assert.Equal(t, tt.status, s.Location.Status)
			assert.Equal(t, tt.city, s.Location.City)
		})
	}
}

func TestExtract_Cuisine(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Italian food", "italian"},
		{"I want pizza", "italian"},
		{"sushi tonight", "japanese"},
		{"some tacos", "mexican"},
		{"burgers and fries", "american"},
		{"thai or chinese", "chinese"},
		{"just food", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract([]Turn{user(tt.text)}).Cuisine)
		})
	}
}

func TestExtract_TimeAndParty(t *testing.T) {
	tests := []struct {
		text  string
		time  string
		party int
	}{
		{"dinner for two", "dinner", 2},
		{"a party of 6 tomorrow", "tomorrow", 6},
		{"table for 3 at 7:30 pm", "7:30 PM", 3},
		{"book for 7pm", "7:00 PM", 0},
		{"book for 8 pm", "8:00 PM", 0},
		{"book for 7:30", "", 0},
		{"table for 4 amigos please", "", 4},
		{"8 guests at 8pm", "8:00 PM", 8},
		{"for 500 people", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := Extract([]Turn{user(tt.text)})
			assert.Equal(t, tt.time, s.Time)
			assert.Equal(t, tt.party, s.PartySize)
		})
	}
}

func TestExtract_ServiceType(t *testing.T) {
	assert.Equal(t, ServiceDelivery, Extract([]Turn{user("can I order delivery")}).ServiceType)
	assert.Equal(t, ServiceReservation, Extract([]Turn{user("make a reservation")}).ServiceType)
	assert.Equal(t, ServiceUnknown, Extract([]Turn{user("hello")}).ServiceType)
}

func TestExtract_MostRecentStatementWins(t *testing.T) {
	history := []Turn{
		user("restaurants in Mumbai"),
		bot("Sorry, we don't serve that area. Try New York instead?"),
		user("ok new york then, chinese"),
		bot("Here you go"),
		user("actually italian"),
	}

	s := Extract(history)
	assert.Equal(t, LocationValid, s.Location.Status)
	assert.Equal(t, "italian", s.Cuisine)
}

func TestExtract_IgnoresBotTurns(t *testing.T) {
	s := Extract([]Turn{bot("Try New York instead? We have great Italian food.")})
	assert.Equal(t, LocationUnknown, s.Location.Status)
	assert.Empty(t, s.Cuisine)
}

func TestExtract_WindowDropsOlderTurns(t *testing.T) {
	history := []Turn{
		user("restaurants in delhi"),
		user("a"), user("b"), user("c"), user("d"), user("e"),
	}
	assert.Equal(t, LocationUnknown, Extract(history).Location.Status)
	assert.Equal(t, LocationInvalid, ExtractWindow(history, 6).Location.Status)
}

func TestExtract_Idempotent(t *testing.T) {
	history := []Turn{user("table for 4 in manhattan"), user("mexican")}
	assert.Equal(t, Extract(history), Extract(history))
}

func TestSummary(t *testing.T) {
	s := Extract([]Turn{user("Book a table for 4 tonight in New York")})
	assert.Equal(t,
		"Known: location=new_york, cuisine=unknown, service=reservation, time=tonight, party=4",
		s.Summary())

	empty := Extract(nil)
	assert.Equal(t,
		"Known: location=unknown, cuisine=unknown, service=unknown, time=unknown, party=unknown",
		empty.Summary())
}

func TestContextLine(t *testing.T) {
	history := []Turn{
		user("hi"),
		bot("Hello! " + strings.Repeat("x", 80)),
		user("mumbai restaurants"),
	}

	line := ContextLine(history)
	parts := strings.Split(line, " | ")
	assert.Len(t, parts, 3)
	assert.True(t, strings.HasPrefix(parts[0], "Assistant: Hello! "))
	assert.True(t, strings.HasSuffix(parts[0], "..."))
	assert.Equal(t, "User: mumbai restaurants", parts[1])
	assert.Contains(t, parts[2], "location=invalid(mumbai)")
}
