// Package slots derives what the user has told us so far (location,
// cuisine, service, time, party size) from the recent conversation.
// Extraction is a pure function of the turns passed in.
package slots

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultWindow is how many trailing turns are considered.
const DefaultWindow = 5

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Turn struct {
	Role Role
	Text string
}

type LocationStatus string

const (
	LocationUnknown LocationStatus = "unknown"
	LocationValid   LocationStatus = "valid"
	LocationInvalid LocationStatus = "invalid"
)

type Location struct {
	Status LocationStatus
	// City is "new_york" for served areas, or the name the user gave for
	// an area we do not serve.
	City string
}

type ServiceType string

const (
	ServiceUnknown     ServiceType = "unknown"
	ServiceDelivery    ServiceType = "delivery"
	ServiceReservation ServiceType = "reservation"
)

type Slots struct {
	Location    Location
	Cuisine     string
	ServiceType ServiceType
	Time        string
	PartySize   int
}

const ServedCity = "new_york"

type alias struct {
	pattern *regexp.Regexp
	value   string
}

func wordAliases(pairs ...string) []alias {
	out := make([]alias, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, alias{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(pairs[i]) + `s?\b`),
			value:   pairs[i+1],
		})
	}
	return out
}

var (
	validLocations = wordAliases(
		"new york", ServedCity,
		"nyc", ServedCity,
		"ny", ServedCity,
		"manhattan", ServedCity,
		"brooklyn", ServedCity,
	)
	invalidLocations = wordAliases(
		"ahmedabad", "ahmedabad",
		"mumbai", "mumbai",
		"delhi", "delhi",
		"bangalore", "bangalore",
		"chennai", "chennai",
		"kolkata", "kolkata",
		"hyderabad", "hyderabad",
		"pune", "pune",
		"india", "india",
	)
	// Ordered; the first hit in a turn is the cuisine of that turn.
	cuisines = wordAliases(
		"italian", "italian",
		"chinese", "chinese",
		"mexican", "mexican",
		"indian", "indian",
		"japanese", "japanese",
		"american", "american",
		"thai", "thai",
		"pizza", "italian",
		"pasta", "italian",
		"sushi", "japanese",
		"taco", "mexican",
		"burger", "american",
	)
	timeWords = []string{"tonight", "today", "tomorrow", "lunch", "dinner", "breakfast"}

	clockPattern    = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	guestsPattern   = regexp.MustCompile(`\b(\d+|[a-z]+)\s*(?:people|persons|person|guests|guest|pax)\b`)
	groupPattern    = regexp.MustCompile(`\b(?:party|table|group)\s+(?:of\s+)?(\d+|[a-z]+)\b`)
	forCountPattern = regexp.MustCompile(`\bfor\s+(\d+|[a-z]+)\b(\s*(?:am|pm|o'clock)\b|:\d)?`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

const maxPartySize = 50

// Extract scans the last DefaultWindow turns oldest first. Only user turns
// contribute, and a later mention overwrites an earlier one.
func Extract(recent []Turn) Slots {
	return ExtractWindow(recent, DefaultWindow)
}

func ExtractWindow(recent []Turn, window int) Slots {
	s := Slots{
		Location:    Location{Status: LocationUnknown},
		ServiceType: ServiceUnknown,
	}
	for _, turn := range tail(recent, window) {
		if turn.Role != RoleUser {
			continue
		}
		s.absorb(strings.ToLower(turn.Text))
	}
	return s
}

func tail(turns []Turn, n int) []Turn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

func (s *Slots) absorb(text string) {
	if loc, ok := matchLocation(text); ok {
		s.Location = loc
	}
	for _, c := range cuisines {
		if c.pattern.MatchString(text) {
			s.Cuisine = c.value
			break
		}
	}
	switch {
	case containsAny(text, "delivery", "order"):
		s.ServiceType = ServiceDelivery
	case containsAny(text, "reservation", "book", "table"):
		s.ServiceType = ServiceReservation
	}
	if t := matchTime(text); t != "" {
		s.Time = t
	}
	if n := matchPartySize(text); n > 0 {
		s.PartySize = n
	}
}

// Served areas are checked first so "new york, not delhi" stays valid.
func matchLocation(text string) (Location, bool) {
	for _, a := range validLocations {
		if a.pattern.MatchString(text) {
			return Location{Status: LocationValid, City: a.value}, true
		}
	}
	for _, a := range invalidLocations {
		if a.pattern.MatchString(text) {
			return Location{Status: LocationInvalid, City: a.value}, true
		}
	}
	return Location{}, false
}

func matchTime(text string) string {
	for _, w := range timeWords {
		if strings.Contains(text, w) {
			return w
		}
	}
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 12 {
		return ""
	}
	minute := "00"
	if m[2] != "" {
		minute = m[2]
	}
	return fmt.Sprintf("%d:%s %s", hour, minute, strings.ToUpper(m[3]))
}

func matchPartySize(text string) int {
	if m := guestsPattern.FindStringSubmatch(text); m != nil {
		if n := parseCount(m[1]); n > 0 {
			return n
		}
	}
	if m := groupPattern.FindStringSubmatch(text); m != nil {
		if n := parseCount(m[1]); n > 0 {
			return n
		}
	}
	for _, m := range forCountPattern.FindAllStringSubmatch(text, -1) {
		if m[2] != "" {
			// "for 7pm" is a time, not a headcount
			continue
		}
		if n := parseCount(m[1]); n > 0 {
			return n
		}
	}
	return 0
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = numberWords[raw]
	}
	if n < 1 || n > maxPartySize {
		return 0
	}
	return n
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

// Summary renders the slots on one line for prompts and logs.
func (s Slots) Summary() string {
	location := string(LocationUnknown)
	switch s.Location.Status {
	case LocationValid:
		location = s.Location.City
	case LocationInvalid:
		location = "invalid(" + s.Location.City + ")"
	}
	party := "unknown"
	if s.PartySize > 0 {
		party = strconv.Itoa(s.PartySize)
	}
	return fmt.Sprintf("Known: location=%s, cuisine=%s, service=%s, time=%s, party=%s",
		location, orUnknown(s.Cuisine), orUnknown(string(s.ServiceType)), orUnknown(s.Time), party)
}

const botPreviewLen = 50

// ContextLine renders the last two turns and the slot summary, separated
// by " | ". Bot turns are shortened.
func ContextLine(turns []Turn) string {
	window := tail(turns, DefaultWindow)
	parts := make([]string, 0, 3)
	for _, turn := range tail(window, 2) {
		switch turn.Role {
		case RoleUser:
			parts = append(parts, "User: "+turn.Text)
		case RoleBot:
			parts = append(parts, "Assistant: "+preview(turn.Text, botPreviewLen))
		}
	}
	parts = append(parts, Extract(window).Summary())
	return strings.Join(parts, " | ")
}

func preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "..."
}
