package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// chat_smoke drives a running server through signup, login and a short
// scripted conversation, printing each bot reply.
var script = []string{
	"hello",
	"Book a table for 4 tonight in New York",
	"Italian food",
	"Restaurants in Ahmedabad",
	"help",
}

type botReply struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	Cards       []struct {
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
	} `json:"cards"`
	QuickReplies []struct {
		Text string `json:"text"`
	} `json:"quick_replies"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	email := fmt.Sprintf("smoke-%s@example.com", uuid.NewString()[:8])
	password := "smoke-pass-1"

	color.Cyan("Signing up %s\n", email)
	resp, err := client.R().SetBody(map[string]string{
		"name":             "Smoke Tester",
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}).Post("/api/auth/signup")
	mustOK(resp, err)

	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	resp, err = client.R().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&login).
		Post("/api/auth/login")
	mustOK(resp, err)
	client.SetAuthToken(login.Data.AccessToken)

	for _, message := range script {
		color.Yellow("\n> %s", message)

		var out struct {
			BotResponse botReply `json:"bot_response"`
		}
		resp, err := client.R().
			SetBody(map[string]string{"message": message}).
			SetResult(&out).
			Post("/api/send_message")
		mustOK(resp, err)
		printReply(out.BotResponse)
	}

	resp, err = client.R().Get("/api/chat-history")
	mustOK(resp, err)
	var history map[string]interface{}
	_ = json.Unmarshal(resp.Body(), &history)
	sessions, _ := history["chat_sessions"].([]interface{})
	color.Green("\nDone. %d chat session(s) on record.", len(sessions))
}

func printReply(r botReply) {
	color.Green("[%s] %s", r.MessageType, r.Content)
	for _, c := range r.Cards {
		fmt.Printf("  - %s (%.1f)\n", c.Name, c.Rating)
	}
	for _, q := range r.QuickReplies {
		fmt.Printf("  [%s]", q.Text)
	}
	if len(r.QuickReplies) > 0 {
		fmt.Println()
	}
}

func mustOK(resp *resty.Response, err error) {
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	if resp.IsError() {
		color.Red("Status %s: %s", resp.Status(), resp.String())
		os.Exit(1)
	}
}
