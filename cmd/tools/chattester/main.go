// Command chattester drives a running API server from the terminal: it
// creates a session, optionally preloads the reference snapshot, and sends
// one message or an interactive loop of messages.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruwais/masraf/internal/client"
	chatModel "github.com/ruwais/masraf/internal/model/chat"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	baseURL := flag.String("url", "http://localhost:8080", "API server base URL")
	locale := flag.String("locale", "en", "session locale: en or ar")
	message := flag.String("message", "", "single message to send; empty starts an interactive loop")
	snapshot := flag.Bool("snapshot", false, "fetch the initial reference snapshot before chatting")
	timeout := flag.Duration("timeout", 30*time.Second, "per-request timeout")

	flag.Parse()

	httpClient := &http.Client{Timeout: *timeout}

	session, err := createSession(httpClient, *baseURL, *locale)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	log.Printf("session %s (locale=%s)", session.ID, session.Locale)

	if *snapshot {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		data := client.New(*baseURL).FetchInitialData(ctx, session.ID)
		cancel()
		log.Printf("snapshot: %d accounts, %d beneficiaries, %d cards, %d bills, %d subscriptions",
			len(data.Accounts), len(data.Beneficiaries), len(data.Cards), len(data.Bills), len(data.Subscriptions))
	}

	if *message != "" {
		if err := sendAndPrint(httpClient, *baseURL, session.ID, *message, *locale); err != nil {
			log.Fatalf("send: %v", err)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("type a message, or \"quit\" to exit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := sendAndPrint(httpClient, *baseURL, session.ID, line, *locale); err != nil {
			log.Printf("send: %v", err)
		}
	}
}

func createSession(httpClient *http.Client, baseURL, locale string) (chatModel.Session, error) {
	payload, _ := json.Marshal(map[string]string{"locale": locale})

	resp, err := httpClient.Post(baseURL+"/api/chat/session", "application/json", bytes.NewReader(payload))
	if err != nil {
		return chatModel.Session{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return chatModel.Session{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return chatModel.Session{}, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var session chatModel.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return chatModel.Session{}, err
	}
	return session, nil
}

func sendAndPrint(httpClient *http.Client, baseURL, sessionID, message, locale string) error {
	payload, _ := json.Marshal(map[string]string{
		"sessionId": sessionID,
		"message":   message,
		"locale":    locale,
	})

	resp, err := httpClient.Post(baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var structured chatModel.StructuredResponse
	if err := json.Unmarshal(body, &structured); err != nil {
		return err
	}

	fmt.Println(structured.Message)
	printDirectives(structured)
	return nil
}

func printDirectives(structured chatModel.StructuredResponse) {
	var active []string
	if structured.UI.ShowAccounts {
		active = append(active, fmt.Sprintf("accounts(%d)", len(structured.Accounts)))
	}
	if structured.UI.ShowBeneficiaries {
		active = append(active, fmt.Sprintf("beneficiaries(%d)", len(structured.Beneficiaries)))
	}
	if structured.UI.ShowCards {
		active = append(active, fmt.Sprintf("cards(%d)", len(structured.Cards)))
	}
	if structured.UI.ShowBills {
		active = append(active, fmt.Sprintf("bills(%d)", len(structured.Bills)))
	}
	if structured.UI.ShowSpendingBreakdown {
		active = append(active, fmt.Sprintf("spending(%d)", len(structured.SpendingBreakdown)))
	}
	if structured.UI.ShowSubscriptions {
		active = append(active, fmt.Sprintf("subscriptions(%d)", len(structured.Subscriptions)))
	}
	if structured.UI.ShowRecommendations {
		active = append(active, fmt.Sprintf("recommendations(%d)", len(structured.Recommendations)))
	}
	if structured.UI.ExchangeRate != nil {
		active = append(active, fmt.Sprintf("rate %s->%s %.4f",
			structured.UI.ExchangeRate.From, structured.UI.ExchangeRate.To, structured.UI.ExchangeRate.Rate))
	}
	if len(active) > 0 {
		fmt.Printf("[ui] %s\n", strings.Join(active, ", "))
	}
}
