// Package client is a small Go consumer of the reference-data API, used by
// tooling and by services that need the data over the wire rather than
// in-process.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ruwais/masraf/internal/model/bank"
)

// Client calls the reference-data endpoints of a running API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// InitialData is the reference snapshot a chat client loads on startup.
type InitialData struct {
	Accounts          []bank.Account       `json:"accounts"`
	Beneficiaries     []bank.Beneficiary   `json:"beneficiaries"`
	Cards             []bank.Card          `json:"cards"`
	Bills             []bank.Bill          `json:"bills"`
	SpendingBreakdown []bank.SpendingSlice `json:"spendingBreakdown"`
	Subscriptions     []bank.Subscription  `json:"subscriptions"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}

func (c *Client) Accounts(ctx context.Context) ([]bank.Account, error) {
	var body struct {
		Accounts []bank.Account `json:"accounts"`
	}
	if err := c.get(ctx, "/api/accounts", nil, &body); err != nil {
		return nil, err
	}
	return body.Accounts, nil
}

func (c *Client) Beneficiaries(ctx context.Context, beneficiaryType string) ([]bank.Beneficiary, error) {
	query := url.Values{}
	if beneficiaryType != "" {
		query.Set("type", beneficiaryType)
	}
	var body struct {
		Beneficiaries []bank.Beneficiary `json:"beneficiaries"`
	}
	if err := c.get(ctx, "/api/beneficiaries", query, &body); err != nil {
		return nil, err
	}
	return body.Beneficiaries, nil
}

func (c *Client) Cards(ctx context.Context) ([]bank.Card, error) {
	var body struct {
		Cards []bank.Card `json:"cards"`
	}
	if err := c.get(ctx, "/api/cards", nil, &body); err != nil {
		return nil, err
	}
	return body.Cards, nil
}

func (c *Client) Bills(ctx context.Context, status string) ([]bank.Bill, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var body struct {
		Bills []bank.Bill `json:"bills"`
	}
	if err := c.get(ctx, "/api/bills", query, &body); err != nil {
		return nil, err
	}
	return body.Bills, nil
}

func (c *Client) SpendingBreakdown(ctx context.Context, sessionID string) ([]bank.SpendingSlice, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("sessionId", sessionID)
	}
	var body struct {
		Breakdown []bank.SpendingSlice `json:"breakdown"`
	}
	if err := c.get(ctx, "/api/spending/breakdown", query, &body); err != nil {
		return nil, err
	}
	return body.Breakdown, nil
}

func (c *Client) Subscriptions(ctx context.Context) ([]bank.Subscription, error) {
	var body struct {
		Subscriptions []bank.Subscription `json:"subscriptions"`
	}
	if err := c.get(ctx, "/api/subscriptions", nil, &body); err != nil {
		return nil, err
	}
	return body.Subscriptions, nil
}

// FetchInitialData loads the reference lists concurrently. A failed fetch
// leaves its slice empty so one slow or broken endpoint cannot block the
// rest of the snapshot.
func (c *Client) FetchInitialData(ctx context.Context, sessionID string) InitialData {
	var (
		data InitialData
		wg   sync.WaitGroup
	)

	fetch := func(load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = load()
		}()
	}

	fetch(func() error {
		accounts, err := c.Accounts(ctx)
		if err == nil {
			data.Accounts = accounts
		}
		return err
	})
	fetch(func() error {
		beneficiaries, err := c.Beneficiaries(ctx, "")
		if err == nil {
			data.Beneficiaries = beneficiaries
		}
		return err
	})
	fetch(func() error {
		cards, err := c.Cards(ctx)
		if err == nil {
			data.Cards = cards
		}
		return err
	})
	fetch(func() error {
		bills, err := c.Bills(ctx, "")
		if err == nil {
			data.Bills = bills
		}
		return err
	})
	fetch(func() error {
		breakdown, err := c.SpendingBreakdown(ctx, sessionID)
		if err == nil {
			data.SpendingBreakdown = breakdown
		}
		return err
	})
	fetch(func() error {
		subscriptions, err := c.Subscriptions(ctx)
		if err == nil {
			data.Subscriptions = subscriptions
		}
		return err
	})

	wg.Wait()
	return data
}
