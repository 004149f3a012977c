// Package contact submits the contact form to a form relay endpoint.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRejected is returned when the endpoint answers with a non-200 status.
var ErrRejected = errors.New("contact form rejected")

// Message is one contact form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Validate checks the fields the form marks as required.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Email) == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(m.Email, "@") {
		return fmt.Errorf("invalid email %q", m.Email)
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// Client posts messages to Endpoint.
type Client struct {
	Endpoint  string
	AccessKey string
	HTTP      *http.Client
}

// NewClient returns a client with a bounded request timeout.
func NewClient(endpoint, accessKey string) *Client {
	return &Client{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the client has the credentials to submit.
func (c *Client) Enabled() bool {
	return c != nil && c.Endpoint != "" && c.AccessKey != ""
}

// Submit posts m once. There are no retries.
func (c *Client) Submit(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	form := url.Values{}
	form.Set("access_key", c.AccessKey)
	form.Set("name", m.Name)
	form.Set("email", m.Email)
	form.Set("message", m.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("send contact form: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
