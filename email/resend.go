package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"saaj/models"
)

// Mailer posts to the Resend transactional-email API.
type Mailer struct {
	apiKey     string
	from       string
	adminEmail string
	client     *http.Client
	baseURL    string
}

func NewMailer() *Mailer {
	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = "onboarding@resend.dev"
	}
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		admin = "orders@saajtradingcompany.in"
	}
	return &Mailer{
		apiKey:     os.Getenv("RESEND_API_KEY"),
		from:       from,
		adminEmail: admin,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send posts one email and returns the provider's email id.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) (string, error) {
	if m.apiKey == "" {
		return "", errors.New("RESEND_API_KEY not set")
	}

	body, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("resend: status %d: %s", resp.StatusCode, raw)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// SendContactNotification forwards one contact submission to the admin inbox.
func (m *Mailer) SendContactNotification(ctx context.Context, c *models.Contact) (string, error) {
	html, err := renderContact(c)
	if err != nil {
		return "", err
	}
	subject := "New Contact: Website Inquiry"
	if c.Subject != "" {
		subject = "New Contact: " + c.Subject
	}
	return m.Send(ctx, m.adminEmail, subject, html)
}

// SendOrderEmails sends the customer confirmation and the admin notification.
func (m *Mailer) SendOrderEmails(ctx context.Context, order *models.Order) error {
	_, _, err := m.SendOrderEmailPair(ctx, order)
	return err
}

// SendOrderEmailPair is SendOrderEmails with the provider ids exposed for the
// HTTP endpoint's response body.
func (m *Mailer) SendOrderEmailPair(ctx context.Context, order *models.Order) (customerID, adminID string, err error) {
	customerHTML, err := renderOrderConfirmation(order)
	if err != nil {
		return "", "", err
	}
	customerID, err = m.Send(ctx, order.Customer.Email,
		"Order Confirmation "+order.OrderID+" - Saaj Trading", customerHTML)
	if err != nil {
		return "", "", err
	}

	adminHTML, err := renderOrderNotification(order)
	if err != nil {
		return customerID, "", err
	}
	adminID, err = m.Send(ctx, m.adminEmail,
		"New Order "+order.OrderID, adminHTML)
	return customerID, adminID, err
}
