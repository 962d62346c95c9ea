package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ridebook/config"

	"github.com/rs/zerolog/log"
)

const (
	brevoEndpoint  = "https://api.brevo.com/v3/smtp/email"
	requestTimeout = 10 * time.Second
)

type Message struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type brevoMailer struct {
	apiKey      string
	senderEmail string
	senderName  string
	httpClient  *http.Client
}

func New(cfg *config.Config) Mailer {
	if cfg.Mail.APIKey == "" {
		log.Warn().Msg("Mail API key not configured, outgoing email is disabled")
	}

	return &brevoMailer{
		apiKey:      cfg.Mail.APIKey,
		senderEmail: cfg.Mail.SenderEmail,
		senderName:  cfg.Mail.SenderName,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func (m *brevoMailer) Send(ctx context.Context, msg Message) error {
	if m.apiKey == "" {
		log.Warn().Str("to", msg.ToEmail).Msg("mail disabled, skipping send")

		return nil
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": m.senderName, "email": m.senderEmail},
		To:          []map[string]string{{"email": msg.ToEmail, "name": msg.ToName}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().
			Int("status", resp.StatusCode).
			Str("to", msg.ToEmail).
			Str("body", string(respBody)).
			Msg("mail provider rejected message")

		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}

	log.Info().Str("to", msg.ToEmail).Str("subject", msg.Subject).Msg("mail sent")

	return nil
}
