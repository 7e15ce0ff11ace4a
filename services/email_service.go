package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// EmailConfig holds the transactional email provider configuration.
type EmailConfig struct {
	APIKey    string
	APIURL    string
	FromName  string
	FromEmail string
	// OperatorEmail receives the OTP codes for sensitive admin actions.
	OperatorEmail string
}

// EmailService talks to the transactional email provider over HTTP.
type EmailService struct {
	config     *EmailConfig
	httpClient *http.Client
}

var (
	emailService *EmailService
	emailOnce    sync.Once
)

// GetEmailService returns the singleton EmailService configured from the
// environment.
func GetEmailService() *EmailService {
	emailOnce.Do(func() {
		apiKey := os.Getenv("EMAIL_API_KEY")
		apiURL := os.Getenv("EMAIL_API_URL")
		fromName := os.Getenv("EMAIL_FROM_NAME")
		fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
		operatorEmail := os.Getenv("EMAIL_OPERATOR_ADDRESS")

		if apiURL == "" {
			apiURL = "https://api.resend.com/emails"
		}
		if fromName == "" {
			fromName = "Arvotech"
		}
		if fromEmail == "" {
			fromEmail = "no-reply@arvotech.example"
		}
		if operatorEmail == "" {
			operatorEmail = "operations@arvotech.example"
		}

		emailService = &EmailService{
			config: &EmailConfig{
				APIKey:        apiKey,
				APIURL:        apiURL,
				FromName:      fromName,
				FromEmail:     fromEmail,
				OperatorEmail: operatorEmail,
			},
			httpClient: &http.Client{
				Timeout: 30 * time.Second,
			},
		}
	})
	return emailService
}

// SetTransportForTest swaps the HTTP client and endpoint. Test helper.
func (es *EmailService) SetTransportForTest(apiURL string, client *http.Client) {
	es.config.APIURL = apiURL
	es.httpClient = client
}

// OperatorEmail returns the fixed address that receives OTP codes.
func (es *EmailService) OperatorEmail() string {
	return es.config.OperatorEmail
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// Send delivers one email through the provider and returns the provider
// message id.
func (es *EmailService) Send(to, subject, html string) (string, error) {
	payload := sendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail),
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, es.config.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+es.config.APIKey)

	resp, err := es.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed sendEmailResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}

	return parsed.ID, nil
}
