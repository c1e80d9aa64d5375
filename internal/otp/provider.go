package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ghoomlo/cab-booking/config"
)

// ProviderVerifier delegates code generation, expiry and attempt limiting to
// an external verification service addressed by phone number. Nothing is
// stored locally.
type ProviderVerifier struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
	verifySID  string
}

func NewProviderVerifier(cfg config.ProviderConfig) *ProviderVerifier {
	return &ProviderVerifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		verifySID:  cfg.VerifySID,
	}
}

func (v *ProviderVerifier) Send(ctx context.Context, target Target) error {
	if target.PhoneNumber == "" {
		return errors.New("phoneNumber is required")
	}

	form := url.Values{}
	form.Set("To", target.PhoneNumber)
	form.Set("Channel", "sms")

	status, err := v.post(ctx, "/Verifications", form)
	if err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	if status == "" {
		return errors.New("failed to send OTP: empty status from provider")
	}
	return nil
}

func (v *ProviderVerifier) Verify(ctx context.Context, target Target, code string) (bool, error) {
	form := url.Values{}
	form.Set("To", target.PhoneNumber)
	form.Set("Code", code)

	status, err := v.post(ctx, "/VerificationCheck", form)
	if err != nil {
		return false, fmt.Errorf("failed to verify OTP: %w", err)
	}
	return status == "approved", nil
}

func (v *ProviderVerifier) post(ctx context.Context, path string, form url.Values) (string, error) {
	endpoint := fmt.Sprintf("%s/Services/%s%s", v.baseURL, v.verifySID, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(v.accountSID, v.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}
	return parsed.Status, nil
}

var _ Verifier = (*ProviderVerifier)(nil)
