package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// WhatsAppAPIError carries the status/body of a failed Graph API call.
type WhatsAppAPIError struct {
	StatusCode int
	Body       string
}

func (e WhatsAppAPIError) Error() string {
	return fmt.Sprintf("whatsapp api error: status=%d body=%s", e.StatusCode, e.Body)
}

// WhatsAppClient is a thin client for WhatsApp Cloud API message sends.
type WhatsAppClient struct {
	AccessToken   string
	ApiVersion    string // e.g. v24.0
	PhoneNumberID string
	BaseURL       string // override para testes; default graph.facebook.com
}

// WhatsAppClientFromEnv builds the platform-level sender from env vars
// (WHATSAPP_ACCESS_TOKEN, WHATSAPP_PHONE_NUMBER_ID).
func WhatsAppClientFromEnv() WhatsAppClient {
	return WhatsAppClient{
		AccessToken:   strings.TrimSpace(os.Getenv("WHATSAPP_ACCESS_TOKEN")),
		ApiVersion:    strings.TrimSpace(os.Getenv("WHATSAPP_API_VERSION")),
		PhoneNumberID: strings.TrimSpace(os.Getenv("WHATSAPP_PHONE_NUMBER_ID")),
	}
}

func (c WhatsAppClient) post(ctx context.Context, path string, body any) error {
	apiVersion := strings.TrimSpace(c.ApiVersion)
	if apiVersion == "" {
		apiVersion = "v24.0"
	}
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = "https://graph.facebook.com"
	}
	url := fmt.Sprintf("%s/%s/%s/%s", base, apiVersion, strings.TrimSpace(c.PhoneNumberID), path)

	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.AccessToken))
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return WhatsAppAPIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

// SendText sends a plain text message.
func (c WhatsAppClient) SendText(ctx context.Context, to string, text string) error {
	if c.AccessToken == "" || c.PhoneNumberID == "" {
		return fmt.Errorf("whatsapp credentials not configured")
	}
	return c.post(ctx, "messages", map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"body": text,
		},
	})
}

// SendTemplate sends a pre-approved template message with positional
// header/body parameters, e.g. membership_reminder / membership_receipt.
func (c WhatsAppClient) SendTemplate(ctx context.Context, to string, name string, language string, headerParams []string, bodyParams []string) error {
	if c.AccessToken == "" || c.PhoneNumberID == "" {
		return fmt.Errorf("whatsapp credentials not configured")
	}
	if strings.TrimSpace(language) == "" {
		language = "es"
	}

	components := []map[string]any{}
	if len(headerParams) > 0 {
		components = append(components, map[string]any{
			"type":       "header",
			"parameters": textParameters(headerParams),
		})
	}
	if len(bodyParams) > 0 {
		components = append(components, map[string]any{
			"type":       "body",
			"parameters": textParameters(bodyParams),
		})
	}

	return c.post(ctx, "messages", map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template": map[string]any{
			"name":       name,
			"language":   map[string]any{"code": language},
			"components": components,
		},
	})
}

func textParameters(values []string) []map[string]any {
	out := make([]map[string]any, 0, len(values))
	for _, v := range values {
		out = append(out, map[string]any{"type": "text", "text": v})
	}
	return out
}
