package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PayPalClient gera links de pagamento via REST v2 (OAuth + create order).
// Credenciais são por tenant; BaseURL/ReturnURL/etc vêm da config do servidor.
type PayPalClient struct {
	ClientID  string
	Secret    string
	BaseURL   string // ex: https://api-m.sandbox.paypal.com
	ReturnURL string
	CancelURL string

	// ErrorPageURL é a URL sentinela devolvida quando o gateway falha.
	// GeneratePaymentLink nunca retorna erro: o job de cobrança não pode
	// ficar bloqueado esperando o PayPal.
	ErrorPageURL string
}

// GeneratePaymentLink returns a URL the payer can open to complete payment.
// On any downstream failure it degrades to ErrorPageURL.
func (c PayPalClient) GeneratePaymentLink(ctx context.Context, payerName string, amountCents int64) string {
	link, err := c.createOrderLink(ctx, payerName, amountCents)
	if err != nil {
		log.Printf("paypal: link generation failed, using sentinel: %v", err)
		return c.ErrorPageURL
	}
	return link
}

func (c PayPalClient) createOrderLink(ctx context.Context, payerName string, amountCents int64) (string, error) {
	if strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.Secret) == "" {
		return "", fmt.Errorf("paypal credentials not configured")
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	orderPayload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"reference_id": "GYM-" + uuid.NewString(),
			"description":  "Suscripción - " + payerName,
			"amount": map[string]any{
				"currency_code": "USD",
				"value":         fmt.Sprintf("%.2f", float64(amountCents)/100),
			},
		}},
		"payment_source": map[string]any{
			"paypal": map[string]any{
				"experience_context": map[string]any{
					"payment_method_preference": "IMMEDIATE_PAYMENT_REQUIRED",
					"user_action":               "PAY_NOW",
					"return_url":                c.ReturnURL,
					"cancel_url":                c.CancelURL,
				},
			},
		},
	}

	b, _ := json.Marshal(orderPayload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/checkout/orders", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := payPalHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal order error: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var order struct {
		Links []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", err
	}

	for _, l := range order.Links {
		if l.Rel == "payer-action" {
			return l.Href, nil
		}
	}
	return "", fmt.Errorf("paypal order response has no payer-action link")
}

func (c PayPalClient) accessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.Secret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := payPalHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal oauth error: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenData); err != nil {
		return "", err
	}
	if tokenData.AccessToken == "" {
		return "", fmt.Errorf("paypal oauth: empty access_token")
	}
	return tokenData.AccessToken, nil
}

var payPalHTTPClient = &http.Client{Timeout: 30 * time.Second}
