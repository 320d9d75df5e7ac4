package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newPayPalTestClient(baseURL string) PayPalClient {
	return PayPalClient{
		ClientID:     "client-id",
		Secret:       "client-secret",
		BaseURL:      baseURL,
		ReturnURL:    "https://app.test/ok",
		CancelURL:    "https://app.test/cancel",
		ErrorPageURL: "https://app.test/error",
	}
}

func TestGeneratePaymentLinkReturnsPayerActionURL(t *testing.T) {
	var sawAuth, sawOrder bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			sawAuth = true
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Basic ") {
				t.Errorf("expected basic auth on token request")
			}
			json.NewEncoder(w).Encode(map[string]any{"access_token": "token-123"})
		case "/v2/checkout/orders":
			sawOrder = true
			if r.Header.Get("Authorization") != "Bearer token-123" {
				t.Errorf("expected bearer token on order request, got %q", r.Header.Get("Authorization"))
			}
			var payload struct {
				Intent        string `json:"intent"`
				PurchaseUnits []struct {
					Amount struct {
						Value string `json:"value"`
					} `json:"amount"`
				} `json:"purchase_units"`
			}
			json.NewDecoder(r.Body).Decode(&payload)
			if payload.Intent != "CAPTURE" {
				t.Errorf("expected CAPTURE intent, got %q", payload.Intent)
			}
			if len(payload.PurchaseUnits) != 1 || payload.PurchaseUnits[0].Amount.Value != "29.00" {
				t.Errorf("unexpected amount: %+v", payload.PurchaseUnits)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"links": []map[string]any{
					{"rel": "self", "href": "https://paypal.test/self"},
					{"rel": "payer-action", "href": "https://paypal.test/checkoutnow?token=XYZ"},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newPayPalTestClient(srv.URL)
	link := client.GeneratePaymentLink(context.Background(), "Carlos Vera", 2900)

	if link != "https://paypal.test/checkoutnow?token=XYZ" {
		t.Fatalf("unexpected link: %s", link)
	}
	if !sawAuth || !sawOrder {
		t.Fatalf("expected oauth+order calls, got auth=%v order=%v", sawAuth, sawOrder)
	}
}

func TestGeneratePaymentLinkDegradesToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newPayPalTestClient(srv.URL)
	link := client.GeneratePaymentLink(context.Background(), "Carlos Vera", 2900)

	if link != "https://app.test/error" {
		t.Fatalf("expected sentinel url, got %s", link)
	}
}

func TestGeneratePaymentLinkWithoutCredentials(t *testing.T) {
	client := newPayPalTestClient("https://unused.test")
	client.ClientID = ""

	link := client.GeneratePaymentLink(context.Background(), "Carlos Vera", 2900)
	if link != "https://app.test/error" {
		t.Fatalf("expected sentinel url without credentials, got %s", link)
	}
}
