package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate-office-saas/internal/config"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (GatewayClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw := NewGatewayClient(&config.Gateway{
		BaseApiURL: srv.URL,
		MerchantID: "test-merchant",
	})
	return gw, srv
}

func TestRequestPayment(t *testing.T) {
	gw, srv := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pg/v4/payment/request.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["merchant_id"] != "test-merchant" {
			t.Fatalf("merchant id not forwarded: %v", payload["merchant_id"])
		}
		if payload["amount"].(float64) != 5341000 {
			t.Fatalf("amount not forwarded: %v", payload["amount"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"code": 100, "authority": "A0000123"},
		})
	})

	result, err := gw.RequestPayment(context.Background(), 5_341_000, "subscription SMALL", "https://api.example/api/billing/callback")
	if err != nil {
		t.Fatalf("request payment: %v", err)
	}
	if result.Authority != "A0000123" {
		t.Fatalf("unexpected authority %s", result.Authority)
	}
	if result.PayURL != srv.URL+"/pg/StartPay/A0000123" {
		t.Fatalf("unexpected pay url %s", result.PayURL)
	}
}

func TestRequestPaymentRefused(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"code": -9},
		})
	})

	if _, err := gw.RequestPayment(context.Background(), 1000, "x", "https://cb"); err == nil {
		t.Fatalf("expected error on refused request")
	}
}

func TestVerifyPayment(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pg/v4/payment/verify.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"code": 100, "ref_id": 201234567890},
		})
	})

	result, err := gw.VerifyPayment(context.Background(), 5_341_000, "A0000123")
	if err != nil {
		t.Fatalf("verify payment: %v", err)
	}
	if result.RefID != "201234567890" {
		t.Fatalf("unexpected ref id %s", result.RefID)
	}
}

func TestVerifyPaymentDeclined(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"code": -51},
		})
	})

	_, err := gw.VerifyPayment(context.Background(), 5_341_000, "A0000123")
	if !errors.Is(err, ErrPaymentNotVerified) {
		t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
	}
}
