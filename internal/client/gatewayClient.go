package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"estate-office-saas/internal/config"
)

// ErrPaymentNotVerified means the gateway answered but refused to confirm the
// payment (declined, expired or unknown authority on the gateway side).
var ErrPaymentNotVerified = errors.New("payment not verified by gateway")

type GatewayClient interface {
	RequestPayment(ctx context.Context, amount int64, description, callbackURL string) (*PaymentRequestResult, error)
	VerifyPayment(ctx context.Context, amount int64, authority string) (*VerifyResult, error)
}

type PaymentRequestResult struct {
	Authority string
	PayURL    string
}

type VerifyResult struct {
	RefID string
}

type gatewayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	merchantID string
}

func NewGatewayClient(gatewayCfg *config.Gateway) GatewayClient {
	return &gatewayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: gatewayCfg.BaseApiURL,
		merchantID: gatewayCfg.MerchantID,
	}
}

type gatewayRequestPayload struct {
	MerchantID  string `json:"merchant_id"`
	Amount      int64  `json:"amount"`
	CallbackURL string `json:"callback_url"`
	Description string `json:"description"`
}

type gatewayRequestResult struct {
	Data struct {
		Code      int    `json:"code"`
		Authority string `json:"authority"`
	} `json:"data"`
}

type gatewayVerifyPayload struct {
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Authority  string `json:"authority"`
}

type gatewayVerifyResult struct {
	Data struct {
		Code  int   `json:"code"`
		RefID int64 `json:"ref_id"`
	} `json:"data"`
}

// code 100 is the gateway's single success token for both endpoints.
const gatewayCodeOK = 100

func (c *gatewayClientImpl) RequestPayment(ctx context.Context, amount int64, description, callbackURL string) (*PaymentRequestResult, error) {
	payload := gatewayRequestPayload{
		MerchantID:  c.merchantID,
		Amount:      amount,
		CallbackURL: callbackURL,
		Description: description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/pg/v4/payment/request.json",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(b))
	}

	var result gatewayRequestResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	if result.Data.Code != gatewayCodeOK || result.Data.Authority == "" {
		return nil, fmt.Errorf("gateway refused payment request: code=%d", result.Data.Code)
	}

	return &PaymentRequestResult{
		Authority: result.Data.Authority,
		PayURL:    fmt.Sprintf("%s/pg/StartPay/%s", c.baseApiURL, result.Data.Authority),
	}, nil
}

func (c *gatewayClientImpl) VerifyPayment(ctx context.Context, amount int64, authority string) (*VerifyResult, error) {
	payload := gatewayVerifyPayload{
		MerchantID: c.merchantID,
		Amount:     amount,
		Authority:  authority,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal verify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/pg/v4/payment/verify.json",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway verify call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(b))
	}

	var result gatewayVerifyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	if result.Data.Code != gatewayCodeOK {
		return nil, fmt.Errorf("code=%d: %w", result.Data.Code, ErrPaymentNotVerified)
	}

	return &VerifyResult{
		RefID: fmt.Sprintf("%d", result.Data.RefID),
	}, nil
}
