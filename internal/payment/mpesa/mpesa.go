// Package mpesa holds the Safaricom Daraja client. Until real credentials
// are provisioned the STK push is simulated end to end, which is enough for
// the checkout flow to be exercised against the rest of the system.
package mpesa

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const StatusInitiated = "initiated"

type STKPushRequest struct {
	PhoneNumber string
	Amount      float64
	AccountName string
	BookingID   string
}

type STKPushResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type Client struct {
	consumerKey    string
	consumerSecret string
	simulatedDelay time.Duration
	logger         *slog.Logger
}

func NewClient(consumerKey, consumerSecret string, simulatedDelay time.Duration, logger *slog.Logger) *Client {
	return &Client{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		simulatedDelay: simulatedDelay,
		logger:         logger,
	}
}

// InitiateSTKPush asks the customer's phone to confirm the payment. Without
// Daraja credentials the push is simulated after a short delay so the caller
// still sees the asynchronous shape of the real flow.
func (c *Client) InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResponse, error) {
	c.logger.Info("initiating mpesa stk push",
		slog.String("booking_id", req.BookingID),
		slog.Float64("amount", req.Amount))

	if c.consumerKey != "" && c.consumerSecret != "" {
		c.logger.Warn("daraja credentials configured but live integration is not enabled, simulating")
	}

	select {
	case <-time.After(c.simulatedDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &STKPushResponse{
		TransactionID: fmt.Sprintf("MPESA-%d", time.Now().UnixMilli()),
		Status:        StatusInitiated,
		Message:       "STK Push initiated (simulated). User should receive a prompt.",
	}, nil
}
