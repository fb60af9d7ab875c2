package entity

import (
	"time"
)

// IdempotencyRecord stores the response of a processed request so a retry with
// the same key gets the same answer
type IdempotencyRecord struct {
	Key          string    `json:"key"`
	UserID       string    `json:"user_id"`
	Endpoint     string    `json:"endpoint"` // e.g. "POST /api/v1/billing/save"
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `json:"response_body"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired checks if the record has expired
func (i *IdempotencyRecord) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
