package contact

import (
	"time"
)

// Submission is an accepted, sanitized contact request.
type Submission struct {
	ID         string            `json:"id"`
	Fields     []string          `json:"fields"`
	Data       map[string]string `json:"data"`
	Language   string            `json:"language"`
	ClientIP   string            `json:"client_ip,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	ReceivedAt time.Time         `json:"received_at"`
}

// Get returns the sanitized value of field.
func (s *Submission) Get(field string) string {
	return s.Data[field]
}
