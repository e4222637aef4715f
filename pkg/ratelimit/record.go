package ratelimit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is the stored state of one key.
type Record struct {
	Attempts  int   `json:"attempts"`
	ResetTime int64 `json:"resetTime"` // Unix milliseconds
}

// ResetAt returns ResetTime as a time.Time.
func (r Record) ResetAt() time.Time {
	return time.UnixMilli(r.ResetTime)
}

// Expired reports whether the window ended strictly before now.
func (r Record) Expired(now time.Time) bool {
	return now.UnixMilli() > r.ResetTime
}

func (r Record) encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRecord(value string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	if r.Attempts < 0 {
		return Record{}, fmt.Errorf("%w: negative attempts %d", ErrCorruptRecord, r.Attempts)
	}
	return r, nil
}
