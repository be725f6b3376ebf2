// Package timex contains small time helpers shared by services and config:
// a context-aware sleep used to emulate request latency, and a Duration
// wrapper that unmarshals from JSON strings like "1s" or integer nanoseconds.
package timex

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Sleep waits for d or until ctx is done, whichever comes first.
// A zero or negative d returns immediately. Returns ctx.Err() when the
// context ends the wait early.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Duration wraps time.Duration for JSON config files, accepting either
// a duration string ("1500ms") or a number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}
