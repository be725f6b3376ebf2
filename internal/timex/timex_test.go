package timex

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleep(t *testing.T) {
	t.Run("zero duration returns immediately", func(t *testing.T) {
		err := Sleep(context.Background(), 0)
		assert.NoError(t, err)
	})

	t.Run("cancelled context interrupts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Sleep(ctx, time.Minute)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("short wait completes", func(t *testing.T) {
		err := Sleep(context.Background(), time.Millisecond)
		assert.NoError(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Run("duration string", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`"1500ms"`), &d))
		assert.Equal(t, 1500*time.Millisecond, d.Duration)
	})

	t.Run("nanosecond number", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
		assert.Equal(t, time.Second, d.Duration)
	})

	t.Run("malformed string", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	})

	t.Run("wrong type", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	})
}
