package apiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, time.Second, p.Delay)
	assert.Equal(t, 10*time.Second, p.Timeout)
	assert.Equal(t, 2*time.Second, p.DelayAfter(2))
}

func TestPolicy_Backoff(t *testing.T) {
	tests := []struct {
		name        string
		maxAttempts int
		want        []time.Duration
	}{
		{name: "three attempts", maxAttempts: 3, want: []time.Duration{time.Second, 2 * time.Second}},
		{name: "five attempts", maxAttempts: 5, want: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second}},
		{name: "single attempt", maxAttempts: 1, want: nil},
		{name: "zero treated as one", maxAttempts: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Policy{MaxAttempts: tt.maxAttempts, Delay: time.Second}
			b := p.backoff()

			var got []time.Duration
			for {
				d, stop := b.Next()
				if stop {
					break
				}
				got = append(got, d)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCallTimeout(t *testing.T) {
	assert.Zero(t, CallTimeout())
	assert.Equal(t, 15*time.Second, CallTimeout(WithCallTimeout(15*time.Second)))
	assert.Equal(t, 20*time.Second, CallTimeout(WithCallTimeout(15*time.Second), WithCallTimeout(20*time.Second)))
}
