package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustTrust(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		action string
		want   float64
	}{
		{"accept raises", 1.0, ActionAccepted, 1.05},
		{"modify raises slightly", 1.0, ActionModified, 1.02},
		{"reject lowers hard", 1.0, ActionRejected, 0.90},
		{"clamped at upper bound", 1.48, ActionAccepted, 1.50},
		{"clamped at lower bound", 0.55, ActionRejected, 0.50},
		{"unknown action is a no-op", 1.0, "escalated", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AdjustTrust(tt.start, tt.action), 1e-9)
		})
	}
}

// Accepting a pattern must never lower the confidence of future
// identical candidates.
func TestAdjustTrust_AcceptanceIsMonotone(t *testing.T) {
	mult := 1.0
	for i := 0; i < 20; i++ {
		next := AdjustTrust(mult, ActionAccepted)
		assert.GreaterOrEqual(t, next, mult)
		mult = next
	}
	assert.Equal(t, 1.5, mult)
}

func TestAdjustedConfidence(t *testing.T) {
	tests := []struct {
		name       string
		base, mult float64
		want       float64
	}{
		{"neutral trust keeps base", 0.8, 1.0, 0.8},
		{"raised trust crosses apply threshold", 0.8, 1.2, 0.96},
		{"lowered trust keeps candidate queued", 0.95, 0.5, 0.475},
		{"never above one", 0.9, 1.5, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AdjustedConfidence(tt.base, tt.mult), 1e-9)
		})
	}
}

func TestWrapUnwrapValue(t *testing.T) {
	for _, v := range []interface{}{true, "public", 20, []string{"a", "b"}} {
		assert.Equal(t, v, unwrapValue(wrapValue(v)))
	}
}
