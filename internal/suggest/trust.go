// Package suggest manages metadata suggestions: proposal against the
// learned trust table, the reviewer state machine, and the feedback
// loop that moves trust per (field, pattern) pair.
package suggest

// Reviewer actions, also the terminal suggestion statuses.
const (
	ActionAccepted = "accepted"
	ActionRejected = "rejected"
	ActionModified = "modified"
)

// Trust multiplier bounds and feedback deltas. Rejection is twice the
// size of acceptance so a disputed pattern degrades fast and recovers
// slowly.
const (
	trustMin = 0.5
	trustMax = 1.5

	deltaAccept = 0.05
	deltaModify = 0.02
	deltaReject = -0.10
)

// AdjustTrust moves a multiplier for one feedback action, clamped to
// [0.5, 1.5]. Unknown actions leave the multiplier unchanged.
func AdjustTrust(multiplier float64, action string) float64 {
	switch action {
	case ActionAccepted:
		multiplier += deltaAccept
	case ActionModified:
		multiplier += deltaModify
	case ActionRejected:
		multiplier += deltaReject
	}
	if multiplier < trustMin {
		return trustMin
	}
	if multiplier > trustMax {
		return trustMax
	}
	return multiplier
}

// AdjustedConfidence applies a trust multiplier to a base confidence,
// keeping the result inside [0, 1].
func AdjustedConfidence(base, multiplier float64) float64 {
	c := base * multiplier
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
