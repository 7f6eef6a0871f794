package interval

// Feedback plays audible and haptic cues. Calls must return promptly; the engine
// ignores returned errors.
//
//go:generate mockgen -source=feedback.go -destination=mock_feedback_test.go -package=interval
type Feedback interface {
	PlayCue(big bool) error
	PlayHapticPulse() error
}

// NopFeedback discards every cue.
type NopFeedback struct{}

func (NopFeedback) PlayCue(bool) error     { return nil }
func (NopFeedback) PlayHapticPulse() error { return nil }
