package entities

// SubmissionState tracks a registration submission:
// Idle -> Submitting -> (Success | Failed) -> Idle on acknowledgment.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionSubmitting
	SubmissionSuccess
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSuccess:
		return "success"
	case SubmissionFailed:
		return "failed"
	default:
		return "idle"
	}
}
