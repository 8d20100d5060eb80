package provision

import "time"

// RetryPolicy bounds a retry loop: at most Attempts tries with a fixed
// Delay between them. Create one per operation; the create loop and
// the poll loop take separate instances.
type RetryPolicy struct {
	// Attempts is the retry budget. Minimum: 1.
	//
	// The loops run Attempts-1 tries. See the package documentation
	// for how exhaustion is reported.
	Attempts int

	// Delay is the fixed wait between tries. Minimum: 0.
	Delay time.Duration
}

// DefaultRetryPolicy returns the default bounds for both phases:
// 10 attempts, 10 seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 10,
		Delay:    10 * time.Second,
	}
}

// validate clamps policy values to acceptable bounds.
func (p *RetryPolicy) validate() {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
}
