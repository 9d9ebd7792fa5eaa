package network

import "errors"

// Sentinels naming the soft, expected-at-runtime Network outcomes. No Network
// method returns them: Grow and Connect report these conditions through
// their bool results. Self-loops and out-of-range agent ids are contract
// violations and panic.
var (
	// ErrAlreadyConnected is never returned directly; Connect reports the
	// condition via its bool result, matching the original's "duplicate
	// edge is not an error" semantics. Kept as a sentinel for callers that
	// want to log a reason.
	ErrAlreadyConnected = errors.New("network: edge already exists")
	ErrFull              = errors.New("network: at max_agents capacity")
)
