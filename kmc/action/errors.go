package action

import "errors"

// Soft sampling-failure sentinels. No function in this package returns them:
// the selection helpers report these failures through their bool results,
// and an Invoke that hits one emits finished without happened and returns.
var (
	ErrEmptyCandidateSet = errors.New("action: no candidate agent available for this sample")
	ErrSameAgent         = errors.New("action: follower and followee resolved to the same agent")
	ErrStubModel         = errors.New("action: follow model is a reserved stub")
)
