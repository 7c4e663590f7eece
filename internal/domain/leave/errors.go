package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveOverlap                 = errors.New("leave request overlaps an existing request")
	ErrSelfDecision                 = errors.New("cannot decide your own leave request")
)
