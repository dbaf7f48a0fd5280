package services

import "errors"

// Workflow errors surfaced to handlers. The boundary decides how much of
// the distinction is visible to callers (the decide path deliberately
// conflates ErrAccessDenied with ErrProjectNotFound in its response).
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrChangeNotFound   = errors.New("pending change not found")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrCollabNotFound   = errors.New("collaboration not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidDecision  = errors.New("invalid decision value")
	ErrMissingChangeID  = errors.New("pending change id is required")
	ErrInvalidChangeReq = errors.New("invalid change request")
)
