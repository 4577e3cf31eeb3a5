package service

import "errors"

// Store boundary failures that callers must surface per item rather than
// swallow.
var (
	// ErrPermissionDenied means the caller is not allowed to mutate the item.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound means the item does not exist.
	ErrNotFound = errors.New("not found")
)

// BusinessRuleError is a store rejection carrying the violated rule.
type BusinessRuleError struct {
	Detail string
}

func (e *BusinessRuleError) Error() string {
	return "business rule rejected: " + e.Detail
}

// ReasonCode buckets a store failure for per-item bulk reporting.
type ReasonCode string

// Reason codes.
const (
	ReasonPermissionDenied ReasonCode = "permission_denied"
	ReasonBusinessRule     ReasonCode = "business_rule_rejected"
	ReasonUnknown          ReasonCode = "unknown"
)

// ClassifyReason maps a store error to its reason code. Anything not
// recognized is ReasonUnknown.
func ClassifyReason(err error) ReasonCode {
	var ruleErr *BusinessRuleError
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return ReasonPermissionDenied
	case errors.As(err, &ruleErr):
		return ReasonBusinessRule
	default:
		return ReasonUnknown
	}
}
