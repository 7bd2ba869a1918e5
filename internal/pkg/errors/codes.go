package errors

import "net/http"

// Error code constants.
// Errors contain code + params only, no hardcoded messages.
// Frontend handles i18n translation. Backend logs always in English.

// Domain error codes.
const (
	CodeDomainNotFound = "DOMAIN_NOT_FOUND"
	CodeDomainExists   = "DOMAIN_ALREADY_EXISTS"
	CodeDomainClosed   = "DOMAIN_CLOSED"
)

// Object error codes.
const (
	CodeObjectNotFound   = "OBJECT_NOT_FOUND"
	CodeObjectCreateFail = "OBJECT_CREATION_FAILED"
	CodeObjectImmutable  = "OBJECT_VERSION_IMMUTABLE"
)

// Rule error codes.
const (
	CodeRuleNotFound    = "RULE_NOT_FOUND"
	CodeRuleExists      = "RULE_ALREADY_EXISTS"
	CodeRuleInvalid     = "RULE_LOGIC_INVALID"
	CodeRuleEvalFailed  = "RULE_EVALUATION_FAILED"
	CodeRuleTypeUnknown = "RULE_CONDITION_TYPE_UNKNOWN"
)

// Graph error codes.
const (
	CodeEntityNotFound     = "ENTITY_NOT_FOUND"
	CodeGenerationNotFound = "GRAPH_GENERATION_NOT_FOUND"
	CodeExtractionFailed   = "EXTRACTION_FAILED"
	CodeDetectionRunning   = "COMMUNITY_DETECTION_RUNNING"
)

// Suggestion error codes.
const (
	CodeSuggestionNotFound = "SUGGESTION_NOT_FOUND"
	CodeSuggestionReviewed = "SUGGESTION_ALREADY_REVIEWED"
	CodeFeedbackInvalid    = "FEEDBACK_ACTION_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeQueryTooShort       = "QUERY_TOO_SHORT"
)

// Convenience constructors using predefined codes.

// ErrDomainNotFoundf creates a domain not found error.
func ErrDomainNotFoundf(domainID string) *AppError {
	return (&AppError{
		Code:       CodeDomainNotFound,
		Message:    "information domain not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"domain_id": domainID})
}

// ErrObjectNotFoundf creates an object not found error.
func ErrObjectNotFoundf(objectID string) *AppError {
	return (&AppError{
		Code:       CodeObjectNotFound,
		Message:    "information object not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"object_id": objectID})
}

// ErrRuleInvalidf creates a rule logic validation error.
func ErrRuleInvalidf(detail string) *AppError {
	return (&AppError{
		Code:       CodeRuleInvalid,
		Message:    "rule logic failed validation",
		HTTPStatus: http.StatusBadRequest,
	}).WithParams(map[string]interface{}{"detail": detail})
}

// ErrSuggestionReviewedf creates a conflict error for double review.
func ErrSuggestionReviewedf(suggestionID string) *AppError {
	return (&AppError{
		Code:       CodeSuggestionReviewed,
		Message:    "suggestion has already been reviewed",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"suggestion_id": suggestionID})
}
