package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeObjectNotFound, "information object not found", http.StatusNotFound),
			want: "OBJECT_NOT_FOUND: information object not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(stderrors.New("pq: connection refused"), CodeRuleEvalFailed, "rule evaluation failed", http.StatusInternalServerError),
			want: "RULE_EVALUATION_FAILED: rule evaluation failed: pq: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := stderrors.New("boom")
	wrapped := Wrap(inner, CodeExtractionFailed, "extraction failed", http.StatusInternalServerError)

	if !stderrors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound(CodeDomainNotFound, "nope"), http.StatusNotFound},
		{"BadRequest", BadRequest(CodeValidationFailed, "bad"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("AUTH", "who"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FORBIDDEN", "no"), http.StatusForbidden},
		{"Conflict", Conflict(CodeSuggestionReviewed, "dup"), http.StatusConflict},
		{"Internal", Internal(CodeRuleEvalFailed, "oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestWithParams(t *testing.T) {
	err := ErrObjectNotFoundf("obj-123")
	if err.Params["object_id"] != "obj-123" {
		t.Errorf("Params[object_id] = %v, want obj-123", err.Params["object_id"])
	}

	var nilErr *AppError
	if nilErr.WithParams(map[string]interface{}{"k": "v"}) != nil {
		t.Error("WithParams on nil should return nil")
	}
}

func TestWithFieldErrors(t *testing.T) {
	err := BadRequest(CodeValidationFailed, "validation failed").
		WithFieldErrors([]FieldError{
			{Field: "title", Code: "REQUIRED"},
			{Field: "classification", Code: "INVALID_ENUM"},
		})

	if len(err.FieldErrors) != 2 {
		t.Fatalf("FieldErrors len = %d, want 2", len(err.FieldErrors))
	}
	if err.FieldErrors[0].Field != "title" {
		t.Errorf("FieldErrors[0].Field = %q, want title", err.FieldErrors[0].Field)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := ErrDomainNotFoundf("dom-1")

	got, ok := IsAppError(appErr)
	if !ok || got.Code != CodeDomainNotFound {
		t.Errorf("IsAppError(appErr) = (%v, %v), want match", got, ok)
	}

	if _, ok := IsAppError(stderrors.New("plain")); ok {
		t.Error("IsAppError(plain) should be false")
	}

	// Wrapped AppError should still be found.
	wrapped := stderrors.Join(stderrors.New("outer"), appErr)
	if _, ok := IsAppError(wrapped); !ok {
		t.Error("IsAppError should unwrap joined errors")
	}
}
