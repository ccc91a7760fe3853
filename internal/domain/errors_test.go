package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyPriorities(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "429 is rate limited",
			err:  &APIError{HTTPStatus: 429, Code: "RATE_LIMIT", Message: "slow down"},
			want: ErrRateLimited,
		},
		{
			name: "503 is a server error",
			err:  &APIError{HTTPStatus: 503, Code: "UNAVAILABLE", Message: "try later"},
			want: ErrServer,
		},
		{
			name: "500 is a server error",
			err:  &APIError{HTTPStatus: 500, Message: "boom"},
			want: ErrServer,
		},
		{
			name: "no response is a network error",
			err:  &APIError{Code: CodeNetworkError, Message: "connection refused"},
			want: ErrNetwork,
		},
		{
			name: "anything else is unknown",
			err:  errors.New("weird"),
			want: ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("Classify() = %v, want category %v", got, tt.want)
			}
		})
	}
}

func TestClassifyKeepsStructuredAPIErrors(t *testing.T) {
	apiErr := &APIError{HTTPStatus: 400, Code: "SOME_CODE", Message: "told you so"}

	got := Classify(apiErr)

	var out *APIError
	if !errors.As(got, &out) {
		t.Fatalf("expected the structured API error to pass through, got %v", got)
	}
	if out.Message != "told you so" {
		t.Errorf("message = %q, want %q", out.Message, "told you so")
	}
}

func TestClassifyPassesThroughClassifiedValues(t *testing.T) {
	vErr := &ValidationError{Field: "question", Message: "is required"}
	if got := Classify(vErr); got != vErr {
		t.Errorf("validation errors must pass through unchanged, got %v", got)
	}

	wrapped := fmt.Errorf("outer: %w", ErrBusy)
	if got := Classify(wrapped); !errors.Is(got, ErrBusy) {
		t.Errorf("already classified values must keep their category, got %v", got)
	}

	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestAPIErrorPredicates(t *testing.T) {
	network := &APIError{Code: CodeNetworkError}
	if !network.IsNetwork() {
		t.Error("expected network error predicate to hold with status 0")
	}

	limited := &APIError{HTTPStatus: 429}
	if !limited.IsRateLimited() {
		t.Error("expected 429 to be rate limited")
	}
	if limited.IsServerError() {
		t.Error("429 is not a server error")
	}

	server := &APIError{HTTPStatus: 502}
	if !server.IsServerError() {
		t.Error("expected 502 to be a server error")
	}
}
