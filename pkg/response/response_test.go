package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]string{"id": "abc"})

	if !resp.Success {
		t.Error("expected Success to be true")
	}
	if resp.Error != nil {
		t.Error("expected Error to be nil")
	}
	if resp.Data == nil {
		t.Error("expected Data to be set")
	}
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeNotFound, "case not found")

	if resp.Success {
		t.Error("expected Success to be false")
	}
	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, resp.Error.Code)
	}
	if resp.Error.Message != "case not found" {
		t.Errorf("unexpected message: %s", resp.Error.Message)
	}
}

func TestErrorWithDetails(t *testing.T) {
	details := map[string]string{"email": "invalid format"}
	resp := ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", details)

	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Details["email"] != "invalid format" {
		t.Errorf("expected details to be preserved, got %v", resp.Error.Details)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeMissingToken, http.StatusUnauthorized},
		{ErrCodeInvalidToken, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeDuplicateEntry, http.StatusBadRequest},
		{ErrCodeInternalError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetHTTPStatus(tt.code); got != tt.expected {
				t.Errorf("GetHTTPStatus(%s) = %d, want %d", tt.code, got, tt.expected)
			}
		})
	}
}

func TestCommonErrorResponses(t *testing.T) {
	t.Run("unauthorized default message", func(t *testing.T) {
		resp := Unauthorized("")
		if resp.Error.Message != "Authentication required" {
			t.Errorf("unexpected default message: %s", resp.Error.Message)
		}
	})

	t.Run("not found default message", func(t *testing.T) {
		resp := NotFound("")
		if resp.Error.Message != "Resource not found" {
			t.Errorf("unexpected default message: %s", resp.Error.Message)
		}
	})

	t.Run("duplicate entry custom message", func(t *testing.T) {
		resp := DuplicateEntry("email already registered")
		if resp.Error.Code != ErrCodeDuplicateEntry {
			t.Errorf("unexpected code: %s", resp.Error.Code)
		}
		if resp.Error.Message != "email already registered" {
			t.Errorf("unexpected message: %s", resp.Error.Message)
		}
	})
}

func TestResponseJSONShape(t *testing.T) {
	t.Run("success omits error", func(t *testing.T) {
		b, err := json.Marshal(Success(map[string]int{"total_cases": 3}))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if _, ok := decoded["error"]; ok {
			t.Error("success response should omit error field")
		}
	})

	t.Run("error omits data", func(t *testing.T) {
		b, err := json.Marshal(BadRequest("bad input"))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if _, ok := decoded["data"]; ok {
			t.Error("error response should omit data field")
		}
	})
}
