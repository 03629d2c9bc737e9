package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeNotEnoughGold, "not enough gold")

	if !stderrors.Is(err, New(CodeNotEnoughGold, "different message")) {
		t.Fatal("expected match on identical code")
	}
	if stderrors.Is(err, New(CodeNotEnoughTurns, "not enough gold")) {
		t.Fatal("unexpected match on different code")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeUnknown, "persist run", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in error chain")
	}
	if err.Error() != "persist run" {
		t.Fatalf("message = %q, want persist run", err.Error())
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeRunNotFound, "missing")); got != CodeRunNotFound {
		t.Fatalf("code = %s, want %s", got, CodeRunNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %s, want %s", got, CodeUnknown)
	}
	// Codes survive wrapping with fmt.
	wrapped := fmt.Errorf("context: %w", New(CodeForbidden, "no"))
	if got := GetCode(wrapped); got != CodeForbidden {
		t.Fatalf("code = %s, want %s", got, CodeForbidden)
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeNotEnoughGold, "not enough gold", map[string]string{"Have": "5", "Need": "8"})

	meta := GetMetadata(err)
	if meta["Have"] != "5" || meta["Need"] != "8" {
		t.Fatalf("metadata = %v", meta)
	}
	if GetMetadata(stderrors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestCodeKinds(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{CodeRunNotFound, KindNotFound},
		{CodeCandidateNotFound, KindNotFound},
		{CodeChallengeNotFound, KindNotFound},
		{CodeForbidden, KindForbidden},
		{CodeRunNotActive, KindInvalidState},
		{CodeChallengeExpired, KindInvalidState},
		{CodeChallengeNotOpen, KindInvalidState},
		{CodeCannotTrainSeriousWound, KindInvalidState},
		{CodeStarterAlreadyRecruited, KindInvalidState},
		{CodeNotEnoughTurns, KindInsufficientResource},
		{CodeNotEnoughGold, KindInsufficientResource},
		{CodeNoGladiator, KindMissingPrerequisite},
		{CodeInvalidDifficulty, KindInvalidInput},
		{CodeUnknown, KindUnknown},
	}

	for _, tc := range tests {
		if got := tc.code.Kind(); got != tc.want {
			t.Fatalf("%s kind = %s, want %s", tc.code, got, tc.want)
		}
	}
}
