package speech

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/interprepai/interprep/internal/speech"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyStreamError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want speech.ErrorKind
	}{
		{"context canceled", context.Canceled, speech.ErrorAborted},
		{"grpc canceled", status.Error(codes.Canceled, "operation was cancelled"), speech.ErrorAborted},
		{"unavailable", status.Error(codes.Unavailable, "transport closing"), speech.ErrorNetwork},
		{"deadline", status.Error(codes.DeadlineExceeded, "timeout"), speech.ErrorNetwork},
		{"aborted stream", status.Error(codes.Aborted, "stream timed out"), speech.ErrorNetwork},
		{"unexpected eof", io.EOF, speech.ErrorNetwork},
		{"permission denied", status.Error(codes.PermissionDenied, "no access"), speech.ErrorNotAllowed},
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad credentials"), speech.ErrorNotAllowed},
		{"out of range", status.Error(codes.OutOfRange, "no audio"), speech.ErrorNoSpeech},
		{"plain error", errors.New("boom"), speech.ErrorOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyStreamError(tc.err); got != tc.want {
				t.Errorf("classifyStreamError(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}
