package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/artspace/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	nopLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}
func (r *recordingLogger) With(...any) logging.Logger { return r }

func TestLoggingInterceptor_PassesThroughAndLogs(t *testing.T) {
	rl := &recordingLogger{}
	s := NewHealthServer("", rl, &fakePinger{}, time.Hour)

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	h := func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if len(rl.msgs) != 1 || rl.msgs[0] != "grpc call" {
		t.Fatalf("expected one log line, got %v", rl.msgs)
	}
	if rl.args[0][1] != "/grpc.health.v1.Health/Check" || rl.args[0][3] != "OK" {
		t.Fatalf("unexpected log args: %v", rl.args[0])
	}
}

func TestLoggingInterceptor_PropagatesError(t *testing.T) {
	rl := &recordingLogger{}
	s := NewHealthServer("", rl, &fakePinger{}, time.Hour)

	want := status.Error(codes.NotFound, "unknown service")
	h := func(ctx context.Context, req any) (any, error) {
		return nil, want
	}

	_, err := s.loggingInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"}, h)
	if !errors.Is(err, want) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if rl.args[0][3] != "NotFound" {
		t.Fatalf("expected NotFound code, got %v", rl.args[0][3])
	}
}
