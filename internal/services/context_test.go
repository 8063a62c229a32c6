package services

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	id, ok := RequestIDFromContext(ctx)
	if !ok || id != "req-42" {
		t.Fatalf("unexpected request id %q (ok=%v)", id, ok)
	}
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Fatal("expected no request id on bare context")
	}
	if WithRequestID(context.Background(), "") != context.Background() {
		t.Fatal("empty id should return the parent context")
	}
}

func TestOperationRoundTrip(t *testing.T) {
	ctx := WithOperation(context.Background(), "transcribe")
	op, ok := OperationFromContext(ctx)
	if !ok || op != "transcribe" {
		t.Fatalf("unexpected operation %q (ok=%v)", op, ok)
	}
	if _, ok := OperationFromContext(context.Background()); ok {
		t.Fatal("expected no operation on bare context")
	}
}
