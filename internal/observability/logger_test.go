package observability

import (
	"context"
	"testing"
)

func TestWithFields_AppendsWithoutMutatingParent(t *testing.T) {
	ctx := context.Background()
	ctx1 := WithFields(ctx, Field{Key: "a", Value: 1})
	ctx2 := WithFields(ctx1, Field{Key: "b", Value: 2})

	fields1 := getObservabilityFields(ctx1)
	if len(fields1) != 1 {
		t.Fatalf("expected 1 field on parent context, got %d", len(fields1))
	}

	fields2 := getObservabilityFields(ctx2)
	if len(fields2) != 2 {
		t.Fatalf("expected 2 fields on child context, got %d", len(fields2))
	}
	if fields2[0].Key != "a" || fields2[1].Key != "b" {
		t.Errorf("fields out of order: %+v", fields2)
	}
}

func TestGetObservabilityFields_EmptyContext(t *testing.T) {
	if fields := getObservabilityFields(context.Background()); fields != nil {
		t.Errorf("expected nil fields, got %+v", fields)
	}
}
