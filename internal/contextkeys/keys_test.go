package contextkeys

import (
	"context"
	"testing"
)

func TestRequestBody(t *testing.T) {
	if _, ok := RequestBody(context.Background()); ok {
		t.Error("empty context reported a body")
	}

	ctx := WithRequestBody(context.Background(), []byte(`{"a":1}`))
	body, ok := RequestBody(ctx)
	if !ok || string(body) != `{"a":1}` {
		t.Errorf("RequestBody = %q, %v", body, ok)
	}
}
