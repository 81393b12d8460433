package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"beer_service/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testTraceIDEmpty contextx.TraceID

	testTraceIDNotEmpty := contextx.TraceID("d0c1bq2t0fkc73f6o9q0")

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Equal(testTraceIDEmpty, traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	traceID, err = contextx.TraceIDFromContext(contextx.WithTraceID(ctx, ""))
	rq.Equal(testTraceIDEmpty, traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)

	ctx = contextx.WithTraceID(ctx, testTraceIDNotEmpty)

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.Equal(testTraceIDNotEmpty, traceID)
	rq.Equal("d0c1bq2t0fkc73f6o9q0", traceID.String())
	rq.NoError(err)
}
