package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.NotNil(t, l.Logger)

	_, err = New("verbose", "json")
	assert.Error(t, err)
}

func TestContextFieldsAreAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{Logger: zap.New(core)}

	ctx := WithContextFields(context.Background(), StringField("page", "home"))
	ctx = WithContextFields(ctx, Uint64Field("seq", 3))
	l.InfoContext(ctx, "submitted", StringField("symbol", "AAPL"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "home", fields["page"])
	assert.Equal(t, uint64(3), fields["seq"])
	assert.Equal(t, "AAPL", fields["symbol"])
}

func TestContextFieldsDoNotLeakBetweenCalls(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{Logger: zap.New(core)}

	ctx := WithContextFields(context.Background(), StringField("page", "news"))
	l.WarnContext(ctx, "first", StringField("a", "1"))
	l.WarnContext(ctx, "second", StringField("b", "2"))

	entries := logs.All()
	require.Len(t, entries, 2)
	_, hasA := entries[1].ContextMap()["a"]
	assert.False(t, hasA)
}
