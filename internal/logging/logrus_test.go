package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogrusLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewText(&buf, logrus.DebugLevel)

	log.With("module", "cli").Warn(context.Background(), "storage unavailable", "driver", "sqlite")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `msg="storage unavailable"`)
	assert.Contains(t, out, "module=cli")
	assert.Contains(t, out, "driver=sqlite")
}

func TestLogrusLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewText(&buf, logrus.InfoLevel)

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestFields_DanglingValue(t *testing.T) {
	f := fields([]any{"a", 1, "orphan"})
	assert.Equal(t, 1, f["a"])
	assert.Equal(t, "orphan", f["!BADKEY"])
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer
	New(FormatText, &buf).Info(context.Background(), "text-line")
	assert.True(t, strings.Contains(buf.String(), "msg=text-line"))

	buf.Reset()
	New(FormatJSON, &buf).Info(context.Background(), "json-line")
	assert.Contains(t, buf.String(), `"msg":"json-line"`)
}

func TestLogrusLogger_ContextPairs(t *testing.T) {
	var buf bytes.Buffer
	log := NewText(&buf, logrus.InfoLevel)

	ctx := ContextWith(context.Background(), "profile", "p1")
	log.Info(ctx, "hello", "k", "v")

	assert.Contains(t, buf.String(), "profile=p1")
	assert.Contains(t, buf.String(), "k=v")
}

func TestContextWith_DoesNotAlias(t *testing.T) {
	base := ContextWith(context.Background(), "a", 1)
	left := ContextWith(base, "b", 2)
	right := ContextWith(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, fromContext(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, fromContext(right))
	assert.Nil(t, fromContext(context.Background()))
}
