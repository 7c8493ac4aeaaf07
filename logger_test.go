package meshcomp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogCompact(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := quad(t)
	m.Faces.Delete(0)
	m.logger = l
	assert.NoError(t, m.Compact())

	out := buf.String()
	assert.Contains(t, out, "element=vertex count=4")
	assert.Contains(t, out, "element=face count=1")

	buf.Reset()
	l.LogCompact(context.Background(), m.Mesh, errors.New("boom"))
	assert.Contains(t, buf.String(), "compact failed")
	assert.NotContains(t, buf.String(), "element=")
}
