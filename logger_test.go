package mvf

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := NewImageRef[pixfmt.Mono8](10, 10, 10, make([]byte, 10))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Contains(t, buf.String(), "rejecting image geometry")
	assert.Contains(t, buf.String(), "format=Mono8")

	buf.Reset()
	ref, err := NewImageRef[pixfmt.Mono8](2, 2, 2, make([]byte, 4))
	assert.NoError(t, err)
	CowFromRef(ref).Owned()
	assert.Contains(t, buf.String(), "copying borrowed image")

	SetLogger(nil)
	buf.Reset()
	_, _ = NewImageRef[pixfmt.Mono8](10, 10, 10, nil)
	assert.Empty(t, buf.String())
}
