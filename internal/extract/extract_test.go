package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeSidecar returns a fixed extraction result.
type fakeSidecar struct {
	text string
	ok   bool
}

func (f fakeSidecar) TryExtract(ctx context.Context, filename, contentType string, data []byte) (string, bool) {
	return f.text, f.ok
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("cv.txt"))
	assert.True(t, Supported("cv.PDF"))
	assert.True(t, Supported("Özgeçmiş.docx"))
	assert.False(t, Supported("cv.exe"))
	assert.False(t, Supported("cv"))
	assert.False(t, Supported(""))
}

func TestText_SidecarWins(t *testing.T) {
	e := NewExtractor(fakeSidecar{text: "sidecar text", ok: true}, zap.NewNop())

	got := e.Text(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF"))
	assert.Equal(t, "sidecar text", got)
}

func TestText_TxtFallback(t *testing.T) {
	e := NewExtractor(fakeSidecar{}, zap.NewNop())

	got := e.Text(context.Background(), "cv.txt", "application/octet-stream", []byte("plain body"))
	assert.Equal(t, "plain body", got)
}

func TestText_TextContentTypeFallback(t *testing.T) {
	e := NewExtractor(fakeSidecar{}, zap.NewNop())

	got := e.Text(context.Background(), "notes.data", "text/plain; charset=utf-8", []byte("readable"))
	assert.Equal(t, "readable", got)
}

func TestText_BinaryWithoutSidecarIsEmpty(t *testing.T) {
	e := NewExtractor(fakeSidecar{}, zap.NewNop())

	got := e.Text(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF"))
	assert.Empty(t, got)
}

func TestText_EmptyUpload(t *testing.T) {
	e := NewExtractor(fakeSidecar{text: "should not matter", ok: true}, zap.NewNop())

	assert.Empty(t, e.Text(context.Background(), "cv.txt", "text/plain", nil))
}
