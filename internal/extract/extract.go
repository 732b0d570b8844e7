// Package extract turns uploaded files into plain text for scoring. The
// sidecar handles the binary formats; without it, only plain text files can
// be read locally and binary uploads yield empty text. The scoring pipeline
// itself only ever sees plain text.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Sidecar is the remote text-extraction capability; satisfied by
// *semantic.Client.
type Sidecar interface {
	TryExtract(ctx context.Context, filename, contentType string, data []byte) (string, bool)
}

// Extractor resolves uploaded files to plain text.
type Extractor struct {
	sidecar Sidecar
	log     *zap.Logger
}

// NewExtractor builds an extractor backed by the given sidecar.
func NewExtractor(sidecar Sidecar, log *zap.Logger) *Extractor {
	return &Extractor{sidecar: sidecar, log: log}
}

// Supported reports whether the file extension is one the service accepts.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".pdf", ".docx":
		return true
	}
	return false
}

// Text extracts plain text from an uploaded file. The sidecar is tried
// first; on its absence, .txt and text/* content is read directly and
// binary formats yield empty text. Empty text never fails the pipeline,
// it simply scores as thin content downstream.
func (e *Extractor) Text(ctx context.Context, filename, contentType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if text, ok := e.sidecar.TryExtract(ctx, filename, contentType, data); ok {
		return text
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".txt" || strings.HasPrefix(contentType, "text/") {
		return string(data)
	}

	e.log.Debug("no local extraction for binary upload",
		zap.String("filename", filename),
		zap.String("content_type", contentType))
	return ""
}
