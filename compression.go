package aseprite

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// CompressionCapability is the injectable zlib seam (spec.md §4, §6.2, §9):
// decoders and encoders never import compress/zlib directly, only through
// this interface, so callers can substitute another provider.
type CompressionCapability interface {
	Inflate(data []byte) ([]byte, error)
	Deflate(data []byte) ([]byte, error)
}

// stdlibZlib is the default CompressionCapability, backed by the standard
// library's compress/zlib — the "platform's zlib" spec.md §9 asks for.
// Grounded in shutej-apng's writer.go (compress/zlib, bufio) and the
// askeladdk/aseprite reference decoder, both of which move Aseprite/PNG
// pixel payloads through stdlib zlib.
type stdlibZlib struct{}

// DefaultCompression is the package's built-in CompressionCapability.
var DefaultCompression CompressionCapability = stdlibZlib{}

func (stdlibZlib) Inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(wrapCompression(ErrDecompressionFailed, err))
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(wrapCompression(ErrDecompressionFailed, err))
	}
	return out, nil
}

func (stdlibZlib) Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, errors.WithStack(wrapCompression(ErrCompressionFailed, err))
	}
	if err := w.Close(); err != nil {
		return nil, errors.WithStack(wrapCompression(ErrCompressionFailed, err))
	}
	return buf.Bytes(), nil
}

func wrapCompression(kind error, cause error) error {
	ce := &CodecError{Kind: kind, FrameIdx: -1, Msg: cause.Error()}
	return ce
}
