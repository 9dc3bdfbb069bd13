package aseprite

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds, per the error taxonomy in spec.md §7. Check against
// these with errors.Is; CodecError wraps one with positional context.
var (
	ErrBadMagic              = errors.New("aseprite: bad magic")
	ErrOutOfBounds           = errors.New("aseprite: read past end of buffer")
	ErrBadChunkSize          = errors.New("aseprite: chunk size inconsistent with payload")
	ErrUnsupportedColorDepth = errors.New("aseprite: unsupported color depth")
	ErrInvalidCelType        = errors.New("aseprite: unknown cel type")
	ErrInvalidLayerType      = errors.New("aseprite: reserved layer type")
	ErrDecompressionFailed   = errors.New("aseprite: decompression failed")
	ErrCompressionFailed     = errors.New("aseprite: compression failed")
	ErrInvalidLinkedCel      = errors.New("aseprite: invalid linked cel")
	ErrMissingTileset        = errors.New("aseprite: missing tileset")
)

// CodecError carries the sentinel kind plus enough positional context to
// diagnose where in the byte stream a failure occurred (spec.md §7).
type CodecError struct {
	Kind      error
	Offset    int
	FrameIdx  int // -1 if not applicable
	ChunkType uint16
	HasChunk  bool
	Msg       string
}

func (e *CodecError) Error() string {
	s := e.Kind.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.FrameIdx >= 0 {
		s += fmt.Sprintf(" (frame %d", e.FrameIdx)
		if e.HasChunk {
			s += fmt.Sprintf(", chunk type 0x%04x", e.ChunkType)
		}
		s += fmt.Sprintf(", offset %d)", e.Offset)
	} else {
		s += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	return s
}

func (e *CodecError) Unwrap() error { return e.Kind }

func newCodecError(kind error, offset int, msg string) error {
	return errors.WithStack(&CodecError{Kind: kind, Offset: offset, FrameIdx: -1, Msg: msg})
}

func newCodecErrorInFrame(kind error, offset, frameIdx int, msg string) error {
	return errors.WithStack(&CodecError{Kind: kind, Offset: offset, FrameIdx: frameIdx, Msg: msg})
}

func newCodecErrorInChunk(kind error, offset, frameIdx int, chunkType uint16, msg string) error {
	return errors.WithStack(&CodecError{
		Kind: kind, Offset: offset, FrameIdx: frameIdx,
		ChunkType: chunkType, HasChunk: true, Msg: msg,
	})
}
