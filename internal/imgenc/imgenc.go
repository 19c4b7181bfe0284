// Package imgenc turns pixel buffers into terminal output: a grid of block
// characters with two colours per cell, or a graphics protocol byte stream
// for terminals that support one.
package imgenc

import (
	"image"
	"strings"

	"github.com/pkg/errors"

	"uniplot/internal/canvas"
	"uniplot/internal/grid"
	"uniplot/internal/logging"
)

// DefaultChunkSize is the largest payload carried by one escape sequence.
const DefaultChunkSize = 4096

// Mode selects the kind of output.
type Mode int

const (
	Block Mode = iota
	Graphics
)

func (m Mode) String() string {
	if m == Graphics {
		return "graphics"
	}
	return "block"
}

// Protocol is the graphics protocol the terminal is known to support. It is
// configuration; nothing here probes the terminal.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolSixel
)

var protocolNames = []string{"none", "kitty", "sixel"}

func (p Protocol) String() string {
	if p >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ErrUnknownProtocol is returned by ParseProtocol.
var ErrUnknownProtocol = errors.New("imgenc: unknown graphics protocol")

// ParseProtocol accepts none, kitty or sixel. Empty means none.
func ParseProtocol(s string) (Protocol, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ProtocolNone, nil
	}
	for i, n := range protocolNames {
		if n == s {
			return Protocol(i), nil
		}
	}
	return ProtocolNone, errors.Wrapf(ErrUnknownProtocol, "%q", s)
}

// Options controls Encode.
type Options struct {
	Mode       Mode
	Capability Protocol

	// Target grid for block mode. Zero in both gives one cell per glyph
	// block of source pixels; zero in one keeps the aspect ratio.
	Cols, Rows int
	// Glyphs is canvas.Quadrant (default) or canvas.HalfBlock.
	Glyphs *canvas.GlyphSet

	ChunkSize int
}

// Output is either a matrix (Mode == Block) or a raw payload to be written
// to the terminal unchanged.
type Output struct {
	Mode    Mode
	Matrix  grid.Matrix
	Payload []byte
	Chunks  int
}

// Encode converts b. Graphics mode without a capability, or with a protocol
// encoder that fails, falls back to block characters, using quadrants when
// the requested glyph set cannot carry two colours. In graphics mode only a
// malformed buffer is an error.
func Encode(b Buffer, o Options) (Output, error) {
	if err := b.Validate(); err != nil {
		return Output{}, err
	}
	log := logging.For("imgenc")
	if o.Mode == Graphics {
		if o.Capability != ProtocolNone {
			out, err := encodeGraphics(b, o)
			if err == nil {
				log.WithField("protocol", o.Capability).WithField("chunks", out.Chunks).Debug("graphics payload")
				return out, nil
			}
			log.WithError(err).Warn("graphics encoding failed, using block characters")
		} else {
			log.Debug("no graphics capability, using block characters")
		}
		if !twoColour(o.Glyphs) {
			log.WithField("glyphs", o.Glyphs.Name).Debug("glyph set unusable for images, using quadrants")
			o.Glyphs = canvas.Quadrant
		}
	}
	m, err := encodeBlocks(b, o)
	if err != nil {
		return Output{}, err
	}
	return Output{Mode: Block, Matrix: m}, nil
}

// twoColour reports whether g can be used for block output. Nil means the
// default and is fine.
func twoColour(g *canvas.GlyphSet) bool {
	return g == nil || g == canvas.Quadrant || g == canvas.HalfBlock
}

// EncodeImage is Encode for an image.Image.
func EncodeImage(img image.Image, o Options) (Output, error) {
	return Encode(FromImage(img), o)
}

func encodeGraphics(b Buffer, o Options) (Output, error) {
	var (
		payload []byte
		chunks  int
		err     error
	)
	switch o.Capability {
	case ProtocolKitty:
		payload, chunks, err = kitty(b, o.ChunkSize)
	case ProtocolSixel:
		payload, err = sixelBytes(b)
		chunks = 1
	default:
		err = errors.Wrapf(ErrUnknownProtocol, "%d", o.Capability)
	}
	if err != nil {
		return Output{}, err
	}
	return Output{Mode: Graphics, Payload: payload, Chunks: chunks}, nil
}
