package imgenc

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/klauspost/compress/zlib"
	"github.com/mattn/go-sixel"
	"github.com/pkg/errors"
)

// kitty frames b for the kitty graphics protocol: 32-bit RGBA, zlib
// compressed, base64 encoded, split into escape sequences of at most size
// payload bytes. Every chunk but the last carries m=1.
func kitty(b Buffer, size int) ([]byte, int, error) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	// base64 expands in groups of four; a chunk that is not a multiple of
	// four would split a group.
	size -= size % 4
	if size == 0 {
		return nil, 0, errors.New("imgenc: kitty chunk size below 4")
	}

	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	if _, err := zw.Write(b.NRGBA().Pix); err != nil {
		return nil, 0, errors.Wrap(err, "imgenc: compress")
	}
	if err := zw.Close(); err != nil {
		return nil, 0, errors.Wrap(err, "imgenc: compress")
	}
	data := base64.StdEncoding.EncodeToString(z.Bytes())

	var out bytes.Buffer
	chunks := 0
	for len(data) > 0 {
		n := min(size, len(data))
		more := 0
		if n < len(data) {
			more = 1
		}
		if chunks == 0 {
			fmt.Fprintf(&out, "\x1b_Ga=T,f=32,s=%d,v=%d,o=z,q=2,m=%d;", b.Width, b.Height, more)
		} else {
			fmt.Fprintf(&out, "\x1b_Gm=%d;", more)
		}
		out.WriteString(data[:n])
		out.WriteString("\x1b\\")
		data = data[n:]
		chunks++
	}
	return out.Bytes(), chunks, nil
}

func sixelBytes(b Buffer) ([]byte, error) {
	var out bytes.Buffer
	if err := sixel.NewEncoder(&out).Encode(b.NRGBA()); err != nil {
		return nil, errors.Wrap(err, "imgenc: sixel")
	}
	return out.Bytes(), nil
}
