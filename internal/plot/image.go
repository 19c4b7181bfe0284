package plot

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"uniplot/internal/frame"
	"uniplot/internal/imgenc"
)

// ImageOptions controls Image. Title and Border only apply when the output
// falls back to, or asks for, block characters.
type ImageOptions struct {
	Encoder     imgenc.Options
	Title       string
	Border      frame.BorderStyle
	BorderColor lipgloss.TerminalColor
	LabelColor  lipgloss.TerminalColor
}

// Image encodes b and frames block output.
func Image(ctx context.Context, b imgenc.Buffer, o ImageOptions) (imgenc.Output, error) {
	if err := ctx.Err(); err != nil {
		return imgenc.Output{}, err
	}
	out, err := imgenc.Encode(b, o.Encoder)
	if err != nil {
		return imgenc.Output{}, err
	}
	if err := ctx.Err(); err != nil {
		return imgenc.Output{}, err
	}
	if out.Mode == imgenc.Block && (o.Border != frame.BorderNone || o.Title != "") {
		out.Matrix = frame.Compose(out.Matrix, frame.Options{
			Border:      o.Border,
			Title:       o.Title,
			BorderColor: o.BorderColor,
			LabelColor:  o.LabelColor,
		})
	}
	return out, nil
}
