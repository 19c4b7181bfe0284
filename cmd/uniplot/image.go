package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"uniplot/internal/frame"
	"uniplot/internal/imgenc"
	"uniplot/internal/logging"
	"uniplot/internal/plot"
)

func (a *app) imageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image FILE",
		Short: "Draw a PNG, JPEG, GIF, BMP, TIFF or WebP image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decode(args[0])
			if err != nil {
				return err
			}
			o := a.cfg.ImageOptions()
			cols, rows := a.cfg.Width, a.cfg.Height
			switch {
			case o.Border != frame.BorderNone:
				cols, rows = cols-2, rows-2
			case o.Title != "":
				rows--
			}
			b := img.Bounds()
			o.Encoder.Cols, o.Encoder.Rows = imgenc.FitGrid(b.Dx(), b.Dy(), o.Encoder.Glyphs, cols, rows)

			ctx, cancel := a.context(cmd)
			defer cancel()
			res, err := plot.Image(ctx, imgenc.FromImage(img), o)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if res.Mode == imgenc.Graphics {
				logging.For("cli").Infof("%s image in %d chunks", o.Encoder.Capability, res.Chunks)
				if _, err := w.Write(res.Payload); err != nil {
					return err
				}
				_, err = fmt.Fprintln(w)
				return err
			}
			_, err = fmt.Fprintln(w, res.Matrix.Render(a.renderer(w)))
			return err
		},
	}
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	logging.For("cli").Debugf("decoded %s as %s %v", path, format, img.Bounds())
	return img, nil
}
