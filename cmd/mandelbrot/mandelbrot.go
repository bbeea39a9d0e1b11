package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willbeason/ascii-mandel/pkg/mandel"
)

type options struct {
	width   int
	height  int
	maxIter int
	region  string
	pngPath string
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set as ASCII art",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return runCmd(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 80, "output width in characters")
	cmd.Flags().IntVar(&opts.height, "height", 40, "output height in characters")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", 30, "maximum number of iterations")
	cmd.Flags().StringVar(&opts.region, "region", "",
		"landmark region to render instead of the full set ("+strings.Join(mandel.RegionNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "write a grayscale PNG to this path instead of printing ASCII")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	view := mandel.DefaultViewport
	if opts.region != "" {
		v, ok := mandel.RegionByName(opts.region)
		if !ok {
			return fmt.Errorf("unknown region %q, expected one of: %s",
				opts.region, strings.Join(mandel.RegionNames(), ", "))
		}
		view = v
	}

	params := mandel.Params{
		Width:   opts.width,
		Height:  opts.height,
		MaxIter: opts.maxIter,
		View:    view,
	}

	if opts.pngPath != "" {
		return writePNG(opts.pngPath, params)
	}

	text, err := mandel.Render(params)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func writePNG(path string, params mandel.Params) error {
	img, err := mandel.RenderImage(params)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
