// Package ppm writes images in the plain-text PPM (P3) format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// Encode writes img to w as a P3 PPM file: a header with the magic token,
// dimensions and maximum channel value, followed by whitespace-separated
// RGB triplets, one image row per line.
func Encode(w io.Writer, img image.Image) error {
	buffered := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels
			if _, err := fmt.Fprintf(buffered, "%d %d %d ", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("write ppm pixel: %w", err)
			}
		}
		if _, err := fmt.Fprintln(buffered); err != nil {
			return fmt.Errorf("write ppm row: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush ppm output: %w", err)
	}
	return nil
}
