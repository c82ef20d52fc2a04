package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/filiptrplan/zharko/pkg/ppm"
	"github.com/filiptrplan/zharko/pkg/renderer"
	"github.com/filiptrplan/zharko/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene: 'default', 'gradient', or a path to a YAML scene file")
	output := flag.String("out", "render.png", "Output file; .png or .ppm by extension")
	samples := flag.Int("spp", 0, "Override samples per pixel (0 keeps the scene setting)")
	depth := flag.Int("depth", 0, "Override max ray bounce depth (0 keeps the scene setting)")
	seed := flag.Int64("seed", 42, "Random seed for reproducible renders")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Usage: zharko [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Built-in scenes:")
		fmt.Println("  default  - Diffuse, glass and metal spheres on a ground sphere")
		fmt.Println("  gradient - Empty scene showing only the sky gradient")
		fmt.Println()
		fmt.Println("Any other value is treated as a path to a YAML scene file;")
		fmt.Println("see scenes/three_spheres.yaml for the format.")
		return
	}

	selected, err := createScene(*sceneName)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	sampling := selected.Sampling
	if *samples > 0 {
		sampling.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		sampling.MaxDepth = *depth
	}

	raytracer, err := renderer.NewRaytracer(selected, sampling, *seed)
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}

	log.Printf("Rendering %dx%d with %d samples per pixel, max depth %d",
		selected.Camera.Width(), selected.Camera.Height(),
		sampling.SamplesPerPixel, sampling.MaxDepth)

	startTime := time.Now()
	img := raytracer.RenderPass()
	log.Printf("Render completed in %v", time.Since(startTime))

	if err := writeImage(*output, img); err != nil {
		log.Fatalf("Error writing image: %v", err)
	}
	log.Printf("Render saved as %s", *output)
}

// createScene resolves a scene by built-in name or YAML file path
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "gradient":
		return scene.NewGradientScene(), nil
	case "":
		return nil, fmt.Errorf("no scene specified")
	}

	if ext := strings.ToLower(filepath.Ext(name)); ext == ".yaml" || ext == ".yml" {
		config, err := scene.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		return config.Build()
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}

// writeImage saves the image as PNG or PPM based on the file extension
func writeImage(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return ppm.Encode(file, img)
	case ".png":
		return png.Encode(file, img)
	default:
		return fmt.Errorf("unsupported output format %q, use .png or .ppm", filepath.Ext(path))
	}
}
