package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/filiptrplan/zharko/pkg/core"
	"github.com/filiptrplan/zharko/pkg/geometry"
	"github.com/filiptrplan/zharko/pkg/material"
	"github.com/filiptrplan/zharko/pkg/renderer"
)

// Config is a declarative YAML scene description. Objects reference
// materials by name, so many spheres can share one material instance.
type Config struct {
	Image      ImageConfig      `yaml:"image"`
	Camera     CameraConfig     `yaml:"camera"`
	Sampling   SamplingConfig   `yaml:"sampling"`
	Background BackgroundConfig `yaml:"background"`
	Materials  []MaterialConfig `yaml:"materials"`
	Objects    []ObjectConfig   `yaml:"objects"`
}

// ImageConfig describes the output image dimensions
type ImageConfig struct {
	Width       int     `yaml:"width"`
	AspectRatio float64 `yaml:"aspect_ratio"`
}

// CameraConfig describes the viewpoint
type CameraConfig struct {
	LookFrom      []float64 `yaml:"lookfrom"`
	LookAt        []float64 `yaml:"lookat"`
	Up            []float64 `yaml:"up"`
	VFov          float64   `yaml:"vfov"`
	DefocusAngle  float64   `yaml:"defocus_angle"`
	FocusDistance float64   `yaml:"focus_distance"`
}

// SamplingConfig describes the Monte Carlo sampling parameters
type SamplingConfig struct {
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

// BackgroundConfig describes the sky gradient endpoints
type BackgroundConfig struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

// MaterialConfig describes a named material. Type selects the variant:
// "lambertian", "metal" or "dielectric".
type MaterialConfig struct {
	Name            string    `yaml:"name"`
	Type            string    `yaml:"type"`
	Albedo          []float64 `yaml:"albedo"`
	Fuzz            float64   `yaml:"fuzz"`
	RefractiveIndex float64   `yaml:"refractive_index"`
}

// ObjectConfig describes a sphere referencing a material by name
type ObjectConfig struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// DefaultConfig returns a configuration matching the built-in default scene
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Width:       400,
			AspectRatio: 16.0 / 9.0,
		},
		Camera: CameraConfig{
			LookFrom:     []float64{-2, 2, 1},
			LookAt:       []float64{0, 0, -1},
			Up:           []float64{0, 1, 0},
			VFov:         20.0,
			DefocusAngle: 0.6,
		},
		Sampling: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Background: BackgroundConfig{
			Top:    []float64{0.5, 0.7, 1.0},
			Bottom: []float64{1.0, 1.0, 1.0},
		},
		Materials: []MaterialConfig{
			{Name: "ground", Type: "lambertian", Albedo: []float64{0.8, 0.8, 0.0}},
			{Name: "center", Type: "lambertian", Albedo: []float64{0.1, 0.2, 0.5}},
			{Name: "glass", Type: "dielectric", RefractiveIndex: 1.5},
			{Name: "gold", Type: "metal", Albedo: []float64{0.8, 0.6, 0.2}, Fuzz: 0.3},
		},
		Objects: []ObjectConfig{
			{Center: []float64{0, -100.5, -1}, Radius: 100, Material: "ground"},
			{Center: []float64{0, 0, -1.2}, Radius: 0.5, Material: "center"},
			{Center: []float64{-1, 0, -1}, Radius: 0.5, Material: "glass"},
			{Center: []float64{1, 0, -1}, Radius: 0.5, Material: "gold"},
		},
	}
}

// LoadConfig reads a scene configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse scene config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes a scene configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serialize scene config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene config: %w", err)
	}
	return nil
}

// Validate checks the configuration for degenerate values, failing fast
// before any geometry is built
func (c *Config) Validate() error {
	if c.Image.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Image.Width)
	}
	if c.Image.AspectRatio <= 0 {
		return fmt.Errorf("image aspect ratio must be positive, got %g", c.Image.AspectRatio)
	}
	if c.Sampling.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.Sampling.SamplesPerPixel)
	}
	if c.Sampling.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.Sampling.MaxDepth)
	}

	for _, name := range []struct {
		label  string
		vector []float64
	}{
		{"camera lookfrom", c.Camera.LookFrom},
		{"camera lookat", c.Camera.LookAt},
		{"camera up", c.Camera.Up},
		{"background top", c.Background.Top},
		{"background bottom", c.Background.Bottom},
	} {
		if len(name.vector) != 3 {
			return fmt.Errorf("%s must have 3 components, got %d", name.label, len(name.vector))
		}
	}

	names := make(map[string]bool)
	for i, m := range c.Materials {
		if m.Name == "" {
			return fmt.Errorf("material %d has no name", i)
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate material name %q", m.Name)
		}
		names[m.Name] = true

		switch m.Type {
		case "lambertian", "metal":
			if len(m.Albedo) != 3 {
				return fmt.Errorf("material %q albedo must have 3 components, got %d", m.Name, len(m.Albedo))
			}
		case "dielectric":
			if m.RefractiveIndex <= 0 {
				return fmt.Errorf("material %q refractive index must be positive, got %g", m.Name, m.RefractiveIndex)
			}
		default:
			return fmt.Errorf("material %q has unknown type %q", m.Name, m.Type)
		}
	}

	for i, o := range c.Objects {
		if len(o.Center) != 3 {
			return fmt.Errorf("object %d center must have 3 components, got %d", i, len(o.Center))
		}
		if o.Radius <= 0 {
			return fmt.Errorf("object %d radius must be positive, got %g", i, o.Radius)
		}
		if !names[o.Material] {
			return fmt.Errorf("object %d references unknown material %q", i, o.Material)
		}
	}

	return nil
}

// Build validates the configuration and constructs a renderable scene
func (c *Config) Build() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	camera, err := renderer.NewCamera(renderer.CameraConfig{
		Center:        vec3(c.Camera.LookFrom),
		LookAt:        vec3(c.Camera.LookAt),
		Up:            vec3(c.Camera.Up),
		Width:         c.Image.Width,
		AspectRatio:   c.Image.AspectRatio,
		VFov:          c.Camera.VFov,
		DefocusAngle:  c.Camera.DefocusAngle,
		FocusDistance: c.Camera.FocusDistance,
	})
	if err != nil {
		return nil, fmt.Errorf("build camera: %w", err)
	}

	materials := make(map[string]core.Material, len(c.Materials))
	for _, m := range c.Materials {
		switch m.Type {
		case "lambertian":
			materials[m.Name] = material.NewLambertian(vec3(m.Albedo))
		case "metal":
			materials[m.Name] = material.NewMetal(vec3(m.Albedo), m.Fuzz)
		case "dielectric":
			materials[m.Name] = material.NewDielectric(m.RefractiveIndex)
		}
	}

	world := geometry.NewHittableList()
	for i, o := range c.Objects {
		sphere, err := geometry.NewSphere(vec3(o.Center), o.Radius, materials[o.Material])
		if err != nil {
			return nil, fmt.Errorf("build object %d: %w", i, err)
		}
		world.Add(sphere)
	}

	return &Scene{
		Camera:      camera,
		World:       world,
		TopColor:    vec3(c.Background.Top),
		BottomColor: vec3(c.Background.Bottom),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: c.Sampling.SamplesPerPixel,
			MaxDepth:        c.Sampling.MaxDepth,
		},
	}, nil
}

// vec3 converts a validated 3-element slice to a core.Vec3
func vec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
