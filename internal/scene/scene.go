// Package scene loads the inputs of a transform from YAML and keeps them
// inside the ranges the interactive controls allow.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/xform"
)

var (
	// ErrVectorLength is returned when a vector does not have exactly three
	// components.
	ErrVectorLength = errors.New("scene: vector must have 3 components")

	// ErrNonFinite is returned when a component is NaN or infinite.
	ErrNonFinite = errors.New("scene: component is not finite")
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float32
}

// Clamp limits v to r.
func (r Range) Clamp(v float32) float32 {
	return max(r.Min, min(v, r.Max))
}

// Ranges of the interactive position, scale and rotation sliders.
var (
	PositionRange = Range{Min: -5, Max: 5}
	ScaleRange    = Range{Min: 0.1, Max: 2}
	RotationRange = Range{Min: -180, Max: 180}
)

// Vector is a 3-component vector written in YAML as [x, y, z] and on the
// command line as "x,y,z". It implements flag.Value.
type Vector [3]float32

// Vec3 converts v to an xform vector.
func (v Vector) Vec3() xform.Vec3 {
	return xform.Vec3(v)
}

func (v Vector) clamp(r Range) Vector {
	return Vector{r.Clamp(v[0]), r.Clamp(v[1]), r.Clamp(v[2])}
}

func (v Vector) validate() error {
	for i, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFinite, i, c)
		}
	}
	return nil
}

// String formats v as "x,y,z".
func (v *Vector) String() string {
	if v == nil {
		return ""
	}
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(float64(c), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}

// Set parses "x,y,z" into v.
func (v *Vector) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return fmt.Errorf("%w: got %d in %q", ErrVectorLength, len(fields), s)
	}
	var out Vector
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return fmt.Errorf("scene: component %d of %q: %w", i, s, err)
		}
		out[i] = float32(c)
	}
	*v = out
	return nil
}

// UnmarshalYAML decodes a sequence of exactly three numbers.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	var comps []float32
	if err := node.Decode(&comps); err != nil {
		return err
	}
	if len(comps) != 3 {
		return fmt.Errorf("%w: got %d at line %d", ErrVectorLength, len(comps), node.Line)
	}
	copy(v[:], comps)
	return nil
}

// MarshalYAML encodes v as a flow sequence.
func (v Vector) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(float64(c), 'g', -1, 32),
		})
	}
	return node, nil
}

// Scene holds the three input vectors of a transform.
type Scene struct {
	Position Vector `yaml:"position"`
	Scale    Vector `yaml:"scale"`
	Rotation Vector `yaml:"rotation"` // Euler ZYX, degrees
}

// Default returns the reset state: origin, unit scale, no rotation.
func Default() Scene {
	t := xform.DefaultTransform()
	return Scene{
		Position: Vector(t.Position),
		Scale:    Vector(t.Scale),
		Rotation: Vector(t.Rotation),
	}
}

// Transform converts s to the transform it describes.
func (s Scene) Transform() xform.Transform {
	return xform.Transform{
		Position: s.Position.Vec3(),
		Scale:    s.Scale.Vec3(),
		Rotation: s.Rotation.Vec3(),
	}
}

// Clamp returns s with every component limited to the slider ranges.
func (s Scene) Clamp() Scene {
	return Scene{
		Position: s.Position.clamp(PositionRange),
		Scale:    s.Scale.clamp(ScaleRange),
		Rotation: s.Rotation.clamp(RotationRange),
	}
}

// Validate reports the first non-finite component of s.
func (s Scene) Validate() error {
	for _, f := range []struct {
		name string
		v    Vector
	}{
		{"position", s.Position},
		{"scale", s.Scale},
		{"rotation", s.Rotation},
	} {
		if err := f.v.validate(); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// Decode reads a YAML scene from r. Keys missing from the document keep
// their Default values; an empty document yields Default.
func Decode(r io.Reader) (Scene, error) {
	s := Default()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Load reads a YAML scene file.
func Load(path string) (Scene, error) {
	// #nosec G304 -- scene path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return enc.Close()
}
