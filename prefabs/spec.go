package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
	"github.com/milk9111/boxcontroller/movement"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	LevelFile  = "level.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := loadInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// loadInto decodes over out, so fields missing from the file keep the values
// out already holds.
func loadInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// Vec3 decodes either a [x, y, z] sequence or an {x, y, z} mapping.
type Vec3 mgl32.Vec3

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float32
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("line %d: vector needs 3 components, got %d", value.Line, len(xs))
		}
		*v = Vec3{xs[0], xs[1], xs[2]}
	case yaml.MappingNode:
		var m struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
			Z float32 `yaml:"z"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*v = Vec3{m.X, m.Y, m.Z}
	default:
		return fmt.Errorf("line %d: vector must be a sequence or mapping", value.Line)
	}
	return nil
}

func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3(v) }

// TransformSpec places a box. Rotation is Euler degrees applied X then Y then
// Z. Scale holds the half extents.
type TransformSpec struct {
	Position Vec3 `yaml:"position"`
	Rotation Vec3 `yaml:"rotation"`
	Scale    Vec3 `yaml:"scale"`
}

func (t TransformSpec) Transform() common.Transform {
	return common.Transform{
		Position: t.Position.Vec(),
		Rotation: t.Rotation.Vec(),
		Scale:    t.Scale.Vec(),
	}
}

type CameraSpec struct {
	Sensitivity float32 `yaml:"sensitivity"`
	Offset      Vec3    `yaml:"offset"`
}

type PlayerSpec struct {
	Name      string          `yaml:"name"`
	Transform TransformSpec   `yaml:"transform"`
	Camera    CameraSpec      `yaml:"camera"`
	Tuning    movement.Tuning `yaml:"tuning"`
}

// LoadPlayerSpec reads player.yaml. Tuning keys the file leaves out keep
// their defaults.
func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := PlayerSpec{
		Name:   "player",
		Camera: CameraSpec{Sensitivity: 1, Offset: Vec3{0, 0.8, 0}},
		Tuning: movement.DefaultTuning(),
	}
	if err := loadInto(PlayerFile, &spec); err != nil {
		return nil, err
	}
	if err := spec.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
}

type LevelSpec struct {
	Name      string         `yaml:"name"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
