package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evhansen/lumentrace/pkg/camera"
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/light"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/primitive"
	"github.com/evhansen/lumentrace/pkg/scene"
	"github.com/evhansen/lumentrace/pkg/shape"
	"github.com/evhansen/lumentrace/pkg/texture"
)

// SceneConfig is the in-memory scene description a YAML scene file
// deserializes into: a camera, an image size/sample budget, and the lists
// of primitives and lights spec §6 says scene construction takes.
type SceneConfig struct {
	Width    int
	Height   int
	Samples  int
	Seed     int64
	MaxDepth int

	Camera *camera.SimpleCamera
	Scene  *scene.Scene
}

type sceneFile struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Samples  int   `yaml:"samples"`
	Seed     int64 `yaml:"seed"`
	MaxDepth int   `yaml:"max_depth"`

	Camera cameraFile `yaml:"camera"`

	Background *lightEntry `yaml:"background"`

	Lights []lightEntry `yaml:"lights"`

	Primitives []primitiveEntry `yaml:"primitives"`
}

type cameraFile struct {
	Origin [3]core.Scalar `yaml:"origin"`
	LookAt [3]core.Scalar `yaml:"lookat"`
	Fov    core.Scalar    `yaml:"fov"`
}

type lightEntry struct {
	Type       string         `yaml:"type"` // "point" or "constant_infinite"
	Position   [3]core.Scalar `yaml:"position"`
	Color      [3]core.Scalar `yaml:"color"`
	Brightness core.Scalar    `yaml:"brightness"`
}

type primitiveEntry struct {
	Shape    string         `yaml:"shape"` // "sphere" or "mesh"
	Center   [3]core.Scalar `yaml:"center"`
	Radius   core.Scalar    `yaml:"radius"`
	File     string         `yaml:"file"` // for shape: mesh
	Material materialEntry  `yaml:"material"`
}

type materialEntry struct {
	Type   string         `yaml:"type"` // only "matte" is supported today
	Albedo [3]core.Scalar `yaml:"albedo"`
	Sigma  core.Scalar    `yaml:"sigma"`
}

// LoadSceneConfig reads a YAML scene description and builds the camera and
// scene it describes. Unknown light/shape/material types are rejected at
// load, matching spec §7's "reject at load, core never sees a malformed
// scene" policy for external collaborators.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lumentrace: read scene %q: %w", path, err)
	}

	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("lumentrace: parse scene %q: %w", path, err)
	}

	var lights []light.Light
	if sf.Background != nil {
		l, err := buildLight(*sf.Background)
		if err != nil {
			return nil, fmt.Errorf("lumentrace: background light: %w", err)
		}
		lights = append(lights, l)
	}
	for i, le := range sf.Lights {
		l, err := buildLight(le)
		if err != nil {
			return nil, fmt.Errorf("lumentrace: light %d: %w", i, err)
		}
		lights = append(lights, l)
	}

	var prims []*primitive.Primitive
	for i, pe := range sf.Primitives {
		p, err := buildPrimitive(pe)
		if err != nil {
			return nil, fmt.Errorf("lumentrace: primitive %d: %w", i, err)
		}
		prims = append(prims, p...)
	}

	s := scene.NewScene(prims, lights)

	cam := camera.NewSimpleCamera(
		vec3From(sf.Camera.Origin),
		vec3From(sf.Camera.LookAt),
		core.Vec3{X: 0, Y: 1, Z: 0},
		sf.Camera.Fov,
		sf.Width,
		sf.Height,
	)

	return &SceneConfig{
		Width:    sf.Width,
		Height:   sf.Height,
		Samples:  sf.Samples,
		Seed:     sf.Seed,
		MaxDepth: sf.MaxDepth,
		Camera:   cam,
		Scene:    s,
	}, nil
}

func vec3From(a [3]core.Scalar) core.Vec3 { return core.Vec3{X: a[0], Y: a[1], Z: a[2]} }

func buildLight(le lightEntry) (light.Light, error) {
	switch le.Type {
	case "point":
		return light.NewPointLight(core.Translate(vec3From(le.Position)), vec3From(le.Color), le.Brightness), nil
	case "constant_infinite":
		return light.NewConstantInfiniteLight(core.Identity(), vec3From(le.Color), le.Brightness), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", le.Type)
	}
}

func buildMaterial(me materialEntry) (material.Material, error) {
	switch me.Type {
	case "", "matte":
		var sigma texture.ScalarTexture
		if me.Sigma != 0 {
			sigma = texture.NewConstantScalar(me.Sigma)
		}
		return material.NewMatte(texture.NewSolidColor(vec3From(me.Albedo)), sigma), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", me.Type)
	}
}

func buildPrimitive(pe primitiveEntry) ([]*primitive.Primitive, error) {
	switch pe.Shape {
	case "sphere":
		mat, err := buildMaterial(pe.Material)
		if err != nil {
			return nil, err
		}
		sp := shape.NewSphere(pe.Radius)
		objectToWorld := core.Translate(vec3From(pe.Center))
		return []*primitive.Primitive{primitive.NewPrimitive(sp, mat, objectToWorld, nil)}, nil
	case "mesh":
		if pe.File == "" {
			return nil, fmt.Errorf("mesh primitive missing file")
		}
		objectToWorld := core.Translate(vec3From(pe.Center))
		prims, err := LoadGLTFPrimitives(pe.File, objectToWorld)
		if err != nil {
			return nil, err
		}
		return prims, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", pe.Shape)
	}
}
