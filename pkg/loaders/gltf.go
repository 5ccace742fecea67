// Package loaders converts external asset formats (glTF meshes, YAML scene
// descriptions) into the core renderer's in-memory types. These are the
// "external collaborators" spec explicitly places outside the core: a
// rejected load here never produces a malformed scene for the core to trip
// over.
package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/material"
	"github.com/evhansen/lumentrace/pkg/primitive"
	"github.com/evhansen/lumentrace/pkg/shape"
	"github.com/evhansen/lumentrace/pkg/texture"
)

// LoadGLTFPrimitives opens a .gltf/.glb file and returns one primitive.Primitive
// per mesh primitive in the default scene, placed under objectToWorld. Only
// POSITION/NORMAL/indices are consulted; base color factor becomes a Matte
// material's solid-color albedo. Per spec §7, a mesh primitive without
// per-vertex normals is rejected rather than synthesized.
func LoadGLTFPrimitives(path string, objectToWorld core.Transform) ([]*primitive.Primitive, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lumentrace: gltf open %q: %w", path, err)
	}

	matCache := make([]material.Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		matCache[i] = materialFromGLTF(gm)
	}
	defaultMat := material.NewMatte(texture.NewSolidColor(core.NewColor(0.8, 0.8, 0.8)), nil)

	var prims []*primitive.Primitive

	var visit func(idx int, parent core.Transform)
	visit = func(idx int, parent core.Transform) {
		gn := doc.Nodes[idx]
		local := localTransform(gn)
		world := parent.Compose(local)

		if gn.Mesh != nil {
			gm := doc.Meshes[*gn.Mesh]
			for pi, gp := range gm.Primitives {
				tris, err := triangleMeshFromGLTF(doc, *gp)
				if err != nil {
					fmt.Printf("lumentrace: gltf mesh %d prim %d skipped: %v\n", *gn.Mesh, pi, err)
					continue
				}
				mat := defaultMat
				if gp.Material != nil && int(*gp.Material) < len(matCache) {
					mat = matCache[*gp.Material]
				}
				prims = append(prims, primitive.NewPrimitive(tris, mat, objectToWorld.Compose(world), nil))
			}
		}

		for _, c := range gn.Children {
			visit(int(c), world)
		}
	}

	roots := defaultSceneRoots(doc)
	for _, r := range roots {
		visit(r, core.Identity())
	}

	return prims, nil
}

func defaultSceneRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return intsFromIndices(doc.Scenes[*doc.Scene].Nodes)
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			hasParent[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func intsFromIndices(idx []uint32) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = int(v)
	}
	return out
}

func localTransform(gn *gltf.Node) core.Transform {
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()

	translate := core.Translate(core.Vec3{X: t[0], Y: t[1], Z: t[2]})
	rotate := core.RotateQuaternion(r[0], r[1], r[2], r[3])
	scale := core.Scale(core.Vec3{X: s[0], Y: s[1], Z: s[2]})

	return translate.Compose(rotate).Compose(scale)
}

func materialFromGLTF(gm *gltf.Material) material.Material {
	albedo := core.NewColor(0.8, 0.8, 0.8)
	if gm.PBRMetallicRoughness != nil {
		cf := gm.PBRMetallicRoughness.BaseColorFactorOrDefault()
		albedo = core.NewColor(core.Scalar(cf[0]), core.Scalar(cf[1]), core.Scalar(cf[2]))
	}
	return material.NewMatte(texture.NewSolidColor(albedo), nil)
}

// triangleMeshFromGLTF reads one glTF mesh primitive into a shape.TriangleMesh,
// rejecting it if it lacks per-vertex normals or isn't a triangle list.
func triangleMeshFromGLTF(doc *gltf.Document, gp gltf.Primitive) (*shape.TriangleMesh, error) {
	if gp.Mode != gltf.PrimitiveTriangles && gp.Mode != 0 {
		return nil, fmt.Errorf("unsupported primitive mode %v", gp.Mode)
	}

	posIdx, ok := gp.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("missing POSITION attribute")
	}
	rawPositions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	normIdx, ok := gp.Attributes[gltf.NORMAL]
	if !ok {
		return nil, fmt.Errorf("missing NORMAL attribute (core requires per-vertex normals)")
	}
	rawNormals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("normals: %w", err)
	}
	if len(rawNormals) != len(rawPositions) {
		return nil, fmt.Errorf("normal count %d does not match position count %d", len(rawNormals), len(rawPositions))
	}

	positions := make([]core.Point3, len(rawPositions))
	for i, p := range rawPositions {
		positions[i] = core.Point3{X: core.Scalar(p[0]), Y: core.Scalar(p[1]), Z: core.Scalar(p[2])}
	}
	normals := make([]core.Normal3, len(rawNormals))
	for i, n := range rawNormals {
		normals[i] = core.Normal3{X: core.Scalar(n[0]), Y: core.Scalar(n[1]), Z: core.Scalar(n[2])}
	}

	var indices []uint32
	if gp.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*gp.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	faces := make([]shape.TriangleIndices, len(indices)/3)
	for i := range faces {
		faces[i] = shape.TriangleIndices{
			int(indices[3*i]),
			int(indices[3*i+1]),
			int(indices[3*i+2]),
		}
	}

	return shape.NewTriangleMesh(positions, normals, faces), nil
}
