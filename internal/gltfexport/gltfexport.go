// Package gltfexport writes a computed scene as a glTF document: polylines
// become line-strip meshes, markers become point meshes, and the
// orientation is stored as the rotation of the scene node.
package gltfexport

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
)

// Node names used in exported documents.
const (
	RotatedNode = "rotated"
	BaseNode    = "base"
)

// Options control what goes into the document.
type Options struct {
	IncludeBase bool // add an unrotated copy of the scene
}

type builder struct {
	doc       *gltf.Document
	materials map[color.NRGBA]int
}

// Build returns a document holding st. The rotated node carries the
// unit quaternion of st as its rotation over the base geometry, so a
// viewer reproduces st.Rotated.
func Build(st scene.State, opts Options) (*gltf.Document, error) {
	q, err := mathutil.Normalize(st.Quat)
	if err != nil {
		return nil, fmt.Errorf("gltfexport: %w", err)
	}

	b := &builder{doc: gltf.NewDocument(), materials: map[color.NRGBA]int{}}
	b.doc.Asset.Generator = "quat-scene-renderer"

	rot := b.addNode(RotatedNode, st.Base)
	b.doc.Nodes[rot].Rotation = [4]float64{q[0], q[1], q[2], q[3]}

	if opts.IncludeBase {
		b.addNode(BaseNode, st.Base)
	}
	return b.doc, nil
}

// Write builds the document and saves it to path. A .glb extension
// selects the binary container.
func Write(path string, st scene.State, opts Options) error {
	doc, err := Build(st, opts)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltfexport: save %s: %w", path, err)
	}
	return nil
}

func (b *builder) addNode(name string, s scene.Scene) int {
	mesh := &gltf.Mesh{Name: name}
	for _, l := range s.Lines {
		if len(l.Points) < 2 {
			continue
		}
		mesh.Primitives = append(mesh.Primitives, b.primitive(l.Points, l.Color, gltf.PrimitiveLineStrip))
	}
	for _, p := range s.Points {
		mesh.Primitives = append(mesh.Primitives, b.primitive([]mathutil.Vec3{p.Pos}, p.Color, gltf.PrimitivePoints))
	}

	b.doc.Meshes = append(b.doc.Meshes, mesh)
	b.doc.Nodes = append(b.doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(b.doc.Meshes) - 1),
	})
	idx := len(b.doc.Nodes) - 1
	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, idx)
	return idx
}

func (b *builder) primitive(pts []mathutil.Vec3, c color.NRGBA, mode gltf.PrimitiveMode) *gltf.Primitive {
	pos := make([][3]float32, len(pts))
	indices := make([]uint16, len(pts))
	for i, p := range pts {
		pos[i] = [3]float32{float32(p[0]), float32(p[1]), float32(p[2])}
		indices[i] = uint16(i)
	}
	return &gltf.Primitive{
		Mode:       mode,
		Indices:    gltf.Index(modeler.WriteIndices(b.doc, indices)),
		Attributes: map[string]int{gltf.POSITION: modeler.WritePosition(b.doc, pos)},
		Material:   gltf.Index(b.material(c)),
	}
}

// material returns the index of the material for c, adding it on first use.
func (b *builder) material(c color.NRGBA) int {
	if idx, ok := b.materials[c]; ok {
		return idx
	}
	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name:      fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		AlphaMode: gltf.AlphaOpaque,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255,
			},
		},
	})
	idx := len(b.doc.Materials) - 1
	b.materials[c] = idx
	return idx
}
