package gltfexport

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
)

func computeState(t *testing.T) scene.State {
	t.Helper()
	st, err := scene.Compute(mathutil.EulerAngles{Pitch: 0.3, Yaw: -0.8, Roll: 1.1}, scene.Arrow(1))
	require.NoError(t, err)
	return st
}

func findNode(t *testing.T, doc *gltf.Document, name string) *gltf.Node {
	t.Helper()
	for _, n := range doc.Nodes {
		if n.Name == name {
			return n
		}
	}
	require.FailNow(t, "node not found", name)
	return nil
}

func TestWriteRoundTrip(t *testing.T) {
	st := computeState(t)
	for _, name := range []string{"scene.gltf", "scene.glb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, st, Options{IncludeBase: true}))
			doc, err := gltf.Open(path)
			require.NoError(t, err)
			require.Len(t, doc.Nodes, 2)
			require.Len(t, doc.Scenes[0].Nodes, 2)

			node := findNode(t, doc, RotatedNode)
			r := node.Rotation
			m, err := mathutil.QuatToMat3(mathutil.Quat{r[0], r[1], r[2], r[3]})
			require.NoError(t, err)

			require.NotNil(t, node.Mesh)
			mesh := doc.Meshes[*node.Mesh]
			require.Len(t, mesh.Primitives, len(st.Base.Lines)+len(st.Base.Points))

			// Line primitives come first, in scene order.
			for i, l := range st.Rotated.Lines {
				prim := mesh.Primitives[i]
				assert.Equal(t, gltf.PrimitiveLineStrip, prim.Mode, "line %d", i)

				pos, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes[gltf.POSITION]], nil)
				require.NoError(t, err)
				require.Len(t, pos, len(l.Points), "line %d", i)
				for j, p := range pos {
					got := mathutil.Rotate(m, mathutil.Vec3{float64(p[0]), float64(p[1]), float64(p[2])})
					assert.True(t, got.ApproxEqual(l.Points[j], 1e-5), "line %d point %d = %v, want %v", i, j, got, l.Points[j])
				}

				require.NotNil(t, prim.Material)
				f := doc.Materials[*prim.Material].PBRMetallicRoughness.BaseColorFactor
				require.NotNil(t, f)
				assert.InDelta(t, float64(l.Color.R)/255, f[0], 1e-9, "line %d red", i)
				assert.InDelta(t, float64(l.Color.B)/255, f[2], 1e-9, "line %d blue", i)
			}
		})
	}
}

func TestBuildSharesMaterials(t *testing.T) {
	st, err := scene.Compute(scene.Fixed(mathutil.QuatIdentity()), scene.AxisMarkers(1))
	require.NoError(t, err)
	doc, err := Build(st, Options{})
	require.NoError(t, err)

	colors := map[[4]uint8]bool{}
	for _, p := range st.Base.Points {
		colors[[4]uint8{p.Color.R, p.Color.G, p.Color.B, p.Color.A}] = true
	}
	for _, l := range st.Base.Lines {
		colors[[4]uint8{l.Color.R, l.Color.G, l.Color.B, l.Color.A}] = true
	}
	assert.Len(t, doc.Materials, len(colors))
	assert.Len(t, doc.Nodes, 1, "no base node without IncludeBase")
}

func TestBuildDegenerate(t *testing.T) {
	_, err := Build(scene.State{Base: scene.Arrow(1)}, Options{})
	assert.ErrorIs(t, err, mathutil.ErrDegenerateInput)
}
