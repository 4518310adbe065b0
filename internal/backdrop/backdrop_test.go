package backdrop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 60), uint8(y * 80), 10, 255})
		}
	}
	path := filepath.Join(dir, "bg.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writePNG(t, t.TempDir())
	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.NRGBA{120, 80, 10, 255}, img.NRGBAAt(2, 1))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bg.bmp")
	require.NoError(t, os.WriteFile(bad, []byte{1, 2, 3}, 0o644))
	_, err = Load(bad)
	assert.Error(t, err, "unknown extension")

	corrupt := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o644))
	_, err = Load(corrupt)
	assert.Error(t, err, "corrupt png")
}

func TestToNRGBAOffsetOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 8))
	src.SetGray(5, 5, color.Gray{Y: 200})
	dst := toNRGBA(src)
	require.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	assert.Equal(t, color.NRGBA{200, 200, 200, 255}, dst.NRGBAAt(0, 0))
}

func TestCacheLoadsOnce(t *testing.T) {
	var calls atomic.Int64
	c := NewCache()
	c.load = func(path string) (*image.NRGBA, error) {
		calls.Add(1)
		return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := c.Get("a.png")
			assert.NoError(t, err)
			assert.NotNil(t, img)
		}()
	}
	wg.Wait()

	first, _ := c.Get("a.png")
	second, _ := c.Get("a.png")
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
	assert.GreaterOrEqual(t, calls.Load(), int64(1))
}

func TestCacheEmptyPathAndErrors(t *testing.T) {
	c := NewCache()
	img, err := c.Get("")
	assert.Nil(t, img)
	assert.NoError(t, err)

	_, err = c.Get(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.Equal(t, 1, c.Len())
}
