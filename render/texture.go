package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	kitlog "github.com/go-kit/kit/log"

	"github.com/orrery-sim/orrery"
)

// LoadTextures decodes and uploads one texture per body that names one.
// A body whose texture is missing or undecodable simply keeps flat-color
// shading: the simulation stays fully correct without it, so this is a
// logged warning, never a failure.
func LoadTextures(dir string, bodies []*orrery.Body, logger kitlog.Logger) map[string]uint32 {
	textures := make(map[string]uint32)
	for _, b := range bodies {
		el := b.Elements()
		if el.Texture == "" {
			continue
		}
		tex, err := loadTexture(filepath.Join(dir, el.Texture))
		if err != nil {
			logger.Log("level", "warning", "subsys", "texture", "body", el.Name, "err", err, "fallback", "flat color")
			continue
		}
		textures[el.Name] = tex
		logger.Log("level", "debug", "subsys", "texture", "body", el.Name, "status", "loaded")
	}
	return textures
}

func loadTexture(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %s", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}
