package render

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds CPU-side interleaved vertex data and u16 indices before GPU
// upload.
type Mesh struct {
	Vertices []float32
	Indices  []uint16
	// Floats per vertex: 8 for pos+norm+uv spheres, 6 for pos+norm rings.
	Stride int
}

// GenerateSphere builds a UV sphere of unit radius. Vertices interleave
// position, normal and equirectangular UV (8 floats). On a unit sphere the
// normal equals the position.
func GenerateSphere(segments, rings int) Mesh {
	var vertices []float32
	var indices []uint16

	for y := 0; y <= rings; y++ {
		v := float32(y) / float32(rings)
		phi := float64(v) * math.Pi
		sinPhi, cosPhi := math.Sincos(phi)
		for x := 0; x <= segments; x++ {
			u := float32(x) / float32(segments)
			theta := float64(u) * 2 * math.Pi
			sinTheta, cosTheta := math.Sincos(theta)

			px := float32(sinPhi * cosTheta)
			py := float32(cosPhi)
			pz := float32(sinPhi * sinTheta)
			vertices = append(vertices,
				px, py, pz, // position
				px, py, pz, // normal
				u, v, // uv
			)
		}
	}

	for y := 0; y < rings; y++ {
		for x := 0; x < segments; x++ {
			a := uint16(y*(segments+1) + x)
			b := a + uint16(segments) + 1
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return Mesh{Vertices: vertices, Indices: indices, Stride: 8}
}

// GenerateRing builds a flat annulus in the XZ plane with up-facing normals
// (6 floats per vertex). Radii are in units of the host body's display
// radius.
func GenerateRing(inner, outer float32, segments int) Mesh {
	var vertices []float32
	var indices []uint16

	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		sinA, cosA := math.Sincos(angle)
		c, s := float32(cosA), float32(sinA)
		vertices = append(vertices,
			inner*c, 0, inner*s, 0, 1, 0,
			outer*c, 0, outer*s, 0, 1, 0,
		)
	}
	for i := 0; i < segments; i++ {
		base := uint16(i * 2)
		indices = append(indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	return Mesh{Vertices: vertices, Indices: indices, Stride: 6}
}

// meshVAO uploads an indexed mesh and returns the VAO and index count.
func meshVAO(m Mesh) (uint32, int32, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, 0, fmt.Errorf("vertex array allocation failed")
	}
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(m.Stride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	if m.Stride >= 8 {
		gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(2)
	}

	var ibo uint32
	gl.GenBuffers(1, &ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return vao, int32(len(m.Indices)), nil
}

// lineVAO uploads a line strip and returns the VAO and vertex count.
func lineVAO(points []mgl32.Vec3) (uint32, int32, error) {
	data := flattenVec3(points)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, 0, fmt.Errorf("vertex array allocation failed")
	}
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return vao, int32(len(points)), nil
}

// flattenVec3 packs Vec3 points into a tight float array for upload.
func flattenVec3(points []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(points)*3)
	for _, p := range points {
		data = append(data, p.X(), p.Y(), p.Z())
	}
	return data
}
