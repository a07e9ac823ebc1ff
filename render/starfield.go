package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GenerateStarfield distributes count stars uniformly on a sphere of the
// given radius. Each star is 4 floats: position.xyz plus a brightness in
// [0.3, 1.0]. The acos trick keeps the distribution uniform over the sphere
// rather than bunching at the poles.
func GenerateStarfield(rng *rand.Rand, count int, radius float32) []float32 {
	data := make([]float32, 0, count*4)
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(rng.Float64()*2 - 1)
		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		data = append(data,
			radius*float32(sinPhi*cosTheta),
			radius*float32(cosPhi),
			radius*float32(sinPhi*sinTheta),
			rng.Float32()*0.7+0.3,
		)
	}
	return data
}

// starfieldVAO uploads the star points and returns the VAO and star count.
func starfieldVAO(data []float32) (uint32, int32, error) {
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

	const stride = 4 * 4
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, int32(len(data) / 4), nil
}
