package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Trail is a fixed-capacity ribbon of a planet's recent positions, drawn as
// an alpha-fading line strip. Points are appended as the clock advances and
// the oldest is dropped once the capacity is reached.
type Trail struct {
	points []mgl32.Vec3
	max    int

	vao      uint32
	vboPos   uint32
	vboAlpha uint32
}

// NewTrail returns an empty trail with the given capacity.
func NewTrail(max int) *Trail {
	if max < 2 {
		max = 2
	}
	return &Trail{max: max}
}

// Push appends a position, evicting the oldest point beyond capacity.
func (t *Trail) Push(p mgl32.Vec3) {
	if len(t.points) > 0 && t.points[len(t.points)-1] == p {
		// Paused frames repeat the same position; skip duplicates so the
		// trail does not erode while the simulation is frozen.
		return
	}
	t.points = append(t.points, p)
	if len(t.points) > t.max {
		t.points = t.points[1:]
	}
}

// Len returns the current number of trail points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Alphas returns the per-vertex alpha ramp: oldest fades to 0, newest is 1.
func (t *Trail) Alphas() []float32 {
	n := len(t.points)
	alphas := make([]float32, n)
	if n < 2 {
		return alphas
	}
	for i := range alphas {
		alphas[i] = float32(i) / float32(n-1)
	}
	return alphas
}

// alloc creates the GPU buffers sized for the full capacity.
func (t *Trail) alloc() error {
	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vboPos)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vboPos)
	gl.BufferData(gl.ARRAY_BUFFER, t.max*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &t.vboAlpha)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vboAlpha)
	gl.BufferData(gl.ARRAY_BUFFER, t.max*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return nil
}

// upload pushes the current points and alpha ramp into the dynamic buffers.
func (t *Trail) upload() {
	if len(t.points) < 2 {
		return
	}
	pos := flattenVec3(t.points)
	alphas := t.Alphas()
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vboPos)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(pos)*4, gl.Ptr(pos))
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vboAlpha)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(alphas)*4, gl.Ptr(alphas))
}
