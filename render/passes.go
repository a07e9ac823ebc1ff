package render

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/orrery-sim/orrery"
)

// FrameContext is the read-only snapshot every pass consumes for one frame.
type FrameContext struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Time       float32 // accumulated render time, drives shader animation
	Paused     bool
}

// Pass is one self-contained visual layer. Passes are drawn in registration
// order; each leaves depth writes enabled and standard alpha blending on
// exit so the sequence composes. The order is blending-sensitive: starfield,
// opaque bodies, orbit lines, glow, rings and trails.
type Pass interface {
	Draw(ctx *FrameContext, bodies []*orrery.Body)
}

// modelMatrix positions and scales a unit mesh onto a body.
func modelMatrix(position mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// normalMatrix is the inverse-transpose of the model matrix.
func normalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return model.Inv().Transpose()
}

// skyView strips the translation from a view matrix so starfield geometry
// stays glued to the horizon regardless of camera position.
func skyView(view mgl32.Mat4) mgl32.Mat4 {
	sky := view
	sky.SetCol(3, mgl32.Vec4{0, 0, 0, view.At(3, 3)})
	return sky
}

// sortBackToFront orders bodies by descending distance from the eye so
// alpha-blended layers composite correctly.
func sortBackToFront(bodies []*orrery.Body, eye mgl32.Vec3) []*orrery.Body {
	sorted := make([]*orrery.Body, len(bodies))
	copy(sorted, bodies)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := sorted[i].Position.Sub(eye).Len()
		dj := sorted[j].Position.Sub(eye).Len()
		return di > dj
	})
	return sorted
}

// ─── Starfield ───

// StarfieldPass draws the background stars as additive points with depth
// fully disabled: the sky never occludes and is never occluded.
type StarfieldPass struct {
	Program *Program
	VAO     uint32
	Count   int32
}

// Draw implements Pass.
func (p *StarfieldPass) Draw(ctx *FrameContext, _ []*orrery.Body) {
	p.Program.Use()
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	p.Program.SetMat4("u_view", skyView(ctx.View))
	p.Program.SetMat4("u_projection", ctx.Projection)
	p.Program.SetFloat("u_time", ctx.Time)

	gl.BindVertexArray(p.VAO)
	gl.DrawArrays(gl.POINTS, 0, p.Count)
	gl.BindVertexArray(0)

	gl.Disable(gl.PROGRAM_POINT_SIZE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// ─── Opaque bodies ───

// BodyPass draws the star and planets as lit, depth-tested spheres. The
// star selects the self-illuminated shader branch; bodies without a loaded
// texture fall back to the flat-color branch.
type BodyPass struct {
	Program    *Program
	VAO        uint32
	IndexCount int32
	Textures   map[string]uint32
}

// Draw implements Pass.
func (p *BodyPass) Draw(ctx *FrameContext, bodies []*orrery.Body) {
	p.Program.Use()
	gl.BindVertexArray(p.VAO)

	// Frame-constant uniforms, set once outside the loop.
	p.Program.SetMat4("u_view", ctx.View)
	p.Program.SetMat4("u_projection", ctx.Projection)
	p.Program.SetVec3("u_view_pos", ctx.Eye)

	// The star is the light source.
	light := mgl32.Vec3{}
	for _, b := range bodies {
		if b.Elements().IsStar {
			light = b.Position
			break
		}
	}
	p.Program.SetVec3("u_light_pos", light)

	for _, b := range bodies {
		el := b.Elements()
		model := modelMatrix(b.Position, b.DisplayRadius)
		p.Program.SetMat4("u_model", model)
		p.Program.SetMat4("u_normal_matrix", normalMatrix(model))
		p.Program.SetVec3("u_color", mgl32.Vec3(el.Color))
		p.Program.SetBool("u_is_star", el.IsStar)

		tex, hasTexture := p.Textures[el.Name]
		p.Program.SetBool("u_has_texture", hasTexture)
		if hasTexture {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, tex)
			p.Program.SetInt("u_texture", 0)
		}
		gl.DrawElements(gl.TRIANGLES, p.IndexCount, gl.UNSIGNED_SHORT, nil)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// ─── Orbit paths ───

// OrbitPass draws one translucent line strip per planet, depth-tested so
// planets occlude their own paths but without writing depth.
type OrbitPass struct {
	Program *Program
	// VAO and vertex count per planet, in planet order.
	VAOs   []uint32
	Counts []int32
	Alpha  float32
}

// Draw implements Pass.
func (p *OrbitPass) Draw(ctx *FrameContext, bodies []*orrery.Body) {
	p.Program.Use()
	gl.DepthMask(false)

	p.Program.SetMat4("u_view", ctx.View)
	p.Program.SetMat4("u_projection", ctx.Projection)
	p.Program.SetFloat("u_alpha", p.Alpha)

	// Orbits are centred on the star so they track any system drift.
	center := mgl32.Vec3{}
	for _, b := range bodies {
		if b.Elements().IsStar {
			center = b.Position
			break
		}
	}
	p.Program.SetMat4("u_model", mgl32.Translate3D(center.X(), center.Y(), center.Z()))

	i := 0
	for _, b := range bodies {
		if b.Elements().IsStar {
			continue
		}
		if i < len(p.VAOs) {
			p.Program.SetVec3("u_color", mgl32.Vec3(b.Elements().Color))
			gl.BindVertexArray(p.VAOs[i])
			gl.DrawArrays(gl.LINE_STRIP, 0, p.Counts[i])
		}
		i++
	}
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// ─── Atmosphere glow ───

// GlowPass draws an enlarged translucent shell around each planet with an
// analytic rim falloff. Shells are sorted back-to-front so overlapping
// glows composite correctly.
type GlowPass struct {
	Program    *Program
	VAO        uint32
	IndexCount int32
	Scale      float32
	Alpha      float32
}

// Draw implements Pass.
func (p *GlowPass) Draw(ctx *FrameContext, bodies []*orrery.Body) {
	p.Program.Use()
	gl.DepthMask(false)
	gl.BindVertexArray(p.VAO)

	p.Program.SetMat4("u_view", ctx.View)
	p.Program.SetMat4("u_projection", ctx.Projection)
	p.Program.SetVec3("u_view_pos", ctx.Eye)
	p.Program.SetFloat("u_alpha", p.Alpha)

	for _, b := range sortBackToFront(bodies, ctx.Eye) {
		el := b.Elements()
		if el.IsStar {
			continue
		}
		model := modelMatrix(b.Position, b.DisplayRadius*p.Scale)
		p.Program.SetMat4("u_model", model)
		p.Program.SetMat4("u_normal_matrix", normalMatrix(model))
		p.Program.SetVec3("u_color", mgl32.Vec3(el.Color))
		gl.DrawElements(gl.TRIANGLES, p.IndexCount, gl.UNSIGNED_SHORT, nil)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// ─── Rings ───

// RingPass draws the annulus around ringed bodies, double-sided and
// alpha-blended.
type RingPass struct {
	Program    *Program
	VAO        uint32
	IndexCount int32
	Alpha      float32
}

// Draw implements Pass.
func (p *RingPass) Draw(ctx *FrameContext, bodies []*orrery.Body) {
	p.Program.Use()
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(p.VAO)

	p.Program.SetMat4("u_view", ctx.View)
	p.Program.SetMat4("u_projection", ctx.Projection)
	p.Program.SetFloat("u_alpha", p.Alpha)

	for _, b := range bodies {
		el := b.Elements()
		if !el.HasRings {
			continue
		}
		p.Program.SetMat4("u_model", modelMatrix(b.Position, b.DisplayRadius))
		p.Program.SetVec3("u_color", mgl32.Vec3(el.Color))
		gl.DrawElements(gl.TRIANGLES, p.IndexCount, gl.UNSIGNED_SHORT, nil)
	}

	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
}

// ─── Trails ───

// TrailPass draws each planet's recent path as an alpha-fading line strip.
// Trails only grow while the simulation is running.
type TrailPass struct {
	Program *Program
	// One trail per planet, in planet order.
	Trails []*Trail
}

// Draw implements Pass.
func (p *TrailPass) Draw(ctx *FrameContext, bodies []*orrery.Body) {
	p.Program.Use()
	gl.DepthMask(false)

	p.Program.SetMat4("u_view", ctx.View)
	p.Program.SetMat4("u_projection", ctx.Projection)

	i := 0
	for _, b := range bodies {
		if b.Elements().IsStar {
			continue
		}
		if i < len(p.Trails) {
			trail := p.Trails[i]
			if !ctx.Paused {
				trail.Push(b.Position)
			}
			if trail.Len() >= 2 {
				trail.upload()
				p.Program.SetVec3("u_color", mgl32.Vec3(b.Elements().Color))
				gl.BindVertexArray(trail.vao)
				gl.DrawArrays(gl.LINE_STRIP, 0, int32(trail.Len()))
			}
		}
		i++
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
}
