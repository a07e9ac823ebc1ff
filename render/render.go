// Package render owns the GPU side of the visualizer: program compilation,
// geometry upload, and the blending-sensitive draw sequence. It holds
// non-owning read access to the simulation state and consumes it one frame
// at a time; all GPU resources are created once at startup.
package render

import (
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	kitlog "github.com/go-kit/kit/log"

	"github.com/orrery-sim/orrery"
)

// Renderer sequences the render passes over persistent GPU resources. It
// keeps no per-frame state beyond the accumulated shader-animation time.
type Renderer struct {
	passes   []Pass
	textures map[string]uint32
	logger   kitlog.Logger

	width, height int
	renderTime    float32
}

// New compiles every shading technique, uploads all static geometry, and
// configures global GL state. Any program or buffer failure here is fatal:
// the system cannot render without its techniques, so the error is returned
// once and no recovery is attempted.
func New(bodies []*orrery.Body, width, height int, logger kitlog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	cfg := orrery.Conf()

	planetProg, err := NewProgram("planet", planetVert, planetFrag, []string{
		"u_model", "u_view", "u_projection", "u_normal_matrix",
		"u_color", "u_light_pos", "u_view_pos",
		"u_is_star", "u_has_texture", "u_texture",
	})
	if err != nil {
		return nil, err
	}
	orbitProg, err := NewProgram("orbit", orbitVert, orbitFrag, []string{
		"u_model", "u_view", "u_projection", "u_color", "u_alpha",
	})
	if err != nil {
		return nil, err
	}
	starProg, err := NewProgram("star", starVert, starFrag, []string{
		"u_view", "u_projection", "u_time",
	})
	if err != nil {
		return nil, err
	}
	glowProg, err := NewProgram("glow", glowVert, glowFrag, []string{
		"u_model", "u_view", "u_projection", "u_normal_matrix",
		"u_color", "u_view_pos", "u_alpha",
	})
	if err != nil {
		return nil, err
	}
	ringProg, err := NewProgram("ring", ringVert, ringFrag, []string{
		"u_model", "u_view", "u_projection", "u_color", "u_alpha",
	})
	if err != nil {
		return nil, err
	}
	trailProg, err := NewProgram("trail", trailVert, trailFrag, []string{
		"u_view", "u_projection", "u_color",
	})
	if err != nil {
		return nil, err
	}

	sphereVAO, sphereCount, err := meshVAO(GenerateSphere(cfg.SphereSegments, cfg.SphereRings))
	if err != nil {
		return nil, err
	}
	ringVAO, ringCount, err := meshVAO(GenerateRing(cfg.RingInner, cfg.RingOuter, cfg.RingSegments))
	if err != nil {
		return nil, err
	}
	starVAO, starCount, err := starfieldVAO(GenerateStarfield(
		rand.New(rand.NewSource(1)), cfg.StarCount, cfg.StarRadius))
	if err != nil {
		return nil, err
	}

	// One orbit line VAO and one trail per planet, in planet order.
	var orbitVAOs []uint32
	var orbitCounts []int32
	var trails []*Trail
	for _, b := range bodies {
		if b.Elements().IsStar {
			continue
		}
		vao, count, err := lineVAO(b.Path)
		if err != nil {
			return nil, err
		}
		orbitVAOs = append(orbitVAOs, vao)
		orbitCounts = append(orbitCounts, count)

		trail := NewTrail(cfg.TrailMaxPoints)
		if err := trail.alloc(); err != nil {
			return nil, err
		}
		trails = append(trails, trail)
	}

	// Global GL state: canonical between passes.
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.04, 0.04, 0.1, 1.0)

	textures := make(map[string]uint32)

	r := &Renderer{
		textures: textures,
		logger:   logger,
		width:    width,
		height:   height,
		// Pass order is the blending contract: backdrop first, opaque
		// geometry, then the translucent layers that must not write depth.
		passes: []Pass{
			&StarfieldPass{Program: starProg, VAO: starVAO, Count: starCount},
			&BodyPass{Program: planetProg, VAO: sphereVAO, IndexCount: sphereCount, Textures: textures},
			&OrbitPass{Program: orbitProg, VAOs: orbitVAOs, Counts: orbitCounts, Alpha: 0.35},
			&GlowPass{Program: glowProg, VAO: sphereVAO, IndexCount: sphereCount, Scale: cfg.GlowScale, Alpha: cfg.GlowAlpha},
			&RingPass{Program: ringProg, VAO: ringVAO, IndexCount: ringCount, Alpha: 0.55},
			&TrailPass{Program: trailProg, Trails: trails},
		},
	}
	logger.Log("level", "info", "subsys", "render", "status", "initialized",
		"passes", len(r.passes), "width", width, "height", height)
	return r, nil
}

// SetTextures installs the loaded texture handles. Bodies without an entry
// keep flat-color shading.
func (r *Renderer) SetTextures(textures map[string]uint32) {
	for name, tex := range textures {
		r.textures[name] = tex
	}
}

// Render draws one complete frame. It reads the simulation and camera state
// but never mutates them.
func (r *Renderer) Render(bodies []*orrery.Body, cam *orrery.Camera, paused bool, dt float32) {
	r.renderTime += dt
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := FrameContext{
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		Eye:        cam.EyePosition(),
		Time:       r.renderTime,
		Paused:     paused,
	}
	for _, pass := range r.passes {
		pass.Draw(&ctx, bodies)
	}
}

// Resize updates the viewport and camera aspect. Safe to call repeatedly;
// it disturbs neither simulation nor camera orientation.
func (r *Renderer) Resize(width, height int, cam *orrery.Camera) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	cam.SetAspect(width, height)
}
