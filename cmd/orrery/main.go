package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	kitlog "github.com/go-kit/kit/log"

	"github.com/orrery-sim/orrery"
	"github.com/orrery-sim/orrery/render"
)

// This binary owns the window and the event loop: it translates GLFW events
// into engine commands and hands the resulting state to the renderer once per
// frame.

const dateFormat = "2006-01-02"

var (
	width      int
	height     int
	textureDir string
	verbose    bool
)

func init() {
	// GLFW and GL demand the main thread.
	runtime.LockOSThread()

	flag.IntVar(&width, "width", 1280, "initial window width in pixels")
	flag.IntVar(&height, "height", 800, "initial window height in pixels")
	flag.StringVar(&textureDir, "textures", "assets", "directory holding body textures (missing files fall back to flat colors)")
	flag.BoolVar(&verbose, "verbose", false, "log per-subsystem debug output")
}

// titleSink throttles telemetry into the window title bar.
type titleSink struct {
	window *glfw.Window
	last   time.Time
}

// Emit implements orrery.EventSink.
func (s *titleSink) Emit(stats orrery.FrameStats) {
	now := time.Now()
	if now.Sub(s.last) < 250*time.Millisecond {
		return
	}
	s.last = now
	state := fmt.Sprintf("%.2f days/s", stats.DaysPerSecond)
	if stats.Paused {
		state = "paused"
	}
	s.window.SetTitle(fmt.Sprintf("Orrery | %s | %s | %.0f fps",
		stats.Date.Format(dateFormat), state, stats.FPS))
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	if !verbose {
		logger = levelInfoOnly(logger)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %s", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, "Orrery", nil, nil)
	if err != nil {
		log.Fatalf("window: %s", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("gl: %s", err)
	}
	logger.Log("level", "info", "subsys", "main", "gl", gl.GoStr(gl.GetString(gl.VERSION)))

	// Framebuffer size may differ from window size on HiDPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()

	sys := orrery.NewSystem(orrery.SolarSystem())
	cam := orrery.NewCamera(float32(fbWidth) / float32(fbHeight))
	engine := orrery.NewEngine(sys, cam, &titleSink{window: window}, logger)
	renderer, err := render.New(sys.Bodies, fbWidth, fbHeight, logger)
	if err != nil {
		log.Fatalf("renderer: %s", err)
	}
	renderer.SetTextures(render.LoadTextures(textureDir, sys.Bodies, logger))

	installCallbacks(window, engine, renderer)

	// The first frame has no predecessor; assume a vsync'd 60 Hz step.
	last := glfw.GetTime()
	dt := 1.0 / 60.0
	for !window.ShouldClose() {
		engine.Tick(dt)
		renderer.Render(sys.Bodies, cam, engine.IsPaused(), float32(dt))
		window.SwapBuffers()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt = now - last
		last = now
	}
}

// installCallbacks wires GLFW events to engine commands. Dragging rotates,
// scrolling zooms, space pauses, +/- scale time, R rewinds, digits select a
// body to follow, escape or C returns focus to the star.
func installCallbacks(window *glfw.Window, engine *orrery.Engine, renderer *render.Renderer) {
	var dragging bool
	var lastX, lastY float64

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		dragging = action == glfw.Press
		if dragging {
			lastX, lastY = w.GetCursorPos()
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !dragging {
			lastX, lastY = x, y
			return
		}
		engine.Drag(float32(x-lastX), float32(y-lastY))
		lastX, lastY = x, y
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		// Scroll up moves closer.
		engine.Zoom(float32(-yoff) * 100)
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch {
		case key == glfw.KeySpace:
			engine.TogglePause()
		case key == glfw.KeyEqual || key == glfw.KeyKPAdd:
			engine.AdjustSpeed(2)
		case key == glfw.KeyMinus || key == glfw.KeyKPSubtract:
			engine.AdjustSpeed(0.5)
		case key == glfw.KeyR:
			engine.ResetTime()
		case key == glfw.KeyEscape || key == glfw.KeyC:
			engine.ClearSelection()
		case key >= glfw.Key0 && key <= glfw.Key9:
			engine.SelectBody(int(key - glfw.Key0))
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		renderer.Resize(w, h, engine.Camera())
		engine.Resize(w, h)
	})
}

// levelInfoOnly drops debug records so the default output stays quiet.
func levelInfoOnly(next kitlog.Logger) kitlog.Logger {
	return kitlog.LoggerFunc(func(keyvals ...interface{}) error {
		for i := 0; i+1 < len(keyvals); i += 2 {
			if keyvals[i] == "level" && keyvals[i+1] == "debug" {
				return nil
			}
		}
		return next.Log(keyvals...)
	})
}
