package orrery

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = Config{}
)

// Config centralizes every tuning parameter of the simulation and renderer.
// All values have defaults; an optional conf.toml in the directory pointed to
// by ORRERY_CONFIG overrides them. None of these are validated beyond the
// defensive clamps at their use sites.
type Config struct {
	// Scene scaling.
	AUScale         float32 // display units per astronomical unit
	RadiusLogScale  float32 // multiplier on log10-scaled body radii
	RadiusLogFloor  float32 // minimum log-scaled radius before the multiplier
	SunDisplayRadii float32 // fixed display radius of the star

	// Orbit paths.
	OrbitSegments int

	// Camera.
	CameraAzimuth     float32
	CameraPolar       float32
	CameraDistance    float32
	CameraMinDistance float32
	CameraMaxDistance float32
	CameraFOVDegrees  float32
	CameraNear        float32
	CameraFar         float32
	RotateSensitivity float32
	ZoomSensitivity   float32
	PolarMargin       float32 // keeps the polar angle inside (margin, π-margin)
	LerpSpeed         float32

	// Starfield.
	StarCount  int
	StarRadius float32

	// Saturn ring annulus, in units of the body display radius.
	RingInner    float32
	RingOuter    float32
	RingSegments int

	// Sphere mesh resolution.
	SphereSegments int
	SphereRings    int

	// Trails.
	TrailMaxPoints int

	// Atmosphere glow shell scale relative to the body radius.
	GlowScale float32
	GlowAlpha float32

	// Simulation.
	DaysPerSecond float64
	MinSpeed      float64
	MaxSpeed      float64
	MaxFrameDT    float64

	// Galactic drift of the whole system, display units per simulated day.
	DriftEnabled bool
	DriftSpeed   float32
}

func setDefaults() {
	viper.SetDefault("scale.au", 40.0)
	viper.SetDefault("scale.radius_log_scale", 0.8)
	viper.SetDefault("scale.radius_log_floor", 0.3)
	viper.SetDefault("scale.sun_display_radii", 3.0)
	viper.SetDefault("orbit.segments", 128)
	viper.SetDefault("camera.azimuth", 0.3)
	viper.SetDefault("camera.polar", 1.0)
	viper.SetDefault("camera.distance", 200.0)
	viper.SetDefault("camera.min_distance", 5.0)
	viper.SetDefault("camera.max_distance", 1500.0)
	viper.SetDefault("camera.fov_degrees", 45.0)
	viper.SetDefault("camera.near", 0.1)
	viper.SetDefault("camera.far", 5000.0)
	viper.SetDefault("camera.rotate_sensitivity", 0.005)
	viper.SetDefault("camera.zoom_sensitivity", 0.001)
	viper.SetDefault("camera.polar_margin", 0.17)
	viper.SetDefault("camera.lerp_speed", 4.0)
	viper.SetDefault("starfield.count", 3000)
	viper.SetDefault("starfield.radius", 2000.0)
	viper.SetDefault("ring.inner", 1.3)
	viper.SetDefault("ring.outer", 2.3)
	viper.SetDefault("ring.segments", 64)
	viper.SetDefault("sphere.segments", 32)
	viper.SetDefault("sphere.rings", 24)
	viper.SetDefault("trail.max_points", 120)
	viper.SetDefault("glow.scale", 1.35)
	viper.SetDefault("glow.alpha", 0.35)
	viper.SetDefault("sim.days_per_second", 1.0)
	viper.SetDefault("sim.min_speed", 0.01)
	viper.SetDefault("sim.max_speed", 1024.0)
	viper.SetDefault("sim.max_frame_dt", 0.1)
	viper.SetDefault("drift.enabled", false)
	viper.SetDefault("drift.speed", 5.086)
}

// Conf returns the loaded configuration, reading conf.toml on first use.
func Conf() Config {
	if cfgLoaded {
		return config
	}
	setDefaults()
	if confPath := os.Getenv("ORRERY_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		// A missing or unreadable file means defaults apply. Only tuning
		// values live here, so this is never fatal.
		viper.ReadInConfig()
	}
	config = Config{
		AUScale:           float32(viper.GetFloat64("scale.au")),
		RadiusLogScale:    float32(viper.GetFloat64("scale.radius_log_scale")),
		RadiusLogFloor:    float32(viper.GetFloat64("scale.radius_log_floor")),
		SunDisplayRadii:   float32(viper.GetFloat64("scale.sun_display_radii")),
		OrbitSegments:     viper.GetInt("orbit.segments"),
		CameraAzimuth:     float32(viper.GetFloat64("camera.azimuth")),
		CameraPolar:       float32(viper.GetFloat64("camera.polar")),
		CameraDistance:    float32(viper.GetFloat64("camera.distance")),
		CameraMinDistance: float32(viper.GetFloat64("camera.min_distance")),
		CameraMaxDistance: float32(viper.GetFloat64("camera.max_distance")),
		CameraFOVDegrees:  float32(viper.GetFloat64("camera.fov_degrees")),
		CameraNear:        float32(viper.GetFloat64("camera.near")),
		CameraFar:         float32(viper.GetFloat64("camera.far")),
		RotateSensitivity: float32(viper.GetFloat64("camera.rotate_sensitivity")),
		ZoomSensitivity:   float32(viper.GetFloat64("camera.zoom_sensitivity")),
		PolarMargin:       float32(viper.GetFloat64("camera.polar_margin")),
		LerpSpeed:         float32(viper.GetFloat64("camera.lerp_speed")),
		StarCount:         viper.GetInt("starfield.count"),
		StarRadius:        float32(viper.GetFloat64("starfield.radius")),
		RingInner:         float32(viper.GetFloat64("ring.inner")),
		RingOuter:         float32(viper.GetFloat64("ring.outer")),
		RingSegments:      viper.GetInt("ring.segments"),
		SphereSegments:    viper.GetInt("sphere.segments"),
		SphereRings:       viper.GetInt("sphere.rings"),
		TrailMaxPoints:    viper.GetInt("trail.max_points"),
		GlowScale:         float32(viper.GetFloat64("glow.scale")),
		GlowAlpha:         float32(viper.GetFloat64("glow.alpha")),
		DaysPerSecond:     viper.GetFloat64("sim.days_per_second"),
		MinSpeed:          viper.GetFloat64("sim.min_speed"),
		MaxSpeed:          viper.GetFloat64("sim.max_speed"),
		MaxFrameDT:        viper.GetFloat64("sim.max_frame_dt"),
		DriftEnabled:      viper.GetBool("drift.enabled"),
		DriftSpeed:        float32(viper.GetFloat64("drift.speed")),
	}
	cfgLoaded = true
	return config
}
