package render

// GLSL sources for the five shading techniques. The attribute and uniform
// names are the wire format between the orchestrator and the programs; the
// uniform lists passed to NewProgram must match these exactly.

const planetVert = `#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in vec3 a_normal;
layout(location = 2) in vec2 a_uv;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;
uniform mat4 u_normal_matrix;

out vec3 v_world;
out vec3 v_normal;
out vec2 v_uv;

void main() {
	vec4 world = u_model * vec4(a_position, 1.0);
	v_world = world.xyz;
	v_normal = mat3(u_normal_matrix) * a_normal;
	v_uv = a_uv;
	gl_Position = u_projection * u_view * world;
}
` + "\x00"

const planetFrag = `#version 410 core
in vec3 v_world;
in vec3 v_normal;
in vec2 v_uv;

uniform vec3 u_color;
uniform vec3 u_light_pos;
uniform vec3 u_view_pos;
uniform bool u_is_star;
uniform bool u_has_texture;
uniform sampler2D u_texture;

out vec4 frag;

void main() {
	vec3 base = u_has_texture ? texture(u_texture, v_uv).rgb : u_color;
	if (u_is_star) {
		// Self-illuminated: skip lighting entirely.
		frag = vec4(base, 1.0);
		return;
	}
	vec3 n = normalize(v_normal);
	vec3 l = normalize(u_light_pos - v_world);
	vec3 v = normalize(u_view_pos - v_world);
	float diff = max(dot(n, l), 0.0);
	vec3 h = normalize(l + v);
	float spec = pow(max(dot(n, h), 0.0), 32.0) * 0.2;
	vec3 lit = base * (0.08 + 0.92 * diff) + vec3(spec);
	frag = vec4(lit, 1.0);
}
` + "\x00"

const orbitVert = `#version 410 core
layout(location = 0) in vec3 a_position;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;

void main() {
	gl_Position = u_projection * u_view * u_model * vec4(a_position, 1.0);
}
` + "\x00"

const orbitFrag = `#version 410 core
uniform vec3 u_color;
uniform float u_alpha;

out vec4 frag;

void main() {
	frag = vec4(u_color, u_alpha);
}
` + "\x00"

const starVert = `#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in float a_brightness;

uniform mat4 u_view;
uniform mat4 u_projection;
uniform float u_time;

out float v_brightness;

void main() {
	// Slow per-star twinkle keyed off the position so stars desynchronize.
	float twinkle = 0.75 + 0.25 * sin(u_time * 3.0 + a_position.x);
	v_brightness = a_brightness * twinkle;
	gl_Position = u_projection * u_view * vec4(a_position, 1.0);
	gl_PointSize = 1.0 + a_brightness * 2.0;
}
` + "\x00"

const starFrag = `#version 410 core
in float v_brightness;

out vec4 frag;

void main() {
	frag = vec4(vec3(v_brightness), 1.0);
}
` + "\x00"

const glowVert = `#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in vec3 a_normal;
layout(location = 2) in vec2 a_uv;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;
uniform mat4 u_normal_matrix;

out vec3 v_world;
out vec3 v_normal;

void main() {
	vec4 world = u_model * vec4(a_position, 1.0);
	v_world = world.xyz;
	v_normal = mat3(u_normal_matrix) * a_normal;
	gl_Position = u_projection * u_view * world;
}
` + "\x00"

const glowFrag = `#version 410 core
in vec3 v_world;
in vec3 v_normal;

uniform vec3 u_color;
uniform vec3 u_view_pos;
uniform float u_alpha;

out vec4 frag;

void main() {
	// Analytic rim falloff: strongest at the silhouette, fading inward.
	vec3 n = normalize(v_normal);
	vec3 v = normalize(u_view_pos - v_world);
	float rim = pow(1.0 - abs(dot(n, v)), 2.0);
	frag = vec4(u_color, rim * u_alpha);
}
` + "\x00"

const ringVert = `#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in vec3 a_normal;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;

out vec3 v_local;

void main() {
	v_local = a_position;
	gl_Position = u_projection * u_view * u_model * vec4(a_position, 1.0);
}
` + "\x00"

const ringFrag = `#version 410 core
in vec3 v_local;

uniform vec3 u_color;
uniform float u_alpha;

out vec4 frag;

void main() {
	// Radial banding from the distance to the ring centre.
	float r = length(v_local.xz);
	float band = 0.6 + 0.4 * sin(r * 40.0);
	frag = vec4(u_color * band, u_alpha);
}
` + "\x00"

const trailVert = `#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in float a_alpha;

uniform mat4 u_view;
uniform mat4 u_projection;

out float v_alpha;

void main() {
	v_alpha = a_alpha;
	gl_Position = u_projection * u_view * vec4(a_position, 1.0);
}
` + "\x00"

const trailFrag = `#version 410 core
in float v_alpha;

uniform vec3 u_color;

out vec4 frag;

void main() {
	frag = vec4(u_color, v_alpha);
}
` + "\x00"
