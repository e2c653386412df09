package renderer

// Shader sources are static data. Behavior lives in Go; these strings are
// uploaded verbatim and validated through Program's explicit error path.

// glowFS is the fullscreen backdrop: a soft radial gradient with a slow
// sinusoidal shimmer, drawn behind the field and torus effects.
const glowFS = `#version 330

in vec2 fragTexCoord;
in vec4 fragColor;

uniform float time;
uniform vec2 resolution;
uniform vec3 tint;

out vec4 finalColor;

void main() {
    vec2 uv = fragTexCoord;
    vec2 centered = uv - vec2(0.5);
    centered.x *= resolution.x / resolution.y;

    float d = length(centered);
    float glow = smoothstep(0.9, 0.0, d);

    float shimmer = sin(uv.x * 6.2831 + time * 0.3) * sin(uv.y * 4.7 + time * 0.23);
    glow *= 0.85 + 0.15 * shimmer;

    finalColor = vec4(tint * glow, 1.0) * fragColor;
}
`
