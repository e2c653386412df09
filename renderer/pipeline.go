// Package renderer provides the raylib-facing draw code for the background
// effects: the shader pipeline wrapper, viewport projection, and per-effect
// renderers. Everything above this package is GPU-free.
package renderer

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrContextUnavailable is returned when no render context exists at
// construction time. Effects treat it as a permanent condition: log a
// warning, disable themselves, and do no further work.
var ErrContextUnavailable = errors.New("render context unavailable")

// Program wraps a compiled and linked shader. Uniform locations are
// resolved once at construction; the per-frame path only uses the cached
// locations and never re-queries the pipeline.
type Program struct {
	name   string
	shader rl.Shader
	locs   map[string]int32
}

// NewProgram compiles and links a shader pair. An empty vertex source uses
// raylib's default vertex stage. Compile and link failures are permanent:
// the returned error is the only signal, there is no fallback program.
func NewProgram(name, vertexSrc, fragmentSrc string, uniforms ...string) (*Program, error) {
	if !rl.IsWindowReady() {
		return nil, ErrContextUnavailable
	}

	shader := rl.LoadShaderFromMemory(vertexSrc, fragmentSrc)
	if !rl.IsShaderValid(shader) {
		// Stage diagnostics land in the raylib log; the error carries the
		// program identity for the caller's own logging.
		rl.UnloadShader(shader)
		return nil, fmt.Errorf("shader %q failed to compile or link", name)
	}

	p := &Program{
		name:   name,
		shader: shader,
		locs:   make(map[string]int32, len(uniforms)),
	}
	for _, u := range uniforms {
		p.locs[u] = rl.GetShaderLocation(shader, u)
	}
	return p, nil
}

// SetFloat updates a float uniform through its cached location.
func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// SetVec2 updates a vec2 uniform through its cached location.
func (p *Program) SetVec2(name string, x, y float32) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{x, y}, rl.ShaderUniformVec2)
	}
}

// SetVec3 updates a vec3 uniform through its cached location.
func (p *Program) SetVec3(name string, x, y, z float32) {
	if loc, ok := p.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{x, y, z}, rl.ShaderUniformVec3)
	}
}

// Begin activates the program for subsequent draw calls.
func (p *Program) Begin() {
	rl.BeginShaderMode(p.shader)
}

// End deactivates the program.
func (p *Program) End() {
	rl.EndShaderMode()
}

// Unload releases the GPU program.
func (p *Program) Unload() {
	rl.UnloadShader(p.shader)
}
