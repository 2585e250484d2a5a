package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/iui/engine/colors"
	"github.com/hubastard/iui/engine/core"
)

// RendererGL draws one solid quad per call, in window pixels with the origin
// at the top-left corner. It implements core.Renderer and paint.Renderer.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32

	uViewport int32
	uCenter   int32
	uSize     int32
	uRotation int32
	uColor    int32

	width, height int
	quads         int // drawn since the last Clear
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uViewport = gl.GetUniformLocation(r.program, gl.Str("uViewport\x00"))
	r.uCenter = gl.GetUniformLocation(r.program, gl.Str("uCenter\x00"))
	r.uSize = gl.GetUniformLocation(r.program, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(r.program, gl.Str("uRotation\x00"))
	r.uColor = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))

	// Unit quad around the origin, drawn as a triangle strip.
	verts := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		-0.5, 0.5,
		0.5, 0.5,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w, h := r.win.FramebufferSize()
	r.Resize(w, h)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	r.quads = 0
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawQuad implements paint.Renderer.
func (r *RendererGL) DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32) {
	if w <= 0 || h <= 0 || color[3] <= 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(r.uViewport, float32(r.width), float32(r.height))
	gl.Uniform2f(r.uCenter, cx, cy)
	gl.Uniform2f(r.uSize, w, h)
	gl.Uniform1f(r.uRotation, rotation)
	gl.Uniform4f(r.uColor, color[0], color[1], color[2], color[3])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.quads++
}

// Quads reports how many quads were drawn since the last Clear.
func (r *RendererGL) Quads() int { return r.quads }

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
uniform vec2 uViewport;
uniform vec2 uCenter;
uniform vec2 uSize;
uniform float uRotation;
void main() {
    vec2 p = aPos * uSize;
    float c = cos(uRotation);
    float s = sin(uRotation);
    p = vec2(p.x*c - p.y*s, p.x*s + p.y*c) + uCenter;
    vec2 ndc = p / uViewport * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    FragColor = uColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
