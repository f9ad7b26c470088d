// Package glbackend shows a software-rendered frame in an OpenGL window.
package glbackend

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/wand/engine/assets"
	"github.com/hubastard/wand/engine/colors"
)

// attrib is one float vertex attribute of the fullscreen quad.
type attrib struct {
	index  uint32
	size   int32 // components
	offset int   // bytes into the vertex
}

// quadStride is the byte size of one quad vertex: pos (x,y), uv (u,v).
const quadStride = 4 * 4

var quadAttribs = []attrib{
	{index: 0, size: 2, offset: 0},
	{index: 1, size: 2, offset: 2 * 4},
}

// Presenter uploads an RGBA frame into a texture and draws it over the whole
// framebuffer. Transparent pixels show the clear colour.
type Presenter struct {
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	uFrame int32
	uClear int32

	clear colors.Color
	texW  int
	texH  int
}

// NewPresenter needs a current GL context.
func NewPresenter(clear colors.Color) (*Presenter, error) {
	p := &Presenter{clear: clear}
	if err := p.Init(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) Init() error {
	vs, err := assets.LoadShader("present.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("present.frag")
	if err != nil {
		return err
	}
	p.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	p.uFrame = gl.GetUniformLocation(p.program, gl.Str("uFrame\x00"))
	p.uClear = gl.GetUniformLocation(p.program, gl.Str("uClear\x00"))

	// Two triangles over clip space. v=0 is the top row of the uploaded image.
	verts := []float32{
		-1, 1, 0, 0,
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, -1, 1, 1,
		1, 1, 1, 0,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	for _, a := range quadAttribs {
		gl.EnableVertexAttribArray(a.index)
		gl.VertexAttribPointer(a.index, a.size, gl.FLOAT, false, quadStride, gl.PtrOffset(a.offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (p *Presenter) Shutdown() {
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
}

// Upload copies frame into the texture, reallocating it when the size
// changed.
func (p *Presenter) Upload(frame image.Image) {
	w, h, pix := assets.Pack(frame)
	if w == 0 || h == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if w != p.texW || h != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
		p.texW, p.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw clears the fbW×fbH framebuffer and blits the last uploaded frame.
func (p *Presenter) Draw(fbW, fbH int) {
	c := p.clear
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if p.texW == 0 {
		return
	}

	gl.UseProgram(p.program)
	gl.Uniform1i(p.uFrame, 0)
	gl.Uniform4f(p.uClear, c[0], c[1], c[2], c[3])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

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
