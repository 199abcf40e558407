// Package renderer draws debug line geometry with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/visicull/internal/engine/debug"
	"github.com/Faultbox/visicull/internal/engine/shader"
	"github.com/Faultbox/visicull/internal/logger"
)

const lineVertexSize = int32(unsafe.Sizeof(debug.LineVertex{}))

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vertexColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws batches of colored line segments.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	lineVAO uint32
	lineVBO uint32
	// Bytes currently allocated for lineVBO
	capacity int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.Compile(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	r.createLineBuffers()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawLines uploads verts and draws them as independent segments.
func (r *Renderer) DrawLines(viewProj mgl32.Mat4, verts []debug.LineVertex) {
	if len(verts) < 2 {
		return
	}

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	size := len(verts) * int(lineVertexSize)
	if size > r.capacity {
		// Grow geometrically
		r.capacity = max(size, 2*r.capacity)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&verts[0]))

	r.program.Use()
	r.program.SetMat4("uMVP", viewProj)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func (r *Renderer) createLineBuffers() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, lineVertexSize, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, lineVertexSize, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("line buffers created",
		zap.Uint32("vao", r.lineVAO),
		zap.Uint32("vbo", r.lineVBO),
	)
}
