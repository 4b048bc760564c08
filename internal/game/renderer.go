package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"

	"outie/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Floats per vertex and per quad in the rect stream: pos(2) + color(4), 6 vertices.
const (
	rectVertFloats = 6
	rectQuadFloats = rectVertFloats * 6
)

// Renderer paints scene frames with two programs: flat colored quads and
// font-atlas text. All coordinates are logical screen pixels (world * zoom).
type Renderer struct {
	zoom int

	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectURes int32
	rectBuf  []float32

	// Font/text rendering.
	face         font.Face
	atlas        *scene.Atlas
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer(zoom int) (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	r := &Renderer{zoom: zoom, rectProg: rectProg}

	// Rect VAO/VBO: streaming triangles, per-vertex pos(2) + color(4).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(rectVertFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxRectRender*rectQuadFloats*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.rectVAO = vao
	r.rectVBO = vbo

	gl.UseProgram(rectProg)
	r.rectURes = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.face != nil {
		r.face.Close()
	}
}

// Face is the HUD face, shared with screenshots.
func (r *Renderer) Face() font.Face { return r.face }

func (r *Renderer) resolution() (float32, float32) {
	return float32(WorldWidth * r.zoom), float32(WorldHeight * r.zoom)
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := scene.Palette.Background.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawFrame paints rects, HUD text, the end-of-run overlay and the panel.
func (r *Renderer) DrawFrame(f *scene.Frame) {
	for _, rc := range f.Rects {
		r.rectBuf = appendRect(r.rectBuf, rc.Screen(r.zoom), rc.Col, 1)
	}
	r.FlushRects()

	for _, t := range f.HUD {
		r.DrawText(t)
	}
	r.FlushText()

	if !f.Ended {
		return
	}
	full := image.Rect(0, 0, WorldWidth*r.zoom, WorldHeight*r.zoom)
	r.rectBuf = appendRect(r.rectBuf, full, scene.Palette.Overlay, scene.OverlayAlpha)
	r.FlushRects()

	for _, t := range f.Panel {
		r.DrawText(t)
	}
	r.FlushText()
}

// appendRect queues one quad as two triangles: TL, TR, BL then TR, BR, BL.
func appendRect(buf []float32, rc image.Rectangle, col scene.RGB, alpha float32) []float32 {
	x0, y0 := float32(rc.Min.X), float32(rc.Min.Y)
	x1, y1 := float32(rc.Max.X), float32(rc.Max.Y)
	cr, cg, cb := col.Floats()
	return append(buf,
		x0, y0, cr, cg, cb, alpha,
		x1, y0, cr, cg, cb, alpha,
		x0, y1, cr, cg, cb, alpha,
		x1, y0, cr, cg, cb, alpha,
		x1, y1, cr, cg, cb, alpha,
		x0, y1, cr, cg, cb, alpha,
	)
}

// FlushRects draws all buffered quads and clears the buffer.
func (r *Renderer) FlushRects() {
	if len(r.rectBuf) == 0 {
		return
	}
	count := len(r.rectBuf) / rectQuadFloats
	if count > MaxRectRender {
		count = MaxRectRender
	}

	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)

	resW, resH := r.resolution()
	gl.Uniform2f(r.rectURes, resW, resH)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*rectQuadFloats*4, gl.Ptr(r.rectBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count*6))

	gl.Disable(gl.BLEND)
	r.rectBuf = r.rectBuf[:0]
}
