package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"outie/internal/scene"
)

// InitFont rasterizes the HUD face into an atlas texture and sets up the
// text rendering pipeline.
func (r *Renderer) InitFont() error {
	face, err := scene.NewFace(scene.TextSize * float64(r.zoom))
	if err != nil {
		return err
	}
	atlas, err := scene.BuildAtlas(face)
	if err != nil {
		face.Close()
		return fmt.Errorf("font atlas: %w", err)
	}
	r.face = face
	r.atlas = atlas

	// Upload font atlas to GL texture.
	b := atlas.Image.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	r.fontTex = tex

	// Text shader program.
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxGlyphRender*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawText queues a HUD string at its world-unit baseline.
func (r *Renderer) DrawText(t scene.Text) {
	if r.atlas == nil {
		return
	}
	x := float32(t.X * float64(r.zoom))
	y := float32(t.Y * float64(r.zoom))
	r.textBuf = appendGlyphs(r.textBuf, r.atlas, t.Str, x, y, t.Col)
}

// appendGlyphs queues one textured quad per printable character, with the
// pen starting at baseline point (x, y) in screen pixels.
func appendGlyphs(buf []float32, a *scene.Atlas, s string, x, y float32, col scene.RGB) []float32 {
	b := a.Image.Bounds()
	aw, ah := float32(b.Dx()), float32(b.Dy())
	w, h := float32(a.CellW), float32(a.CellH)
	top := y - float32(a.Ascent)
	cr, cg, cb := col.Floats()

	for _, ch := range s {
		cell, ok := a.Cell(ch)
		if !ok {
			x += w
			continue
		}
		u0 := float32(cell.Min.X) / aw
		v0 := float32(cell.Min.Y) / ah
		u1 := float32(cell.Max.X) / aw
		v1 := float32(cell.Max.Y) / ah

		// Two triangles: TL, TR, BL then TR, BR, BL.
		buf = append(buf,
			x, top, u0, v0, cr, cg, cb, 1,
			x+w, top, u1, v0, cr, cg, cb, 1,
			x, top+h, u0, v1, cr, cg, cb, 1,
			x+w, top, u1, v0, cr, cg, cb, 1,
			x+w, top+h, u1, v1, cr, cg, cb, 1,
			x, top+h, u0, v1, cr, cg, cb, 1,
		)
		x += w
	}
	return buf
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	resW, resH := r.resolution()
	gl.Uniform2f(r.textURes, resW, resH)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
