// Package canvasrenderer 基于 github.com/tdewolff/canvas 绘制盒子树并输出 PDF，
// 同时向布局层提供字形度量（font.Provider）。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/chalk/atom"
	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/font"
	"github.com/ByLCY/chalk/fonts"
	"github.com/ByLCY/chalk/renderer"
)

// Renderer 持有已装载的字体族，字体标识即装载顺序下标。
type Renderer struct {
	baseDir string

	fontMu   sync.Mutex
	families []*canvas.FontFamily
	byName   map[string]font.ID
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ font.Provider     = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	BaseDir string // 相对字体路径的根目录
}

// NewRenderer creates a canvas-based renderer rooted at baseDir for resolving fonts.
func NewRenderer(baseDir string) *Renderer {
	return &Renderer{baseDir: baseDir, byName: map[string]font.ID{}}
}

// LoadFont 装载一份字体并返回其标识，同名字体直接复用已装载的族。
// src 支持 "builtin:名字" 与磁盘路径（相对路径基于 baseDir 解析）。
func (r *Renderer) LoadFont(name, src string) (font.ID, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if id, ok := r.byName[name]; ok {
		return id, nil
	}

	path := src
	if !strings.HasPrefix(src, "builtin:") && r.baseDir != "" && !filepath.IsAbs(src) {
		path = filepath.Join(r.baseDir, src)
	}
	data, err := fonts.Load(path)
	if err != nil {
		return font.NoFont, err
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return font.NoFont, fmt.Errorf("装载字体 %s 失败: %w", name, err)
	}
	id := font.ID(len(r.families))
	r.families = append(r.families, family)
	r.byName[name] = id
	return id, nil
}

func (r *Renderer) face(id font.ID, sizePt float64, col color.Color) (*canvas.FontFace, bool) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if id < 0 || int(id) >= len(r.families) {
		return nil, false
	}
	return r.families[id].Face(sizePt, col, canvas.FontRegular, canvas.FontNormal), true
}

// Glyph 实现 font.Provider。canvas 不暴露逐字形的高深，
// 用字体面的上升/下降部近似。
func (r *Renderer) Glyph(id font.ID, ru rune, size float64) (font.Glyph, bool) {
	face, ok := r.face(id, size, canvas.Black)
	if !ok {
		return font.Glyph{}, false
	}
	w := face.TextWidth(string(ru))
	if w <= 0 && ru != ' ' {
		return font.Glyph{}, false
	}
	m := face.Metrics()
	return font.Glyph{
		Advance: toPt(w),
		Height:  toPt(m.Ascent),
		Depth:   toPt(m.Descent),
	}, true
}

// Kern 实现 font.Provider：字距取自成对测量与单独测量的差。
func (r *Renderer) Kern(id font.ID, prev, next rune, size float64) float64 {
	face, ok := r.face(id, size, canvas.Black)
	if !ok {
		return 0
	}
	pair := face.TextWidth(string(prev) + string(next))
	return toPt(pair - face.TextWidth(string(prev)) - face.TextWidth(string(next)))
}

// Em 实现 font.Provider。
func (r *Renderer) Em(id font.ID, size float64) float64 {
	face, ok := r.face(id, size, canvas.Black)
	if !ok {
		return 0
	}
	return toPt(face.TextWidth("M"))
}

// Ex 实现 font.Provider。
func (r *Renderer) Ex(id font.ID, size float64) float64 {
	face, ok := r.face(id, size, canvas.Black)
	if !ok {
		return 0
	}
	return toPt(face.Metrics().XHeight)
}

// paintState 沿树下传的绘制状态：前景色与累计缩放。
type paintState struct {
	fg     box.Color
	sx, sy float64
}

// Render 把排版结果绘制为单页 PDF。页面尺寸由结果度量加留白决定。
func (r *Renderer) Render(result *atom.Result) ([]byte, error) {
	if result == nil || result.Root == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}

	pad := result.Padding
	wPt := result.Width + 2*pad
	hPt := result.Height + result.Depth + 2*pad
	if wPt <= 0 || hPt <= 0 {
		return nil, fmt.Errorf("页面尺寸非法: %g x %g pt", wPt, hPt)
	}
	wMM, hMM := toMM(wPt), toMM(hPt)

	var buf bytes.Buffer
	writer := pdf.New(&buf, wMM, hMM, nil)
	c := canvas.New(wMM, hMM)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	st := paintState{fg: box.Color{R: 0, G: 0, B: 0}, sx: 1, sy: 1}
	if err := r.drawBox(ctx, result.Root, pad, pad+result.Height, st); err != nil {
		return nil, err
	}
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBox 在 (x, y) 绘制盒子，y 是盒子基线的页面纵坐标（pt，向下为正）。
// 子盒子的 Shift 由所在容器在定位时施加，这里不重复处理。
func (r *Renderer) drawBox(ctx *canvas.Context, b box.Box, x, y float64, st paintState) error {
	switch t := b.(type) {
	case *box.TextBox:
		face, ok := r.face(t.Font, t.Size*st.sy, rgba(st.fg))
		if !ok {
			return fmt.Errorf("未装载的字体 %d", t.Font)
		}
		line := canvas.NewTextLine(face, t.Content, canvas.Left)
		ctx.DrawText(toMM(x), toMM(y), line)
		return nil

	case *box.RuleBox:
		d := t.Dims()
		ctx.SetFillColor(rgba(st.fg))
		ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
		ctx.DrawPath(toMM(x), toMM(y-st.sy*d.Height),
			canvas.Rectangle(toMM(st.sx*d.Width), toMM(st.sy*(d.Height+d.Depth))))
		return nil

	case *box.StrutBox, *box.PhantomBox:
		return nil

	case *box.ScaleBox:
		st.sx *= t.SX
		st.sy *= t.SY
		return r.drawBox(ctx, t.Unwrap(), x, y, st)

	case *box.ColorBox:
		if t.Bg != nil {
			d := t.Dims()
			ctx.SetFillColor(rgba(*t.Bg))
			ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
			ctx.DrawPath(toMM(x), toMM(y-st.sy*d.Height),
				canvas.Rectangle(toMM(st.sx*d.Width), toMM(st.sy*(d.Height+d.Depth))))
		}
		st.fg = t.Fg
		return r.drawBox(ctx, t.Unwrap(), x, y, st)

	case *box.FrameBox:
		d := t.Dims()
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(rgba(st.fg))
		ctx.SetStrokeWidth(toMM(st.sy * t.Thickness))
		inset := st.sx * t.Thickness / 2
		ctx.DrawPath(toMM(x+inset), toMM(y-st.sy*d.Height+st.sy*t.Thickness/2),
			canvas.Rectangle(toMM(st.sx*d.Width-2*inset), toMM(st.sy*(d.Height+d.Depth)-st.sy*t.Thickness)))
		pad := t.Thickness + t.Margin
		return r.drawBox(ctx, t.Unwrap(), x+st.sx*pad, y, st)

	case *box.VBox:
		return r.drawVBox(ctx, t, x, y, st)

	case box.Container:
		cursor := x
		for _, c := range t.Boxes() {
			d := c.Dims()
			if err := r.drawBox(ctx, c, cursor, y+st.sy*d.Shift, st); err != nil {
				return err
			}
			cursor += st.sx * d.Width
		}
		return nil

	case box.Wrapper:
		return r.drawBox(ctx, t.Unwrap(), x, y, st)

	default:
		return nil
	}
}

// drawVBox 自上而下堆叠子盒子，Shift 作用于水平方向。
func (r *Renderer) drawVBox(ctx *canvas.Context, v *box.VBox, x, y float64, st paintState) error {
	d := v.Dims()
	top := y - st.sy*d.Height
	for _, c := range v.Boxes() {
		cd := c.Dims()
		off := 0.0
		switch v.Align {
		case box.AlignCenter:
			off = (d.Width - cd.Width) / 2
		case box.AlignRight:
			off = d.Width - cd.Width
		}
		baseline := top + st.sy*cd.Height
		if err := r.drawBox(ctx, c, x+st.sx*(off+cd.Shift), baseline, st); err != nil {
			return err
		}
		top += st.sy * (cd.Height + cd.Depth)
	}
	return nil
}

func rgba(c box.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * box.MmToPoint }

// toMM 将点(pt)转换为毫米(mm)。
func toMM(pt float64) float64 { return pt / box.MmToPoint }
