package atom

import (
	"fmt"

	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/font"
)

// Env 携带原子转换期间的排版环境：样式档位、基准字号与当前字体。
// 环境按值派生，子公式在派生副本上转换，互不影响。
type Env struct {
	Style  box.Style
	Size   float64 // 基准字号（pt），档位缩放前
	FontID font.ID
	Fonts  font.Provider
}

// WithStyle 返回切换到 s 的环境副本。
func (e *Env) WithStyle(s box.Style) *Env {
	c := *e
	c.Style = s
	return &c
}

// ScaledSize 返回当前档位下的实际字号：上下标档位缩到 0.7，
// 二级上下标缩到 0.5。
func (e *Env) ScaledSize() float64 {
	switch e.Style &^ 1 {
	case box.StyleScript:
		return e.Size * 0.7
	case box.StyleScriptScript:
		return e.Size * 0.5
	default:
		return e.Size
	}
}

// Em 实现 box.Resolver。
func (e *Env) Em() float64 { return e.Fonts.Em(e.FontID, e.ScaledSize()) }

// Ex 实现 box.Resolver。
func (e *Env) Ex() float64 { return e.Fonts.Ex(e.FontID, e.ScaledSize()) }

// PixelsPerPoint 实现 box.Resolver。布局阶段按 1:1 处理，设备缩放交给渲染后端。
func (e *Env) PixelsPerPoint() float64 { return 1 }

// RuleThickness 实现 box.Resolver，返回默认分数线宽。
func (e *Env) RuleThickness() float64 { return 0.04 * e.ScaledSize() }

var _ box.Resolver = (*Env)(nil)

// text 用当前字体测量 content 并生成文本叶子，字形间字距一并计入宽度。
func (e *Env) text(content string) (*box.TextBox, error) {
	size := e.ScaledSize()
	var d box.Dims
	prev := rune(0)
	for _, r := range content {
		g, ok := e.Fonts.Glyph(e.FontID, r, size)
		if !ok {
			return nil, fmt.Errorf("atom: 字体 %d 缺少字形 %q", e.FontID, r)
		}
		if prev != 0 {
			d.Width += e.Fonts.Kern(e.FontID, prev, r, size)
		}
		d.Width += g.Advance
		if g.Height > d.Height {
			d.Height = g.Height
		}
		if g.Depth > d.Depth {
			d.Depth = g.Depth
		}
		prev = r
	}
	return box.NewTextBox(content, e.FontID, size, d), nil
}
