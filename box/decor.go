package box

import "github.com/ByLCY/chalk/font"

// Decor 恰好包装一个基础盒子，用于改变绘制或测量方式而不改变逻辑内容。
// 字体标识必须穿透装饰、无条件委托给基础盒子——装饰自身从不产生字形；
// 几何度量则刻意不委托：装饰正是改变几何的手段，度量由各具体装饰在
// 构造时自行设定（可以等于基础盒子的，也可以不同）。
type Decor struct {
	dims
	Base Box
}

// LastFontID 无条件委托给基础盒子。
func (d *Decor) LastFontID() font.ID { return d.Base.LastFontID() }

// Unwrap 实现 Wrapper。
func (d *Decor) Unwrap() Box { return d.Base }

// Name 返回装饰盒子的通用标签，具体装饰各自覆盖。
func (d *Decor) Name() string { return "DecorBox" }

// String 透出基础盒子的文本载荷，便于在树导出里看到被装饰的内容。
func (d *Decor) String() string { return d.Base.String() }

// ScaleBox 以缩放后的度量包装一个未缩放的基础盒子。
// 缩放因子允许为负（翻转），此时高度与深度互换。
type ScaleBox struct {
	Decor
	SX, SY float64
}

// NewScaleBox 创建缩放装饰。
func NewScaleBox(base Box, sx, sy float64) *ScaleBox {
	s := &ScaleBox{Decor: Decor{Base: base}, SX: sx, SY: sy}
	d := base.Dims()
	s.Width = d.Width * sx
	if sy >= 0 {
		s.Height = d.Height * sy
		s.Depth = d.Depth * sy
	} else {
		s.Height = -d.Depth * sy
		s.Depth = -d.Height * sy
	}
	s.Shift = d.Shift
	return s
}

// Name 返回缩放装饰的标签。
func (s *ScaleBox) Name() string { return "ScaleBox" }

// ColorBox 改变前景/背景颜色，几何与基础盒子完全一致。
type ColorBox struct {
	Decor
	Fg Color
	Bg *Color // 为空表示不铺背景
}

// NewColorBox 创建颜色装饰。
func NewColorBox(base Box, fg Color) *ColorBox {
	c := &ColorBox{Decor: Decor{Base: base}, Fg: fg}
	c.CopyMetrics(base)
	return c
}

// Name 返回颜色装饰的标签。
func (c *ColorBox) Name() string { return "ColorBox" }

// FrameBox 在基础盒子四周画一圈边框，度量向外扩出线宽与留白。
type FrameBox struct {
	Decor
	Thickness float64 // 线宽（pt）
	Margin    float64 // 内容与边框之间的留白（pt）
}

// NewFrameBox 创建边框装饰。
func NewFrameBox(base Box, thickness, margin float64) *FrameBox {
	f := &FrameBox{Decor: Decor{Base: base}, Thickness: thickness, Margin: margin}
	d := base.Dims()
	pad := thickness + margin
	f.Width = d.Width + 2*pad
	f.Height = d.Height + pad
	f.Depth = d.Depth + pad
	f.Shift = d.Shift
	return f
}

// Name 返回边框装饰的标签。
func (f *FrameBox) Name() string { return "FrameBox" }

// PhantomBox 借用基础盒子的几何占位，但不绘制任何内容。
type PhantomBox struct {
	Decor
}

// NewPhantomBox 创建幻影装饰，度量经 CopyMetrics 一次性盖章。
func NewPhantomBox(base Box) *PhantomBox {
	p := &PhantomBox{Decor: Decor{Base: base}}
	p.CopyMetrics(base)
	return p
}

// Name 返回幻影装饰的标签。
func (p *PhantomBox) Name() string { return "PhantomBox" }

// String 幻影没有可见载荷。
func (p *PhantomBox) String() string { return "" }
