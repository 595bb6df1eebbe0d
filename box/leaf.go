package box

import "github.com/ByLCY/chalk/font"

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// TextBox 表示同一字体、同一字号下的一段字形串，是唯一携带字体标识的叶子。
// 度量由调用方依据字体子系统的字形数据算好后传入，本包不做测量。
type TextBox struct {
	Base
	Content string
	Font    font.ID
	Size    float64 // 字号（pt）
}

// NewTextBox 创建文本叶子。
func NewTextBox(content string, id font.ID, size float64, d Dims) *TextBox {
	t := &TextBox{Content: content, Font: id, Size: size}
	t.dims = d
	return t
}

// LastFontID 返回叶子自身的字体；没有内容时视为不产生字形。
func (t *TextBox) LastFontID() font.ID {
	if t.Content == "" {
		return font.NoFont
	}
	return t.Font
}

// Name 返回文本叶子的标签。
func (t *TextBox) Name() string { return "TextBox" }

// String 返回字面内容。
func (t *TextBox) String() string { return t.Content }

// RuleBox 是一个实心矩形（分数线、水平线等），不携带字体。
type RuleBox struct {
	Base
}

// NewRuleBox 创建给定尺寸的实心矩形。
func NewRuleBox(width, height, depth float64) *RuleBox {
	r := &RuleBox{}
	r.Width = width
	r.Height = height
	r.Depth = depth
	return r
}

// Name 返回矩形叶子的标签。
func (r *RuleBox) Name() string { return "RuleBox" }

// StrutBox 只占据几何空间、不绘制任何内容，是定长空白（kern/glue）的载体。
type StrutBox struct {
	Base
}

// NewStrutBox 创建给定尺寸的支柱盒。
func NewStrutBox(width, height, depth float64) *StrutBox {
	s := &StrutBox{}
	s.Width = width
	s.Height = height
	s.Depth = depth
	return s
}

// NewKern 创建只有宽度的水平空白。宽度允许为负（负字距）。
func NewKern(width float64) *StrutBox {
	return NewStrutBox(width, 0, 0)
}

// Name 返回支柱盒的标签。
func (s *StrutBox) Name() string { return "StrutBox" }
