// Package box 实现排版引擎的盒子模型：叶子盒子、组合盒子与装饰盒子，
// 以及它们共享的度量契约与字体标识传播协议。
// 上层的原子转换代码据此构造盒子树，再交给渲染后端绘制。
package box

import (
	"errors"

	"github.com/ByLCY/chalk/font"
)

// 所有尺寸均以 pt（PostScript point）为单位。基线是垂直参照线：
// Height 为基线以上的高度，Depth 为基线以下的深度，二者均允许为负或为零，
// 以便表达字距与重叠效果。

// ErrOutOfRange 表示向盒子组插入子盒子时位置越界。
var ErrOutOfRange = errors.New("box: 插入位置越界")

// Dims 记录盒子相对基线的几何度量。
// Shift 是盒子自身基线相对父基线的垂直位移，正值向下。
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Shift  float64 `json:"shift"`
}

// Dims 返回自身，嵌入该结构的盒子由此满足 Box 接口的度量部分。
func (d *Dims) Dims() *Dims { return d }

// CopyMetrics 将 other 的四项度量原样覆盖到当前盒子上，负值照搬，
// 不做任何校验，也不触及子盒子。盒子一旦被共享便不应再调用本方法；
// 它是构造期的一次性重置（支柱、幻影等“借用几何”的场景），不是持续可变状态。
func (d *Dims) CopyMetrics(other Box) { *d = *other.Dims() }

// Box 是所有盒子变体共享的只读遍历契约。
// 渲染后端凭 Dims/Name/String，加上组合盒子的 Container 与装饰盒子的
// Wrapper，即可递归定位并绘制整棵树，而无需了解各变体的内部构造。
type Box interface {
	// Dims 返回盒子的几何度量；返回指针以便构造期一次性重置。
	Dims() *Dims
	// LastFontID 返回盒子内最近一次产生字形的内容所用的字体标识；
	// 不含字形内容时返回 font.NoFont。
	LastFontID() font.ID
	// Name 返回稳定的变体标签，用于树导出与调试。
	Name() string
	// String 返回文本载荷，默认为空；携带字形的叶子返回字面内容。
	String() string
}

// Container 由持有有序子盒子序列的组合盒子实现。
type Container interface {
	Boxes() []Box
}

// Wrapper 由恰好包装一个基础盒子的装饰盒子实现。
type Wrapper interface {
	Unwrap() Box
}

// dims 是 Dims 的别名；Base 经由它嵌入 Dims，使嵌入字段名不与
// 提升的 Dims 方法同名（同名时字段会遮蔽方法，Box 接口无法满足）。
type dims = Dims

// Base 提供抽象盒子契约的默认实现，具体变体通过嵌入并覆盖相应方法定制行为。
type Base struct {
	dims
}

// LastFontID 默认不贡献字体标识。
func (b *Base) LastFontID() font.ID { return font.NoFont }

// Name 返回基础契约的标签。
func (b *Base) Name() string { return "Box" }

// String 默认没有文本载荷。
func (b *Base) String() string { return "" }
