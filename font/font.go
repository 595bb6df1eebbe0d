// Package font 定义布局核心与字体子系统之间的边界：
// 字体标识、NoFont 哨兵值与字形度量查询接口。
// 布局核心对字体的全部认知止步于此，具体的字体装载与测量由渲染后端提供。
package font

// ID 标识一个已装载的字体。
type ID int32

// NoFont 表示“该盒子/子树不贡献字体标识”，例如纯几何的分数线、
// 定长空白或一个空组。
const NoFont ID = -1

// Glyph 描述单个字形在给定字号下的度量，单位均为 pt。
type Glyph struct {
	Advance float64 // 水平步进
	Height  float64 // 基线以上的高度
	Depth   float64 // 基线以下的深度
	Italic  float64 // 斜体校正量
}

// Provider 由字体子系统实现，为布局提供字形度量与字距查询。
type Provider interface {
	// Glyph 返回 id 字体中 r 在 size pt 下的度量；字体或字形缺失时 ok 为 false。
	Glyph(id ID, r rune, size float64) (g Glyph, ok bool)
	// Kern 返回相邻字形对 (prev, next) 之间的字距修正，没有修正时为 0。
	Kern(id ID, prev, next rune, size float64) float64
	// Em 返回字体在 size pt 下大写 M 的宽度。
	Em(id ID, size float64) float64
	// Ex 返回字体在 size pt 下小写 x 的高度。
	Ex(id ID, size float64) float64
}
