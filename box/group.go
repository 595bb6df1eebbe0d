package box

import (
	"fmt"

	"github.com/ByLCY/chalk/font"
)

// Group 持有有序的子盒子序列，插入顺序即水平/垂直的排列顺序。
// 子盒子允许在树中其他位置复用（共享不可变子树合法），但共享之后
// 不应再对组做结构性修改。
type Group struct {
	Base
	Children []Box
}

// NewGroup 创建一个组合盒子。
func NewGroup(children ...Box) *Group {
	g := &Group{}
	g.Children = append(g.Children, children...)
	return g
}

// Add 将 b 追加到子序列末尾。
func (g *Group) Add(b Box) { g.Children = append(g.Children, b) }

// AddAt 将 b 插入 pos 处并右移后续子盒子。pos 允许 [0, len]，
// 等于 len 时等价于 Add；越界时返回包裹 ErrOutOfRange 的错误。
// 典型用法是正文构造完成后再补插左定界符。
func (g *Group) AddAt(pos int, b Box) error {
	if pos < 0 || pos > len(g.Children) {
		return fmt.Errorf("box: 位置 %d 不在 [0,%d] 内: %w", pos, len(g.Children), ErrOutOfRange)
	}
	g.Children = append(g.Children, nil)
	copy(g.Children[pos+1:], g.Children[pos:])
	g.Children[pos] = b
	return nil
}

// Boxes 实现 Container。
func (g *Group) Boxes() []Box { return g.Children }

// LastFontID 从末尾向前扫描，返回第一个非 NoFont 的子盒子字体标识；
// 仅当所有子盒子都不贡献字体时才返回 NoFont。
// 相邻水平列表之间的字距/斜体校正必须用“视觉上前一个字形”的字体计算，
// 因此空的尾部子组（例如空的上标盒）要被透明跳过，而不能提前得出
// “没有字体”的错误结论。
func (g *Group) LastFontID() font.ID {
	for i := len(g.Children) - 1; i >= 0; i-- {
		if id := g.Children[i].LastFontID(); id != font.NoFont {
			return id
		}
	}
	return font.NoFont
}

// Name 返回组合盒子的标签。
func (g *Group) Name() string { return "BoxGroup" }
