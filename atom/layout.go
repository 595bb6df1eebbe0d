package atom

import (
	"fmt"

	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/font"
)

// Options 是一次排版的输入参数。
type Options struct {
	Style   box.Style
	Size    float64 // 基准字号（pt），零值取 12
	FontID  font.ID
	Fonts   font.Provider
	Padding float64 // 页面四周留白（pt）
}

// Result 是排版产物：盒子树根与页面级度量，渲染后端据此出图。
type Result struct {
	Root    box.Box `json:"-"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Depth   float64 `json:"depth"`
	Padding float64 `json:"padding"`
	Size    float64 `json:"size"`
}

// Layout 在给定选项下把原子转换为盒子树并打上页面度量。
func Layout(a Atom, opts Options) (*Result, error) {
	if opts.Fonts == nil {
		return nil, fmt.Errorf("atom: 缺少字体提供者")
	}
	if opts.Size <= 0 {
		opts.Size = 12
	}
	env := &Env{
		Style:  opts.Style,
		Size:   opts.Size,
		FontID: opts.FontID,
		Fonts:  opts.Fonts,
	}
	root, err := a.CreateBox(env)
	if err != nil {
		return nil, err
	}
	d := root.Dims()
	return &Result{
		Root:    root,
		Width:   d.Width,
		Height:  d.Height,
		Depth:   d.Depth,
		Padding: opts.Padding,
		Size:    opts.Size,
	}, nil
}
