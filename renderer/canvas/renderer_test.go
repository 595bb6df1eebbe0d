package canvasrenderer

import (
	"bytes"
	"testing"

	"github.com/ByLCY/chalk/atom"
	"github.com/ByLCY/chalk/box"
)

// geometryResult 构造一棵不依赖字体的盒子树（矩形与空白）。
func geometryResult() *atom.Result {
	root := box.NewHBox(
		box.NewRuleBox(20, 5, 0),
		box.NewKern(4),
		box.NewColorBox(box.NewRuleBox(10, 3, 1), box.Color{R: 200}),
	)
	d := root.Dims()
	return &atom.Result{
		Root:    root,
		Width:   d.Width,
		Height:  d.Height,
		Depth:   d.Depth,
		Padding: 6,
		Size:    12,
	}
}

// TestRenderGeometry 验证纯几何树可以渲染为合法的 PDF 字节流。
func TestRenderGeometry(t *testing.T) {
	r := NewRenderer(".")
	data, err := r.Render(geometryResult())
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("输出不是 PDF，前缀为 %q", data[:min(len(data), 8)])
	}
}

// TestRenderRejectsEmpty 验证空结果与空树的错误路径。
func TestRenderRejectsEmpty(t *testing.T) {
	r := NewRenderer(".")
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("空结果应报错")
	}
	if _, err := r.Render(&atom.Result{}); err == nil {
		t.Fatalf("空树应报错")
	}
}

// TestProviderWithoutFonts 验证未装载字体时度量查询的兜底行为。
func TestProviderWithoutFonts(t *testing.T) {
	r := NewRenderer(".")
	if _, ok := r.Glyph(0, 'a', 12); ok {
		t.Fatalf("未装载字体不应返回字形")
	}
	if got := r.Kern(0, 'A', 'V', 12); got != 0 {
		t.Fatalf("未装载字体的字距应为 0，实际 %g", got)
	}
	if got := r.Em(0, 12); got != 0 {
		t.Fatalf("未装载字体的 em 应为 0，实际 %g", got)
	}
}

// TestLoadFontMissing 验证缺失字体源的错误路径与标识返回值。
func TestLoadFontMissing(t *testing.T) {
	r := NewRenderer(t.TempDir())
	if id, err := r.LoadFont("Body", "builtin:absent"); err == nil || id != -1 {
		t.Fatalf("未注册的内置字体应报错，实际 id=%d err=%v", id, err)
	}
	if _, err := r.LoadFont("Body", "missing.ttf"); err == nil {
		t.Fatalf("缺失的字体文件应报错")
	}
}
