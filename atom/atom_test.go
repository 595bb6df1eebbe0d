package atom

import (
	"math"
	"strings"
	"testing"

	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/dsl"
	"github.com/ByLCY/chalk/font"
)

// stubFonts 提供确定性的字形度量，便于几何断言。
type stubFonts struct{}

func (stubFonts) Glyph(id font.ID, r rune, size float64) (font.Glyph, bool) {
	if r == '?' {
		return font.Glyph{}, false
	}
	return font.Glyph{
		Advance: 0.5 * size,
		Height:  0.7 * size,
		Depth:   0.2 * size,
	}, true
}

func (stubFonts) Kern(id font.ID, prev, next rune, size float64) float64 {
	if prev == 'A' && next == 'V' {
		return -0.1 * size
	}
	return 0
}

func (stubFonts) Em(id font.ID, size float64) float64 { return size }
func (stubFonts) Ex(id font.ID, size float64) float64 { return 0.45 * size }

func testEnv() *Env {
	return &Env{Style: box.StyleText, Size: 10, FontID: 1, Fonts: stubFonts{}}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// TestSymbolAtom 验证符号原子的测量。
func TestSymbolAtom(t *testing.T) {
	env := testEnv()
	b, err := NewSymbol("ab").CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	d := b.Dims()
	if !approx(d.Width, 10) || !approx(d.Height, 7) || !approx(d.Depth, 2) {
		t.Fatalf("符号度量错误: %+v", *d)
	}
	if b.LastFontID() != 1 {
		t.Fatalf("符号盒应携带字体 1")
	}

	if _, err := NewSymbol("?").CreateBox(env); err == nil {
		t.Fatalf("缺字形应报错")
	}
}

// TestRowKerning 验证行原子在相邻符号间补字距。
func TestRowKerning(t *testing.T) {
	env := testEnv()
	row := NewRow(NewSymbol("A"), NewSymbol("V"))
	b, err := row.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	// 两个字形各 5pt，字距 -1pt。
	if got := b.Dims().Width; !approx(got, 9) {
		t.Fatalf("行宽期望 9，实际 %g", got)
	}
}

// TestRowKernAcrossEmptyGroup 验证字距穿透空的尾部子树。
func TestRowKernAcrossEmptyGroup(t *testing.T) {
	env := testEnv()
	row := NewRow(
		NewRow(NewSymbol("A"), &EmptyAtom{}),
		NewSymbol("V"),
	)
	b, err := row.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if got := b.Dims().Width; !approx(got, 9) {
		t.Fatalf("跨空组的字距未生效，宽度期望 9，实际 %g", got)
	}
}

// TestScaledSize 验证档位对字号的缩放。
func TestScaledSize(t *testing.T) {
	env := testEnv()
	if got := env.ScaledSize(); !approx(got, 10) {
		t.Fatalf("正文档位不缩放，实际 %g", got)
	}
	if got := env.WithStyle(box.StyleScript).ScaledSize(); !approx(got, 7) {
		t.Fatalf("上下标档位期望 7，实际 %g", got)
	}
	if got := env.WithStyle(box.StyleScriptScript.Cramped()).ScaledSize(); !approx(got, 5) {
		t.Fatalf("二级上下标档位期望 5，实际 %g", got)
	}
}

// TestFracGeometry 验证分数的垂直几何与数学轴定位。
func TestFracGeometry(t *testing.T) {
	env := testEnv()
	fr := NewFrac(NewSymbol("a"), NewSymbol("b"))
	b, err := fr.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	d := b.Dims()

	t1 := env.RuleThickness() // 0.4
	axis := env.Ex() / 2      // 2.25
	// 行内档位下分子分母落到上下标档位（7pt 字号），线距等于线宽。
	wantH := 4.9 + 1.4 + t1 + t1/2 + axis
	wantD := 4.9 + 1.4 + t1 + t1/2 - axis
	if !approx(d.Height, wantH) {
		t.Fatalf("分数高度期望 %g，实际 %g", wantH, d.Height)
	}
	if !approx(d.Depth, wantD) {
		t.Fatalf("分数深度期望 %g，实际 %g", wantD, d.Depth)
	}
	// 分子分母等宽对齐。
	if !approx(d.Width, 3.5) {
		t.Fatalf("分数宽度期望 3.5，实际 %g", d.Width)
	}

	// 行间档位线距扩为三倍线宽。
	db, err := fr.CreateBox(env.WithStyle(box.StyleDisplay))
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if got := db.Dims().Height; !approx(got, 7+2+3*t1+t1/2+axis) {
		t.Fatalf("行间分数高度错误: %g", got)
	}
}

// TestScriptShifts 验证上下标的档位切换与垂直定位。
func TestScriptShifts(t *testing.T) {
	env := testEnv()

	// 仅上标：上标盒整体抬升 u = baseH - 0.25ex。
	sup := &ScriptAtom{Base: NewSymbol("x"), Sup: NewSymbol("2")}
	b, err := sup.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	kids := b.(*box.HBox).Boxes()
	if len(kids) != 2 {
		t.Fatalf("期望基础盒与上标盒两个子盒")
	}
	u := 7 - 0.25*4.5
	if got := kids[1].Dims().Shift; !approx(got, -u) {
		t.Fatalf("上标位移期望 %g，实际 %g", -u, got)
	}
	// 上标用 7pt 字号：0.5*7。
	if got := kids[1].Dims().Width; !approx(got, 3.5) {
		t.Fatalf("上标应使用缩小档位，宽度期望 3.5，实际 %g", got)
	}

	// 仅下标：下沉 v = baseD + 0.25ex。
	sub := &ScriptAtom{Base: NewSymbol("x"), Sub: NewSymbol("i")}
	b2, err := sub.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	v := 2 + 0.25*4.5
	if got := b2.(*box.HBox).Boxes()[1].Dims().Shift; !approx(got, v) {
		t.Fatalf("下标位移期望 %g，实际 %g", v, got)
	}

	// 双侧：合成一列，列的基线与下标基线重合、整体下沉 v。
	both := &ScriptAtom{Base: NewSymbol("x"), Sup: NewSymbol("2"), Sub: NewSymbol("i")}
	b3, err := both.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	col := b3.(*box.HBox).Boxes()[1]
	if got := col.Dims().Shift; !approx(got, v) {
		t.Fatalf("双侧角标列位移期望 %g，实际 %g", v, got)
	}

	// 空上标组不打断字体扫描。
	if got := b.LastFontID(); got != 1 {
		t.Fatalf("角标结构应贡献字体 1，实际 %d", got)
	}
}

// TestFencedPrepend 验证左定界符经 AddAt 插回行首。
func TestFencedPrepend(t *testing.T) {
	env := testEnv()
	f := NewFenced("(", NewSymbol("x"), ")")
	b, err := f.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	kids := b.(*box.HBox).Boxes()
	if len(kids) != 3 {
		t.Fatalf("期望左定界+正文+右定界三个子盒，实际 %d", len(kids))
	}
	if kids[0].String() != "(" || kids[2].String() != ")" {
		t.Fatalf("定界符位置错误: %q %q", kids[0].String(), kids[2].String())
	}
	// 定界符沿数学轴居中。
	axis := env.Ex() / 2
	want := (7.0-2.0)/2 - axis
	if got := kids[0].Dims().Shift; !approx(got, want) {
		t.Fatalf("定界符位移期望 %g，实际 %g", want, got)
	}

	// 省略号表示该侧无定界符。
	half := NewFenced(".", NewSymbol("x"), ")")
	b2, err := half.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if got := len(b2.(*box.HBox).Boxes()); got != 2 {
		t.Fatalf("单侧定界期望 2 个子盒，实际 %d", got)
	}
}

// TestPhantom 验证幻影原子保留几何、丢弃内容。
func TestPhantom(t *testing.T) {
	env := testEnv()
	p := &PhantomAtom{Inner: NewSymbol("xyz")}
	b, err := p.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if !approx(b.Dims().Width, 15) {
		t.Fatalf("幻影宽度期望 15，实际 %g", b.Dims().Width)
	}
	if b.String() != "" {
		t.Fatalf("幻影不应有文本载荷")
	}
}

// TestOverUnderLine 验证上/下横线的堆叠方向与基线保持。
func TestOverUnderLine(t *testing.T) {
	env := testEnv()
	over := &OverUnderAtom{Inner: NewSymbol("x"), Delim: box.DelimSingleLine, Over: true}
	b, err := over.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	// 基线在内层盒上：深度不变。
	if !approx(b.Dims().Depth, 2) {
		t.Fatalf("上划线不应改变深度，实际 %g", b.Dims().Depth)
	}
	if b.Dims().Height <= 7 {
		t.Fatalf("上划线应增加高度，实际 %g", b.Dims().Height)
	}

	under := &OverUnderAtom{Inner: NewSymbol("x"), Delim: box.DelimSingleLine, Over: false}
	b2, err := under.CreateBox(env)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if !approx(b2.Dims().Height, 7) {
		t.Fatalf("下划线不应改变高度，实际 %g", b2.Dims().Height)
	}
	if b2.Dims().Depth <= 2 {
		t.Fatalf("下划线应增加深度，实际 %g", b2.Dims().Depth)
	}
}

// TestFromFormulaLayout 从源码到排版结果的端到端检查。
func TestFromFormulaLayout(t *testing.T) {
	f, err := dsl.ParseString(`\frac{a+b}{2} \cdot \color{red}{x_i}`)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	a, err := FromFormula(f)
	if err != nil {
		t.Fatalf("翻译失败: %v", err)
	}
	res, err := Layout(a, Options{Style: box.StyleText, Size: 10, FontID: 1, Fonts: stubFonts{}, Padding: 4})
	if err != nil {
		t.Fatalf("排版失败: %v", err)
	}
	if res.Root == nil || res.Width <= 0 || res.Height <= 0 {
		t.Fatalf("排版结果异常: %+v", res)
	}
	if res.Padding != 4 || res.Size != 10 {
		t.Fatalf("页面参数丢失: %+v", res)
	}

	// 树里应出现颜色装饰。
	if !hasNode(box.Tree(res.Root), "ColorBox") {
		t.Fatalf("结果树缺少颜色装饰")
	}
}

// TestFromFormulaErrors 验证语义错误的报告。
func TestFromFormulaErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`x^2^3`, "上标"},
		{`\color{nope}{x}`, "颜色"},
		{`\frak{x}`, "未知命令"},
		{`\frac{a}`, "参数"},
	}
	for _, c := range cases {
		f, err := dsl.ParseString(c.in)
		if err != nil {
			t.Fatalf("%q 解析失败: %v", c.in, err)
		}
		if _, err := FromFormula(f); err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%q 期望含 %q 的错误，实际 %v", c.in, c.want, err)
		}
	}
}

// TestLayoutRequiresFonts 验证缺少字体提供者时报错。
func TestLayoutRequiresFonts(t *testing.T) {
	if _, err := Layout(NewSymbol("x"), Options{}); err == nil {
		t.Fatalf("缺少字体提供者应报错")
	}
}

func hasNode(n *box.TreeNode, name string) bool {
	if n.Name == name {
		return true
	}
	for _, c := range n.Children {
		if hasNode(c, name) {
			return true
		}
	}
	return false
}
