package atom

import "github.com/ByLCY/chalk/box"

// FracAtom 是分数：分子与分母垂直堆叠，中间可画分数线。
type FracAtom struct {
	Num   Atom
	Denom Atom
	// Rule 控制是否绘制分数线。
	Rule bool
	// Thickness 是分数线宽，零值表示使用字体默认线宽。
	Thickness box.Length
	// NumAlign/DenomAlign 控制较窄一方的水平对齐，零值为居中。
	NumAlign   box.Alignment
	DenomAlign box.Alignment
}

// NewFrac 创建带默认分数线的分数原子。
func NewFrac(num, denom Atom) *FracAtom {
	return &FracAtom{Num: num, Denom: denom, Rule: true}
}

// 分数整体按内嵌原子参与间距。
func (a *FracAtom) LeftType() box.AtomType  { return box.TypeInner }
func (a *FracAtom) RightType() box.AtomType { return box.TypeInner }

// checkAlign 只允许左/右对齐，其余一律居中。
func checkAlign(al box.Alignment) box.Alignment {
	switch al {
	case box.AlignLeft, box.AlignRight:
		return al
	default:
		return box.AlignCenter
	}
}

// CreateBox 在派生档位下转换分子分母，按行间/行内档位确定线距，
// 并把整体沿数学轴居中：基线停在分数线中心下方轴高处。
func (a *FracAtom) CreateBox(env *Env) (box.Box, error) {
	num, err := a.Num.CreateBox(env.WithStyle(env.Style.Num()))
	if err != nil {
		return nil, err
	}
	den, err := a.Denom.CreateBox(env.WithStyle(env.Style.Denom()))
	if err != nil {
		return nil, err
	}

	width := num.Dims().Width
	if w := den.Dims().Width; w > width {
		width = w
	}
	numBox := box.AlignTo(num, width, checkAlign(a.NumAlign))
	denBox := box.AlignTo(den, width, checkAlign(a.DenomAlign))

	t := env.RuleThickness()
	if !a.Thickness.IsZero() {
		t = a.Thickness.Resolve(env)
	}
	if !a.Rule {
		t = 0
	}
	gap := t
	if env.Style < box.StyleText {
		gap = 3 * t
	}
	if gap == 0 {
		// 无线分数仍需要最小间隙。
		gap = env.RuleThickness()
		if env.Style < box.StyleText {
			gap *= 3
		}
	}
	axis := env.Ex() / 2

	v := box.NewVBox(box.AlignCenter)
	v.Add(numBox)
	v.Add(box.NewStrutBox(0, gap, 0))
	if a.Rule {
		v.Add(box.NewRuleBox(width, t/2, t/2))
	}
	v.Add(box.NewStrutBox(0, 0, gap))
	v.Add(denBox)

	// 基线不在最后一个子盒子上，整体度量按数学轴重置。
	nd := numBox.Dims()
	dd := denBox.Dims()
	v.Dims().Width = width
	v.Dims().Height = nd.Height + nd.Depth + gap + t/2 + axis
	v.Dims().Depth = dd.Height + dd.Depth + gap + t/2 - axis
	return v, nil
}
