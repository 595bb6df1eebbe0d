package atom

import "github.com/ByLCY/chalk/box"

// OverUnderAtom 在内层原子的上方或下方放一个横向延展的定界符
// （花括号、箭头、横线等），延展靠对字形做水平缩放实现。
type OverUnderAtom struct {
	Inner Atom
	Delim box.Delimiter
	Over  bool // true 放上方，false 放下方
}

// delimGlyph 返回各定界符族的基准字形，线族返回 0 表示改用矩形。
func delimGlyph(d box.Delimiter) rune {
	switch d {
	case box.DelimBrace:
		return '⏞'
	case box.DelimSquareBracket:
		return '⎴'
	case box.DelimBracket:
		return '⏜'
	case box.DelimLeftArrow:
		return '←'
	case box.DelimRightArrow:
		return '→'
	case box.DelimLeftRightArrow:
		return '↔'
	case box.DelimDoubleLeftArrow:
		return '⇐'
	case box.DelimDoubleRightArrow:
		return '⇒'
	case box.DelimDoubleLeftRightArrow:
		return '⇔'
	default:
		return 0
	}
}

func (a *OverUnderAtom) LeftType() box.AtomType  { return a.Inner.LeftType() }
func (a *OverUnderAtom) RightType() box.AtomType { return a.Inner.RightType() }

// CreateBox 构造定界符盒并把它与内层盒垂直堆叠，基线保持在内层盒上。
func (a *OverUnderAtom) CreateBox(env *Env) (box.Box, error) {
	inner, err := a.Inner.CreateBox(env)
	if err != nil {
		return nil, err
	}
	w := inner.Dims().Width
	t := env.RuleThickness()

	var deco box.Box
	switch a.Delim {
	case box.DelimSingleLine:
		deco = box.NewRuleBox(w, t, 0)
	case box.DelimDoubleLine:
		deco = box.NewVBox(box.AlignLeft,
			box.NewRuleBox(w, t, 0),
			box.NewStrutBox(0, 2*t, 0),
			box.NewRuleBox(w, t, 0))
	default:
		g, err := env.text(string(delimGlyph(a.Delim)))
		if err != nil {
			return nil, err
		}
		if gw := g.Dims().Width; gw > 0 && gw != w {
			deco = box.NewScaleBox(g, w/gw, 1)
		} else {
			deco = g
		}
	}

	gap := 3 * t
	strut := box.NewStrutBox(0, gap, 0)
	if a.Over {
		v := box.NewVBox(box.AlignCenter, deco, strut, inner)
		return v, nil
	}
	v := box.NewVTop(box.AlignCenter, inner, strut, deco)
	return v, nil
}
