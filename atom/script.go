package atom

import "github.com/ByLCY/chalk/box"

// ScriptAtom 给基础原子挂上标/下标，缺省的一侧为 nil。
type ScriptAtom struct {
	Base Atom
	Sup  Atom
	Sub  Atom
}

// LeftType 沿用基础原子的左类别。
func (a *ScriptAtom) LeftType() box.AtomType { return a.Base.LeftType() }

// RightType 沿用基础原子的右类别。
func (a *ScriptAtom) RightType() box.AtomType { return a.Base.RightType() }

// CreateBox 在上下标档位下转换角标，并按基础盒子的高深确定抬升与下沉。
// 只有一侧时直接用 Shift 定位；两侧都有时合成一个双行垂直盒，
// 以保证上下标水平起点一致。
func (a *ScriptAtom) CreateBox(env *Env) (box.Box, error) {
	base, err := a.Base.CreateBox(env)
	if err != nil {
		return nil, err
	}
	if a.Sup == nil && a.Sub == nil {
		return base, nil
	}

	ex := env.Ex()
	bd := base.Dims()
	u := bd.Height - 0.25*ex // 上标基线抬升量
	v := bd.Depth + 0.25*ex  // 下标基线下沉量
	if u < 0 {
		u = 0
	}

	h := box.NewHBox(base)

	var sup, sub box.Box
	if a.Sup != nil {
		if sup, err = a.Sup.CreateBox(env.WithStyle(env.Style.Sup())); err != nil {
			return nil, err
		}
	}
	if a.Sub != nil {
		if sub, err = a.Sub.CreateBox(env.WithStyle(env.Style.Sub())); err != nil {
			return nil, err
		}
	}

	switch {
	case sub == nil:
		sup.Dims().Shift = -u
		h.Add(sup)
	case sup == nil:
		sub.Dims().Shift = v
		h.Add(sub)
	default:
		// 上下标同列：两行之间的间隙由各自的基线位置差决定。
		gap := (u - sup.Dims().Depth) + (v - sub.Dims().Height)
		if gap < 0 {
			gap = 0
		}
		col := box.NewVBox(box.AlignLeft, sup, box.NewStrutBox(0, gap, 0), sub)
		col.Dims().Shift = sub.Dims().Height + gap + sup.Dims().Depth - u
		h.Add(col)
	}
	return h, nil
}
