package atom

import "github.com/ByLCY/chalk/box"

// 本文件的原子都是对单个内层原子的装饰：转换内层后包一层装饰盒子。

// PhantomAtom 占据内层原子的几何空间但不绘制。
type PhantomAtom struct {
	Inner Atom
}

func (a *PhantomAtom) LeftType() box.AtomType  { return a.Inner.LeftType() }
func (a *PhantomAtom) RightType() box.AtomType { return a.Inner.RightType() }

func (a *PhantomAtom) CreateBox(env *Env) (box.Box, error) {
	b, err := a.Inner.CreateBox(env)
	if err != nil {
		return nil, err
	}
	return box.NewPhantomBox(b), nil
}

// ColorAtom 改变内层原子的前景色。
type ColorAtom struct {
	Inner Atom
	Fg    box.Color
}

func (a *ColorAtom) LeftType() box.AtomType  { return a.Inner.LeftType() }
func (a *ColorAtom) RightType() box.AtomType { return a.Inner.RightType() }

func (a *ColorAtom) CreateBox(env *Env) (box.Box, error) {
	b, err := a.Inner.CreateBox(env)
	if err != nil {
		return nil, err
	}
	return box.NewColorBox(b, a.Fg), nil
}

// ScaleAtom 对内层原子做各向缩放。
type ScaleAtom struct {
	Inner  Atom
	SX, SY float64
}

func (a *ScaleAtom) LeftType() box.AtomType  { return a.Inner.LeftType() }
func (a *ScaleAtom) RightType() box.AtomType { return a.Inner.RightType() }

func (a *ScaleAtom) CreateBox(env *Env) (box.Box, error) {
	b, err := a.Inner.CreateBox(env)
	if err != nil {
		return nil, err
	}
	return box.NewScaleBox(b, a.SX, a.SY), nil
}

// FrameAtom 给内层原子加边框，线宽与留白取字体默认线宽的倍数。
type FrameAtom struct {
	Inner Atom
}

func (a *FrameAtom) LeftType() box.AtomType  { return box.TypeOrdinary }
func (a *FrameAtom) RightType() box.AtomType { return box.TypeOrdinary }

func (a *FrameAtom) CreateBox(env *Env) (box.Box, error) {
	b, err := a.Inner.CreateBox(env)
	if err != nil {
		return nil, err
	}
	t := env.RuleThickness()
	return box.NewFrameBox(b, t, 3*t), nil
}
