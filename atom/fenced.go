package atom

import "github.com/ByLCY/chalk/box"

// FencedAtom 给正文加上左右定界符，定界符沿数学轴垂直居中。
type FencedAtom struct {
	Left  string
	Right string
	Body  Atom
}

// NewFenced 创建定界原子，空字符串表示该侧没有定界符。
func NewFenced(left string, body Atom, right string) *FencedAtom {
	return &FencedAtom{Left: left, Body: body, Right: right}
}

func (a *FencedAtom) LeftType() box.AtomType  { return box.TypeOpening }
func (a *FencedAtom) RightType() box.AtomType { return box.TypeClosing }

// CreateBox 先构造正文，再追加右定界符，最后把左定界符插回行首。
func (a *FencedAtom) CreateBox(env *Env) (box.Box, error) {
	body, err := a.Body.CreateBox(env)
	if err != nil {
		return nil, err
	}
	h := box.NewHBox(body)
	axis := env.Ex() / 2
	center := func(b box.Box) {
		d := b.Dims()
		d.Shift = (d.Height-d.Depth)/2 - axis
	}

	if a.Right != "" && a.Right != "." {
		rb, err := env.text(a.Right)
		if err != nil {
			return nil, err
		}
		center(rb)
		h.Add(rb)
	}
	if a.Left != "" && a.Left != "." {
		lb, err := env.text(a.Left)
		if err != nil {
			return nil, err
		}
		center(lb)
		if err := h.AddAt(0, lb); err != nil {
			return nil, err
		}
	}
	return h, nil
}
