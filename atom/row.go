package atom

import (
	"strings"

	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/font"
)

// RowAtom 把一串原子水平排成一行，并在相邻符号之间补上字体字距。
type RowAtom struct {
	Atoms []Atom
}

// NewRow 创建行原子。
func NewRow(atoms ...Atom) *RowAtom {
	return &RowAtom{Atoms: atoms}
}

// Add 追加一个原子。
func (a *RowAtom) Add(children ...Atom) {
	a.Atoms = append(a.Atoms, children...)
}

// LeftType 取首原子的左类别，空行视为普通。
func (a *RowAtom) LeftType() box.AtomType {
	if len(a.Atoms) == 0 {
		return box.TypeOrdinary
	}
	return a.Atoms[0].LeftType()
}

// RightType 取末原子的右类别，空行视为普通。
func (a *RowAtom) RightType() box.AtomType {
	if len(a.Atoms) == 0 {
		return box.TypeOrdinary
	}
	return a.Atoms[len(a.Atoms)-1].RightType()
}

// CreateBox 依次转换子原子并水平拼接。相邻盒子同属一个字体时，
// 在二者之间补上 (前一个可见字形, 当前首字形) 的字距修正；
// 前一个盒子的字体经 LastFontID 自右向左穿透取得，空的尾部子树
// 不会打断字距链。
func (a *RowAtom) CreateBox(env *Env) (box.Box, error) {
	h := box.NewHBox()
	prevRune := rune(0)
	for _, child := range a.Atoms {
		b, err := child.CreateBox(env)
		if err != nil {
			return nil, err
		}
		if first, ok := firstRune(b); ok {
			if id := h.LastFontID(); prevRune != 0 && id != font.NoFont && id == b.LastFontID() {
				if k := env.Fonts.Kern(id, prevRune, first, env.ScaledSize()); k != 0 {
					h.Add(box.NewKern(k))
				}
			}
		}
		h.Add(b)
		if last, ok := lastRune(b); ok {
			prevRune = last
		} else if b.Dims().Width != 0 {
			// 宽度非零的空白打断字距链。
			prevRune = 0
		}
	}
	return h, nil
}

// firstRune 返回子树里最左边的可见字形，遍历方式与字体扫描一致。
func firstRune(b box.Box) (rune, bool) {
	if s := b.String(); s != "" {
		for _, r := range s {
			return r, true
		}
	}
	switch t := b.(type) {
	case box.Container:
		for _, c := range t.Boxes() {
			if r, ok := firstRune(c); ok {
				return r, true
			}
		}
	case box.Wrapper:
		return firstRune(t.Unwrap())
	}
	return 0, false
}

// lastRune 返回子树里最右边的可见字形。
func lastRune(b box.Box) (rune, bool) {
	if s := b.String(); s != "" {
		rs := []rune(strings.TrimSpace(s))
		if len(rs) > 0 {
			return rs[len(rs)-1], true
		}
	}
	switch t := b.(type) {
	case box.Container:
		kids := t.Boxes()
		for i := len(kids) - 1; i >= 0; i-- {
			if r, ok := lastRune(kids[i]); ok {
				return r, true
			}
		}
	case box.Wrapper:
		return lastRune(t.Unwrap())
	}
	return 0, false
}
