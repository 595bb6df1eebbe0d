package atom

import "github.com/ByLCY/chalk/box"

// SymbolAtom 是携带类别的字符序列，是最常见的原子。
type SymbolAtom struct {
	Text string
	Type box.AtomType
}

// NewSymbol 创建普通类别的符号原子。
func NewSymbol(text string) *SymbolAtom {
	return &SymbolAtom{Text: text, Type: box.TypeOrdinary}
}

func (a *SymbolAtom) LeftType() box.AtomType  { return a.Type }
func (a *SymbolAtom) RightType() box.AtomType { return a.Type }

// CreateBox 按当前环境测量并生成文本叶子。
func (a *SymbolAtom) CreateBox(env *Env) (box.Box, error) {
	return env.text(a.Text)
}

// SpaceAtom 产生一段定长水平空白，长度可用任意单位表达。
type SpaceAtom struct {
	Len box.Length
}

func (a *SpaceAtom) LeftType() box.AtomType  { return box.TypeOrdinary }
func (a *SpaceAtom) RightType() box.AtomType { return box.TypeOrdinary }

// CreateBox 在当前环境下解析长度并生成支柱盒。
func (a *SpaceAtom) CreateBox(env *Env) (box.Box, error) {
	return box.NewKern(a.Len.Resolve(env)), nil
}

// EmptyAtom 不占空间也不产生字形，用于占位（例如缺省的上标）。
type EmptyAtom struct{}

func (a *EmptyAtom) LeftType() box.AtomType  { return box.TypeOrdinary }
func (a *EmptyAtom) RightType() box.AtomType { return box.TypeOrdinary }

// CreateBox 返回一个空组，字体扫描会透明跳过它。
func (a *EmptyAtom) CreateBox(env *Env) (box.Box, error) {
	return box.NewGroup(), nil
}
