package atom

import (
	"fmt"
	"strconv"

	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/dsl"
)

// 本文件把 dsl 的 AST 翻译为原子树，是语法到语义的唯一通道。

// symbolCommands 是无参命令到符号原子的映射。
var symbolCommands = map[string]*SymbolAtom{
	// 希腊字母
	`\alpha`:   {Text: "α", Type: box.TypeOrdinary},
	`\beta`:    {Text: "β", Type: box.TypeOrdinary},
	`\gamma`:   {Text: "γ", Type: box.TypeOrdinary},
	`\delta`:   {Text: "δ", Type: box.TypeOrdinary},
	`\epsilon`: {Text: "ε", Type: box.TypeOrdinary},
	`\theta`:   {Text: "θ", Type: box.TypeOrdinary},
	`\lambda`:  {Text: "λ", Type: box.TypeOrdinary},
	`\mu`:      {Text: "μ", Type: box.TypeOrdinary},
	`\pi`:      {Text: "π", Type: box.TypeOrdinary},
	`\sigma`:   {Text: "σ", Type: box.TypeOrdinary},
	`\phi`:     {Text: "φ", Type: box.TypeOrdinary},
	`\omega`:   {Text: "ω", Type: box.TypeOrdinary},
	`\Gamma`:   {Text: "Γ", Type: box.TypeOrdinary},
	`\Delta`:   {Text: "Δ", Type: box.TypeOrdinary},
	`\Sigma`:   {Text: "Σ", Type: box.TypeOrdinary},
	`\Omega`:   {Text: "Ω", Type: box.TypeOrdinary},
	`\infty`:   {Text: "∞", Type: box.TypeOrdinary},
	`\partial`: {Text: "∂", Type: box.TypeOrdinary},

	// 巨算符
	`\sum`:  {Text: "∑", Type: box.TypeBigOperator},
	`\prod`: {Text: "∏", Type: box.TypeBigOperator},
	`\int`:  {Text: "∫", Type: box.TypeBigOperator},
	`\lim`:  {Text: "lim", Type: box.TypeBigOperator},

	// 二元运算符
	`\cdot`:  {Text: "⋅", Type: box.TypeBinaryOperator},
	`\times`: {Text: "×", Type: box.TypeBinaryOperator},
	`\div`:   {Text: "÷", Type: box.TypeBinaryOperator},
	`\pm`:    {Text: "±", Type: box.TypeBinaryOperator},
	`\mp`:    {Text: "∓", Type: box.TypeBinaryOperator},

	// 关系符
	`\le`:     {Text: "≤", Type: box.TypeRelation},
	`\leq`:    {Text: "≤", Type: box.TypeRelation},
	`\ge`:     {Text: "≥", Type: box.TypeRelation},
	`\geq`:    {Text: "≥", Type: box.TypeRelation},
	`\ne`:     {Text: "≠", Type: box.TypeRelation},
	`\neq`:    {Text: "≠", Type: box.TypeRelation},
	`\approx`: {Text: "≈", Type: box.TypeRelation},
	`\equiv`:  {Text: "≡", Type: box.TypeRelation},
	`\to`:     {Text: "→", Type: box.TypeRelation},
	`\in`:     {Text: "∈", Type: box.TypeRelation},

	// 函数名
	`\sin`: {Text: "sin", Type: box.TypeOrdinary},
	`\cos`: {Text: "cos", Type: box.TypeOrdinary},
	`\tan`: {Text: "tan", Type: box.TypeOrdinary},
	`\log`: {Text: "log", Type: box.TypeOrdinary},
	`\ln`:  {Text: "ln", Type: box.TypeOrdinary},
	`\exp`: {Text: "exp", Type: box.TypeOrdinary},
}

// namedColors 是 \color 可用的颜色名。
var namedColors = map[string]box.Color{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"cyan":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"gray":    {R: 128, G: 128, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
	"purple":  {R: 128, G: 0, B: 128},
}

// spaceEscapes 把空白转义映射为数学单位长度。
var spaceEscapes = map[string]box.Length{
	`\,`: {Value: 3, Unit: box.UnitMu},
	`\:`: {Value: 4, Unit: box.UnitMu},
	`\;`: {Value: 5, Unit: box.UnitMu},
	`\!`: {Value: -3, Unit: box.UnitMu},
	`\ `: {Value: 6, Unit: box.UnitMu},
}

// FromFormula 把整条公式翻译为一个行原子。
func FromFormula(f *dsl.Formula) (Atom, error) {
	return fromItems(f.Items)
}

func fromItems(items []*dsl.Item) (*RowAtom, error) {
	row := NewRow()
	for _, it := range items {
		a, err := fromItem(it)
		if err != nil {
			return nil, err
		}
		row.Add(a)
	}
	return row, nil
}

// fromItem 翻译一个节点及其角标附件。
func fromItem(it *dsl.Item) (Atom, error) {
	base, err := fromNode(it.Node)
	if err != nil {
		return nil, err
	}
	if len(it.Scripts) == 0 {
		return base, nil
	}
	s := &ScriptAtom{Base: base}
	for _, sc := range it.Scripts {
		arg, err := fromNode(sc.Arg)
		if err != nil {
			return nil, err
		}
		switch sc.Op {
		case "^":
			if s.Sup != nil {
				return nil, fmt.Errorf("atom: 同一原子上重复的上标")
			}
			s.Sup = arg
		case "_":
			if s.Sub != nil {
				return nil, fmt.Errorf("atom: 同一原子上重复的下标")
			}
			s.Sub = arg
		}
	}
	return s, nil
}

func fromNode(n *dsl.Node) (Atom, error) {
	switch {
	case n.Fenced != nil:
		body, err := fromItems(n.Fenced.Body)
		if err != nil {
			return nil, err
		}
		return NewFenced(n.Fenced.Left, body, n.Fenced.Right), nil
	case n.Command != nil:
		return fromCommand(n.Command)
	case n.Space != "":
		l, ok := spaceEscapes[n.Space]
		if !ok {
			return nil, fmt.Errorf("atom: 未知空白转义 %q", n.Space)
		}
		return &SpaceAtom{Len: l}, nil
	case n.Group != nil:
		return fromItems(n.Group.Items)
	case n.Number != "":
		return NewSymbol(n.Number), nil
	case n.Letters != "":
		// 每个字母是独立的普通原子，之间允许插入字距。
		row := NewRow()
		for _, r := range n.Letters {
			row.Add(NewSymbol(string(r)))
		}
		if len(row.Atoms) == 1 {
			return row.Atoms[0], nil
		}
		return row, nil
	case n.Symbol != "":
		return classifySymbol(n.Symbol), nil
	default:
		return &EmptyAtom{}, nil
	}
}

// classifySymbol 按间距规则给字面符号定类别。
func classifySymbol(s string) *SymbolAtom {
	switch s {
	case "+", "-", "*", "/":
		return &SymbolAtom{Text: s, Type: box.TypeBinaryOperator}
	case "=", "<", ">":
		return &SymbolAtom{Text: s, Type: box.TypeRelation}
	case "(", "[":
		return &SymbolAtom{Text: s, Type: box.TypeOpening}
	case ")", "]":
		return &SymbolAtom{Text: s, Type: box.TypeClosing}
	case ",", ";", ":", ".", "!":
		return &SymbolAtom{Text: s, Type: box.TypePunctuation}
	default:
		return NewSymbol(s)
	}
}

// fromCommand 翻译控制序列。
func fromCommand(c *dsl.Command) (Atom, error) {
	if sym, ok := symbolCommands[c.Name]; ok {
		if len(c.Args) != 0 {
			return nil, fmt.Errorf("atom: %s %s 不接受参数", c.Pos, c.Name)
		}
		cp := *sym
		return &cp, nil
	}

	arg := func(i int) (Atom, error) {
		if i >= len(c.Args) {
			return nil, fmt.Errorf("atom: %s %s 缺少第 %d 个参数", c.Pos, c.Name, i+1)
		}
		return fromItems(c.Args[i].Items)
	}
	argText := func(i int) (string, error) {
		if i >= len(c.Args) {
			return "", fmt.Errorf("atom: %s %s 缺少第 %d 个参数", c.Pos, c.Name, i+1)
		}
		text := ""
		for _, it := range c.Args[i].Items {
			switch {
			case it.Node.Letters != "":
				text += it.Node.Letters
			case it.Node.Number != "":
				text += it.Node.Number
			case it.Node.Symbol != "":
				text += it.Node.Symbol
			default:
				return "", fmt.Errorf("atom: %s %s 的第 %d 个参数应为字面文本", c.Pos, c.Name, i+1)
			}
		}
		return text, nil
	}

	switch c.Name {
	case `\frac`:
		num, err := arg(0)
		if err != nil {
			return nil, err
		}
		den, err := arg(1)
		if err != nil {
			return nil, err
		}
		return NewFrac(num, den), nil

	case `\phantom`:
		inner, err := arg(0)
		if err != nil {
			return nil, err
		}
		return &PhantomAtom{Inner: inner}, nil

	case `\color`:
		name, err := argText(0)
		if err != nil {
			return nil, err
		}
		fg, ok := namedColors[name]
		if !ok {
			return nil, fmt.Errorf("atom: %s 未知颜色 %q", c.Pos, name)
		}
		inner, err := arg(1)
		if err != nil {
			return nil, err
		}
		return &ColorAtom{Inner: inner, Fg: fg}, nil

	case `\scalebox`:
		factor, err := argText(0)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(factor, 64)
		if err != nil {
			return nil, fmt.Errorf("atom: %s 缩放因子 %q 不是数字: %w", c.Pos, factor, err)
		}
		inner, err := arg(1)
		if err != nil {
			return nil, err
		}
		return &ScaleAtom{Inner: inner, SX: f, SY: f}, nil

	case `\boxed`:
		inner, err := arg(0)
		if err != nil {
			return nil, err
		}
		return &FrameAtom{Inner: inner}, nil

	case `\quad`:
		return &SpaceAtom{Len: box.Length{Value: 1, Unit: box.UnitEm}}, nil
	case `\qquad`:
		return &SpaceAtom{Len: box.Length{Value: 2, Unit: box.UnitEm}}, nil

	case `\overline`, `\underline`, `\overbrace`, `\underbrace`,
		`\overrightarrow`, `\overleftarrow`, `\overleftrightarrow`:
		inner, err := arg(0)
		if err != nil {
			return nil, err
		}
		over := c.Name[1] == 'o'
		delim := box.DelimSingleLine
		switch c.Name {
		case `\overbrace`, `\underbrace`:
			delim = box.DelimBrace
		case `\overrightarrow`:
			delim = box.DelimRightArrow
		case `\overleftarrow`:
			delim = box.DelimLeftArrow
		case `\overleftrightarrow`:
			delim = box.DelimLeftRightArrow
		}
		return &OverUnderAtom{Inner: inner, Delim: delim, Over: over}, nil

	default:
		return nil, fmt.Errorf("atom: %s 未知命令 %s", c.Pos, c.Name)
	}
}
