package box

import "strings"

// 该文件枚举盒子模型消费方共享的布局策略词汇：对齐方式、原子类别
// 与延展定界符族。间距规则本身由上层实现，这里只固定词汇与取值。

// Alignment 控制多余空间的放置方向，水平与垂直方向均可使用。
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
	AlignNone
)

// String 返回对齐方式的短名。
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseAlignment 解析对齐方式，支持 start/end 别名；无法识别时返回 AlignNone。
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignLeft
	case "right", "end":
		return AlignRight
	case "center", "middle":
		return AlignCenter
	case "top":
		return AlignTop
	case "bottom":
		return AlignBottom
	default:
		return AlignNone
	}
}

// AtomType 是原子的类别，驱动上层间距规则对相邻原子对的查询。
// 数值与既有间距表的索引保持兼容，不可重排。
type AtomType int

const (
	TypeOrdinary       AtomType = 0  // 普通符号
	TypeBigOperator    AtomType = 1  // 巨算符，如求和号
	TypeBinaryOperator AtomType = 2  // 二元运算符，如加号
	TypeRelation       AtomType = 3  // 关系符，如等号
	TypeOpening        AtomType = 4  // 开定界符，如左花括号
	TypeClosing        AtomType = 5  // 闭定界符，如右花括号
	TypePunctuation    AtomType = 6  // 标点，如逗号
	TypeInner          AtomType = 7  // 内嵌原子（不用于符号）
	TypeAccent         AtomType = 10 // 重音
	TypeInterText      AtomType = 11 // 矩阵环境中的行间文本
	TypeMultiColumn    AtomType = 12 // 矩阵环境中的跨列
	TypeHLine          AtomType = 13 // 矩阵环境中的水平线
	TypeMultiRow       AtomType = 14 // 矩阵环境中的跨行
)

// String 返回原子类别的短名。
func (t AtomType) String() string {
	switch t {
	case TypeOrdinary:
		return "ordinary"
	case TypeBigOperator:
		return "big-operator"
	case TypeBinaryOperator:
		return "binary-operator"
	case TypeRelation:
		return "relation"
	case TypeOpening:
		return "opening"
	case TypeClosing:
		return "closing"
	case TypePunctuation:
		return "punctuation"
	case TypeInner:
		return "inner"
	case TypeAccent:
		return "accent"
	case TypeInterText:
		return "inter-text"
	case TypeMultiColumn:
		return "multi-column"
	case TypeHLine:
		return "hline"
	case TypeMultiRow:
		return "multi-row"
	default:
		return "unknown"
	}
}

// Delimiter 选择上/下延展定界符使用的字形族。
type Delimiter int

const (
	DelimBrace Delimiter = iota
	DelimSquareBracket
	DelimBracket
	DelimLeftArrow
	DelimRightArrow
	DelimLeftRightArrow
	DelimDoubleLeftArrow
	DelimDoubleRightArrow
	DelimDoubleLeftRightArrow
	DelimSingleLine
	DelimDoubleLine
)

// String 返回定界符族的短名。
func (d Delimiter) String() string {
	switch d {
	case DelimBrace:
		return "brace"
	case DelimSquareBracket:
		return "square-bracket"
	case DelimBracket:
		return "bracket"
	case DelimLeftArrow:
		return "left-arrow"
	case DelimRightArrow:
		return "right-arrow"
	case DelimLeftRightArrow:
		return "left-right-arrow"
	case DelimDoubleLeftArrow:
		return "double-left-arrow"
	case DelimDoubleRightArrow:
		return "double-right-arrow"
	case DelimDoubleLeftRightArrow:
		return "double-left-right-arrow"
	case DelimSingleLine:
		return "single-line"
	case DelimDoubleLine:
		return "double-line"
	default:
		return "unknown"
	}
}
