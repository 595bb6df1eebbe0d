package box

import "strings"

// Style 是排版样式档位。四个基础档位取偶数值，最低位记录 cramped
// （紧凑）标记：紧凑档位不改变字号，只压低上标位置。数值编码参与
// 派生公式运算，不可改动。
type Style int

const (
	StyleDisplay      Style = 0 // 行间公式
	StyleText         Style = 2 // 行内公式
	StyleScript       Style = 4 // 上下标
	StyleScriptScript Style = 6 // 上下标的上下标
)

// Cramped 返回当前档位的紧凑变体。
func (s Style) Cramped() Style { return s | 1 }

// IsCramped 报告当前档位是否带紧凑标记。
func (s Style) IsCramped() bool { return s&1 == 1 }

// Sup 返回上标使用的档位。上标继承紧凑标记。
func (s Style) Sup() Style { return 2*(s/4) + 4 + s%2 }

// Sub 返回下标使用的档位。下标一律紧凑。
func (s Style) Sub() Style { return 2*(s/4) + 4 + 1 }

// Num 返回分子使用的档位。
func (s Style) Num() Style { return s + 2 - 2*(s/6) }

// Denom 返回分母使用的档位。分母一律紧凑。
func (s Style) Denom() Style { return 2*(s/2) + 1 + 2 - 2*(s/6) }

// String 返回档位名，紧凑变体带 ' 后缀。
func (s Style) String() string {
	name := "unknown"
	switch s &^ 1 {
	case StyleDisplay:
		name = "display"
	case StyleText:
		name = "text"
	case StyleScript:
		name = "script"
	case StyleScriptScript:
		name = "script-script"
	}
	if s.IsCramped() {
		name += "'"
	}
	return name
}

// ParseStyle 解析档位名，识别 display/text/script/script-script。
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "display":
		return StyleDisplay, true
	case "text":
		return StyleText, true
	case "script":
		return StyleScript, true
	case "script-script", "scriptscript":
		return StyleScriptScript, true
	default:
		return StyleText, false
	}
}
