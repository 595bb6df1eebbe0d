// Package atom 把公式 AST 表达为原子序列，并在给定环境下把原子转换为
// 盒子树。原子是携带类别（用于间距规则）的语义单元；盒子是纯几何结果。
package atom

import "github.com/ByLCY/chalk/box"

// Atom 是公式的语义单元。
type Atom interface {
	// LeftType 返回与左邻原子计算间距时使用的类别。
	LeftType() box.AtomType
	// RightType 返回与右邻原子计算间距时使用的类别。
	RightType() box.AtomType
	// CreateBox 在环境 env 下把原子转换为盒子。
	CreateBox(env *Env) (box.Box, error)
}
