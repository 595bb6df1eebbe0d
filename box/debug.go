package box

import (
	"encoding/json"
	"os"
)

// TreeNode 是盒子树的可序列化快照，只依赖 Box 的公共读取接口。
type TreeNode struct {
	Name     string `json:"name"`
	Text     string `json:"text,omitempty"`
	Dims
	Children []*TreeNode `json:"children,omitempty"`
}

// Tree 把任意盒子树转换为快照。组合盒子经 Container 展开，
// 装饰盒子经 Wrapper 展开为单子节点。
func Tree(b Box) *TreeNode {
	n := &TreeNode{Name: b.Name(), Text: b.String(), Dims: *b.Dims()}
	switch t := b.(type) {
	case Container:
		for _, c := range t.Boxes() {
			n.Children = append(n.Children, Tree(c))
		}
	case Wrapper:
		n.Children = append(n.Children, Tree(t.Unwrap()))
	}
	return n
}

// WriteDebugJSON 将盒子树输出为 JSON，便于调试或可视化。
func WriteDebugJSON(b Box, path string) error {
	if b == nil {
		return nil
	}
	data, err := json.MarshalIndent(Tree(b), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
