package box

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestTree 验证盒子树快照对组合与装饰的展开。
func TestTree(t *testing.T) {
	inner := NewTextBox("x", 2, 10, Dims{Width: 5, Height: 7, Depth: 2})
	g := NewHBox(inner, NewKern(3))
	root := NewColorBox(g, Color{R: 128})

	got := Tree(root)
	want := &TreeNode{
		Name: "ColorBox",
		Dims: Dims{Width: 8, Height: 7, Depth: 2},
		Children: []*TreeNode{
			{
				Name: "HBox",
				Dims: Dims{Width: 8, Height: 7, Depth: 2},
				Children: []*TreeNode{
					{Name: "TextBox", Text: "x", Dims: Dims{Width: 5, Height: 7, Depth: 2}},
					{Name: "StrutBox", Dims: Dims{Width: 3}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("盒子树快照不一致 (-want +got):\n%s", diff)
	}
}
