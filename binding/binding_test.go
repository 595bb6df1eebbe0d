package binding

import "testing"

// TestInterpolate 验证占位符替换与路径寻址。
func TestInterpolate(t *testing.T) {
	data := map[string]interface{}{
		"a":     float64(3),
		"ratio": 0.5,
		"name":  "x",
		"rows": []interface{}{
			map[string]interface{}{"v": float64(7)},
		},
	}

	cases := []struct {
		in   string
		want string
	}{
		{`\frac{${a}}{2}`, `\frac{3}{2}`},
		{`${ratio} + ${name}`, `0.5 + x`},
		{`${rows[0].v}`, `7`},
		{`${missing} + 1`, `${missing} + 1`}, // 路径不存在时保留占位符
		{`no placeholders`, `no placeholders`},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) 期望 %q，实际 %q", c.in, c.want, got)
		}
	}

	// data 为空时原样返回。
	if got := Interpolate(`${a}`, nil); got != `${a}` {
		t.Fatalf("空数据应原样返回，实际 %q", got)
	}
}

// TestFormatFloat 验证浮点值不会以科学记数法进入公式源码。
func TestFormatFloat(t *testing.T) {
	data := map[string]interface{}{"big": float64(1000000)}
	if got := Interpolate(`${big}`, data); got != "1000000" {
		t.Fatalf("大数格式化错误: %q", got)
	}
}
