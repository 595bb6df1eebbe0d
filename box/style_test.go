package box

import "testing"

// TestStyleCramped 验证紧凑标记的编码与判定。
func TestStyleCramped(t *testing.T) {
	for _, s := range []Style{StyleDisplay, StyleText, StyleScript, StyleScriptScript} {
		if s.IsCramped() {
			t.Fatalf("基础档位 %v 不应带紧凑标记", s)
		}
		c := s.Cramped()
		if !c.IsCramped() {
			t.Fatalf("%v 的紧凑变体判定失败", s)
		}
		if c.Cramped() != c {
			t.Fatalf("紧凑变体应幂等")
		}
	}
}

// TestStyleDerived 验证上下标与分子分母的派生档位表。
func TestStyleDerived(t *testing.T) {
	cases := []struct {
		s                    Style
		sup, sub, num, denom Style
	}{
		{StyleDisplay, StyleScript, StyleScript.Cramped(), StyleText, StyleText.Cramped()},
		{StyleDisplay.Cramped(), StyleScript.Cramped(), StyleScript.Cramped(), StyleText.Cramped(), StyleText.Cramped()},
		{StyleText, StyleScript, StyleScript.Cramped(), StyleScript, StyleScript.Cramped()},
		{StyleText.Cramped(), StyleScript.Cramped(), StyleScript.Cramped(), StyleScript.Cramped(), StyleScript.Cramped()},
		{StyleScript, StyleScriptScript, StyleScriptScript.Cramped(), StyleScriptScript, StyleScriptScript.Cramped()},
		{StyleScriptScript, StyleScriptScript, StyleScriptScript.Cramped(), StyleScriptScript, StyleScriptScript.Cramped()},
	}
	for _, c := range cases {
		if got := c.s.Sup(); got != c.sup {
			t.Fatalf("%v.Sup() 期望 %v，实际 %v", c.s, c.sup, got)
		}
		if got := c.s.Sub(); got != c.sub {
			t.Fatalf("%v.Sub() 期望 %v，实际 %v", c.s, c.sub, got)
		}
		if got := c.s.Num(); got != c.num {
			t.Fatalf("%v.Num() 期望 %v，实际 %v", c.s, c.num, got)
		}
		if got := c.s.Denom(); got != c.denom {
			t.Fatalf("%v.Denom() 期望 %v，实际 %v", c.s, c.denom, got)
		}
	}
}

// TestParseStyle 验证档位名解析。
func TestParseStyle(t *testing.T) {
	if s, ok := ParseStyle("Display"); !ok || s != StyleDisplay {
		t.Fatalf("display 解析失败: %v %v", s, ok)
	}
	if s, ok := ParseStyle("script-script"); !ok || s != StyleScriptScript {
		t.Fatalf("script-script 解析失败: %v %v", s, ok)
	}
	if _, ok := ParseStyle("huge"); ok {
		t.Fatalf("未知档位不应解析成功")
	}
}
