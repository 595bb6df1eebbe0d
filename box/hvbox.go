package box

// 该文件提供两种最常用的组合盒子：水平列表 HBox 与垂直列表 VBox。
// 二者只负责在构造期聚合子盒子的度量；绘制时的定位由渲染后端
// 依据同样的度量规则完成。

// HBox 是水平列表：子盒子沿共同基线从左到右排列，子盒子的 Shift
// 在排列时作用于垂直方向。
type HBox struct {
	Group

	some bool // 是否已并入过子盒子度量
}

// NewHBox 创建水平列表并依次并入 children。
func NewHBox(children ...Box) *HBox {
	h := &HBox{}
	for _, c := range children {
		h.Add(c)
	}
	return h
}

// Add 追加子盒子并把它的几何并入整体度量。
func (h *HBox) Add(b Box) {
	h.Group.Add(b)
	h.accumulate(b)
}

// AddAt 在 pos 处插入子盒子。宽度与上下界的聚合与插入位置无关，
// 因此度量并入逻辑与 Add 一致。
func (h *HBox) AddAt(pos int, b Box) error {
	if err := h.Group.AddAt(pos, b); err != nil {
		return err
	}
	h.accumulate(b)
	return nil
}

func (h *HBox) accumulate(b Box) {
	d := b.Dims()
	h.Width += d.Width
	up := d.Height - d.Shift
	down := d.Depth + d.Shift
	if !h.some {
		h.Height = up
		h.Depth = down
		h.some = true
		return
	}
	if up > h.Height {
		h.Height = up
	}
	if down > h.Depth {
		h.Depth = down
	}
}

// Name 返回水平列表的标签。
func (h *HBox) Name() string { return "HBox" }

// VBox 是垂直列表：子盒子自上而下堆叠，Align 控制较窄子盒子的水平对齐，
// 子盒子的 Shift 在堆叠时作用于水平方向。
type VBox struct {
	Group
	Align Alignment
}

// NewVBox 创建垂直列表，基线与最后一个子盒子的基线重合。
func NewVBox(align Alignment, children ...Box) *VBox {
	return newVBox(align, false, children)
}

// NewVTop 创建垂直列表，基线与第一个子盒子的基线重合。
func NewVTop(align Alignment, children ...Box) *VBox {
	return newVBox(align, true, children)
}

func newVBox(align Alignment, top bool, children []Box) *VBox {
	v := &VBox{Align: align}
	total := 0.0
	firstHeight := 0.0
	lastDepth := 0.0
	for i, c := range children {
		v.Group.Add(c)
		d := c.Dims()
		if i == 0 {
			firstHeight = d.Height
		}
		total += d.Height + d.Depth
		if d.Width > v.Width {
			v.Width = d.Width
		}
		lastDepth = d.Depth
	}
	if len(children) == 0 {
		return v
	}
	if top {
		v.Height = firstHeight
		v.Depth = total - firstHeight
	} else {
		v.Height = total - lastDepth
		v.Depth = lastDepth
	}
	return v
}

// Name 返回垂直列表的标签。
func (v *VBox) Name() string { return "VBox" }

// AlignTo 将 b 放入宽度为 width 的水平盒中，多余空间按 align 放置：
// AlignLeft 放右侧、AlignRight 放左侧、AlignCenter 两侧均分，
// 其余取值视同 AlignLeft。width 不大于 b 的宽度时原样返回 b。
func AlignTo(b Box, width float64, align Alignment) Box {
	rest := width - b.Dims().Width
	if rest <= 0 {
		return b
	}
	h := NewHBox()
	switch align {
	case AlignRight:
		h.Add(NewKern(rest))
		h.Add(b)
	case AlignCenter:
		h.Add(NewKern(rest / 2))
		h.Add(b)
		h.Add(NewKern(rest / 2))
	default:
		h.Add(b)
		h.Add(NewKern(rest))
	}
	return h
}
