package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/chalk/atom"
	"github.com/ByLCY/chalk/binding"
	"github.com/ByLCY/chalk/box"
	"github.com/ByLCY/chalk/dsl"
	canvasrenderer "github.com/ByLCY/chalk/renderer/canvas"
)

func main() {
	formula := flag.String("formula", "", "公式源码（与 -in 二选一）")
	input := flag.String("in", "", "公式文件路径")
	output := flag.String("out", "output/formula.pdf", "PDF 输出路径")
	debug := flag.String("debug", "", "盒子树调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到公式的 JSON 数据")
	fontSrc := flag.String("font", "", "字体来源（builtin:名字 或文件路径）")
	size := flag.Float64("size", 12, "基准字号（pt）")
	styleName := flag.String("style", "display", "样式档位（display/text/script/script-script）")
	padding := flag.Float64("padding", 6, "页面四周留白（pt）")
	flag.Parse()

	source := *formula
	if source == "" {
		if *input == "" {
			log.Fatalf("必须指定 -formula 或 -in")
		}
		raw, err := os.ReadFile(*input)
		if err != nil {
			log.Fatalf("无法读取公式文件 %s: %v", *input, err)
		}
		source = string(raw)
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	baseDir := "."
	if *input != "" {
		baseDir = filepath.Dir(*input)
	}
	r := canvasrenderer.NewRenderer(baseDir)

	if err := run(source, *output, *debug, inputData, *fontSrc, *size, *styleName, *padding, r); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// run 串联插值、解析、原子转换、排版与渲染。
func run(source, outputPath, debugPath string, data any, fontSrc string, size float64, styleName string, padding float64, r *canvasrenderer.Renderer) error {
	source = binding.Interpolate(source, data)

	f, err := dsl.ParseString(source)
	if err != nil {
		return fmt.Errorf("解析公式失败: %w", err)
	}
	root, err := atom.FromFormula(f)
	if err != nil {
		return fmt.Errorf("公式语义错误: %w", err)
	}

	if fontSrc == "" {
		return fmt.Errorf("必须用 -font 指定字体来源")
	}
	fontID, err := r.LoadFont("Math", fontSrc)
	if err != nil {
		return fmt.Errorf("装载字体失败: %w", err)
	}

	style, ok := box.ParseStyle(styleName)
	if !ok {
		return fmt.Errorf("未知样式档位 %q", styleName)
	}

	result, err := atom.Layout(root, atom.Options{
		Style:   style,
		Size:    size,
		FontID:  fontID,
		Fonts:   r,
		Padding: padding,
	})
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result.Root, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

func writeDebug(root box.Box, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := box.WriteDebugJSON(root, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
