// Package fonts 提供字体字节数据的装载：注册表里的内置字体或磁盘文件。
// 嵌入字体的发行版在 init 里调用 Register 填充注册表。
package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[string][]byte{}
)

// Register 注册一份内置字体数据，重名时覆盖。
func Register(name string, data []byte) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = data
}

// Names 返回已注册的内置字体名，按字典序。
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Load 返回字体的字节数据。src 写为 "builtin:名字" 时查注册表，
// 否则按磁盘路径读取。
func Load(src string) ([]byte, error) {
	if name, ok := strings.CutPrefix(src, "builtin:"); ok {
		mu.RLock()
		data, found := registry[name]
		mu.RUnlock()
		if !found {
			return nil, fmt.Errorf("fonts: 未注册的内置字体 %q", name)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("fonts: 读取字体文件 %s 失败: %w", src, err)
	}
	return data, nil
}
