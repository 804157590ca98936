package tunhong

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/riverfjs/tunhong-go/internal/types"
)

// 导出类型别名
type (
	Tag       = types.Tag
	TagConfig = types.TagConfig
)

var (
	defaultTags     TagConfig
	defaultTagsOnce sync.Once
)

// DefaultTags returns a copy of the default tag configuration:
// chinese → <span lang="zh">…</span>, tibetan → <span lang="bo">…</span>.
func DefaultTags() TagConfig {
	defaultTagsOnce.Do(func() {
		defaultTags = types.DefaultTagConfig()
	})
	return defaultTags.Clone()
}

// mergeTags 返回 DefaultTags 与 tags 合并后的配置，tags 中的条目优先
func mergeTags(tags TagConfig) TagConfig {
	merged := DefaultTags()
	for m, t := range tags {
		merged[m] = t
	}
	return merged
}

// LoadTagConfig 从 JSON 读取标签配置
//
// 格式：{"chinese": ["[c]", "[ↄ]"], "tibetan": ["[t]", "[ʇ]"]}
// 每个值必须恰好包含开、闭两个标签。
func LoadTagConfig(r io.Reader) (TagConfig, error) {
	var tags TagConfig
	if err := json.NewDecoder(r).Decode(&tags); err != nil {
		return nil, fmt.Errorf("tunhong: decode tag config: %w", err)
	}
	for m := range tags {
		if m == "" {
			return nil, fmt.Errorf("tunhong: tag config has an empty mode name")
		}
	}
	return tags, nil
}

// UnknownModes returns the modes of tags that p never produces, sorted.
// A misspelled mode such as "chines" shows up here; each one is logged.
func (p *Parser) UnknownModes(tags TagConfig) []Mode {
	known := p.Modes()
	var unknown []Mode
	for m := range tags {
		if !slices.Contains(known, m) {
			unknown = append(unknown, m)
		}
	}
	slices.Sort(unknown)
	for _, m := range unknown {
		Logger.Printf("tag config mode %q is not produced by the classifier", m)
	}
	return unknown
}
