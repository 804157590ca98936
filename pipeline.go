package tunhong

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseAll 并发解析多个文本，结果顺序与输入一致
//
// 每个文本使用独立的 Markup。workers <= 0 时使用 runtime.NumCPU()。
// 第一个错误（包括 ctx 取消）会停止尚未开始的任务并被返回。
func (p *Parser) ParseAll(ctx context.Context, texts []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]string, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.Parse(text)
			if err != nil {
				Logger.Printf("parse of input %d failed: %v", i, err)
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
