package utils

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool 表示一个工作池
type WorkerPool struct {
	jobs    chan func()
	wg      sync.WaitGroup // 工作协程
	pending sync.WaitGroup // 已提交但未完成的任务
	workers int
	closed  atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerPool 创建一个新的工作池
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobs:    make(chan func(), workers*2), // 缓冲区大小为工作者数量的2倍
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
	pool.Start()
	return pool
}

// Workers 返回工作协程数量
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Start 启动工作池
func (p *WorkerPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					job()
					p.pending.Done()
				}
			}
		}()
	}
}

// Submit 提交一个任务到工作池
// 如果工作池已关闭，返回false，否则返回true
func (p *WorkerPool) Submit(job func()) bool {
	if p.closed.Load() {
		return false
	}

	p.pending.Add(1)
	select {
	case p.jobs <- job:
		return true
	case <-p.ctx.Done():
		p.pending.Done()
		return false
	}
}

// Wait 等待所有已提交的任务完成
func (p *WorkerPool) Wait() {
	p.pending.Wait()
}

// Stop 停止工作池
// 尚未开始的任务会被丢弃，需要全部完成时先调用Wait
func (p *WorkerPool) Stop() {
	// 如果已经关闭，直接返回
	if p.closed.Swap(true) {
		return
	}

	// 取消上下文，通知所有工作协程退出
	p.cancel()

	// 关闭通道前确保所有工作协程已退出循环
	close(p.jobs)

	// 等待所有工作协程完成
	p.wg.Wait()
}
