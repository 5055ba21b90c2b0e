package metrics

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

var errBoom = stderrors.New("boom")

// fakeProc implements Proc with canned values.
type fakeProc struct {
	name       string
	nameErr    error
	user       string
	cmd        string
	status     []string
	threads    int32
	rss        uint64
	memPct     float32
	cpu        []float64 // successive PercentWithContext results
	calls      int
	terminated bool
	killed     bool
	signalErr  error
}

func (p *fakeProc) NameWithContext(context.Context) (string, error) { return p.name, p.nameErr }
func (p *fakeProc) UsernameWithContext(context.Context) (string, error) {
	return p.user, nil
}
func (p *fakeProc) CmdlineWithContext(context.Context) (string, error) { return p.cmd, nil }
func (p *fakeProc) StatusWithContext(context.Context) ([]string, error) {
	return p.status, nil
}
func (p *fakeProc) NumThreadsWithContext(context.Context) (int32, error) { return p.threads, nil }
func (p *fakeProc) MemoryInfoWithContext(context.Context) (*process.MemoryInfoStat, error) {
	return &process.MemoryInfoStat{RSS: p.rss}, nil
}
func (p *fakeProc) MemoryPercentWithContext(context.Context) (float32, error) {
	return p.memPct, nil
}

func (p *fakeProc) PercentWithContext(context.Context, time.Duration) (float64, error) {
	if len(p.cpu) == 0 {
		return 0, nil
	}
	i := p.calls
	if i >= len(p.cpu) {
		i = len(p.cpu) - 1
	}
	p.calls++
	return p.cpu[i], nil
}

func (p *fakeProc) TerminateWithContext(context.Context) error {
	p.terminated = true
	return p.signalErr
}

func (p *fakeProc) KillWithContext(context.Context) error {
	p.killed = true
	return p.signalErr
}

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
