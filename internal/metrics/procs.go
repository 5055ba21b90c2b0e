package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/sot/internal/errors"
)

// ProcessSort selects the ordering of a process list.
type ProcessSort int

const (
	SortByCPU ProcessSort = iota
	SortByMemory
	SortByPID
	SortByName
)

// String returns the config name of the sort order.
func (s ProcessSort) String() string {
	switch s {
	case SortByCPU:
		return "cpu"
	case SortByMemory:
		return "mem"
	case SortByPID:
		return "pid"
	case SortByName:
		return "name"
	default:
		return fmt.Sprintf("sort(%d)", int(s))
	}
}

// Next cycles through the sort orders.
func (s ProcessSort) Next() ProcessSort {
	return (s + 1) % 4
}

// ParseProcessSort converts a config value into a ProcessSort.
func ParseProcessSort(v string) (ProcessSort, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "cpu", "":
		return SortByCPU, nil
	case "mem", "memory":
		return SortByMemory, nil
	case "pid":
		return SortByPID, nil
	case "name":
		return SortByName, nil
	default:
		return SortByCPU, fmt.Errorf("unknown process sort %q", v)
	}
}

// SortProcesses orders procs in place. CPU and memory sort descending, PID
// and name ascending; ties fall back to PID.
func SortProcesses(procs []ProcessInfo, by ProcessSort) {
	sort.SliceStable(procs, func(i, j int) bool {
		a, b := procs[i], procs[j]
		switch by {
		case SortByCPU:
			if a.CPUPercent != b.CPUPercent {
				return a.CPUPercent > b.CPUPercent
			}
		case SortByMemory:
			if a.RSSBytes != b.RSSBytes {
				return a.RSSBytes > b.RSSBytes
			}
		case SortByName:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				return an < bn
			}
		}
		return a.PID < b.PID
	})
}

// Processes lists running processes sorted by CPU, highest first, truncated
// to limit (no limit if limit <= 0). PID 0 is skipped. CPU percent is
// measured since the previous call, so a process reports 0 the first time
// it is seen.
func (s *Sampler) Processes(ctx context.Context, limit int) ([]ProcessInfo, error) {
	pids, err := s.src.Pids(ctx)
	if err != nil {
		return nil, s.collectErr(err, "process list")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int32]struct{}, len(pids))
	procs := make([]ProcessInfo, 0, len(pids))

	for _, pid := range pids {
		if pid == 0 {
			continue
		}
		seen[pid] = struct{}{}

		p, ok := s.procs[pid]
		if !ok {
			p, err = s.src.NewProc(ctx, pid)
			if err != nil {
				// Exited between listing and lookup.
				continue
			}
			s.procs[pid] = p
		}

		info, err := s.readProcess(ctx, pid, p)
		if err != nil {
			s.log.Debug("skip pid %d: %v", pid, err)
			delete(s.procs, pid)
			continue
		}
		procs = append(procs, info)
	}

	for pid := range s.procs {
		if _, ok := seen[pid]; !ok {
			delete(s.procs, pid)
		}
	}

	SortProcesses(procs, SortByCPU)
	if limit > 0 && len(procs) > limit {
		procs = procs[:limit]
	}
	return procs, nil
}

// readProcess fills a ProcessInfo. Only the name is required; other fields
// are commonly denied for processes owned by other users.
func (s *Sampler) readProcess(ctx context.Context, pid int32, p Proc) (ProcessInfo, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, err
	}

	info := ProcessInfo{PID: pid, Name: name}

	if cpu, err := p.PercentWithContext(ctx, 0); err == nil {
		info.CPUPercent = cpu
	}
	if user, err := p.UsernameWithContext(ctx); err == nil {
		info.User = user
	}
	if cmd, err := p.CmdlineWithContext(ctx); err == nil {
		info.Command = cmd
	}
	if status, err := p.StatusWithContext(ctx); err == nil && len(status) > 0 {
		info.Status = status[0]
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		info.Threads = n
	}
	if m, err := p.MemoryInfoWithContext(ctx); err == nil && m != nil {
		info.RSSBytes = m.RSS
	}
	if pct, err := p.MemoryPercentWithContext(ctx); err == nil {
		info.MemPercent = pct
	}

	return info, nil
}

// Terminate sends SIGTERM to pid.
func (s *Sampler) Terminate(ctx context.Context, pid int32) error {
	return s.signal(ctx, pid, "terminate", Proc.TerminateWithContext)
}

// Kill sends SIGKILL to pid.
func (s *Sampler) Kill(ctx context.Context, pid int32) error {
	return s.signal(ctx, pid, "kill", Proc.KillWithContext)
}

func (s *Sampler) signal(ctx context.Context, pid int32, verb string, send func(Proc, context.Context) error) error {
	if pid <= 0 {
		return errors.New(errors.ErrProcess,
			fmt.Sprintf("Refusing to %s pid %d", verb, pid),
			"Select a regular process first.")
	}

	s.mu.Lock()
	p, ok := s.procs[pid]
	s.mu.Unlock()

	if !ok {
		var err error
		p, err = s.src.NewProc(ctx, pid)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrProcess,
				fmt.Sprintf("Process %d no longer exists", pid),
				"Refresh the process list and try again.")
		}
	}

	if err := send(p, ctx); err != nil {
		s.log.Debug("%s pid %d: %v", verb, pid, err)
		return errors.WrapWithCode(err, errors.ErrProcess,
			fmt.Sprintf("Couldn't %s process %d", verb, pid),
			"You may need elevated privileges to signal processes owned by other users.")
	}

	s.log.Info("sent %s to pid %d", verb, pid)
	return nil
}
