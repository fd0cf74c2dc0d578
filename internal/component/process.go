package component

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
)

// AddressEnv tells a child component where to listen.
const AddressEnv = "TRACKCORE_COMPONENT_ADDRESS"

// childProcess is a component running as a child of this process.
type childProcess struct {
	id   string
	cmd  *exec.Cmd
	proc *process.Process
	done chan struct{}

	stopOnce sync.Once
}

// startProcess launches cfg. A command without args runs through /bin/sh
// so configuration can use shell syntax.
func startProcess(id string, cfg *protocol.ProcessConfig, address string) (*childProcess, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("component %s: empty process command", id)
	}
	var cmd *exec.Cmd
	if len(cfg.Args) == 0 {
		cmd = exec.Command("/bin/sh", "-c", cfg.Command)
	} else {
		cmd = exec.Command(cfg.Command, cfg.Args...)
	}
	cmd.Dir = cfg.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), AddressEnv+"="+address)
	for k, v := range cfg.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("component %s: start: %w", id, err)
	}

	p := &childProcess{id: id, cmd: cmd, done: make(chan struct{})}
	if proc, err := process.NewProcess(int32(cmd.Process.Pid)); err == nil {
		p.proc = proc
	}
	go func() {
		err := cmd.Wait()
		close(p.done)
		monitoring.L().Info("component process exited",
			zap.String("component", id), zap.Int("pid", cmd.Process.Pid), zap.Error(err))
	}()
	return p, nil
}

// running reports whether the process has not exited yet.
func (p *childProcess) running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// stop kills the process and everything it started, then waits for it.
func (p *childProcess) stop() {
	p.stopOnce.Do(func() {
		if !p.running() {
			return
		}
		if p.proc != nil {
			killTree(p.proc)
		}
		_ = p.cmd.Process.Kill()
		<-p.done
	})
}

func killTree(p *process.Process) {
	children, _ := p.Children()
	for _, c := range children {
		killTree(c)
	}
	_ = p.Kill()
}

// sample records resource usage of the process tree root.
func (p *childProcess) sample(m *monitoring.Metrics) {
	if m == nil || p.proc == nil || !p.running() {
		return
	}
	if mem, err := p.proc.MemoryInfo(); err == nil {
		m.ComponentRSS.WithLabelValues(p.id).Set(float64(mem.RSS))
	}
	if cpu, err := p.proc.CPUPercent(); err == nil {
		m.ComponentCPU.WithLabelValues(p.id).Set(cpu)
	}
}
