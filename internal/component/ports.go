package component

import (
	"fmt"
	"net"
	"strconv"
)

const portRetries = 100

// PortFinder hands out free local TCP ports counting up from a start port.
type PortFinder struct {
	start int
	next  int
}

// NewPortFinder returns a finder starting at start.
func NewPortFinder(start int) *PortFinder {
	return &PortFinder{start: start}
}

// Next returns the next port that can currently be bound. A port is never
// handed out twice.
func (f *PortFinder) Next() (int, error) {
	for i := 0; i < portRetries; i++ {
		port := f.start + f.next
		f.next++
		if port > 65535 {
			break
		}
		if portFree(port) {
			return port, nil
		}
	}
	return 0, fmt.Errorf("component: no free port in %d-%d", f.start, f.start+f.next)
}

func portFree(port int) bool {
	l, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}
