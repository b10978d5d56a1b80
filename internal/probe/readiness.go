package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// ReadinessCheck verifies the target accepts TCP connections and, if a
// bucket is configured, that the bucket is accessible. The dial races the
// grace interval: a connection within the window is success, anything else
// (refusal, reset, or silence until the window closes) is failure. This is
// a best-effort reachability gate, not a handshake with the service.
func (p *Probe) ReadinessCheck(ctx context.Context) error {
	addr := net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	d := net.Dialer{Timeout: p.Grace}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("readiness: dial %s: %w", addr, err)
	}
	_ = conn.Close()

	if p.Bucket == "" {
		return nil
	}
	if err := p.Store.HeadBucket(ctx, p.Bucket); err != nil {
		return fmt.Errorf("readiness: bucket %s: %w", p.Bucket, err)
	}
	return nil
}
