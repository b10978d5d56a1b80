package probe

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func listenerPort(t *testing.T, l net.Listener) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(l.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return port
}

func TestReadinessCheck_ReachableNoBucket(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	p := New(zap.NewNop(), nil, "127.0.0.1", listenerPort(t, l), "")
	if err := p.ReadinessCheck(context.Background()); err != nil {
		t.Fatalf("want success, got %v", err)
	}
}

func TestReadinessCheck_UnresolvableHost(t *testing.T) {
	p := New(zap.NewNop(), nil, "host.invalid", 80, "")
	p.Grace = 2 * time.Second

	err := p.ReadinessCheck(context.Background())
	if err == nil {
		t.Fatalf("want failure for unresolvable host")
	}
	if !strings.Contains(err.Error(), "dial") {
		t.Fatalf("want dial error in message, got %v", err)
	}
}

func TestReadinessCheck_NothingListening(t *testing.T) {
	// Reserve a port, then free it so nothing listens there.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := listenerPort(t, l)
	l.Close()

	p := New(zap.NewNop(), nil, "127.0.0.1", port, "")
	p.Grace = time.Second

	start := time.Now()
	if err := p.ReadinessCheck(context.Background()); err == nil {
		t.Fatalf("want failure on closed port")
	}
	if elapsed := time.Since(start); elapsed > p.Grace+time.Second {
		t.Fatalf("check overran the grace interval: %v", elapsed)
	}
}

func TestReadinessCheck_BucketAccess(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	port := listenerPort(t, l)

	denied := &fakeStore{headErr: errors.New("403 forbidden")}
	p := New(zap.NewNop(), denied, "127.0.0.1", port, "secret-bucket")
	err = p.ReadinessCheck(context.Background())
	if err == nil {
		t.Fatalf("want failure for inaccessible bucket")
	}
	if !strings.Contains(err.Error(), "bucket secret-bucket") || !strings.Contains(err.Error(), "403") {
		t.Fatalf("want wrapped bucket error, got %v", err)
	}

	allowed := &fakeStore{}
	p = New(zap.NewNop(), allowed, "127.0.0.1", port, "secret-bucket")
	if err := p.ReadinessCheck(context.Background()); err != nil {
		t.Fatalf("want success with accessible bucket, got %v", err)
	}
}
