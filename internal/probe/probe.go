package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/storage"
)

// Probe drives test runs against one target service. Construct once per
// host:port and reuse across sequential runs; operations are meant to be
// called one at a time, in Setup → Fetch → CheckResult → PersistResult
// order. Ordering is a caller contract, not enforced here.
type Probe struct {
	Host   string
	Port   int
	Bucket string // empty: result keys go to the logger instead of storage
	Store  storage.ObjectStore
	Client *http.Client
	Logger *zap.Logger
	Grace  time.Duration // readiness grace interval
}

func New(logger *zap.Logger, store storage.ObjectStore, host string, port int, bucket string) *Probe {
	return &Probe{
		Host:   host,
		Port:   port,
		Bucket: bucket,
		Store:  store,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
		Grace:  5 * time.Second,
	}
}

// Setup begins a new run. Any state from a previous run is left behind in
// the old Run value.
func (p *Probe) Setup(testID, path, query string) *Run {
	return &Run{
		TestID:    testID,
		Path:      path,
		Query:     query,
		StartedMS: time.Now().UnixMilli(),
	}
}

// targetURL builds the GET URL for a run. The query value, when present,
// rides as an extra path segment (not as ?k=v); the services under test
// route on it that way.
func (p *Probe) targetURL(run *Run) string {
	u := fmt.Sprintf("http://%s/%s", net.JoinHostPort(p.Host, strconv.Itoa(p.Port)), run.Path)
	if run.Query != "" {
		u += "/" + run.Query
	}
	return u
}

// Fetch GETs the run's path on the target and appends the response body to
// the run as chunks arrive. Accumulation is unbounded. Status codes are not
// interpreted; only transport failures make Fetch fail.
func (p *Probe) Fetch(ctx context.Context, run *Run) error {
	url := p.targetURL(run)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	buf := make([]byte, 4096)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			run.Body.Write(buf[:n])
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("fetch %s: read body: %w", url, rerr)
		}
	}
}

// CheckResult sets the run's verdict: pass iff match occurs in the
// accumulated body (exact, case-sensitive). Returns the verdict for
// convenience.
func (p *Probe) CheckResult(run *Run, match string) bool {
	run.Passed = strings.Contains(run.Body.String(), match)
	return run.Passed
}

// PersistResult writes the run's result key. With no bucket configured the
// key is logged and storage is never touched; otherwise an empty object is
// put under the key. PersistResult records the verdict as-is; it does not
// re-evaluate it.
func (p *Probe) PersistResult(ctx context.Context, run *Run) (string, error) {
	key := run.ResultKey()
	if p.Bucket == "" {
		p.Logger.Info("run_result", zap.String("key", key))
		return key, nil
	}
	if err := p.Store.PutObject(ctx, p.Bucket, key, nil); err != nil {
		return key, fmt.Errorf("persist result: %w", err)
	}
	return key, nil
}
