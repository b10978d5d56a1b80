package repo_test

import (
	"testing"

	"github.com/hamed0406/serviceprobe/internal/repo"
	"github.com/hamed0406/serviceprobe/internal/repo/memory"
	pg "github.com/hamed0406/serviceprobe/internal/repo/postgres"
)

// Compile-time interface satisfaction checks.
// Using external test package avoids import cycle.
func TestInterfaceSatisfaction(t *testing.T) {
	var _ repo.SpecStore = memory.New()
	var _ repo.RunStore = memory.New()

	// Postgres store types compile against the interfaces, too.
	var _ repo.SpecStore = (*pg.Store)(nil)
	var _ repo.RunStore = (*pg.Store)(nil)
}
