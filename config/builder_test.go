package config

import (
	"runtime"
	"testing"

	"github.com/jpalmerr/crunchboard"
)

func TestBuildOptions(t *testing.T) {
	cfg, err := Parse([]byte(`
listen_addr: 0.0.0.0:9090
prime_bound: 5000
matrix_size: 10
workers: 3
history_size: 5
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cb, err := crunchboard.New(BuildOptions(cfg)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if cb.ListenAddr() != "0.0.0.0:9090" {
		t.Errorf("ListenAddr() = %q, want %q", cb.ListenAddr(), "0.0.0.0:9090")
	}
	if cb.PrimeBound() != 5000 {
		t.Errorf("PrimeBound() = %d, want 5000", cb.PrimeBound())
	}
	if cb.MatrixSize() != 10 {
		t.Errorf("MatrixSize() = %d, want 10", cb.MatrixSize())
	}
	if cb.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", cb.Workers())
	}
}

func TestBuildOptions_DefaultWorkers(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cb, err := crunchboard.New(BuildOptions(cfg)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// zero workers in config means the SDK's per-CPU default applies
	if cb.Workers() != runtime.NumCPU() {
		t.Errorf("Workers() = %d, want %d", cb.Workers(), runtime.NumCPU())
	}
}
