package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/longbow/audio"
	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/scene"
)

func testSources() Sources {
	cfg := audio.DefaultConfig()
	cfg.SampleRate = 8000
	return Sources{Audio: cfg, Layout: scene.DefaultLayout(), Seed: 3}
}

func TestLoadDefaultBundle(t *testing.T) {
	b, err := Load(context.Background(), testSources())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Joints == nil || b.Shot == nil || b.World == nil {
		t.Fatalf("Expected complete bundle, got %+v", b)
	}
	if b.Joints.Name() != "recurve" {
		t.Errorf("Expected built-in recurve rig, got %q", b.Joints.Name())
	}
	if b.Shot.Len() == 0 {
		t.Error("Expected rendered shot samples")
	}
	if len(b.World.Trees) != 6 {
		t.Errorf("Expected 6 trees, got %d", len(b.World.Trees))
	}
}

func TestLoadRigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "longbow.yaml")
	rig := "name: longbow\ncount: 8\njoints: {string: 7, u1: 1, l1: 2}\nchains: {upper: [u1], lower: [l1]}\n"
	if err := os.WriteFile(path, []byte(rig), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src := testSources()
	src.RigPath = path
	b, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Joints.Name() != "longbow" || b.Joints.Count() != 8 {
		t.Errorf("Expected file rig, got %q with %d joints", b.Joints.Name(), b.Joints.Count())
	}
}

// TestLoadFailsWhole verifies a bad rig yields no bundle at all
func TestLoadFailsWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: bad\ncount: 1\njoints: {string: 4}\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src := testSources()
	src.RigPath = path
	b, err := Load(context.Background(), src)
	if b != nil {
		t.Error("Expected nil bundle on failure")
	}
	if !errors.Is(err, bow.ErrJointRange) {
		t.Errorf("Expected ErrJointRange, got %v", err)
	}
}

func TestLoadMissingRig(t *testing.T) {
	src := testSources()
	src.RigPath = filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := Load(context.Background(), src); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, testSources()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
