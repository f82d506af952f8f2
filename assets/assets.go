// Package assets gathers everything the simulation needs before it can be built
package assets

import (
	"context"
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/longbow/audio"
	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/scene"
)

// Sources describes where each asset comes from
type Sources struct {
	// RigPath is a YAML rig descriptor; empty uses the built-in recurve
	RigPath string
	Audio   audio.Config
	Layout  scene.Layout
	Seed    uint64
}

// Bundle is the resolved set of startup assets; every field is non-nil
type Bundle struct {
	Joints *bow.JointTable
	Shot   *beep.Buffer
	World  *scene.World
}

// Load resolves all sources concurrently and fails on the first error
// Nothing partial is returned: either the whole bundle or an error
func Load(ctx context.Context, src Sources) (*Bundle, error) {
	var b Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		jt, err := loadRig(ctx, src.RigPath)
		if err != nil {
			return err
		}
		b.Joints = jt
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.Shot = audio.RenderShot(src.Audio)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.World = scene.Populate(src.Layout, src.Seed)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

func loadRig(ctx context.Context, path string) (*bow.JointTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		jt, err := bow.DefaultJointTable()
		if err != nil {
			return nil, fmt.Errorf("loading built-in rig: %w", err)
		}
		return jt, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading rig: %w", err)
	}
	defer f.Close()

	jt, err := bow.LoadJointTable(f)
	if err != nil {
		return nil, fmt.Errorf("loading rig %s: %w", path, err)
	}
	return jt, nil
}
