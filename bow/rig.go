package bow

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed rigs/recurve.yaml
var defaultRig []byte

// Joint names and chains the pose driver binds to
const (
	JointString = "string"
	ChainUpper  = "upper"
	ChainLower  = "lower"
)

var (
	ErrUnknownJoint   = errors.New("unknown joint")
	ErrJointRange     = errors.New("joint index out of range")
	ErrDuplicateJoint = errors.New("duplicate joint index")
)

// RigDescriptor is the on-disk rig layout
type RigDescriptor struct {
	Name   string              `yaml:"name"`
	Count  int                 `yaml:"count"`
	Joints map[string]int      `yaml:"joints"`
	Chains map[string][]string `yaml:"chains"`
}

// JointTable resolves joint and chain names to skeleton indices
// Built once at rig-load time and read-only afterwards
type JointTable struct {
	name   string
	count  int
	joints map[string]int
	chains map[string][]int
}

// LoadJointTable decodes and validates a YAML rig descriptor
func LoadJointTable(r io.Reader) (*JointTable, error) {
	var desc RigDescriptor
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("rig decode: %w", err)
	}
	return NewJointTable(desc)
}

// DefaultJointTable returns the table of the bundled recurve rig
func DefaultJointTable() (*JointTable, error) {
	return LoadJointTable(bytes.NewReader(defaultRig))
}

// NewJointTable validates desc and builds the lookup table
func NewJointTable(desc RigDescriptor) (*JointTable, error) {
	if desc.Count <= 0 {
		return nil, fmt.Errorf("rig %q: joint count must be positive, got %d", desc.Name, desc.Count)
	}

	jt := &JointTable{
		name:   desc.Name,
		count:  desc.Count,
		joints: make(map[string]int, len(desc.Joints)),
		chains: make(map[string][]int, len(desc.Chains)),
	}

	seen := make(map[int]string, len(desc.Joints))
	for name, idx := range desc.Joints {
		if idx < 0 || idx >= desc.Count {
			return nil, fmt.Errorf("rig %q joint %q=%d: %w", desc.Name, name, idx, ErrJointRange)
		}
		if other, ok := seen[idx]; ok {
			return nil, fmt.Errorf("rig %q joints %q and %q share %d: %w", desc.Name, other, name, idx, ErrDuplicateJoint)
		}
		seen[idx] = name
		jt.joints[name] = idx
	}

	for chain, names := range desc.Chains {
		indices := make([]int, 0, len(names))
		for _, name := range names {
			idx, ok := jt.joints[name]
			if !ok {
				return nil, fmt.Errorf("rig %q chain %q references %q: %w", desc.Name, chain, name, ErrUnknownJoint)
			}
			indices = append(indices, idx)
		}
		jt.chains[chain] = indices
	}

	return jt, nil
}

// Name returns the rig name
func (jt *JointTable) Name() string { return jt.name }

// Count returns the rig's joint count
func (jt *JointTable) Count() int { return jt.count }

// Joint resolves a joint name
func (jt *JointTable) Joint(name string) (int, error) {
	idx, ok := jt.joints[name]
	if !ok {
		return 0, fmt.Errorf("joint %q: %w", name, ErrUnknownJoint)
	}
	return idx, nil
}

// Chain resolves a chain name; the returned slice must not be modified
func (jt *JointTable) Chain(name string) ([]int, error) {
	indices, ok := jt.chains[name]
	if !ok || len(indices) == 0 {
		return nil, fmt.Errorf("chain %q: %w", name, ErrUnknownJoint)
	}
	return indices, nil
}
