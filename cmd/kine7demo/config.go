package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/kine7/pkg/robot/kinematics/srs"
	"github.com/itohio/kine7/x/math/interval"
)

// geometryConfig is the YAML shape of an S-R-S arm's geometry: link
// lengths, offset, joint travel limits in radians, and the singularity
// detection bound. Mirrors the teacher's config-loader pattern (a plain
// struct decoded straight from YAML) without the teacher's multi-format
// marshaller framework, which this core has no other use for.
type geometryConfig struct {
	L1            float32       `yaml:"l1"`
	L2            float32       `yaml:"l2"`
	L3            float32       `yaml:"l3"`
	D             float32       `yaml:"d"`
	JointLimits   [7][2]float32 `yaml:"joint_limits"`
	SingularBound float32       `yaml:"singular_bound"`
}

func loadGeometry(path string) (srs.DefaultGeometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return srs.DefaultGeometry{}, fmt.Errorf("open geometry config: %w", err)
	}
	defer f.Close()

	var cfg geometryConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return srs.DefaultGeometry{}, fmt.Errorf("decode geometry config: %w", err)
	}

	var limits [7]interval.AngularInterval
	for i, lim := range cfg.JointLimits {
		limits[i] = interval.NewAngularInterval(lim[0], lim[1])
	}

	return srs.DefaultGeometry{
		L1: cfg.L1, L2: cfg.L2, L3: cfg.L3, D: cfg.D,
		JointLimits:   limits,
		SingularBound: cfg.SingularBound,
	}, nil
}
