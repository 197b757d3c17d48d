// Command kine7demo loads a 7-DoF S-R-S arm's geometry from a YAML file
// (or falls back to this core's built-in reference geometry), runs a
// forward kinematics evaluation on a sample joint pose, then inverts the
// resulting tip pose and reports every self-motion branch found.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/itohio/kine7/pkg/logger"
	"github.com/itohio/kine7/pkg/robot/kinematics/srs"
)

func main() {
	configPath := flag.String("config", "", "path to a geometry YAML file (default: built-in reference geometry)")
	help := flag.Bool("help", false, "show help message")
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	geometry := srs.Default()
	if *configPath != "" {
		loaded, err := loadGeometry(*configPath)
		if err != nil {
			logger.Log.Error().Err(err).Str("path", *configPath).Msg("failed to load geometry config")
			os.Exit(1)
		}
		geometry = loaded
	}

	k, err := srs.NewKine7(geometry.L1, geometry.L2, geometry.L3, geometry.D, geometry.JointLimits[:], geometry.SingularBound)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to build kinematics solver")
		os.Exit(1)
	}

	q := [7]float32{0.2, 0.3, -0.1, 0.8, 0.1, 0.4, -0.3}
	t07 := k.Forward(q)
	logger.Log.Info().Interface("pose", t07).Msg("forward kinematics")

	motions := k.Inverse(t07)
	if len(motions) == 0 {
		fmt.Println("pose unreachable: no self-motion branches found")
		return
	}

	for i, m := range motions {
		rng := m.ArmAngleRange()
		fmt.Printf("branch %d: theta4=%.4f arm_angle_range_empty=%v arcs=%d\n",
			i, m.ElbowJoint(), rng.IsEmpty(), len(rng))
	}
}
