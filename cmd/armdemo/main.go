// Package main contains a command to demonstrate forward kinematics for the
// 4-DOF arm, with an optional interactive mode.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/robomech/armkit/kinematics"
	armutils "github.com/robomech/armkit/utils"
)

var logger = golog.NewDevelopmentLogger("armdemo")

// Arguments for the command.
type Arguments struct {
	Interactive bool   `flag:"interactive,usage=read joint angles from stdin after the fixed cases"`
	ModelFile   string `flag:"model,usage=JSON arm model file to use instead of unit link lengths"`
}

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	var arm *kinematics.Arm
	var err error
	if argsParsed.ModelFile != "" {
		arm, err = kinematics.ParseModelJSONFile(argsParsed.ModelFile)
	} else {
		arm, err = kinematics.NewArm(kinematics.DefaultLinkLengths)
	}
	if err != nil {
		return err
	}

	runFixedCases(arm)

	if argsParsed.Interactive {
		calculateCustom(arm, os.Stdin)
	}
	return nil
}

type demoCase struct {
	anglesDeg   [4]float64
	description string
}

var demoCases = []demoCase{
	{[4]float64{0, 0, 0, 0}, "All joints at 0°"},
	{[4]float64{90, 0, 0, 0}, "Only base rotated 90°"},
	{[4]float64{0, 90, 0, 0}, "Shoulder joint at 90°"},
	{[4]float64{0, 0, 90, 0}, "Elbow joint at 90°"},
	{[4]float64{45, 30, 15, 10}, "All joints at various angles"},
}

func runFixedCases(arm *kinematics.Arm) {
	logger.Info("Forward Kinematics Results:")
	for _, c := range demoCases {
		j1 := armutils.DegToRad(c.anglesDeg[0])
		j2 := armutils.DegToRad(c.anglesDeg[1])
		j3 := armutils.DegToRad(c.anglesDeg[2])
		j4 := armutils.DegToRad(c.anglesDeg[3])

		pos1 := arm.EndPosition(j1, j2, j3, j4)
		pos2 := arm.EndPositionExplicit(j1, j2, j3, j4)

		logger.Infof("Test: %s", c.description)
		logger.Infof("Joint angles: %v°", c.anglesDeg)
		logger.Infof("DH method:  x=%.3fm, y=%.3fm, z=%.3fm", pos1.X, pos1.Y, pos1.Z)
		logger.Infof("Alt method: x=%.3fm, y=%.3fm, z=%.3fm", pos2.X, pos2.Y, pos2.Z)
		logger.Infof("Difference between methods: %.6fm", pos1.Sub(pos2).Norm())
	}

	// with every joint at zero the arm is a straight line along +X
	links := arm.LinkLengths()
	expected := links[0] + links[1] + links[2] + links[3]
	pos := arm.EndPosition(0, 0, 0, 0)
	logger.Infof("All joints at 0° - expected: (%v, 0, 0)", expected)
	logger.Infof("Calculated: (%.3f, %.3f, %.3f)", pos.X, pos.Y, pos.Z)
}

// calculateCustom reads four joint angles in degrees and prints the resulting
// end effector position. A malformed value reports an error and returns
// without retrying.
func calculateCustom(arm *kinematics.Arm, in io.Reader) {
	reader := bufio.NewReader(in)
	var joints [4]float64
	for i := range joints {
		fmt.Printf("Enter joint %d angle (degrees): ", i+1)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			logger.Error("Invalid input. Please enter numeric values.")
			return
		}
		deg, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			logger.Error("Invalid input. Please enter numeric values.")
			return
		}
		joints[i] = armutils.DegToRad(deg)
	}
	pos := arm.EndPosition(joints[0], joints[1], joints[2], joints[3])
	logger.Infof("End-effector position: x=%.3fm, y=%.3fm, z=%.3fm", pos.X, pos.Y, pos.Z)
}
