// Package main contains a command to demonstrate Euler angle and quaternion
// conversions, including the gimbal lock case.
package main

import (
	"github.com/edaniels/golog"

	"github.com/robomech/armkit/spatialmath"
	"github.com/robomech/armkit/utils"
)

var logger = golog.NewDevelopmentLogger("orientdemo")

func main() {
	roundTrip("Test 1: Regular angles", 30, 45, 60)
	roundTrip("Test 2: Gimbal lock case", 30, 90, 60)

	logger.Info("Test 3: Identity rotation")
	q := spatialmath.NewEulerAngles().Quaternion()
	logger.Infof("Quaternion for zero rotation: w=%.4f, x=%.4f, y=%.4f, z=%.4f", q.Real, q.Imag, q.Jmag, q.Kmag)
}

func roundTrip(name string, rollDeg, pitchDeg, yawDeg float64) {
	ea := &spatialmath.EulerAngles{
		Roll:  utils.DegToRad(rollDeg),
		Pitch: utils.DegToRad(pitchDeg),
		Yaw:   utils.DegToRad(yawDeg),
	}
	logger.Info(name)
	logger.Infof("Input Euler: roll=%.1f°, pitch=%.1f°, yaw=%.1f°", rollDeg, pitchDeg, yawDeg)

	q := ea.Quaternion()
	logger.Infof("Quaternion: w=%.4f, x=%.4f, y=%.4f, z=%.4f", q.Real, q.Imag, q.Jmag, q.Kmag)

	back := spatialmath.QuatToEulerAngles(q).Normalized()
	logger.Infof("Converted back: roll=%.1f°, pitch=%.1f°, yaw=%.1f°",
		utils.RadToDeg(back.Roll), utils.RadToDeg(back.Pitch), utils.RadToDeg(back.Yaw))
}
