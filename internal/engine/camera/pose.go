package camera

import (
	"fmt"

	"go.uber.org/zap"
)

// PoseCode formats the current pose as Go code that restores it.
func (c *Camera) PoseCode() string {
	p := c.position
	return fmt.Sprintf("cam.Reset(mgl32.Vec3{%g, %g, %g}, %g, %g)", p[0], p[1], p[2], c.yaw, c.pitch)
}

// LogPose logs the current pose, including the code to restore it.
func (c *Camera) LogPose(log *zap.Logger) {
	log.Info("camera pose",
		zap.Float32s("position", c.position[:]),
		zap.Float32("yaw", c.yaw),
		zap.Float32("pitch", c.pitch),
		zap.String("code", c.PoseCode()),
	)
}
