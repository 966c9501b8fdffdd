//go:build with_cv
// +build with_cv

// camera_cv.go implements a webcam source backed by OpenCV.

package framesource

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/xsync"
	"gocv.io/x/gocv"
)

const (
	CameraDefaultWidth  = 1280
	CameraDefaultHeight = 720
)

type Camera struct {
	*closer
	DeviceID int

	locker  xsync.Mutex
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

var _ Source = (*Camera)(nil)

// NewCamera opens the camera and requests 1280x720 frames; the device
// may pick another resolution.
func NewCamera(
	ctx context.Context,
	deviceID int,
) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("unable to open camera #%d: %w", deviceID, err)
	}
	capture.Set(gocv.VideoCaptureFrameWidth, CameraDefaultWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, CameraDefaultHeight)
	logger.Debugf(ctx, "camera #%d opened at %vx%v", deviceID,
		capture.Get(gocv.VideoCaptureFrameWidth),
		capture.Get(gocv.VideoCaptureFrameHeight),
	)

	c := &Camera{
		DeviceID: deviceID,
		capture:  capture,
		mat:      gocv.NewMat(),
	}
	c.closer = newCloser(c.release)
	return c, nil
}

func (c *Camera) release(ctx context.Context) {
	c.locker.Do(ctx, func() {
		if err := c.capture.Close(); err != nil {
			logger.Errorf(ctx, "unable to close camera #%d: %v", c.DeviceID, err)
		}
		c.mat.Close()
	})
}

func (c *Camera) String() string {
	return fmt.Sprintf("Camera(%d)", c.DeviceID)
}

func (c *Camera) Next(
	ctx context.Context,
) (*pixbuf.Buffer, error) {
	return xsync.DoR2(ctx, &c.locker, func() (*pixbuf.Buffer, error) {
		if c.IsClosed() {
			return nil, ErrClosed
		}
		if ok := c.capture.Read(&c.mat); !ok || c.mat.Empty() {
			return nil, fmt.Errorf("unable to read a frame from camera #%d", c.DeviceID)
		}
		img, err := c.mat.ToImage()
		if err != nil {
			return nil, fmt.Errorf("unable to convert the camera frame: %w", err)
		}
		return pixbuf.FromImage(img), nil
	})
}
