// images.go implements a source replaying still images.

package framesource

import (
	"context"
	"fmt"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/xsync"
	_ "golang.org/x/image/webp"
)

// Images replays a fixed list of frames, once or in a loop.
type Images struct {
	*closer
	Frames []*pixbuf.Buffer
	Loop   bool

	locker xsync.Mutex
	next   int
}

var _ Source = (*Images)(nil)

// NewImages wraps already decoded frames.
func NewImages(loop bool, frames ...*pixbuf.Buffer) *Images {
	return &Images{
		closer: newCloser(nil),
		Frames: frames,
		Loop:   loop,
	}
}

// NewImagesFromFiles decodes the given image files (any format bild's
// imgio understands, plus WebP).
func NewImagesFromFiles(
	ctx context.Context,
	loop bool,
	paths ...string,
) (*Images, error) {
	frames := make([]*pixbuf.Buffer, 0, len(paths))
	for _, path := range paths {
		img, err := imgio.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open image '%s': %w", path, err)
		}
		buf := pixbuf.FromImage(img)
		logger.Debugf(ctx, "loaded '%s': %s", path, buf)
		frames = append(frames, buf)
	}
	return NewImages(loop, frames...), nil
}

func (s *Images) String() string {
	return fmt.Sprintf("Images(%d, loop:%v)", len(s.Frames), s.Loop)
}

func (s *Images) Next(
	ctx context.Context,
) (*pixbuf.Buffer, error) {
	return xsync.DoR2(ctx, &s.locker, func() (*pixbuf.Buffer, error) {
		if s.IsClosed() {
			return nil, ErrClosed
		}
		if len(s.Frames) == 0 {
			return nil, io.EOF
		}
		if s.next >= len(s.Frames) {
			if !s.Loop {
				return nil, io.EOF
			}
			s.next = 0
		}
		buf := s.Frames[s.next]
		s.next++
		return buf.Clone(), nil
	})
}
