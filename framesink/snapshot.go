// snapshot.go implements a sink saving frames as PNG files.

package framesink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/xsync"
)

const TimestampLayout = "20060102_150405"

// Snapshot saves the frame following each Request, or every frame if
// Every is set.
type Snapshot struct {
	Dir   string
	Every bool

	// Now is used to timestamp the file names; time.Now if nil.
	Now func() time.Time

	locker    xsync.Mutex
	requested bool
	saved     uint64
	lastPath  string
}

var _ Sink = (*Snapshot)(nil)

// NewSnapshot saves into dir; an empty dir means ~/Downloads.
func NewSnapshot(dir string, every bool) (*Snapshot, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("unable to get the home directory: %w", err)
		}
		dir = filepath.Join(home, "Downloads")
	}
	return &Snapshot{
		Dir:   dir,
		Every: every,
	}, nil
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot(%s, every:%v)", s.Dir, s.Every)
}

// Request arms saving of the next consumed frame.
func (s *Snapshot) Request(ctx context.Context) {
	s.locker.Do(ctx, func() {
		s.requested = true
	})
}

// LastPath returns the path of the most recently saved file.
func (s *Snapshot) LastPath(ctx context.Context) string {
	return xsync.DoR1(ctx, &s.locker, func() string {
		return s.lastPath
	})
}

func (s *Snapshot) Consume(
	ctx context.Context,
	buf *pixbuf.Buffer,
	spec filter.Spec,
) error {
	return xsync.DoA3R1(ctx, &s.locker, s.consumeLocked, ctx, buf, spec)
}

func (s *Snapshot) consumeLocked(
	ctx context.Context,
	buf *pixbuf.Buffer,
	spec filter.Spec,
) (_err error) {
	if !s.Every && !s.requested {
		return nil
	}
	logger.Tracef(ctx, "consumeLocked(%s, %v)", buf, spec)
	defer func() { logger.Tracef(ctx, "/consumeLocked(%s, %v): %v", buf, spec, _err) }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to create directory '%s': %w", s.Dir, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	name := FileName(spec, now())
	if s.Every {
		name = strings.TrimSuffix(name, ".png") + fmt.Sprintf("_%06d.png", s.saved)
	}
	path := filepath.Join(s.Dir, name)
	if err := imgio.Save(path, buf.ToImage(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("unable to save the frame into '%s': %w", path, err)
	}

	s.requested = false
	s.saved++
	s.lastPath = path
	if info, err := os.Stat(path); err == nil {
		logger.Infof(ctx, "saved %s into '%s' (%s)", buf, path, humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

// FileName returns the name a frame produced by spec at time ts is
// saved under.
func FileName(spec filter.Spec, ts time.Time) string {
	name := strings.ReplaceAll(filter.Name(spec), "_", "-")
	stamp := ts.Format(TimestampLayout)
	if g, ok := spec.(filter.Gaussian); ok {
		g = g.Resolve()
		return fmt.Sprintf("photo_filter_%s_k%d_s%v_%s.png", name, g.KernelSize, g.Sigma, stamp)
	}
	return fmt.Sprintf("photo_filter_%s_%s.png", name, stamp)
}
