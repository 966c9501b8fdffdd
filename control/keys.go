// keys.go maps single-key commands onto the Controller.

package control

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/logger"
)

const keyEscape = '\x1b'

// KeyHelp describes the keys understood by HandleKey.
const KeyHelp = `keys:
  0 none   1 blur   g gaussian   b box   2 sharpen   3 edge   4 grayscale
  n next filter
  + / -    Gaussian kernel size ±2
  ] / [    Gaussian sigma ±1
  s snapshot   q or ESC quit`

var keyFilters = map[rune]string{
	'0': filter.NameIdentity,
	'1': filter.NameLegacyBlur,
	'g': filter.NameGaussian,
	'b': filter.NameBox,
	'2': filter.NameSharpen,
	'3': filter.NameEdgeDetect,
	'4': filter.NameGrayscale,
}

// HandleKey executes the command bound to key. Unbound keys are ignored.
// ErrQuit is returned for the quit keys.
func (c *Controller) HandleKey(ctx context.Context, key rune) error {
	if name, ok := keyFilters[unicode.ToLower(key)]; ok {
		return c.Select(ctx, name)
	}
	switch key {
	case 'n', 'N':
		return c.NextFilter(ctx)
	case '+', '=':
		return c.StepKernelSize(ctx, 1)
	case '-', '_':
		return c.StepKernelSize(ctx, -1)
	case ']', '}':
		return c.StepSigma(ctx, 1)
	case '[', '{':
		return c.StepSigma(ctx, -1)
	case 's', 'S':
		c.RequestSnapshot(ctx)
		return nil
	case 'q', 'Q', keyEscape:
		return ErrQuit
	default:
		if !unicode.IsSpace(key) {
			logger.Debugf(ctx, "unbound key %q", key)
		}
		return nil
	}
}

// ServeKeys executes the commands read from r until it ends (nil), a quit
// key is read (ErrQuit) or ctx is cancelled. A failing command is logged
// and does not stop the loop.
//
// A terminal in canonical mode delivers the keys once Enter is pressed.
func (c *Controller) ServeKeys(ctx context.Context, r io.Reader) (_err error) {
	logger.Debugf(ctx, "ServeKeys")
	defer func() { logger.Debugf(ctx, "/ServeKeys: %v", _err) }()

	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		key, _, err := reader.ReadRune()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("unable to read a key: %w", err)
		}

		err = c.HandleKey(ctx, key)
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return err
		default:
			logger.Errorf(ctx, "key %q: %v", key, err)
		}
	}
}
