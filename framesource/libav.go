// libav.go implements a source decoding video through libav: files,
// network streams and capture devices (e.g. "-f v4l2 /dev/video0").

package framesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/pixfilter/internal"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/pixfilter/types"
	"github.com/xaionaro-go/pixfilter/urltools"
	"github.com/xaionaro-go/secret"
	"github.com/xaionaro-go/xsync"
)

var registerDevicesOnce sync.Once

type LibAVConfig struct {
	// Options are passed to the demuxer; the key "f" selects the
	// input format instead (e.g. "v4l2", "avfoundation", "dshow").
	Options types.DictionaryItems

	// AuthKey is appended to the URL when opening, but never logged.
	AuthKey secret.String
}

// LibAV decodes the first video stream of an input.
type LibAV struct {
	*closer
	URL string

	locker        xsync.Mutex
	formatContext *astiav.FormatContext
	codecContext  *astiav.CodecContext
	streamIndex   int
	packet        *astiav.Packet
	frame         *astiav.Frame
	scaler        *rgbaScaler
	inputEOF      bool
	decoderEOF    bool
}

var _ Source = (*LibAV)(nil)

func NewLibAV(
	ctx context.Context,
	url string,
	cfg LibAVConfig,
) (_ret *LibAV, _err error) {
	logger.Debugf(ctx, "NewLibAV(ctx, '%s', %d options)", url, len(cfg.Options))
	defer func() { logger.Debugf(ctx, "/NewLibAV(ctx, '%s'): %v", url, _err) }()

	if url == "" {
		return nil, fmt.Errorf("the provided URL is empty")
	}
	registerDevicesOnce.Do(astiav.RegisterAllDevices)

	var (
		formatName string
		dict       *astiav.Dictionary
	)
	options := cfg.Options.Deduplicate()
	if len(options) > 0 {
		dict = astiav.NewDictionary()
		defer dict.Free()
		for _, opt := range options {
			if opt.Key == "f" {
				formatName = opt.Value
				continue
			}
			logger.Debugf(ctx, "input option '%s' = '%s'", opt.Key, opt.Value)
			if err := dict.Set(opt.Key, opt.Value, 0); err != nil {
				return nil, fmt.Errorf("unable to set option '%s': %w", opt.Key, err)
			}
		}
	}

	if formatName == "" {
		formatName = urltools.InputFormatNameFromURL(url)
	}
	var inputFormat *astiav.InputFormat
	if formatName != "" {
		inputFormat = astiav.FindInputFormat(formatName)
		if inputFormat == nil {
			return nil, fmt.Errorf("unable to find input format '%s'", formatName)
		}
	}

	formatContext := astiav.AllocFormatContext()
	if formatContext == nil {
		return nil, fmt.Errorf("unable to allocate a format context")
	}
	urlWithSecret := url
	if authKey := cfg.AuthKey.Get(); authKey != "" {
		urlWithSecret += authKey
	}
	if err := formatContext.OpenInput(urlWithSecret, inputFormat, dict); err != nil {
		formatContext.Free()
		return nil, fmt.Errorf("unable to open input '%s': %w", url, err)
	}

	s := &LibAV{
		URL:           url,
		formatContext: formatContext,
		streamIndex:   -1,
	}
	s.closer = newCloser(s.release)
	if err := s.init(ctx); err != nil {
		s.Close(ctx)
		return nil, err
	}
	return s, nil
}

func (s *LibAV) init(ctx context.Context) error {
	if err := s.formatContext.FindStreamInfo(nil); err != nil {
		return fmt.Errorf("unable to get stream info: %w", err)
	}

	var params *astiav.CodecParameters
	for _, stream := range s.formatContext.Streams() {
		logger.Tracef(ctx, "input stream #%d: %s", stream.Index(), spew.Sdump(stream.CodecParameters()))
		if stream.CodecParameters().MediaType() != astiav.MediaTypeVideo {
			continue
		}
		s.streamIndex = stream.Index()
		params = stream.CodecParameters()
		break
	}
	if params == nil {
		return fmt.Errorf("no video stream found in '%s'", s.URL)
	}

	codec := astiav.FindDecoder(params.CodecID())
	if codec == nil {
		return fmt.Errorf("unable to find a decoder for %s", params.CodecID())
	}
	s.codecContext = astiav.AllocCodecContext(codec)
	if s.codecContext == nil {
		return fmt.Errorf("unable to allocate a codec context for %s", params.CodecID())
	}
	if err := params.ToCodecContext(s.codecContext); err != nil {
		return fmt.Errorf("unable to copy the codec parameters: %w", err)
	}
	if err := s.codecContext.Open(codec, nil); err != nil {
		return fmt.Errorf("unable to open the decoder %s: %w", codec.Name(), err)
	}
	logger.Debugf(ctx, "decoding stream #%d with %s (%dx%d)", s.streamIndex, codec.Name(), params.Width(), params.Height())

	s.packet = astiav.AllocPacket()
	internal.SetFinalizerFree(ctx, s.packet)
	s.frame = astiav.AllocFrame()
	internal.SetFinalizerFree(ctx, s.frame)
	return nil
}

func (s *LibAV) release(ctx context.Context) {
	s.locker.Do(ctx, func() {
		if s.codecContext != nil {
			s.codecContext.Free()
			s.codecContext = nil
		}
		if s.formatContext != nil {
			s.formatContext.CloseInput()
			s.formatContext.Free()
			s.formatContext = nil
		}
	})
}

func (s *LibAV) String() string {
	return fmt.Sprintf("LibAV(%s)", s.URL)
}

func (s *LibAV) Next(
	ctx context.Context,
) (*pixbuf.Buffer, error) {
	return xsync.DoA1R2(ctx, &s.locker, s.nextLocked, ctx)
}

func (s *LibAV) nextLocked(
	ctx context.Context,
) (_ret *pixbuf.Buffer, _err error) {
	logger.Tracef(ctx, "nextLocked")
	defer func() { logger.Tracef(ctx, "/nextLocked: %v", _err) }()

	for {
		if s.IsClosed() {
			return nil, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.decoderEOF {
			return nil, io.EOF
		}

		err := s.codecContext.ReceiveFrame(s.frame)
		switch {
		case err == nil:
			buf, err := s.convert(ctx, s.frame)
			s.frame.Unref()
			return buf, err
		case errors.Is(err, astiav.ErrEof):
			s.decoderEOF = true
			return nil, io.EOF
		case errors.Is(err, astiav.ErrEagain):
		default:
			return nil, fmt.Errorf("unable to receive a frame: %w", err)
		}

		if err := s.feedDecoder(ctx); err != nil {
			return nil, err
		}
	}
}

// feedDecoder sends the next packet of the video stream to the decoder,
// or the flush packet once the input is exhausted.
func (s *LibAV) feedDecoder(ctx context.Context) error {
	if s.inputEOF {
		return fmt.Errorf("the decoder requests more input after it was flushed")
	}
	for {
		err := s.formatContext.ReadFrame(s.packet)
		switch {
		case err == nil:
		case errors.Is(err, astiav.ErrEof), errors.Is(err, astiav.ErrEio):
			logger.Debugf(ctx, "end of input '%s', flushing the decoder", s.URL)
			s.inputEOF = true
			if err := s.codecContext.SendPacket(nil); err != nil {
				return fmt.Errorf("unable to flush the decoder: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("unable to read a packet: %w", err)
		}

		if s.packet.StreamIndex() != s.streamIndex {
			s.packet.Unref()
			continue
		}
		err = s.codecContext.SendPacket(s.packet)
		s.packet.Unref()
		if err != nil {
			return fmt.Errorf("unable to send a packet to the decoder: %w", err)
		}
		return nil
	}
}

func (s *LibAV) convert(
	ctx context.Context,
	f *astiav.Frame,
) (*pixbuf.Buffer, error) {
	if s.scaler == nil || !s.scaler.Fits(f) {
		if s.scaler != nil {
			logger.Warnf(ctx, "the frame format changed mid-stream: %dx%d:%s", f.Width(), f.Height(), f.PixelFormat())
		}
		scaler, err := newRGBAScaler(ctx, f.Width(), f.Height(), f.PixelFormat())
		if err != nil {
			return nil, err
		}
		logger.Debugf(ctx, "new scaler: %s", scaler)
		s.scaler = scaler
	}
	return s.scaler.Convert(ctx, f)
}
