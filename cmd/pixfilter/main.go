package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/pixfilter/control"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/framepump"
	"github.com/xaionaro-go/pixfilter/framesink"
	"github.com/xaionaro-go/pixfilter/framesource"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/pixfilter/types"
	"github.com/xaionaro-go/pixfilter/urltools"
	"github.com/xaionaro-go/secret"
	"github.com/xaionaro-go/xcontext"
)

const (
	envAuthKey = "PIXFILTER_INPUT_AUTH_KEY"

	shutdownTimeout = 2 * time.Second
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <image-file|URL>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "filters: %s\n", strings.Join(filter.Names(), ", "))
		pflag.PrintDefaults()
	}

	f := defineFlags(pflag.CommandLine)
	pflag.Parse()
	if f.ConfigPath != "" {
		cfg, err := loadConfig(f.ConfigPath)
		if err == nil {
			err = cfg.applyTo(pflag.CommandLine)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	useCamera := f.CameraID >= 0
	if (useCamera && pflag.NArg() != 0) || (!useCamera && pflag.NArg() != 1) {
		pflag.Usage()
		os.Exit(1)
	}

	ctx, l := logger.Setup(context.Background(), f.LoggerLevel)
	ctx, cancelFn := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancelFn()
	defer belt.Flush(ctx)

	spec := filter.Parse(f.Filter, f.KernelSize, f.Sigma)
	if err := filter.Validate(spec); err != nil {
		l.Fatal(err)
	}
	snapshot, err := framesink.NewSnapshot(f.OutputDir, f.SnapshotEvery)
	if err != nil {
		l.Fatal(err)
	}

	if !useCamera && isStillImage(pflag.Arg(0)) {
		if err := filterStillImage(ctx, pflag.Arg(0), spec, snapshot, f.SideBySide); err != nil {
			l.Fatal(err)
		}
		return
	}

	source, err := openSource(ctx, useCamera, f.CameraID, pflag.Arg(0), f.InputOptions)
	if err != nil {
		l.Fatal(err)
	}
	defer source.Close(xcontext.DetachDone(ctx))

	holder := framepump.NewSpecHolder(spec)
	pump := framepump.New(source, snapshot, holder, framepump.Config{
		MaxFPS:     f.MaxFPS,
		Frames:     f.Frames,
		SideBySide: f.SideBySide,
	})
	controller := control.New(ctx, holder, snapshot, filter.Gaussian{KernelSize: f.KernelSize, Sigma: f.Sigma})

	observability.Go(ctx, func(ctx context.Context) {
		serveControls(ctx, controller)
	})
	if f.Keys {
		fmt.Fprintln(os.Stderr, control.KeyHelp)
		observability.Go(ctx, func(ctx context.Context) {
			err := controller.ServeKeys(ctx, os.Stdin)
			switch {
			case errors.Is(err, control.ErrQuit):
				cancelFn()
			case err != nil && ctx.Err() == nil:
				logger.Errorf(ctx, "keys are disabled: %v", err)
			}
		})
	}

	done := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		done <- pump.Serve(ctx)
	})

	t := time.NewTicker(time.Second)
	defer t.Stop()
	stopped, err := waitForPump(ctx, done, t.C, func() { printStats(pump.GetStats()) }, shutdownTimeout)
	printStats(pump.GetStats())
	if !stopped {
		logger.Errorf(ctx, "the pump did not stop within %v, exiting", shutdownTimeout)
		belt.Flush(ctx)
		os.Exit(1)
	}
	if err != nil && ctx.Err() == nil {
		l.Fatal(err)
	}
}

func isStillImage(path string) bool {
	if !urltools.IsFileURL(path) {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
	default:
		return false
	}
	info, err := os.Stat(urltools.FilePath(path))
	return err == nil && info.Mode().IsRegular()
}

func filterStillImage(
	ctx context.Context,
	path string,
	spec filter.Spec,
	snapshot *framesink.Snapshot,
	sideBySide bool,
) error {
	source, err := framesource.NewImagesFromFiles(ctx, false, urltools.FilePath(path))
	if err != nil {
		return err
	}
	defer source.Close(ctx)

	buf, err := source.Next(ctx)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", path, err)
	}
	out, err := filter.Apply(ctx, buf, spec)
	if err != nil {
		return fmt.Errorf("unable to apply %s: %w", spec, err)
	}
	if sideBySide {
		if out, err = pixbuf.SideBySide(buf, out, framepump.LabelOriginal, framepump.LabelFiltered); err != nil {
			return fmt.Errorf("unable to compose the comparison view: %w", err)
		}
	}
	snapshot.Request(ctx)
	if err := snapshot.Consume(ctx, out, spec); err != nil {
		return err
	}
	fmt.Println(snapshot.LastPath(ctx))
	return nil
}

func openSource(
	ctx context.Context,
	useCamera bool,
	cameraID int,
	url string,
	inputOptions []string,
) (framesource.Source, error) {
	if useCamera {
		return openCamera(ctx, cameraID)
	}

	options, err := types.ParseDictionaryItems(inputOptions)
	if err != nil {
		return nil, err
	}
	framesource.SetLibAVLogger(ctx)
	return framesource.NewLibAV(ctx, url, framesource.LibAVConfig{
		Options: options,
		AuthKey: secret.New(os.Getenv(envAuthKey)),
	})
}

func printStats(stats types.Statistics) {
	fmt.Printf(
		"received:%d (%s) dropped:%d processed:%d failed:%d sent:%d (%s) filter-time:%v\n",
		stats.Received.Count, humanize.Bytes(stats.Received.Bytes),
		stats.Dropped.Count,
		stats.Processed.Count,
		stats.Failed.Count,
		stats.Sent.Count, humanize.Bytes(stats.Sent.Bytes),
		stats.FilterTime,
	)
}
