package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/epicycles/pkg/capture"
	"github.com/xaionaro-go/epicycles/pkg/curve"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/godsp"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/gonum"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/radix2"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
	"github.com/xaionaro-go/epicycles/pkg/interpolation"
	"github.com/xaionaro-go/epicycles/pkg/interpolation/spectral"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
	"github.com/xaionaro-go/epicycles/pkg/session"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
	"github.com/xaionaro-go/observability"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	conceptFlag := pflag.String("concept", session.ConceptFourierSeries.String(), "fourier-series, fourier-transform, dft-2-epicycles or dft-1-epicycle")
	strategyFlag := pflag.String("strategy", session.StrategySequence.String(), "sequence, custom or square")
	sequenceFlag := pflag.String("sequence", wavelet.IndexSequenceUneven.String(), "the index sequence of the sequence strategy")
	curveFlag := pflag.String("curve", curve.KindSin.String(), "the driving curve (formula or index)")
	nodes := pflag.Int("nodes", session.DefaultNodes, "the amount of wavelets or series terms")
	radius := pflag.Float64("radius", wavelet.DefaultRadius, "the radius base")
	alternate := pflag.Bool("alternate", false, "use the triangle-wave series instead of the square-wave one")
	timeChangeRate := pflag.Float64("time-change-rate", session.DefaultTimeChangeRate, "frames per full turn")
	frames := pflag.Int("frames", session.DefaultTimeChangeRate, "the amount of frames to run")
	inputPath := pflag.String("input", "", "a file of float32LE (x, y) frames to use as the captured path")
	closeGap := pflag.Int("close-gap", 0, "the amount of points leading the captured path back to its beginning")
	spectralClose := pflag.Bool("close-spectral", false, "extrapolate the closing points from the spectrum instead of drawing a segment")
	transformerName := pflag.String("transformer", "", fmt.Sprintf("DFT back-end, one of: %v", registry.Names()))
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	var mErr *multierror.Error
	concept, err := session.ParseConcept(*conceptFlag)
	mErr = multierror.Append(mErr, err)
	strategy, err := session.ParseStrategy(*strategyFlag)
	mErr = multierror.Append(mErr, err)
	sequence, err := wavelet.ParseIndexSequence(*sequenceFlag)
	mErr = multierror.Append(mErr, err)
	curveKind, err := curve.ParseKind(*curveFlag)
	mErr = multierror.Append(mErr, err)
	transformer, err := registry.NewTransformer(*transformerName)
	mErr = multierror.Append(mErr, err)
	assertNoError(mErr.ErrorOrNil())

	var interpolator interpolation.Interpolator
	if *spectralClose {
		interpolator = spectral.New(transformer)
	}

	s, err := session.New(session.Config{
		Concept:         concept,
		Nodes:           *nodes,
		Strategy:        strategy,
		Sequence:        sequence,
		Curve:           curveKind,
		RadiusBase:      *radius,
		AlternateSeries: *alternate,
		TimeChangeRate:  *timeChangeRate,
		ClosePathGap:    *closeGap,
		Interpolator:    interpolator,
		Transformer:     transformer,
	})
	assertNoError(err)

	if *inputPath != "" {
		assertNoError(loadCapture(ctx, s, *inputPath))
	}
	assertNoError(s.Setup(ctx))

	output := bufio.NewWriter(os.Stdout)
	defer func() { assertNoError(output.Flush()) }()
	wc := datacounter.NewWriterCounter(output)

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	var framesDone atomic.Int64
	observability.Go(ctx, func() {
		logger.Tracef(ctx, "started the progress printer loop")
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Debugf(ctx, "frame: %d/%d, written: %d", framesDone.Load(), *frames, wc.Count())
			}
		}
	})

	tracer := s.Tracer()
	for frame := 0; frame < *frames; frame++ {
		written := tracer.Written()
		assertNoError(s.Step(ctx))
		framesDone.Add(1)
		latest, ok := pushedSince(tracer, written)
		if !ok {
			continue
		}
		assertNoError(capture.WritePoints(wc, []scrollingbuffer.Point{latest}))
	}
	logger.Infof(ctx, "ran %d frames of %v, written %d bytes", *frames, concept, wc.Count())
}

// pushedSince returns the newest point if anything was pushed after
// the buffer had seen the given amount of writes.
func pushedSince(b *scrollingbuffer.Buffer, written uint64) (scrollingbuffer.Point, bool) {
	if b.Written() == written || b.Len() == 0 {
		return scrollingbuffer.Point{}, false
	}
	return b.At(b.Len() - 1), true
}

func loadCapture(ctx context.Context, s *session.Session, fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("unable to open '%s': %w", fileName, err)
	}
	defer f.Close()

	points, err := capture.ReadAll(ctx, f, s.Result().Cap())
	if err != nil {
		return fmt.Errorf("unable to read the captured path: %w", err)
	}
	for _, p := range points.Points() {
		s.Capture(float64(p.X), float64(p.Y))
	}
	s.StopCapture()
	logger.Debugf(ctx, "captured %d points", points.Len())
	return nil
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
