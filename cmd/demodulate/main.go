package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/epicycles/pkg/capture"
	"github.com/xaionaro-go/epicycles/pkg/curve"
	"github.com/xaionaro-go/epicycles/pkg/demodulation"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
	"github.com/xaionaro-go/epicycles/pkg/session"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	curveFlag := pflag.String("curve", curve.KindSin4321.String(), "the driving curve when no input file is given (formula or index)")
	isVorbis := pflag.Bool("vorbis", false, "the input is an Ogg/Vorbis file instead of float32LE (x, y) frames")
	nodes := pflag.Int("nodes", session.DefaultNodes, "the amount of series terms of the driving curve")
	windingCap := pflag.Int("winding-cap", session.DefaultNodes, "the highest winding frequency to sweep to")
	stepsPerSweep := pflag.Float64("steps-per-sweep", demodulation.DefaultStepsPerSweep, "the amount of steps for the winding frequency to grow by 2π*winding-cap")
	plotCapacity := pflag.Int("samples", session.DefaultPlotCapacity, "the amount of samples of the driving curve")
	radius := pflag.Float64("radius", wavelet.DefaultRadius, "the radius base of the driving wavelet")
	envelope := pflag.Bool("envelope", false, "print the detected envelope points after the samples")
	pflag.Parse()

	if pflag.NArg() > 2 {
		panic(fmt.Errorf("expected at most two arguments: [<input-file> [<output-file>]]"))
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	driving, err := drivingCurve(ctx, pflag.Arg(0), *isVorbis, *curveFlag, *nodes, *plotCapacity)
	assertNoError(err)

	var output io.Writer = os.Stdout
	if fileName := pflag.Arg(1); fileName != "" && fileName != "-" {
		f, err := os.Create(fileName)
		assertNoError(err)
		defer func() { assertNoError(f.Close()) }()
		output = f
	}
	bufOutput := bufio.NewWriter(output)
	defer func() { assertNoError(bufOutput.Flush()) }()
	wc := datacounter.NewWriterCounter(bufOutput)

	cfg := demodulation.Config{
		RadiusBase:    *radius,
		StepsPerSweep: *stepsPerSweep,
	}
	var envelopePoints *scrollingbuffer.Buffer
	if *envelope {
		envelopePoints = scrollingbuffer.New(session.DefaultPlotCapacity)
		cfg.EnvelopeSink = envelopePoints
	}
	extractor := demodulation.New(cfg)

	_, err = fmt.Fprintf(wc, "%12s %12s %12s %12s %12s %12s %12s\n", "winding",
		demodulation.ChannelName(0), demodulation.ChannelName(1), demodulation.ChannelName(2),
		demodulation.ChannelName(3), demodulation.ChannelName(4), demodulation.ChannelName(5))
	assertNoError(err)

	var count int
	for {
		sample, isPaused, err := extractor.Advance(driving, *windingCap)
		assertNoError(err)
		if isPaused {
			break
		}
		ch := sample.Channels()
		_, err = fmt.Fprintf(wc, "%12.6f %12.6f %12.6f %12.6f %12.6f %12.6f %12.6f\n",
			sample.WindingIndex, ch[0], ch[1], ch[2], ch[3], ch[4], ch[5])
		assertNoError(err)
		count++
	}
	logger.Infof(ctx, "emitted %d samples, the extractor is %v", count, extractor.State())

	if envelopePoints != nil {
		_, err = fmt.Fprintf(wc, "\n%12s %12s\n", "fraction", "amplitude")
		assertNoError(err)
		for _, p := range envelopePoints.Points() {
			_, err = fmt.Fprintf(wc, "%12.2f %12.2f\n", p.X, p.Y)
			assertNoError(err)
		}
	}
	logger.Debugf(ctx, "written: %d", wc.Count())
}

func drivingCurve(
	ctx context.Context,
	fileName string,
	isVorbis bool,
	curveName string,
	nodes int,
	capacity int,
) (*scrollingbuffer.Buffer, error) {
	if fileName == "" {
		kind, err := curve.ParseKind(curveName)
		if err != nil {
			return nil, err
		}
		logger.Debugf(ctx, "sampling %v", kind)
		buf := scrollingbuffer.New(capacity)
		curve.Sample(buf, kind, nodes, nil)
		return buf, nil
	}

	var input io.Reader = os.Stdin
	if fileName != "-" {
		f, err := os.Open(fileName)
		if err != nil {
			return nil, fmt.Errorf("unable to open '%s': %w", fileName, err)
		}
		defer f.Close()
		input = f
	}
	if isVorbis {
		return capture.ReadVorbis(ctx, input, capacity)
	}
	return capture.ReadAll(ctx, input, capacity)
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
