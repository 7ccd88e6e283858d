package main

import (
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
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/godsp"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/gonum"
	_ "github.com/xaionaro-go/epicycles/pkg/fourier/implementations/radix2"
	"github.com/xaionaro-go/epicycles/pkg/fourier/registry"
	"github.com/xaionaro-go/epicycles/pkg/session"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	transformerName := pflag.String("transformer", "", fmt.Sprintf("DFT back-end, one of: %v (default: the fastest one)", registry.Names()))
	isVorbis := pflag.Bool("vorbis", false, "the input is an Ogg/Vorbis file instead of float32LE (x, y) frames")
	axis := pflag.String("axis", "complex", "what to transform: complex, x or y")
	maxFrequency := pflag.Int("max-frequency", 0, "the amount of components to compute (default: the amount of samples)")
	top := pflag.Int("top", 0, "print only the given amount of the most significant components")
	capacity := pflag.Int("capacity", session.DefaultResultCapacity, "the maximal amount of samples to analyse (the latest are kept)")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if pflag.NArg() > 1 {
		panic(fmt.Errorf("expected at most one argument: [<input-file>|-]"))
	}

	transformer, err := registry.NewTransformer(*transformerName)
	assertNoError(err)
	logger.Debugf(ctx, "using transformer %T", transformer)

	path, err := readPath(ctx, pflag.Arg(0), *isVorbis, *capacity)
	assertNoError(err)

	k := *maxFrequency
	if k <= 0 {
		k = len(path)
	}

	var components []fourier.FrequencyComponent
	switch *axis {
	case "complex":
		components, err = transformer.TransformComplex(ctx, path, k)
	case "x", "y":
		values := make([]float64, len(path))
		for idx, p := range path {
			if *axis == "x" {
				values[idx] = p.Re
			} else {
				values[idx] = p.Im
			}
		}
		components, err = transformer.TransformReal(ctx, values, k)
	default:
		err = fmt.Errorf("unknown axis '%s'", *axis)
	}
	assertNoError(err)

	ranked := fourier.RankByAmplitude(components)
	if *top > 0 {
		ranked = fourier.Top(ranked, *top)
	}

	wc := datacounter.NewWriterCounter(os.Stdout)
	assertNoError(printComponents(wc, ranked))
	logger.Debugf(ctx, "written: %d", wc.Count())
}

func readPath(
	ctx context.Context,
	fileName string,
	isVorbis bool,
	capacity int,
) ([]fourier.ComplexSample, error) {
	if fileName == "" {
		logger.Infof(ctx, "no input given, analysing the default square path")
		return curve.SquarePath(session.DefaultSquareSide), nil
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

	read := capture.ReadAll
	if isVorbis {
		read = capture.ReadVorbis
	}
	buf, err := read(ctx, input, capacity)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", fileName, err)
	}

	path := make([]fourier.ComplexSample, 0, buf.Len())
	for _, p := range buf.Points() {
		if isVorbis {
			path = append(path, fourier.NewComplexSample(float64(p.Y), 0))
		} else {
			path = append(path, fourier.NewComplexSample(float64(p.X), float64(p.Y)))
		}
	}
	return path, nil
}

func printComponents(w io.Writer, components []fourier.FrequencyComponent) error {
	if _, err := fmt.Fprintf(w, "%8s %16s %10s %16s %16s\n", "k", "amplitude", "phase", "re", "im"); err != nil {
		return err
	}
	for _, c := range components {
		_, err := fmt.Fprintf(w, "%8d %16.9f %10.6f %16.9f %16.9f\n", c.Frequency, c.Amplitude(), c.Phase(), c.Re, c.Im)
		if err != nil {
			return err
		}
	}
	return nil
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
