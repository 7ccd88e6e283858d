// Package capture ingests externally recorded paths and signals: raw
// streams of float32 little-endian (x, y) frames and Ogg/Vorbis audio.
package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/iamcalledrob/circular"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
)

// FrameSize is the size of one encoded point: two float32 values.
const FrameSize = 8

const DefaultBufferSize = 65536

var ErrShortFrame = errors.New("the stream ended in the middle of a frame")

// PointReader decodes (x, y) frames from a byte stream. Reads of any
// size are accepted, a frame split between two reads is reassembled.
type PointReader struct {
	input   io.Reader
	staging *circular.Buffer
	readBuf []byte
	frame   [FrameSize]byte
	filled  int
}

func NewPointReader(input io.Reader, bufferSize int) *PointReader {
	if bufferSize < FrameSize {
		bufferSize = DefaultBufferSize
	}
	return &PointReader{
		input:   input,
		staging: circular.NewBuffer(bufferSize + FrameSize),
		readBuf: make([]byte, bufferSize),
	}
}

// ReadPoints reads from the input until at least one point is decoded
// and pushes the decoded points into dst. It returns io.EOF once the
// input is exhausted, or ErrShortFrame if the input ended with an
// incomplete frame.
func (r *PointReader) ReadPoints(
	ctx context.Context,
	dst *scrollingbuffer.Buffer,
) (_ret int, _err error) {
	logger.Tracef(ctx, "ReadPoints")
	defer func() { logger.Tracef(ctx, "/ReadPoints: %d %v", _ret, _err) }()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		n, readErr := r.input.Read(r.readBuf)
		if n < 0 {
			return count, fmt.Errorf("received invalid value of received bytes: %d", n)
		}
		if n > 0 {
			w, err := r.staging.Write(r.readBuf[:n])
			if err != nil {
				return count, fmt.Errorf("unable to write to the circular buffer: %w", err)
			}
			if w != n {
				return count, fmt.Errorf("wrote != read: %d != %d", w, n)
			}
		}

		decoded, err := r.drain(dst)
		count += decoded
		if err != nil {
			return count, err
		}

		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				return count, fmt.Errorf("unable to read the input: %w", readErr)
			}
			if r.filled != 0 {
				return count, fmt.Errorf("%w: %d trailing bytes", ErrShortFrame, r.filled)
			}
			return count, io.EOF
		}
		if count > 0 {
			return count, nil
		}
	}
}

func (r *PointReader) drain(dst *scrollingbuffer.Buffer) (int, error) {
	count := 0
	for {
		n, err := r.staging.Read(r.frame[r.filled:])
		r.filled += n
		if r.filled == FrameSize {
			dst.Push(decodeFrame(r.frame[:]))
			r.filled = 0
			count++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("unable to read from the circular buffer: %w", err)
		}
		if n == 0 {
			return count, nil
		}
	}
}

func decodeFrame(frame []byte) (float32, float32) {
	x := math.Float32frombits(binary.LittleEndian.Uint32(frame[0:4]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(frame[4:8]))
	return x, y
}

// WritePoints encodes the points in the format ReadPoints understands.
func WritePoints(w io.Writer, points []scrollingbuffer.Point) error {
	buf := make([]byte, FrameSize*len(points))
	for idx, p := range points {
		frame := buf[idx*FrameSize:]
		binary.LittleEndian.PutUint32(frame[0:4], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(frame[4:8], math.Float32bits(p.Y))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("unable to write %d points: %w", len(points), err)
	}
	return nil
}

// ReadAll decodes the whole input into a buffer of the given capacity;
// older points are overwritten if the input holds more than capacity.
func ReadAll(
	ctx context.Context,
	input io.Reader,
	capacity int,
) (*scrollingbuffer.Buffer, error) {
	dst := scrollingbuffer.New(capacity)
	r := NewPointReader(input, DefaultBufferSize)
	for {
		_, err := r.ReadPoints(ctx, dst)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return dst, nil
		default:
			return dst, err
		}
	}
}
