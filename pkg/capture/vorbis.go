package capture

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/jfreymuth/oggvorbis"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
)

// ReadVorbis decodes an Ogg/Vorbis stream into a curve: X is the time in
// seconds and Y the sample value downmixed to mono. Only the last
// capacity samples are kept.
func ReadVorbis(
	ctx context.Context,
	input io.Reader,
	capacity int,
) (_ret *scrollingbuffer.Buffer, _err error) {
	logger.Debugf(ctx, "ReadVorbis")
	defer func() { logger.Debugf(ctx, "/ReadVorbis: %v", _err) }()

	oggReader, err := oggvorbis.NewReader(input)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize a vorbis reader: %w", err)
	}
	channels := oggReader.Channels()
	sampleRate := float64(oggReader.SampleRate())
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("invalid stream parameters: channels:%d sample rate:%v", channels, sampleRate)
	}
	logger.Debugf(ctx, "channels:%d sample rate:%v", channels, sampleRate)

	dst := scrollingbuffer.New(capacity)
	buf := make([]float32, 4096*channels)
	var frameIdx uint64
	for {
		select {
		case <-ctx.Done():
			return dst, ctx.Err()
		default:
		}

		n, err := oggReader.Read(buf)
		for offset := 0; offset+channels <= n; offset += channels {
			var sum float32
			for _, v := range buf[offset : offset+channels] {
				sum += v
			}
			dst.PushFloat64(float64(frameIdx)/sampleRate, float64(sum/float32(channels)))
			frameIdx++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debugf(ctx, "decoded %d frames", frameIdx)
				return dst, nil
			}
			return dst, fmt.Errorf("unable to decode the vorbis stream: %w", err)
		}
	}
}
