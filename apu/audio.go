package apu

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const sampleRate = 44100

// Stream owns the portaudio output device. Its callback always writes
// silence; the stream exists so the real audio pipeline (device open,
// start, teardown) is exercised end to end even though channel
// synthesis isn't implemented.
type Stream struct {
	stream *portaudio.Stream
}

func OpenStream() (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("apu: portaudio init: %w", err)
	}

	cb := func(out []float32) {
		for i := range out {
			out[i] = 0
		}
	}

	s, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("apu: open stream: %w", err)
	}
	if err := s.Start(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("apu: start stream: %w", err)
	}

	return &Stream{stream: s}, nil
}

func (s *Stream) Close() error {
	err := s.stream.Close()
	portaudio.Terminate()
	return err
}
