// Package capture reads microphone audio through PortAudio and buffers it
// for analysis.
package capture

import (
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/gruntwork-io/go-commons/errors"

	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/ring"
)

const (
	// DefaultSampleRate is the capture rate used when none is given.
	DefaultSampleRate = 44100

	// frameSize is the number of samples pulled from the device per read.
	frameSize = 512

	// bufferedWindows is how many analysis windows of history the ring
	// buffer retains. Two keeps one full window available while the next
	// is being filled.
	bufferedWindows = 2

	windowSize = 2048
)

// Mic captures mono microphone input into a ring buffer. A background pump
// keeps the buffer topped up so Read never blocks on the device.
type Mic struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	frame  []float32
	buf    *ring.Buffer[float64]
	rate   float64
	done   chan struct{}
	closed bool
}

// Open initializes PortAudio and opens the default input device at the
// given sample rate. The caller must Close the returned Mic to release the
// device and terminate PortAudio.
func Open(sampleRate float64) (*Mic, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	frame := make([]float32, frameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(frame), frame)
	if err != nil {
		terr := portaudio.Terminate()
		if terr != nil {
			logger.GetProjectLogger().Warnf("failed to terminate portaudio: %v", terr)
		}
		return nil, errors.WithStackTrace(err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, errors.WithStackTrace(err)
	}

	m := &Mic{
		stream: stream,
		frame:  frame,
		buf:    ring.New[float64](bufferedWindows * windowSize),
		rate:   sampleRate,
		done:   make(chan struct{}),
	}
	go m.pump()

	logger.GetProjectLogger().Debugf("microphone capture open at %.0f Hz", sampleRate)
	return m, nil
}

// pump copies device frames into the ring buffer until Close.
func (m *Mic) pump() {
	for {
		select {
		case <-m.done:
			return
		default:
		}

		if err := m.stream.Read(); err != nil {
			// overflows are routine when the analyzer falls behind;
			// keep pumping
			logger.GetProjectLogger().Debugf("portaudio read: %v", err)
			continue
		}
		for _, s := range m.frame {
			m.buf.Push(float64(s))
		}
	}
}

// Read fills dst with the most recent len(dst) samples, oldest first. It
// returns an error until enough audio has been captured.
func (m *Mic) Read(dst []float64) error {
	return m.buf.Window(dst)
}

// SampleRate returns the capture rate in Hz.
func (m *Mic) SampleRate() float64 {
	return m.rate
}

// Close stops the pump, releases the device and terminates PortAudio.
// Idempotent.
func (m *Mic) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)

	if err := m.stream.Stop(); err != nil {
		logger.GetProjectLogger().Warnf("failed to stop capture stream: %v", err)
	}
	if err := m.stream.Close(); err != nil {
		return errors.WithStackTrace(err)
	}
	return errors.WithStackTrace(portaudio.Terminate())
}
