package sink

import (
	"time"

	"github.com/hypebeast/go-osc/osc"

	"github.com/robmorgan/cadence/logger"
)

// OSCSink broadcasts every play as an OSC message while delegating the
// actual audio to the wrapped sink. Useful for syncing external visuals or
// lighting rigs to the beat.
type OSCSink struct {
	next   Sink
	client *osc.Client
	addr   string
}

// NewOSCSink wraps next with an OSC broadcaster targeting host:port.
func NewOSCSink(next Sink, host string, port int) *OSCSink {
	return &OSCSink{
		next:   next,
		client: osc.NewClient(host, port),
		addr:   "/cadence/beat",
	}
}

func (s *OSCSink) Play(freq float64, duration time.Duration, env Envelope) {
	msg := osc.NewMessage(s.addr)
	msg.Append(float32(freq))
	msg.Append(float32(env.Amplitude))
	msg.Append(int32(duration / time.Millisecond))
	if err := s.client.Send(msg); err != nil {
		// dropped broadcasts are not worth interrupting playback over
		logger.GetProjectLogger().Debugf("osc send failed: %v", err)
	}
	if s.next != nil {
		s.next.Play(freq, duration, env)
	}
}
