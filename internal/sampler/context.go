package sampler

import (
	"time"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// PollingContext selects which metric category the poller samples.
type PollingContext int

const (
	ContextOverview PollingContext = iota
	ContextCPUAndMemory
	ContextProcesses
	ContextDisks
	ContextNetwork
)

// String returns a human-readable name for the context.
func (c PollingContext) String() string {
	switch c {
	case ContextOverview:
		return "overview"
	case ContextCPUAndMemory:
		return "cpu+memory"
	case ContextProcesses:
		return "processes"
	case ContextDisks:
		return "disks"
	case ContextNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Update is one published snapshot. Payload holds the snapshot in the
// interchange format; Context tells the consumer which type to decode.
type Update struct {
	Context PollingContext
	Seq     uint64
	Time    time.Time
	Payload []byte
}

// NewUpdate encodes snapshot into an Update.
func NewUpdate(c PollingContext, seq uint64, snapshot any) (Update, error) {
	payload, err := model.Encode(snapshot)
	if err != nil {
		return Update{}, err
	}
	return Update{Context: c, Seq: seq, Time: time.Now(), Payload: payload}, nil
}
