package dispatch

import (
	"context"
	"slices"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

// Dispatcher walks its channels in registration order and returns the names
// of the channels that delivered. State is computed fresh per call; nothing
// is persisted here.
type Dispatcher struct {
	channels    []Channel
	development bool
	log         *logger.Logger
}

func NewDispatcher(development bool, log *logger.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels:    channels,
		development: development,
		log:         log,
	}
}

// Dispatch attempts delivery over every available channel and returns the
// succeeded channel names in attempt order. An empty result means the
// contractor could not be reached on any channel. In development mode every
// attempt is simulated: the intended action is logged and reported as a
// success so downstream tracking can be exercised deterministically.
func (d *Dispatcher) Dispatch(ctx context.Context, lead contractor.Lead, msg Message) []string {
	succeeded := make([]string, 0, len(d.channels))

	for _, ch := range d.channels {
		if !ch.Available(lead) {
			continue
		}

		if g, ok := ch.(gated); ok && !slices.Contains(succeeded, g.Requires()) {
			d.log.Debug("skipping gated channel",
				"channel", ch.Name(), "requires", g.Requires(), "contractor", lead.Name)
			continue
		}

		if d.development {
			d.log.Info("[dev mode] would send message",
				"channel", ch.Name(), "contractor", lead.Name, "bid_link", msg.BidLink)
			succeeded = append(succeeded, ch.Name())
			continue
		}

		if err := ch.Send(ctx, lead, msg); err != nil {
			d.log.DispatchEvent(ch.Name(), lead.Name, false, err.Error())
			continue
		}

		d.log.DispatchEvent(ch.Name(), lead.Name, true, "")
		succeeded = append(succeeded, ch.Name())
	}

	return succeeded
}
