package pubsub

import (
	"encoding/json"

	"staffportal/internal/domain/entity"

	"github.com/pkg/errors"
)

func encodeEvent(event entity.ChangeEvent) ([]byte, error) {
	if event.Record == nil {
		return nil, errors.New("change event without record")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode change event")
	}

	return data, nil
}

func decodeEvent(data []byte) (entity.ChangeEvent, error) {
	var event entity.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, errors.Wrap(err, "failed to decode change event")
	}

	if event.Record == nil {
		return event, errors.New("change event without record")
	}

	switch event.Kind {
	case entity.ChangeInsert, entity.ChangeUpdate, entity.ChangeDelete:
	default:
		return event, errors.Errorf("unknown change kind %q", event.Kind)
	}

	return event, nil
}
