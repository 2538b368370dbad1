package event_bus

import "sync"

// RecordingPublisher keeps published events in memory. Used by tests of
// services that publish.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []Event
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

func (p *RecordingPublisher) Publish(e Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, e)
	return nil
}

func (p *RecordingPublisher) OfType(eventType EventType) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var result []Event
	for _, e := range p.Events {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}
