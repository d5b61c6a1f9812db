package event

type noOpProducer struct {
}

// NewNoOpProducer returns a producer that drops all notifications. Used when
// kafka is not configured and in tests.
func NewNoOpProducer() *noOpProducer {
	return &noOpProducer{}
}

func (p *noOpProducer) SendNotification(eventType string, payload interface{}) {
}

func (p *noOpProducer) Close() error {
	return nil
}
