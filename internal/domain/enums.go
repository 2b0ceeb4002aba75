package domain

// PublishStatus is the terminal state of a publish attempt
type PublishStatus string

const (
	// PublishCreated: HTTP 200 and the platform reported no user errors
	PublishCreated PublishStatus = "created"
	// PublishRejected: HTTP 200 but the platform returned user errors
	PublishRejected PublishStatus = "rejected"
	// PublishTransportFailed: non-200 status, undecodable body, or the call itself failed
	PublishTransportFailed PublishStatus = "transport_failed"
)

// IsTerminalSuccess reports whether the outcome created a product
func (s PublishStatus) IsTerminalSuccess() bool {
	return s == PublishCreated
}
