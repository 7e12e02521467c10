package dto

// OutboundEmailResponse tells the host platform whether to drop its own send.
type OutboundEmailResponse struct {
	Suppress bool `json:"suppress"`
}
