package entity

// ResolutionState is the position of the current attempt in the
// code-to-product resolution flow.
type ResolutionState string

const (
	// ResolutionIdle means no attempt is active.
	ResolutionIdle ResolutionState = "idle"

	// ResolutionAwaitingLookup means a catalog request is outstanding.
	ResolutionAwaitingLookup ResolutionState = "awaiting_lookup"

	// ResolutionResolved means the code resolved to a product that is
	// ready to be added to the cart.
	ResolutionResolved ResolutionState = "resolved"

	// ResolutionNotFound means the catalog explicitly reported the code
	// as unknown; the operator may register it inline.
	ResolutionNotFound ResolutionState = "not_found"

	// ResolutionTransportFailed means the catalog could not be reached;
	// the operator may retry the same code or abandon.
	ResolutionTransportFailed ResolutionState = "transport_failed"
)

// ResolutionAttempt is the transient state of one code being resolved.
// It is discarded as soon as the operator acts on it or a newer code
// arrives. Seq identifies the attempt so that a late catalog response
// for a superseded or abandoned attempt can be recognized and dropped.
type ResolutionAttempt struct {
	Seq           uint64          `json:"-"`
	RawCode       string          `json:"raw_code,omitempty"`
	State         ResolutionState `json:"state"`
	Product       *Product        `json:"product,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
}
