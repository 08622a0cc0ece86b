package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// OutcomeKind is the terminal state of a trigger invocation
type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "Success"
	OutcomeRejected         OutcomeKind = "RejectedByService"
	OutcomeTransportFailure OutcomeKind = "TransportFailure"
)

var (
	ErrTagRejected  = goerr.NewTag("rejected_by_service")
	ErrTagTransport = goerr.NewTag("transport_failure")
)

// Outcome is the result of one invocation. Exactly one is produced per run.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int    // set for OutcomeRejected
	Message    string // human readable failure message, empty on success

	cause error
}

// Succeeded reports whether the run was accepted by the service
func (o *Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}

// Err converts a failed outcome into a tagged error, nil on success
func (o *Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeRejected:
		return goerr.New(o.Message, goerr.T(ErrTagRejected), goerr.V("status_code", o.StatusCode))
	default:
		if o.cause == nil {
			return goerr.New(o.Message, goerr.T(ErrTagTransport))
		}
		return goerr.Wrap(o.cause, "failed to submit launch request", goerr.T(ErrTagTransport))
	}
}

// NewSuccessOutcome returns the outcome of an accepted launch
func NewSuccessOutcome() *Outcome {
	return &Outcome{Kind: OutcomeSuccess}
}

// NewRejectedOutcome returns the outcome of a non-2xx launch response
func NewRejectedOutcome(status int) *Outcome {
	return &Outcome{
		Kind:       OutcomeRejected,
		StatusCode: status,
		Message:    fmt.Sprintf("Failed to submit request, received a non-2XX response code : %d", status),
	}
}

// NewTransportFailureOutcome returns the outcome of a launch request that could not complete
func NewTransportFailureOutcome(err error) *Outcome {
	return &Outcome{
		Kind:    OutcomeTransportFailure,
		Message: err.Error(),
		cause:   err,
	}
}
