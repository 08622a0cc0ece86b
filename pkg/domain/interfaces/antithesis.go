package interfaces

import (
	"context"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
)

// Launcher sends a launch request to the test execution service
type Launcher interface {
	// Launch posts body as `{"params": body}` to url with basic auth. A returned error means
	// the request did not complete; a non-2xx response is not an error.
	Launch(ctx context.Context, url string, body model.RequestBody, auth model.BasicAuth) (*model.LaunchResponse, error)
}
