package interfaces

import (
	"context"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
)

// StatusReporter creates commit statuses on GitHub
type StatusReporter interface {
	CreateCommitStatus(ctx context.Context, status *model.CommitStatus) error
}
