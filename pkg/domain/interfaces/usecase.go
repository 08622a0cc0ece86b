package interfaces

import (
	"context"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
)

// TriggerUseCase launches a test run and reports its pending status
type TriggerUseCase interface {
	Run(ctx context.Context, input *model.TriggerInput) *model.Outcome
}
