package cli

import (
	"context"
	"io"
	"time"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
)

// RunWith runs the CLI with launcher as the launch transport and console receiving logs and
// workflow commands
func RunWith(ctx context.Context, args []string, launcher interfaces.Launcher, console io.Writer) error {
	return run(ctx, args, &deps{
		newLauncher: func(time.Duration) interfaces.Launcher { return launcher },
		console:     console,
	})
}
