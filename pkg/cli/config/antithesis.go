package config

import (
	"time"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Antithesis holds the launch endpoint configuration
type Antithesis struct {
	Tenant        string
	NotebookName  string
	Username      string
	Password      string `masq:"secret"`
	ServiceDomain string
	Timeout       time.Duration
}

// Flags returns CLI flags for Antithesis configuration
func (c *Antithesis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant",
			Usage:       "Tenant receiving the launch request",
			Required:    true,
			Destination: &c.Tenant,
			Sources:     cli.EnvVars("INPUT_TENANT"),
		},
		&cli.StringFlag{
			Name:        "notebook-name",
			Usage:       "Notebook to launch",
			Required:    true,
			Destination: &c.NotebookName,
			Sources:     cli.EnvVars("INPUT_NOTEBOOK_NAME"),
		},
		&cli.StringFlag{
			Name:        "username",
			Usage:       "Basic auth user of the launch endpoint",
			Required:    true,
			Destination: &c.Username,
			Sources:     cli.EnvVars("INPUT_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Basic auth password of the launch endpoint",
			Required:    true,
			Destination: &c.Password,
			Sources:     cli.EnvVars("INPUT_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "service-domain",
			Usage:       "Domain hosting tenant endpoints",
			Value:       model.DefaultServiceDomain,
			Destination: &c.ServiceDomain,
			Sources:     cli.EnvVars("INPUT_SERVICE_DOMAIN"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of the launch request",
			Value:       30 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("INPUT_TIMEOUT"),
		},
	}
}
