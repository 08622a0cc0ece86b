package config

import "github.com/urfave/cli/v3"

// Run holds the per run inputs sent along with the launch request
type Run struct {
	Images               string
	ConfigImage          string
	Description          string
	Recipients           string
	TestName             string
	AdditionalParameters string
	ParametersFile       string
}

// Flags returns CLI flags for run inputs
func (c *Run) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "images",
			Usage:       "Images to test, separated by ';'",
			Destination: &c.Images,
			Sources:     cli.EnvVars("INPUT_IMAGES"),
		},
		&cli.StringFlag{
			Name:        "config-image",
			Usage:       "Image holding the test configuration",
			Destination: &c.ConfigImage,
			Sources:     cli.EnvVars("INPUT_CONFIG_IMAGE"),
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Description of the run",
			Destination: &c.Description,
			Sources:     cli.EnvVars("INPUT_DESCRIPTION"),
		},
		&cli.StringFlag{
			Name:        "email-recipients",
			Usage:       "Report recipients, separated by ';'",
			Destination: &c.Recipients,
			Sources:     cli.EnvVars("INPUT_EMAIL_RECIPIENTS"),
		},
		&cli.StringFlag{
			Name:        "test-name",
			Usage:       "Name of the test, also used in the commit status context",
			Destination: &c.TestName,
			Sources:     cli.EnvVars("INPUT_TEST_NAME"),
		},
		&cli.StringFlag{
			Name:        "additional-parameters",
			Usage:       "Newline separated key=value parameters",
			Destination: &c.AdditionalParameters,
			Sources:     cli.EnvVars("INPUT_ADDITIONAL_PARAMETERS"),
		},
		&cli.StringFlag{
			Name:        "parameters-file",
			Usage:       "TOML file of parameters, overridden by additional-parameters",
			Destination: &c.ParametersFile,
			Sources:     cli.EnvVars("INPUT_PARAMETERS_FILE"),
		},
	}
}
