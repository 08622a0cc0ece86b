package model

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/m-mizutani/ctxlog"
)

// Fixed request body keys
const (
	KeyCallerName      = "antithesis.integrations.caller_name"
	KeyIntegrationType = "antithesis.integrations.type"
	KeyCallbackURL     = "antithesis.integrations.github.callback_url"
	KeyGitHubToken     = "antithesis.integrations.github.token"
	KeyImages          = "antithesis.images"
	KeyConfigImage     = "antithesis.config_image"
	KeyDescription     = "antithesis.description"
	KeyRecipients      = "antithesis.report.recipients"
	KeyTestName        = "antithesis.test_name"
	KeyTeam            = "run.team"
	KeySystemName      = "run.system_name"
	KeyCreatorName     = "run.creator_name"
	KeyRepoOwner       = "vcs.repo_owner"
	KeyRepoName        = "vcs.repo_name"
	KeyBranch          = "vcs.branch"
)

const (
	callerName      = "github-action"
	integrationType = "github"
	systemName      = "GitHub Actions"
)

// DefaultServiceDomain is the domain hosting tenant endpoints
const DefaultServiceDomain = "antithesis.com"

// TriggerInput holds everything one invocation needs
type TriggerInput struct {
	Tenant        string
	ServiceDomain string
	NotebookName  string
	Username      string
	Password      string `masq:"secret"`
	GitHubToken   string `masq:"secret"`

	Images      string
	ConfigImage string
	Description string
	Recipients  string
	TestName    string

	// AdditionalParameters is the raw `key=value` text of the additional_parameters input
	AdditionalParameters string
	// FileParameters are loaded from the parameters file, inline parameters win over them
	FileParameters Parameters

	Event *EventContext
}

// LaunchURL composes the launch endpoint of the tenant. The result is not validated.
func (x *TriggerInput) LaunchURL() string {
	domain := x.ServiceDomain
	if domain == "" {
		domain = DefaultServiceDomain
	}
	return fmt.Sprintf("https://%s.%s/api/v1/launch_experiment/%s", x.Tenant, domain, x.NotebookName)
}

// StatusContext returns the commit status label. The test name is embedded so that runs
// of different tests against the same commit are distinguishable.
func (x *TriggerInput) StatusContext() string {
	if x.TestName != "" {
		return fmt.Sprintf("antithesis (%s)", x.TestName)
	}
	return "antithesis"
}

// RequestBody is the flat parameter set of a launch request. Values are string, int or nil.
type RequestBody map[string]any

// Pruned returns a copy without nil values
func (b RequestBody) Pruned() RequestBody {
	pruned := make(RequestBody, len(b))
	for k, v := range b {
		if v != nil {
			pruned[k] = v
		}
	}
	return pruned
}

// LogValue hides the GitHub token when the body is logged
func (b RequestBody) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(b))
	for k, v := range b {
		if k == KeyGitHubToken && v != nil {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// optional maps an empty string to nil so that it is dropped by the transport
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// AssembleRequestBody merges the fixed fields, provenance, callback fields, run inputs
// and finally params. Keys in params override any fixed key of the same name.
func AssembleRequestBody(ctx context.Context, input *TriggerInput, prov Provenance, callbackURL string, params Parameters) RequestBody {
	event := input.Event
	if event == nil {
		event = &EventContext{}
	}
	if prov == nil {
		prov = NoProvenance{}
	}

	body := RequestBody{
		KeyCallerName:      callerName,
		KeyIntegrationType: integrationType,
		KeyTeam:            optional(event.RepoOwner()),
		KeySystemName:      systemName,
		KeyCreatorName:     optional(event.Actor),
		KeyRepoOwner:       optional(event.RepoOwner()),
		KeyRepoName:        optional(event.RepoName()),
		KeyBranch:          optional(event.Branch()),
	}

	maps.Copy(body, prov.Fields())

	body[KeyCallbackURL] = optional(callbackURL)
	body[KeyGitHubToken] = optional(input.GitHubToken)
	body[KeyImages] = optional(input.Images)
	body[KeyConfigImage] = optional(input.ConfigImage)
	body[KeyDescription] = optional(input.Description)
	body[KeyRecipients] = optional(input.Recipients)
	body[KeyTestName] = optional(input.TestName)

	logger := ctxlog.From(ctx)
	for k, v := range params {
		if cur, ok := body[k]; ok && cur != nil {
			logger.Warn("Parameter overrides a built-in field", "key", k)
		}
		body[k] = v
	}

	return body
}
