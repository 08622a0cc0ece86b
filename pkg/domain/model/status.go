package model

// Commit status reported after a launch is accepted
const (
	CommitStatePending = "pending"
	PendingDescription = "Antithesis is running your tests."
)

// CommitStatus is a commit status entry to create on the source control system
type CommitStatus struct {
	Owner       string
	Repo        string
	SHA         string
	State       string
	Description string
	Context     string
	TargetURL   string
}

// LaunchResponse is the transport level result of a launch request
type LaunchResponse struct {
	StatusCode int
	Body       []byte
}

// Accepted reports whether the response status is 2xx
func (r *LaunchResponse) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// BasicAuth is the credential pair of the launch endpoint
type BasicAuth struct {
	Username string
	Password string `masq:"secret"`
}
