package version

// Build variables to be set via ldflags during compilation:
// -X 'github.com/RumanAkhtar/lms-app-backend/pkg/version.Version=v1.0.0'
// -X 'github.com/RumanAkhtar/lms-app-backend/pkg/version.CommitHash=abc123'
// -X 'github.com/RumanAkhtar/lms-app-backend/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	// Version is the semantic version of the binary (e.g., "1.0.0")
	Version = "unknown"
	// CommitHash is the git commit hash used to build the binary
	CommitHash = "unknown"
	// BuildDate is the timestamp when the binary was built (RFC3339 format)
	BuildDate = "unknown"
)

// Info returns build information in a structured format
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}
