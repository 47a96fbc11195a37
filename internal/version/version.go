package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/raatiniemi/linker/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/raatiniemi/linker/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/raatiniemi/linker/internal/version.Date={{.Date}}
)
