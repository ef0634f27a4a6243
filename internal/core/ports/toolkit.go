package ports

import "context"

//go:generate mockgen -source=toolkit.go -destination=mocks/mock_toolkit.go -package=mocks

// ToolkitRequest asks for one accelerator archive to be unpacked into Dest.
type ToolkitRequest struct {
	// Version is the full archive version, e.g. "12.4.1_550.54.15" or "9.1.0.70".
	Version string
	// ToolkitMajor is the toolkit major line a runtime library is built for.
	ToolkitMajor string
	Dest         string
	CacheDir     string
}

// ToolkitInstaller installs accelerator toolkits and runtime libraries from archives.
type ToolkitInstaller interface {
	InstallToolkit(ctx context.Context, req ToolkitRequest) error
	InstallRuntimeLib(ctx context.Context, req ToolkitRequest) error
}

// Fetcher downloads a URL to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}
