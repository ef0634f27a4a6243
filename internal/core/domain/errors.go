package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedVersion is returned when a version string has no leading numeric component.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrInvalidGeneration is returned when a generation manifest violates one of its invariants.
	ErrInvalidGeneration = zerr.New("invalid generation")

	// ErrUnpinnedPackage is returned when a package spec is neither an exact pin nor a direct reference.
	ErrUnpinnedPackage = zerr.New("package is not pinned")

	// ErrUnknownEnvironment is returned when an environment tag is not one of test or prod.
	ErrUnknownEnvironment = zerr.New("unknown environment, expected 'test' or 'prod'")

	// ErrNoGenerations is returned when an environment defines no generations.
	ErrNoGenerations = zerr.New("no generations defined")

	// ErrNoGenerationsSelected is returned when the id range selects no generation.
	ErrNoGenerationsSelected = zerr.New("no generations selected by id range")

	// ErrSelectionNotInGeneration is returned when a mini build selects a version the generation does not declare.
	ErrSelectionNotInGeneration = zerr.New("selection is not declared by generation")

	// ErrDelegatedToolFailed is returned when an external tool exits non-zero or cannot be started.
	ErrDelegatedToolFailed = zerr.New("delegated tool failed")

	// ErrUnknownToolkit is returned when an accelerator toolkit version is missing from the archive catalog.
	ErrUnknownToolkit = zerr.New("unknown accelerator toolkit version")

	// ErrUnknownRuntimeLib is returned when a runtime library version is missing from the archive catalog.
	ErrUnknownRuntimeLib = zerr.New("unknown accelerator runtime library version")

	// ErrInvalidArchiveName is returned when a catalog URL does not match the expected archive naming.
	ErrInvalidArchiveName = zerr.New("invalid archive file name")

	// ErrMarkerWriteFailed is returned when a completion marker cannot be written.
	ErrMarkerWriteFailed = zerr.New("failed to write completion marker")

	// ErrMarkerReadFailed is returned when a completion marker exists but cannot be read.
	ErrMarkerReadFailed = zerr.New("failed to read completion marker")

	// ErrTreeHashFailed is returned when the tree shape of a directory cannot be computed.
	ErrTreeHashFailed = zerr.New("failed to compute tree shape hash")

	// ErrResetFailed is returned when an incomplete directory cannot be removed.
	ErrResetFailed = zerr.New("failed to remove incomplete directory")

	// ErrLinkFailed is returned when a generation symlink cannot be created.
	ErrLinkFailed = zerr.New("failed to link into generation")

	// ErrPublishFailed is returned when the latest pointer cannot be repointed.
	ErrPublishFailed = zerr.New("failed to publish latest generation")

	// ErrRequirementsNeedMini is returned when a user layer is requested from a full build.
	ErrRequirementsNeedMini = zerr.New("user requirements need a mini build")

	// ErrPruneFailed is returned when garbage collection cannot remove a directory.
	ErrPruneFailed = zerr.New("failed to prune directory")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")

	// ErrConfigReadFailed is returned when the generations file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read generations file")

	// ErrConfigParseFailed is returned when the generations file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse generations file")

	// ErrRequirementsReadFailed is returned when a user requirements file cannot be read.
	ErrRequirementsReadFailed = zerr.New("failed to read requirements file")

	// ErrMissingFramework is returned when the user layer needs a framework version that was not given.
	ErrMissingFramework = zerr.New("framework version is required")

	// ErrInvalidGenerationID is returned when a generation id argument is not a non-negative integer.
	ErrInvalidGenerationID = zerr.New("generation id must be a non-negative integer")

	// ErrLockMissing is returned when a venv has no resolved lock file. Run the update command to create it.
	ErrLockMissing = zerr.New("venv lock file is missing")

	// ErrLockReadFailed is returned when a lock file exists but cannot be read or parsed.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockWriteFailed is returned when lock files cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock files")
)
