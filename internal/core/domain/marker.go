package domain

import "time"

// Marker kinds written by the build.
const (
	KindToolkit    = "toolkit"
	KindRuntimeLib = "runtimelib"
	KindVenv       = "venv"
	KindGeneration = "generation"
	KindUser       = "user"
	KindBuild      = "build"
)

// CompletionMarker records that a directory's unit of work finished, and the tree shape it finished with.
type CompletionMarker struct {
	Timestamp  time.Time         `json:"timestamp"`
	TreeHash   string            `json:"tree_hash"`
	Kind       string            `json:"kind"`
	Attributes map[string]string `json:"attributes"`
}
