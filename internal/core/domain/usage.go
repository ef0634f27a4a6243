package domain

// DirUsage is the on-disk size of a directory, counting hardlinked files once.
type DirUsage struct {
	Path  string
	Bytes int64
}
