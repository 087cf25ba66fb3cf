package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "package.json"

	// ManifestSection is the manifest key holding the transformation settings.
	ManifestSection = "solid"

	// DependencyDirName is the directory installed dependencies live in.
	DependencyDirName = "node_modules"

	// ToolFileName is the name of the optional tool configuration file.
	ToolFileName = "solidc.yaml"

	// EnvFileName is the name of the project environment file.
	EnvFileName = ".env"

	// WorkDirName is the name of the internal workspace directory.
	WorkDirName = ".solidc"

	// CacheDirName is the name of the durable artifact cache directory.
	CacheDirName = "cache"

	// OutDirName is the name of the default output directory.
	OutDirName = "out"

	// ArtifactExt is the file extension of stored artifacts.
	ArtifactExt = ".art"

	// DefaultMemoryBudget is the default byte budget of the in-memory cache tier.
	DefaultMemoryBudget int64 = 10 << 20

	// DefaultDiskBudget is the default byte budget of the durable cache tier.
	DefaultDiskBudget int64 = 64 << 20

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path of the durable artifact cache.
// It joins .solidc and cache.
func DefaultCachePath() string {
	return filepath.Join(WorkDirName, CacheDirName)
}

// DefaultOutPath returns the default output directory.
// It joins .solidc and out.
func DefaultOutPath() string {
	return filepath.Join(WorkDirName, OutDirName)
}
