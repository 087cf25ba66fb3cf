package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when a package manifest exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when a package manifest or its solid section is malformed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrInvalidPattern is returned when a match or ignore glob cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrFingerprintFailed is returned when the cache key inputs cannot be encoded.
	ErrFingerprintFailed = zerr.New("failed to compute fingerprint")

	// ErrStoreCreateFailed is returned when the artifact store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create artifact store directory")

	// ErrStoreReadFailed is returned when a stored artifact cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read artifact")

	// ErrStoreWriteFailed is returned when an artifact cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write artifact")

	// ErrStoreDecodeFailed is returned when a stored artifact cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode artifact")

	// ErrStoreEncodeFailed is returned when an artifact cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode artifact")

	// ErrStorePurgeFailed is returned when the artifact store cannot be emptied.
	ErrStorePurgeFailed = zerr.New("failed to purge artifact store")

	// ErrCompilerFailed is returned when the external compiler rejects a file.
	ErrCompilerFailed = zerr.New("compiler failed")

	// ErrCompilerProtocol is returned when a compiler worker replies with an unreadable response.
	ErrCompilerProtocol = zerr.New("invalid compiler response")

	// ErrCompilerNotConfigured is returned when no compiler command is set.
	ErrCompilerNotConfigured = zerr.New("no compiler command configured")

	// ErrNoCompilerForExtension is returned when no adapter handles a file extension.
	ErrNoCompilerForExtension = zerr.New("no compiler registered for extension")

	// ErrExtensionConflict is returned when two adapters claim the same extension.
	ErrExtensionConflict = zerr.New("extension already registered")

	// ErrConfigReadFailed is returned when the tool config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileReadFailed is returned when the project .env file cannot be parsed.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrSourceReadFailed is returned when a source file given on the command line cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrNoMatchingFiles is returned when a path or pattern argument yields no source files.
	ErrNoMatchingFiles = zerr.New("no source files match")

	// ErrOutputWriteFailed is returned when a compiled output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write compiled output")

	// ErrFailedToGetRoot is returned when the working directory cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrNoFilesSpecified is returned when a command needs at least one source file.
	ErrNoFilesSpecified = zerr.New("no files specified")
)
