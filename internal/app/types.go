package app

// Config carries the configuration the extraction service needs from
// the outside: where the repository (and thus the cache file) lives and
// which command inspects package archives.
type Config struct {
	RepositoryPath string
	PackageCommand string
}

type ExtractRequest struct {
	Path string
	// Silent discards the inspection command's stderr.
	Silent bool
}
