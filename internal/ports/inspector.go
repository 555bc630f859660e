package ports

// InspectorPort runs the external package inspection command against an
// archive or manifest and returns its attribute listing. Silent mode
// discards the command's stderr.
type InspectorPort interface {
	Inspect(path string, silent bool) ([]byte, error)
}
