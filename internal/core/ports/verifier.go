package ports

// FileVerifier checks the files a configuration refers to.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type FileVerifier interface {
	// Missing returns the paths that do not exist, in the given order.
	Missing(paths []string) ([]string, error)
}
