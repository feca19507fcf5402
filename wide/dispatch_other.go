//go:build !amd64 && !arm64

package wide

func init() {
	// Non-amd64 architectures fall back to scalar sizing for now.
	setScalarMode()
}
