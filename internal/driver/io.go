package driver

import "os"

func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the CLI argument list or a project manifest, not untrusted input
	return os.ReadFile(path)
}
