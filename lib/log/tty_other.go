//go:build !linux

package log

import "os"

func isTerminal(_ *os.File) bool {
	return false
}
