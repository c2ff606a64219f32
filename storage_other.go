//go:build !unix

package dirlog

import "os"

// accessWritable reports whether path can be opened for writing.
func accessWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
