//go:build unix

package dirlog

import "golang.org/x/sys/unix"

// accessWritable reports whether the calling process may write to path.
func accessWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
