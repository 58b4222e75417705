//go:build windows

package ipc

import (
	"net"
	"os/user"
	"regexp"

	"github.com/Microsoft/go-winio"
)

var pipeName = `\\.\pipe\lapwatch`

func init() {
	if u, err := user.Current(); err == nil {
		pipeName += regexp.MustCompile(`[^a-zA-Z0-9]+`).ReplaceAllString(u.Name, "")
	}
}

// SetSocketDir is a no-op on Windows: named pipes live in their own namespace.
func SetSocketDir(string) {}

func Dial() (net.Conn, error) {
	return winio.DialPipe(pipeName, nil)
}

func Listen() (net.Listener, error) {
	// only the creating user may connect
	return winio.ListenPipe(pipeName, &winio.PipeConfig{
		SecurityDescriptor: "D:P(A;;GA;;;OW)",
	})
}

func DestroyConn() error {
	// Windows named pipes are cleaned up when the listener closes
	return nil
}
