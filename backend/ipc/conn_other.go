//go:build !windows

package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
)

const socketEnvVar = "LAPWATCH_SOCKET"

// socketPath is chosen in this order:
//   - $LAPWATCH_SOCKET if set
//   - macOS: ~/Library/Caches/lapwatch/lapwatch.sock
//   - Linux/Unix: $XDG_RUNTIME_DIR/lapwatch.sock
//   - /tmp/lapwatch-{uid}.sock
//
// Portable mode overrides it with SetSocketDir.
var socketPath = defaultSocketPath()

func defaultSocketPath() string {
	if p := os.Getenv(socketEnvVar); p != "" {
		return p
	}
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Caches", "lapwatch", "lapwatch.sock")
		}
	} else if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "lapwatch.sock")
	}
	if u, err := user.Current(); err == nil {
		return fmt.Sprintf("/tmp/lapwatch-%s.sock", u.Uid)
	}
	return "/tmp/lapwatch.sock"
}

// SetSocketDir places the socket inside dir, unless $LAPWATCH_SOCKET is set.
func SetSocketDir(dir string) {
	if os.Getenv(socketEnvVar) == "" {
		socketPath = filepath.Join(dir, "lapwatch.sock")
	}
}

func Dial() (net.Conn, error) {
	return net.Dial("unix", socketPath)
}

// Listen creates the Unix domain socket listener. A socket file left behind
// by an instance that exited without cleanup is removed first.
func Listen() (net.Listener, error) {
	if _, err := os.Stat(socketPath); err == nil {
		if conn, err := Dial(); err == nil {
			conn.Close()
			return nil, errors.New("socket in use by another instance")
		}
		os.Remove(socketPath)
	}
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, err
	}
	return net.Listen("unix", socketPath)
}

// DestroyConn removes the socket file. Called during shutdown.
func DestroyConn() error {
	return os.Remove(socketPath)
}
