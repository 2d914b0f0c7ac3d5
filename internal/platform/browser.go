package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	RundllCommand   = "rundll32"
	URLHandlerEntry = "url.dll,FileProtocolHandler"
)

// ErrUnsupportedURL is returned for URLs that are not absolute http(s) URLs
var ErrUnsupportedURL = errors.New("only absolute http and https urls can be opened")

// OpenURL opens rawURL in the default browser of the current OS
func OpenURL(rawURL string) error {
	name, args, err := openCommand(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// the browser outlives us; reap the launcher in the background
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// openCommand returns the launcher command for goos
func openCommand(goos, rawURL string) (string, []string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("parse url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}
	target := u.String()

	switch goos {
	case OSDarwin:
		return OpenCommand, []string{target}, nil
	case OSWindows:
		return RundllCommand, []string{URLHandlerEntry, target}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
