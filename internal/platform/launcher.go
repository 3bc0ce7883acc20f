package platform

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/homeboard/homeboard/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	WindowsCmdFlag  = "/c"
)

// Launch opens a shortcut target: URLs in the default browser, files and
// folders with the OS default handler. The call blocks until the handler
// process has been spawned, not until the target closes.
func Launch(sc model.Shortcut) error {
	if !sc.Type.Valid() {
		return fmt.Errorf("unknown shortcut type: %q", sc.Type)
	}
	return openTarget(sc.Path)
}

// openTarget hands the path or URL to the platform opener; the OS resolves
// the right application for files, folders, and URLs alike.
func openTarget(target string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, target).Start()
	case OSWindows:
		// start interprets the first quoted argument as a window title.
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", target).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, target).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// Reveal opens the directory containing a file in the file manager,
// highlighting it where the platform supports selection.
func Reveal(path string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, "-R", path).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, "/select,", path).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, path).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
