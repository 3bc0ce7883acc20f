package platform

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/homeboard/homeboard/internal/model"
)

// Netmask applied alongside the configured address. The dashboard targets
// home /24 networks; the mask is not user-configurable.
const (
	NetmaskDotted = "255.255.255.0"
	NetmaskCIDR   = "24"
)

// commandRunner executes one external command and returns its combined
// output. Swapped out in tests.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// NetConfigurator applies static IP configuration by shelling out to the
// platform network tool (netsh, networksetup, ip). Applying requires
// elevated privileges; the resulting error text is surfaced to the user
// verbatim. There is deliberately no timeout: the store never waits on this
// and callers run it off the UI goroutine.
type NetConfigurator struct {
	run  commandRunner
	goos string
}

// NewNetConfigurator creates a configurator for the current platform.
func NewNetConfigurator() *NetConfigurator {
	return &NetConfigurator{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
		goos: runtime.GOOS,
	}
}

// ListInterfaces returns the names of the host's network interfaces.
func (n *NetConfigurator) ListInterfaces() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

// Apply sets a static address and default gateway on the configured
// interface. ip and gateway must both be present; the interface name
// defaults to "Ethernet".
func (n *NetConfigurator) Apply(ctx context.Context, ns model.NetworkSettings) error {
	if ns.IP == "" || ns.Gateway == "" {
		return fmt.Errorf("ip and gateway are required")
	}
	if ns.InterfaceName == "" {
		ns.InterfaceName = model.DefaultInterfaceName
	}

	cmds, err := netCommands(n.goos, ns)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		out, err := n.run(ctx, cmd[0], cmd[1:]...)
		if err != nil {
			msg := strings.TrimSpace(decodeConsoleOutput(out))
			if msg == "" {
				return fmt.Errorf("%s: %w", cmd[0], err)
			}
			return fmt.Errorf("%s: %w: %s", cmd[0], err, msg)
		}
	}
	return nil
}

// netCommands builds the per-platform command sequence for a static setup.
func netCommands(goos string, ns model.NetworkSettings) ([][]string, error) {
	switch goos {
	case OSWindows:
		return [][]string{
			{"netsh", "interface", "ip", "set", "address", ns.InterfaceName, "static", ns.IP, NetmaskDotted, ns.Gateway},
		}, nil
	case OSDarwin:
		return [][]string{
			{"networksetup", "-setmanual", ns.InterfaceName, ns.IP, NetmaskDotted, ns.Gateway},
		}, nil
	case OSLinux:
		return [][]string{
			{"ip", "addr", "replace", ns.IP + "/" + NetmaskCIDR, "dev", ns.InterfaceName},
			{"ip", "route", "replace", "default", "via", ns.Gateway, "dev", ns.InterfaceName},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// decodeConsoleOutput turns tool output into UTF-8. netsh on Japanese
// Windows writes Shift-JIS; anything that is not already valid UTF-8 is
// decoded as such, falling back to the raw bytes.
func decodeConsoleOutput(out []byte) string {
	if utf8.Valid(out) {
		return string(out)
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(out)
	if err != nil {
		return string(out)
	}
	return string(decoded)
}
