package load

import (
	"fmt"
	"strings"

	"github.com/panglars/VeRForTe/internal/contract"
)

// DeviceVendors enumerates the device entries of a package-index checkout
// and returns their names (file stems). The names feed vendor recognition
// in board sorting and display. A nil source means no package index is
// configured and yields an empty set.
func DeviceVendors(src contract.ContentSource) ([]string, error) {
	if src == nil {
		return nil, nil
	}
	paths, err := src.Glob(contract.DeviceGlob)
	if err != nil {
		return nil, fmt.Errorf("enumerate device entries: %w", err)
	}

	devices := make([]string, 0, len(paths))
	for _, p := range paths {
		parts := strings.Split(p, "/")
		name := strings.TrimSuffix(parts[len(parts)-1], ".toml")
		if name != "" {
			devices = append(devices, name)
		}
	}
	return devices, nil
}
