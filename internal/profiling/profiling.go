// Package profiling wraps github.com/pkg/profile for the -profile flag.
package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

// Start begins profiling in mode "cpu" or "mem", writing into dir (the
// working directory when empty). An empty mode does nothing. The returned
// function stops profiling and flushes the profile.
func Start(mode, dir string) (stop func(), err error) {
	opts := []func(*profile.Profile){profile.Quiet, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}

	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(opts...).Stop, nil
}
