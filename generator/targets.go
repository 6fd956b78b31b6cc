package generator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownTarget is returned for target names other than web and ue.
var ErrUnknownTarget = errors.New("unknown target")

// Target names a set of outputs.
type Target string

// Targets.
const (
	// TargetWeb produces favicons and PWA icons.
	TargetWeb Target = "web"
	// TargetEngine produces Windows, macOS and Linux packaging icons for
	// game engines.
	TargetEngine Target = "ue"
)

// allTargets lists all targets in generation order.
var allTargets = []Target{TargetWeb, TargetEngine}

// Targets is a set of targets in generation order.
type Targets []Target

// Has returns whether t is part of the set.
func (ts Targets) Has(t Target) bool {
	return slices.Contains(ts, t)
}

func (ts Targets) String() string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, string(t))
	}
	return strings.Join(names, ",")
}

// ParseTargets parses a comma-separated list of target names.
// Names are case-insensitive, blanks and duplicates are ignored.
func ParseTargets(value string) (Targets, error) {
	requested := make(map[Target]struct{})
	var unknown []string
	for _, name := range strings.Split(value, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		t := Target(name)
		if !slices.Contains(allTargets, t) {
			unknown = append(unknown, name)
			continue
		}
		requested[t] = struct{}{}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		unknown = slices.Compact(unknown)
		return nil, fmt.Errorf("%w: %s (use: %s)", ErrUnknownTarget, strings.Join(unknown, ", "), Targets(allTargets))
	}

	targets := make(Targets, 0, len(requested))
	for _, t := range allTargets {
		if _, ok := requested[t]; ok {
			targets = append(targets, t)
		}
	}
	return targets, nil
}
