// File: synthetic.go
// Role: compact synthetic graph descriptors for the CLI and config file.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSynthetic turns a descriptor into a Constructor:
//
//	grid:RxC          Grid(R, C)
//	line:N            Line(N)
//	random:N:RADIUS   RandomGeometric(N, RADIUS)
//
// Parameter ranges are checked by the constructor itself when it runs.
func ParseSynthetic(desc string) (Constructor, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(desc), ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q (want kind:args)", ErrBadSynthetic, desc)
	}

	switch strings.ToLower(kind) {
	case "grid":
		rs, cs, ok := strings.Cut(strings.ToLower(args), "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q (want grid:RxC)", ErrBadSynthetic, desc)
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q (want grid:RxC)", ErrBadSynthetic, desc)
		}
		return Grid(rows, cols), nil

	case "line":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (want line:N)", ErrBadSynthetic, desc)
		}
		return Line(n), nil

	case "random":
		ns, rs, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q (want random:N:RADIUS)", ErrBadSynthetic, desc)
		}
		n, err1 := strconv.Atoi(ns)
		r, err2 := strconv.ParseFloat(rs, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q (want random:N:RADIUS)", ErrBadSynthetic, desc)
		}
		return RandomGeometric(n, r), nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrBadSynthetic, kind)
}
