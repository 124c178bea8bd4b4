package ioadapt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

// LoadXYZ parses the plain XYZ layout from spec.md §6: a leading atom
// count, then that many whitespace-separated "symbol x y z" lines. Unlike
// the conventional XYZ format there is no comment line between the two.
func LoadXYZ(r io.Reader) ([]substrate.RawAtom, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedXYZ)
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("%w: bad atom count", ErrMalformedXYZ)
	}

	atoms := make([]substrate.RawAtom, 0, count)
	for len(atoms) < count {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d atoms, got %d", ErrMalformedXYZ, count, len(atoms))
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %q does not have 4 fields", ErrMalformedXYZ, line)
		}
		x, errX := strconv.ParseFloat(fields[1], 32)
		y, errY := strconv.ParseFloat(fields[2], 32)
		z, errZ := strconv.ParseFloat(fields[3], 32)
		if errX != nil || errY != nil || errZ != nil {
			return nil, fmt.Errorf("%w: non-numeric coordinate in %q", ErrMalformedXYZ, line)
		}
		atoms = append(atoms, substrate.RawAtom{
			Symbol: fields[0],
			Coords: geom.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXYZ, err)
	}
	return atoms, nil
}

// LoadRadiusTable parses the covalent-radius table layout from spec.md
// §6: a leading entry count, then that many "symbol radius" lines, radius
// given in integer centi-ångström.
func LoadRadiusTable(r io.Reader) (map[string]int, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedRadii)
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("%w: bad entry count", ErrMalformedRadii)
	}

	table := make(map[string]int, count)
	for len(table) < count {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d entries, got %d", ErrMalformedRadii, count, len(table))
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %q does not have 2 fields", ErrMalformedRadii, line)
		}
		radius, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric radius in %q", ErrMalformedRadii, line)
		}
		table[fields[0]] = radius
	}
	return table, nil
}
