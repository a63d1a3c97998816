// SPDX-License-Identifier: MIT

// Package machine parses the textual machine descriptions fed to the solver.
//
// One machine per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//   - [...] is the lights diagram: '#' on, '.' off, one cell per counter.
//   - (...) is one button: the comma-separated counters it affects; "()" is
//     a button wired to nothing.
//   - {...} is the joltage block: one non-negative target per counter.
//
// Tokens are whitespace separated. The diagram and joltage block are each
// optional, but a line must carry at least one of them.
package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/presses/presses"
)

// Machine is one parsed line.
type Machine struct {
	// Lights is the target diagram; nil when the line has none.
	Lights []bool

	// Buttons lists, per button, the counters it affects in input order.
	Buttons [][]int

	// Joltage holds the integer targets; nil when the line has none.
	Joltage []int
}

// Parse parses one machine line.
// Errors: ErrMalformedLine wrapped with the offending token.
func Parse(line string) (Machine, error) {
	var (
		m                   Machine
		seenLights, seenJlt bool
	)
	for _, tok := range strings.Fields(line) {
		if len(tok) < 2 {
			return Machine{}, malformed(tok, "too short")
		}
		open, body, end := tok[0], tok[1:len(tok)-1], tok[len(tok)-1]
		switch {
		case open == '[' && end == ']':
			if seenLights {
				return Machine{}, malformed(tok, "second lights diagram")
			}
			seenLights = true
			lights, err := parseDiagram(body)
			if err != nil {
				return Machine{}, malformed(tok, err.Error())
			}
			m.Lights = lights
		case open == '(' && end == ')':
			if seenJlt {
				return Machine{}, malformed(tok, "button after joltage block")
			}
			button, err := parseInts(body)
			if err != nil {
				return Machine{}, malformed(tok, err.Error())
			}
			m.Buttons = append(m.Buttons, button)
		case open == '{' && end == '}':
			if seenJlt {
				return Machine{}, malformed(tok, "second joltage block")
			}
			seenJlt = true
			jolts, err := parseInts(body)
			if err != nil {
				return Machine{}, malformed(tok, err.Error())
			}
			m.Joltage = jolts
		default:
			return Machine{}, malformed(tok, "unknown token")
		}
	}

	if !seenLights && !seenJlt {
		return Machine{}, fmt.Errorf("Parse: no lights diagram or joltage block: %w", ErrMalformedLine)
	}
	if seenLights && seenJlt && len(m.Lights) != len(m.Joltage) {
		return Machine{}, fmt.Errorf("Parse: %d lights vs %d joltage targets: %w", len(m.Lights), len(m.Joltage), ErrMalformedLine)
	}
	if m.Buttons == nil {
		m.Buttons = [][]int{}
	}

	return m, nil
}

func malformed(tok, why string) error {
	return fmt.Errorf("Parse: token %q: %s: %w", tok, why, ErrMalformedLine)
}

func parseDiagram(body string) ([]bool, error) {
	out := make([]bool, len(body))
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '#':
			out[i] = true
		case '.':
		default:
			return nil, fmt.Errorf("cell %d is %q", i, body[i])
		}
	}

	return out, nil
}

// parseInts parses a comma-separated list of non-negative integers; the
// empty body is the empty list.
func parseInts(body string) ([]int, error) {
	if body == "" {
		return []int{}, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("item %d is negative", i)
		}
		out[i] = n
	}

	return out, nil
}

// LightTargets returns the diagram as 0/1 targets.
func (m Machine) LightTargets() []int {
	out := make([]int, len(m.Lights))
	for i, on := range m.Lights {
		if on {
			out[i] = 1
		}
	}

	return out
}

// System returns the buttons and targets for variant v.
// Returns ErrMissingTargets when the line lacks that variant's block.
func (m Machine) System(v presses.Variant) ([][]int, []int, error) {
	switch v {
	case presses.Lights:
		if m.Lights == nil {
			return nil, nil, fmt.Errorf("System(%s): %w", v, ErrMissingTargets)
		}
		return m.Buttons, m.LightTargets(), nil
	case presses.Joltage:
		if m.Joltage == nil {
			return nil, nil, fmt.Errorf("System(%s): %w", v, ErrMissingTargets)
		}
		return m.Buttons, m.Joltage, nil
	}

	return nil, nil, fmt.Errorf("System(%s): %w", v, presses.ErrUnknownVariant)
}

// String renders m back into the line format.
func (m Machine) String() string {
	var sb strings.Builder
	if m.Lights != nil {
		sb.WriteByte('[')
		for _, on := range m.Lights {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte(']')
	}
	for _, b := range m.Buttons {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		writeInts(&sb, '(', b, ')')
	}
	if m.Joltage != nil {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		writeInts(&sb, '{', m.Joltage, '}')
	}

	return sb.String()
}

func writeInts(sb *strings.Builder, open byte, xs []int, end byte) {
	sb.WriteByte(open)
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(end)
}

// ParseAll reads one machine per non-blank line.
// Errors name the 1-based line number.
func ParseAll(r io.Reader) ([]Machine, error) {
	var (
		out  []Machine
		n    int
		scan = bufio.NewScanner(r)
	)
	scan.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scan.Scan() {
		n++
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, m)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n+1, err)
	}

	return out, nil
}
