package circuitfile

import (
	"os"
	"strconv"
	"strings"
)

// Parse parses circuit file text with lenient integer conversion. It always
// succeeds: malformed lines contribute nothing and malformed integers become
// zero.
func Parse(src []byte) *Circuit {
	c, _ := parse(src, false)
	return c
}

// ParseStrict parses circuit file text, rejecting malformed integer values.
// Returns a *ValueError naming the offending line on failure. Lines without
// '=' are still ignored in strict mode; only values are checked.
func ParseStrict(src []byte) (*Circuit, error) {
	return parse(src, true)
}

// ParseFile reads and parses the circuit file at path. An unreadable path
// yields a *OpenError wrapping the underlying os error.
func ParseFile(path string) (*Circuit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	return Parse(src), nil
}

// ParseFileStrict is ParseFile with strict integer conversion.
func ParseFileStrict(path string) (*Circuit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	return ParseStrict(src)
}

func parse(src []byte, strict bool) (*Circuit, error) {
	c := &Circuit{EdgeDelays: make(map[string]int)}

	for lineNum, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSuffix(line, "\r")

		// Blank lines and lines whose FIRST character is '/' are skipped.
		// A '/' anywhere else is not special.
		if line == "" || line[0] == '/' {
			continue
		}

		// Split at the first '='. The key is trimmed of spaces and tabs;
		// the value is taken verbatim, trailing '=' characters included.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.Trim(key, " \t")

		switch key {
		case "TotalNodes":
			n, err := convert(key, value, lineNum+1, strict)
			if err != nil {
				return nil, err
			}
			c.TotalNodes = n

		case "NodeDelays":
			// An empty value is one empty segment, which converts to 0.
			for _, seg := range strings.Split(value, ",") {
				n, err := convert(key, seg, lineNum+1, strict)
				if err != nil {
					return nil, err
				}
				c.NodeDelays = append(c.NodeDelays, n)
			}

		case "MaxClockCycle":
			n, err := convert(key, value, lineNum+1, strict)
			if err != nil {
				return nil, err
			}
			c.MaxClockCycle = n

		default:
			n, err := convert(key, value, lineNum+1, strict)
			if err != nil {
				return nil, err
			}
			c.setEdgeDelay(key, n)
		}
	}

	return c, nil
}

func convert(key, value string, line int, strict bool) (int, error) {
	if !strict {
		return lenientAtoi(value), nil
	}
	n, err := strconv.Atoi(strings.Trim(value, " \t"))
	if err != nil {
		return 0, &ValueError{Key: key, Value: value, Line: line, Cause: err}
	}
	return n, nil
}
