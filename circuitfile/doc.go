// Package circuitfile implements a reader for the circuitinfo circuit
// description format.
//
// A circuit file is plain text, one declaration per line, in the form
// key=value. Blank lines and lines whose first character is '/' are ignored.
// Three keys are recognized directly: TotalNodes (integer), NodeDelays
// (comma-separated integers, one per node, in file order) and MaxClockCycle
// (integer). Every other key is recorded as a named edge delay.
//
// By default values are converted with a lenient ASCII-to-integer rule that
// never fails: leading whitespace is skipped, an optional sign and any
// leading digits are consumed, and anything that yields no digits becomes 0.
// ParseStrict rejects malformed integers instead.
//
// Usage:
//
//	circuit, err := circuitfile.ParseFile("example_input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(circuit.TotalNodes, circuit.MaxClockCycle)
package circuitfile
