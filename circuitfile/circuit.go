package circuitfile

// Circuit is the complete parsed representation of a circuit file.
//
// Every field reflects the last occurrence of its key in the file: later
// duplicate scalar keys overwrite earlier ones, and EdgeDelays entries
// overwrite by exact key text. No cross-field consistency is enforced; in
// particular len(NodeDelays) need not equal TotalNodes.
type Circuit struct {
	TotalNodes    int            // from TotalNodes=
	NodeDelays    []int          // from NodeDelays=, in file order
	EdgeDelays    map[string]int // every unrecognized key=value line
	MaxClockCycle int            // from MaxClockCycle=

	edgeOrder []string // EdgeDelays keys, first-seen file order
}

// EdgeDelay looks up an edge delay by name. Returns the delay and true if
// the edge appeared in the file.
func (c *Circuit) EdgeDelay(name string) (int, bool) {
	d, ok := c.EdgeDelays[name]
	return d, ok
}

// EdgeNames returns the edge delay keys in the order they first appeared in
// the file. A key that occurs more than once keeps its first position.
func (c *Circuit) EdgeNames() []string {
	names := make([]string, len(c.edgeOrder))
	copy(names, c.edgeOrder)
	return names
}

func (c *Circuit) setEdgeDelay(name string, delay int) {
	if _, ok := c.EdgeDelays[name]; !ok {
		c.edgeOrder = append(c.edgeOrder, name)
	}
	c.EdgeDelays[name] = delay
}
