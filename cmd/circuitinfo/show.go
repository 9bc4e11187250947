package main

import (
	"fmt"
	"io"
	"os"

	"github.com/apmaso/circuitinfo/circuitfile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show <circuit.txt>",
	Short: "Parse a circuit file and print its fields",
	Long:  "Parse a circuit description file and print the node count, max clock cycle, node delays and edge delays.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("strict", false, "Reject malformed integer values instead of coercing them to 0")
	showCmd.Flags().Bool("short", false, "Print only the node count")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	strict, _ := cmd.Flags().GetBool("strict")
	short, _ := cmd.Flags().GetBool("short")
	verbose := viper.GetBool("verbose")

	var circuit *circuitfile.Circuit
	var err error
	if strict {
		circuit, err = circuitfile.ParseFileStrict(path)
	} else {
		circuit, err = circuitfile.ParseFile(path)
	}
	if err != nil {
		return fmt.Errorf("parsing circuit file: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %s: %d nodes, %d node delays, %d edge delays\n",
			path, circuit.TotalNodes, len(circuit.NodeDelays), len(circuit.EdgeDelays))
	}

	printCircuit(cmd.OutOrStdout(), circuit, short)
	return nil
}

// printCircuit prints the parsed fields. Node delays are space-separated with
// a trailing space for output parity with the original reporting tool; edge
// delays print as key=value pairs in file order and are omitted when empty.
func printCircuit(w io.Writer, c *circuitfile.Circuit, short bool) {
	fmt.Fprintf(w, "Total Nodes: %d\n", c.TotalNodes)
	if short {
		return
	}

	fmt.Fprintf(w, "Max Clock Cycle: %d\n", c.MaxClockCycle)

	fmt.Fprintf(w, "Node Delays: ")
	for _, d := range c.NodeDelays {
		fmt.Fprintf(w, "%d ", d)
	}
	fmt.Fprintln(w)

	if len(c.EdgeDelays) > 0 {
		fmt.Fprintf(w, "Edge Delays: ")
		for _, name := range c.EdgeNames() {
			fmt.Fprintf(w, "%s=%d ", name, c.EdgeDelays[name])
		}
		fmt.Fprintln(w)
	}
}
