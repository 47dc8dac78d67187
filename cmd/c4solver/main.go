// Command c4solver is a thin batch CLI over the connectfour solver library:
// "solve this sequence" or "generate/inspect an opening book", printed once
// and exited. It is not the interactive driver spec.md §1 places out of
// scope — there is no REPL, no board rendering loop, no turn-by-turn human
// play here.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
