// Command lispy is the Lispy interpreter's process entry point: with no
// file arguments it starts the REPL (internal/repl); with one or more it
// loads each in order into the global environment and exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lispy-lang/lispy/internal/eval"
	"github.com/lispy-lang/lispy/internal/repl"
)

// stdlibFilename is the name the bootstrap looks for in the working
// directory at startup. Its source lives at stdlib/stdlib.lispy in this
// repository; running lispy from a directory that doesn't hold a copy of
// it just means no standard library gets loaded.
const stdlibFilename = "stdlib.lispy"

var logger = log.New(os.Stderr, "", 0)

func main() {
	nostdlib := flag.Bool("nostdlib", false, "skip loading the standard library bootstrap")
	flag.Parse()

	interp := eval.New(os.Stdout)

	if !*nostdlib {
		loadStdlib(interp)
	}

	args := flag.Args()
	if len(args) == 0 {
		repl.Run(interp)
		return
	}

	status := 0
	for _, path := range args {
		if result := interp.LoadFile(path); result.IsErr() {
			fmt.Fprintln(interp.Out, result.Debug())
			status = 1
		}
	}
	os.Exit(status)
}

// loadStdlib: present but broken is a diagnostic, not a fatal error; absent
// is not even that.
func loadStdlib(interp *eval.Interpreter) {
	if _, err := os.Stat(stdlibFilename); err != nil {
		if !os.IsNotExist(err) {
			logger.Printf("stdlib.lispy: %v", err)
		}
		return
	}
	if result := interp.LoadFile(stdlibFilename); result.IsErr() {
		logger.Printf("stdlib.lispy: %s", result.Debug())
	}
}
