/*
 * Pyke - bitboard move generator and PERFT counter in Go
 *
 * MIT License
 *
 * Copyright (c) 2024-2025 nmohanu
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Pyke is a bitboard based chess move generator. This command runs
// the PERFT benchmark on a position: it counts all leaf positions
// reachable in exactly N plies which is the standard correctness
// test for move generators.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nmohanu/pyke/internal/attacks"
	"github.com/nmohanu/pyke/internal/config"
	"github.com/nmohanu/pyke/internal/logging"
	"github.com/nmohanu/pyke/internal/movegen"
	"github.com/nmohanu/pyke/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to run perft on")
	depth := flag.Int("depth", 0, "perft depth (default from config file)")
	multi := flag.Bool("multi", false, "iterate all depths from 1 up to -depth")
	divide := flag.Bool("divide", false, "print a per root move breakdown of the counts")
	pext := flag.Bool("pext", false, "use the PEXT style slider index instead of magics")
	profileFlag := flag.Bool("profile", false, "write a cpu profile to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	// this needs to be set before config.Setup() is called,
	// otherwise the default will be used
	config.ConfFile = *configFile
	config.Setup()

	// command line options overwrite config file settings
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *depth == 0 {
		*depth = config.Settings.Perft.Depth
	}
	if !*divide {
		*divide = config.Settings.Perft.Divide
	}
	if !*pext {
		*pext = config.Settings.Perft.SliderIndex == "pext"
	}
	attacks.UsePext(*pext)

	// resetting log level of the standard log - required as packages
	// create their loggers before main() is called
	log := logging.GetLog()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *depth < 0 {
		log.Errorf("perft depth must not be negative: %d", *depth)
		os.Exit(1)
	}
	if _, err := position.NewPositionFen(*fen); err != nil {
		log.Errorf("invalid position: %s", err)
		os.Exit(1)
	}

	perft := movegen.NewPerft()
	if *multi {
		perft.StartPerftMulti(*fen, 1, *depth, *divide)
	} else {
		perft.StartPerft(*fen, *depth, *divide)
	}
}

func printVersionInfo() {
	out.Printf("Pyke perft\n")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
