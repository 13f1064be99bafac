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

// Package config holds the global configuration of the program.
// Defaults are defined here and can be overwritten by a TOML
// configuration file and by command line options.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// ConfFile is the path to the configuration file to be read
	// by Setup(). Set this before calling Setup() to use a non
	// default location.
	ConfFile = "./config.toml"

	// LogLevel defines the general log level set by default or
	// given by the command line arguments
	LogLevel = 3

	// TestLogLevel defines the log level used when running tests
	TestLogLevel = 3

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

// LogLevels maps the level names used on the command line and in the
// configuration file to the levels of the logging framework.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	LogLvl     string
	TestLogLvl string
}

type perftConfiguration struct {
	// Depth is the default perft depth when none is given on the command line
	Depth int
	// Divide prints a per root move breakdown of the node counts
	Divide bool
	// SliderIndex selects the slider attack lookup ("magic" or "pext")
	SliderIndex string
}

// Setup reads the configuration file and sets the global
// configuration values. Keeps an initialized flag to avoid
// multiple executions.
func Setup() {
	if initialized {
		return
	}

	// defaults for values not present in the configuration file
	Settings.Perft.Depth = 5
	Settings.Perft.SliderIndex = "magic"

	// read configuration file - a missing file is not an error,
	// defaults apply
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			fmt.Println("Config file could not be read:", err)
		}
	}

	setupLogLvl()

	initialized = true
}

// setup log level - first check config file, finally leave defaults
func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
		LogLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.TestLogLvl]; found {
		TestLogLevel = lvl
	}
}
