// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/setfile"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging verbosity from the persistent verbose flag.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse a set description file into the lazy set it describes.
func readSetFile(filename string) set.LazySet {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var s set.LazySet
		//
		s, err = setfile.FromJson(bytes)
		if err == nil {
			log.Debugf("read set of dimension %d from %s", s.Dimension(), filename)
			return s
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse a vector given coordinate-by-coordinate as command-line arguments.
func parseVector(args []string) vector.Vector {
	result := make(vector.Vector, len(args))
	//
	for i, arg := range args {
		coord, err := strconv.ParseFloat(arg, 64)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		result[i] = coord
	}
	//
	return result
}

// Print a vector, splitting it over multiple lines when it exceeds the width
// of the enclosing terminal.
func printVector(v vector.Vector) {
	var (
		width = terminalWidth()
		text  = v.String()
	)
	//
	for uint(len(text)) > width {
		fmt.Println(text[:width])
		text = text[width:]
	}
	//
	fmt.Println(text)
}

// Determine the width of the enclosing terminal, defaulting to 80 when
// stdout is not a terminal.
func terminalWidth() uint {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return uint(w)
		}
	}
	//
	return 80
}
