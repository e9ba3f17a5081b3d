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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// supportCmd computes a support vector of a described set in a given
// direction.
var supportCmd = &cobra.Command{
	Use:   "support [flags] set_file coordinate...",
	Short: "Compute a support vector of a set in a given direction.",
	Long: `Compute a support vector of a set in a given direction, that is a point
	of the set maximising the inner product with the direction.  The direction
	is given coordinate by coordinate after the set file, and must have exactly
	as many coordinates as the set's ambient dimension.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		// Parse set description
		s := readSetFile(args[0])
		// Parse direction
		direction := parseVector(args[1:])
		log.Debugf("querying direction %s", direction)
		// Go!
		v, err := s.SupportVector(direction)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		printVector(v)
		fmt.Printf("value: %g\n", v.Dot(direction))
	},
}

func init() {
	rootCmd.AddCommand(supportCmd)
}
