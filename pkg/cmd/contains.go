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

// containsCmd checks whether a described set contains a given point.
var containsCmd = &cobra.Command{
	Use:   "contains [flags] set_file coordinate...",
	Short: "Check whether a set contains a given point.",
	Long: `Check whether a set contains a given point.  The point is given
	coordinate by coordinate after the set file, and must have exactly as many
	coordinates as the set's ambient dimension.  Exits with status 1 when the
	point lies outside the set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		// Parse set description
		s := readSetFile(args[0])
		// Parse point (which can be empty for a dimension 0 set)
		point := parseVector(args[1:])
		log.Debugf("querying point %s", point)
		// Go!
		ok, err := s.Contains(point)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if !ok {
			fmt.Println("outside")
			os.Exit(1)
		}
		//
		fmt.Println("inside")
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
}
