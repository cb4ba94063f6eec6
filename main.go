// SPDX-License-Identifier: MPL-2.0

package main

import cmd "rrun-cli/cmd/rrun"

func main() {
	cmd.Execute()
}
