// SPDX-License-Identifier: MIT

// Command medialivegen renders the medialive package and its OpenAPI
// document from api/medialive.yaml.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "medialivegen: %v\n", err)
	os.Exit(1)
}
