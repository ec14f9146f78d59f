// Huesight - an adaptive colour namer
//
// Huesight classifies the colour a camera or image region points at
// and names it in everyday vocabulary, adapting to ambient lighting
// as it drifts.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/huesight/internal/cli"
)

func main() {
	cli.Execute()
}
