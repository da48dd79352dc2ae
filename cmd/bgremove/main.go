package main

import (
	"fmt"
	"os"
)

// go run ./cmd/bgremove public/logo.jpg public/logo_final.png
// go run ./cmd/bgremove --in logo.jpg --outbase64
// go run ./cmd/bgremove batch --out-dir out --workers 4 a.jpg b.png

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
