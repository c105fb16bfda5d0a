// Package main provides the entry point for mipssim.
// mipssim is an instruction-set simulator for a five-instruction MIPS subset.
//
// For the full CLI, use: go run ./cmd/mipssim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mipssim - MIPS subset instruction-set simulator")
	fmt.Println("")
	fmt.Println("Usage: mipssim [options] [program.txt]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to emulator configuration JSON file")
	fmt.Println("  -random    Fill registers and data memory with random values")
	fmt.Println("  -seed      Seed for -random")
	fmt.Println("  -trace     Print each executed instruction")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mipssim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mipssim' instead.")
	}
}
