package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "dfa-ra-dfa":
		err = dfaRaDfa(args)
	case "dfa-replace-with-ra":
		err = dfaReplaceWithRA(args)
	case "dfa-single-discriminator":
		err = dfaSingleDiscriminator(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ra-gen - Register Automaton benchmark corpus generator

Usage:
  ra-gen <command> [options]

Commands:
  dfa-ra-dfa                 Generate DFA-gadgets-DFA structures (concat composition)
  dfa-replace-with-ra        Generate DFA with a share of transitions replaced by gadgets
  dfa-single-discriminator   Generate DFA with one location split by a discriminator
  help                       Show this help message

Run "ra-gen <command> -h" for the flags a specific subcommand accepts.`)
}
