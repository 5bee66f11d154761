package main

import "flag"

type cliArgs struct {
	maxLevel  int
	seed      uint64
	slots     int
	levelTest int
	printEach bool
	filter    float64
	verbose   bool
}

func parseCliArgs() cliArgs {
	args := cliArgs{}

	flag.IntVar(&args.maxLevel, "max-level", 10, "maximum number of levels in the list")
	flag.Uint64Var(&args.seed, "seed", 0, "seed of the level generator, random if zero")

	flag.IntVar(&args.slots, "slots", 1000, "number of handle slots available to commands")
	flag.IntVar(&args.levelTest, "level-test", 1000, "number of keys used by the level probability test, zero to skip")
	flag.BoolVar(&args.printEach, "print", true, "print the list after every command")
	flag.Float64Var(&args.filter, "filter", 0, "false positive probability of the key filter, zero to disable")

	flag.BoolVar(&args.verbose, "verbose", false, "verbose mode")

	flag.Parse()

	return args
}
