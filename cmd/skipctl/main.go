package main

import (
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/dupskip/skiplist"
)

func main() {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	args := parseCliArgs()

	if !args.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	conf := skiplist.DefaultConfig()
	conf.Logger = logger
	conf.MaxLevel = args.maxLevel
	conf.Seed = args.seed

	if conf.MaxLevel < 1 {
		level.Error(logger).Log("msg", "invalid max level", "max_level", conf.MaxLevel)
		os.Exit(1)
	}

	if args.filter < 0 || args.filter >= 1 {
		level.Error(logger).Log("msg", "invalid filter probability", "filter", args.filter)
		os.Exit(1)
	}

	if args.slots < 1 {
		level.Error(logger).Log("msg", "invalid number of slots", "slots", args.slots)
		os.Exit(1)
	}

	var opts []skiplist.Option[int]

	if args.filter > 0 {
		conf.FilterProbability = args.filter
		opts = append(opts, skiplist.WithKeyFilter(skiplist.IntKeyEncoder))
	}

	list := skiplist.New[int, int](skiplist.IntComparator, conf, opts...)
	sh := newShell(list, args.slots, os.Stdout, logger)
	sh.printEach = args.printEach

	if args.levelTest > 0 {
		if err := sh.levelTest(args.levelTest); err != nil {
			level.Error(logger).Log("msg", "probability test failed", "err", err)
			os.Exit(1)
		}
	}

	sh.help()

	if err := sh.run(os.Stdin); err != nil {
		level.Error(logger).Log("msg", "failed to read commands", "err", err)
		os.Exit(1)
	}
}
