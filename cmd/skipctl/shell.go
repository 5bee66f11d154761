package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/dupskip/skiplist"
)

var errQuit = errors.New("quit")

// shell executes list commands read line by line. Entries are addressed by
// slot numbers, each slot holding the handle of at most one entry.
type shell struct {
	list      *skiplist.Skiplist[int, int]
	slots     []skiplist.Handle
	out       io.Writer
	logger    log.Logger
	printEach bool
}

func newShell(list *skiplist.Skiplist[int, int], slots int, out io.Writer, logger log.Logger) *shell {
	return &shell{
		list:   list,
		slots:  make([]skiplist.Handle, slots),
		out:    out,
		logger: logger,
	}
}

func (s *shell) help() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  insert:       i <slot> <key> <value>")
	fmt.Fprintln(s.out, "  delete:       d <slot>")
	fmt.Fprintln(s.out, "  search:       s <key>")
	fmt.Fprintln(s.out, "  range search: r <from> <to>")
	fmt.Fprintln(s.out, "  print:        p")
	fmt.Fprintln(s.out, "  verify:       v")
	fmt.Fprintln(s.out, "  help:         h")
	fmt.Fprintln(s.out, "  quit:         q")
	fmt.Fprintln(s.out)
}

// levelTest inserts n increasing keys, prints the population of every level and
// removes the keys again.
func (s *shell) levelTest(n int) error {
	handles := make([]skiplist.Handle, n)

	for i := range handles {
		if err := s.list.Insert(&handles[i], i, i); err != nil {
			return err
		}
	}

	renderLevelCounts(s.out, s.list)

	fmt.Fprintf(s.out, "Above is the level probability test for %d nodes: each level\n", n)
	fmt.Fprintln(s.out, "should hold about a quarter of the nodes of the level below.")
	fmt.Fprintln(s.out)

	for i := range handles {
		if err := s.list.Delete(&handles[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := s.exec(strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		if s.printEach {
			renderList(s.out, s.list)
		}
	}

	return scanner.Err()
}

func (s *shell) exec(fields []string) error {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "i":
		return s.insert(args)
	case "d":
		return s.delete(args)
	case "s":
		return s.search(args)
	case "r":
		return s.searchRange(args)
	case "p":
		renderList(s.out, s.list)
		return nil
	case "v":
		return s.verify()
	case "q":
		return errQuit
	case "h", "?":
		s.help()
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseInts(args []string, n int, usage string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("usage: %s", usage)
	}

	ints := make([]int, n)

	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("usage: %s", usage)
		}

		ints[i] = v
	}

	return ints, nil
}

func (s *shell) slot(idx int) (*skiplist.Handle, error) {
	if idx < 0 || idx >= len(s.slots) {
		return nil, fmt.Errorf("slot %d is out of range [0, %d)", idx, len(s.slots))
	}

	return &s.slots[idx], nil
}

func (s *shell) insert(args []string) error {
	ints, err := parseInts(args, 3, "i <slot> <key> <value>")
	if err != nil {
		return err
	}

	h, err := s.slot(ints[0])
	if err != nil {
		return err
	}

	if err := s.list.Insert(h, ints[1], ints[2]); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}

	level.Debug(s.logger).Log("msg", "entry inserted", "slot", ints[0], "key", ints[1])

	return nil
}

func (s *shell) delete(args []string) error {
	ints, err := parseInts(args, 1, "d <slot>")
	if err != nil {
		return err
	}

	h, err := s.slot(ints[0])
	if err != nil {
		return err
	}

	if err := s.list.Delete(h); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	level.Debug(s.logger).Log("msg", "entry deleted", "slot", ints[0])

	return nil
}

func (s *shell) printRange(r skiplist.Range[int, int]) {
	for it := r.Iterator(); it.HasNext(); {
		key, value := it.Next()
		fmt.Fprintf(s.out, "key: %d, val: %d\n", key, value)
	}
}

func (s *shell) search(args []string) error {
	ints, err := parseInts(args, 1, "s <key>")
	if err != nil {
		return err
	}

	r, found := s.list.Search(ints[0])
	if !found {
		fmt.Fprintf(s.out, "no entries with key %d\n", ints[0])
		return nil
	}

	s.printRange(r)

	return nil
}

func (s *shell) searchRange(args []string) error {
	ints, err := parseInts(args, 2, "r <from> <to>")
	if err != nil {
		return err
	}

	r, found, err := s.list.SearchRange(ints[0], ints[1])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !found {
		fmt.Fprintf(s.out, "no entries within the range %d - %d\n", ints[0], ints[1])
		return nil
	}

	s.printRange(r)

	return nil
}

func (s *shell) verify() error {
	if err := s.list.Verify(); err != nil {
		level.Error(s.logger).Log("msg", "list verification failed", "err", err)
		return fmt.Errorf("verify failed: %w", err)
	}

	fmt.Fprintln(s.out, "ok")

	return nil
}
