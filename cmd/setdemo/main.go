// Command setdemo replays the int, string and point walkthroughs of ListSet and logs
// every step. Run with -level debug to also see rejected duplicates.
package main

import (
	"flag"
	"os"

	"github.com/g-m-twostay/go-sets/Sets/ListSet"
	"github.com/g-m-twostay/go-sets/Sets/Relations"
	log "github.com/sirupsen/logrus"
)

func main() {
	level := flag.String("level", "info", "log level")
	scenario := flag.String("scenario", "all", "one of all, int, string, point")
	flag.Parse()

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.WithError(err).Fatal("bad -level")
	}
	logger.SetLevel(lvl)

	scenarios := map[string]func(*log.Logger){
		"int":    ints,
		"string": strings,
		"point":  points,
	}
	switch run, ok := scenarios[*scenario]; {
	case *scenario == "all":
		for _, name := range []string{"int", "string", "point"} {
			scenarios[name](logger)
		}
	case ok:
		run(logger)
	default:
		logger.WithField("scenario", *scenario).Error("unknown scenario")
		os.Exit(2)
	}
}

func show[T any](l *log.Logger, name string, s *ListSet.ListSet[T]) {
	l.WithFields(log.Fields{"set": name, "size": s.Size()}).Info(s.String())
}

func ints(l *log.Logger) {
	opt := ListSet.WithLogger(l)
	s := ListSet.New(Relations.Same[int], opt)
	for i := 0; i < 10; i++ {
		s.Put(i)
	}
	show(l, "0..9", s)
	s.Remove(0)
	s.Remove(9)
	s.Remove(4)
	s.Put(1)
	show(l, "without 0 9 4", s)
	l.WithFields(log.Fields{"has 5": s.Has(5), "has 10": s.Has(10)}).Info("lookups")

	a := ListSet.FromSlice(Relations.Same[int], []int{1, 4, 7}, opt)
	b := ListSet.FromSlice(Relations.Same[int], []int{1, 4, 8}, opt)
	show(l, "1 4 7 + 1 4 8", ListSet.Union(a, b))
	show(l, "1 4 7 - 1 4 8", ListSet.Intersect(a, b))
	show(l, "1 4 7 \\ 1 4 8", ListSet.Difference(a, b))

	c := ListSet.FromSlice(Relations.Same[int], []int{2, 4, 9}, opt)
	show(l, "even of 2 4 9", ListSet.Filter(c, Relations.Even[int]))
	show(l, "odd of 2 4 9", ListSet.Filter(c, Relations.Odd[int]))
}

func strings(l *log.Logger) {
	opt := ListSet.WithLogger(l)
	s := ListSet.FromSlice(Relations.Same[string], []string{"pippo", "pluto", "paperino", "cip", "cip"}, opt)
	show(l, "names", s)
	s.Remove("pippo")
	s.Remove("cip")
	s.Remove("pluto")
	show(l, "what's left", s)

	w := ListSet.FromSlice(Relations.Same[string], []string{"qwer", "pippo", "pluto"}, opt)
	show(l, "even length", ListSet.Filter(w, Relations.EvenLen))
	show(l, "odd length", ListSet.Filter(w, Relations.OddLen))
}

func points(l *log.Logger) {
	s := ListSet.FromSlice(Relations.SamePoint, []Relations.Point{
		{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}, {X: 1, Y: 2},
	}, ListSet.WithLogger(l))
	show(l, "points", s)
	show(l, "both odd", ListSet.Filter(s, Relations.OddPoint))
	if _, err := s.At(s.Size()); err != nil {
		l.WithError(err).Warn("At past the end")
	}
}
