// Command listsort inserts its arguments into a sorted list and prints them from head to tail.
//
// Usage:
//
//	listsort [-copy] [-reverse] [-index] [element ...]
//
// Without arguments, it sorts "element2", "element3" and "element1".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/motoki317/clist"
)

var (
	copyElements = flag.Bool("copy", false, "let the list store its own copies of the elements")
	reverse      = flag.Bool("reverse", false, "sort in descending order")
	withIndex    = flag.Bool("index", false, "keep an identity index")
	showStats    = flag.Bool("stats", false, "log list statistics at exit")
)

var defaultElements = []string{"element2", "element3", "element1"}

func main() {
	flag.Parse()
	defer glog.Flush()

	elements := flag.Args()
	if len(elements) == 0 {
		elements = defaultElements
	}

	if err := run(os.Stdout, elements, options()...); err != nil {
		glog.Exitf("listsort: %v", err)
	}
}

func options() []clist.ListOption[string] {
	opts := []clist.ListOption[string]{clist.WithComparator(clist.Ascending[string]())}
	if *reverse {
		opts[0] = clist.WithComparator(clist.Descending[string]())
	}
	if *copyElements {
		opts = append(opts, clist.WithCopies[string]())
	}
	if *withIndex {
		opts = append(opts, clist.WithMapIndex[string]())
	}
	return opts
}

func run(w io.Writer, elements []string, opts ...clist.ListOption[string]) error {
	l, err := clist.New[string](opts...)
	if err != nil {
		return err
	}
	defer l.Destroy()

	for i := range elements {
		if err := l.Insert(&elements[i]); err != nil {
			return err
		}
	}

	for s := l.PeekHead(); s != nil; s = l.Advance() {
		if _, err := fmt.Fprintln(w, *s); err != nil {
			return err
		}
	}

	if *showStats {
		glog.Infof("listsort: %v", l.Stats())
	}
	return nil
}
