// Command vecdemo runs scenario checks against the vector's public
// surface and reports one line per scenario.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wilhasse/simple-vector-go/vec"
)

type check struct {
	name string
	run  func() error
}

var checks = []check{
	{"construct", checkConstruct},
	{"access", checkAccess},
	{"clear", checkClear},
	{"resize", checkResize},
	{"iterate", checkIterate},
	{"reserve", checkReserve},
	{"move", checkMove},
	{"insert-erase", checkInsertErase},
	{"compare", checkCompare},
}

func main() {
	checksFlag := flag.String("checks", "", "Comma-separated checks to run (default all)")
	flag.Parse()

	selected := map[string]bool{}
	for _, name := range strings.Split(*checksFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected[name] = true
		}
	}

	failed := 0
	for _, c := range checks {
		if len(selected) > 0 && !selected[c.name] {
			continue
		}
		if err := c.run(); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.name, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", c.name)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func checkConstruct() error {
	d := vec.New[int]()
	if d.Len() != 0 || d.Cap() != 0 || !d.IsEmpty() {
		return fmt.Errorf("default: len=%d cap=%d", d.Len(), d.Cap())
	}
	s, err := vec.NewSized[int](5)
	if err != nil {
		return err
	}
	if s.Len() != 5 || s.Cap() != 5 {
		return fmt.Errorf("sized: len=%d cap=%d", s.Len(), s.Cap())
	}
	for i, item := range s.Items() {
		if item != 0 {
			return fmt.Errorf("sized: item %d = %d", i, item)
		}
	}
	f, err := vec.NewFilled(3, 42)
	if err != nil {
		return err
	}
	for i, item := range f.Items() {
		if item != 42 {
			return fmt.Errorf("filled: item %d = %d", i, item)
		}
	}
	l, err := vec.NewOf(1, 2, 3)
	if err != nil {
		return err
	}
	if l.Len() != 3 || *l.Ref(2) != 3 {
		return fmt.Errorf("literal: %v", l.Items())
	}
	return nil
}

func checkAccess() error {
	v, err := vec.NewSized[int](3)
	if err != nil {
		return err
	}
	p, err := v.At(2)
	if err != nil {
		return err
	}
	if p != v.Ref(2) {
		return errors.New("checked and unchecked access disagree")
	}
	if _, err := v.At(3); !errors.Is(err, vec.ErrOutOfRange) {
		return fmt.Errorf("At(3) err=%v", err)
	}
	return nil
}

func checkClear() error {
	v, err := vec.NewSized[int](10)
	if err != nil {
		return err
	}
	oldCap := v.Cap()
	v.Clear()
	if v.Len() != 0 || v.Cap() != oldCap {
		return fmt.Errorf("len=%d cap=%d", v.Len(), v.Cap())
	}
	return nil
}

func checkResize() error {
	v, err := vec.NewSized[int](3)
	if err != nil {
		return err
	}
	*v.Ref(2) = 17
	if err := v.Resize(7); err != nil {
		return err
	}
	if v.Len() != 7 || v.Cap() < 7 || *v.Ref(2) != 17 || *v.Ref(3) != 0 {
		return fmt.Errorf("grow: %v", v.Items())
	}
	if err := v.Resize(3); err != nil {
		return err
	}
	if err := v.Resize(5); err != nil {
		return err
	}
	if *v.Ref(3) != 0 {
		return fmt.Errorf("stale value survived: %d", *v.Ref(3))
	}
	return nil
}

func checkIterate() error {
	e := vec.New[int]()
	if len(e.Items()) != 0 {
		return errors.New("empty window not empty")
	}
	v, err := vec.NewFilled(10, 42)
	if err != nil {
		return err
	}
	items := v.Items()
	if len(items) != v.Len() || items[0] != 42 {
		return fmt.Errorf("window=%v", items)
	}
	return nil
}

func checkReserve() error {
	r, err := vec.NewWithCapacity[int](5)
	if err != nil {
		return err
	}
	if r.Cap() != 5 || !r.IsEmpty() {
		return fmt.Errorf("reserved: len=%d cap=%d", r.Len(), r.Cap())
	}
	v := vec.New[int]()
	if err := v.Reserve(5); err != nil {
		return err
	}
	if err := v.Reserve(1); err != nil {
		return err
	}
	if v.Cap() != 5 {
		return fmt.Errorf("cap shrank to %d", v.Cap())
	}
	for i := 0; i < 10; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}
	if err := v.Reserve(100); err != nil {
		return err
	}
	if v.Len() != 10 || v.Cap() != 100 {
		return fmt.Errorf("len=%d cap=%d", v.Len(), v.Cap())
	}
	for i, item := range v.Items() {
		if item != i {
			return fmt.Errorf("item %d = %d", i, item)
		}
	}
	return nil
}

func checkMove() error {
	src := vec.New[int]()
	for i := 1; i <= 1000; i++ {
		if err := src.PushBack(i); err != nil {
			return err
		}
	}
	dst := vec.New[int]()
	dst.MoveFrom(src)
	if dst.Len() != 1000 || src.Len() != 0 || src.Cap() != 0 {
		return fmt.Errorf("dst=%d src=%d/%d", dst.Len(), src.Len(), src.Cap())
	}
	if *dst.Ref(999) != 1000 {
		return fmt.Errorf("last item = %d", *dst.Ref(999))
	}
	return nil
}

func checkInsertErase() error {
	v, err := vec.NewOf(0, 1, 2, 3, 4)
	if err != nil {
		return err
	}
	if _, err := v.Insert(0, 6); err != nil {
		return err
	}
	if *v.Ref(0) != 6 {
		return fmt.Errorf("insert at begin: %v", v.Items())
	}
	if _, err := v.Insert(v.Len(), 7); err != nil {
		return err
	}
	if *v.Ref(v.Len()-1) != 7 {
		return fmt.Errorf("insert at end: %v", v.Items())
	}
	if _, err := v.Insert(3, 8); err != nil {
		return err
	}
	if *v.Ref(3) != 8 {
		return fmt.Errorf("insert interior: %v", v.Items())
	}
	i := v.Erase(0)
	if *v.Ref(i) != 0 {
		return fmt.Errorf("erase successor = %d", *v.Ref(i))
	}
	return nil
}

func checkCompare() error {
	a, err := vec.NewOf(1, 2, 3)
	if err != nil {
		return err
	}
	b, err := a.Clone()
	if err != nil {
		return err
	}
	if !vec.Equal(a, b) {
		return errors.New("clone not equal")
	}
	if err := b.PushBack(4); err != nil {
		return err
	}
	if !vec.Less(a, b) || vec.GreaterOrEqual(a, b) {
		return errors.New("prefix ordering broken")
	}
	return nil
}
