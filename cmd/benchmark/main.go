package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/bindparty/kvo"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkMerge(true)
}

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	kk    = []int{1, 10, 100, 1_000}
	iters = 100
)

func ignore(v any) error {
	return nil
}

// hang a chain of depth h off root: chains are built root-of-subgroup
// first, since only a group root may source a further bind
func buildChain(sys *kvo.System, root *kvo.Object, h int) {
	objs := make([]*kvo.Object, h)
	for j := range objs {
		objs[j] = sys.NewObject()
		if err := objs[j].Define("v", 0); err != nil {
			log.Fatal(err)
		}
		objs[j].OnChanged("v", ignore)
	}
	for j := 0; j+1 < h; j++ {
		if err := objs[j].BindTo("v", objs[j+1], "", false); err != nil {
			log.Fatal(err)
		}
	}
	if err := objs[h-1].BindTo("v", root, "", false); err != nil {
		log.Fatal(err)
	}
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("KVO Bindings")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sys := kvo.NewSystem(func(obj *kvo.Object, key string, err error) {
				log.Panic(err)
			})
			root := sys.NewObject()
			if err := root.Define("v", 0); err != nil {
				log.Fatal(err)
			}
			for i := 0; i < w; i++ {
				buildChain(sys, root, h)
			}

			if got := len(root.GroupMembers("v")); got != w*h+1 {
				log.Fatalf("expected %d members, got %d", w*h+1, got)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := root.Set("v", i+1, false); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// build a flat group of k members around a fresh root
func buildGroup(sys *kvo.System, k int) *kvo.Object {
	root := sys.NewObject()
	if err := root.Define("v", 0); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < k; i++ {
		m := sys.NewObject()
		if err := m.BindTo("v", root, "", false); err != nil {
			log.Fatal(err)
		}
	}
	return root
}

func benchmarkMerge(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("KVO Group Merges")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, k := range kk {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sys := kvo.NewSystem(func(obj *kvo.Object, key string, err error) {
			log.Panic(err)
		})
		for i := 0; i < iters; i++ {
			target := buildGroup(sys, k)
			src := buildGroup(sys, k)

			start := time.Now()
			if err := src.BindTo("v", target, "", false); err != nil {
				log.Fatal(err)
			}
			tach.AddTime(time.Since(start))

			if target.TableChecksum("v") != src.TableChecksum("v") {
				log.Fatal("merged groups disagree on table shape")
			}
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("merge: %d + %d members", k+1, k+1),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
