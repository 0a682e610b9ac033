package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/bindparty/kvo"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting fan-out benchmark, please wait...")
	defer log.Print("Finished fan-out benchmark")

	cfgs := []fanoutTestConfig{
		{
			name:       "narrow shallow",
			width:      10,
			depth:      1,
			iterations: 600_000,
		},
		{
			name:       "narrow deep",
			width:      5,
			depth:      200,
			iterations: 5_000,
		},
		{
			name:       "wide shallow",
			width:      1_000,
			depth:      1,
			iterations: 5_000,
		},
		{
			name:       "wide deep",
			width:      100,
			depth:      50,
			iterations: 1_000,
		},
	}

	type results struct {
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "members",
		"nTimes", "test", "time",
		"notifyRate",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		counter := new(int64)
		root := makeFanoutGraph(cfg, counter)
		members := int64(len(root.GroupMembers("v")))

		runOnce := func() {
			for i := 0; i < cfg.iterations; i++ {
				if err := root.Set("v", i+1, false); err != nil {
					log.Fatal(err)
				}
			}
		}
		// run once to warm up
		runOnce()

		bestResult := &results{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			*counter = 0
			start := time.Now()
			runOnce()
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.count = *counter
			}
		}

		expected := int64(cfg.iterations) * int64(cfg.width*cfg.depth)
		if bestResult.count != expected {
			log.Fatalf("'%s': expected %d notifications, got %d", cfg.name, expected, bestResult.count)
		}

		notifyRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))
		table.Append([]string{
			"bindparty", // framework
			fmt.Sprintf("%dx%d", cfg.width, cfg.depth), // size
			humanize.Comma(members),                    // members
			humanize.Comma(int64(cfg.iterations)),      // nTimes
			cfg.name,                                   // test
			fmt.Sprint(bestResult.duration),            // time
			humanize.Comma(int64(notifyRate)),          // notifyRate
		})
	}
	table.Render() // Send output
}

type fanoutTestConfig struct {
	name         string // friendly name for the test, should be unique
	width, depth int    // chains hanging off the root and their length
	iterations   int    // number of writes per run
}

// makeFanoutGraph builds one group: width chains of depth objects all
// bound transitively to a single root attribute, every chained member
// counting its notifications.
func makeFanoutGraph(cfg fanoutTestConfig, counter *int64) *kvo.Object {
	sys := kvo.NewSystem(func(obj *kvo.Object, key string, err error) {
		log.Panic(err)
	})
	root := sys.NewObject()
	if err := root.Define("v", 0); err != nil {
		log.Fatal(err)
	}

	count := func(v any) error {
		*counter++
		return nil
	}

	for i := 0; i < cfg.width; i++ {
		objs := make([]*kvo.Object, cfg.depth)
		for j := range objs {
			objs[j] = sys.NewObject()
			if err := objs[j].Define("v", 0); err != nil {
				log.Fatal(err)
			}
			objs[j].OnChanged("v", count)
		}
		// deepest link first: only a group root may source a bind
		for j := 0; j+1 < cfg.depth; j++ {
			if err := objs[j].BindTo("v", objs[j+1], "", false); err != nil {
				log.Fatal(err)
			}
		}
		if err := objs[cfg.depth-1].BindTo("v", root, "", false); err != nil {
			log.Fatal(err)
		}
	}
	return root
}
