package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/bindparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed observer families for kvo",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of observed attributes to generate up to",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for kvo observers started")
	defer func() {
		log.Printf("Codegen for kvo observers finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	contents := templates.ObserversGen(int(count))
	return os.WriteFile("kvo/observers.go", []byte(contents), 0644)
}
