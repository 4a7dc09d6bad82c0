// Command antisplit reads a WKT POLYGON or MULTIPOLYGON from a file (or
// stdin) and prints the antimeridian-split result as WKT.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	antimeridian "github.com/konturio/go-antimeridian"
	"github.com/konturio/go-antimeridian/wkt"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cmd := &cli.Command{
		Name:      "antisplit",
		Usage:     "split a WKT polygon crossing the 180th meridian into a hemisphere-bound multipolygon",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log diagnostic detail to stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(log, cmd.Args().First())
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, path string) error {
	input, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.WithField("bytes", len(input)).Debug("read input")

	mp, err := wkt.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing WKT: %w", err)
	}
	log.WithField("polygons", len(mp)).Debug("parsed geometry")

	if err := mp.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}

	if !antimeridian.IsCrossedBy180(mp) {
		log.Debug("no antimeridian crossing found, passing geometry through")
	}

	split, err := antimeridian.SplitBy180(mp)
	if err != nil {
		return fmt.Errorf("splitting geometry: %w", err)
	}
	log.WithField("polygons", len(split)).Debug("split complete")

	fmt.Println(wkt.Print(split))
	return nil
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty input")
	}
	return string(data), nil
}
