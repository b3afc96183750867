package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/gamemap"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newLogger(c *cli.Context) (*log.Logger, io.Closer) {
	var w io.Writer = ioutil.Discard
	if c.Bool("verbose") {
		w = os.Stderr
	}

	if file := c.String("log-file"); file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			LocalTime:  true,
		}
		if w == ioutil.Discard {
			return log.New(lj, "", log.LstdFlags), lj
		}
		return log.New(io.MultiWriter(w, lj), "", log.LstdFlags), lj
	}

	return log.New(w, "", 0), nopCloser{}
}

func usage(c *cli.Context) error {
	return cli.NewExitError(fmt.Sprintf("usage: %s imagefilename", c.App.Name), 1)
}

func classify(c *cli.Context) error {
	if c.NArg() != 1 {
		return usage(c)
	}

	logger, closer := newLogger(c)
	defer closer.Close()

	var db *gamemap.MapDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = gamemap.NewMapDB(file); err != nil {
			return cli.NewExitError(err, 1)
		}
		defer db.Close()
	}

	r := gamemap.New(gamemap.DefaultRegistry(), db, logger)
	r.Workers = c.Int("workers")
	r.Preview = c.String("preview")
	r.PreviewWidth = c.Uint("preview-width")

	if _, err := r.Read(c.Args().First(), c.String("output-dir")); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func colors(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger, closer := newLogger(c)
	defer closer.Close()

	r := gamemap.New(gamemap.DefaultRegistry(), nil, logger)

	counts, err := r.DominantColors(c.Args().First(), c.Int("count"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, cc := range counts {
		if cc.Nearest != nil {
			fmt.Fprintf(c.App.Writer, "%-16s %10d  %s %s\n", cc.Color, cc.Count, cc.Nearest.Label, cc.Nearest.Color)
		} else {
			fmt.Fprintf(c.App.Writer, "%-16s %10d\n", cc.Color, cc.Count)
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "gamemap"
	app.Usage = "Board game map terrain reader"
	app.Version = "1.0.0"
	app.ArgsUsage = "IMAGE"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "directory to write the CSV table to",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GAMEMAP_DB"},
			Usage:   "path to database to also store the squares in",
		},
		&cli.StringFlag{
			Name:  "preview",
			Usage: "path to write a PNG preview of the inspected squares to",
		},
		&cli.UintFlag{
			Name:  "preview-width",
			Usage: "scale the preview to this width",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 1,
			Usage: "number of rows to classify concurrently",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "path to a rotated log file",
		},
	}

	app.Action = classify

	app.Commands = []*cli.Command{
		{
			Name:        "colors",
			Usage:       "List the dominant colors of an image",
			Description: "Useful for finding reference colors when calibrating a new map",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "count",
					Value: 16,
					Usage: "number of colors",
				},
			},
			Action: colors,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
