package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/blox3d/luxtrace/cmd"
)

var version = "dev"

func main() {
	app := cli.NewApp()
	app.Name = "luxtrace"
	app.Usage = "recursive ray tracer for voxel block scenes"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
	}
	app.Commands = []cli.Command{
		cmd.RenderCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
