package main

import (
	"context"
	"flag"
	"os"

	"github.com/akels/taskdeck/internal/buildinfo"
	"github.com/akels/taskdeck/internal/client/cli"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	serverAddr := flag.String("s", "http://localhost:8080", "server address")
	flag.Parse()

	ctx := context.Background()
	app := cli.NewApp(*serverAddr)

	app.Run(ctx)

}
