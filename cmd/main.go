package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	err := newApp(info).Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}

func newApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "calc"
	app.Usage = "evaluate integer arithmetic"
	app.Version = info.Version
	app.Metadata = map[string]interface{}{
		"commit": info.GitCommit,
		"built":  info.BuildDate + " " + info.BuildOS,
	}

	app.Commands = []cli.Command{evalCommand, treeCommand}
	return app
}
