package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type globalCmd struct {
	ProjectID string `name:"project" help:"GCP project ID." env:"GCP_PROJECT"`
	APIURL    string `name:"api-url" help:"Base URL of the stats API." env:"NFL_API_URL"`
	APIKey    string `name:"api-key" help:"Bearer key for the stats API." env:"NFL_API_KEY"`
	RedisURL  string `name:"redis-url" help:"Redis URL used to cache stats API responses." env:"REDIS_URL"`
	LogLevel  string `help:"Log level." enum:"trace,debug,info,warn,error" default:"info"`
}

var CLI struct {
	globalCmd

	Season struct {
		Sync   syncSeasonCmd  `cmd:"" help:"Fetch a season from the stats API and store it in Firestore."`
		Import importSheetCmd `cmd:"" help:"Import one collection of a season from a spreadsheet into Firestore."`
	} `cmd:""`

	Teams struct {
		Board   teamBoardCmd    `cmd:"" help:"Rank every team by percentile and grade."`
		Compare compareTeamsCmd `cmd:"" help:"Compare teams on a radar, quadrants, and head-to-head."`
	} `cmd:""`

	Players struct {
		Board   playerBoardCmd    `cmd:"" help:"Rank players against their position group."`
		Compare comparePlayersCmd `cmd:"" help:"Compare players on a radar, quadrants, and head-to-head."`
		Group   groupCmd          `cmd:"" help:"Resolve a position code to its group."`
	} `cmd:""`

	Export exportCmd `cmd:"" help:"Export team and player boards to an Excel workbook."`

	Serve serveCmd `cmd:"" help:"Serve the JSON API."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nfltool"),
		kong.Description("A command-line tool for ranking and comparing NFL team and player stats."),
		kong.Configuration(kong.JSON, "~/.config/nfltool.json", ".nfltool.json"),
		kong.UsageOnError(),
	)
	lvl, err := logrus.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	err = ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
