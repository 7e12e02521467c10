package main

import "github.com/urfave/cli/v3"

func getCommands(version string) []*cli.Command {
	var all []*cli.Command
	for _, group := range [][]*cli.Command{
		getSystemCommands(version),
		getKeyCommands(),
		getAuthCommands(),
		getRecordCommands(),
		getDeliveryCommands(version),
	} {
		all = append(all, group...)
	}
	return all
}
