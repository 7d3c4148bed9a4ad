// rankcheck looks up a summoner and prints their ranked entries and
// most recent match.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"league-client/internal/constants"
	"league-client/internal/ddragon"
	fxmodules "league-client/internal/fx"
	"league-client/internal/riot"
	"league-client/internal/schema"
)

func main() {
	name := flag.String("name", "", "summoner name to look up")
	verbose := flag.Bool("v", false, "print the full decoded match record")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: rankcheck -name <summoner> [-v]")
		os.Exit(2)
	}

	app := fx.New(
		fx.StopTimeout(constants.ShutdownTimeout),
		fxmodules.Module,
		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner, client *riot.Client, catalog *ddragon.Catalog, logger zerolog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						code := run(client, catalog, logger, *name, *verbose)
						_ = shutdowner.Shutdown(fx.ExitCode(code))
					}()
					return nil
				},
			})
		}),
	)
	app.Run()
}

func run(client *riot.Client, catalog *ddragon.Catalog, logger zerolog.Logger, name string, verbose bool) int {
	ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	defer cancel()

	if err := catalog.Load(ctx); err != nil {
		logger.Error().Err(err).Msg("loading data dragon catalog")
		return 1
	}

	summoner, err := client.SummonerByName(ctx, name).Get()
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("summoner lookup failed")
		return 1
	}
	fmt.Printf("%s (level %d)\n", summoner.Name, summoner.SummonerLevel)
	fmt.Printf("profile icon: %s\n", catalog.ProfileIconURL(summoner.ProfileIconID))

	leagues := client.LeagueEntries(ctx, summoner.ID)
	if !leagues.Ok() {
		logger.Error().Err(leagues.Err()).Msg("league lookup failed")
		return 1
	}
	for _, entry := range leagues.Value() {
		fmt.Printf("%-25s %-4s %3d LP  %dW/%dL\n",
			entry.QueueType, entry.Short, entry.LeaguePoints, entry.Wins, entry.Losses)
	}

	match := client.LastMatch(ctx, summoner.PUUID)
	if !match.Ok() {
		logger.Warn().Err(match.Err()).Msg("no recent match")
		return 0
	}
	info := match.Value().Info
	fmt.Printf("last match: %s, %s, %ds\n",
		match.Value().Metadata.MatchID,
		catalog.QueueDescription(info.QueueID),
		info.GameDurationSeconds)
	if verbose {
		fmt.Println(schema.Sprint(match.Value()))
	}
	return 0
}
