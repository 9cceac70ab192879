package statscmd

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/lyricstats/internal/genre"
)

func executeClassify(ctx context.Context, e *env, strategyName string, dryRun bool) error {
	strategy, err := genre.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	db, err := e.store()
	if err != nil {
		return err
	}
	raw, err := db.RawGenres(ctx)
	if err != nil {
		return err
	}

	updated, removed := 0, 0
	for _, r := range raw {
		if err := ctx.Err(); err != nil {
			return err
		}

		resolved := genre.Resolve(r.Genres, strategy)
		if dryRun {
			fmt.Printf("%s - %s: %q -> %q\n", r.Song, r.Artist, r.Genres, resolved)
			continue
		}

		if resolved == "" {
			e.logger.Debug("No matching genre, removing song", "song", r.Song, "artist", r.Artist, "genres", r.Genres)
			if err := db.DeleteRow(ctx, r.Song, r.Artist); err != nil {
				return err
			}
			removed++
			continue
		}

		e.logger.Debug("Updating genre", "song", r.Song, "artist", r.Artist, "genre", resolved)
		if err := db.UpdateGenre(ctx, r.Song, r.Artist, resolved); err != nil {
			return err
		}
		updated++
	}

	e.logger.Info("Classification complete", "strategy", string(strategy), "updated", updated, "removed", removed, "dry_run", dryRun)
	return nil
}
