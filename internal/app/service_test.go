package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/pistachio/internal/adapters/source"
	service "github.com/okian/pistachio/internal/app"
	"github.com/okian/pistachio/internal/config"
	"github.com/okian/pistachio/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should be created", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithScoutID(7),
			service.WithTeam("TOR"),
			service.WithGBWeight(50),
			service.WithReportDir(t.TempDir()),
			service.WithLogger(logger.Named("test")),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given a loaded configuration", t, func() {
		cfg := config.New(context.Background())
		cfg.CSVPath = "data"
		cfg.ScoutID = 3
		cfg.TeamID = "BOS"

		Convey("Then it translates into one option per setting", func() {
			opts := service.FromConfig(cfg)
			So(opts, ShouldHaveLength, 7)
			So(service.New(opts...), ShouldNotBeNil)
		})
	})
}

func TestService_RunMissingInput(t *testing.T) {
	Convey("Given a service pointed at files that do not exist", t, func() {
		dir := t.TempDir()
		reports := filepath.Join(dir, "reports")
		svc := service.New(
			service.WithPaths(source.Paths{
				Players:        filepath.Join(dir, "players.csv"),
				Scouted:        filepath.Join(dir, "players_scouted_ratings.csv"),
				CareerBatting:  filepath.Join(dir, "players_career_batting_stats.csv"),
				CareerPitching: filepath.Join(dir, "players_career_pitching_stats.csv"),
				ClubLookup:     filepath.Join(dir, "club_lookup.csv"),
				Flagged:        filepath.Join(dir, "flagged.txt"),
			}),
			service.WithReportDir(reports),
		)

		Convey("When running", func() {
			res, err := svc.Run(context.Background())

			Convey("Then the load stage fails", func() {
				So(res, ShouldBeNil)
				So(errors.Is(err, service.ErrStage), ShouldBeTrue)
				So(errors.Is(err, source.ErrMissingInput), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, service.StageLoad)
			})

			Convey("Then no output is written", func() {
				_, statErr := os.Stat(reports)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})
	})
}

func TestService_RunCancelled(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Then a run stops before loading", func() {
			_, err := service.New().Run(ctx)
			So(errors.Is(err, service.ErrStage), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
