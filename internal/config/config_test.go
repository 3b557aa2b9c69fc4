package config_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/okian/pistachio/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should carry the game's extract names", func() {
			convey.So(cfg.ConfigDir, convey.ShouldEqual, "config")
			convey.So(cfg.ReportDir, convey.ShouldEqual, "reports")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.PlayersFile, convey.ShouldEqual, "players.csv")
			convey.So(cfg.ScoutedFile, convey.ShouldEqual, "players_scouted_ratings.csv")
			convey.So(cfg.CareerBattingFile, convey.ShouldEqual, "players_career_batting_stats.csv")
			convey.So(cfg.CareerPitchingFile, convey.ShouldEqual, "players_career_pitching_stats.csv")
			convey.So(cfg.ClubLookupFile, convey.ShouldEqual, "club_lookup.csv")
			convey.So(cfg.FlaggedFile, convey.ShouldEqual, "flagged.txt")
		})

		convey.Convey("Then the required bundle has no defaults", func() {
			convey.So(cfg.CSVPath, convey.ShouldBeEmpty)
			convey.So(cfg.ScoutID, convey.ShouldEqual, 0)
			convey.So(cfg.TeamID, convey.ShouldBeEmpty)
			convey.So(cfg.GBWeight, convey.ShouldEqual, 0)
		})
	})
}

func TestConfig_Paths(t *testing.T) {
	convey.Convey("Given a config with directories", t, func() {
		cfg := config.New(context.Background())
		cfg.CSVPath = filepath.Join("data", "import_export")
		cfg.ConfigDir = "cfg"
		cfg.ReportDir = "out"

		convey.Convey("Then paths are joined onto the right directory", func() {
			convey.So(cfg.ExtractPath(cfg.PlayersFile), convey.ShouldEqual, filepath.Join("data", "import_export", "players.csv"))
			convey.So(cfg.LookupPath(cfg.FlaggedFile), convey.ShouldEqual, filepath.Join("cfg", "flagged.txt"))
			convey.So(cfg.ReportPath("batter_sWAR.csv"), convey.ShouldEqual, filepath.Join("out", "batter_sWAR.csv"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a loaded config", t, func() {
		cfg := config.New(context.Background())
		cfg.CSVPath = "data"

		convey.Convey("When every field is sane", func() {
			convey.Convey("Then validation passes", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the log format is unknown", func() {
			cfg.LogFormat = "xml"

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When csv_path is blank", func() {
			cfg.CSVPath = "  "

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
