package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/pistachio/internal/adapters/report"
	"github.com/okian/pistachio/internal/adapters/snapshotdb"
	"github.com/okian/pistachio/internal/adapters/tabular"
	service "github.com/okian/pistachio/internal/app"
	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/internal/sampledata"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a generated dataset", t, func() {
		ctx := context.Background()
		root := t.TempDir()
		cfg := sampledata.DefaultConfig(root)
		cfg.Players = 120
		ds, err := sampledata.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		reports := filepath.Join(root, "out")
		db := filepath.Join(root, "snapshots.db")
		textfile := filepath.Join(root, "pistachio.prom")
		started := time.Date(2031, 10, 1, 12, 0, 0, 0, time.UTC)

		svc := service.New(
			service.WithPaths(ds.Paths),
			service.WithScoutID(ds.ScoutID),
			service.WithTeam(ds.Team),
			service.WithGBWeight(cfg.GBWeight),
			service.WithReportDir(reports),
			service.WithSnapshotDB(db),
			service.WithMetricsFile(textfile),
			service.WithClock(func() time.Time { return started }),
			service.WithRunIDs(func() string { return "run-1" }),
		)

		Convey("When running the pipeline", func() {
			res, err := svc.Run(ctx)
			So(err, ShouldBeNil)

			Convey("Then the run is stamped", func() {
				So(res.RunID, ShouldEqual, "run-1")
				So(res.Started, ShouldEqual, started)
			})

			Convey("Then retired players are gone", func() {
				So(res.Table.Len(), ShouldEqual, ds.Stats.Active)
				So(res.Merge.Retired, ShouldEqual, ds.Stats.Retired)
			})

			Convey("Then all three files are written in order", func() {
				So(res.Files, ShouldResemble, []string{
					filepath.Join(reports, report.BatterFile),
					filepath.Join(reports, report.PitcherFile),
					filepath.Join(reports, report.SnapshotFile),
				})
				f, err := tabular.ReadFile(res.Files[0])
				So(err, ShouldBeNil)
				So(f.Header, ShouldResemble, res.Batters.Header)
				So(f.Len(), ShouldEqual, res.Batters.Len())

				snap, err := tabular.ReadFile(res.Files[2])
				So(err, ShouldBeNil)
				So(snap.Len(), ShouldEqual, res.Table.Len())
			})

			Convey("Then the snapshot is stored under the run id", func() {
				store, err := snapshotdb.Open(ctx, db)
				So(err, ShouldBeNil)
				defer func() { _ = store.Close() }()
				stored, err := store.Load(ctx, "run-1")
				So(err, ShouldBeNil)
				So(stored.Header, ShouldResemble, res.Snapshot.Header)
				So(stored.Len(), ShouldEqual, res.Snapshot.Len())
			})

			Convey("Then the metrics textfile is written", func() {
				b, err := os.ReadFile(textfile)
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, "stage_duration_seconds")
			})

			Convey("Then the reports honour the inclusion rules", func() {
				n := 0
				for i := range res.Table.Players {
					if export.IncludeBatter(&res.Table.Players[i], ds.Team) {
						n++
					}
				}
				So(res.Batters.Len(), ShouldEqual, n)
			})

			Convey("Then a second run with the same id cannot store its snapshot", func() {
				_, err := svc.Run(ctx)
				So(errors.Is(err, service.ErrStage), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, service.StageStore)
			})
		})
	})
}
