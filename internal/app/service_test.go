package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	repository "github.com/okian/rotoblogs/internal/adapters/repository"
	app "github.com/okian/rotoblogs/internal/app"
	"github.com/okian/rotoblogs/internal/domain/blog"
	"github.com/okian/rotoblogs/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fixedClock pins rotation math to 2025-01-11, ten days past the epoch, so
// the cycle position is 3 and the window covers catalog indices [15,20).
func fixedClock() time.Time {
	return time.Date(2025, time.January, 11, 12, 0, 0, 0, time.UTC)
}

func catalogOf(n int) []blog.Record {
	records := make([]blog.Record, 0, n)
	for i := 1; i <= n; i++ {
		pos := "WR"
		if i%2 == 0 {
			pos = "RB"
		}
		records = append(records, blog.New(fmt.Sprintf("P%d", i), pos, i*10))
	}
	return records
}

func startService(t *testing.T, records []blog.Record) *app.Service {
	t.Helper()
	svc := app.New(
		app.WithStore(repository.NewCatalogStore(records)),
		app.WithClock(fixedClock),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceToday(t *testing.T) {
	ctx := context.Background()

	Convey("Given a 35-record catalog ten days past the epoch", t, func() {
		svc := startService(t, catalogOf(35))

		Convey("When asking for today's window", func() {
			day, todays := svc.Today(ctx)

			Convey("Then the window is P16 through P20", func() {
				So(day.DayInCycle(), ShouldEqual, 4)
				So(len(todays), ShouldEqual, 5)
				So(todays[0].PlayerName, ShouldEqual, "P16")
				So(todays[4].PlayerName, ShouldEqual, "P20")
			})

			Convey("And repeated calls agree", func() {
				_, again := svc.Today(ctx)
				So(again, ShouldResemble, todays)
			})
		})

		Convey("When asking for the full catalog", func() {
			So(len(svc.All(ctx)), ShouldEqual, 35)
			So(svc.Count(ctx), ShouldEqual, 35)
		})
	})

	Convey("Given a catalog too small for today's position", t, func() {
		svc := startService(t, catalogOf(12))

		Convey("Then the window is empty", func() {
			_, todays := svc.Today(ctx)
			So(len(todays), ShouldEqual, 0)
		})
	})
}

func TestServiceLookup(t *testing.T) {
	ctx := context.Background()

	Convey("Given a 35-record catalog ten days past the epoch", t, func() {
		svc := startService(t, catalogOf(35))

		Convey("When looking up a player in today's window", func() {
			r, err := svc.Lookup(ctx, "p16")

			Convey("Then the record comes back case-insensitively", func() {
				So(err, ShouldBeNil)
				So(r.PlayerName, ShouldEqual, "P16")
			})
		})

		Convey("When looking up a player outside the window", func() {
			_, err := svc.Lookup(ctx, "P1")

			Convey("Then the outcome is not-showing-today", func() {
				So(errors.Is(err, app.ErrNotShowingToday), ShouldBeTrue)
			})
		})

		Convey("When looking up an unknown player", func() {
			_, err := svc.Lookup(ctx, "Unknown Player")

			Convey("Then the outcome is not-found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()

	Convey("Given a 35-record catalog ten days past the epoch", t, func() {
		svc := startService(t, catalogOf(35))

		Convey("When summarizing", func() {
			all, today := svc.Stats(ctx)

			Convey("Then the system-wide stats cover the catalog", func() {
				So(all.Count, ShouldEqual, 35)
				// arithmetic series 10+20+...+350
				So(all.Words, ShouldEqual, 6300)
				So(all.Positions["WR"], ShouldEqual, 18)
				So(all.Positions["RB"], ShouldEqual, 17)
			})

			Convey("And today's stats cover P16..P20 only", func() {
				So(today.Count, ShouldEqual, 5)
				So(today.Words, ShouldEqual, (16+17+18+19+20)*10)
			})
		})
	})

	Convey("Given an empty catalog", t, func() {
		svc := startService(t, nil)

		Convey("Then all stats are zero without error", func() {
			all, today := svc.Stats(ctx)
			So(all.Count, ShouldEqual, 0)
			So(all.Words, ShouldEqual, 0)
			So(today.Count, ShouldEqual, 0)
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service pointed at a missing blogs file", t, func() {
		svc := app.New(
			app.WithBlogsPath("does-not-exist.json"),
			app.WithClock(fixedClock),
		)

		Convey("When started", func() {
			err := svc.Start(context.Background())
			defer svc.Stop()

			Convey("Then startup succeeds with an empty catalog", func() {
				So(err, ShouldBeNil)
				So(svc.Count(context.Background()), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a started service", t, func() {
		svc := startService(t, catalogOf(5))

		Convey("When started again", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
		})

		Convey("When asked for monitoring stats", func() {
			stats := svc.GetStats()

			Convey("Then the snapshot reflects the catalog", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["totalBlogs"], ShouldEqual, 5)
			})
		})
	})
}
