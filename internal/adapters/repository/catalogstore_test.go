package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/okian/rotoblogs/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func writeTempBlogs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogs.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp blogs file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given an object document with a blogs array", t, func() {
		path := writeTempBlogs(t, `{
			"blogs": [
				{"player_name": "Ja'Marr Chase", "position": "WR", "word_count": 700},
				{"player_name": "Bijan Robinson", "position": "RB", "word_count": 550}
			],
			"count": 2
		}`)

		Convey("When loaded", func() {
			store, err := repository.Load(ctx, path)

			Convey("Then the catalog holds both records in file order", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 2)
				all := store.All(ctx)
				So(all[0].PlayerName, ShouldEqual, "Ja'Marr Chase")
				So(all[1].PlayerName, ShouldEqual, "Bijan Robinson")
			})

			Convey("And names resolve case-insensitively", func() {
				r, lerr := store.ByName(ctx, "ja'marr chase")
				So(lerr, ShouldBeNil)
				So(r.Position, ShouldEqual, "WR")
			})

			Convey("And unknown names return ErrNotFound", func() {
				_, lerr := store.ByName(ctx, "nobody")
				So(errors.Is(lerr, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a bare array document", t, func() {
		path := writeTempBlogs(t, `[{"player_name": "CeeDee Lamb"}]`)

		Convey("When loaded", func() {
			store, err := repository.Load(ctx, path)

			Convey("Then the records load the same way", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := repository.Load(ctx, filepath.Join(t.TempDir(), "nope.json"))

		Convey("Then loading fails", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given malformed JSON", t, func() {
		path := writeTempBlogs(t, `{"blogs": [`)
		_, err := repository.Load(ctx, path)
		So(err, ShouldNotBeNil)
	})

	Convey("Given an object without a blogs array", t, func() {
		path := writeTempBlogs(t, `{"count": 35}`)
		_, err := repository.Load(ctx, path)

		Convey("Then the shape is rejected", func() {
			So(errors.Is(err, repository.ErrBadShape), ShouldBeTrue)
		})
	})

	Convey("Given a scalar document", t, func() {
		path := writeTempBlogs(t, `"not blogs"`)
		_, err := repository.Load(ctx, path)
		So(errors.Is(err, repository.ErrBadShape), ShouldBeTrue)
	})

	Convey("Given an empty file", t, func() {
		path := writeTempBlogs(t, "")
		_, err := repository.Load(ctx, path)
		So(errors.Is(err, repository.ErrEmptyFile), ShouldBeTrue)
	})
}

func TestCatalogStoreReads(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loaded store", t, func() {
		path := writeTempBlogs(t, `{"blogs": [
			{"player_name": "P1"}, {"player_name": "P2"}, {"player_name": "P3"},
			{"player_name": "P4"}, {"player_name": "P5"}, {"player_name": "P6"}
		]}`)
		store, err := repository.Load(ctx, path)
		So(err, ShouldBeNil)

		Convey("When slicing a window", func() {
			window := store.Slice(ctx, 2, 5)

			Convey("Then the contiguous sub-sequence comes back", func() {
				So(len(window), ShouldEqual, 3)
				So(window[0].PlayerName, ShouldEqual, "P3")
				So(window[2].PlayerName, ShouldEqual, "P5")
			})
		})

		Convey("When slicing past the end", func() {
			So(len(store.Slice(ctx, 10, 15)), ShouldEqual, 0)
		})
	})

	Convey("Given the empty store", t, func() {
		store := repository.Empty()

		Convey("Then every read reports no data", func() {
			So(store.Count(ctx), ShouldEqual, 0)
			So(len(store.All(ctx)), ShouldEqual, 0)
			So(len(store.Slice(ctx, 0, 5)), ShouldEqual, 0)
			_, err := store.ByName(ctx, "anyone")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}
