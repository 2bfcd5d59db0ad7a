package wavelet

import (
	"math/rand"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildStreamingMatchesBuild(t *testing.T) {
	Convey("Given the same sequence built both in memory and via a streaming builder", t, func() {
		const n = 200
		const dim = uint64(23)
		vals := make([]uint64, n)
		memBuilder := NewBuilder()
		streamBuilder := NewBuilder()
		for i := range vals {
			vals[i] = uint64(rand.Int63n(int64(dim)))
			memBuilder.PushBack(vals[i])
			streamBuilder.PushBack(vals[i])
		}

		memWm, err := memBuilder.Build()
		So(err, ShouldBeNil)

		dir, err := os.MkdirTemp("", "wavelet-streaming-test-*")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		streamWm, err := streamBuilder.BuildStreaming(dir)
		So(err, ShouldBeNil)

		Convey("both matrices answer queries identically", func() {
			So(streamWm.Size(), ShouldEqual, memWm.Size())
			So(streamWm.Levels(), ShouldEqual, memWm.Levels())
			So(streamWm.Sigma(), ShouldEqual, memWm.Sigma())
			for i := 0; i < n; i += 7 {
				So(streamWm.Access(uint64(i)), ShouldEqual, memWm.Access(uint64(i)))
			}
			for c := uint64(0); c < dim; c += 3 {
				So(streamWm.Rank(uint64(n), c), ShouldEqual, memWm.Rank(uint64(n), c))
			}
		})
	})
}
