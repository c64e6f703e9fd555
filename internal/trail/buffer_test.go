package trail_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/trail"
)

type segment struct{ a, b dynamo.Vec2 }

type lineRecorder struct {
	segments []segment
}

func (r *lineRecorder) DrawTexture(dynamo.TextureID, *dynamo.Rect, dynamo.Rect, float64, dynamo.Vec2) {
}

func (r *lineRecorder) DrawLine(a, b dynamo.Vec2) {
	r.segments = append(r.segments, segment{a, b})
}

func point(i int) dynamo.Vec2 {
	return dynamo.Vec2{X: float64(i), Y: float64(-i)}
}

var _ = Describe("Buffer", func() {
	var buf *trail.Buffer

	BeforeEach(func() {
		buf = trail.New(trail.DefaultCapacity)
	})

	It("keeps every point below capacity", func() {
		for i := 1; i <= 40; i++ {
			buf.Append(point(i))
		}
		Expect(buf.Len()).To(Equal(40))
		Expect(buf.Points()[0]).To(Equal(point(1)))
		Expect(buf.Points()[39]).To(Equal(point(40)))
	})

	DescribeTable("caps the history at 100 points",
		func(n int) {
			for i := 1; i <= n; i++ {
				buf.Append(point(i))
			}

			pts := buf.Points()
			Expect(pts).To(HaveLen(100))
			Expect(pts[0]).To(Equal(point(n - 100 + 1)))
			Expect(pts[99]).To(Equal(point(n)))
		},
		Entry("one over", 101),
		Entry("double", 200),
		Entry("many", 1234),
	)

	It("drops exactly one point per append once full", func() {
		for i := 1; i <= 100; i++ {
			buf.Append(point(i))
		}
		buf.Append(point(101))
		Expect(buf.Len()).To(Equal(100))
		Expect(buf.Points()[0]).To(Equal(point(2)))
	})

	It("returns a copy of its points", func() {
		buf.Append(point(1))
		pts := buf.Points()
		pts[0] = point(99)
		Expect(buf.Points()[0]).To(Equal(point(1)))
	})

	It("renders a path from oldest to newest", func() {
		for i := 1; i <= 4; i++ {
			buf.Append(point(i))
		}
		r := &lineRecorder{}
		buf.Render(r)

		Expect(r.segments).To(Equal([]segment{
			{point(1), point(2)},
			{point(2), point(3)},
			{point(3), point(4)},
		}))
	})

	It("draws nothing for fewer than two points", func() {
		r := &lineRecorder{}
		buf.Render(r)
		buf.Append(point(1))
		buf.Render(r)
		Expect(r.segments).To(BeEmpty())
	})

	It("empties on reset", func() {
		buf.Append(point(1))
		buf.Reset()
		Expect(buf.Len()).To(BeZero())
	})
})
