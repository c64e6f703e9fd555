package particles_test

import (
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/particles"
)

const tick = time.Second / 60

type countingRenderer struct {
	textures []dynamo.TextureID
	sources  []*dynamo.Rect
}

func (r *countingRenderer) DrawTexture(tex dynamo.TextureID, src *dynamo.Rect, dst dynamo.Rect, angle float64, pivot dynamo.Vec2) {
	r.textures = append(r.textures, tex)
	r.sources = append(r.sources, src)
}

func (r *countingRenderer) DrawLine(a, b dynamo.Vec2) {}

var _ = Describe("Pool", func() {
	var (
		clock *stepClock
		pool  *particles.Pool
	)

	BeforeEach(func() {
		clock = &stepClock{}
		pool = particles.New(3, particles.DefaultOptions(), rand.New(rand.NewSource(42)), clock)
	})

	Describe("Spawn", func() {
		It("appends count particles at the origin", func() {
			pool.Spawn(10, dynamo.Vec2{X: 100, Y: 100}, 0)

			Expect(pool.Len()).To(Equal(10))
			for _, b := range pool.Snapshot() {
				Expect(b.Rect).To(Equal(dynamo.Rect{X: 100, Y: 100, W: 16, H: 16}))
				Expect(b.SpawnedAt).To(Equal(time.Duration(0)))
			}
		})

		It("draws speeds and lifetimes from the configured ranges", func() {
			pool.Spawn(10, dynamo.Vec2{X: 100, Y: 100}, 0)

			for _, b := range pool.Snapshot() {
				Expect(b.Velocity.Len()).To(BeNumerically(">=", 2-1e-9))
				Expect(b.Velocity.Len()).To(BeNumerically("<=", 11+1e-9))
				Expect(b.Lifetime).To(BeNumerically(">=", 250*time.Millisecond))
				Expect(b.Lifetime).To(BeNumerically("<=", 1249*time.Millisecond))
				Expect(b.Lifetime % time.Millisecond).To(BeZero())
			}
		})

		It("sprays opposite to the body's heading", func() {
			// facing up (0 degrees) the exhaust leaves downward
			pool.Spawn(20, dynamo.Vec2{}, 0)
			for _, b := range pool.Snapshot() {
				Expect(b.Velocity.Y).To(BeNumerically(">", 0))
				Expect(math.Abs(b.Velocity.X)).To(BeNumerically("<", 1e-9))
			}

			pool.Reset()

			// facing right (90 degrees) the exhaust leaves to the left
			pool.Spawn(20, dynamo.Vec2{}, 90)
			for _, b := range pool.Snapshot() {
				Expect(b.Velocity.X).To(BeNumerically("<", 0))
				Expect(math.Abs(b.Velocity.Y)).To(BeNumerically("<", 1e-9))
			}
		})

		It("uses integer speeds per axis", func() {
			pool.Spawn(50, dynamo.Vec2{}, 45)
			for _, b := range pool.Snapshot() {
				sx := b.Velocity.X / math.Cos(dynamo.Radians(135))
				sy := b.Velocity.Y / math.Sin(dynamo.Radians(135))
				for _, s := range []float64{sx, sy} {
					Expect(s).To(BeNumerically("~", math.Round(s), 1e-9))
					Expect(s).To(BeNumerically(">=", 2-1e-9))
					Expect(s).To(BeNumerically("<=", 11+1e-9))
				}
			}
		})

		It("shares the pool texture and source rectangle", func() {
			pool.Spawn(5, dynamo.Vec2{}, 0)
			r := &countingRenderer{}
			pool.Render(r)

			Expect(r.textures).To(HaveLen(5))
			for i := range r.textures {
				Expect(r.textures[i]).To(Equal(dynamo.TextureID(3)))
				Expect(*r.sources[i]).To(Equal(particles.DefaultSource))
			}
		})

		It("preserves insertion order across batches", func() {
			pool.Spawn(2, dynamo.Vec2{X: 1}, 0)
			clock.Advance(tick)
			pool.Spawn(2, dynamo.Vec2{X: 2}, 0)

			snap := pool.Snapshot()
			Expect(snap[0].Rect.X).To(Equal(1.0))
			Expect(snap[1].Rect.X).To(Equal(1.0))
			Expect(snap[2].Rect.X).To(Equal(2.0))
			Expect(snap[3].SpawnedAt).To(Equal(tick))
		})
	})

	Describe("Update", func() {
		It("moves every particle by its velocity", func() {
			pool.Spawn(4, dynamo.Vec2{X: 10, Y: 10}, 0)
			before := pool.Snapshot()

			pool.Update()

			after := pool.Snapshot()
			Expect(after).To(HaveLen(4))
			for i := range after {
				Expect(after[i].Rect.X).To(Equal(before[i].Rect.X + before[i].Velocity.X))
				Expect(after[i].Rect.Y).To(Equal(before[i].Rect.Y + before[i].Velocity.Y))
			}
		})

		It("culls every expired particle in a single pass", func() {
			pool.Spawn(200, dynamo.Vec2{}, 0)
			clock.Advance(700 * time.Millisecond)

			var want []time.Duration
			for _, b := range pool.Snapshot() {
				if b.Lifetime >= 700*time.Millisecond {
					want = append(want, b.Lifetime)
				}
			}

			pool.Update()

			var got []time.Duration
			for _, b := range pool.Snapshot() {
				Expect(b.Expired(clock.Now())).To(BeFalse())
				got = append(got, b.Lifetime)
			}
			Expect(got).To(Equal(want))
		})

		It("matches a reverse-iteration cull", func() {
			pool.Spawn(150, dynamo.Vec2{}, 30)
			clock.Advance(800 * time.Millisecond)

			reference := pool.Snapshot()
			for i := range reference {
				reference[i].Update()
			}
			for i := len(reference) - 1; i >= 0; i-- {
				if reference[i].Expired(clock.Now()) {
					reference = append(reference[:i], reference[i+1:]...)
				}
			}

			pool.Update()

			Expect(pool.Snapshot()).To(Equal(reference))
		})

		It("removes adjacent expired particles", func() {
			pool.Spawn(3, dynamo.Vec2{}, 0)
			clock.Advance(2 * time.Second)
			pool.Spawn(1, dynamo.Vec2{X: 5}, 0)

			pool.Update()

			Expect(pool.Len()).To(Equal(1))
			Expect(pool.Snapshot()[0].SpawnedAt).To(Equal(2 * time.Second))
		})
	})

	Context("ten particles over 1300ms of ticks", func() {
		It("leaves none of them alive", func() {
			pool.Spawn(10, dynamo.Vec2{X: 100, Y: 100}, 0)

			for _, b := range pool.Snapshot() {
				Expect(b.Velocity.Len()).To(BeNumerically("~", 6.5, 4.5+1e-9))
				Expect(b.Lifetime).To(BeNumerically(">=", 250*time.Millisecond))
				Expect(b.Lifetime).To(BeNumerically("<", 1250*time.Millisecond))
			}

			for clock.Now() < 1300*time.Millisecond {
				clock.Advance(tick)
				pool.Update()
				for _, b := range pool.Snapshot() {
					Expect(b.Age(clock.Now())).To(BeNumerically("<=", b.Lifetime))
				}
			}

			Expect(pool.Len()).To(BeZero())
		})
	})

	It("renders without mutating", func() {
		pool.Spawn(3, dynamo.Vec2{X: 4, Y: 4}, 0)
		before := pool.Snapshot()

		pool.Render(&countingRenderer{})

		Expect(pool.Snapshot()).To(Equal(before))
	})

	It("grows without a cap", func() {
		for i := 0; i < 50; i++ {
			pool.Spawn(10, dynamo.Vec2{}, 0)
		}
		Expect(pool.Len()).To(Equal(500))
	})
})
