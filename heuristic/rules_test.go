package heuristic_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/heuristic"
)

var errCollaborator = errors.New("collaborator failed")

func TestMinDistance(t *testing.T) {
	h := heuristic.NewMinDistance(3, true)
	assert.Equal(t, heuristic.NameMinDistance, h.Name())

	assert.Equal(t, heuristic.Accept, h.Evaluate(code.FromBlock(&fakeBlock{minDist: 3})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{minDist: 2})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{minDist: 4, minErr: errCollaborator})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{minDist: 4, spanErr: errCollaborator})))
	assert.Equal(t, heuristic.NotApplicable, h.Evaluate(code.FromConv(conv75(t))))
	assert.False(t, heuristic.Check(h, code.FromConv(conv75(t))))

	lenient := heuristic.NewMinDistance(3, false)
	assert.Equal(t, heuristic.Accept, lenient.Evaluate(code.FromBlock(&fakeBlock{minDist: 4, spanErr: errCollaborator})))
}

func TestStateComplexity(t *testing.T) {
	h := heuristic.NewStateComplexity(2, true)

	assert.Equal(t, heuristic.Accept, h.Evaluate(code.FromBlock(&fakeBlock{trellis: levels{1, 2, 4, 2, 1}})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{trellis: levels{1, 2, 8, 2, 1}})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{trellisErr: errCollaborator})))
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromBlock(&fakeBlock{trellis: levels{1}, spanErr: errCollaborator})))
	assert.Equal(t, heuristic.NotApplicable, h.Evaluate(code.FromConv(conv75(t))))
}

func TestNonDegenerateBlocks(t *testing.T) {
	h := heuristic.NewNonDegenerateBlocks()

	assert.Equal(t, heuristic.Accept, h.Evaluate(code.FromConv(conv75(t))))

	// G = [D, D]: G₀ is zero
	delayed := &fakeConv{delay: 1, gen: polyMatrix(t, []string{"01", "01"})}
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(delayed)))

	// declared delay 3 but degree 2: G₃ is zero
	over := conv75(t)
	over.delay = 3
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(over)))

	// negative delay cannot produce blocks
	broken := conv75(t)
	broken.delay = -1
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(broken)))

	assert.Equal(t, heuristic.NotApplicable, h.Evaluate(code.FromBlock(&fakeBlock{})))
}

func TestRowWeight(t *testing.T) {
	// rows of [G₀ G₁ G₂] for (7,5): one row of weight 5
	assert.Equal(t, heuristic.Accept, heuristic.NewRowWeight(5).Evaluate(code.FromConv(conv75(t))))
	assert.Equal(t, heuristic.Reject, heuristic.NewRowWeight(6).Evaluate(code.FromConv(conv75(t))))

	// rate 2/3: second row [1, 0, D] has weight 2
	two := &fakeConv{delay: 1, gen: polyMatrix(t, []string{"11", "1", "1"}, []string{"1", "", "01"})}
	assert.Equal(t, heuristic.Accept, heuristic.NewRowWeight(2).Evaluate(code.FromConv(two)))
	assert.Equal(t, heuristic.Reject, heuristic.NewRowWeight(3).Evaluate(code.FromConv(two)))
}

func TestZeroTailDistance(t *testing.T) {
	cv := conv75(t)
	cv.ztDist = 5

	h := heuristic.NewZeroTailDistance(5, 5)
	assert.Equal(t, heuristic.Accept, h.Evaluate(code.FromConv(cv)))
	assert.Equal(t, 5, cv.ztCycles, "k=1 needs one cycle per information bit")

	assert.Equal(t, heuristic.Reject, heuristic.NewZeroTailDistance(6, 5).Evaluate(code.FromConv(cv)))

	two := &fakeConv{delay: 1, gen: polyMatrix(t, []string{"11", "1", "1"}, []string{"1", "", "01"}), ztDist: 3}
	assert.Equal(t, heuristic.Accept, heuristic.NewZeroTailDistance(3, 5).Evaluate(code.FromConv(two)))
	assert.Equal(t, 3, two.ztCycles, "⌈5/2⌉ cycles")

	cv.ztErr = errCollaborator
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(cv)))
}

func TestFreeDistance(t *testing.T) {
	h := heuristic.NewFreeDistance(5)
	assert.Equal(t, heuristic.Accept, h.Evaluate(code.FromConv(conv75(t))))

	weak := conv75(t)
	weak.freeDist = 4
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(weak)))

	failing := conv75(t)
	failing.freeErr = errCollaborator
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(failing)))
}

func TestGriesmer(t *testing.T) {
	// d=6, n=2, delay 2: window j=2 needs 6+3 = 9 > (2+2)·2 = 8
	assert.Equal(t, heuristic.Reject, heuristic.NewGriesmer(6).Evaluate(code.FromConv(conv75(t))))
	// d=5 fits: 5 ≤ 6, 5+3 ≤ 8
	assert.Equal(t, heuristic.Accept, heuristic.NewGriesmer(5).Evaluate(code.FromConv(conv75(t))))
	// d=6 with delay 3: 6 ≤ 8, 9 ≤ 10
	assert.Equal(t, heuristic.Accept, heuristic.NewGriesmer(6).Evaluate(code.FromConv(conv1517(t))))
	// trivial targets have no window to check
	assert.Equal(t, heuristic.Accept, heuristic.NewGriesmer(1).Evaluate(code.FromConv(conv75(t))))

	// zero columns in G₀ and G_delay shrink the budget: G = [1+D², D]
	sparse := &fakeConv{delay: 2, gen: polyMatrix(t, []string{"101", "01"})}
	// d=4: j=1: 4 ≤ 3·2−1−1 = 4 accepted
	assert.Equal(t, heuristic.Accept, heuristic.NewGriesmer(4).Evaluate(code.FromConv(sparse)))
	// d=5: j=1: 5 > 4
	assert.Equal(t, heuristic.Reject, heuristic.NewGriesmer(5).Evaluate(code.FromConv(sparse)))
}

func TestTailBitingWeight(t *testing.T) {
	// S = G₀+G₁+G₂ = [1 1]+[1 0]+[1 1] = [1 0]: weight 1 per cycle
	tb := code.FromTailBiting(fakeTB{parent: conv75(t), cycles: 5})
	assert.Equal(t, heuristic.Accept, heuristic.NewTailBitingWeight(5).Evaluate(tb))
	assert.Equal(t, heuristic.Reject, heuristic.NewTailBitingWeight(6).Evaluate(tb))

	assert.Equal(t, heuristic.NotApplicable, heuristic.NewTailBitingWeight(1).Evaluate(code.FromConv(conv75(t))))
	assert.Equal(t, heuristic.Reject, heuristic.NewTailBitingWeight(1).Evaluate(code.FromTailBiting(fakeTB{cycles: 2})))
}

func TestCollaboratorFailureIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := heuristic.NewFreeDistance(5, heuristic.WithLogger(logger))
	failing := conv75(t)
	failing.freeErr = errCollaborator

	assert.False(t, heuristic.Check(h, code.FromConv(failing)))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "heuristic_collaborator_failed", entry.Data["action"])
		assert.Equal(t, heuristic.NameFreeDistance, entry.Data["heuristic"])
		assert.Equal(t, "free_dist", entry.Data["operation"])
		assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), errCollaborator)
	}
}
