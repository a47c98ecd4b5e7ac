package hmm

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/akualab/hmmlab"
	"github.com/akualab/hmmlab/floatx"
	"github.com/akualab/hmmlab/model"
)

const tol = 1e-9

// Two state model with symbols 'a' and 'b'.
func MakeHMM(t *testing.T) *Model[rune] {
	m, err := NewModel(
		[]float64{0.6, 0.4},
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		map[rune][]float64{
			'a': {0.5, 0.1},
			'b': {0.4, 0.6},
		},
		[]rune{'a', 'b'})
	hmmlab.CheckError(t, err)
	return m
}

// Three states, six symbols. Symbol 5 can only be emitted by state 2.
func MakeHMM3(t *testing.T) *Model[int] {
	m, err := NewModel(
		[]float64{0.5, 0.3, 0.2},
		[][]float64{
			{0.7, 0.2, 0.1},
			{0.2, 0.6, 0.2},
			{0.1, 0.4, 0.5},
		},
		map[int][]float64{
			0: {0.6, 0.05, 0.0},
			1: {0.2, 0.1, 0.0},
			2: {0.1, 0.2, 0.1},
			3: {0.05, 0.6, 0.1},
			4: {0.05, 0.05, 0.2},
			5: {0.0, 0.0, 0.6},
		},
		[]int{0, 1, 2, 3, 4, 5})
	hmmlab.CheckError(t, err)
	return m
}

func TestForward(t *testing.T) {

	m := MakeHMM(t)
	res, err := Forward(m, []rune("ab"))
	hmmlab.CheckError(t, err)

	hmmlab.CompareSliceFloat(t, []float64{0.30, 0.04}, res.Alpha.Row(0), "Error in alpha[0]", tol)
	hmmlab.CompareSliceFloat(t, []float64{0.0904, 0.0684}, res.Alpha.Row(1), "Error in alpha[1]", tol)
	hmmlab.CompareFloats(t, 0.1588, res.Likelihood, "Error in likelihood", tol)
	if res.Derivation != nil {
		t.Fatalf("derivation computed without WithDerivation")
	}
}

func TestViterbi(t *testing.T) {

	m := MakeHMM(t)
	res, err := Viterbi(m, []rune("ab"))
	hmmlab.CheckError(t, err)

	hmmlab.CompareSliceFloat(t, []float64{0.30, 0.04}, res.Delta.Row(0), "Error in delta[0]", tol)
	hmmlab.CompareSliceFloat(t, []float64{0.084, 0.054}, res.Delta.Row(1), "Error in delta[1]", tol)
	hmmlab.CompareSliceInt(t, []int{0, 0}, res.Backpointers[0], "Error in phi[0]")
	hmmlab.CompareSliceInt(t, []int{0, 0}, res.Backpointers[1], "Error in phi[1]")
	hmmlab.CompareSliceInt(t, []int{0, 0}, res.Path, "Error in path")
	hmmlab.CompareFloats(t, 0.084, res.Prob, "Error in path prob", tol)
}

// enumerate calls fn for every state sequence of length T over N states.
func enumerate(N, T int, fn func(path []int)) {
	path := make([]int, T)
	var rec func(t int)
	rec = func(t int) {
		if t == T {
			fn(path)
			return
		}
		for s := 0; s < N; s++ {
			path[t] = s
			rec(t + 1)
		}
	}
	rec(0)
}

// bruteForce returns the sum and max over all paths of P(path, obs).
func bruteForce[S comparable](t *testing.T, m *Model[S], obs []S) (sum, max float64, argmax []int) {
	enumerate(m.NumStates(), len(obs), func(path []int) {
		p, err := PathProb(m, obs, path)
		hmmlab.CheckError(t, err)
		sum += p
		if p > max {
			max = p
			argmax = append([]int(nil), path...)
		}
	})
	return
}

func checkAgainstBruteForce[S comparable](t *testing.T, m *Model[S], obs []S) {
	t.Helper()

	sum, max, best := bruteForce(t, m, obs)

	fwd, err := Forward(m, obs)
	hmmlab.CheckError(t, err)
	hmmlab.CompareFloats(t, sum, fwd.Likelihood, "forward likelihood vs enumeration", tol)

	vit, err := Viterbi(m, obs)
	hmmlab.CheckError(t, err)
	hmmlab.CompareFloats(t, max, vit.Prob, "viterbi prob vs enumeration", tol)

	// The decoded path must score the max. It can differ from best on ties.
	p, err := PathProb(m, obs, vit.Path)
	hmmlab.CheckError(t, err)
	hmmlab.CompareFloats(t, max, p, "score of decoded path", tol)
	if p < max-tol {
		t.Errorf("path %v scores %g, %v scores %g", vit.Path, p, best, max)
	}
}

func TestBruteForce(t *testing.T) {

	checkAgainstBruteForce(t, MakeHMM(t), []rune("aba"))
	checkAgainstBruteForce(t, MakeHMM(t), []rune("bbab"))

	m3 := MakeHMM3(t)
	r := rand.New(rand.NewSource(model.DefaultSeed))
	for i := 0; i < 20; i++ {
		obs := make([]int, 2+r.Intn(4))
		for k := range obs {
			obs[k] = r.Intn(6)
		}
		checkAgainstBruteForce(t, m3, obs)
	}
}

func TestBruteForceRandomModels(t *testing.T) {

	r := rand.New(rand.NewSource(model.DefaultSeed))
	alphabet := []string{"x", "y", "z"}
	for n := 1; n <= 4; n++ {
		m, err := RandomStart(n, alphabet, r)
		hmmlab.CheckError(t, err)
		_, obs, err := Sample(m, 4, r)
		hmmlab.CheckError(t, err)
		checkAgainstBruteForce(t, m, obs)
	}
}

func TestViterbiTieBreak(t *testing.T) {

	m, err := FlatStart(2, []string{"a"})
	hmmlab.CheckError(t, err)
	res, err := Viterbi(m, []string{"a", "a", "a"})
	hmmlab.CheckError(t, err)

	// All paths are equally likely: lowest index wins everywhere.
	hmmlab.CompareSliceInt(t, []int{0, 0, 0}, res.Path, "tie break path")
	for tt := 1; tt < 3; tt++ {
		hmmlab.CompareSliceInt(t, []int{0, 0}, res.Backpointers[tt], "tie break phi")
	}
	hmmlab.CompareFloats(t, 0.125*0.125, res.Prob, "tie break prob", tol)
}

func TestViterbiUnexplainable(t *testing.T) {

	// Symbol 'c' cannot be emitted by any state.
	m, err := NewModel(
		[]float64{0.5, 0.5},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
		map[rune][]float64{'a': {1, 1}, 'c': {0, 0}},
		[]rune{'a', 'c'})
	hmmlab.CheckError(t, err)

	res, err := Viterbi(m, []rune("aca"))
	hmmlab.CheckError(t, err)

	hmmlab.CompareSliceInt(t, []int{-1, -1, -1}, res.Path, "unexplainable path")
	if res.Prob != 0 {
		t.Fatalf("expected zero prob, got %g", res.Prob)
	}
	// Row 2 follows an all-zero row: every candidate product is zero.
	hmmlab.CompareSliceInt(t, []int{-1, -1}, res.Backpointers[2], "backpointers after zero row")
	hmmlab.CompareSliceFloat(t, []float64{0, 0}, res.Delta.Row(2), "delta after zero row", tol)

	fwd, err := Forward(m, []rune("aca"))
	hmmlab.CheckError(t, err)
	if fwd.Likelihood != 0 {
		t.Fatalf("expected zero likelihood, got %g", fwd.Likelihood)
	}
}

func TestEmptyObservations(t *testing.T) {

	m := MakeHMM(t)
	if _, err := Forward(m, nil); !errors.Is(err, ErrValue) {
		t.Fatalf("forward: expected ErrValue, got %v", err)
	}
	if _, err := Viterbi(m, []rune{}); !errors.Is(err, ErrValue) {
		t.Fatalf("viterbi: expected ErrValue, got %v", err)
	}
}

func TestUnknownSymbol(t *testing.T) {

	m := MakeHMM(t)
	_, err := Forward(m, []rune("abz"))
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if le.Symbol != 'z' || le.T != 2 {
		t.Fatalf("wrong lookup error: %+v", le)
	}
	if err.Error() != "hmm: unknown observation symbol [z] at t=2" {
		t.Fatalf("wrong message: %s", err)
	}
	if msg := (&LookupError{Symbol: 7, T: -1}).Error(); msg != "hmm: unknown observation symbol [7]" {
		t.Fatalf("wrong message: %s", msg)
	}

	if _, err := Viterbi(m, []rune("z")); !errors.Is(err, ErrLookup) {
		t.Fatalf("viterbi: expected ErrLookup, got %v", err)
	}
}

func TestZeroValueModel(t *testing.T) {

	var m Model[rune]
	if _, err := Forward(&m, []rune("a")); !errors.Is(err, ErrValue) {
		t.Fatalf("expected ErrValue, got %v", err)
	}
	if _, err := Viterbi[rune](nil, []rune("a")); !errors.Is(err, ErrValue) {
		t.Fatalf("expected ErrValue, got %v", err)
	}
}

func TestDerivation(t *testing.T) {

	m := MakeHMM(t)
	obs := []rune("abb")

	fwd, err := Forward(m, obs, WithDerivation())
	hmmlab.CheckError(t, err)
	vit, err := Viterbi(m, obs, WithDerivation())
	hmmlab.CheckError(t, err)

	for _, d := range []*Derivation{fwd.Derivation, vit.Derivation} {
		if d == nil {
			t.Fatal("missing derivation")
		}
		if len(d.Computations) != 3 || len(d.Arrows) != 3 {
			t.Fatalf("derivation has wrong number of rows")
		}
		for tt := 0; tt < 3; tt++ {
			if len(d.Computations[tt]) != 2 || len(d.Arrows[tt]) != 2 {
				t.Fatalf("derivation row %d has wrong number of columns", tt)
			}
			for j := 0; j < 2; j++ {
				if d.Computations[tt][j] == "" {
					t.Errorf("empty computation at [%d,%d]", tt, j)
				}
			}
		}
	}

	expected := "initial probability for state 0 * observation probability for 'a' at state 0\n0.6 * 0.5"
	if s := fwd.Derivation.Computations[0][0]; s != expected {
		t.Errorf("Expected: [%s], Got: [%s]", expected, s)
	}
	if s := fwd.Derivation.Arrows[0][1]; s != "" {
		t.Errorf("expected no arrows at t=0, got [%s]", s)
	}
	if s := vit.Derivation.Arrows[1][0]; s != "0.3 * 0.7, 0.04000000000000001 * 0.4" && s != "0.3 * 0.7, 0.04 * 0.4" {
		t.Errorf("unexpected arrows: [%s]", s)
	}
}

func TestTracer(t *testing.T) {

	m := MakeHMM(t)
	obs := []rune("abab")
	var steps []Step
	tr := TracerFunc(func(s *Step) { steps = append(steps, *s) })

	res, err := Viterbi(m, obs, WithTracer(tr), WithTracer(LogTracer{Level: 4}))
	hmmlab.CheckError(t, err)

	if len(steps) != len(obs)*m.NumStates() {
		t.Fatalf("expected %d steps, got %d", len(obs)*m.NumStates(), len(steps))
	}
	for _, s := range steps {
		if s.Algorithm != AlgoViterbi {
			t.Fatalf("wrong algorithm %s", s.Algorithm)
		}
		if s.Value != res.Delta.At(s.T, s.State) {
			t.Errorf("step value %g does not match delta[%d][%d] = %g", s.Value, s.T, s.State, res.Delta.At(s.T, s.State))
		}
		if s.T > 0 && s.Argmax != res.Backpointers[s.T][s.State] {
			t.Errorf("step argmax does not match phi at [%d,%d]", s.T, s.State)
		}
		if s.Symbol != string(obs[s.T]) {
			t.Errorf("step symbol [%s] at t=%d, expected [%c]", s.Symbol, s.T, obs[s.T])
		}
	}
}

func TestConcurrentRuns(t *testing.T) {

	m := MakeHMM3(t)
	obs := []int{0, 3, 3, 5, 2, 1}
	ref, err := Forward(m, obs)
	hmmlab.CheckError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Forward(m, obs)
			if err != nil {
				errs <- err
				return
			}
			if res.Likelihood != ref.Likelihood {
				errs <- errors.New("likelihood differs between concurrent runs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestLatticeShape(t *testing.T) {

	m := MakeHMM3(t)
	obs := []int{1, 2, 3, 4}
	fwd, err := Forward(m, obs)
	hmmlab.CheckError(t, err)
	vit, err := Viterbi(m, obs)
	hmmlab.CheckError(t, err)

	for _, lat := range []*floatx.Matrix{fwd.Alpha, vit.Delta} {
		if r, c := lat.Dims(); r != 4 || c != 3 {
			t.Fatalf("lattice is [%dx%d], expected [4x3]", r, c)
		}
	}
	if len(vit.Backpointers) != 4 || len(vit.Path) != 4 {
		t.Fatalf("wrong backpointer/path length")
	}
	if math.IsNaN(fwd.Likelihood) {
		t.Fatalf("NaN likelihood")
	}
}
