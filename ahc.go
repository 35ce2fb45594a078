package ahc

import "fmt"

type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateDone
)

// Merge records one step of the merge history.
type Merge struct {
	// ID is the id of the node created by the merge (n..2n-2).
	ID int
	// Left and Right are the ids of the merged nodes as first built.
	Left, Right int
	// Distance is the linkage distance at which they merged.
	Distance float64
	// Size is the leaf count of the merged cluster.
	Size int
}

// Engine runs agglomerative hierarchical clustering over a Matrix.
//
// Typical use is New, SetData, Run, then Tree and Permutation, optionally
// after SortLeaves. An Engine is not safe for concurrent use; a run owns
// all of its state until it returns.
type Engine struct {
	cfg   Config
	trace tracer

	data  *Matrix
	state runState

	dist   *Matrix
	root   *Node
	merges []Merge
	perm   []int
}

// New returns an engine for cfg. Zero-valued fields take their defaults;
// the configuration is validated by Run.
func New(cfg Config) *Engine {
	applyDefaults(&cfg)
	return &Engine{
		cfg:   cfg,
		trace: tracer{logger: cfg.Logger, verbosity: cfg.Verbosity},
	}
}

// SetData supplies the input matrix (one column per element) and discards
// any previous result.
func (e *Engine) SetData(m *Matrix) {
	e.data = m
	e.reset()
}

func (e *Engine) reset() {
	e.state = stateIdle
	e.dist = nil
	e.root = nil
	e.merges = nil
	e.perm = nil
}

// Run clusters the input. It fails with ErrNotReady without data, with
// ErrConfiguration for an invalid metric/linkage setup, and with
// ErrIncomplete if the merge loop runs out of comparable pairs (every
// remaining distance is NaN) before a single cluster is left.
func (e *Engine) Run() error {
	e.reset()
	if e.data == nil {
		return fmt.Errorf("ahc: run: no input matrix set: %w", ErrNotReady)
	}
	if e.data.ElementCount() == 0 {
		return fmt.Errorf("ahc: run: input matrix has no elements: %w", ErrInvalidShape)
	}
	if err := validateConfig(&e.cfg); err != nil {
		return err
	}
	if err := validateFeatures(&e.cfg, e.data.FeatureCount()); err != nil {
		return err
	}
	e.state = stateRunning

	n := e.data.ElementCount()
	live, full := e.pairwiseDistances()
	e.dist = full

	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = newLeaf(i, e.data.ElementName(i))
	}
	e.merges = make([]Merge, 0, n-1)

	nextID := n
	for len(nodes) > 1 {
		step := len(e.merges)
		e.trace.distances(step, live, nodes)

		c1, c2, d, ok := live.Nearest()
		if !ok {
			e.trace.warn("no comparable cluster pair left", "clusters", len(nodes))
			return fmt.Errorf("ahc: run stopped with %d clusters after %d merges: %w",
				len(nodes), step, ErrIncomplete)
		}

		merged := newInternal(nextID, nodes[c1], nodes[c2], d)
		nextID++
		e.merges = append(e.merges, Merge{
			ID:       merged.ID(),
			Left:     nodes[c1].ID(),
			Right:    nodes[c2].ID(),
			Distance: d,
			Size:     merged.LeafCount(),
		})
		e.trace.merge(step, merged)

		live, nodes = e.collapse(live, nodes, c1, c2, merged)
	}

	e.root = nodes[0]
	e.perm = permutation(e.root)
	e.state = stateDone
	return nil
}

// pairwiseDistances evaluates the metric once per unordered element pair
// and returns both the live triangle and a full symmetric copy.
func (e *Engine) pairwiseDistances() (*TriangularMatrix, *Matrix) {
	n := e.data.ElementCount()
	vectors := make([][]float64, n)
	for i := range vectors {
		vectors[i] = e.data.Vector(i)
	}

	live := NewTriangularMatrix(n)
	full := newSquareMatrix(e.data.ElementNames())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := e.cfg.Metric.Distance(vectors[i], vectors[j])
			live.Set(i, j, d)
			full.Set(i, j, d)
			full.Set(j, i, d)
		}
	}
	return live, full
}

// collapse builds the next live state after merging clusters c1 and c2:
// merged takes slot 0, the survivors keep their relative order in slots
// 1..m-2, distances to merged come from the linkage and all others are
// copied.
func (e *Engine) collapse(live *TriangularMatrix, nodes []*Node, c1, c2 int, merged *Node) (*TriangularMatrix, []*Node) {
	survivors := make([]int, 0, len(nodes)-2)
	for k := range nodes {
		if k != c1 && k != c2 {
			survivors = append(survivors, k)
		}
	}

	next := NewTriangularMatrix(len(nodes) - 1)
	nextNodes := make([]*Node, 1, len(nodes)-1)
	nextNodes[0] = merged
	for a, r := range survivors {
		nextNodes = append(nextNodes, nodes[r])
		next.Set(a+1, 0, e.cfg.Linkage.Distance(c1, c2, r, live, nodes))
		for b := 0; b < a; b++ {
			next.Set(a+1, b+1, live.At(r, survivors[b]))
		}
	}
	return next, nextNodes
}

// ready reports whether a completed run is available.
func (e *Engine) ready() error {
	switch e.state {
	case stateDone:
		return nil
	case stateRunning:
		return fmt.Errorf("ahc: last run left more than one cluster: %w", ErrIncomplete)
	default:
		return fmt.Errorf("ahc: no successful run: %w", ErrNotReady)
	}
}

// Tree returns the root of the merge tree.
func (e *Engine) Tree() (*Node, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.root, nil
}

// Permutation returns, for each input element, its position in the
// left-to-right leaf order of the tree.
func (e *Engine) Permutation() ([]int, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return append([]int(nil), e.perm...), nil
}

// Merges returns the merge history in creation order.
func (e *Engine) Merges() ([]Merge, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return append([]Merge(nil), e.merges...), nil
}

// Distances returns the full symmetric element distance matrix of the last
// run, labeled by element on both axes.
func (e *Engine) Distances() (*Matrix, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.dist.Permute(identity(e.dist.ElementCount()))
}

// Ordered returns the input matrix with its elements in leaf order.
func (e *Engine) Ordered() (*Matrix, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.data.PermuteElements(e.perm)
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
