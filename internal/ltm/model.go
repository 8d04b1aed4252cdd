//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ltm

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ltm-tools/AssignTopics/internal/gen"
	"github.com/ltm-tools/AssignTopics/internal/str"
)

//
// THE LATENT TREE MODEL
//

// a model file is json:
//
//	{
//	  "name": "nips-broad",
//	  "nodes": [
//	    {"name": "T1", "parent": "", "cpt": [0.45, 0.55]},
//	    {"name": "learning", "parent": "T1", "cpt": [0.9, 0.1, 0.2, 0.8]}
//	  ]
//	}
//
// every variable has exactly 2 states; the root node carries a 2-entry prior,
// every other node a row-per-parent-state 2x2 conditional table flattened
// row-major; leaves are the observed variables, non-leaves the latent topics

type nodespec struct {
	Name   string    `json:"name"`
	Parent string    `json:"parent"`
	CPT    []float64 `json:"cpt"`
}

type modelfile struct {
	Name  string     `json:"name"`
	Nodes []nodespec `json:"nodes"`
}

type node struct {
	name     string
	parent   *node
	children []*node
	prior    *mat.VecDense // root only
	cond     *mat.Dense    // non-root: rows = parent state, cols = own state
	col      int           // evidence column in the synchronized dataset; -1 = unmapped
}

// Model - a latent tree over 2-state variables; read-only after loading except
// for Synchronize, which remaps leaves onto a dataset's columns
type Model struct {
	Name      string
	nodes     []*node // file order
	root      *node
	byname    map[string]*node
	postorder []*node // children before parents; fixed at load time
}

// ReadModel - parse and validate a model file
func ReadModel(path string) (*Model, error) {
	const (
		BADJSON   = "%s: %v"
		BADCPT    = "%s: node '%s': cpt needs %d entries, has %d"
		BADPROB   = "%s: node '%s': cpt row does not sum to 1"
		BADPARENT = "%s: unknown parent(s): %s"
		DUPNAME   = "%s: duplicate node names"
		NONODES   = "%s: model has no nodes"
		NOROOT    = "%s: model needs exactly 1 root, has %d"
		UNREACHED = "%s: %d node(s) unreachable from the root '%s'"
	)

	blob, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}

	var mf modelfile
	if e = json.Unmarshal(blob, &mf); e != nil {
		return nil, fmt.Errorf(BADJSON, path, e)
	}

	if len(mf.Nodes) == 0 {
		return nil, fmt.Errorf(NONODES, path)
	}

	m := &Model{Name: mf.Name, byname: make(map[string]*node)}

	nn := make([]string, len(mf.Nodes))
	for i, ns := range mf.Nodes {
		nn[i] = ns.Name
	}
	if gen.HasDuplicates(nn) {
		return nil, fmt.Errorf(DUPNAME, path)
	}

	roots := 0
	for _, ns := range mf.Nodes {
		n := &node{name: ns.Name, col: -1}
		if ns.Parent == "" {
			roots++
			if len(ns.CPT) != 2 {
				return nil, fmt.Errorf(BADCPT, path, ns.Name, 2, len(ns.CPT))
			}
			if !sumstoone(ns.CPT) {
				return nil, fmt.Errorf(BADPROB, path, ns.Name)
			}
			n.prior = mat.NewVecDense(2, append([]float64{}, ns.CPT...))
			m.root = n
		} else {
			if len(ns.CPT) != 4 {
				return nil, fmt.Errorf(BADCPT, path, ns.Name, 4, len(ns.CPT))
			}
			if !sumstoone(ns.CPT[0:2]) || !sumstoone(ns.CPT[2:4]) {
				return nil, fmt.Errorf(BADPROB, path, ns.Name)
			}
			n.cond = mat.NewDense(2, 2, append([]float64{}, ns.CPT...))
		}
		m.nodes = append(m.nodes, n)
		m.byname[n.name] = n
	}

	if roots != 1 {
		return nil, fmt.Errorf(NOROOT, path, roots)
	}

	missing := make(map[string]bool)
	for i, ns := range mf.Nodes {
		if ns.Parent == "" {
			continue
		}
		p, ok := m.byname[ns.Parent]
		if !ok {
			missing[ns.Parent] = true
			continue
		}
		m.nodes[i].parent = p
		p.children = append(p.children, m.nodes[i])
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(BADPARENT, path, strings.Join(gen.StringMapKeysIntoSlice(missing), ", "))
	}

	m.postorder = postorder(m.root)
	if len(m.postorder) != len(m.nodes) {
		return nil, fmt.Errorf(UNREACHED, path, len(m.nodes)-len(m.postorder), m.root.name)
	}

	return m, nil
}

// Synchronize - align the model's leaf variables with a dataset's column order;
// scoring before this has happened is undefined behavior, not a guarded error
func (m *Model) Synchronize(vars []str.Variable) {
	idx := make(map[string]int, len(vars))
	for i, v := range vars {
		idx[v.Name] = i
	}
	for _, n := range m.nodes {
		n.col = -1
		if len(n.children) == 0 {
			if i, ok := idx[n.name]; ok {
				n.col = i
			}
		}
	}
}

// InternalVariables - the latent (topic) variables in model file order
func (m *Model) InternalVariables() []str.Variable {
	var vv []str.Variable
	for _, n := range m.nodes {
		if len(n.children) > 0 {
			vv = append(vv, str.Variable{Name: n.name})
		}
	}
	return vv
}

// LeafCount - how many observed variables the model carries
func (m *Model) LeafCount() int {
	c := 0
	for _, n := range m.nodes {
		if len(n.children) == 0 {
			c++
		}
	}
	return c
}

func postorder(root *node) []*node {
	var oo []*node
	seen := make(map[*node]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, c := range n.children {
			walk(c)
		}
		oo = append(oo, n)
	}
	walk(root)
	return oo
}

func sumstoone(pp []float64) bool {
	const TOL = 1e-6
	s := 0.0
	for _, p := range pp {
		if p < 0 || p > 1 {
			return false
		}
		s += p
	}
	return math.Abs(s-1) < TOL
}
