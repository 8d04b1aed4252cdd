//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ltm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ltm-tools/AssignTopics/internal/str"
)

//
// INFERENCE: two-pass sum-product over the tree
//

// Posterior - per-document result: one 2-state distribution for each requested
// variable, in request order, plus the document's weight
type Posterior struct {
	Probs  []*mat.VecDense
	Weight float64
}

// ComputeProbabilities - for every instance of a (binarized, synchronized)
// dataset, the posterior distribution of every requested latent variable given
// the instance's observed values; unmapped or missing leaves contribute no
// evidence
func ComputeProbabilities(m *Model, ds *str.Dataset, internals []str.Variable) ([]Posterior, error) {
	const (
		NOTLATENT = "'%s' is not a latent variable of model '%s'"
		ZEROPROB  = "document %d: evidence has probability 0 under model '%s'"
	)

	wanted := make([]*node, len(internals))
	for i, v := range internals {
		n, ok := m.byname[v.Name]
		if !ok || len(n.children) == 0 {
			return nil, fmt.Errorf(NOTLATENT, v.Name, m.Name)
		}
		wanted[i] = n
	}

	out := make([]Posterior, len(ds.Instances))

	for d := range ds.Instances {
		lambda, upmsg := upwardpass(m, &ds.Instances[d])
		pi := downwardpass(m, lambda, upmsg)

		pp := make([]*mat.VecDense, len(wanted))
		for i, n := range wanted {
			post := mat.NewVecDense(2, nil)
			post.MulElemVec(lambda[n], pi[n])
			s := mat.Sum(post)
			if s == 0 || math.IsNaN(s) {
				return nil, fmt.Errorf(ZEROPROB, d, m.Name)
			}
			post.ScaleVec(1/s, post)
			pp[i] = post
		}
		out[d] = Posterior{Probs: pp, Weight: ds.Instances[d].Weight}
	}

	return out, nil
}

// upwardpass - leaf-to-root λ messages; children are always visited first
// because m.postorder is fixed at load time
func upwardpass(m *Model, inst *str.Instance) (map[*node]*mat.VecDense, map[*node]*mat.VecDense) {
	lambda := make(map[*node]*mat.VecDense, len(m.nodes))
	upmsg := make(map[*node]*mat.VecDense, len(m.nodes))

	for _, n := range m.postorder {
		lam := evidencevec(n, inst)
		for _, c := range n.children {
			lam.MulElemVec(lam, upmsg[c])
		}
		lambda[n] = lam

		if n.parent != nil {
			// message to the parent: m_c(xp) = Σ_xc p(xc|xp) λ_c(xc)
			msg := mat.NewVecDense(2, nil)
			msg.MulVec(n.cond, lam)
			upmsg[n] = msg
		}
	}
	return lambda, upmsg
}

// downwardpass - root-to-leaf π messages; a child's π excludes its own upward
// contribution, which is recomputed as a product over its siblings rather than
// divided out (messages can be 0)
func downwardpass(m *Model, lambda map[*node]*mat.VecDense, upmsg map[*node]*mat.VecDense) map[*node]*mat.VecDense {
	pi := make(map[*node]*mat.VecDense, len(m.nodes))
	pi[m.root] = mat.VecDenseCopyOf(m.root.prior)

	// preorder = reversed postorder
	for i := len(m.postorder) - 1; i >= 0; i-- {
		n := m.postorder[i]
		for _, c := range n.children {
			excl := mat.VecDenseCopyOf(pi[n])
			for _, sib := range n.children {
				if sib != c {
					excl.MulElemVec(excl, upmsg[sib])
				}
			}
			msg := mat.NewVecDense(2, nil)
			msg.MulVec(c.cond.T(), excl)
			pi[c] = msg
		}
	}
	return pi
}

// evidencevec - a leaf observed in state s contributes an indicator on s; NaN
// values and unmapped leaves are uninformative; any nonzero value counts as
// the active state
func evidencevec(n *node, inst *str.Instance) *mat.VecDense {
	ones := mat.NewVecDense(2, []float64{1, 1})
	if len(n.children) > 0 || n.col < 0 {
		return ones
	}
	v := inst.Records[n.col].Val
	if math.IsNaN(v) {
		return ones
	}
	if v != 0 {
		return mat.NewVecDense(2, []float64{0, 1})
	}
	return mat.NewVecDense(2, []float64{1, 0})
}
