// Package community batch-clusters the entity graph into hierarchical
// communities using greedy modularity agglomeration.
//
// The graph is held as an arena of integer-indexed nodes with explicit
// edge lists; results reference nodes by index until they are written
// as a generation.
package community

import (
	"context"
	"sort"
	"time"
)

// Node is one entity in the detection snapshot.
type Node struct {
	ID   string
	Type string
	Name string
}

// WeightedEdge is an undirected edge between two nodes, weight summed
// across relationship types and directions.
type WeightedEdge struct {
	A, B   int
	Weight float64
}

// Graph is the immutable detection input.
type Graph struct {
	Nodes []Node
	Edges []WeightedEdge
}

// Cluster is one community at one level: member indices into the
// snapshot's node arena, plus the parent cluster index at the next
// level (-1 when the level is the top).
type Cluster struct {
	Members []int
	Parent  int
}

// Level is one layer of the hierarchy, level 0 being the leaves.
type Level struct {
	Clusters []Cluster
}

// Result is a complete detection outcome.
type Result struct {
	Levels         []Level
	Modularity     float64
	BudgetExceeded bool
}

// Options tunes a detection run.
type Options struct {
	// MaxLevels caps hierarchy depth.
	MaxLevels int

	// Budget bounds total run time. On exhaustion the current partition
	// is returned as a valid, coarser result.
	Budget time.Duration

	// MinSize drops leaf communities with fewer members from the
	// published generation. Zero keeps everything.
	MinSize int
}

// Detect runs hierarchical greedy modularity clustering over g.
// Determinism: merge-gain ties are broken by the lowest combined entity
// identifier, so an unchanged graph always yields the same partition.
// Cancellation via ctx behaves like budget exhaustion: the partition
// built so far is returned.
func Detect(ctx context.Context, g Graph, opts Options) Result {
	if opts.MaxLevels < 1 {
		opts.MaxLevels = 1
	}
	deadline := time.Time{}
	if opts.Budget > 0 {
		deadline = time.Now().Add(opts.Budget)
	}

	res := Result{}
	if len(g.Nodes) == 0 {
		return res
	}

	// Current coarsened view: each super-node is a set of leaf indices.
	current := make([][]int, len(g.Nodes))
	for i := range g.Nodes {
		current[i] = []int{i}
	}
	edges := g.Edges

	for level := 0; level < opts.MaxLevels; level++ {
		merged, partition, exceeded := agglomerate(ctx, g, current, edges, deadline)
		res.BudgetExceeded = res.BudgetExceeded || exceeded

		if !merged {
			break
		}

		clusters := make([]Cluster, len(partition))
		for i, members := range partition {
			leaves := flatten(current, members)
			sort.Ints(leaves)
			clusters[i] = Cluster{Members: leaves, Parent: -1}
		}
		res.Levels = append(res.Levels, Level{Clusters: clusters})

		if exceeded || len(partition) <= 1 {
			break
		}

		// Coarsen: partition clusters become the next level's nodes.
		edges = coarsen(edges, partitionIndex(partition, len(current)))
		next := make([][]int, len(partition))
		for i, members := range partition {
			next[i] = flatten(current, members)
		}
		current = next
	}

	linkParents(g, &res)
	res.Modularity = partitionModularity(g, res)
	return res
}

// agglomerate runs one CNM pass over super-nodes. Returns whether any
// merge happened, the resulting partition (as indices into nodes), and
// whether the budget was exhausted.
func agglomerate(ctx context.Context, g Graph, nodes [][]int, edges []WeightedEdge, deadline time.Time) (bool, [][]int, bool) {
	n := len(nodes)
	comm := make([]int, n)
	for i := range comm {
		comm[i] = i
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	// Community degree and inter-community weights.
	degree := make([]float64, n)
	var m float64
	inter := map[[2]int]float64{}
	for _, e := range edges {
		degree[e.A] += e.Weight
		degree[e.B] += e.Weight
		m += e.Weight
		if e.A != e.B {
			inter[pairKey(e.A, e.B)] += e.Weight
		}
	}
	if m == 0 {
		return false, singletonPartition(n), false
	}

	// minEntity[i] is the lowest leaf entity id in community i, the
	// deterministic tie-breaker.
	minEntity := make([]string, n)
	for i, leaves := range nodes {
		minEntity[i] = g.Nodes[leaves[0]].ID
		for _, l := range leaves[1:] {
			if g.Nodes[l].ID < minEntity[i] {
				minEntity[i] = g.Nodes[l].ID
			}
		}
	}

	mergedAny := false
	exceeded := false

	for {
		if ctxDone(ctx) || (!deadline.IsZero() && time.Now().After(deadline)) {
			exceeded = true
			break
		}

		bestGain := 0.0
		bestA, bestB := -1, -1
		var bestTie [2]string

		for key, w := range inter {
			a, b := key[0], key[1]
			if !active[a] || !active[b] {
				continue
			}
			gain := w/m - 2*(degree[a]/(2*m))*(degree[b]/(2*m))
			if gain <= 0 {
				continue
			}
			tie := tieKey(minEntity[a], minEntity[b])
			if bestA < 0 || gain > bestGain || (gain == bestGain && tieLess(tie, bestTie)) {
				bestGain, bestA, bestB, bestTie = gain, a, b, tie
			}
		}
		if bestA < 0 {
			break
		}

		// Merge bestB into bestA.
		mergedAny = true
		active[bestB] = false
		degree[bestA] += degree[bestB]
		if minEntity[bestB] < minEntity[bestA] {
			minEntity[bestA] = minEntity[bestB]
		}
		for i := range comm {
			if comm[i] == bestB {
				comm[i] = bestA
			}
		}
		// Fold bestB's inter-community weights into bestA's.
		for key, w := range inter {
			a, b := key[0], key[1]
			if a != bestB && b != bestB {
				continue
			}
			delete(inter, key)
			other := a
			if other == bestB {
				other = b
			}
			if other == bestA {
				continue // now internal
			}
			inter[pairKey(bestA, other)] += w
		}
	}

	// Compact the partition, ordered by lowest member index for
	// reproducible output.
	groups := map[int][]int{}
	for i, c := range comm {
		groups[c] = append(groups[c], i)
	}
	roots := make([]int, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool { return groups[roots[i]][0] < groups[roots[j]][0] })

	partition := make([][]int, 0, len(roots))
	for _, r := range roots {
		sort.Ints(groups[r])
		partition = append(partition, groups[r])
	}
	return mergedAny, partition, exceeded
}

// coarsen rewrites edges between super-nodes after a partition.
func coarsen(edges []WeightedEdge, nodeToCluster []int) []WeightedEdge {
	agg := map[[2]int]float64{}
	for _, e := range edges {
		ca, cb := nodeToCluster[e.A], nodeToCluster[e.B]
		if ca == cb {
			continue
		}
		agg[pairKey(ca, cb)] += e.Weight
	}
	keys := make([][2]int, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	out := make([]WeightedEdge, 0, len(keys))
	for _, k := range keys {
		out = append(out, WeightedEdge{A: k[0], B: k[1], Weight: agg[k]})
	}
	return out
}

// linkParents fills Cluster.Parent: a level-L cluster's parent is the
// level-L+1 cluster containing its members.
func linkParents(g Graph, res *Result) {
	for l := 0; l+1 < len(res.Levels); l++ {
		owner := make([]int, len(g.Nodes))
		for i := range owner {
			owner[i] = -1
		}
		for ci, c := range res.Levels[l+1].Clusters {
			for _, leaf := range c.Members {
				owner[leaf] = ci
			}
		}
		for ci := range res.Levels[l].Clusters {
			members := res.Levels[l].Clusters[ci].Members
			if len(members) > 0 {
				res.Levels[l].Clusters[ci].Parent = owner[members[0]]
			}
		}
	}
}

// partitionModularity computes Q of the level-0 partition.
func partitionModularity(g Graph, res Result) float64 {
	if len(res.Levels) == 0 || len(g.Edges) == 0 {
		return 0
	}
	owner := make([]int, len(g.Nodes))
	for i := range owner {
		owner[i] = -1
	}
	for ci, c := range res.Levels[0].Clusters {
		for _, leaf := range c.Members {
			owner[leaf] = ci
		}
	}

	var m float64
	for _, e := range g.Edges {
		m += e.Weight
	}
	internal := make([]float64, len(res.Levels[0].Clusters))
	degree := make([]float64, len(res.Levels[0].Clusters))
	for _, e := range g.Edges {
		ca, cb := owner[e.A], owner[e.B]
		if ca >= 0 {
			degree[ca] += e.Weight
		}
		if cb >= 0 {
			degree[cb] += e.Weight
		}
		if ca >= 0 && ca == cb {
			internal[ca] += e.Weight
		}
	}
	var q float64
	for i := range internal {
		q += internal[i]/m - (degree[i]/(2*m))*(degree[i]/(2*m))
	}
	return q
}

// MembershipScore is the fraction of a node's edge weight that stays
// inside its community; isolated nodes score 1.
func MembershipScore(g Graph, members []int, node int) float64 {
	inside := map[int]bool{}
	for _, m := range members {
		inside[m] = true
	}
	var total, internal float64
	for _, e := range g.Edges {
		if e.A != node && e.B != node {
			continue
		}
		total += e.Weight
		other := e.A
		if other == node {
			other = e.B
		}
		if inside[other] {
			internal += e.Weight
		}
	}
	if total == 0 {
		return 1
	}
	return internal / total
}

func flatten(current [][]int, members []int) []int {
	var out []int
	for _, m := range members {
		out = append(out, current[m]...)
	}
	return out
}

func partitionIndex(partition [][]int, n int) []int {
	idx := make([]int, n)
	for ci, members := range partition {
		for _, m := range members {
			idx[m] = ci
		}
	}
	return idx
}

func singletonPartition(n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = []int{i}
	}
	return out
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func tieKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func tieLess(a, b [2]string) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
