package triad

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/WhatDothLife/triads-sub000/cache"
)

// armPair identifies one arm by its (length, index within that length's
// arm list) coordinates — the key the pairwise infeasibility cache
// indexes by.
type armPair struct {
	length int
	index  int
}

func lessArmPair(a, b armPair) bool {
	if a.length != b.length {
		return a.length < b.length
	}

	return a.index < b.index
}

// pairCache memoises arm-index pairs whose two-arm triad fails
// is_rooted_core, so that triple enumeration can skip any triple
// containing one of them. Pairs are kept in the order they were recorded
// (longer arm first), so a same-length pair (i,a),(i,b) with a < b
// excludes only that ordering, not (i,b),(i,a).
type pairCache struct {
	pairs   map[[2]armPair]struct{}
	maxDone int
}

func newPairCache() *pairCache {
	return &pairCache{pairs: make(map[[2]armPair]struct{}), maxDone: -1}
}

func canonical(a, b armPair) [2]armPair {
	if lessArmPair(a, b) {
		return [2]armPair{a, b}
	}

	return [2]armPair{b, a}
}

func (c *pairCache) insert(a, b armPair) {
	c.pairs[[2]armPair{a, b}] = struct{}{}
}

func (c *pairCache) has(a, b armPair) bool {
	_, ok := c.pairs[[2]armPair{a, b}]

	return ok
}

// cached reports whether any of the three pairs among a, b, k has
// already been recorded as infeasible.
func (c *pairCache) cached(a, b, k armPair) bool {
	return c.has(a, b) || c.has(a, k) || c.has(b, k)
}

// Generator produces core triads against a single data directory,
// memoising rooted-core arms, infeasible arm-index pairs, and core
// triads to disk as it goes.
type Generator struct {
	store *cache.Store
}

// NewGenerator returns a Generator rooted at dataDir.
func NewGenerator(dataDir string) *Generator {
	return &Generator{store: cache.New(dataDir)}
}

// Generate returns every core triad bounded by num under constraint.
func (g *Generator) Generate(num int, constraint Constraint) ([]*Triad, error) {
	lists, err := g.GenerateRange(num, num, constraint)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, nil
	}

	return lists[0], nil
}

// GenerateRange returns, for every value in [lo, hi] in order, the core
// triads bounded by that value under constraint.
func (g *Generator) GenerateRange(lo, hi int, constraint Constraint) ([][]*Triad, error) {
	if lo > hi {
		return nil, fmt.Errorf("triad: empty range [%d, %d]", lo, hi)
	}

	armList, err := g.rootedCoreArms(constraint.MaxArmLength(hi))
	if err != nil {
		return nil, err
	}

	pc := newPairCache()
	out := make([][]*Triad, 0, hi-lo+1)

	for n := lo; n <= hi; n++ {
		if err := pc.populateUpTo(g.store, n, armList, constraint); err != nil {
			return nil, err
		}

		triads, err := g.cores(n, armList, pc, constraint)
		if err != nil {
			return nil, err
		}

		out = append(out, triads)
	}

	return out, nil
}

// rootedCoreArms returns, for each length 0..maxLen, every rooted-core
// arm of that length. Each length's list is built by extending the
// previous length's rooted-core arms with a new character nearest the
// root and re-validating the result — a candidate filter, not a
// guarantee, since revalidation always runs.
func (g *Generator) rootedCoreArms(maxLen int) ([][]string, error) {
	armList := [][]string{{""}}
	last := []string{""}

	for length := 1; length <= maxLen; length++ {
		relPath := fmt.Sprintf("arms/arms%d", length)

		lines, ok, err := g.store.ReadLines(relPath)
		if err != nil {
			return nil, err
		}

		var current []string
		if ok {
			current = lines
		} else {
			file, err := g.store.OpenAppend(relPath)
			if err != nil {
				return nil, err
			}

			for _, arm := range last {
				for _, prefix := range [2]byte{'0', '1'} {
					candidate := string(prefix) + arm

					t := New()
					_ = t.AddArm(candidate)

					if t.IsRootedCore() {
						current = append(current, candidate)
						if err := file.WriteLine(candidate); err != nil {
							log.Printf("triad: cache write failed for %s: %v", relPath, err)
						}
					}
				}
			}

			if err := file.Close(); err != nil {
				return nil, err
			}
		}

		last = current
		armList = append(armList, current)
	}

	return armList, nil
}

func (c *pairCache) populateUpTo(store *cache.Store, num int, armList [][]string, cons Constraint) error {
	for n := c.maxDone + 1; n <= num; n++ {
		if err := c.populate(store, n, armList, cons); err != nil {
			return err
		}
	}
	c.maxDone = num

	return nil
}

func (c *pairCache) populate(store *cache.Store, num int, armList [][]string, cons Constraint) error {
	relPath := fmt.Sprintf("%s/pairs_%d", cons, num)

	lines, ok, err := store.ReadLines(relPath)
	if err != nil {
		return err
	}
	if ok {
		for _, line := range lines {
			parts := strings.Split(line, ",")
			if len(parts) != 4 {
				continue
			}

			i, erri := strconv.Atoi(parts[0])
			a, erra := strconv.Atoi(parts[1])
			j, errj := strconv.Atoi(parts[2])
			b, errb := strconv.Atoi(parts[3])
			if erri != nil || erra != nil || errj != nil || errb != nil {
				continue
			}

			c.insert(armPair{i, a}, armPair{j, b})
		}

		return nil
	}

	file, err := store.OpenAppend(relPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var mu sync.Mutex
	var found [][2]armPair

	var eg errgroup.Group
	for _, pr := range cons.Pairs(num) {
		pr := pr
		i, j := pr[0], pr[1]

		eg.Go(func() error {
			for a, arm1 := range armList[i] {
				for b, arm2 := range armList[j] {
					t := New()
					_ = t.AddArm(arm1)
					_ = t.AddArm(arm2)

					// First condition excludes permutations of arms with
					// the same length.
					if (i == j && a < b) || !t.IsRootedCore() {
						mu.Lock()
						found = append(found, [2]armPair{{i, a}, {j, b}})
						mu.Unlock()

						if err := file.WriteLine(fmt.Sprintf("%d,%d,%d,%d", i, a, j, b)); err != nil {
							log.Printf("triad: cache write failed for %s: %v", relPath, err)
						}
					}
				}
			}

			return nil
		})
	}
	_ = eg.Wait()

	for _, pr := range found {
		c.insert(pr[0], pr[1])
	}

	return nil
}

func (g *Generator) cores(num int, armList [][]string, pc *pairCache, cons Constraint) ([]*Triad, error) {
	relPath := fmt.Sprintf("%s/cores_%d", cons, num)

	if lines, ok, err := g.store.ReadLines(relPath); err != nil {
		return nil, err
	} else if ok {
		out := make([]*Triad, 0, len(lines))
		for _, line := range lines {
			parts := strings.Split(line, ",")
			if len(parts) != 3 {
				continue
			}
			out = append(out, FromStrs(parts[0], parts[1], parts[2]))
		}

		return out, nil
	}

	file, err := g.store.OpenAppend(relPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var mu sync.Mutex
	var triads []*Triad

	var eg errgroup.Group
	for _, tr := range cons.Triplets(num) {
		tr := tr
		i, j, k := tr[0], tr[1], tr[2]

		eg.Go(func() error {
			for a, arm1 := range armList[i] {
				for b, arm2 := range armList[j] {
					for c, arm3 := range armList[k] {
						if leadingOnesCount(arm1, arm2, arm3) > 1 {
							continue
						}
						if pc.cached(armPair{i, a}, armPair{j, b}, armPair{k, c}) {
							continue
						}

						t := FromStrs(arm1, arm2, arm3)
						if !t.IsCore() {
							continue
						}

						mu.Lock()
						triads = append(triads, t)
						mu.Unlock()

						if err := file.WriteLine(fmt.Sprintf("%s,%s,%s", arm1, arm2, arm3)); err != nil {
							log.Printf("triad: cache write failed for %s: %v", relPath, err)
						}
					}
				}
			}

			return nil
		})
	}
	_ = eg.Wait()

	return triads, nil
}

// leadingOnesCount counts how many of the given arms start with '1', used
// to skip orientation duplicates: at most one arm may point into the
// root.
func leadingOnesCount(arms ...string) int {
	n := 0
	for _, arm := range arms {
		if strings.HasPrefix(arm, "1") {
			n++
		}
	}

	return n
}
