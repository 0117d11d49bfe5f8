// Package pulse: preprocessing stage.
//
// Before a search can run, every criterion listed in PrepDeterministicWeights
// and PrepRandomWeights is turned into a minimum cost-to-target vector via a
// backward Dijkstra pass. The criteria are independent, so the passes run
// concurrently, one goroutine per criterion.
package pulse

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/EstebanLeiva/pulsekit/dijkstra"
)

// prepJob identifies one bound computation: a deterministic criterion when
// randVar is empty, otherwise one parameter of a named random variable.
type prepJob struct {
	key     string
	randVar string
}

// name renders the criterion for error messages.
func (j prepJob) name() string {
	if j.randVar == "" {
		return j.key
	}

	return j.randVar + "/" + j.key
}

// Preprocess computes the minimum cost-to-target vector for every configured
// preprocessing criterion and stores the tables for bound lookups during Run.
//
// Each criterion runs its own backward Dijkstra pass; the passes execute
// concurrently and share the graph read-only. A nil ctx is treated as
// context.Background(); cancellation aborts every in-flight pass.
//
// The stored tables are all-or-nothing: if any pass fails, or the target is
// unreachable from the source under any criterion (ErrUnreachableTarget),
// no table is kept and the engine stays unprepared. Failures are reported in
// deterministic criterion order, deterministic weights first, then random
// variables sorted by name.
func (p *Pulse) Preprocess(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Assemble the job list in reporting order.
	var jobs []prepJob
	for _, key := range p.params.PrepDeterministicWeights {
		jobs = append(jobs, prepJob{key: key})
	}
	randVars := make([]string, 0, len(p.params.PrepRandomWeights))
	for randVar := range p.params.PrepRandomWeights {
		randVars = append(randVars, randVar)
	}
	sort.Strings(randVars)
	for _, randVar := range randVars {
		for _, key := range p.params.PrepRandomWeights[randVar] {
			jobs = append(jobs, prepJob{key: key, randVar: randVar})
		}
	}

	// 2. Fan out one solver per criterion.
	var (
		wg      sync.WaitGroup
		vectors = make([][]float64, len(jobs))
		errs    = make([]error, len(jobs))
	)
	for i, job := range jobs {
		wg.Add(1)
		go func(slot int, job prepJob) {
			defer wg.Done()
			opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
			if job.randVar != "" {
				opts = append(opts, dijkstra.WithRandVar(job.randVar))
			}
			vectors[slot], errs[slot] = dijkstra.CostsToTarget(
				p.params.Graph, p.params.Target, job.key, opts...)
		}(i, job)
	}
	wg.Wait()

	// 3. First failure in job order wins; unreachable source is a failure.
	for i, job := range jobs {
		if errs[i] != nil {
			return fmt.Errorf("pulse: preprocess %s: %w", job.name(), errs[i])
		}
		if math.IsInf(vectors[i][p.params.Source], 1) {
			return fmt.Errorf("%w: criterion %s", ErrUnreachableTarget, job.name())
		}
	}

	// 4. Commit the tables.
	det := make(map[string][]float64, len(p.params.PrepDeterministicWeights))
	random := make(map[string]map[string][]float64, len(p.params.PrepRandomWeights))
	for i, job := range jobs {
		if job.randVar == "" {
			det[job.key] = vectors[i]
			continue
		}
		inner, ok := random[job.randVar]
		if !ok {
			inner = make(map[string][]float64, len(p.params.PrepRandomWeights[job.randVar]))
			random[job.randVar] = inner
		}
		inner[job.key] = vectors[i]
	}
	p.prep = Preprocessing{Deterministic: det, Random: random}
	p.preprocessed = true

	return nil
}
