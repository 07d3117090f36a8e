// Package pool implements the worker pool that coordinates parallel search
// across CPU cores and exposes responsive cancellation to an asynchronous
// front-end.
package pool

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/carbon-chess/engine/pkg/eval"
	"github.com/carbon-chess/engine/pkg/search"
	"github.com/seekerror/logw"
)

// Result is a scored root move, as produced by one worker.
type Result struct {
	Move  board.Move
	Score eval.Score
}

// Outcome is the terminal content of the result slot: either a best move or
// the error legal_moves raised at the root (Checkmate/Stalemate).
type Outcome struct {
	Best Result
	Err  error
}

type job struct {
	move     board.Move
	pos      *board.Position
	myColor  board.Color
	maxDepth int
	tt       *search.TranspositionTable
	results  chan<- Result
}

// Pool owns N long-lived worker goroutines that drain a LIFO job queue,
// plus the shared abort flag, thinking flag, result slot, and main signal
// condition variable that the front-end uses to coordinate with it. Every
// field that needs its own lock gets one; no lock here guards more than one
// of queue/abort/thinking/result.
type Pool struct {
	eval eval.Evaluator

	queueMu   sync.Mutex
	queueCond *sync.Cond
	queue     []job // LIFO: push/pop the tail

	abortMu sync.RWMutex
	abort   bool

	thinkingMu sync.Mutex
	thinking   bool

	resultMu sync.Mutex
	result   *Outcome

	mainMu   sync.Mutex
	mainCond *sync.Cond
}

// New starts n worker goroutines sharing ev as the evaluator and returns the pool.
func New(ctx context.Context, n int, ev eval.Evaluator) *Pool {
	p := &Pool{eval: ev}
	p.queueCond = sync.NewCond(&p.queueMu)
	p.mainCond = sync.NewCond(&p.mainMu)

	logw.Infof(ctx, "Starting worker pool: %v workers", n)
	for i := 0; i < n; i++ {
		go p.worker(ctx)
	}
	return p
}

// IsSet implements search.AbortFlag.
func (p *Pool) IsSet() bool {
	p.abortMu.RLock()
	defer p.abortMu.RUnlock()
	return p.abort
}

func (p *Pool) setAbort(v bool) {
	p.abortMu.Lock()
	p.abort = v
	p.abortMu.Unlock()
}

func (p *Pool) setThinking(v bool) {
	p.thinkingMu.Lock()
	p.thinking = v
	p.thinkingMu.Unlock()
}

func (p *Pool) isThinking() bool {
	p.thinkingMu.Lock()
	defer p.thinkingMu.Unlock()
	return p.thinking
}

func (p *Pool) setResult(o *Outcome) {
	p.resultMu.Lock()
	p.result = o
	p.resultMu.Unlock()
}

// notifyMain wakes every goroutine blocked in WaitMain.
func (p *Pool) notifyMain() {
	p.mainMu.Lock()
	p.mainCond.Broadcast()
	p.mainMu.Unlock()
}

// WaitMain blocks until the main signal fires: a find-best-move result
// landed, or the caller's own clock/input-watcher goroutine broadcasts on
// the same condition variable via NotifyMain. There is no timeout.
func (p *Pool) WaitMain() {
	p.mainMu.Lock()
	p.mainCond.Wait()
	p.mainMu.Unlock()
}

// NotifyMain lets an external waker (a clock expiry, stdin arrival) share
// this pool's main signal, per the design note that the signal is a single
// broadcast point fed by multiple producers.
func (p *Pool) NotifyMain() {
	p.notifyMain()
}

func (p *Pool) pushJob(j job) {
	p.queueMu.Lock()
	p.queue = append(p.queue, j)
	p.queueMu.Unlock()
	p.queueCond.Signal()
}

func (p *Pool) popJob() job {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()
	for len(p.queue) == 0 {
		p.queueCond.Wait()
	}
	last := len(p.queue) - 1
	j := p.queue[last]
	p.queue = p.queue[:last]
	return j
}

// worker pops jobs forever. It never exits on abort: the searcher, seeing
// abort set, collapses to the static score immediately, so the aggregator
// still receives exactly the expected number of results. The result send
// blocks when the channel is full, per the documented concurrency model
// (§5): a worker suspends on the send rather than discarding a score.
func (p *Pool) worker(ctx context.Context) {
	for {
		j := p.popJob()

		ab := search.AlphaBeta{Eval: p.eval, TT: j.tt}
		score := ab.Search(j.pos, j.myColor, 0, j.maxDepth, eval.NegInfScore, eval.InfScore, p)

		j.results <- Result{Move: j.move, Score: score}
	}
}

// FindBestMove expands every legal root move of pos into one job, searched
// to maxDepth, and returns once a short-lived aggregator has been spawned to
// collect the results; it does not block for the result itself. Poll
// HasResult/TakeResult or block on WaitMain to observe completion.
func (p *Pool) FindBestMove(ctx context.Context, pos *board.Position, maxDepth int) {
	p.setThinking(true)
	p.setAbort(false)

	moves, err := pos.LegalMoves()
	if err != nil {
		p.setResult(&Outcome{Err: err})
		p.setThinking(false)
		p.notifyMain()
		return
	}

	tt := search.NewTranspositionTable(maxDepth)
	mover := pos.SideToMove()

	results := make(chan Result, len(moves))
	for _, m := range moves {
		child, err := pos.MakeMove(m)
		if err != nil {
			panic(err) // unreachable: LegalMoves only returns moves MakeMove accepts
		}
		p.pushJob(job{move: m, pos: child, myColor: mover, maxDepth: maxDepth, tt: tt, results: results})
	}

	go p.aggregate(ctx, len(moves), results)
}

// aggregate receives exactly n results, tracks the maximum score with a
// uniform random tie-break via reservoir sampling, and posts the outcome.
func (p *Pool) aggregate(ctx context.Context, n int, results <-chan Result) {
	best := Result{Score: eval.NegInfScore}
	ties := 0

	for i := 0; i < n; i++ {
		r := <-results
		switch {
		case r.Score > best.Score:
			best = r
			ties = 1
		case r.Score == best.Score:
			ties++
			if rand.Intn(ties) == 0 {
				best = r
			}
		}
	}

	logw.Infof(ctx, "Best move: %v (%v)", best.Move, best.Score)

	p.setResult(&Outcome{Best: best})
	p.setThinking(false)
	p.notifyMain()
}

// Abort sets the shared abort flag; in-flight searches collapse to their static score.
func (p *Pool) Abort() {
	p.setAbort(true)
}

// AbortAndClear sets abort, waits until the pool is no longer thinking, then
// drops the result slot, discarding whatever outcome the aggregator posted.
func (p *Pool) AbortAndClear() {
	p.setAbort(true)
	for p.isThinking() {
		time.Sleep(50 * time.Millisecond)
	}
	p.setResult(nil)
}

// HasResult reports whether a result is waiting in the result slot.
func (p *Pool) HasResult() bool {
	p.resultMu.Lock()
	defer p.resultMu.Unlock()
	return p.result != nil
}

// TakeResult consumes the result slot, if present.
func (p *Pool) TakeResult() (Outcome, bool) {
	p.resultMu.Lock()
	defer p.resultMu.Unlock()
	if p.result == nil {
		return Outcome{}, false
	}
	o := *p.result
	p.result = nil
	return o, true
}
