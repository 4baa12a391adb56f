package engine

import "github.com/BuonOmo/ascacou-go/internal/board"

// DefaultTableSize is the number of entries NewSolver allocates for its
// transposition table when the caller does not provide one.
const DefaultTableSize = 1 << 20

// Solver runs negamax search with alpha-beta pruning over Ascacou
// positions, scoring leaves and childless nodes with Board.CurrentScore. A
// Solver built by NewSolver owns its transposition table exclusively; one
// built by NewSolverWithTable uses the table its caller passes in.
type Solver struct {
	tt    *TranspositionTable
	nodes uint64
}

// NewSolver builds a Solver with a freshly-allocated transposition table of
// DefaultTableSize entries.
func NewSolver() *Solver {
	return &Solver{tt: NewTranspositionTable(DefaultTableSize)}
}

// NewSolverWithTable builds a Solver reusing an existing transposition
// table, letting a caller share table memory across successive solves of
// related positions.
func NewSolverWithTable(tt *TranspositionTable) *Solver {
	return &Solver{tt: tt}
}

// Nodes returns the number of positions visited by the most recent Solve or
// PartialSolve call.
func (s *Solver) Nodes() uint64 { return s.nodes }

// maxDepth computes the reference default search depth: half the number of
// remaining legal moves, rounded up.
func maxDepth(b *board.Board) int {
	moves := len(b.PossibleMoves())
	return (moves + 1) / 2
}

// Solve runs negamax alpha-beta search to depthLimit (or the reference
// default depth when depthLimit is nil, capped at that default), and
// returns the position's score, its best move if any legal move exists,
// and the number of positions visited.
func (s *Solver) Solve(b *board.Board, depthLimit *int) (score int, bestMove *board.Move, nodes uint64) {
	return s.solveWindow(b, depthLimit, MinScore, MaxScore)
}

// PartialSolve runs the same search narrowed to the window [-1, 1], which
// only distinguishes win/draw/loss and is substantially faster than a full
// Solve.
func (s *Solver) PartialSolve(b *board.Board, depthLimit *int) (score int, bestMove *board.Move, nodes uint64) {
	return s.solveWindow(b, depthLimit, -1, 1)
}

func (s *Solver) solveWindow(b *board.Board, depthLimit *int, alpha, beta int) (int, *board.Move, uint64) {
	depth := maxDepth(b)
	if depthLimit != nil && *depthLimit < depth {
		depth = *depthLimit
	}
	s.nodes = 0
	score, mov := s.negamaxRoot(b, alpha, beta, depth)
	return score, mov, s.nodes
}

// negamaxRoot is the top-level negamax call: identical to negamax except it
// also tracks which child produced the best score, since negamax itself
// only needs to return a bound. Unlike negamax, it never switches to the
// forced-move iterator: forced-move pruning is a within-search depth
// optimization, and the root's own depth is the caller's requested depth,
// not a remaining-depth countdown. It also neither reads nor writes the
// transposition table.
func (s *Solver) negamaxRoot(b *board.Board, alpha, beta, depth int) (int, *board.Move) {
	s.nodes++

	var bestMove *board.Move
	terminal := true
	for _, c := range orderedMoves(b) {
		terminal = false
		score := -s.negamax(c.board, -beta, -alpha, depth-1)
		if score >= beta {
			m := c.move
			return score, &m
		}
		if score > alpha {
			alpha = score
			m := c.move
			bestMove = &m
		}
	}
	if terminal {
		alpha = b.CurrentScore()
	}
	return alpha, bestMove
}

// negamax implements the algorithm from spec.md's §4.5: a transposition-
// table hit only ever tightens beta (never alpha), and is only written
// after a node's children have been fully explored (never on a beta
// cutoff), so entries always carry a sound upper bound on the negamax
// value.
func (s *Solver) negamax(b *board.Board, alpha, beta, depth int) int {
	s.nodes++

	key := Key(b)
	if cached, ok := s.tt.Get(key); ok {
		cachedBeta := int(cached)
		if beta > cachedBeta {
			beta = cachedBeta
			if alpha >= beta {
				return beta
			}
		}
	}

	if depth == 0 {
		return b.CurrentScore()
	}

	terminal := true
	for _, c := range childMoves(b, depth) {
		terminal = false
		score := -s.negamax(c.board, -beta, -alpha, depth-1)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	if terminal {
		alpha = b.CurrentScore()
	}

	s.tt.Put(key, int8(alpha))
	return alpha
}

// DepthResult is one row of Solver.Depths: the outcome of solving the same
// position at a single depth.
type DepthResult struct {
	Depth int
	Score int
	Move  *board.Move
	Nodes uint64
}

// Depths solves b at every depth from 1 to maxDepth inclusive, reporting
// each depth's outcome and node count. It mirrors the reference
// implementation's own per-depth benchmark loop, surfaced here as a
// queryable operation rather than a benchmark assertion: useful to a CLI
// reporting how search effort scales with depth, or to a caller picking
// the deepest depth that fits a time budget.
func (s *Solver) Depths(b *board.Board, maxDepth int) []DepthResult {
	results := make([]DepthResult, 0, maxDepth)
	for d := 1; d <= maxDepth; d++ {
		depth := d
		score, mov, nodes := s.Solve(b, &depth)
		results = append(results, DepthResult{Depth: d, Score: score, Move: mov, Nodes: nodes})
	}
	return results
}
