package domain

import "fmt"

type ResultKind int

const (
	ResultWin ResultKind = iota
	ResultLoss
	ResultDraw
)

func (k ResultKind) String() string {
	switch k {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	case ResultDraw:
		return "draw"
	}
	return "unknown"
}

// Per-side result labels as reported by the chess.com API. The Lichess
// adapter derives labels from the same vocabulary, so every game record
// entering the aggregator classifies against these three sets.
var (
	winLabels = map[string]struct{}{
		"win": {},
	}
	lossLabels = map[string]struct{}{
		"checkmated":          {},
		"resigned":            {},
		"timeout":             {},
		"lose":                {},
		"abandoned":           {},
		"kingofthehill":       {},
		"threecheck":          {},
		"bughousepartnerlose": {},
	}
	drawLabels = map[string]struct{}{
		"agreed":             {},
		"repetition":         {},
		"stalemate":          {},
		"insufficient":       {},
		"50move":             {},
		"timevsinsufficient": {},
	}
)

// ClassifyResult maps a per-side result label to win/loss/draw. A label
// outside the known sets is a data-integrity defect in the upstream feed
// and fails loudly rather than being counted as a draw.
func ClassifyResult(label string) (ResultKind, error) {
	if _, ok := winLabels[label]; ok {
		return ResultWin, nil
	}
	if _, ok := lossLabels[label]; ok {
		return ResultLoss, nil
	}
	if _, ok := drawLabels[label]; ok {
		return ResultDraw, nil
	}
	return ResultDraw, fmt.Errorf("%w: %q", ErrUnknownResultLabel, label)
}
