package slot

import (
	"math/rand"
	"sort"

	"slots_backend/internal/config"
	"slots_backend/internal/model"
)

// generateReels draws one 3-symbol outcome under the configured policy.
// The policy is fixed at construction; weighted and template generation are
// never mixed within one machine.
func (s *serv) generateReels() model.ReelResult {
	if s.cfg.GeneratorPolicy() == config.PolicyTemplate {
		return templateReels(s.cfg.TemplateBias(), winningTemplates(s.cfg))
	}
	return weightedReels(s.cfg.SymbolWeights())
}

// weightedReels draws each of the 3 positions independently by weight.
func weightedReels(weights map[model.Symbol]int) model.ReelResult {
	reels := make(model.ReelResult, model.ReelCount)
	for i := range reels {
		reels[i] = weightedSymbol(weights)
	}
	return reels
}

// weightedSymbol picks one symbol proportionally to its weight. Iteration
// goes over the fixed alphabet so the draw does not depend on map order.
func weightedSymbol(weights map[model.Symbol]int) model.Symbol {
	total := 0
	for _, sym := range model.Alphabet {
		total += weights[sym]
	}

	n := rand.Intn(total)
	for _, sym := range model.Alphabet {
		w := weights[sym]
		if n < w {
			return sym
		}
		n -= w
	}

	// Unreachable while weights are positive; fall back to the heaviest
	// symbol the way the cumulative scan would.
	maxWeight := 0
	maxSym := model.Alphabet[0]
	for _, sym := range model.Alphabet {
		if weights[sym] > maxWeight {
			maxWeight = weights[sym]
			maxSym = sym
		}
	}
	return maxSym
}

// templateReels draws a whole winning triple with probability bias, else
// 3 independent uniform symbols.
func templateReels(bias float64, templates []model.Symbol) model.ReelResult {
	if len(templates) > 0 && rand.Float64() < bias {
		sym := templates[rand.Intn(len(templates))]
		return model.ReelResult{sym, sym, sym}
	}

	reels := make(model.ReelResult, model.ReelCount)
	for i := range reels {
		reels[i] = model.Alphabet[rand.Intn(len(model.Alphabet))]
	}
	return reels
}

// winningTemplates lists the triple-paying symbols in a stable order.
func winningTemplates(cfg config.SlotConfig) []model.Symbol {
	var templates []model.Symbol
	for sym, mult := range cfg.TriplePayouts() {
		if mult > 0 {
			templates = append(templates, sym)
		}
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i] < templates[j] })
	return templates
}
