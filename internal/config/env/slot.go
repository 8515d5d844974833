package env

import (
	"fmt"
	"os"

	"slots_backend/internal/config"
	"slots_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type slotYAML struct {
	Slot struct {
		Policy               string         `yaml:"policy"`
		TemplateBias         float64        `yaml:"template_bias"`
		SymbolWeights        map[string]int `yaml:"symbol_weights"`
		TriplePayouts        map[string]int `yaml:"triple_payouts"`
		TwoDiamondMultiplier int            `yaml:"two_diamond_multiplier"`
		PairMultiplier       int            `yaml:"pair_multiplier"`
		MaxMultiplier        int            `yaml:"max_multiplier"`
		BonusStipend         int            `yaml:"bonus_stipend"`
		BonusGrantCap        int            `yaml:"bonus_grant_cap"`
		InitialBalance       int            `yaml:"initial_balance"`
	} `yaml:"slot"`
}

type slotConfig struct {
	policy               string
	templateBias         float64
	symbolWeights        map[model.Symbol]int
	triplePayouts        map[model.Symbol]int
	twoDiamondMultiplier int
	pairMultiplier       int
	maxMultiplier        int
	bonusStipend         int
	bonusGrantCap        int
	initialBalance       int
}

// NewSlotConfigFromYAML loads the machine definition: generator policy,
// symbol weights, paytable and bonus policy parameters.
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot config: %w", err)
	}

	var parsed slotYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse slot config: %w", err)
	}

	cfg := &slotConfig{
		policy:               parsed.Slot.Policy,
		templateBias:         parsed.Slot.TemplateBias,
		symbolWeights:        make(map[model.Symbol]int, len(parsed.Slot.SymbolWeights)),
		triplePayouts:        make(map[model.Symbol]int, len(parsed.Slot.TriplePayouts)),
		twoDiamondMultiplier: parsed.Slot.TwoDiamondMultiplier,
		pairMultiplier:       parsed.Slot.PairMultiplier,
		maxMultiplier:        parsed.Slot.MaxMultiplier,
		bonusStipend:         parsed.Slot.BonusStipend,
		bonusGrantCap:        parsed.Slot.BonusGrantCap,
		initialBalance:       parsed.Slot.InitialBalance,
	}

	for name, weight := range parsed.Slot.SymbolWeights {
		sym := model.Symbol(name)
		if !sym.Valid() {
			return nil, fmt.Errorf("unknown symbol %q in symbol_weights", name)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("weight of %q must be positive", name)
		}
		cfg.symbolWeights[sym] = weight
	}
	for name, mult := range parsed.Slot.TriplePayouts {
		sym := model.Symbol(name)
		if !sym.Valid() {
			return nil, fmt.Errorf("unknown symbol %q in triple_payouts", name)
		}
		if mult < 0 {
			return nil, fmt.Errorf("multiplier of %q must be non-negative", name)
		}
		cfg.triplePayouts[sym] = mult
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *slotConfig) validate() error {
	switch cfg.policy {
	case config.PolicyWeighted, config.PolicyTemplate:
	default:
		return fmt.Errorf("unknown generator policy %q", cfg.policy)
	}
	if cfg.policy == config.PolicyTemplate && (cfg.templateBias < 0 || cfg.templateBias > 1) {
		return fmt.Errorf("template_bias must be within [0, 1]")
	}
	if len(cfg.symbolWeights) != len(model.Alphabet) {
		return fmt.Errorf("symbol_weights must cover the full alphabet")
	}
	if cfg.maxMultiplier <= 0 {
		return fmt.Errorf("max_multiplier must be positive")
	}
	if cfg.bonusStipend <= 0 || cfg.bonusGrantCap <= 0 {
		return fmt.Errorf("bonus_stipend and bonus_grant_cap must be positive")
	}
	if cfg.initialBalance < 0 {
		return fmt.Errorf("initial_balance must be non-negative")
	}
	return nil
}

func (cfg *slotConfig) GeneratorPolicy() string { return cfg.policy }

func (cfg *slotConfig) TemplateBias() float64 { return cfg.templateBias }

func (cfg *slotConfig) SymbolWeights() map[model.Symbol]int { return cfg.symbolWeights }

func (cfg *slotConfig) TriplePayouts() map[model.Symbol]int { return cfg.triplePayouts }

func (cfg *slotConfig) TwoDiamondMultiplier() int { return cfg.twoDiamondMultiplier }

func (cfg *slotConfig) PairMultiplier() int { return cfg.pairMultiplier }

func (cfg *slotConfig) MaxMultiplier() int { return cfg.maxMultiplier }

func (cfg *slotConfig) BonusStipend() int { return cfg.bonusStipend }

func (cfg *slotConfig) BonusGrantCap() int { return cfg.bonusGrantCap }

func (cfg *slotConfig) InitialBalance() int { return cfg.initialBalance }
