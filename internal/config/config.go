package config

import (
	"time"

	"slots_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Generator policies. Exactly one is active per process; mixing them across
// code paths makes the house edge unverifiable.
const (
	PolicyWeighted = "weighted"
	PolicyTemplate = "template"
)

type SlotConfig interface {
	GeneratorPolicy() string
	SymbolWeights() map[model.Symbol]int
	TemplateBias() float64
	TriplePayouts() map[model.Symbol]int
	TwoDiamondMultiplier() int
	PairMultiplier() int
	MaxMultiplier() int
	BonusStipend() int
	BonusGrantCap() int
	InitialBalance() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
