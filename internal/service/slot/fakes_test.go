package slot

import (
	"context"
	"sync"
	"time"

	"slots_backend/internal/config"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// testCfg mirrors config.yaml.
type testCfg struct {
	policy string
	bias   float64
}

func (c testCfg) GeneratorPolicy() string {
	if c.policy == "" {
		return config.PolicyWeighted
	}
	return c.policy
}

func (c testCfg) TemplateBias() float64 { return c.bias }

func (c testCfg) SymbolWeights() map[model.Symbol]int {
	return map[model.Symbol]int{
		model.SymbolDiamond: 1,
		model.SymbolStar:    2,
		model.SymbolBell:    2,
		model.SymbolClover:  3,
		model.SymbolCherry:  3,
		model.SymbolLemon:   4,
	}
}

func (c testCfg) TriplePayouts() map[model.Symbol]int {
	return map[model.Symbol]int{
		model.SymbolDiamond: 20,
		model.SymbolStar:    10,
		model.SymbolBell:    8,
		model.SymbolClover:  5,
		model.SymbolCherry:  3,
		model.SymbolLemon:   2,
	}
}

func (c testCfg) TwoDiamondMultiplier() int { return 2 }
func (c testCfg) PairMultiplier() int       { return 1 }
func (c testCfg) MaxMultiplier() int        { return 20 }
func (c testCfg) BonusStipend() int         { return 100 }
func (c testCfg) BonusGrantCap() int        { return 5 }
func (c testCfg) InitialBalance() int       { return 1000 }

// fakeTxManager serializes units of work the way the row lock does in
// Postgres: one settlement sequence at a time per store.
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeUserRepo struct {
	mu       sync.Mutex
	balances map[int]int

	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{balances: make(map[int]int)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.balances) + 1
	r.balances[id] = user.Balance
	return id, nil
}

func (r *fakeUserRepo) GetUserByLogin(context.Context, string) (*model.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) GetBalance(_ context.Context, id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[id], nil
}

func (r *fakeUserRepo) GetBalanceForUpdate(ctx context.Context, id int) (int, error) {
	return r.GetBalance(ctx, id)
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[id] = amount
	return nil
}

type fakeLedgerRepo struct {
	mu  sync.Mutex
	txs []model.Transaction

	appendErr error
}

func (r *fakeLedgerRepo) AppendTransaction(_ context.Context, tx *model.Transaction) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = len(r.txs) + 1
	tx.CreatedAt = time.Now()
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *fakeLedgerRepo) ListByUser(_ context.Context, userID, limit, offset int) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []model.Transaction
	for i := len(r.txs) - 1; i >= 0; i-- { // newest first
		if r.txs[i].UserID == userID {
			all = append(all, r.txs[i])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLedgerRepo) CountByUser(_ context.Context, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, tx := range r.txs {
		if tx.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLedgerRepo) Leaderboard(_ context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byUser := make(map[int]*model.LeaderboardEntry)
	var order []int
	for _, tx := range r.txs {
		if tx.CreatedAt.Before(since) {
			continue
		}
		e, ok := byUser[tx.UserID]
		if !ok {
			e = &model.LeaderboardEntry{UserID: tx.UserID}
			byUser[tx.UserID] = e
			order = append(order, tx.UserID)
		}
		e.NetWin += tx.Net
		e.TotalSpins++
	}

	var entries []model.LeaderboardEntry
	for _, id := range order {
		entries = append(entries, *byUser[id])
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].NetWin > entries[i].NetWin {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

type fakeBonusRepo struct {
	mu     sync.Mutex
	counts map[int]int
}

func newFakeBonusRepo() *fakeBonusRepo {
	return &fakeBonusRepo{counts: make(map[int]int)}
}

func (r *fakeBonusRepo) GetGrantCount(_ context.Context, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[userID], nil
}

func (r *fakeBonusRepo) UpdateGrantCount(_ context.Context, userID int, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[userID] = count
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[int][]model.LeaderboardEntry
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int][]model.LeaderboardEntry)}
}

func (c *fakeCache) Get(_ context.Context, days int) ([]model.LeaderboardEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.entries[days], nil
}

func (c *fakeCache) Set(_ context.Context, days int, entries []model.LeaderboardEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[days] = entries
	return nil
}

type testEnv struct {
	serv   *serv
	users  *fakeUserRepo
	ledger *fakeLedgerRepo
	bonus  *fakeBonusRepo
	cache  *fakeCache
}

func newTestEnv(cfg config.SlotConfig) *testEnv {
	users := newFakeUserRepo()
	ledger := &fakeLedgerRepo{}
	bonus := newFakeBonusRepo()
	cache := newFakeCache()

	s := NewSlotService(cfg, users, ledger, bonus, cache, &fakeTxManager{}).(*serv)

	return &testEnv{
		serv:   s,
		users:  users,
		ledger: ledger,
		bonus:  bonus,
		cache:  cache,
	}
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.LedgerRepository = (*fakeLedgerRepo)(nil)
var _ repository.BonusRepository = (*fakeBonusRepo)(nil)
var _ repository.LeaderboardCache = (*fakeCache)(nil)
