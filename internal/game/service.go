package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
)

const persistTimeout = 5 * time.Second

// session pairs one player's engine with the mutex that serializes every
// tick and mutation against it.
type session struct {
	mu     sync.Mutex
	engine *Engine
}

// Service owns the loaded game sessions. It ticks them in the background,
// serializes mutating calls, publishes engine events to the hub, and
// persists after each commit.
type Service struct {
	repo    *Repository
	catalog *catalog.Catalog
	clock   Clock
	hub     *Hub
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[int]*session
}

func NewService(repo *Repository, cat *catalog.Catalog, clock Clock, hub *Hub, logger *slog.Logger) *Service {
	logger.Debug("Initializing game service")

	return &Service{
		repo:     repo,
		catalog:  cat,
		clock:    clock,
		hub:      hub,
		logger:   logger,
		sessions: make(map[int]*session),
	}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// session returns the player's loaded session, pulling the save-state from
// the repository on first access. A player with no save gets a fresh game.
func (s *Service) session(ctx context.Context, playerID int) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[playerID]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	logger := s.logger.With("component", "game_service", "operation", "load_session", "player_id", playerID)

	state, err := s.repo.LoadState(ctx, playerID)
	if err != nil {
		if errors.GetType(err) != errors.ErrorTypeNotFound {
			return nil, err
		}
		logger.Info("No save-state found, starting a new game")
		state = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have loaded the session while we hit the database
	if sess, ok := s.sessions[playerID]; ok {
		return sess, nil
	}

	var engine *Engine
	if state != nil {
		engine = NewEngine(s.catalog, s.clock, state)
	} else {
		engine = NewGame(s.catalog, s.clock)
	}

	sess = &session{engine: engine}
	s.sessions[playerID] = sess

	logger.Debug("Session loaded", "new_game", state == nil)
	return sess, nil
}

// withSession runs fn against the player's engine under the session lock,
// then publishes drained events and persists the committed state.
func (s *Service) withSession(ctx context.Context, playerID int, fn func(*Engine) error) error {
	sess, err := s.session(ctx, playerID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	fnErr := fn(sess.engine)
	events := sess.engine.DrainEvents()
	data, encErr := s.repo.Encode(sess.engine.State())
	sess.mu.Unlock()

	s.hub.Publish(playerID, events)

	if encErr != nil {
		s.logger.Error("Failed to encode save-state", "player_id", playerID, "error", encErr)
	} else {
		go s.persist(playerID, data)
	}

	return fnErr
}

// persist writes a committed save-state in the background. Failures are
// logged; in-memory state is never rolled back.
func (s *Service) persist(playerID int, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.repo.SaveStateData(ctx, playerID, data); err != nil {
		s.logger.Error("Failed to persist save-state",
			"component", "game_service",
			"player_id", playerID,
			"error", err,
		)
	}
}

// SlotView reports queue capacity alongside current usage.
type SlotView struct {
	Construction     int `json:"construction"`
	ConstructionUsed int `json:"construction_used"`
	Research         int `json:"research"`
	ResearchUsed     int `json:"research_used"`
	Training         int `json:"training"`
	TrainingUsed     int `json:"training_used"`
}

// OrbitView reports whether the headquarters has reached an orbit's
// unlock level.
type OrbitView struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
}

// StateView is the full client-facing snapshot: raw save-state plus the
// derived figures the engine computes on demand.
type StateView struct {
	State            *State            `json:"state"`
	EffectiveRates   economy.Resources `json:"effective_rates"`
	EffectiveIndices economy.Indices   `json:"effective_indices"`
	Efficiency       float64           `json:"efficiency"`
	ArmyPower        float64           `json:"army_power"`
	Maintenance      economy.Resources `json:"maintenance"`
	Slots            SlotView          `json:"slots"`
	Features         []string          `json:"features"`
	Orbits           []OrbitView       `json:"orbits"`
}

// GetState ticks the player's game to the present and returns a snapshot.
func (s *Service) GetState(ctx context.Context, playerID int) (*StateView, error) {
	var view *StateView
	err := s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		view = snapshotView(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func snapshotView(e *Engine) *StateView {
	st := e.State()
	indices := e.EffectiveIndices()

	// Deep copy so encoding the response after the session lock is
	// released never races the background ticker.
	var stateCopy State
	if data, err := json.Marshal(st); err == nil {
		_ = json.Unmarshal(data, &stateCopy)
	}
	stateCopy.Resources = st.Resources.Truncate()
	stateCopy.Produced = st.Produced.Truncate()

	features := e.UnlockedFeatures()
	if features == nil {
		features = []string{}
	}
	orbits := make([]OrbitView, 0, len(e.catalog.Orbits()))
	for _, o := range e.catalog.Orbits() {
		orbits = append(orbits, OrbitView{ID: o.ID, Unlocked: e.IsOrbitUnlocked(o.ID)})
	}

	view := &StateView{
		State:            &stateCopy,
		EffectiveRates:   e.EffectiveRates(),
		EffectiveIndices: indices,
		Efficiency:       indices.EfficiencyMultiplier(),
		ArmyPower:        e.ArmyPower(),
		Maintenance:      e.MaintenanceRate(),
		Slots: SlotView{
			Construction:     e.ConstructionSlots(),
			ConstructionUsed: len(st.Construction),
			Research:         e.ResearchSlots(),
			ResearchUsed:     len(st.Research),
			Training:         e.TrainingSlots(),
			TrainingUsed:     len(st.Training),
		},
		Features: features,
		Orbits:   orbits,
	}

	return view
}

func (s *Service) StartConstruction(ctx context.Context, playerID int, buildingID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Building(buildingID); !ok {
			return errors.NotFoundf("unknown building %q", buildingID)
		}
		if !e.StartConstruction(buildingID) {
			return errors.Validationf("cannot start construction of %s", buildingID)
		}
		return nil
	})
}

func (s *Service) CancelConstruction(ctx context.Context, playerID int, orderID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if !e.CancelConstruction(orderID) {
			return errors.NotFoundf("construction order %q not found", orderID)
		}
		return nil
	})
}

func (s *Service) StartResearch(ctx context.Context, playerID int, researchID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Research(researchID); !ok {
			return errors.NotFoundf("unknown research %q", researchID)
		}
		if !e.StartResearch(researchID) {
			return errors.Validationf("cannot start research %s", researchID)
		}
		return nil
	})
}

func (s *Service) CancelResearch(ctx context.Context, playerID int, orderID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if !e.CancelResearch(orderID) {
			return errors.NotFoundf("research order %q not found", orderID)
		}
		return nil
	})
}

func (s *Service) StartTraining(ctx context.Context, playerID int, unitID string, quantity int) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Unit(unitID); !ok {
			return errors.NotFoundf("unknown unit %q", unitID)
		}
		if quantity <= 0 {
			return errors.Validation("quantity must be positive")
		}
		if !e.StartTraining(unitID, quantity) {
			return errors.Validationf("cannot train %d x %s", quantity, unitID)
		}
		return nil
	})
}

func (s *Service) CancelTraining(ctx context.Context, playerID int, orderID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if !e.CancelTraining(orderID) {
			return errors.NotFoundf("training order %q not found", orderID)
		}
		return nil
	})
}

func (s *Service) ActivatePolicy(ctx context.Context, playerID int, policyID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Policy(policyID); !ok {
			return errors.NotFoundf("unknown policy %q", policyID)
		}
		if !e.ActivatePolicy(policyID) {
			return errors.Validationf("cannot activate policy %s", policyID)
		}
		return nil
	})
}

func (s *Service) DeactivatePolicy(ctx context.Context, playerID int, policyID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if !e.DeactivatePolicy(policyID) {
			return errors.NotFoundf("policy %q is not active", policyID)
		}
		return nil
	})
}

func (s *Service) ExploreTerritory(ctx context.Context, playerID int, territoryID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Territory(territoryID); !ok {
			return errors.NotFoundf("unknown territory %q", territoryID)
		}
		if !e.ExploreTerritory(territoryID) {
			return errors.Validationf("cannot explore territory %s", territoryID)
		}
		return nil
	})
}

func (s *Service) ControlTerritory(ctx context.Context, playerID int, territoryID string) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if _, ok := s.catalog.Territory(territoryID); !ok {
			return errors.NotFoundf("unknown territory %q", territoryID)
		}
		if !e.ControlTerritory(territoryID) {
			return errors.Validationf("cannot take control of territory %s", territoryID)
		}
		return nil
	})
}

func (s *Service) ScoutTerritory(ctx context.Context, playerID int, territoryID string) (*ScoutReport, error) {
	var report *ScoutReport
	err := s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		report = e.ScoutTerritory(territoryID)
		if report == nil {
			return errors.NotFoundf("unknown territory %q", territoryID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Missions ticks first so progress reflects the present, then reports the
// current tutorial day's missions.
func (s *Service) Missions(ctx context.Context, playerID int) ([]MissionState, error) {
	var missions []MissionState
	err := s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		missions = e.CurrentDayMissions()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return missions, nil
}

func (s *Service) AdvanceDay(ctx context.Context, playerID int) error {
	return s.withSession(ctx, playerID, func(e *Engine) error {
		e.Tick()
		if !e.AdvanceDay() {
			return errors.Validation("current day's missions are not all complete")
		}
		return nil
	})
}

// DeleteGame evicts the player's in-memory session and removes the
// persisted save.
func (s *Service) DeleteGame(ctx context.Context, playerID int) error {
	s.mu.Lock()
	delete(s.sessions, playerID)
	s.mu.Unlock()
	return s.repo.DeleteState(ctx, playerID)
}

// RunTicker advances every loaded session on a fixed interval until the
// context is cancelled. The interval is the configured tick interval
// divided by the time-acceleration factor.
func (s *Service) RunTicker(ctx context.Context, interval time.Duration) {
	logger := s.logger.With("component", "game_service", "operation", "ticker")
	logger.Info("Background ticker started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Background ticker stopped")
			return
		case <-ticker.C:
			s.tickAll()
		}
	}
}

func (s *Service) tickAll() {
	s.mu.Lock()
	ids := make([]int, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		if err := s.withSession(context.Background(), id, func(e *Engine) error {
			e.Tick()
			return nil
		}); err != nil {
			s.logger.Error("Background tick failed", "player_id", id, "error", err)
		}
	}
}
