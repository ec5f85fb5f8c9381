package handler

import (
	"context"
	"net/http"

	"github.com/osse101/TavernSim_Go/internal/customer"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/sim"
)

// GameHandlers serve the simulation over HTTP. Every mutation goes through
// sim.World.Do.
type GameHandlers struct {
	world *sim.World
}

// NewGameHandlers creates the game handlers
func NewGameHandlers(world *sim.World) *GameHandlers {
	return &GameHandlers{world: world}
}

// do runs fn under the world lock and writes the error response on failure.
// It reports whether the handler should continue.
func (h *GameHandlers) do(w http.ResponseWriter, r *http.Request, opName string, fn func(ctx context.Context, tx sim.Tx) error) bool {
	if err := h.world.Do(r.Context(), fn); err != nil {
		respondServiceError(w, r, opName, err)
		return false
	}
	return true
}

// StateResponse is the full view of a running game
type StateResponse struct {
	Game           domain.GameData           `json:"game"`
	Customers      []domain.CustomerInstance `json:"customers"`
	Offers         []customer.Offer          `json:"offers"`
	ReputationTier string                    `json:"reputationTier"`
	UpgradeCost    int                       `json:"upgradeCost"`
	Multipliers    Multipliers               `json:"multipliers"`
}

// Multipliers are the aggregate effects of active world events
type Multipliers struct {
	Price        float64 `json:"price"`
	CustomerRate float64 `json:"customerRate"`
	Reputation   float64 `json:"reputation"`
}

// HandleGetState returns the whole game
// @Summary Get game state
// @Description Returns the saved game data plus the customers on the floor, counter offers and event multipliers
// @Tags game
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/state [get]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp StateResponse
		ok := h.do(w, r, "Get state", func(_ context.Context, tx sim.Tx) error {
			resp = StateResponse{
				Game:           tx.State.Snapshot(),
				Customers:      tx.Tavern.Customers(),
				Offers:         tx.Tavern.Offers(),
				ReputationTier: tx.State.Catalog().ReputationTier(tx.State.Reputation()),
				UpgradeCost:    tx.State.UpgradeCost(),
				Multipliers: Multipliers{
					Price:        tx.Events.PriceMultiplier(),
					CustomerRate: tx.Events.CustomerRateMultiplier(),
					Reputation:   tx.Events.ReputationMultiplier(),
				},
			}
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, resp)
		}
	}
}

// AdvanceTimeRequest moves the clock by a number of game minutes
type AdvanceTimeRequest struct {
	Minutes int `json:"minutes" validate:"min=1,max=43200"`
}

// HandleAdvanceTime advances the game clock
// @Summary Advance time
// @Tags time
// @Accept json
// @Produce json
// @Param request body AdvanceTimeRequest true "Minutes to advance"
// @Success 200 {object} domain.ClockState
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/time/advance [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleAdvanceTime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdvanceTimeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Advance time"); err != nil {
			return
		}
		var clock domain.ClockState
		ok := h.do(w, r, "Advance time", func(ctx context.Context, tx sim.Tx) error {
			tx.State.AdvanceTime(ctx, req.Minutes)
			clock = tx.State.Clock()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, clock)
		}
	}
}

// TimeControlRequest pauses, resumes or changes the clock speed
type TimeControlRequest struct {
	Paused *bool    `json:"paused"`
	Speed  *float64 `json:"speed" validate:"omitempty,gt=0,lte=10"`
}

// HandleTimeControl updates pause and speed
// @Summary Pause, resume or change clock speed
// @Tags time
// @Accept json
// @Produce json
// @Param request body TimeControlRequest true "Pause flag and speed"
// @Success 200 {object} DataResponse{data=domain.ClockState}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/time/control [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleTimeControl() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TimeControlRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Time control"); err != nil {
			return
		}
		var clock domain.ClockState
		ok := h.do(w, r, "Time control", func(_ context.Context, tx sim.Tx) error {
			if req.Speed != nil {
				if err := tx.State.SetSpeed(*req.Speed); err != nil {
					return err
				}
			}
			if req.Paused != nil {
				tx.State.SetPaused(*req.Paused)
			}
			clock = tx.State.Clock()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, DataResponse{Message: MsgTimeControlSaved, Data: clock})
		}
	}
}

// BattleRequest reports the outcome of a card battle
type BattleRequest struct {
	Won            bool `json:"won"`
	OpponentRating int  `json:"opponentRating" validate:"min=0,max=5000"`
}

// HandleRecordBattle records a battle result
// @Summary Record a card battle
// @Tags game
// @Accept json
// @Produce json
// @Param request body BattleRequest true "Battle outcome"
// @Success 200 {object} DataResponse{data=domain.PlayerProfile}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/battles [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleRecordBattle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BattleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record battle"); err != nil {
			return
		}
		var player domain.PlayerProfile
		ok := h.do(w, r, "Record battle", func(ctx context.Context, tx sim.Tx) error {
			tx.State.RecordBattle(ctx, req.Won, req.OpponentRating)
			player = tx.State.Player()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, DataResponse{Message: MsgBattleRecorded, Data: player})
		}
	}
}

// AutoSaveRequest toggles the auto save setting
type AutoSaveRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// HandleSetAutoSave turns auto save on or off
// @Summary Toggle auto save
// @Tags game
// @Accept json
// @Produce json
// @Param request body AutoSaveRequest true "Auto save flag"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/settings/autosave [put]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleSetAutoSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AutoSaveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set auto save"); err != nil {
			return
		}
		if err := h.world.SetAutoSave(r.Context(), *req.Enabled); err != nil {
			respondServiceError(w, r, "Set auto save", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSettingsUpdated})
	}
}
