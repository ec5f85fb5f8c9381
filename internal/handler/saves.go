package handler

import (
	"context"
	"net/http"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/sim"
)

// SaveRequest writes a slot. An empty description is generated from the game.
type SaveRequest struct {
	Description string `json:"description" validate:"max=200"`
}

// ImportRequest carries an exported slot
type ImportRequest struct {
	Data string `json:"data" validate:"required,max=1048576"`
}

// ExportResponse carries one slot as JSON text
type ExportResponse struct {
	Slot int    `json:"slot"`
	Data string `json:"data"`
}

// SlotResponse reports which slot an operation touched
type SlotResponse struct {
	Message string `json:"message"`
	Slot    int    `json:"slot"`
}

func (h *GameHandlers) slots(w http.ResponseWriter, r *http.Request) (int, bool) {
	var n int
	ok := h.do(w, r, "Read slot count", func(_ context.Context, tx sim.Tx) error {
		n = tx.Saves.Slots()
		return nil
	})
	return n, ok
}

func (h *GameHandlers) slotParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, ok := h.slots(w, r)
	if !ok {
		return 0, false
	}
	return GetSlotParam(r, w, n)
}

// HandleListSaves lists every slot
// @Summary List save slots
// @Tags saves
// @Produce json
// @Success 200 {array} domain.SlotInfo
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves [get]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleListSaves() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var slots []domain.SlotInfo
		ok := h.do(w, r, "List saves", func(ctx context.Context, tx sim.Tx) error {
			var err error
			slots, err = tx.Saves.List(ctx)
			return err
		})
		if ok {
			respondJSON(w, http.StatusOK, slots)
		}
	}
}

// HandleSave writes the game to a slot
// @Summary Save to a slot
// @Tags saves
// @Accept json
// @Produce json
// @Param slot path int true "Slot index"
// @Param request body SaveRequest false "Optional description"
// @Success 200 {object} SlotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves/{slot} [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := h.slotParam(w, r)
		if !ok {
			return
		}
		var req SaveRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Save"); err != nil {
				return
			}
		}
		h.boolOp(w, r, slot, MsgSaved, ErrMsgSaveFailed, http.StatusInternalServerError, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.Save(ctx, slot, req.Description)
		})
	}
}

// HandleLoad restores the game from a slot
// @Summary Load a slot
// @Tags saves
// @Produce json
// @Param slot path int true "Slot index"
// @Success 200 {object} SlotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/saves/{slot}/load [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleLoad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := h.slotParam(w, r)
		if !ok {
			return
		}
		h.boolOp(w, r, slot, MsgLoaded, ErrMsgLoadFailed, http.StatusUnprocessableEntity, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.Load(ctx, slot)
		})
	}
}

// HandleDeleteSave empties a slot
// @Summary Delete a slot
// @Tags saves
// @Produce json
// @Param slot path int true "Slot index"
// @Success 200 {object} SlotResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/saves/{slot} [delete]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleDeleteSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := h.slotParam(w, r)
		if !ok {
			return
		}
		h.boolOp(w, r, slot, MsgDeleted, ErrMsgDeleteFailed, http.StatusInternalServerError, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.Delete(ctx, slot)
		})
	}
}

// HandleQuickSave saves to the current slot
// @Summary Quick save
// @Tags saves
// @Produce json
// @Success 200 {object} SlotResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves/quicksave [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleQuickSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.currentSlotOp(w, r, MsgSaved, ErrMsgSaveFailed, http.StatusInternalServerError, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.QuickSave(ctx)
		})
	}
}

// HandleQuickLoad loads the current slot
// @Summary Quick load
// @Tags saves
// @Produce json
// @Success 200 {object} SlotResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/saves/quickload [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleQuickLoad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.currentSlotOp(w, r, MsgLoaded, ErrMsgLoadFailed, http.StatusUnprocessableEntity, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.QuickLoad(ctx)
		})
	}
}

// HandleExport returns one slot as JSON text
// @Summary Export a slot
// @Tags saves
// @Produce json
// @Param slot path int true "Slot index"
// @Success 200 {object} ExportResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/saves/{slot}/export [get]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := h.slotParam(w, r)
		if !ok {
			return
		}
		var data string
		ok = h.do(w, r, "Export save", func(ctx context.Context, tx sim.Tx) error {
			var err error
			data, err = tx.Saves.Export(ctx, slot)
			return err
		})
		if ok {
			respondJSON(w, http.StatusOK, ExportResponse{Slot: slot, Data: data})
		}
	}
}

// HandleImport writes an exported slot after validating it
// @Summary Import a slot
// @Tags saves
// @Accept json
// @Produce json
// @Param slot path int true "Slot index"
// @Param request body ImportRequest true "Exported slot JSON"
// @Success 200 {object} SlotResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/saves/{slot}/import [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := h.slotParam(w, r)
		if !ok {
			return
		}
		var req ImportRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import save"); err != nil {
			return
		}
		h.boolOp(w, r, slot, MsgImported, ErrMsgImportFailed, http.StatusUnprocessableEntity, func(ctx context.Context, tx sim.Tx) bool {
			return tx.Saves.Import(ctx, slot, req.Data)
		})
	}
}

// boolOp runs a save manager operation that reports failure as false; the
// reason has already been logged and published by the manager.
func (h *GameHandlers) boolOp(w http.ResponseWriter, r *http.Request, slot int, okMsg, failMsg string, failStatus int, fn func(ctx context.Context, tx sim.Tx) bool) {
	var success bool
	ok := h.do(w, r, okMsg, func(ctx context.Context, tx sim.Tx) error {
		success = fn(ctx, tx)
		return nil
	})
	if !ok {
		return
	}
	if !success {
		respondError(w, failStatus, failMsg)
		return
	}
	respondJSON(w, http.StatusOK, SlotResponse{Message: okMsg, Slot: slot})
}

func (h *GameHandlers) currentSlotOp(w http.ResponseWriter, r *http.Request, okMsg, failMsg string, failStatus int, fn func(ctx context.Context, tx sim.Tx) bool) {
	var (
		success bool
		slot    int
	)
	ok := h.do(w, r, okMsg, func(ctx context.Context, tx sim.Tx) error {
		slot = tx.Saves.CurrentSlot(ctx)
		success = fn(ctx, tx)
		return nil
	})
	if !ok {
		return
	}
	if !success {
		respondError(w, failStatus, failMsg)
		return
	}
	respondJSON(w, http.StatusOK, SlotResponse{Message: okMsg, Slot: slot})
}
