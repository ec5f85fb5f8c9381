package handler

import (
	"context"
	"net/http"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/sim"
	"github.com/osse101/TavernSim_Go/internal/tavern"
)

// HandleListCustomers returns the customers waiting on the floor
// @Summary List waiting customers
// @Tags tavern
// @Produce json
// @Success 200 {array} domain.CustomerInstance
// @Router /api/v1/customers [get]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customers []domain.CustomerInstance
		ok := h.do(w, r, "List customers", func(_ context.Context, tx sim.Tx) error {
			customers = tx.Tavern.Customers()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, customers)
		}
	}
}

// HandleSpawnCustomer lets one customer in
// @Summary Spawn a customer
// @Tags tavern
// @Produce json
// @Success 201 {object} domain.CustomerInstance
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/customers [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleSpawnCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c domain.CustomerInstance
		ok := h.do(w, r, "Spawn customer", func(ctx context.Context, tx sim.Tx) error {
			var err error
			c, err = tx.Tavern.SpawnCustomer(ctx)
			return err
		})
		if ok {
			respondJSON(w, http.StatusCreated, c)
		}
	}
}

// ServeRequest sells a potion to a customer. Without a potion the customer
// picks from the counter. Price 0 sells at list price.
type ServeRequest struct {
	PotionID    string   `json:"potionId" validate:"omitempty,identifier,max=64"`
	Price       int      `json:"price" validate:"min=0,max=1000000"`
	ServiceTime *float64 `json:"serviceTime" validate:"omitempty,gte=0"`
}

// HandleServeCustomer serves a waiting customer
// @Summary Serve a customer
// @Tags tavern
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Param request body ServeRequest false "Potion and price"
// @Success 200 {object} tavern.ServeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/customers/{id}/serve [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleServeCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req ServeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Serve customer"); err != nil {
			return
		}

		var res *tavern.ServeResult
		ok = h.do(w, r, "Serve customer", func(ctx context.Context, tx sim.Tx) error {
			if req.PotionID == "" {
				var err error
				res, err = tx.Tavern.AutoServe(ctx, id)
				return err
			}
			out, err := tx.Tavern.ServeCustomer(ctx, tavern.ServeOrder{
				CustomerID:  id,
				PotionID:    req.PotionID,
				Price:       req.Price,
				ServiceTime: req.ServiceTime,
			})
			res = &out
			return err
		})
		if !ok {
			return
		}
		if res == nil {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomerLeft})
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// CraftRequest brews batches of a recipe
type CraftRequest struct {
	RecipeID string `json:"recipeId" validate:"required,identifier,max=64"`
	Batches  int    `json:"batches" validate:"min=1,max=100"`
}

// CraftResponse reports what was brewed
type CraftResponse struct {
	RecipeID string `json:"recipeId"`
	Potions  int    `json:"potions"`
}

// HandleCraftPotion brews potions
// @Summary Craft potions
// @Tags tavern
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Recipe and batches"
// @Success 201 {object} CraftResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/potions/craft [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleCraftPotion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft potion"); err != nil {
			return
		}
		var made int
		ok := h.do(w, r, "Craft potion", func(ctx context.Context, tx sim.Tx) error {
			var err error
			made, err = tx.Tavern.CraftPotion(ctx, req.RecipeID, req.Batches)
			return err
		})
		if ok {
			respondJSON(w, http.StatusCreated, CraftResponse{RecipeID: req.RecipeID, Potions: made})
		}
	}
}

// HireRequest hires a staff member of a role
type HireRequest struct {
	Role string `json:"role" validate:"required,identifier,max=64"`
}

// HandleHireStaff hires staff
// @Summary Hire staff
// @Tags tavern
// @Accept json
// @Produce json
// @Param request body HireRequest true "Staff role"
// @Success 201 {object} domain.StaffMember
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/staff [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleHireStaff() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HireRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Hire staff"); err != nil {
			return
		}
		var member domain.StaffMember
		ok := h.do(w, r, "Hire staff", func(ctx context.Context, tx sim.Tx) error {
			var err error
			member, err = tx.State.HireStaff(ctx, req.Role)
			return err
		})
		if ok {
			respondJSON(w, http.StatusCreated, member)
		}
	}
}

// HandleFireStaff dismisses a staff member
// @Summary Fire staff
// @Tags tavern
// @Produce json
// @Param id path string true "Staff id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/staff/{id} [delete]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleFireStaff() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		ok = h.do(w, r, "Fire staff", func(ctx context.Context, tx sim.Tx) error {
			return tx.State.FireStaff(ctx, id)
		})
		if ok {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStaffFired})
		}
	}
}

// HandleUpgradeTavern buys the next tavern level
// @Summary Upgrade the tavern
// @Tags tavern
// @Produce json
// @Success 200 {object} DataResponse{data=domain.TavernState}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tavern/upgrade [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleUpgradeTavern() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state domain.TavernState
		ok := h.do(w, r, "Upgrade tavern", func(ctx context.Context, tx sim.Tx) error {
			if err := tx.State.UpgradeTavern(ctx); err != nil {
				return err
			}
			state = tx.State.Tavern()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, DataResponse{Message: MsgTavernUpgraded, Data: state})
		}
	}
}
