package prop

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/pkg/responses"
	"github.com/propline/proppool/pkg/validator"
)

var (
	ErrPropNotFound    = errors.New("prop not found")
	ErrAlreadyResolved = errors.New("prop is already resolved")
	ErrInvalidOption   = errors.New("selected option index is out of range")
)

type PropController struct {
	repo   PropRepository
	pools  pool.PoolRepository
	logger *zap.Logger
}

func NewPropController(repo PropRepository, pools pool.PoolRepository, logger *zap.Logger) *PropController {
	return &PropController{
		repo:   repo,
		pools:  pools,
		logger: logger,
	}
}

// RespondError translates prop domain errors and defers everything else to
// the pool package's mapping.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrPropNotFound):
		responses.NotFound(c, responses.CodePropNotFound, "Prop")
	case errors.Is(err, ErrAlreadyResolved):
		responses.SendError(c, http.StatusConflict, responses.CodeAlreadyResolved, ErrAlreadyResolved.Error())
	case errors.Is(err, ErrInvalidOption):
		responses.SendError(c, http.StatusBadRequest, responses.CodeInvalidOption, ErrInvalidOption.Error())
	default:
		pool.RespondError(c, logger, err)
	}
}

func (pc *PropController) fail(c *gin.Context, action string, err error) {
	pc.logger.Error("prop: "+action, zap.Error(err))
	responses.Internal(c)
}

// captainPool loads the pool from the :code param and verifies the caller is
// its captain. Error responses are written here.
func (pc *PropController) captainPool(c *gin.Context) (*pool.Pool, bool) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	p, err := pc.pools.GetPoolByCode(code)
	if err != nil {
		pc.fail(c, "load pool", err)
		return nil, false
	}
	if p == nil {
		RespondError(c, pc.logger, pool.ErrPoolNotFound)
		return nil, false
	}

	if _, err := pool.AuthorizeCaptain(pc.pools, p, middleware.PoolSecret(c, p.Code)); err != nil {
		RespondError(c, pc.logger, err)
		return nil, false
	}

	return p, true
}

// findProp loads the prop addressed by the :propID route param within the
// given pool, writing the 400/404 responses itself.
func (pc *PropController) findProp(c *gin.Context, poolID uint) (*Prop, bool) {
	propID, err := strconv.ParseUint(c.Param("propID"), 10, 32)
	if err != nil {
		responses.ValidationFailed(c, map[string]string{"propID": "propID must be a positive integer"})
		return nil, false
	}

	prop, err := pc.repo.GetProp(poolID, uint(propID))
	if err != nil {
		pc.fail(c, "load prop", err)
		return nil, false
	}
	if prop == nil {
		RespondError(c, pc.logger, ErrPropNotFound)
		return nil, false
	}

	return prop, true
}

// cleanOptions sanitizes each option and rejects entries that sanitize to
// nothing. The bool reports success; the response is already written on
// failure.
func cleanOptions(c *gin.Context, raw []string) ([]string, bool) {
	options := pool.SanitizeAll(raw)
	for _, option := range options {
		if option == "" {
			responses.ValidationFailed(c, map[string]string{"options": "options must not be empty"})
			return nil, false
		}
	}
	return options, true
}

// AddProp godoc
// @Summary Add a prop
// @Description Captain only. Props can be added while the pool is draft or open. Display order is assigned after the existing props.
// @Tags props
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param prop body CreatePropRequest true "Prop details"
// @Success 201 {object} responses.SuccessResponse{data=Prop}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/props [post]
func (pc *PropController) AddProp(c *gin.Context) {
	p, ok := pc.captainPool(c)
	if !ok {
		return
	}

	if err := p.EnsureEditable(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	var req CreatePropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	question := pool.SanitizeText(req.Question)
	if question == "" {
		responses.ValidationFailed(c, map[string]string{"question": "question must not be empty"})
		return
	}

	options, ok := cleanOptions(c, req.Options)
	if !ok {
		return
	}

	pointValue := 1
	if req.PointValue != nil {
		pointValue = *req.PointValue
	}

	order, err := pc.repo.NextDisplayOrder(p.ID)
	if err != nil {
		pc.fail(c, "assign display order", err)
		return
	}

	prop := Prop{
		PoolID:       p.ID,
		Question:     question,
		Options:      options,
		PointValue:   pointValue,
		Category:     pool.SanitizeText(req.Category),
		DisplayOrder: order,
	}
	if err := pc.repo.CreateProp(&prop); err != nil {
		pc.fail(c, "create prop", err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Prop created successfully", prop)
}

// UpdateProp godoc
// @Summary Edit a prop
// @Description Captain only, while the pool is draft or open. Shrinking the option list below an index some pick already references is rejected.
// @Tags props
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param propID path int true "Prop ID"
// @Param prop body UpdatePropRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Prop}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/props/{propID} [patch]
func (pc *PropController) UpdateProp(c *gin.Context) {
	p, ok := pc.captainPool(c)
	if !ok {
		return
	}

	if err := p.EnsureEditable(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	prop, ok := pc.findProp(c, p.ID)
	if !ok {
		return
	}

	var req UpdatePropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	if req.Question != nil {
		question := pool.SanitizeText(*req.Question)
		if question == "" {
			responses.ValidationFailed(c, map[string]string{"question": "question must not be empty"})
			return
		}
		prop.Question = question
	}

	if req.Options != nil {
		// An explicit empty list slips past omitempty binding.
		if len(req.Options) < 2 {
			responses.ValidationFailed(c, map[string]string{"options": "options must have at least 2 items"})
			return
		}
		options, ok := cleanOptions(c, req.Options)
		if !ok {
			return
		}

		if len(options) < len(prop.Options) {
			stranded, err := pc.repo.CountPicksAtOrAbove(prop.ID, len(options))
			if err != nil {
				pc.fail(c, "check picks against new options", err)
				return
			}
			if stranded > 0 {
				responses.ValidationFailed(c, map[string]string{
					"options": "cannot remove options that existing picks reference",
				})
				return
			}
		}
		prop.Options = options
	}

	if req.PointValue != nil {
		prop.PointValue = *req.PointValue
	}
	if req.Category != nil {
		prop.Category = pool.SanitizeText(*req.Category)
	}

	if err := pc.repo.UpdateProp(prop); err != nil {
		pc.fail(c, "update prop", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Prop updated successfully", prop)
}

// ReorderProps godoc
// @Summary Reorder props
// @Description Captain only, while the pool is draft or open. The request must list every prop in the pool exactly once; display order follows the list.
// @Tags props
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param order body ReorderRequest true "Prop IDs in the desired order"
// @Success 200 {object} responses.SuccessResponse{data=[]Prop}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/props [patch]
func (pc *PropController) ReorderProps(c *gin.Context) {
	p, ok := pc.captainPool(c)
	if !ok {
		return
	}

	if err := p.EnsureEditable(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	props, err := pc.repo.ListProps(p.ID)
	if err != nil {
		pc.fail(c, "list props", err)
		return
	}

	if len(req.PropIDs) != len(props) {
		responses.ValidationFailed(c, map[string]string{"prop_ids": "prop_ids must list every prop in the pool exactly once"})
		return
	}

	known := make(map[uint]bool, len(props))
	for _, existing := range props {
		known[existing.ID] = true
	}
	seen := make(map[uint]bool, len(req.PropIDs))
	for _, id := range req.PropIDs {
		if !known[id] || seen[id] {
			responses.ValidationFailed(c, map[string]string{"prop_ids": "prop_ids must list every prop in the pool exactly once"})
			return
		}
		seen[id] = true
	}

	err = pc.repo.WithTransaction(func(txRepo PropRepository) error {
		for position, id := range req.PropIDs {
			if err := txRepo.SetDisplayOrder(p.ID, id, position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		pc.fail(c, "reorder props", err)
		return
	}

	reordered, err := pc.repo.ListProps(p.ID)
	if err != nil {
		pc.fail(c, "list props", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Props reordered successfully", reordered)
}

// DeleteProp godoc
// @Summary Delete a prop
// @Description Captain only, while the pool is draft or open. Picks on the prop are deleted with it.
// @Tags props
// @Produce json
// @Param code path string true "Invite code"
// @Param propID path int true "Prop ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/props/{propID} [delete]
func (pc *PropController) DeleteProp(c *gin.Context) {
	p, ok := pc.captainPool(c)
	if !ok {
		return
	}

	if err := p.EnsureEditable(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	prop, ok := pc.findProp(c, p.ID)
	if !ok {
		return
	}

	err := pc.repo.WithTransaction(func(txRepo PropRepository) error {
		return txRepo.DeletePropWithPicks(prop)
	})
	if err != nil {
		pc.fail(c, "delete prop", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Prop deleted successfully", nil)
}
