package score

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/pkg/responses"
	"github.com/propline/proppool/pkg/validator"
)

type ScoreController struct {
	repo   ScoreRepository
	props  prop.PropRepository
	pools  pool.PoolRepository
	logger *zap.Logger
}

func NewScoreController(repo ScoreRepository, props prop.PropRepository, pools pool.PoolRepository, logger *zap.Logger) *ScoreController {
	return &ScoreController{
		repo:   repo,
		props:  props,
		pools:  pools,
		logger: logger,
	}
}

func (sc *ScoreController) fail(c *gin.Context, action string, err error) {
	sc.logger.Error("score: "+action, zap.Error(err))
	responses.Internal(c)
}

// ResolveProp godoc
// @Summary Resolve a prop and score its picks
// @Description Captain only, pool must be locked. Sets the correct option, overwrites PointsEarned on every pick of the prop and recomputes affected totals in one transaction. Re-resolving requires overwrite. Pool status never changes here.
// @Tags scoring
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param propID path int true "Prop ID"
// @Param resolution body ResolveRequest true "Correct option"
// @Success 200 {object} responses.SuccessResponse{data=ResolveResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/props/{propID}/resolve [post]
func (sc *ScoreController) ResolveProp(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	p, err := sc.pools.GetPoolByCode(code)
	if err != nil {
		sc.fail(c, "load pool", err)
		return
	}
	if p == nil {
		prop.RespondError(c, sc.logger, pool.ErrPoolNotFound)
		return
	}

	if _, err := pool.AuthorizeCaptain(sc.pools, p, middleware.PoolSecret(c, p.Code)); err != nil {
		prop.RespondError(c, sc.logger, err)
		return
	}

	if err := p.EnsureLocked(); err != nil {
		prop.RespondError(c, sc.logger, err)
		return
	}

	propID, err := strconv.ParseUint(c.Param("propID"), 10, 32)
	if err != nil {
		responses.ValidationFailed(c, map[string]string{"propID": "propID must be a positive integer"})
		return
	}

	target, err := sc.props.GetProp(p.ID, uint(propID))
	if err != nil {
		sc.fail(c, "load prop", err)
		return
	}
	if target == nil {
		prop.RespondError(c, sc.logger, prop.ErrPropNotFound)
		return
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	correctIndex := *req.CorrectOptionIndex
	if !target.ValidOptionIndex(correctIndex) {
		prop.RespondError(c, sc.logger, prop.ErrInvalidOption)
		return
	}

	if target.Resolved() && !req.Overwrite {
		prop.RespondError(c, sc.logger, prop.ErrAlreadyResolved)
		return
	}

	now := time.Now()
	var results []ParticipantResult
	err = sc.repo.WithTransaction(func(txRepo ScoreRepository) error {
		if err := txRepo.MarkResolved(target.ID, correctIndex, now); err != nil {
			return err
		}
		if err := txRepo.ScorePicks(target.ID, correctIndex, target.PointValue, now); err != nil {
			return err
		}
		if err := txRepo.RecomputeTotals(target.ID, now); err != nil {
			return err
		}

		var err error
		results, err = txRepo.Breakdown(target.ID)
		return err
	})
	if err != nil {
		sc.fail(c, "resolve prop", err)
		return
	}

	target.CorrectOptionIndex = &correctIndex
	target.ResolvedAt = &now
	if results == nil {
		results = []ParticipantResult{}
	}

	responses.SendSuccess(c, http.StatusOK, "Prop resolved successfully", ResolveResponse{
		Prop:       target,
		PoolStatus: p.Status,
		Results:    results,
	})
}
