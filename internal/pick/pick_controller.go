package pick

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/pkg/responses"
	"github.com/propline/proppool/pkg/validator"
)

type PickController struct {
	repo   PickRepository
	props  prop.PropRepository
	pools  pool.PoolRepository
	logger *zap.Logger
}

func NewPickController(repo PickRepository, props prop.PropRepository, pools pool.PoolRepository, logger *zap.Logger) *PickController {
	return &PickController{
		repo:   repo,
		props:  props,
		pools:  pools,
		logger: logger,
	}
}

func (pc *PickController) fail(c *gin.Context, action string, err error) {
	pc.logger.Error("pick: "+action, zap.Error(err))
	responses.Internal(c)
}

// participantPool resolves the :code pool and the calling participant in one
// step, writing error responses itself.
func (pc *PickController) participantPool(c *gin.Context) (*pool.Pool, *pool.Participant, bool) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	p, err := pc.pools.GetPoolByCode(code)
	if err != nil {
		pc.fail(c, "load pool", err)
		return nil, nil, false
	}
	if p == nil {
		prop.RespondError(c, pc.logger, pool.ErrPoolNotFound)
		return nil, nil, false
	}

	participant, err := pool.Authorize(pc.pools, p, middleware.PoolSecret(c, p.Code))
	if err != nil {
		prop.RespondError(c, pc.logger, err)
		return nil, nil, false
	}

	return p, participant, true
}

// SubmitPick godoc
// @Summary Submit or change a pick
// @Description Upserts the caller's pick on a prop while the pool is open. A new pick answers 201, an overwrite answers 200. Scoring never runs here.
// @Tags picks
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param pick body SubmitPickRequest true "Prop and selected option"
// @Success 200 {object} responses.SuccessResponse{data=Pick}
// @Success 201 {object} responses.SuccessResponse{data=Pick}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/picks [post]
func (pc *PickController) SubmitPick(c *gin.Context) {
	var req SubmitPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	p, participant, ok := pc.participantPool(c)
	if !ok {
		return
	}

	if err := p.EnsureOpen(); err != nil {
		prop.RespondError(c, pc.logger, err)
		return
	}

	target, err := pc.props.GetProp(p.ID, req.PropID)
	if err != nil {
		pc.fail(c, "load prop", err)
		return
	}
	if target == nil {
		prop.RespondError(c, pc.logger, prop.ErrPropNotFound)
		return
	}

	idx := *req.SelectedOptionIndex
	if !target.ValidOptionIndex(idx) {
		prop.RespondError(c, pc.logger, prop.ErrInvalidOption)
		return
	}

	var saved *Pick
	created := false
	err = pc.repo.WithTransaction(func(txRepo PickRepository) error {
		existing, err := txRepo.GetPick(participant.ID, target.ID)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.SelectedOptionIndex = idx
			if err := txRepo.UpdatePick(existing); err != nil {
				return err
			}
			saved = existing
			return nil
		}

		fresh := &Pick{
			ParticipantID:       participant.ID,
			PropID:              target.ID,
			PoolID:              p.ID,
			SelectedOptionIndex: idx,
		}
		if err := txRepo.CreatePick(fresh); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a create race; land on the overwrite path.
				raced, raceErr := txRepo.GetPick(participant.ID, target.ID)
				if raceErr != nil {
					return raceErr
				}
				if raced == nil {
					return err
				}
				raced.SelectedOptionIndex = idx
				if err := txRepo.UpdatePick(raced); err != nil {
					return err
				}
				saved = raced
				return nil
			}
			return err
		}
		saved = fresh
		created = true
		return nil
	})
	if err != nil {
		pc.fail(c, "save pick", err)
		return
	}

	if created {
		responses.SendSuccess(c, http.StatusCreated, "Pick created successfully", saved)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Pick updated successfully", saved)
}

// MyPicks godoc
// @Summary List the caller's picks
// @Description Returns every pick the calling participant has made in this pool, in prop order.
// @Tags picks
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} responses.SuccessResponse{data=MyPicksResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/picks/mine [get]
func (pc *PickController) MyPicks(c *gin.Context) {
	p, participant, ok := pc.participantPool(c)
	if !ok {
		return
	}

	picks, err := pc.repo.ListByParticipant(p.ID, participant.ID)
	if err != nil {
		pc.fail(c, "list picks", err)
		return
	}
	if picks == nil {
		picks = []Pick{}
	}

	responses.SendSuccess(c, http.StatusOK, "Picks retrieved successfully", MyPicksResponse{Picks: picks})
}
