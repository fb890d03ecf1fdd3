package pool

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/pkg/responses"
	"github.com/propline/proppool/pkg/session"
	"github.com/propline/proppool/pkg/validator"
)

// maxCodeAttempts bounds the generate-and-check loop for invite codes.
const maxCodeAttempts = 5

type PoolController struct {
	repo      PoolRepository
	appConfig *config.Config
	logger    *zap.Logger
}

func NewPoolController(repo PoolRepository, appConfig *config.Config, logger *zap.Logger) *PoolController {
	return &PoolController{
		repo:      repo,
		appConfig: appConfig,
		logger:    logger,
	}
}

// RespondError translates domain errors into the response envelope. Feature
// controllers share it so every handler maps the same error to the same
// status and code.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrPoolNotFound):
		responses.NotFound(c, responses.CodePoolNotFound, "Pool")
	case errors.Is(err, ErrParticipantNotFound):
		responses.NotFound(c, responses.CodeParticipantNotFound, "Participant")
	case errors.Is(err, ErrUnauthorized):
		responses.Unauthorized(c)
	case errors.Is(err, ErrPoolLocked):
		responses.SendError(c, http.StatusConflict, responses.CodePoolLocked, ErrPoolLocked.Error())
	case errors.Is(err, ErrPoolNotOpen):
		responses.SendError(c, http.StatusConflict, responses.CodePoolLocked, ErrPoolNotOpen.Error())
	case errors.Is(err, ErrPoolCompleted):
		responses.SendError(c, http.StatusConflict, responses.CodePoolCompleted, ErrPoolCompleted.Error())
	case errors.Is(err, ErrPoolNotLocked):
		responses.SendError(c, http.StatusConflict, responses.CodePoolNotLocked, ErrPoolNotLocked.Error())
	case errors.Is(err, ErrInvalidTransition):
		responses.SendError(c, http.StatusConflict, responses.CodeInvalidTransition, ErrInvalidTransition.Error())
	case errors.Is(err, ErrNameTaken):
		responses.SendError(c, http.StatusConflict, responses.CodeNameTaken, ErrNameTaken.Error())
	case errors.Is(err, ErrCodeTaken):
		responses.SendError(c, http.StatusConflict, responses.CodeCodeTaken, ErrCodeTaken.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		responses.Internal(c)
	}
}

func (pc *PoolController) fail(c *gin.Context, action string, err error) {
	pc.logger.Error("pool: "+action, zap.Error(err))
	responses.Internal(c)
}

// findPool loads the pool addressed by the :code route param and writes the
// 404 response itself when it does not exist.
func (pc *PoolController) findPool(c *gin.Context) (*Pool, bool) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	pool, err := pc.repo.GetPoolByCode(code)
	if err != nil {
		pc.fail(c, "load pool", err)
		return nil, false
	}
	if pool == nil {
		RespondError(c, pc.logger, ErrPoolNotFound)
		return nil, false
	}

	return pool, true
}

func (pc *PoolController) uniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := NewInviteCode()
		if err != nil {
			return "", err
		}

		taken, err := pc.repo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("could not generate a free invite code")
}

func (pc *PoolController) grantSession(c *gin.Context, poolCode, secret string) {
	err := session.Grant(c, pc.appConfig.Session.Secret, pc.appConfig.Session.TTLHours, poolCode, secret)
	if err != nil {
		pc.logger.Warn("pool: set session cookie", zap.Error(err))
	}
}

// CreatePool godoc
// @Summary Create a new pool
// @Description Creates a pool and enrolls the creator as its captain. The captain secret is returned once and never again.
// @Tags pools
// @Accept json
// @Produce json
// @Param pool body CreatePoolRequest true "Pool details"
// @Success 201 {object} responses.SuccessResponse{data=CreatePoolResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /pools [post]
func (pc *PoolController) CreatePool(c *gin.Context) {
	var req CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	name := SanitizeText(req.Name)
	captainName := SanitizeText(req.CaptainName)
	if name == "" {
		responses.ValidationFailed(c, map[string]string{"name": "name must not be empty"})
		return
	}
	if captainName == "" {
		responses.ValidationFailed(c, map[string]string{"captainName": "captainName must not be empty"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code != "" {
		taken, err := pc.repo.CodeExists(code)
		if err != nil {
			pc.fail(c, "check invite code", err)
			return
		}
		if taken {
			RespondError(c, pc.logger, ErrCodeTaken)
			return
		}
	} else {
		generated, err := pc.uniqueCode()
		if err != nil {
			pc.fail(c, "generate invite code", err)
			return
		}
		code = generated
	}

	captainSecret, err := NewSecret()
	if err != nil {
		pc.fail(c, "generate captain secret", err)
		return
	}

	status := StatusOpen
	if req.Draft {
		status = StatusDraft
	}

	pool := Pool{
		Name:          name,
		Description:   SanitizeText(req.Description),
		BuyIn:         SanitizeText(req.BuyIn),
		Code:          code,
		CaptainName:   captainName,
		CaptainSecret: captainSecret,
		Status:        status,
	}

	err = pc.repo.WithTransaction(func(txRepo PoolRepository) error {
		if err := txRepo.CreatePool(&pool); err != nil {
			return err
		}

		captain := Participant{
			PoolID:   pool.ID,
			Name:     captainName,
			Secret:   captainSecret,
			Status:   ParticipantActive,
			JoinedAt: time.Now(),
		}
		return txRepo.AddParticipant(&captain)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			RespondError(c, pc.logger, ErrCodeTaken)
			return
		}
		pc.fail(c, "create pool", err)
		return
	}

	pc.grantSession(c, pool.Code, captainSecret)

	responses.SendSuccess(c, http.StatusCreated, "Pool created successfully", CreatePoolResponse{
		Pool:          &pool,
		CaptainSecret: captainSecret,
		JoinURL:       pc.appConfig.App.FrontendURL + "/pools/" + pool.Code,
	})
}

// GetPool godoc
// @Summary Get pool details
// @Description Returns the pool with its props and active participants. When the caller presents a valid secret, the viewer section identifies them.
// @Tags pools
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} responses.SuccessResponse{data=PoolDetail}
// @Failure 404 {object} responses.ErrorResponse
// @Router /pools/{code} [get]
func (pc *PoolController) GetPool(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	props, err := pc.repo.ListPropSummaries(pool.ID)
	if err != nil {
		pc.fail(c, "list props", err)
		return
	}

	participants, err := pc.repo.ListParticipants(pool.ID, true)
	if err != nil {
		pc.fail(c, "list participants", err)
		return
	}

	detail := PoolDetail{
		Pool:         pool,
		Props:        props,
		Participants: participants,
	}

	if secret := middleware.PoolSecret(c, pool.Code); secret != "" {
		if viewer, authErr := Authorize(pc.repo, pool, secret); authErr == nil {
			detail.Viewer = &Viewer{
				ParticipantID: viewer.ID,
				Name:          viewer.Name,
				IsCaptain:     IsCaptain(pool, viewer),
			}
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Pool retrieved successfully", detail)
}

// UpdatePool godoc
// @Summary Update pool details
// @Description Captain only. Draft and open pools can be edited; locked and completed pools cannot.
// @Tags pools
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param pool body UpdatePoolRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Pool}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code} [patch]
func (pc *PoolController) UpdatePool(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	if _, err := AuthorizeCaptain(pc.repo, pool, middleware.PoolSecret(c, pool.Code)); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	if err := pool.EnsureEditable(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	var req UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	if req.Name != nil {
		name := SanitizeText(*req.Name)
		if name == "" {
			responses.ValidationFailed(c, map[string]string{"name": "name must not be empty"})
			return
		}
		pool.Name = name
	}
	if req.Description != nil {
		pool.Description = SanitizeText(*req.Description)
	}
	if req.BuyIn != nil {
		pool.BuyIn = SanitizeText(*req.BuyIn)
	}

	if err := pc.repo.UpdatePool(pool); err != nil {
		pc.fail(c, "update pool", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Pool updated successfully", pool)
}

// ChangeStatus godoc
// @Summary Advance the pool lifecycle
// @Description Captain only. Transitions move one step forward: draft to open, open to locked, locked to completed. Anything else is rejected without side effects.
// @Tags pools
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param status body ChangeStatusRequest true "Target status"
// @Success 200 {object} responses.SuccessResponse{data=Pool}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/status [post]
func (pc *PoolController) ChangeStatus(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	if _, err := AuthorizeCaptain(pc.repo, pool, middleware.PoolSecret(c, pool.Code)); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	if !CanTransition(pool.Status, req.Status) {
		RespondError(c, pc.logger, TransitionError(pool.Status))
		return
	}

	applied, err := pc.repo.ChangePoolStatus(pool.ID, pool.Status, req.Status, time.Now())
	if err != nil {
		pc.fail(c, "change pool status", err)
		return
	}
	if !applied {
		// A concurrent request moved the pool first.
		RespondError(c, pc.logger, ErrInvalidTransition)
		return
	}

	updated, err := pc.repo.GetPoolByID(pool.ID)
	if err != nil || updated == nil {
		pc.fail(c, "reload pool", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Pool status updated successfully", updated)
}

// JoinPool godoc
// @Summary Join a pool
// @Description Joins an open pool under a display name that is unique within the pool. The participant secret is returned once and never again.
// @Tags pools
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param participant body JoinPoolRequest true "Display name"
// @Success 201 {object} responses.SuccessResponse{data=JoinPoolResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /pools/{code}/join [post]
func (pc *PoolController) JoinPool(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	var req JoinPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	if err := pool.EnsureOpen(); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	name := SanitizeText(req.Name)
	if name == "" {
		responses.ValidationFailed(c, map[string]string{"name": "name must not be empty"})
		return
	}

	existing, err := pc.repo.GetParticipantByName(pool.ID, name)
	if err != nil {
		pc.fail(c, "check participant name", err)
		return
	}
	if existing != nil {
		RespondError(c, pc.logger, ErrNameTaken)
		return
	}

	secret, err := NewSecret()
	if err != nil {
		pc.fail(c, "generate participant secret", err)
		return
	}

	participant := Participant{
		PoolID:   pool.ID,
		Name:     name,
		Secret:   secret,
		Status:   ParticipantActive,
		JoinedAt: time.Now(),
	}
	if err := pc.repo.AddParticipant(&participant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			RespondError(c, pc.logger, ErrNameTaken)
			return
		}
		pc.fail(c, "add participant", err)
		return
	}

	pc.grantSession(c, pool.Code, secret)

	responses.SendSuccess(c, http.StatusCreated, "Joined pool successfully", JoinPoolResponse{
		Participant: &participant,
		Secret:      secret,
	})
}

// Me godoc
// @Summary Identify the caller
// @Description Resolves the presented secret to a participant in this pool.
// @Tags pools
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} responses.SuccessResponse{data=MeResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/me [get]
func (pc *PoolController) Me(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	participant, err := Authorize(pc.repo, pool, middleware.PoolSecret(c, pool.Code))
	if err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	picksCount, err := pc.repo.CountParticipantPicks(participant.ID)
	if err != nil {
		pc.fail(c, "count picks", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Participant retrieved successfully", MeResponse{
		Participant: participant,
		IsCaptain:   IsCaptain(pool, participant),
		PoolStatus:  pool.Status,
		PicksCount:  picksCount,
	})
}

// RemoveParticipant godoc
// @Summary Remove a participant
// @Description Captain only. The participant is excluded from the leaderboard but their picks are kept.
// @Tags pools
// @Produce json
// @Param code path string true "Invite code"
// @Param participantID path int true "Participant ID"
// @Success 200 {object} responses.SuccessResponse{data=Participant}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/participants/{participantID} [delete]
func (pc *PoolController) RemoveParticipant(c *gin.Context) {
	pool, ok := pc.findPool(c)
	if !ok {
		return
	}

	if _, err := AuthorizeCaptain(pc.repo, pool, middleware.PoolSecret(c, pool.Code)); err != nil {
		RespondError(c, pc.logger, err)
		return
	}

	participantID, err := strconv.ParseUint(c.Param("participantID"), 10, 32)
	if err != nil {
		responses.ValidationFailed(c, map[string]string{"participantID": "participantID must be a positive integer"})
		return
	}

	target, err := pc.repo.GetParticipant(pool.ID, uint(participantID))
	if err != nil {
		pc.fail(c, "load participant", err)
		return
	}
	if target == nil {
		RespondError(c, pc.logger, ErrParticipantNotFound)
		return
	}

	if IsCaptain(pool, target) {
		responses.ValidationFailed(c, map[string]string{"participantID": "the captain cannot be removed"})
		return
	}

	if target.Status != ParticipantRemoved {
		if err := pc.repo.SetParticipantStatus(target.ID, ParticipantRemoved); err != nil {
			pc.fail(c, "remove participant", err)
			return
		}
		target.Status = ParticipantRemoved
	}

	responses.SendSuccess(c, http.StatusOK, "Participant removed successfully", target)
}
