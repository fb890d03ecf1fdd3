package recovery

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/pkg/responses"
	"github.com/propline/proppool/pkg/session"
	"github.com/propline/proppool/pkg/validator"
)

// ErrInvalidToken covers every redemption failure: unknown, expired, used,
// cross-pool. One error, no oracle.
var ErrInvalidToken = errors.New("invalid token")

type RecoveryController struct {
	repo      RecoveryRepository
	pools     pool.PoolRepository
	appConfig *config.Config
	logger    *zap.Logger
}

func NewRecoveryController(repo RecoveryRepository, pools pool.PoolRepository, appConfig *config.Config, logger *zap.Logger) *RecoveryController {
	return &RecoveryController{
		repo:      repo,
		pools:     pools,
		appConfig: appConfig,
		logger:    logger,
	}
}

func (rc *RecoveryController) fail(c *gin.Context, action string, err error) {
	rc.logger.Error("recovery: "+action, zap.Error(err))
	responses.Internal(c)
}

func (rc *RecoveryController) findPool(c *gin.Context) (*pool.Pool, bool) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	p, err := rc.pools.GetPoolByCode(code)
	if err != nil {
		rc.fail(c, "load pool", err)
		return nil, false
	}
	if p == nil {
		pool.RespondError(c, rc.logger, pool.ErrPoolNotFound)
		return nil, false
	}

	return p, true
}

// MintToken godoc
// @Summary Mint a recovery link for a participant
// @Description Captain only. Issues a single-use, time-limited token that exchanges for the participant's secret. Share the returned URL privately.
// @Tags recovery
// @Produce json
// @Param code path string true "Invite code"
// @Param participantID path int true "Participant ID"
// @Success 201 {object} responses.SuccessResponse{data=MintResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security PoolSecret
// @Router /pools/{code}/participants/{participantID}/recovery [post]
func (rc *RecoveryController) MintToken(c *gin.Context) {
	p, ok := rc.findPool(c)
	if !ok {
		return
	}

	if _, err := pool.AuthorizeCaptain(rc.pools, p, middleware.PoolSecret(c, p.Code)); err != nil {
		pool.RespondError(c, rc.logger, err)
		return
	}

	participantID, err := strconv.ParseUint(c.Param("participantID"), 10, 32)
	if err != nil {
		responses.ValidationFailed(c, map[string]string{"participantID": "participantID must be a positive integer"})
		return
	}

	target, err := rc.pools.GetParticipant(p.ID, uint(participantID))
	if err != nil {
		rc.fail(c, "load participant", err)
		return
	}
	if target == nil {
		pool.RespondError(c, rc.logger, pool.ErrParticipantNotFound)
		return
	}
	if target.Status != pool.ParticipantActive {
		responses.ValidationFailed(c, map[string]string{"participantID": "cannot mint recovery for a removed participant"})
		return
	}

	token := RecoveryToken{
		Token:         uuid.NewString(),
		PoolID:        p.ID,
		ParticipantID: target.ID,
		ExpiresAt:     time.Now().Add(time.Duration(rc.appConfig.Recovery.TTLMinutes) * time.Minute),
	}
	if err := rc.repo.CreateToken(&token); err != nil {
		rc.fail(c, "create token", err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Recovery token created successfully", MintResponse{
		Token:       token.Token,
		ExpiresAt:   token.ExpiresAt,
		RecoveryURL: rc.appConfig.App.FrontendURL + "/pools/" + p.Code + "/recover?token=" + token.Token,
	})
}

// Redeem godoc
// @Summary Redeem a recovery token
// @Description Exchanges a valid, unexpired, unused token minted for this pool for the participant's identity and raw secret, and sets the session cookie. Every failure mode answers the same INVALID_TOKEN.
// @Tags recovery
// @Accept json
// @Produce json
// @Param code path string true "Invite code"
// @Param redemption body RedeemRequest true "Recovery token"
// @Success 200 {object} responses.SuccessResponse{data=RedeemResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /pools/{code}/recover [post]
func (rc *RecoveryController) Redeem(c *gin.Context) {
	p, ok := rc.findPool(c)
	if !ok {
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	now := time.Now()
	var participant *pool.Participant
	err := rc.repo.WithTransaction(func(txRepo RecoveryRepository) error {
		if err := txRepo.PurgeExpired(now); err != nil {
			return err
		}

		row, err := txRepo.FindValid(p.ID, req.Token, now)
		if err != nil {
			return err
		}
		if row == nil {
			return ErrInvalidToken
		}

		participant, err = txRepo.GetParticipant(p.ID, row.ParticipantID)
		if err != nil {
			return err
		}
		if participant == nil || participant.Status != pool.ParticipantActive {
			return ErrInvalidToken
		}

		return txRepo.MarkUsed(row.ID, now)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			responses.SendError(c, http.StatusUnauthorized, responses.CodeInvalidToken, ErrInvalidToken.Error())
			return
		}
		rc.fail(c, "redeem token", err)
		return
	}

	if err := session.Grant(c, rc.appConfig.Session.Secret, rc.appConfig.Session.TTLHours, p.Code, participant.Secret); err != nil {
		rc.logger.Warn("recovery: set session cookie", zap.Error(err))
	}

	responses.SendSuccess(c, http.StatusOK, "Access recovered successfully", RedeemResponse{
		PoolCode:    p.Code,
		PoolName:    p.Name,
		Participant: participant,
		Secret:      participant.Secret,
		IsCaptain:   pool.IsCaptain(p, participant),
	})
}
