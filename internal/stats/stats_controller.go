package stats

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/pkg/responses"
)

type StatsController struct {
	pools  pool.PoolRepository
	props  prop.PropRepository
	picks  pick.PickRepository
	logger *zap.Logger
}

func NewStatsController(pools pool.PoolRepository, props prop.PropRepository, picks pick.PickRepository, logger *zap.Logger) *StatsController {
	return &StatsController{
		pools:  pools,
		props:  props,
		picks:  picks,
		logger: logger,
	}
}

func (sc *StatsController) fail(c *gin.Context, action string, err error) {
	sc.logger.Error("stats: "+action, zap.Error(err))
	responses.Internal(c)
}

// Leaderboard godoc
// @Summary Pool leaderboard and pick statistics
// @Description Public. Rankings sorted by points then name, per-prop pick breakdowns and the mostAgreed / mostDivisive / biggestUpset summary.
// @Tags stats
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} responses.SuccessResponse{data=Leaderboard}
// @Failure 404 {object} responses.ErrorResponse
// @Router /pools/{code}/leaderboard [get]
func (sc *StatsController) Leaderboard(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	p, err := sc.pools.GetPoolByCode(code)
	if err != nil {
		sc.fail(c, "load pool", err)
		return
	}
	if p == nil {
		pool.RespondError(c, sc.logger, pool.ErrPoolNotFound)
		return
	}

	props, err := sc.props.ListProps(p.ID)
	if err != nil {
		sc.fail(c, "list props", err)
		return
	}

	participants, err := sc.pools.ListParticipants(p.ID, false)
	if err != nil {
		sc.fail(c, "list participants", err)
		return
	}

	picks, err := sc.picks.ListByPool(p.ID)
	if err != nil {
		sc.fail(c, "list picks", err)
		return
	}

	board := Compute(p, props, participants, picks)
	responses.SendSuccess(c, http.StatusOK, "Leaderboard retrieved successfully", board)
}
