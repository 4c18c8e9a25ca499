package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/rest/model"
)

type CheckStatusForm struct {
	Edition string `form:"edition"`
}

// CheckStatus godoc
// @Summary      Check server status
// @Description  Probe the monitored server immediately, without affecting the periodic monitor
// @Tags         status
// @Produce      json
// @Param        edition  query  string  false  "Protocol edition to probe (auto, java, bedrock)"
// @Success      200 {object} model.ServerStatus
// @Router       /status [get]
func (a *API) CheckStatus(c *gin.Context) {
	var form CheckStatusForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	mode := a.settings.Mode
	if form.Edition != "" {
		parsed, err := protocol.ParseMode(form.Edition)
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
			return
		}
		mode = parsed
	}

	ucRequest := checkstatus.NewRequest(mode)
	serverStatus := a.container.CheckStatus.Execute(c, ucRequest)

	c.JSON(http.StatusOK, model.NewServerStatusFromDomain(a.settings.Target, serverStatus))
}
