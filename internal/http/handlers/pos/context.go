package pos

import (
	handlershared "github.com/rajat6235/Robusters-POS-sub001/internal/http/handlers/shared"
	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// getPrincipal reads the authenticated staff identity set by the auth
// middleware. A missing identity ends the request with 401.
func getPrincipal(c *gin.Context) (service.Principal, bool) {
	idValue, exists := c.Get("user_id")
	roleValue, roleExists := c.Get("user_role")
	if !exists || !roleExists {
		respondError(c, response.CodeUnauthorized, "unauthorized", nil)
		return service.Principal{}, false
	}

	userID, ok := idValue.(uint)
	if !ok || userID == 0 {
		respondError(c, response.CodeUnauthorized, "unauthorized", nil)
		return service.Principal{}, false
	}
	role, ok := roleValue.(string)
	if !ok || role == "" {
		respondError(c, response.CodeUnauthorized, "unauthorized", nil)
		return service.Principal{}, false
	}
	return service.Principal{UserID: userID, Role: role}, true
}
