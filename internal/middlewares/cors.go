package middlewares

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Aadi2k05/blogging-web/internal/config"
)

// CORS 构造跨域中间件：未配置来源白名单时放行所有来源（前后端分离部署的默认形态）。
func CORS(cfg config.Config) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		conf.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		conf.AllowAllOrigins = true
	}
	conf.AllowHeaders = append(conf.AllowHeaders, "X-Request-Id")
	return cors.New(conf)
}
