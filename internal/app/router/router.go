package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	astronomyhandler "astro_backend/internal/feature/astronomy/transport/handler"
	authhandler "astro_backend/internal/feature/auth/transport/handler"
	favoriteshandler "astro_backend/internal/feature/favorites/transport/handler"
	"astro_backend/internal/platform/http/handler"
	jwtmw "astro_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, astronomy *astronomyhandler.AstronomyHandler,
	favorites *favoriteshandler.FavoritesHandler, verifier jwtmw.TokenVerifier, users jwtmw.UserFinder) *gin.Engine {
	r := gin.Default()

	// WebフロントエンドとモバイルアプリからのCORSを許可
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	// 新規ユーザー登録（トークン発行）
	api.POST("/auth/register", authHandler.Register)
	// ログイン（トークン発行）
	api.POST("/auth/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(verifier, users))
	{
		auth.GET("/auth/me", authHandler.Me)
		auth.GET("/astronomy", astronomy.Get)
		auth.POST("/favorites", favorites.Add)
		auth.GET("/favorites", favorites.List)
		auth.DELETE("/favorites/:id", favorites.Delete)
	}

	return r
}
