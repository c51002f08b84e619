package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"astro_backend/internal/app/di"
	"astro_backend/internal/app/router"
	astronomyhandler "astro_backend/internal/feature/astronomy/transport/handler"
	astronomyusecase "astro_backend/internal/feature/astronomy/usecase"
	authadapters "astro_backend/internal/feature/auth/adapters"
	authhandler "astro_backend/internal/feature/auth/transport/handler"
	authusecase "astro_backend/internal/feature/auth/usecase"
	favoritesadapters "astro_backend/internal/feature/favorites/adapters"
	favoriteshandler "astro_backend/internal/feature/favorites/transport/handler"
	favoritesusecase "astro_backend/internal/feature/favorites/usecase"
	infradb "astro_backend/internal/platform/db"
	jwtmw "astro_backend/internal/platform/jwt"
	infraredis "astro_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, authusecase.SessionTTL)
	verifier := jwtmw.NewVerifier(secret)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	favoriteRepo := favoritesadapters.NewFavoritePostgres(db)
	astronomyRepo := di.NewAstronomyRepository(rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	favoritesUC := favoritesusecase.NewFavoritesUsecase(favoriteRepo)
	astronomyUC := astronomyusecase.NewAstronomyUsecase(astronomyRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	favoritesH := favoriteshandler.NewFavoritesHandler(favoritesUC)
	astronomyH := astronomyhandler.NewAstronomyHandler(astronomyUC)

	// ルータ生成
	router := router.NewRouter(authH, astronomyH, favoritesH, verifier, userRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
