package ipgeolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"astro_backend/internal/feature/astronomy/adapters/ipgeolocation/dto"
	"astro_backend/internal/feature/astronomy/domain/entity"
	"astro_backend/internal/feature/astronomy/usecase"
	"astro_backend/internal/shared/ratelimiter"
)

// IPGeoAstronomy はipgeolocation.io外部APIから太陽・月データを取得する
// AstronomyRepository実装です。
type IPGeoAstronomy struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// IPGeoAstronomyがAstronomyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AstronomyRepository = (*IPGeoAstronomy)(nil)

// NewIPGeoAstronomy は指定された設定とHTTPクライアントでIPGeoAstronomyの
// 新しいインスタンスを生成します。limiterはnil可（レート制限なし）。
func NewIPGeoAstronomy(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *IPGeoAstronomy {
	return &IPGeoAstronomy{cfg: cfg, client: client, limiter: limiter}
}

// Fetch はipgeolocation APIから指定座標の天文データを取得し、
// entity.Astronomyとして返します。上流の非2xxはエラーとして伝播します。
func (g *IPGeoAstronomy) Fetch(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
	// 無料プランのクォータを守るため、必要に応じて待機
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("apiKey", g.cfg.APIKey)
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("long", strconv.FormatFloat(long, 'f', -1, 64))

	// URLを生成
	u := fmt.Sprintf("%s/astronomy?%s", g.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("ipgeolocation http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.AstronomyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// ドメインエンティティに変換
	return &entity.Astronomy{
		Location: entity.Location{
			Latitude:  body.Location.Latitude,
			Longitude: body.Location.Longitude,
		},
		Date:                 body.Date,
		CurrentTime:          body.CurrentTime,
		Sunrise:              body.Sunrise,
		Sunset:               body.Sunset,
		SunStatus:            body.SunStatus,
		SolarNoon:            body.SolarNoon,
		DayLength:            body.DayLength,
		SunAltitude:          body.SunAltitude,
		SunAzimuth:           body.SunAzimuth,
		Moonrise:             body.Moonrise,
		Moonset:              body.Moonset,
		MoonStatus:           body.MoonStatus,
		MoonAltitude:         body.MoonAltitude,
		MoonAzimuth:          body.MoonAzimuth,
		MoonDistance:         body.MoonDistance,
		MoonParallacticAngle: body.MoonParallacticAngle,
	}, nil
}
