package fiber

import (
	"context"
	"errors"
	"net/http"

	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/usecase"
	"castboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GetOverviewUseCase interface {
	Execute(ctx context.Context, in usecase.GetOverviewInput) (*domain.OverviewReport, error)
}

type GetAudienceUseCase interface {
	Execute(ctx context.Context, in usecase.GetAudienceInput) (*domain.AudienceReport, error)
}

type GetPerformanceUseCase interface {
	Execute(ctx context.Context, in usecase.GetPerformanceInput) (*domain.PerformanceReport, error)
}

type AnalyticsHandler struct {
	overviewUC    GetOverviewUseCase
	audienceUC    GetAudienceUseCase
	performanceUC GetPerformanceUseCase
}

func NewAnalyticsHandler(overview GetOverviewUseCase, audience GetAudienceUseCase, performance GetPerformanceUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		overviewUC:    overview,
		audienceUC:    audience,
		performanceUC: performance,
	}
}

// GetOverview godoc
// @Summary Overview statistics and daily series
// @Description Summary stats plus a zero-filled daily time series for the selected range
// @Tags Analytics
// @Produce json
// @Param range query string true "Time range: 7d | 30d | 90d"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	in := usecase.GetOverviewInput{
		UserID: middleware.UserID(c),
		Range:  domain.Range(c.Query("range", string(domain.Range7d))),
	}

	report, err := h.overviewUC.Execute(c.UserContext(), in)
	if err != nil {
		return analyticsError(c, err)
	}

	resp := OverviewResponse{
		State: string(report.State),
		Range: string(report.Range),
	}
	if report.State == domain.ReportPopulated {
		stats := toStatsResponse(report.Stats)
		resp.Stats = &stats
		resp.Series = make([]TimeSeriesPointResponse, 0, len(report.Series))
		for _, p := range report.Series {
			resp.Series = append(resp.Series, TimeSeriesPointResponse{
				Bucket:          p.BucketLabel,
				Plays:           p.Plays,
				UniqueListeners: p.UniqueListeners,
			})
		}
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetAudience godoc
// @Summary Audience insights
// @Description Engagement segments, top countries, device breakdown and hour-of-day activity
// @Tags Analytics
// @Produce json
// @Param range query string false "Optional time range: 7d | 30d | 90d (default: full history)"
// @Success 200 {object} AudienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/audience [get]
func (h *AnalyticsHandler) GetAudience(c *fiber.Ctx) error {
	in := usecase.GetAudienceInput{
		UserID: middleware.UserID(c),
		Range:  domain.Range(c.Query("range", "")),
	}

	report, err := h.audienceUC.Execute(c.UserContext(), in)
	if err != nil {
		return analyticsError(c, err)
	}

	resp := AudienceResponse{State: string(report.State)}
	for _, s := range report.Segments {
		resp.Segments = append(resp.Segments, EngagementSegmentResponse{Name: s.Name, Sessions: s.Sessions})
	}
	for _, cc := range report.Countries {
		resp.Countries = append(resp.Countries, CountryResponse{Country: cc.Country, Plays: cc.Plays})
	}
	for _, d := range report.Devices {
		resp.Devices = append(resp.Devices, DeviceResponse{Device: d.Device, Count: d.Count})
	}
	for _, hr := range report.HourOfDay {
		resp.HourOfDay = append(resp.HourOfDay, HourActivityResponse{Hour: hr.Hour, Plays: hr.Plays})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetPerformance godoc
// @Summary Per-episode performance
// @Description Episode statistics ranked by total plays with week-over-week trend
// @Tags Analytics
// @Produce json
// @Success 200 {object} PerformanceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) GetPerformance(c *fiber.Ctx) error {
	in := usecase.GetPerformanceInput{UserID: middleware.UserID(c)}

	report, err := h.performanceUC.Execute(c.UserContext(), in)
	if err != nil {
		return analyticsError(c, err)
	}

	resp := PerformanceResponse{State: string(report.State)}
	for _, ep := range report.Episodes {
		resp.Episodes = append(resp.Episodes, EpisodeStatsResponse{
			EpisodeID: ep.EpisodeID,
			Title:     ep.Title,
			Rank:      ep.Rank,
			Trend:     string(ep.Trend),
			Stats:     toStatsResponse(ep.Stats),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func analyticsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_time_range",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrMissingUser):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: "unauthorized",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toStatsResponse(s domain.SummaryStats) SummaryStatsResponse {
	return SummaryStatsResponse{
		TotalPlays:            s.TotalPlays,
		UniqueListeners:       s.UniqueListeners,
		AverageListenTime:     s.AverageListenTime,
		GrowthPercent:         s.GrowthPercent,
		TotalShares:           s.TotalShares,
		TotalDownloads:        s.TotalDownloads,
		CompletionRatePercent: s.CompletionRatePercent,
	}
}
