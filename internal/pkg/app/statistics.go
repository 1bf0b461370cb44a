package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/blog-platform/pkg/statistics"
)

// NewStatisticsMW pushes a record of every API request to the statistics
// pipeline. A push failure is logged and never fails the request.
func NewStatisticsMW(stat *statistics.KafkaStatistics, logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if strings.HasPrefix(ctx.Path(), "/api/statistics") {
			return ctx.Next()
		}

		headers := ctx.GetReqHeaders()

		headersStr := ""
		for key, header := range headers {
			headersStr += key + ": " + strings.Join(header, ", ") + "\r\n"
		}

		req := statistics.Request{
			Method:  ctx.Method(),
			URL:     ctx.OriginalURL(),
			Body:    string(ctx.Body()),
			Headers: headersStr,
		}

		err := stat.Push(ctx.Context(), req)
		if err != nil {
			logger.Error("push request statistics", slog.String("error", err.Error()))
		}

		return ctx.Next()
	}
}
