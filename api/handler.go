package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/service"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	compare := responses.CompareResponse{
		RunId:   uuid.NewString(),
		Results: make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms())),
	}
	for _, algorithm := range schedulers.Algorithms() {
		response, err := service.Run(algorithm, request, s.config, s.logger)
		if err != nil {
			return s.fail(ctx, algorithm, err)
		}
		response.RunId = compare.RunId
		compare.Results[algorithm] = response
	}
	return ctx.JSON(compare)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok", "algorithms": schedulers.Algorithms()})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	response, err := service.Run(algorithm, request, s.config, s.logger)
	if err != nil {
		return s.fail(ctx, algorithm, err)
	}
	response.RunId = uuid.NewString()
	s.logger.Info("schedule computed", "algorithm", algorithm, "run_id", response.RunId, "processes", len(request.Jobs))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, algorithm string, err error) error {
	if service.IsConfigurationError(err) {
		s.logger.Warn("rejected schedule request", "algorithm", algorithm, "error", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("schedule failed", "algorithm", algorithm, "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
