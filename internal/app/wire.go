//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"onboarding/internal/cache/stockcache"
	"onboarding/internal/gateway/kafka/vendor_notification"
	capacity_get "onboarding/internal/handlers/rest/capacity_get"
	stock_get "onboarding/internal/handlers/rest/stock_get"
	stock_level_put "onboarding/internal/handlers/rest/stock_level_put"
	stock_return_post "onboarding/internal/handlers/rest/stock_return_post"
	stock_transaction_post "onboarding/internal/handlers/rest/stock_transaction_post"
	vendor_slots_get "onboarding/internal/handlers/rest/vendor_slots_get"
	workflow_complete_post "onboarding/internal/handlers/rest/workflow_complete_post"
	workflow_schedule_post "onboarding/internal/handlers/rest/workflow_schedule_post"
	"onboarding/internal/handlers/tasks/stock_projection_rebuild"
	"onboarding/internal/pkg/clock"
	"onboarding/internal/pkg/config"

	equipmentRepo "onboarding/internal/repository/equipment"
	ledgerRepo "onboarding/internal/repository/ledger"
	lockRepo "onboarding/internal/repository/lock"
	partnerRepo "onboarding/internal/repository/partner"
	riderRepo "onboarding/internal/repository/rider"
	vendorRepo "onboarding/internal/repository/vendor"
	capacityService "onboarding/internal/service/capacity"
	eligibilityService "onboarding/internal/service/eligibility"
	orchestratorService "onboarding/internal/service/orchestrator"
	slotsService "onboarding/internal/service/slots"
	stockService "onboarding/internal/service/stock"
	workflowService "onboarding/internal/service/workflow"

	"onboarding/pkg/background"
	"onboarding/pkg/logger"
	"onboarding/pkg/querier"
	"onboarding/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	RebuildInterval   time.Duration
	NotificationTopic string
)

type Application struct {
	ServiceCapacity   ServiceCapacity
	ServiceSlots      ServiceSlots
	ServiceStock      ServiceStock
	ServiceBulk       ServiceBulk
	StockProjection   *stockcache.Cache
	BusinessClock     *clock.Business
	BackgroundWorkers *background.Worker
}

type ServiceCapacity interface {
	capacity_get.Service
}

type ServiceSlots interface {
	vendor_slots_get.Service
}

type ServiceStock interface {
	stock_get.Service
	stock_transaction_post.Service
	stock_level_put.Service
	stock_return_post.Service
}

type ServiceBulk interface {
	workflow_schedule_post.Service
	workflow_complete_post.Service
}

var repositorySet = wire.NewSet(
	provideQuerier,
	provideTxManager,

	provideRiderRepository,
	providePartnerRepository,
	provideVendorRepository,
	provideEquipmentRepository,
	provideLedgerRepository,
	provideLockRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,

		provideBusinessClock,
		provideStockProjection,
		provideNotificationTopic,
		provideVendorNotifier,
		provideRebuildInterval,

		provideWorkflowMachine,
		provideCapacityEvaluator,
		provideSlotAllocator,
		provideStockLedger,
		provideOrchestrator,

		provideStockProjectionRebuildTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCapacity), new(*capacityService.Evaluator)),
		wire.Bind(new(ServiceSlots), new(*slotsService.Allocator)),
		wire.Bind(new(ServiceStock), new(*stockService.Ledger)),
		wire.Bind(new(ServiceBulk), new(*orchestratorService.Orchestrator)),

		wire.Bind(new(stock_projection_rebuild.Service), new(*stockService.Ledger)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EligibilityService *eligibilityService.Eligibility
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-eligibility-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideRiderRepository,

		provideBusinessClock,
		provideWorkflowMachine,
		provideEligibilityService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideVendorRepository(querier *querier.Querier) *vendorRepo.Repository {
	return vendorRepo.New(querier)
}

func provideEquipmentRepository(querier *querier.Querier) *equipmentRepo.Repository {
	return equipmentRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideLockRepository(querier *querier.Querier) *lockRepo.Repository {
	return lockRepo.New(querier)
}

func provideBusinessClock(cfg *config.Config) *clock.Business {
	return clock.New(cfg.Business.UTCOffset)
}

func provideStockProjection(client *redis.Client, cfg *config.Config) *stockcache.Cache {
	return stockcache.New(client, cfg.Redis.StockProjectionTTL)
}

func provideNotificationTopic(cfg *config.Config) NotificationTopic {
	return NotificationTopic(cfg.Kafka.NotificationTopic)
}

func provideVendorNotifier(producer sarama.SyncProducer, topic NotificationTopic) *vendor_notification.Publisher {
	return vendor_notification.New(producer, string(topic))
}

func provideRebuildInterval(cfg *config.Config) RebuildInterval {
	return RebuildInterval(cfg.Tasks.StockProjectionRebuildInterval)
}

func provideWorkflowMachine(businessClock *clock.Business) *workflowService.Machine {
	return workflowService.New(businessClock)
}

func provideCapacityEvaluator(
	partners *partnerRepo.Repository,
	riders *riderRepo.Repository,
) *capacityService.Evaluator {
	return capacityService.New(partners, riders)
}

func provideSlotAllocator(
	vendors *vendorRepo.Repository,
	riders *riderRepo.Repository,
) *slotsService.Allocator {
	return slotsService.New(vendors, riders)
}

func provideStockLedger(
	log logger.Logger,
	items *equipmentRepo.Repository,
	ledger *ledgerRepo.Repository,
	riders *riderRepo.Repository,
	projection *stockcache.Cache,
	locker *lockRepo.Repository,
	txManager *tx.Manager,
) *stockService.Ledger {
	return stockService.New(items, ledger, riders, projection, locker, txManager, log)
}

func provideOrchestrator(
	log logger.Logger,
	cfg *config.Config,
	riders *riderRepo.Repository,
	partners *partnerRepo.Repository,
	capacity *capacityService.Evaluator,
	slots *slotsService.Allocator,
	ledger *stockService.Ledger,
	notifier *vendor_notification.Publisher,
	locker *lockRepo.Repository,
	txManager *tx.Manager,
	machine *workflowService.Machine,
) *orchestratorService.Orchestrator {
	return orchestratorService.New(
		riders,
		partners,
		capacity,
		slots,
		ledger,
		notifier,
		locker,
		txManager,
		machine,
		orchestratorService.Config{
			RiderWriteTimeout: cfg.Bulk.RiderWriteTimeout,
			WriteConcurrency:  cfg.Bulk.WriteConcurrency,
		},
		log,
	)
}

func provideEligibilityService(
	riders *riderRepo.Repository,
	machine *workflowService.Machine,
) *eligibilityService.Eligibility {
	return eligibilityService.New(riders, machine)
}

func provideStockProjectionRebuildTask(
	log logger.Logger,
	stockService stock_projection_rebuild.Service,
	interval RebuildInterval,
) *stock_projection_rebuild.StockProjectionRebuild {
	return stock_projection_rebuild.NewStockProjectionRebuild(log, stockService, time.Duration(interval))
}

func provideTaskList(
	stockProjectionRebuildTask *stock_projection_rebuild.StockProjectionRebuild,
) []background.Task {
	return []background.Task{
		stockProjectionRebuildTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
