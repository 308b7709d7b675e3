package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"onboarding/internal/entities"
	"onboarding/internal/service/slots"
	"onboarding/internal/service/workflow"
	"onboarding/pkg/logger"
)

const (
	operationSchedule = "schedule"
	operationComplete = "complete"
)

type Config struct {
	RiderWriteTimeout time.Duration
	WriteConcurrency  int
}

// Orchestrator проводит батч райдеров через гейты и применяет переходы по одному.
//
// Гейты считаются один раз на батч под advisory lock'ами внешней read committed
// транзакции. Каждая запись райдера идет в своей транзакции (RequiresNew), поэтому
// ошибка одного райдера не откатывает остальных.
type Orchestrator struct {
	riders    RiderRepository
	partners  PartnerRepository
	capacity  CapacityEvaluator
	slots     SlotAllocator
	ledger    StockLedger
	notifier  Notifier
	locker    Locker
	txManager TxManager
	machine   *workflow.Machine
	cfg       Config
	logger    orchestratorLogger
}

func New(
	riders RiderRepository,
	partners PartnerRepository,
	capacity CapacityEvaluator,
	slots SlotAllocator,
	ledger StockLedger,
	notifier Notifier,
	locker Locker,
	txManager TxManager,
	machine *workflow.Machine,
	cfg Config,
	logger orchestratorLogger,
) *Orchestrator {
	return &Orchestrator{
		riders:    riders,
		partners:  partners,
		capacity:  capacity,
		slots:     slots,
		ledger:    ledger,
		notifier:  notifier,
		locker:    locker,
		txManager: txManager,
		machine:   machine,
		cfg:       cfg,
		logger:    logger,
	}
}

type candidate struct {
	rider     *entities.Rider
	partnerID *int64
}

type transitionCheck func(rider *entities.Rider, w entities.WorkflowType) error

func (o *Orchestrator) Schedule(ctx context.Context, req entities.BulkSchedule) (*entities.BulkOutcome, error) {
	start := time.Now()

	ids, err := validateBatch(req.Workflow, req.RiderIDs)
	if err != nil {
		return nil, err
	}

	details := workflow.ScheduleDetails{
		Date:      req.Date,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		Location:  req.Location,
		VendorID:  req.VendorID,
		Actor:     req.Actor,
		Notes:     req.Notes,
	}
	if err = workflow.ValidateSchedule(details); err != nil {
		return nil, err
	}

	var locks []string
	switch {
	case req.Workflow == entities.WorkflowInstallation && req.VendorID == nil:
		return nil, ErrMissingVendor
	case req.Workflow == entities.WorkflowInstallation:
		locks = append(locks, entities.VendorDayLockKey(*req.VendorID, req.Date))
	case len(req.SlotCounts) > 0:
		return nil, ErrUnexpectedSlots
	}

	outcome := &entities.BulkOutcome{Workflow: req.Workflow}
	var notifications []entities.VendorNotification

	err = o.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		approved, err := o.admit(ctx, outcome, req.Workflow, ids, o.machine.CanSchedule, locks)
		if err != nil {
			return err
		}
		if len(approved) == 0 {
			return nil
		}

		var slots []entities.Slot
		switch req.Workflow {
		case entities.WorkflowInstallation:
			counts := manualCounts(req.SlotCounts, len(ids), len(approved))
			plan, err := o.slots.Reserve(ctx, *req.VendorID, req.Date, len(approved), counts)
			if err != nil {
				return fmt.Errorf("reserve vendor slots: %w", err)
			}
			outcome.Plan = plan
			slots = plan.Expand()
		case entities.WorkflowEquipment:
			if len(req.Selections) > 0 {
				if err := o.ledger.CheckAvailability(ctx, req.Selections, len(approved)); err != nil {
					return fmt.Errorf("check equipment stock: %w", err)
				}
			}
		}

		changes := make([]entities.WorkflowChange, 0, len(approved))
		for i, c := range approved {
			d := details
			d.PartnerID = c.partnerID
			if slots != nil {
				d.TimeStart, d.TimeEnd = slots[i].Start, slots[i].End
				if d.Location == "" {
					d.Location = outcome.Plan.Location
				}
			}

			change, err := o.machine.Schedule(c.rider, req.Workflow, d)
			if err != nil {
				outcome.Failures = append(outcome.Failures, entities.RiderFailure{RiderID: c.rider.ID, Reason: err.Error()})
				continue
			}
			changes = append(changes, change)
		}

		o.apply(ctx, outcome, changes)

		if req.Workflow == entities.WorkflowInstallation {
			notifications = vendorNotifications(*req.VendorID, approved, changes, outcome.Succeeded)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.notify(ctx, notifications)
	o.finish(operationSchedule, outcome, start)
	return outcome, nil
}

// Complete переводит батч в Completed. Для выдачи экипировки сначала в отдельной
// транзакции списывается весь батч, и только после ее коммита пишутся райдеры.
func (o *Orchestrator) Complete(ctx context.Context, req entities.BulkCompletion) (*entities.BulkOutcome, error) {
	start := time.Now()

	ids, err := validateBatch(req.Workflow, req.RiderIDs)
	if err != nil {
		return nil, err
	}
	if req.Workflow == entities.WorkflowEquipment && len(req.Selections) == 0 {
		return nil, ErrMissingSelections
	}

	details := workflow.CompletionDetails{
		Date:        req.Date,
		Time:        req.Time,
		Actor:       req.Actor,
		Allocations: allocationsOf(req.Selections),
		Notes:       req.Notes,
	}
	if req.Workflow != entities.WorkflowEquipment {
		details.Allocations = nil
	}
	if err = workflow.ValidateCompletion(req.Workflow, details); err != nil {
		return nil, err
	}

	outcome := &entities.BulkOutcome{Workflow: req.Workflow}

	err = o.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		approved, err := o.admit(ctx, outcome, req.Workflow, ids, o.machine.CanComplete, nil)
		if err != nil {
			return err
		}
		if len(approved) == 0 {
			return nil
		}

		if req.Workflow == entities.WorkflowEquipment {
			// журнал коммитит списание в собственной транзакции
			batch, err := o.ledger.DistributeBatch(ctx, req.Selections, len(approved), req.Notes)
			if err != nil {
				return fmt.Errorf("distribute equipment: %w", err)
			}
			outcome.Distribution = batch
		}

		changes := make([]entities.WorkflowChange, 0, len(approved))
		for _, c := range approved {
			change, err := o.machine.Complete(c.rider, req.Workflow, details)
			if err != nil {
				outcome.Failures = append(outcome.Failures, entities.RiderFailure{RiderID: c.rider.ID, Reason: err.Error()})
				continue
			}
			changes = append(changes, change)
		}

		o.apply(ctx, outcome, changes)

		if outcome.Distribution != nil && outcome.SuccessCount < len(approved) {
			o.logger.Warn("equipment debited for riders whose completion failed",
				logger.NewField("batch_id", outcome.Distribution.BatchID),
				logger.NewField("debited_riders", len(approved)),
				logger.NewField("completed_riders", outcome.SuccessCount),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.finish(operationComplete, outcome, start)
	return outcome, nil
}

// manualCounts подгоняет ручную раскладку слотов под райдеров, прошедших гейты:
// места выбывших снимаются с последних слотов. Раскладка, не сходящаяся
// с запросом изначально, не правится и отклоняется аллокатором.
func manualCounts(counts []int, requested, approved int) []int {
	dropped := requested - approved
	if len(counts) == 0 || dropped <= 0 {
		return counts
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return slots.Shrink(counts, min(dropped, total-approved))
}

// admit загружает райдеров, отсеивает недопустимые переходы, берет lock'и и прогоняет
// гейт квот партнеров. Одобренные возвращаются в порядке запроса.
func (o *Orchestrator) admit(
	ctx context.Context,
	outcome *entities.BulkOutcome,
	w entities.WorkflowType,
	ids []string,
	can transitionCheck,
	locks []string,
) ([]candidate, error) {
	riders, err := o.riders.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load riders: %w", err)
	}

	byID := make(map[string]*entities.Rider, len(riders))
	for i := range riders {
		byID[riders[i].ID] = &riders[i]
	}

	partnerByName := make(map[string]*int64)
	var candidates []candidate
	for _, id := range ids {
		rider, ok := byID[id]
		if !ok {
			outcome.Failures = append(outcome.Failures, entities.RiderFailure{RiderID: id, Reason: entities.ErrRiderNotFound.Error()})
			continue
		}
		if err := can(rider, w); err != nil {
			outcome.Failures = append(outcome.Failures, entities.RiderFailure{RiderID: id, Reason: err.Error()})
			continue
		}

		partnerID, err := o.partnerOf(ctx, rider, partnerByName)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{rider: rider, partnerID: partnerID})
	}

	for _, c := range candidates {
		if c.partnerID != nil {
			locks = append(locks, entities.PartnerLockKey(*c.partnerID))
		}
	}
	if len(locks) > 0 {
		if err := o.locker.Lock(ctx, locks...); err != nil {
			return nil, fmt.Errorf("acquire locks: %w", err)
		}
	}

	return o.gate(ctx, outcome, candidates)
}

// gate проверяет квоты по каждому партнеру один раз. Партнер, не прошедший гейт,
// блокируется целиком; остальные части батча идут дальше.
func (o *Orchestrator) gate(ctx context.Context, outcome *entities.BulkOutcome, candidates []candidate) ([]candidate, error) {
	groups := make(map[int64][]candidate)
	for _, c := range candidates {
		if c.partnerID != nil {
			groups[*c.partnerID] = append(groups[*c.partnerID], c)
		}
	}

	partnerIDs := make([]int64, 0, len(groups))
	for id := range groups {
		partnerIDs = append(partnerIDs, id)
	}
	sort.Slice(partnerIDs, func(i, j int) bool { return partnerIDs[i] < partnerIDs[j] })

	blocked := make(map[string]struct{})
	for _, partnerID := range partnerIDs {
		group := groups[partnerID]

		// уже активные райдеры учтены в текущих счетчиках
		additional := make(map[entities.DeliveryType]int)
		for _, c := range group {
			if !c.rider.IsActive() {
				additional[entities.ParseDeliveryType(c.rider.Attributes.DeliveryType.String())]++
			}
		}
		if len(additional) == 0 {
			continue
		}

		check, err := o.capacity.CheckBatch(ctx, partnerID, additional)
		if err != nil {
			return nil, fmt.Errorf("check capacity of partner %d: %w", partnerID, err)
		}
		if check.Allowed {
			continue
		}

		ids := make([]string, 0, len(group))
		for _, c := range group {
			ids = append(ids, c.rider.ID)
			blocked[c.rider.ID] = struct{}{}
		}
		outcome.Blocked = append(outcome.Blocked, entities.BlockedGroup{
			PartnerID: &partnerID,
			RiderIDs:  ids,
			Reason:    check.Reason,
		})
		outcome.BlockedCount += len(ids)
	}

	approved := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := blocked[c.rider.ID]; !ok {
			approved = append(approved, c)
		}
	}
	return approved, nil
}

// partnerOf: partner_id райдера, иначе поиск партнера по названию компании.
// Райдер без партнера квотами не ограничен.
func (o *Orchestrator) partnerOf(ctx context.Context, rider *entities.Rider, cache map[string]*int64) (*int64, error) {
	if rider.Attributes.PartnerID != nil {
		return rider.Attributes.PartnerID, nil
	}

	name := rider.Attributes.CompanyName
	if name == "" {
		return nil, nil
	}
	if id, ok := cache[name]; ok {
		return id, nil
	}

	partner, err := o.partners.GetByName(ctx, name)
	switch {
	case errors.Is(err, entities.ErrNotFound):
		cache[name] = nil
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("resolve partner %q: %w", name, err)
	}

	cache[name] = &partner.ID
	return &partner.ID, nil
}

// apply пишет переходы параллельно, не более WriteConcurrency одновременно.
// Результат не зависит от порядка завершения записей.
func (o *Orchestrator) apply(ctx context.Context, outcome *entities.BulkOutcome, changes []entities.WorkflowChange) {
	results := make([]error, len(changes))

	var g errgroup.Group
	g.SetLimit(max(1, o.cfg.WriteConcurrency))
	for i := range changes {
		g.Go(func() error {
			results[i] = o.write(ctx, changes[i])
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range results {
		if err != nil {
			outcome.Failures = append(outcome.Failures, entities.RiderFailure{RiderID: changes[i].RiderID, Reason: failureReason(err)})
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, changes[i].RiderID)
	}
	outcome.SuccessCount = len(outcome.Succeeded)
}

func (o *Orchestrator) write(ctx context.Context, change entities.WorkflowChange) error {
	if o.cfg.RiderWriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.RiderWriteTimeout)
		defer cancel()
	}

	return o.txManager.DoRequiresNew(ctx, func(ctx context.Context) error {
		return o.riders.ApplyChange(ctx, change)
	})
}

// notify вызывается после коммита: ошибка доставки не отменяет расписание.
func (o *Orchestrator) notify(ctx context.Context, notifications []entities.VendorNotification) {
	if len(notifications) == 0 {
		return
	}

	if err := o.notifier.NotifyVendor(ctx, notifications); err != nil {
		NotificationFailuresTotal.Inc()
		o.logger.Warn("vendor notification failed",
			logger.NewField("vendor_id", notifications[0].VendorID),
			logger.NewField("riders", len(notifications)),
			logger.NewField("error", err),
		)
	}
}

func (o *Orchestrator) finish(operation string, outcome *entities.BulkOutcome, start time.Time) {
	w := outcome.Workflow.String()
	BulkRidersTotal.WithLabelValues(w, operation, "success").Add(float64(outcome.SuccessCount))
	BulkRidersTotal.WithLabelValues(w, operation, "blocked").Add(float64(outcome.BlockedCount))
	BulkRidersTotal.WithLabelValues(w, operation, "failed").Add(float64(len(outcome.Failures)))
	BulkDuration.WithLabelValues(w, operation).Observe(time.Since(start).Seconds())

	o.logger.Info("bulk operation finished",
		logger.NewField("workflow", w),
		logger.NewField("operation", operation),
		logger.NewField("success", outcome.SuccessCount),
		logger.NewField("blocked", outcome.BlockedCount),
		logger.NewField("failed", len(outcome.Failures)),
	)
}

func validateBatch(w entities.WorkflowType, riderIDs []string) ([]string, error) {
	if !w.IsValid() {
		return nil, workflow.ErrInvalidWorkflow
	}

	seen := make(map[string]struct{}, len(riderIDs))
	ids := make([]string, 0, len(riderIDs))
	for _, id := range riderIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrNoRiders
	}
	return ids, nil
}

// allocationsOf сливает одинаковые позиции выбора, сохраняя порядок первого появления.
func allocationsOf(selections []entities.EquipmentSelection) []entities.EquipmentAllocation {
	index := make(map[entities.StockKey]int, len(selections))
	var out []entities.EquipmentAllocation
	for _, s := range selections {
		key := entities.NewStockKey(s.ItemID, s.Size)
		if i, ok := index[key]; ok {
			out[i].Quantity += s.QuantityPerRider
			continue
		}
		index[key] = len(out)
		out = append(out, entities.EquipmentAllocation{ItemID: key.ItemID, Size: key.Size, Quantity: s.QuantityPerRider})
	}
	return out
}

func vendorNotifications(
	vendorID int64,
	approved []candidate,
	changes []entities.WorkflowChange,
	succeeded []string,
) []entities.VendorNotification {
	ok := make(map[string]struct{}, len(succeeded))
	for _, id := range succeeded {
		ok[id] = struct{}{}
	}
	riders := make(map[string]*entities.Rider, len(approved))
	for _, c := range approved {
		riders[c.rider.ID] = c.rider
	}

	out := make([]entities.VendorNotification, 0, len(succeeded))
	for _, change := range changes {
		if _, done := ok[change.RiderID]; !done {
			continue
		}
		rider := riders[change.RiderID]
		meta := change.State.Meta
		out = append(out, entities.VendorNotification{
			VendorID:  vendorID,
			RiderID:   rider.ID,
			RiderName: rider.Attributes.Name,
			Phone:     rider.Attributes.Phone,
			Date:      meta.Date,
			TimeStart: meta.TimeStart,
			TimeEnd:   meta.TimeEnd,
			Location:  meta.Location,
		})
	}
	return out
}

func failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "rider write timed out"
	}
	return err.Error()
}
