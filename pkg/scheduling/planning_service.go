package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/locking"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/allocator-app/allocator-backend/pkg/users"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// now is the current time and is globally available to override it in tests
var now = time.Now

// generateLockTTL bounds how long a generate run may hold its per-user lock
const generateLockTTL = 2 * time.Minute

// AlgorithmName identifies the allocation strategy in persisted schedules
const AlgorithmName = "priority-greedy"

// The PlanningService runs the whole scheduling pipeline: fetch, validate,
// score, carve slots, allocate, check feasibility, persist
type PlanningService struct {
	userRepository       users.UserRepositoryInterface
	workItemRepository   WorkItemRepositoryInterface
	commitmentRepository CommitmentRepositoryInterface
	scheduleRepository   ScheduleRepositoryInterface
	planCache            PlanCacheInterface
	locker               locking.LockerInterface
	logger               logger.Interface
}

// NewPlanningService constructs a PlanningService
func NewPlanningService(
	userRepository users.UserRepositoryInterface,
	workItemRepository WorkItemRepositoryInterface,
	commitmentRepository CommitmentRepositoryInterface,
	scheduleRepository ScheduleRepositoryInterface,
	planCache PlanCacheInterface,
	locker locking.LockerInterface,
	logger logger.Interface) *PlanningService {
	return &PlanningService{
		userRepository:       userRepository,
		workItemRepository:   workItemRepository,
		commitmentRepository: commitmentRepository,
		scheduleRepository:   scheduleRepository,
		planCache:            planCache,
		locker:               locker,
		logger:               logger,
	}
}

// GenerateSchedule runs one scheduling invocation for a user. The current time
// is frozen at the start so every score in the run is consistent. A second
// concurrent run for the same user is rejected instead of queued; the inputs
// themselves are read once and the computation holds no state across calls.
func (s *PlanningService) GenerateSchedule(ctx context.Context, userID string, window date.Timespan, includeItems []string) (*Plan, error) {
	if !window.IsStartBeforeEnd() {
		return nil, &ValidationError{Field: "window", Reason: "must end after it starts"}
	}

	lock, err := s.locker.Acquire(ctx, "schedule:generate:"+userID, generateLockTTL, true)
	if err != nil {
		if errors.Is(err, locking.ErrLockHeld) {
			return nil, communication.ErrScheduleRunInProgress
		}
		return nil, err
	}

	defer func() {
		err := lock.Release(ctx)
		if err != nil {
			s.logger.Error("problem releasing generate lock", err)
		}
	}()

	currentTime := now()

	var user *users.User
	var items []*WorkItem
	var commitments []FixedCommitment

	wg, groupCtx := errgroup.WithContext(ctx)

	wg.Go(func() error {
		var err error
		user, err = s.userRepository.FindByID(groupCtx, userID)
		return errors.Wrap(err, "could not find user")
	})

	wg.Go(func() error {
		var err error
		items, err = s.workItemRepository.FindPendingInWindow(groupCtx, userID, window, includeItems)
		return errors.Wrap(err, "could not load pending work items")
	})

	wg.Go(func() error {
		var err error
		commitments, err = s.commitmentRepository.FindInWindow(groupCtx, userID, window)
		return errors.Wrap(err, "could not load commitments")
	})

	err = wg.Wait()
	if err != nil {
		return nil, err
	}

	err = validateRun(user, items, commitments)
	if err != nil {
		return nil, err
	}

	EnsureScores(items, currentTime)
	SortByPriority(items)

	slots := BuildSlots(commitments, &user.Preferences, window)

	blocks, err := Allocate(items, slots, &user.Preferences)
	if err != nil {
		return nil, err
	}

	infeasible := CheckFeasibility(items, blocks, commitments, &user.Preferences, window)
	if len(infeasible) > 0 {
		s.logger.Warning(fmt.Sprintf("%d of %d work items for user %s do not fit before their due date", len(infeasible), len(items), userID))
	}

	schedule := Schedule{
		UserID:   user.ID,
		RunID:    uuid.NewString(),
		IsActive: true,
		OptimizationSettings: OptimizationSettings{
			Algorithm:   AlgorithmName,
			Factors:     []string{"priority", "due_date", "difficulty"},
			GeneratedAt: currentTime,
		},
	}

	scheduled := ScheduledPerItem(blocks)
	for _, duration := range scheduled {
		schedule.TotalScheduled += duration
	}
	schedule.BlockCount = len(blocks)

	err = s.scheduleRepository.DeactivateAllForUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "could not deactivate previous schedules")
	}

	err = s.scheduleRepository.Add(ctx, &schedule, blocks)
	if err != nil {
		return nil, errors.Wrap(err, "could not persist schedule")
	}

	itemsScheduled := 0
	for _, item := range items {
		if scheduled[item.ID] < item.EstimatedDuration {
			continue
		}

		itemsScheduled++
		err = s.workItemRepository.UpdateStatus(ctx, item.ID, item.UserID, StatusScheduled)
		if err != nil {
			return nil, errors.Wrapf(err, "could not mark work item %s as scheduled", item.ID.Hex())
		}
	}

	plan := &Plan{
		Schedule:   schedule,
		Blocks:     blocks,
		Infeasible: infeasible,
		Summary: PlanSummary{
			ItemsConsidered: len(items),
			ItemsScheduled:  itemsScheduled,
			ItemsInfeasible: len(infeasible),
			TotalScheduled:  schedule.TotalScheduled,
		},
	}

	err = s.planCache.Add(ctx, userID, plan)
	if err != nil {
		s.logger.Error("problem caching generated plan", err)
	}

	return plan, nil
}

// LatestPlan returns the most recent plan of a user, from the cache when
// possible and rebuilt from the persisted schedule otherwise
func (s *PlanningService) LatestPlan(ctx context.Context, userID string) (*Plan, error) {
	plan, err := s.planCache.Get(ctx, userID)
	if err == nil {
		return plan, nil
	}

	schedule, err := s.scheduleRepository.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "could not find a schedule")
	}

	blocks, err := s.scheduleRepository.FindBlocksBySchedule(ctx, schedule.ID.Hex(), userID)
	if err != nil {
		return nil, errors.Wrap(err, "could not load scheduled blocks")
	}

	return &Plan{
		Schedule: *schedule,
		Blocks:   blocks,
		Summary: PlanSummary{
			TotalScheduled: schedule.TotalScheduled,
		},
	}, nil
}

// validateRun rejects a whole run before any scheduling work begins
func validateRun(user *users.User, items []*WorkItem, commitments []FixedCommitment) error {
	v := validator.New()

	if !user.Preferences.WorkDayStart.Before(user.Preferences.WorkDayEnd) {
		return &ValidationError{Field: "preferences.workDayStart", Reason: "must be before workDayEnd"}
	}

	if len(user.Preferences.ActiveWeekdays) == 0 {
		return &ValidationError{Field: "preferences.activeWeekdays", Reason: "must not be empty"}
	}

	if user.Preferences.MinimumBlockSize <= 0 {
		return &ValidationError{Field: "preferences.minimumBlockSize", Reason: "must be positive"}
	}

	if user.Preferences.MaxContinuousWork < user.Preferences.MinimumBlockSize {
		return &ValidationError{Field: "preferences.maxContinuousWork", Reason: "must be at least the minimum block size"}
	}

	if user.Preferences.BreakBuffer < 0 {
		return &ValidationError{Field: "preferences.breakBuffer", Reason: "must not be negative"}
	}

	for _, item := range items {
		err := v.Struct(item)
		if err != nil {
			return &ValidationError{Field: fmt.Sprintf("workItem %s", item.ID.Hex()), Reason: err.Error()}
		}

		if !item.Status.IsValid() {
			return &ValidationError{Field: fmt.Sprintf("workItem %s status", item.ID.Hex()), Reason: fmt.Sprintf("%q is not a known status", item.Status)}
		}
	}

	for _, commitment := range commitments {
		if !commitment.Date.IsStartBeforeEnd() {
			return &ValidationError{Field: fmt.Sprintf("commitment %s", commitment.ID.Hex()), Reason: "must end after it starts"}
		}
	}

	return nil
}
