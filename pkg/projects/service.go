package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/assignment"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

// MaxConcurrentAssignments caps how many experts can review one project.
const MaxConcurrentAssignments = 3

// SubmitInput is the payload for submitting a project for review.
type SubmitInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,min=20"`
	Category    string `json:"category" validate:"required,oneof=defi infrastructure nft dao gaming other"`
}

// EvaluationInput is an expert's verdict on an assignment.
type EvaluationInput struct {
	Score   float64 `json:"score" validate:"required,gte=0,lte=100"`
	Rating  float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Summary string  `json:"summary" validate:"required,min=20"`
}

// Service handles project submission, expert assignment and evaluation.
type Service struct {
	db         *ent.Client
	quota      *entitlement.Service
	reputation *reputation.Service
}

// NewService creates a new project service.
func NewService(db *ent.Client, quota *entitlement.Service, rep *reputation.Service) *Service {
	return &Service{db: db, quota: quota, reputation: rep}
}

// Submit creates a project after charging the submitter's monthly quota.
func (s *Service) Submit(ctx context.Context, userID int, input SubmitInput, now time.Time) (*ent.Project, error) {
	if err := s.quota.CheckAndIncrementProjectUsage(ctx, userID, now); err != nil {
		return nil, err
	}

	p, err := s.db.Project.Create().
		SetUserID(userID).
		SetName(input.Name).
		SetDescription(input.Description).
		SetCategory(project.Category(input.Category)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.db.User.UpdateOneID(userID).AddTotalProjects(1).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update project counter: %w", err)
	}
	metrics.ProjectsSubmitted.Inc()
	return p, nil
}

// Get returns a project, enforcing ownership for non-admin callers.
func (s *Service) Get(ctx context.Context, userID, id int, isAdmin bool) (*ent.Project, error) {
	p, err := s.db.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if !isAdmin && p.UserID != userID {
		return nil, domain.NewForbiddenError("project belongs to another user")
	}
	return p, nil
}

// ListForUser returns the user's projects, newest first.
func (s *Service) ListForUser(ctx context.Context, userID, limit, offset int) ([]*ent.Project, error) {
	items, err := s.db.Project.Query().
		Where(project.UserIDEQ(userID)).
		Order(ent.Desc(project.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return items, nil
}

// Withdraw lets the owner pull a project that has not been completed.
func (s *Service) Withdraw(ctx context.Context, userID, id int) (*ent.Project, error) {
	p, err := s.Get(ctx, userID, id, false)
	if err != nil {
		return nil, err
	}
	if p.Status == project.StatusCompleted || p.Status == project.StatusWithdrawn {
		return nil, domain.NewConflictError(fmt.Sprintf("cannot withdraw a %s project", p.Status))
	}
	p, err = p.Update().SetStatus(project.StatusWithdrawn).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw project: %w", err)
	}
	return p, nil
}

// AssignExpert attaches a verified expert to a project. A project holds at
// most MaxConcurrentAssignments assignments; the count is checked inside
// the transaction so concurrent assignment requests cannot oversubscribe.
func (s *Service) AssignExpert(ctx context.Context, projectID, expertID int) (*ent.Assignment, error) {
	expert, err := s.db.User.Get(ctx, expertID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("expert")
		}
		return nil, fmt.Errorf("failed to get expert: %w", err)
	}
	if expert.Role != user.RoleExpert && expert.Role != user.RoleAdmin {
		return nil, domain.NewValidationError("assignee is not a verified expert")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	p, err := tx.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			err = domain.NewNotFoundError("project")
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p.Status != project.StatusSubmitted && p.Status != project.StatusInReview {
		err = domain.NewConflictError(fmt.Sprintf("cannot assign experts to a %s project", p.Status))
		return nil, err
	}

	count, err := tx.Assignment.Query().
		Where(assignment.ProjectIDEQ(projectID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	if count >= MaxConcurrentAssignments {
		err = domain.NewConflictError("project already has the maximum number of experts")
		return nil, err
	}

	a, err := tx.Assignment.Create().
		SetProjectID(projectID).
		SetExpertID(expertID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			err = domain.NewConflictError("expert is already assigned to this project")
			return nil, err
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	if p.Status == project.StatusSubmitted {
		if err = tx.Project.UpdateOneID(projectID).SetStatus(project.StatusInReview).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to move project into review: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return a, nil
}

// StartAssignment moves an expert's assignment to in_progress.
func (s *Service) StartAssignment(ctx context.Context, assignmentID, expertID int, now time.Time) (*ent.Assignment, error) {
	a, err := s.ownedAssignment(ctx, assignmentID, expertID)
	if err != nil {
		return nil, err
	}
	if a.Status != assignment.StatusAssigned {
		return nil, domain.NewConflictError(fmt.Sprintf("assignment is %s, expected assigned", a.Status))
	}
	a, err = a.Update().
		SetStatus(assignment.StatusInProgress).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start assignment: %w", err)
	}
	return a, nil
}

// CompleteAssignment records the expert's evaluation and closes the
// assignment. When the last open assignment completes, the project is
// finalized and the outcome folds into the submitter's reputation.
func (s *Service) CompleteAssignment(ctx context.Context, assignmentID, expertID int, input EvaluationInput, now time.Time) (*ent.Evaluation, error) {
	a, err := s.ownedAssignment(ctx, assignmentID, expertID)
	if err != nil {
		return nil, err
	}
	if a.Status != assignment.StatusInProgress {
		return nil, domain.NewConflictError(fmt.Sprintf("assignment is %s, expected in_progress", a.Status))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	eval, err := tx.Evaluation.Create().
		SetAssignmentID(a.ID).
		SetScore(input.Score).
		SetRating(input.Rating).
		SetSummary(input.Summary).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}

	if err = tx.Assignment.UpdateOneID(a.ID).
		SetStatus(assignment.StatusCompleted).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	open, err := tx.Assignment.Query().
		Where(
			assignment.ProjectIDEQ(a.ProjectID),
			assignment.StatusNEQ(assignment.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open assignments: %w", err)
	}
	if open == 0 {
		if err = s.finalizeProject(ctx, tx, a.ProjectID); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return eval, nil
}

// ListAssignmentsForExpert returns an expert's open work queue.
func (s *Service) ListAssignmentsForExpert(ctx context.Context, expertID int) ([]*ent.Assignment, error) {
	items, err := s.db.Assignment.Query().
		Where(
			assignment.ExpertIDEQ(expertID),
			assignment.StatusNEQ(assignment.StatusCompleted),
		).
		Order(ent.Asc(assignment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return items, nil
}

// finalizeProject averages the evaluations into the project's final score,
// updates the submitter's aggregates and feeds the reputation record.
func (s *Service) finalizeProject(ctx context.Context, tx *ent.Tx, projectID int) error {
	assignments, err := tx.Assignment.Query().
		Where(assignment.ProjectIDEQ(projectID)).
		WithEvaluation().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load evaluations: %w", err)
	}

	var scoreSum, ratingSum float64
	var n int
	for _, a := range assignments {
		if a.Edges.Evaluation == nil {
			continue
		}
		scoreSum += a.Edges.Evaluation.Score
		ratingSum += a.Edges.Evaluation.Rating
		n++
	}
	if n == 0 {
		return domain.NewInternalError(fmt.Errorf("project %d finalized without evaluations", projectID))
	}
	finalScore := scoreSum / float64(n)
	avgRating := ratingSum / float64(n)

	p, err := tx.Project.UpdateOneID(projectID).
		SetStatus(project.StatusCompleted).
		SetFinalScore(finalScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize project: %w", err)
	}

	owner, err := tx.User.Get(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to get project owner: %w", err)
	}
	successful := owner.SuccessfulProjects + 1
	newAvg := (owner.AverageProjectScore*float64(owner.SuccessfulProjects) + finalScore) / float64(successful)
	if err := tx.User.UpdateOneID(owner.ID).
		SetSuccessfulProjects(successful).
		SetAverageProjectScore(newAvg).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update owner aggregates: %w", err)
	}

	return s.reputation.RecordEvaluationOutcome(ctx, p.UserID, avgRating, true)
}

func (s *Service) ownedAssignment(ctx context.Context, assignmentID, expertID int) (*ent.Assignment, error) {
	a, err := s.db.Assignment.Get(ctx, assignmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("assignment")
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if a.ExpertID != expertID {
		return nil, domain.NewForbiddenError("assignment belongs to another expert")
	}
	return a, nil
}
