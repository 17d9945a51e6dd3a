package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/cache"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/util"
)

const (
	exampleCacheKey  = "example_job_applications"
	exampleCacheTTL  = 24 * time.Hour
	exampleListLimit = 5
)

type JobApplicationStore interface {
	Create(app *model.JobApplication) error
	FindByUser(userID uuid.UUID) ([]model.JobApplication, error)
	FindByIDAndUser(id, userID uuid.UUID) (*model.JobApplication, error)
	Update(app *model.JobApplication) error
	SoftDelete(id, userID uuid.UUID) error
	FindExamples(limit int) ([]model.JobApplication, error)
}

type JobApplicationUsecase struct {
	apps  JobApplicationStore
	store cache.Store
}

func NewJobApplicationUsecase(apps JobApplicationStore, store cache.Store) *JobApplicationUsecase {
	return &JobApplicationUsecase{apps: apps, store: store}
}

func (uc *JobApplicationUsecase) List(userID uuid.UUID) ([]dto.JobApplicationDTO, error) {
	apps, err := uc.apps.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewJobApplicationDTO(&apps[i]))
	}
	return out, nil
}

func (uc *JobApplicationUsecase) Create(userID uuid.UUID, req dto.JobApplicationRequest) (*dto.JobApplicationDTO, *util.FormError, error) {
	app, formErr := uc.fromRequest(req)
	if formErr != nil {
		return nil, formErr, nil
	}
	app.UserID = userID

	if err := uc.apps.Create(app); err != nil {
		return nil, nil, err
	}
	d := dto.NewJobApplicationDTO(app)
	return &d, nil, nil
}

func (uc *JobApplicationUsecase) Get(id, userID uuid.UUID) (*dto.JobApplicationDTO, error) {
	app, err := uc.apps.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewJobApplicationDTO(app)
	return &d, nil
}

func (uc *JobApplicationUsecase) Update(id, userID uuid.UUID, req dto.JobApplicationRequest) (*dto.JobApplicationDTO, *util.FormError, error) {
	app, err := uc.apps.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, nil, err
	}

	updated, formErr := uc.fromRequest(req)
	if formErr != nil {
		return nil, formErr, nil
	}

	app.JobTitle = updated.JobTitle
	app.CompanyName = updated.CompanyName
	app.OriginalJobDescription = updated.OriginalJobDescription
	app.ResumeUsedID = updated.ResumeUsedID
	app.DateApplied = updated.DateApplied
	app.Status = updated.Status
	app.Notes = updated.Notes

	if err := uc.apps.Update(app); err != nil {
		return nil, nil, err
	}
	d := dto.NewJobApplicationDTO(app)
	return &d, nil, nil
}

// Delete soft-deletes: the row is flagged and disappears from listings but
// stays in the table.
func (uc *JobApplicationUsecase) Delete(id, userID uuid.UUID) error {
	return uc.apps.SoftDelete(id, userID)
}

// ListExamples serves the shared demo set through the 24h read-through
// cache.
func (uc *JobApplicationUsecase) ListExamples(ctx context.Context) ([]dto.JobApplicationDTO, bool, error) {
	return cache.GetOrPopulate(ctx, uc.store, exampleCacheKey, exampleCacheTTL, func() ([]dto.JobApplicationDTO, error) {
		apps, err := uc.apps.FindExamples(exampleListLimit)
		if err != nil {
			return nil, err
		}
		out := make([]dto.JobApplicationDTO, 0, len(apps))
		for i := range apps {
			out = append(out, dto.NewJobApplicationDTO(&apps[i]))
		}
		return out, nil
	})
}

func (uc *JobApplicationUsecase) fromRequest(req dto.JobApplicationRequest) (*model.JobApplication, *util.FormError) {
	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr
	}

	dateApplied, err := time.Parse(dto.DateLayout, req.DateApplied)
	if err != nil {
		return nil, util.FieldError("date_applied", "Date has wrong format. Use YYYY-MM-DD.")
	}

	status := model.ApplicationStatus(req.Status)
	if status == "" {
		status = model.StatusApplied
	}

	return &model.JobApplication{
		JobTitle:               req.JobTitle,
		CompanyName:            req.CompanyName,
		OriginalJobDescription: req.OriginalJobDescription,
		ResumeUsedID:           req.ResumeUsedID,
		DateApplied:            dateApplied,
		Status:                 status,
		Notes:                  req.Notes,
	}, nil
}
