package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/cache"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/util"
	"gorm.io/gorm"
)

const (
	modelListCacheKey = "ai_models_list"
	modelListCacheTTL = time.Hour
	defaultTitle      = "Untitled Resume"
)

type AIModelRegistry interface {
	FindActive() ([]model.AIModel, error)
	FindActiveByDisplayName(name string) (*model.AIModel, error)
}

type UserStore interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	GetOrCreateAnonymous() (*model.User, error)
}

type ResumeStore interface {
	Create(resume *model.Resume) error
	FindByUser(userID uuid.UUID) ([]model.Resume, error)
	FindByIDAndUser(id, userID uuid.UUID) (*model.Resume, error)
	Update(resume *model.Resume) error
	Delete(id, userID uuid.UUID) error
}

// ResumeGenerator is the provider gateway as the orchestrator sees it.
type ResumeGenerator interface {
	GenerateResumeContent(ctx context.Context, cfg *model.AIModel, userInput string) (string, error)
}

type GenerationUsecase struct {
	models  AIModelRegistry
	users   UserStore
	resumes ResumeStore
	gateway ResumeGenerator
	store   cache.Store
}

func NewGenerationUsecase(models AIModelRegistry, users UserStore, resumes ResumeStore, gateway ResumeGenerator, store cache.Store) *GenerationUsecase {
	return &GenerationUsecase{models: models, users: users, resumes: resumes, gateway: gateway, store: store}
}

// ListModels serves the public model catalog through the read-through
// cache. Stale entries after an operator edit are accepted for up to the
// TTL.
func (uc *GenerationUsecase) ListModels(ctx context.Context) ([]dto.AIModelDTO, bool, error) {
	return cache.GetOrPopulate(ctx, uc.store, modelListCacheKey, modelListCacheTTL, func() ([]dto.AIModelDTO, error) {
		models, err := uc.models.FindActive()
		if err != nil {
			return nil, err
		}
		out := make([]dto.AIModelDTO, 0, len(models))
		for _, m := range models {
			out = append(out, dto.AIModelDTO{
				DisplayName:      m.DisplayName,
				Description:      m.Description,
				ResponseTimeInfo: m.ResponseTimeInfo,
				LoginRequired:    m.LoginRequired,
			})
		}
		return out, nil
	})
}

// Validate runs the generation checks in order, stopping at the first
// failure: input length, model resolution, login requirement, daily quota.
func (uc *GenerationUsecase) Validate(ctx context.Context, req dto.GenerateResumeRequest, user *model.User) (*model.AIModel, *util.FormError, error) {
	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr, nil
	}

	m, err := uc.models.FindActiveByDisplayName(req.Model)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.FieldError("model", "This model is not valid or is currently disabled."), nil
		}
		return nil, nil, err
	}

	if m.LoginRequired && user == nil {
		return nil, util.FieldError("model", fmt.Sprintf("You must be logged in to use the %s model.", m.DisplayName)), nil
	}

	if m.DailyLimit > 0 && user != nil {
		if exceeded := uc.quotaExceeded(ctx, m, user); exceeded {
			return nil, util.FieldError("model", "Daily request limit reached for this model."), nil
		}
	}

	return m, nil, nil
}

// quotaExceeded counts the caller's requests for this model today. The
// counter expires at the next day boundary. Anonymous callers share one
// identity and are not counted. A broken counter store never blocks
// generation; it only disables enforcement.
func (uc *GenerationUsecase) quotaExceeded(ctx context.Context, m *model.AIModel, user *model.User) bool {
	now := time.Now()
	key := fmt.Sprintf("quota:%s:%s:%s", user.ID, m.ID, now.Format("2006-01-02"))
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())

	count, err := uc.store.Incr(ctx, key, midnight.Sub(now))
	if err != nil {
		log.Printf("quota counter unavailable for %s: %v", key, err)
		return false
	}
	return count > int64(m.DailyLimit)
}

// Generate runs the full pipeline: validate, call the provider, resolve the
// owning account (falling back to the shared anonymous identity) and
// persist the resume. Exactly one Resume row is written per successful
// call; none on any failure.
func (uc *GenerationUsecase) Generate(ctx context.Context, req dto.GenerateResumeRequest, user *model.User) (*dto.GenerateResumeResponse, *util.FormError, error) {
	cfg, formErr, err := uc.Validate(ctx, req, user)
	if formErr != nil || err != nil {
		return nil, formErr, err
	}

	content, err := uc.gateway.GenerateResumeContent(ctx, cfg, req.UserInput)
	if err != nil {
		return nil, nil, err
	}

	owner := user
	if owner == nil {
		owner, err = uc.users.GetOrCreateAnonymous()
		if err != nil {
			return nil, nil, err
		}
	}

	title := req.Title
	if title == "" {
		title = defaultTitle
	}

	resume := &model.Resume{
		UserID:  owner.ID,
		Title:   title,
		Content: content,
	}
	if err := uc.resumes.Create(resume); err != nil {
		return nil, nil, err
	}

	return &dto.GenerateResumeResponse{ResumeID: resume.ID, Content: content}, nil, nil
}
