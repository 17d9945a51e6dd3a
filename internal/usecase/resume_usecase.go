package usecase

import (
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/util"
)

type ResumeUsecase struct {
	resumes ResumeStore
}

func NewResumeUsecase(resumes ResumeStore) *ResumeUsecase {
	return &ResumeUsecase{resumes: resumes}
}

func (uc *ResumeUsecase) List(userID uuid.UUID) ([]dto.ResumeDTO, error) {
	resumes, err := uc.resumes.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResumeDTO, 0, len(resumes))
	for i := range resumes {
		out = append(out, dto.NewResumeDTO(&resumes[i]))
	}
	return out, nil
}

func (uc *ResumeUsecase) Create(user *model.User, req dto.ResumeRequest) (*dto.ResumeDTO, *util.FormError, error) {
	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr, nil
	}

	resume := &model.Resume{
		UserID:  user.ID,
		User:    user,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := uc.resumes.Create(resume); err != nil {
		return nil, nil, err
	}
	d := dto.NewResumeDTO(resume)
	return &d, nil, nil
}

func (uc *ResumeUsecase) Get(id, userID uuid.UUID) (*dto.ResumeDTO, error) {
	resume, err := uc.resumes.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewResumeDTO(resume)
	return &d, nil
}

func (uc *ResumeUsecase) Update(id, userID uuid.UUID, req dto.ResumeRequest) (*dto.ResumeDTO, *util.FormError, error) {
	resume, err := uc.resumes.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, nil, err
	}

	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr, nil
	}

	resume.Title = req.Title
	resume.Content = req.Content
	if err := uc.resumes.Update(resume); err != nil {
		return nil, nil, err
	}
	d := dto.NewResumeDTO(resume)
	return &d, nil, nil
}

func (uc *ResumeUsecase) Delete(id, userID uuid.UUID) error {
	return uc.resumes.Delete(id, userID)
}
