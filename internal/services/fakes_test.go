package services

import (
	"context"
	"time"

	"planboard/internal/models"
)

// In-memory repository fakes. Each one keeps records in a map and applies
// the same filter semantics the SQL layer does.

type fakeProjectRepo struct {
	records map[string]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{records: map[string]*models.Project{}}
}

func (r *fakeProjectRepo) Store(_ context.Context, p *models.Project) error {
	cp := *p
	r.records[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	p, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) FindAll(_ context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.records {
		if filter.ManagerID != nil && p.ManagerID != *filter.ManagerID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *models.Project) error {
	cp := *p
	r.records[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeProjectRepo) UpdateStatus(_ context.Context, id string, to models.ProjectStatus) error {
	if p, ok := r.records[id]; ok {
		p.Status = to
	}
	return nil
}

type fakeTaskRepo struct {
	records map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{records: map[string]*models.Task{}}
}

func (r *fakeTaskRepo) Store(_ context.Context, t *models.Task) error {
	cp := *t
	r.records[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*models.Task, error) {
	t, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) FindAll(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.records {
		if filter.ProjectID != nil && t.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.AssigneeID != nil && t.AssigneeID != *filter.AssigneeID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *models.Task) error {
	cp := *t
	r.records[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeTaskRepo) DeleteByProject(_ context.Context, projectID string) error {
	for id, t := range r.records {
		if t.ProjectID == projectID {
			delete(r.records, id)
		}
	}
	return nil
}

func (r *fakeTaskRepo) UpdateAssignee(_ context.Context, id string, assigneeID string) error {
	if t, ok := r.records[id]; ok {
		t.AssigneeID = assigneeID
	}
	return nil
}

type fakeResourceRepo struct {
	records map[string]*models.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{records: map[string]*models.Resource{}}
}

func (r *fakeResourceRepo) Store(_ context.Context, res *models.Resource) error {
	cp := *res
	r.records[res.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) FindByID(_ context.Context, id string) (*models.Resource, error) {
	res, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	cp.AvailableHours = cp.TotalHours - cp.AssignedHours
	return &cp, nil
}

func (r *fakeResourceRepo) FindAll(_ context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	var out []models.Resource
	for _, res := range r.records {
		if filter.Type != nil && res.Type != *filter.Type {
			continue
		}
		cp := *res
		cp.AvailableHours = cp.TotalHours - cp.AssignedHours
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeResourceRepo) Update(_ context.Context, res *models.Resource) error {
	cp := *res
	r.records[res.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeResourceRepo) UpdateAssignedHours(_ context.Context, id string, hours float64) error {
	if res, ok := r.records[id]; ok {
		res.AssignedHours = hours
	}
	return nil
}

type fakeMemberRepo struct {
	records map[string]*models.TeamMember
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{records: map[string]*models.TeamMember{}}
}

func (r *fakeMemberRepo) Store(_ context.Context, m *models.TeamMember) error {
	cp := *m
	r.records[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id string) (*models.TeamMember, error) {
	m, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*models.TeamMember, error) {
	for _, m := range r.records {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberRepo) FindAll(_ context.Context) ([]models.TeamMember, error) {
	var out []models.TeamMember
	for _, m := range r.records {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, m *models.TeamMember) error {
	cp := *m
	r.records[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeMemberRepo) UpdateRefresh(_ context.Context, id string, token string, expiresAt time.Time) error {
	if m, ok := r.records[id]; ok {
		m.RefreshToken = &token
		m.RefreshExpiresAt = &expiresAt
	}
	return nil
}

func (r *fakeMemberRepo) GetTelegramSettings(_ context.Context, id string) (int64, bool, error) {
	m, ok := r.records[id]
	if !ok {
		return 0, false, nil
	}
	return m.TelegramChatID, m.NotifyTelegram, nil
}

type fakeAssignmentRepo struct {
	records map[string]*models.ResourceAssignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{records: map[string]*models.ResourceAssignment{}}
}

func (r *fakeAssignmentRepo) Store(_ context.Context, a *models.ResourceAssignment) error {
	cp := *a
	r.records[a.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) FindByID(_ context.Context, id string) (*models.ResourceAssignment, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssignmentRepo) FindAll(_ context.Context, filter models.AssignmentFilter) ([]models.ResourceAssignment, error) {
	var out []models.ResourceAssignment
	for _, a := range r.records {
		if filter.TaskID != nil && a.TaskID != *filter.TaskID {
			continue
		}
		if filter.ResourceID != nil && a.ResourceID != *filter.ResourceID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Update(_ context.Context, a *models.ResourceAssignment) error {
	cp := *a
	r.records[a.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeAssignmentRepo) DeleteByTask(_ context.Context, taskID string) error {
	for id, a := range r.records {
		if a.TaskID == taskID {
			delete(r.records, id)
		}
	}
	return nil
}
