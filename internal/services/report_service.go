package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"planboard/internal/models"
	"planboard/internal/pdf"
	"planboard/internal/planning"
	"planboard/internal/repositories"
)

// DashboardSummary backs the landing page widgets.
type DashboardSummary struct {
	ProjectCount       int     `json:"project_count"`
	ActiveProjects     int     `json:"active_projects"`
	TaskCount          int     `json:"task_count"`
	CompletedTasks     int     `json:"completed_tasks"`
	TotalBudget        float64 `json:"total_budget"`
	AverageProgress    float64 `json:"average_progress"`
	OverAssignedCount  int     `json:"over_assigned_count"`
	ResourceCount      int     `json:"resource_count"`
	TeamMemberCount    int     `json:"team_member_count"`
	TotalAssignedHours float64 `json:"total_assigned_hours"`
	TotalCapacityHours float64 `json:"total_capacity_hours"`
	OverallUtilization float64 `json:"overall_utilization"`
}

// ProjectReport is the per-project roll-up.
type ProjectReport struct {
	Project         models.Project `json:"project"`
	Progress        float64        `json:"progress"`
	PlannedCost     float64        `json:"planned_cost"`
	ActualCost      float64        `json:"actual_cost"`
	BudgetVariance  float64        `json:"budget_variance"`
	RemainingBudget float64        `json:"remaining_budget"`
	OverBudget      bool           `json:"over_budget"`
	TaskCount       int            `json:"task_count"`
	CompletedTasks  int            `json:"completed_tasks"`
}

// ResourceUtilization pairs a resource with its raw utilization percentage.
// Values above 100 are reported as-is (over-utilization signal).
type ResourceUtilization struct {
	Resource    models.Resource `json:"resource"`
	Utilization float64         `json:"utilization"`
}

// ReportService computes every dashboard/report aggregate. It reads full
// snapshots from the repositories and hands them to the pure planning
// functions; nothing here mutates state except the generated PDF files.
type ReportService struct {
	projects    repositories.ProjectRepository
	tasks       repositories.TaskRepository
	resources   repositories.ResourceRepository
	members     repositories.TeamMemberRepository
	assignments repositories.AssignmentRepository
	generator   pdf.Generator
	emails      EmailService
}

func NewReportService(
	projects repositories.ProjectRepository,
	tasks repositories.TaskRepository,
	resources repositories.ResourceRepository,
	members repositories.TeamMemberRepository,
	assignments repositories.AssignmentRepository,
	generator pdf.Generator,
	emails EmailService,
) *ReportService {
	return &ReportService{
		projects:    projects,
		tasks:       tasks,
		resources:   resources,
		members:     members,
		assignments: assignments,
		generator:   generator,
		emails:      emails,
	}
}

func (s *ReportService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	projects, err := s.projects.FindAll(ctx, models.ProjectFilter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.FindAll(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.FindAll(ctx, models.AssignmentFilter{})
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		ProjectCount:    len(projects),
		TaskCount:       len(tasks),
		ResourceCount:   len(resources),
		TeamMemberCount: len(members),
		AverageProgress: planning.ProjectProgress(tasks),
	}
	for _, p := range projects {
		summary.TotalBudget += p.TotalBudget
		if p.Status == models.ProjectActive {
			summary.ActiveProjects++
		}
	}
	for _, t := range tasks {
		if t.Completed {
			summary.CompletedTasks++
		}
	}
	for _, r := range resources {
		summary.TotalAssignedHours += r.AssignedHours
		summary.TotalCapacityHours += r.TotalHours
	}
	if summary.TotalCapacityHours > 0 {
		summary.OverallUtilization = summary.TotalAssignedHours / summary.TotalCapacityHours * 100
	}
	summary.OverAssignedCount = len(planning.OverAllocatedResources(resources, assignments, tasks))
	return summary, nil
}

func (s *ReportService) GetProjectReport(ctx context.Context, projectID string) (*ProjectReport, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.FindAll(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.FindAll(ctx, models.AssignmentFilter{})
	if err != nil {
		return nil, err
	}

	planned := planning.PlannedCost(tasks, assignments, resources)
	actual := planning.ActualCost(tasks, assignments, resources)
	remaining := planning.RemainingBudget(*project, tasks)

	report := &ProjectReport{
		Project:         *project,
		Progress:        planning.ProjectProgress(tasks),
		PlannedCost:     planned,
		ActualCost:      actual,
		BudgetVariance:  planning.BudgetVariance(planned, actual),
		RemainingBudget: remaining,
		OverBudget:      remaining < 0,
		TaskCount:       len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			report.CompletedTasks++
		}
	}
	return report, nil
}

func (s *ReportService) GetUtilization(ctx context.Context) ([]ResourceUtilization, error) {
	resources, err := s.resources.FindAll(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]ResourceUtilization, 0, len(resources))
	for _, r := range resources {
		out = append(out, ResourceUtilization{Resource: r, Utilization: planning.Utilization(r)})
	}
	return out, nil
}

func (s *ReportService) GetOverAllocation(ctx context.Context) ([]planning.OverAllocation, error) {
	resources, err := s.resources.FindAll(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.FindAll(ctx, models.AssignmentFilter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	return planning.OverAllocatedResources(resources, assignments, tasks), nil
}

func (s *ReportService) GetWorkloads(ctx context.Context) ([]planning.Workload, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]planning.Workload, 0, len(members))
	for _, m := range members {
		out = append(out, planning.MemberWorkload(m.ID, tasks))
	}
	return out, nil
}

// GenerateProjectPDF renders the project roll-up to a file and returns its
// path.
func (s *ReportService) GenerateProjectPDF(ctx context.Context, projectID string) (string, error) {
	report, err := s.GetProjectReport(ctx, projectID)
	if err != nil {
		return "", err
	}
	if report == nil {
		return "", nil
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return "", err
	}
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return "", err
	}
	nameByID := make(map[string]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.Name
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		assignee := nameByID[t.AssigneeID]
		if assignee == "" {
			assignee = "—"
		}
		rows = append(rows, []string{
			t.Name, assignee, planning.FormatPercent(float64(t.Progress)), string(t.Status),
		})
	}

	managerName := nameByID[report.Project.ManagerID]
	if managerName == "" {
		managerName = "—"
	}

	return s.generator.GenerateProjectReport(pdf.ProjectReportData{
		ProjectName:     report.Project.Name,
		ManagerName:     managerName,
		StartDate:       report.Project.StartDate,
		EndDate:         report.Project.EndDate,
		Progress:        planning.FormatPercent(report.Progress),
		TotalBudget:     planning.FormatCurrency(report.Project.TotalBudget),
		PlannedCost:     planning.FormatCurrency(report.PlannedCost),
		ActualCost:      planning.FormatCurrency(report.ActualCost),
		RemainingBudget: planning.FormatCurrency(report.RemainingBudget),
		OverBudget:      report.OverBudget,
		TaskRows:        rows,
		GeneratedAt:     time.Now(),
	})
}

// GenerateWorkloadPDF renders the team workload plus the over-assignment
// section.
func (s *ReportService) GenerateWorkloadPDF(ctx context.Context) (string, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return "", err
	}
	workloads, err := s.GetWorkloads(ctx)
	if err != nil {
		return "", err
	}
	over, err := s.GetOverAllocation(ctx)
	if err != nil {
		return "", err
	}

	nameByID := make(map[string]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.Name
	}

	rows := make([][]string, 0, len(workloads))
	for _, w := range workloads {
		rows = append(rows, []string{
			nameByID[w.MemberID],
			strconv.Itoa(w.TaskCount),
			strconv.Itoa(w.CompletedCount),
			fmt.Sprintf("%.1f", w.EstimatedHours),
		})
	}

	var overLines []string
	for _, o := range over {
		line := o.Resource.Name + ": "
		for i, t := range o.Tasks {
			if i > 0 {
				line += ", "
			}
			line += t.Name
		}
		overLines = append(overLines, line)
	}

	return s.generator.GenerateWorkloadReport(pdf.WorkloadReportData{
		Rows:        rows,
		OverLoaded:  overLines,
		GeneratedAt: time.Now(),
	})
}

// NotifyOverAllocation emails each affected project manager a summary of the
// over-assigned resources touching their projects. Returns the number of
// alerts sent.
func (s *ReportService) NotifyOverAllocation(ctx context.Context) (int, error) {
	over, err := s.GetOverAllocation(ctx)
	if err != nil {
		return 0, err
	}
	if len(over) == 0 {
		return 0, nil
	}
	projects, err := s.projects.FindAll(ctx, models.ProjectFilter{})
	if err != nil {
		return 0, err
	}
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	managerByProject := make(map[string]string, len(projects))
	for _, p := range projects {
		managerByProject[p.ID] = p.ManagerID
	}
	emailByMember := make(map[string]string, len(members))
	for _, m := range members {
		emailByMember[m.ID] = m.Email
	}

	sent := 0
	for _, o := range over {
		// one alert per manager whose project is implicated
		notified := map[string]bool{}
		var taskNames []string
		for _, t := range o.Tasks {
			taskNames = append(taskNames, t.Name)
		}
		for _, t := range o.Tasks {
			managerID := managerByProject[t.ProjectID]
			email := emailByMember[managerID]
			if managerID == "" || email == "" || notified[managerID] {
				continue
			}
			notified[managerID] = true
			if err := s.emails.SendOverAllocationAlert(email, o.Resource.Name, taskNames); err != nil {
				log.Printf("[report][notify][err] resource=%s manager=%s: %v", o.Resource.ID, managerID, err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}
