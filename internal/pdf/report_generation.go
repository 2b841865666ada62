package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is the printable-report interface; easy to mock in tests.
type Generator interface {
	GenerateProjectReport(data ProjectReportData) (string, error)
	GenerateWorkloadReport(data WorkloadReportData) (string, error)
}

// ReportGenerator renders dashboard aggregates into A4 PDFs.
type ReportGenerator struct {
	RootDir  string // storage root, e.g. "./files"
	FontPath string // path to a TTF, e.g. "assets/fonts/DejaVuSans.ttf"
	fontName string
}

type ProjectReportData struct {
	ProjectName     string
	ManagerName     string
	StartDate       time.Time
	EndDate         time.Time
	Progress        string // formatted percentage
	TotalBudget     string // formatted amounts
	PlannedCost     string
	ActualCost      string
	RemainingBudget string
	OverBudget      bool
	TaskRows        [][]string // name, assignee, progress, status
	GeneratedAt     time.Time
	Filename        string // without path; generated when empty
}

type WorkloadReportData struct {
	Rows        [][]string // member, tasks, completed, estimated hours
	OverLoaded  []string   // over-assigned resource lines
	GeneratedAt time.Time
	Filename    string
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

func (g *ReportGenerator) GenerateProjectReport(data ProjectReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("project_report_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Project report — %s", data.ProjectName), false)
	pdf.SetAuthor("planboard", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "PROJECT REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  —  generated %s", data.ProjectName, data.GeneratedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	g.sectionTitle(pdf, "Overview")
	g.kvLine(pdf, "Manager", data.ManagerName)
	g.kvLine(pdf, "Dates", fmt.Sprintf("%s — %s",
		data.StartDate.Format("02.01.2006"), data.EndDate.Format("02.01.2006")))
	g.kvLine(pdf, "Progress", data.Progress)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Budget")
	g.kvLine(pdf, "Total budget", data.TotalBudget)
	g.kvLine(pdf, "Planned cost", data.PlannedCost)
	g.kvLine(pdf, "Actual cost", data.ActualCost)
	g.kvLine(pdf, "Remaining", data.RemainingBudget)
	if data.OverBudget {
		pdf.SetFont(g.fontName, "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 7, "Task allocations exceed the project budget.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Tasks")
	g.table(pdf, []string{"Task", "Assignee", "Progress", "Status"}, []float64{70, 45, 25, 30}, data.TaskRows)

	g.pageFooter(pdf)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *ReportGenerator) GenerateWorkloadReport(data WorkloadReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("workload_report_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Workload report", false)
	pdf.SetAuthor("planboard", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "TEAM WORKLOAD", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 12)
	pdf.CellFormat(0, 7, "generated "+data.GeneratedAt.Format("02.01.2006"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Load per member")
	g.table(pdf, []string{"Member", "Tasks", "Completed", "Est. hours"}, []float64{80, 30, 30, 30}, data.Rows)
	pdf.Ln(3)
	g.hr(pdf)

	g.sectionTitle(pdf, "Over-assigned resources")
	pdf.SetFont(g.fontName, "", 11)
	if len(data.OverLoaded) == 0 {
		pdf.MultiCell(0, 6, "No scheduling conflicts detected.", "", "L", false)
	}
	for _, line := range data.OverLoaded {
		pdf.MultiCell(0, 6, "• "+line, "", "L", false)
	}

	g.pageFooter(pdf)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // safety
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) table(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont(g.fontName, "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(g.fontName, "", 10)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pdf.CellFormat(widths[i], 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (g *ReportGenerator) pageFooter(pdf *gofpdf.Fpdf) {
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})
}
