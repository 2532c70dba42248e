package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"sedbms/internal/cache"
	"sedbms/internal/grading"
	"sedbms/internal/logger"
	"sedbms/internal/model"
	"sedbms/internal/repository"
)

const (
	cgpaKeyPrefix = "cgpa:"
	cgpaTTL       = 5 * time.Minute
	recentLimit   = 5
)

// StudentSummary is a student row with its CGPA.
type StudentSummary struct {
	model.Student
	CGPA string `json:"cgpa"`
}

// SemesterReport groups one semester's marks with its SGPA.
type SemesterReport struct {
	Semester int                `json:"semester"`
	Marks    []model.MarkDetail `json:"marks"`
	SGPA     string             `json:"sgpa"`
}

// StudentReport is the per-student performance report.
type StudentReport struct {
	Student   *model.Student   `json:"student"`
	Semesters []SemesterReport `json:"semesters"`
	CGPA      string           `json:"cgpa"`
}

// Dashboard holds the landing page totals.
type Dashboard struct {
	TotalStudents  int64            `json:"total_students"`
	TotalSubjects  int64            `json:"total_subjects"`
	AverageCGPA    string           `json:"average_cgpa"`
	RecentStudents []StudentSummary `json:"recent_students"`
}

// ReportService computes SGPA/CGPA based views.
type ReportService interface {
	StudentReport(ctx context.Context, usn string) (*StudentReport, error)
	CGPA(ctx context.Context, usn string) (decimal.Decimal, error)
	// InvalidateCGPA drops the cached CGPA after the student's marks change.
	InvalidateCGPA(ctx context.Context, usn string)
	Summaries(ctx context.Context, students []model.Student) ([]StudentSummary, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type reportService struct {
	studentRepo repository.StudentRepository
	subjectRepo repository.SubjectRepository
	reportRepo  repository.ReportRepository
	cache       *cache.Client
}

// NewReportService creates a new report service. cache may be nil.
func NewReportService(
	studentRepo repository.StudentRepository,
	subjectRepo repository.SubjectRepository,
	reportRepo repository.ReportRepository,
	cache *cache.Client,
) ReportService {
	return &reportService{
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
		reportRepo:  reportRepo,
		cache:       cache,
	}
}

// StudentReport groups marks by semester in ascending order. A student with
// no marks gets an empty report with CGPA 0.00.
func (s *reportService) StudentReport(ctx context.Context, usn string) (*StudentReport, error) {
	student, err := s.studentRepo.FindByUSN(ctx, usn)
	if err != nil {
		return nil, err
	}

	details, err := s.reportRepo.MarkDetailsForStudent(ctx, student.USN)
	if err != nil {
		return nil, err
	}

	bySemester := make(map[int][]model.MarkDetail)
	all := make([]grading.Row, 0, len(details))
	for _, d := range details {
		d = withGrade(d)
		bySemester[d.Semester] = append(bySemester[d.Semester], d)
		all = append(all, rowOf(d))
	}

	semesters := make([]int, 0, len(bySemester))
	for sem := range bySemester {
		semesters = append(semesters, sem)
	}
	sort.Ints(semesters)

	report := &StudentReport{
		Student:   student,
		Semesters: make([]SemesterReport, 0, len(semesters)),
		CGPA:      grading.Format(grading.CGPA(all)),
	}
	for _, sem := range semesters {
		marks := bySemester[sem]
		rows := make([]grading.Row, len(marks))
		for i, d := range marks {
			rows[i] = rowOf(d)
		}
		report.Semesters = append(report.Semesters, SemesterReport{
			Semester: sem,
			Marks:    marks,
			SGPA:     grading.Format(grading.SGPA(rows)),
		})
	}
	return report, nil
}

// CGPA returns the cumulative GPA, served from cache when possible. A student
// without marks, or an unknown USN, has CGPA zero.
func (s *reportService) CGPA(ctx context.Context, usn string) (decimal.Decimal, error) {
	usn = model.NormalizeKey(usn)
	key := cgpaKeyPrefix + usn

	var cached string
	if s.cache.GetJSON(ctx, key, &cached) {
		if d, err := decimal.NewFromString(cached); err == nil {
			return d, nil
		}
	}

	details, err := s.reportRepo.MarkDetailsForStudent(ctx, usn)
	if err != nil {
		return decimal.Zero, err
	}
	rows := make([]grading.Row, len(details))
	for i, d := range details {
		rows[i] = rowOf(d)
	}
	cgpa := grading.CGPA(rows)

	if err := s.cache.SetJSON(ctx, key, grading.Format(cgpa), cgpaTTL); err != nil {
		logger.GetInstance().Debugf("cache cgpa %s: %v", usn, err)
	}
	return cgpa, nil
}

func (s *reportService) InvalidateCGPA(ctx context.Context, usn string) {
	_ = s.cache.Delete(ctx, cgpaKeyPrefix+model.NormalizeKey(usn))
}

func (s *reportService) Summaries(ctx context.Context, students []model.Student) ([]StudentSummary, error) {
	out := make([]StudentSummary, 0, len(students))
	for _, st := range students {
		cgpa, err := s.CGPA(ctx, st.USN)
		if err != nil {
			return nil, fmt.Errorf("cgpa for %s: %w", st.USN, err)
		}
		out = append(out, StudentSummary{Student: st, CGPA: grading.Format(cgpa)})
	}
	return out, nil
}

// Dashboard averages the already rounded CGPA of every student.
func (s *reportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	cgpas := make([]decimal.Decimal, 0, len(students))
	for _, st := range students {
		cgpa, err := s.CGPA(ctx, st.USN)
		if err != nil {
			return nil, fmt.Errorf("cgpa for %s: %w", st.USN, err)
		}
		cgpas = append(cgpas, cgpa)
	}

	recent, err := s.studentRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentSummaries, err := s.Summaries(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalStudents:  totalStudents,
		TotalSubjects:  subjects,
		AverageCGPA:    grading.Format(grading.Mean(cgpas)),
		RecentStudents: recentSummaries,
	}, nil
}

func rowOf(d model.MarkDetail) grading.Row {
	return grading.Row{CIE: d.CIEMarks, SEE: d.SEEMarks, Credits: d.Credits}
}

func withGrade(d model.MarkDetail) model.MarkDetail {
	d.Total = d.CIEMarks + d.SEEMarks
	d.GradePoint = grading.GradePoint(d.Total)
	return d
}
