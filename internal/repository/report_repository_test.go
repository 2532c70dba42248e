package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedbms/internal/db"
	"sedbms/internal/model"
)

func TestReportRepository_MarkDetails(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	students := NewStudentRepository(gormDB)
	marks := NewMarkRepository(gormDB)
	require.NoError(t, students.Create(ctx, rahul()))
	priya := rahul()
	priya.USN, priya.Name = "1CR21CS002", "Priya Sharma"
	require.NoError(t, students.Create(ctx, priya))
	seedSubjects(t, NewSubjectRepository(gormDB))

	for _, m := range []model.Mark{
		{USN: "1CR21CS001", SubjectCode: "CS603", Semester: 6, CIEMarks: 48, SEEMarks: 88},
		{USN: "1CR21CS001", SubjectCode: "CS601", Semester: 6, CIEMarks: 45, SEEMarks: 85},
		{USN: "1CR21CS001", SubjectCode: "CS401", Semester: 4, CIEMarks: 40, SEEMarks: 70},
		{USN: "1CR21CS002", SubjectCode: "CS601", Semester: 6, CIEMarks: 20, SEEMarks: 30},
	} {
		m := m
		_, err := marks.Upsert(ctx, &m)
		require.NoError(t, err)
	}

	reports, err := NewReportRepository(gormDB, db.SQLDriverName(db.DriverSQLite))
	require.NoError(t, err)

	all, err := reports.ListMarkDetails(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "1CR21CS001", all[0].USN)
	assert.Equal(t, 4, all[0].Semester)
	assert.Equal(t, "1CR21CS002", all[3].USN)
	assert.Equal(t, "Priya Sharma", all[3].StudentName)

	mine, err := reports.MarkDetailsForStudent(ctx, "1cr21cs001")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "CS401", mine[0].SubjectCode)
	assert.Equal(t, "Data Structures", mine[0].SubjectName)
	assert.Equal(t, "CS601", mine[1].SubjectCode)
	assert.Equal(t, 4, mine[1].Credits)
	assert.Equal(t, "CS603", mine[2].SubjectCode)

	none, err := reports.MarkDetailsForStudent(ctx, "1CR99XX999")
	require.NoError(t, err)
	assert.Empty(t, none)
}
