package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sedbms/internal/db"
	"sedbms/internal/model"
)

// newTestDB opens a private in-memory database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open(db.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	return gormDB
}

func rahul() *model.Student {
	return &model.Student{
		USN:             "1cr21cs001",
		Name:            "Rahul Kumar",
		Branch:          "CSE",
		AdmissionYear:   2021,
		CurrentSemester: 6,
		Email:           "rahul@example.com",
		Phone:           "9876543210",
	}
}

// storedMarks reads a student's mark rows straight from the table.
func storedMarks(t *testing.T, gormDB *gorm.DB, usn string) []model.Mark {
	t.Helper()
	var marks []model.Mark
	require.NoError(t, gormDB.Where("usn = ?", usn).Order("semester").Order("subject_code").Find(&marks).Error)
	return marks
}

func seedSubjects(t *testing.T, repo SubjectRepository) {
	t.Helper()
	ctx := context.Background()
	for _, s := range []model.Subject{
		{Code: "CS601", Name: "DBMS", Credits: 4, Semester: 6},
		{Code: "CS602", Name: "Computer Networks", Credits: 4, Semester: 6},
		{Code: "CS603", Name: "Software Engineering", Credits: 3, Semester: 6},
		{Code: "CS401", Name: "Data Structures", Credits: 4, Semester: 4},
	} {
		s := s
		require.NoError(t, repo.Create(ctx, &s))
	}
}
