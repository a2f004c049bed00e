// file: internals/features/finance/fees/service/fee_applier.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
)

var ErrStructureNotFound = errors.New("fee structure not found")

// ApplyReport sums up one apply run.
type ApplyReport struct {
	StudentsMatched int `json:"students_matched"`
	RecordsCreated  int `json:"records_created"`
	RecordsSkipped  int `json:"records_skipped"`
}

// ApplyFeeStructure stamps a FeeRecord for every active student whose class
// matches the structure's level. Idempotent: students who already carry a
// record for this structure are skipped, so re-running after adding students
// only fills the gaps.
func ApplyFeeStructure(db *gorm.DB, structureID uuid.UUID) (*ApplyReport, error) {
	var report ApplyReport

	err := db.Transaction(func(tx *gorm.DB) error {
		var fs feeModel.FeeStructure
		if err := tx.First(&fs, "fee_structure_id = ?", structureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStructureNotFound
			}
			return err
		}

		var classIDs []string
		if err := tx.Model(&classModel.Class{}).
			Where("class_level = ?", fs.FeeStructureClassLevel).
			Pluck("class_id", &classIDs).Error; err != nil {
			return err
		}
		if len(classIDs) == 0 {
			return nil
		}

		var students []studentModel.Student
		if err := tx.
			Where("student_class_id IN ?", classIDs).
			Where("student_status = ?", studentModel.StudentStatusActive).
			Find(&students).Error; err != nil {
			return err
		}
		report.StudentsMatched = len(students)
		if len(students) == 0 {
			return nil
		}

		records := make([]feeModel.FeeRecord, 0, len(students))
		for _, s := range students {
			records = append(records, feeModel.FeeRecord{
				FeeRecordStructureID:    &fs.FeeStructureID,
				FeeRecordStudentID:      s.StudentID,
				FeeRecordStudentName:    s.FullName(),
				FeeRecordClassID:        s.StudentClassID,
				FeeRecordFeeType:        fs.FeeStructureFeeType,
				FeeRecordAmountKobo:     fs.FeeStructureAmountKobo,
				FeeRecordAmountPaidKobo: 0,
				FeeRecordBalanceKobo:    fs.FeeStructureAmountKobo,
				FeeRecordDueDate:        fs.FeeStructureDueDate,
				FeeRecordStatus:         feeModel.FeeStatusUnpaid,
				FeeRecordTerm:           fs.FeeStructureTerm,
				FeeRecordAcademicYear:   fs.FeeStructureAcademicYear,
			})
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fee_record_structure_id"}, {Name: "fee_record_student_id"}},
			DoNothing: true,
		}).CreateInBatches(&records, 200)
		if res.Error != nil {
			return res.Error
		}
		report.RecordsCreated = int(res.RowsAffected)
		report.RecordsSkipped = report.StudentsMatched - report.RecordsCreated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
