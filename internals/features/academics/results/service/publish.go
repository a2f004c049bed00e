// file: internals/features/academics/results/service/publish.go
package service

import (
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	resultModel "schoolhub_backend/internals/features/academics/results/model"
)

var (
	ErrResultNotFound   = errors.New("result not found")
	ErrAlreadyPublished = errors.New("result already published")
)

// PublishResult flips a draft result to published and recomputes the
// class-wide statistics (position, class average) for every published
// result of the same class/term/year, in one transaction.
//
// Position is a dense rank by average score descending; equal averages
// share a position. Class average is the mean of the published students'
// average scores.
func PublishResult(db *gorm.DB, resultID uuid.UUID) (*resultModel.Result, error) {
	var published resultModel.Result

	err := db.Transaction(func(tx *gorm.DB) error {
		var r resultModel.Result
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&r, "result_id = ?", resultID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResultNotFound
			}
			return err
		}
		if r.ResultStatus == resultModel.ResultStatusPublished {
			return ErrAlreadyPublished
		}

		r.ResultStatus = resultModel.ResultStatusPublished
		if err := tx.Save(&r).Error; err != nil {
			return err
		}

		if err := recomputeClassStats(tx, r.ResultClassID, r.ResultTerm, r.ResultAcademicYear); err != nil {
			return err
		}

		// reload with fresh position/class average
		if err := tx.Preload("ResultSubjects").
			First(&published, "result_id = ?", resultID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &published, nil
}

// ClassAverage is the 2-dp mean of the published students' average scores.
func ClassAverage(averages []float64) float64 {
	if len(averages) == 0 {
		return 0
	}
	var sum float64
	for _, a := range averages {
		sum += a
	}
	return round2(sum / float64(len(averages)))
}

// DensePositions ranks averages descending, dense: equal averages share a
// position and the next distinct average takes position+1. The returned
// slice is aligned to the input order.
func DensePositions(averages []float64) []int {
	idx := make([]int, len(averages))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return averages[idx[a]] > averages[idx[b]]
	})

	positions := make([]int, len(averages))
	position := 0
	var prevAvg float64
	for rank, i := range idx {
		if rank == 0 || averages[i] != prevAvg {
			position++
		}
		prevAvg = averages[i]
		positions[i] = position
	}
	return positions
}

// recomputeClassStats ranks all published results of one class/term/year
// and writes position + class average back on each row.
func recomputeClassStats(tx *gorm.DB, classID uuid.UUID, term resultModel.Term, year string) error {
	var peers []resultModel.Result
	if err := tx.
		Where("result_class_id = ? AND result_term = ? AND result_academic_year = ?", classID, term, year).
		Where("result_status = ?", resultModel.ResultStatusPublished).
		Find(&peers).Error; err != nil {
		return err
	}
	if len(peers) == 0 {
		return nil
	}

	averages := make([]float64, len(peers))
	for i, p := range peers {
		averages[i] = p.ResultAverageScore
	}
	classAvg := ClassAverage(averages)
	positions := DensePositions(averages)

	for i := range peers {
		if err := tx.Model(&resultModel.Result{}).
			Where("result_id = ?", peers[i].ResultID).
			Updates(map[string]any{
				"result_position":      positions[i],
				"result_class_average": classAvg,
			}).Error; err != nil {
			return err
		}
	}

	log.Printf("[RESULTS] class=%s term=%s year=%s published=%d class_avg=%.2f", classID, term, year, len(peers), classAvg)
	return nil
}
