package server

import (
	"sync"
	"time"

	"cvrobo/internal/types"

	"github.com/google/uuid"
)

// maxRecentAnalyses bounds the in-memory analysis log.
const maxRecentAnalyses = 1000

// AnalysisRecord is one entry in the in-process analysis log. Flat carries
// the flattened result form so log exports need no further serialization.
type AnalysisRecord struct {
	ID           string             `json:"id"`
	Time         time.Time          `json:"time"`
	DocumentType types.DocumentType `json:"documentType"`
	ATSScore     int                `json:"atsScore"`
	Band         string             `json:"band"`
	Category     string             `json:"category"`
	Role         string             `json:"role"`
	Flat         map[string]string  `json:"flat,omitempty"`
}

// StatsTracker accumulates per-server analysis statistics. It keeps counts by
// document type and score band plus a bounded log of recent analyses.
type StatsTracker struct {
	mu sync.RWMutex

	total    int64
	scored   int64
	scoreSum int64
	byType   map[types.DocumentType]int64
	byBand   map[string]int64
	records  []AnalysisRecord
}

// NewStatsTracker creates an empty stats tracker
func NewStatsTracker() *StatsTracker {
	return &StatsTracker{
		byType: make(map[types.DocumentType]int64),
		byBand: make(map[string]int64),
	}
}

// Record registers a completed analysis and returns its request ID.
func (st *StatsTracker) Record(result types.AnalysisResult) string {
	id := uuid.NewString()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.total++
	st.byType[result.DocumentType]++

	record := AnalysisRecord{
		ID:           id,
		Time:         time.Now(),
		DocumentType: result.DocumentType,
		Category:     result.Profile.Category,
		Role:         result.Profile.Role,
	}

	// Scores only exist for documents that passed classification
	if !result.ClassificationOnly {
		record.ATSScore = result.ATSScore
		record.Band = types.ScoreBand(result.ATSScore)
		record.Flat = result.Flatten()
		st.byBand[record.Band]++
		st.scored++
		st.scoreSum += int64(result.ATSScore)
	}

	st.records = append(st.records, record)
	if len(st.records) > maxRecentAnalyses {
		st.records = st.records[len(st.records)-maxRecentAnalyses:]
	}

	return id
}

// Snapshot returns the current statistics for the stats endpoint.
func (st *StatsTracker) Snapshot() map[string]any {
	st.mu.RLock()
	defer st.mu.RUnlock()

	byType := make(map[string]int64, len(st.byType))
	for docType, count := range st.byType {
		byType[string(docType)] = count
	}

	byBand := make(map[string]int64, len(st.byBand))
	for band, count := range st.byBand {
		byBand[band] = count
	}

	var average float64
	if st.scored > 0 {
		average = float64(st.scoreSum) / float64(st.scored)
	}

	return map[string]any{
		"total_analyses":     st.total,
		"average_score":      average,
		"by_document_type":   byType,
		"score_distribution": byBand,
		"recent_count":       len(st.records),
	}
}

// Recent returns up to n of the most recent analysis records, newest last.
func (st *StatsTracker) Recent(n int) []AnalysisRecord {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if n <= 0 || n > len(st.records) {
		n = len(st.records)
	}
	out := make([]AnalysisRecord, n)
	copy(out, st.records[len(st.records)-n:])
	return out
}
