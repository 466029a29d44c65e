package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"cvrobo/internal/types"
)

func analysisResult(score int) types.AnalysisResult {
	return types.AnalysisResult{
		DocumentType: types.DocumentTypeResume,
		ATSScore:     score,
		Profile:      types.RoleProfileRef{Category: "Software Development", Role: "Backend Developer"},
	}
}

func TestStatsTrackerRecord(t *testing.T) {
	st := NewStatsTracker()

	id := st.Record(analysisResult(85))
	if id == "" {
		t.Fatal("expected a request ID")
	}
	st.Record(analysisResult(65))
	st.Record(analysisResult(40))
	st.Record(types.AnalysisResult{
		DocumentType:       types.DocumentTypeCoverLetter,
		ClassificationOnly: true,
	})

	snapshot := st.Snapshot()
	if got := snapshot["total_analyses"].(int64); got != 4 {
		t.Errorf("total_analyses = %d, want 4", got)
	}

	// The average covers scored analyses only, so the classification-only
	// record does not drag it down.
	if got := snapshot["average_score"].(float64); got != 190.0/3.0 {
		t.Errorf("average_score = %v, want %v", got, 190.0/3.0)
	}

	byType := snapshot["by_document_type"].(map[string]int64)
	if byType["resume"] != 3 || byType["cover_letter"] != 1 {
		t.Errorf("unexpected by_document_type: %v", byType)
	}

	// Classification-only results never enter the score distribution.
	byBand := snapshot["score_distribution"].(map[string]int64)
	if byBand["Excellent"] != 1 || byBand["Good"] != 1 || byBand["Needs Improvement"] != 1 {
		t.Errorf("unexpected score_distribution: %v", byBand)
	}
	var bandTotal int64
	for _, count := range byBand {
		bandTotal += count
	}
	if bandTotal != 3 {
		t.Errorf("expected 3 banded analyses, got %d", bandTotal)
	}

	records := st.Recent(4)
	if records[0].Flat == nil {
		t.Error("scored records must carry the flattened result")
	}
	if records[0].Flat["ats_score"] != "85" || records[0].Flat["document_type"] != "resume" {
		t.Errorf("unexpected flattened record: %v", records[0].Flat)
	}
	if records[3].Flat != nil {
		t.Error("classification-only records must not carry a flattened result")
	}
}

func TestStatsTrackerEmptyAverage(t *testing.T) {
	st := NewStatsTracker()

	if got := st.Snapshot()["average_score"].(float64); got != 0 {
		t.Errorf("average_score = %v, want 0 with no scored analyses", got)
	}

	st.Record(types.AnalysisResult{
		DocumentType:       types.DocumentTypeOther,
		ClassificationOnly: true,
	})
	if got := st.Snapshot()["average_score"].(float64); got != 0 {
		t.Errorf("average_score = %v, want 0 with only classification-only records", got)
	}
}

func TestStatsTrackerRecent(t *testing.T) {
	st := NewStatsTracker()

	for i := 0; i < 5; i++ {
		st.Record(analysisResult(50 + i*10))
	}

	recent := st.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	// Newest last.
	if recent[0].ATSScore != 80 || recent[1].ATSScore != 90 {
		t.Errorf("unexpected recent scores: %d, %d", recent[0].ATSScore, recent[1].ATSScore)
	}

	if got := st.Recent(0); len(got) != 5 {
		t.Errorf("Recent(0) must return everything, got %d", len(got))
	}
	if got := st.Recent(100); len(got) != 5 {
		t.Errorf("Recent beyond the log must return everything, got %d", len(got))
	}
}

func TestStatsTrackerBoundsRecords(t *testing.T) {
	st := NewStatsTracker()

	for i := 0; i < maxRecentAnalyses+25; i++ {
		st.Record(analysisResult(70))
	}

	snapshot := st.Snapshot()
	if got := snapshot["recent_count"].(int); got != maxRecentAnalyses {
		t.Errorf("recent_count = %d, want %d", got, maxRecentAnalyses)
	}
	if got := snapshot["total_analyses"].(int64); got != int64(maxRecentAnalyses+25) {
		t.Errorf("total_analyses = %d, want %d", got, maxRecentAnalyses+25)
	}
}

func TestStatsHandlerRecentView(t *testing.T) {
	s := &Server{Version: "test", Stats: NewStatsTracker()}
	for i := 0; i < 3; i++ {
		s.Stats.Record(analysisResult(60 + i*10))
	}

	req := httptest.NewRequest(http.MethodGet, "/stats?recent=2", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	recent, ok := body["recent"].([]any)
	if !ok || len(recent) != 2 {
		t.Fatalf("recent = %v, want 2 records", body["recent"])
	}
	newest := recent[1].(map[string]any)
	if newest["atsScore"].(float64) != 80 {
		t.Errorf("newest record score = %v, want 80", newest["atsScore"])
	}
	if _, ok := newest["flat"].(map[string]any); !ok {
		t.Errorf("recent records must include the flattened result: %v", newest)
	}

	// Without the parameter the recent view is omitted.
	req = httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec = httptest.NewRecorder()
	s.statsHandler(rec, req)
	body = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if _, exists := body["recent"]; exists {
		t.Error("recent view must be opt-in")
	}

	req = httptest.NewRequest(http.MethodGet, "/stats?recent=abc", nil)
	rec = httptest.NewRecorder()
	s.statsHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for malformed recent parameter, want 400", rec.Code)
	}
}

func TestStatsTrackerConcurrentAccess(t *testing.T) {
	st := NewStatsTracker()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				st.Record(analysisResult(75))
				st.Snapshot()
				st.Recent(10)
			}
		}()
	}
	wg.Wait()

	if got := st.Snapshot()["total_analyses"].(int64); got != 1000 {
		t.Errorf("total_analyses = %d, want 1000", got)
	}
}
