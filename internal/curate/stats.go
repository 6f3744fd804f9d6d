package curate

// Stats accumulates drop counts and totals across the pipeline stages. It is
// passed by reference through the stages; no stage drops anything silently.
type Stats struct {
	InitialComposers          int `json:"initial_composers"`
	ComposersDroppedBirthYear int `json:"composers_dropped_birth_year"`
	ComposersDroppedMinWorks  int `json:"composers_dropped_min_works"`
	FinalComposers            int `json:"final_composers"`

	RootWorksConsidered       int `json:"total_root_works_considered"`
	PartsDroppedMinRecordings int `json:"parts_dropped_min_recordings"`
	PartsDroppedNoTrackID     int `json:"parts_dropped_no_deezerid"`
	PartsDroppedDynamicScore  int `json:"parts_dropped_by_dynamic_score"`
	WorksDroppedBecameEmpty   int `json:"works_dropped_became_empty"`
	WorksDroppedMinWSS        int `json:"works_dropped_by_min_wss"`

	WorksDroppedMultiComposer  int `json:"works_dropped_multiple_composers"`
	WorksDroppedDuplicates     int `json:"works_dropped_duplicates"`
	PartsDroppedCrossWork      int `json:"parts_dropped_cross_work_duplicate"`
	PartsDroppedDuplicateTrack int `json:"parts_dropped_duplicate_deezer"`
	WorksDroppedEmptyAfterDedup int `json:"works_dropped_empty_after_deezer_dedup"`

	FinalWorks int `json:"final_works"`
	FinalParts int `json:"final_parts"`
}
