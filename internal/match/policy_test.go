package match

import "testing"

func TestNewRejectsMalformedPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{
			name: "high below medium",
			policy: Policy{
				HighThreshold:   60,
				MediumThreshold: 70,
			},
		},
		{
			name: "high equals medium",
			policy: Policy{
				HighThreshold:   70,
				MediumThreshold: 70,
			},
		},
		{
			name: "overlap ratios inverted",
			policy: Policy{
				HighOverlapRatio:   0.5,
				MediumOverlapRatio: 0.7,
			},
		},
		{
			name: "creator token minimum too small",
			policy: Policy{
				CreatorTokenMinLength: 2,
			},
		},
		{
			name: "exact score below high threshold",
			policy: Policy{
				HighThreshold:      95,
				MediumThreshold:    70,
				ExactFilenameScore: 90,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.policy, nil, nil); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestNewZeroPolicyUsesDefaults(t *testing.T) {
	engine, err := New(Policy{}, nil, nil)
	if err != nil {
		t.Fatalf("New(zero policy): %v", err)
	}
	if got := engine.Policy(); got != DefaultPolicy() {
		t.Errorf("normalized policy = %+v, want defaults", got)
	}
}

func TestClassify(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		score float64
		want  Tier
	}{
		{100, TierHigh},
		{90, TierHigh},
		{89.9, TierMedium},
		{70, TierMedium},
		{69.9, TierLow},
		{0.1, TierLow},
		{0, TierNone},
		{-5, TierNone},
	}

	for _, tt := range tests {
		if got := policy.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	policy := Policy{HighThreshold: 95, MediumThreshold: 80}.normalized()
	if err := policy.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := policy.Classify(90); got != TierMedium {
		t.Errorf("Classify(90) with raised thresholds = %v, want MEDIUM", got)
	}
}
