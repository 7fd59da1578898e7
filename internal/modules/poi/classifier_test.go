package poi

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// countingLLM records Generate calls and returns a canned reply.
type countingLLM struct {
	calls int
	reply string
	err   error
}

func (s *countingLLM) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newTestClassifier(llm *countingLLM) (*Classifier, *countingLLM) {
	if llm == nil {
		return NewClassifier(DefaultMarkers(), nil, zerolog.Nop()), nil
	}
	return NewClassifier(DefaultMarkers(), llm, zerolog.Nop()), llm
}

func TestActionPhraseDominatesAllCategories(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "true"})

	cases := []struct {
		name     string
		category Category
	}{
		{"入住酒店", CategoryActivity},
		{"入住酒店", CategoryHotel},
		{"退房", CategoryHotel},
		{"抵达机场", CategoryActivity},
		{"准备返程", CategoryActivity},
		{"返回家乡", CategoryMeal},
	}
	for _, tc := range cases {
		if c.Classify(context.Background(), tc.name, tc.category) {
			t.Errorf("%s (%s): expected non-POI", tc.name, tc.category)
		}
	}
	if llm.calls != 0 {
		t.Errorf("expected zero model calls, got %d", llm.calls)
	}
}

func TestBlankNameIsNeverPOI(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "true"})
	for _, name := range []string{"", "   "} {
		if c.Classify(context.Background(), name, CategoryHotel) {
			t.Errorf("blank name %q classified as POI", name)
		}
	}
	if llm.calls != 0 {
		t.Errorf("expected zero model calls, got %d", llm.calls)
	}
}

func TestHotelAndMealDefaultToPOIWithoutModelCall(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "false"})

	if !c.Classify(context.Background(), "希尔顿酒店", CategoryHotel) {
		t.Error("named hotel should be a POI")
	}
	if !c.Classify(context.Background(), "全聚德烤鸭店", CategoryMeal) {
		t.Error("named restaurant should be a POI")
	}
	if llm.calls != 0 {
		t.Errorf("expected zero model calls, got %d", llm.calls)
	}
}

func TestActivityLocationFeatureShortcut(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "false"})

	for _, name := range []string{"狮子林", "天安门广场", "苏州博物馆", "拙政园"} {
		if !c.Classify(context.Background(), name, CategoryActivity) {
			t.Errorf("%s: expected POI via location feature", name)
		}
	}
	if llm.calls != 0 {
		t.Errorf("expected zero model calls, got %d", llm.calls)
	}
}

func TestShortGenericActivityIsNotPOI(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "true"})

	for _, name := range []string{"用餐", "散步", "休息", "购物", "自由活动"} {
		if c.Classify(context.Background(), name, CategoryActivity) {
			t.Errorf("%s: generic activity should not be a POI", name)
		}
	}
	if llm.calls != 0 {
		t.Errorf("expected zero model calls, got %d", llm.calls)
	}
}

func TestAmbiguousActivityReachesModel(t *testing.T) {
	c, llm := newTestClassifier(&countingLLM{reply: "true"})

	// No location feature, longer than the generic threshold.
	if !c.Classify(context.Background(), "打铁花表演", CategoryActivity) {
		t.Error("expected model verdict true to be honored")
	}
	if llm.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", llm.calls)
	}
}

func TestModelAnswerParsing(t *testing.T) {
	cases := []struct {
		reply string
		want  bool
	}{
		{"true", true},
		{"True", true},
		{" TRUE ", true},
		{"yes", true},
		{"是", true},
		{"false", false},
		{"否", false},
		{"maybe", false},
		{"", false},
	}
	for _, tc := range cases {
		c, _ := newTestClassifier(&countingLLM{reply: tc.reply})
		got := c.Classify(context.Background(), "打铁花表演", CategoryActivity)
		if got != tc.want {
			t.Errorf("reply %q: expected %v, got %v", tc.reply, tc.want, got)
		}
	}
}

func TestModelErrorDowngradesToFalse(t *testing.T) {
	c, _ := newTestClassifier(&countingLLM{err: errors.New("network down")})

	if c.Classify(context.Background(), "打铁花表演", CategoryActivity) {
		t.Error("model failure must resolve to non-POI")
	}
}

func TestLocalHeuristicWithoutCredentials(t *testing.T) {
	c, _ := newTestClassifier(nil)

	cases := []struct {
		name string
		want bool
	}{
		// venue word present, no action prefix
		{"夜游秦淮河风光带咖啡小坐", true},
		// action prefix wins even with a venue word
		{"准备前往咖啡小店", false},
		// no venue word at all
		{"打铁花表演", false},
	}
	for _, tc := range cases {
		if got := c.Classify(context.Background(), tc.name, CategoryActivity); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
