// README: Staged POI classifier; rule shortcuts first, model call as slow path.
package poi

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"voyago/internal/ai"
)

const classifySystemPrompt = `你是一个地点识别助手。请判断给定的名称是否为真实的地点POI（Point of Interest，兴趣点）。

真实POI的特征：
1. 有明确的具体名称，可以在地图上找到（如"故宫"、"天安门广场"、"狮子林"、"拙政园"、"全聚德餐厅"、"希尔顿酒店"）
2. 是可以在地图上标出的具体地理位置
3. 通常是景点、餐厅、酒店、博物馆、公园等有固定位置的地点

非POI的特征（这些不应该查询坐标）：
1. 只是动作描述，没有具体地点名称（如"入住酒店"、"退房"、"抵达机场"、"返回家乡"）
2. 是一般性活动，不是具体地点（如"用餐"、"散步"、"休息"、"购物"、"自由活动"、"准备返程"）
3. 是抽象概念或状态描述，无法在地图上定位

请只回答 true 或 false，不要输出任何其他文字或解释。`

// stage is one evaluator in the decision pipeline. It either returns a
// definitive verdict or VerdictUndecided to defer to the next stage.
type stage struct {
	name string
	eval func(name string, category Category) Verdict
}

// Classifier decides whether an itinerary item name denotes a mappable place.
// Cheap rule stages run in order; only ambiguous activity names reach the
// model. With a nil provider a local heuristic substitutes for the model.
type Classifier struct {
	markers Markers
	llm     ai.LLMProvider
	log     zerolog.Logger
	stages  []stage
}

// NewClassifier builds the stage pipeline. llm may be nil when no model
// credentials are configured.
func NewClassifier(markers Markers, llm ai.LLMProvider, log zerolog.Logger) *Classifier {
	c := &Classifier{markers: markers, llm: llm, log: log}
	c.stages = []stage{
		{name: "blank", eval: c.evalBlank},
		{name: "action_phrase", eval: c.evalActionPhrase},
		{name: "lodging_dining", eval: c.evalLodgingDining},
		{name: "location_feature", eval: c.evalLocationFeature},
		{name: "generic_activity", eval: c.evalGenericActivity},
	}
	return c
}

// Classify runs the pipeline. Any model failure downgrades to false so the
// caller never attempts a coordinate lookup on an unclassifiable name.
func (c *Classifier) Classify(ctx context.Context, name string, category Category) bool {
	for _, st := range c.stages {
		switch st.eval(name, category) {
		case VerdictPOI:
			c.log.Debug().Str("stage", st.name).Str("name", name).Msg("classified as POI")
			return true
		case VerdictNotPOI:
			c.log.Debug().Str("stage", st.name).Str("name", name).Msg("classified as non-POI")
			return false
		}
	}

	if c.llm == nil {
		return c.localHeuristic(name)
	}
	return c.remoteClassify(ctx, name, category)
}

func (c *Classifier) evalBlank(name string, _ Category) Verdict {
	if strings.TrimSpace(name) == "" {
		return VerdictNotPOI
	}
	return VerdictUndecided
}

// evalActionPhrase dominates every other rule: check-in, departure and the
// like are never places, whatever the category says.
func (c *Classifier) evalActionPhrase(name string, _ Category) Verdict {
	for _, kw := range c.markers.ActionPhrases {
		if strings.Contains(name, kw) {
			return VerdictNotPOI
		}
	}
	return VerdictUndecided
}

// evalLodgingDining assumes a named hotel or restaurant entry denotes a
// specific business once action phrases are ruled out.
func (c *Classifier) evalLodgingDining(_ string, category Category) Verdict {
	if category == CategoryHotel || category == CategoryMeal {
		return VerdictPOI
	}
	return VerdictUndecided
}

func (c *Classifier) evalLocationFeature(name string, category Category) Verdict {
	if category != CategoryActivity {
		return VerdictUndecided
	}
	for _, kw := range c.markers.LocationFeatures {
		if strings.Contains(name, kw) {
			return VerdictPOI
		}
	}
	return VerdictUndecided
}

func (c *Classifier) evalGenericActivity(name string, category Category) Verdict {
	if category != CategoryActivity {
		return VerdictUndecided
	}
	if utf8.RuneCountInString(name) > c.markers.MaxGenericRunes {
		return VerdictUndecided
	}
	for _, phrase := range c.markers.GenericActivities {
		if name == phrase {
			return VerdictNotPOI
		}
	}
	return VerdictUndecided
}

// remoteClassify asks the model a yes/no question and parses the answer
// case-insensitively. Anything but an affirmative token, including an error,
// resolves to false.
func (c *Classifier) remoteClassify(ctx context.Context, name string, category Category) bool {
	typeName := map[Category]string{
		CategoryActivity: "景点",
		CategoryHotel:    "住宿",
		CategoryMeal:     "餐厅",
	}[category]

	userPrompt := "请判断\"" + name + "\"（" + typeName + "）是否为真实的地点POI？只回答 true 或 false。"

	reply, err := c.llm.Generate(ctx, classifySystemPrompt, userPrompt)
	if err != nil {
		c.log.Warn().Err(err).Str("name", name).Msg("remote classification failed, defaulting to non-POI")
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(reply))
	return strings.Contains(answer, "true") || answer == "yes" || answer == "是"
}

// localHeuristic is the offline substitute for the model: a venue word must
// be present and the name must not start with an action prefix.
func (c *Classifier) localHeuristic(name string) bool {
	hasFeature := false
	for _, kw := range c.markers.LocalFeatures {
		if strings.Contains(name, kw) {
			hasFeature = true
			break
		}
	}
	if !hasFeature {
		return false
	}
	for _, prefix := range c.markers.LocalActionPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}
