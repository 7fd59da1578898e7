// README: POI classification categories, verdicts, and marker word lists.
package poi

// Category identifies which itinerary slot a name came from.
type Category string

const (
	CategoryActivity Category = "activity"
	CategoryHotel    Category = "hotel"
	CategoryMeal     Category = "meal"
)

// Verdict is the outcome of one classification stage.
type Verdict int

const (
	// VerdictUndecided defers to the next stage in the pipeline.
	VerdictUndecided Verdict = iota
	VerdictPOI
	VerdictNotPOI
)

// Markers holds the heuristic word lists and thresholds the classifier runs
// on. These are tuning data, not algorithm: revise the lists without touching
// the stage pipeline.
type Markers struct {
	// ActionPhrases mark action or state descriptions. A name containing
	// any of them is never a POI, regardless of category.
	ActionPhrases []string

	// LocationFeatures are venue words. An activity name containing one is
	// a POI without asking the model.
	LocationFeatures []string

	// GenericActivities are short phrases that exactly match non-places
	// such as "free time". Only applied to names of at most
	// MaxGenericRunes runes.
	GenericActivities []string
	MaxGenericRunes   int

	// LocalFeatures and LocalActionPrefixes drive the offline heuristic
	// used when no model credentials are configured. LocalFeatures is a
	// superset of LocationFeatures that also covers dining and lodging
	// words.
	LocalFeatures       []string
	LocalActionPrefixes []string
}

// DefaultMarkers returns the production word lists.
func DefaultMarkers() Markers {
	return Markers{
		ActionPhrases: []string{
			"入住", "退房", "抵达", "到达", "出发", "离开", "返程", "返回",
			"回家", "回到家乡", "返回家乡", "收拾", "准备返程", "准备回家",
		},
		LocationFeatures: []string{
			"园", "林", "寺", "庙", "山", "湖", "海", "馆", "宫", "塔", "桥",
			"街", "公园", "景区", "博物馆", "美术馆", "遗址", "陵", "苑",
			"院", "亭", "阁", "楼", "台", "堤", "门", "洞", "窟", "谷", "峰",
			"广场", "中心",
		},
		GenericActivities: []string{"用餐", "散步", "休息", "购物", "自由活动"},
		MaxGenericRunes:   4,
		LocalFeatures: []string{
			"园", "林", "寺", "庙", "山", "湖", "海", "馆", "宫", "塔", "桥",
			"街", "公园", "景区", "博物馆", "美术馆", "遗址", "餐厅", "酒店",
			"饭店", "宾馆", "茶室", "咖啡", "广场", "陵", "苑", "院", "亭",
			"阁", "楼", "台", "堤", "门", "洞", "窟", "谷", "峰",
		},
		LocalActionPrefixes: []string{
			"入住", "退房", "抵达", "到达", "出发", "离开", "返程", "返回",
			"回家", "用餐", "早餐", "午餐", "晚餐", "散步", "休息", "购物", "准备",
		},
	}
}
