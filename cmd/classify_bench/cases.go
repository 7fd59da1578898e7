package main

import "voyago/internal/modules/poi"

type benchCase struct {
	Name     string
	Category poi.Category
	WantPOI  bool
}

// Expected verdicts for the offline rule stages. Adjust alongside any
// change to the marker word lists.
var cases = []benchCase{
	// travel-phase phrases are never places
	{"收拾行李", poi.CategoryActivity, false},
	{"准备返程", poi.CategoryActivity, false},
	{"抵达苏州站", poi.CategoryActivity, false},
	{"退房", poi.CategoryActivity, false},
	{"返回家乡", poi.CategoryActivity, false},

	// hotels and restaurants default to mappable
	{"苏州香格里拉大酒店", poi.CategoryHotel, true},
	{"松鹤楼", poi.CategoryMeal, true},
	{"全聚德", poi.CategoryMeal, true},

	// named sights carry a location-feature character
	{"狮子林", poi.CategoryActivity, true},
	{"拙政园", poi.CategoryActivity, true},
	{"寒山寺", poi.CategoryActivity, true},
	{"平江路历史街区", poi.CategoryActivity, true},
	{"苏州博物馆", poi.CategoryActivity, true},
	{"金鸡湖", poi.CategoryActivity, true},

	// short generic activities
	{"自由活动", poi.CategoryActivity, false},
	{"散步", poi.CategoryActivity, false},
	{"购物", poi.CategoryActivity, false},

	// blank names never reach any lookup
	{"", poi.CategoryActivity, false},

	// no markers either way: offline fallback says not a place
	{"打铁花表演", poi.CategoryActivity, false},
}
